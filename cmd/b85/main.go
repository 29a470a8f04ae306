package main

import (
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/base85"
)

const errGeneric = 99

// Options is the flag surface of the b85 filter.
type Options struct {
	Decode    bool   `short:"d" long:"decode"     env:"B85_DECODE" description:"Decode base85 input back to bytes"`
	Pad       bool   `short:"p" long:"pad"        env:"B85_PAD"    description:"Pad encoded output to whole 5-character groups"`
	Input     string `short:"i" long:"input"      env:"B85_INPUT"  default:"-" description:"Input file, - for stdin"`
	Output    string `short:"o" long:"output"     env:"B85_OUTPUT" default:"-" description:"Output file, - for stdout"`
	NoNewline bool   `short:"n" long:"no-newline" description:"Do not append a newline after encoded output"`
	Verbose   []bool `short:"v" long:"verbose"    env:"VERBOSITY"  description:"Show verbose debug information"`
}

func main() {
	var opts Options
	parser := flags.NewNamedParser("b85", flags.HelpFlag|flags.PrintErrors)
	if _, err := parser.AddGroup("Options", "Encode or decode base85 between stdin/stdout or files", &opts); err != nil {
		mustErrorNilOrExit(errors.WithStack(err))
	}
	_, err := parser.Parse()
	mustErrorNilOrExit(err)

	setupLogging(len(opts.Verbose))

	in, out, closeStreams, err := openStreams(&opts)
	mustErrorNilOrExit(err)
	defer closeStreams()

	mustErrorNilOrExit(run(&opts, in, out))
}

// run reads all of in, transforms it in one shot and writes the result to
// out. The codec works on whole buffers, so there is no streaming here.
func run(opts *Options, in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, "read input")
	}

	var result []byte
	if opts.Decode {
		result, err = base85.Decode(trimTrailingNewline(data))
		if err != nil {
			return err
		}
	} else {
		result = base85.Encode(data, opts.Pad)
		if !opts.NoNewline && len(result) > 0 {
			result = append(result, '\n')
		}
	}

	log.WithFields(log.Fields{
		"decode": opts.Decode,
		"in":     len(data),
		"out":    len(result),
	}).Debug("transformed")

	if _, err := out.Write(result); err != nil {
		return errors.Wrap(err, "write output")
	}
	return nil
}

// trimTrailingNewline drops a single line ending left by the encoder or a
// shell pipeline. Anything else, including interior whitespace, still fails
// decoding.
func trimTrailingNewline(data []byte) []byte {
	if n := len(data); n > 0 && data[n-1] == '\n' {
		data = data[:n-1]
	}
	if n := len(data); n > 0 && data[n-1] == '\r' {
		data = data[:n-1]
	}
	return data
}

func openStreams(opts *Options) (io.Reader, io.Writer, func(), error) {
	var closers []io.Closer
	closeAll := func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}

	in := io.Reader(os.Stdin)
	if opts.Input != "-" {
		f, err := os.Open(opts.Input)
		if err != nil {
			return nil, nil, nil, errors.Wrapf(err, "open %s", opts.Input)
		}
		closers = append(closers, f)
		in = f
	}

	out := io.Writer(os.Stdout)
	if opts.Output != "-" {
		f, err := os.Create(opts.Output)
		if err != nil {
			closeAll()
			return nil, nil, nil, errors.Wrapf(err, "create %s", opts.Output)
		}
		closers = append(closers, f)
		out = f
	}

	return in, out, closeAll, nil
}

func setupLogging(verbosity int) {
	log.SetOutput(os.Stderr)
	switch {
	case verbosity >= 2:
		log.SetLevel(log.TraceLevel)
	case verbosity == 1:
		log.SetLevel(log.DebugLevel)
	default:
		log.SetLevel(log.WarnLevel)
	}
}

// mustErrorNilOrExit logs err at fatal level and exits, unwrapping the exit
// code from a flags.Error when there is one. Help requests exit clean.
func mustErrorNilOrExit(err error) {
	if err == nil {
		return
	}
	if flagsError, ok := err.(*flags.Error); ok {
		if flagsError.Type == flags.ErrHelp {
			os.Exit(0)
		}
		log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %v", err)
		log.Exit(int(flagsError.Type))
	}
	log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %v", err)
	log.Exit(errGeneric)
}
