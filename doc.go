// Package base85 implements the base85 binary-to-text encoding used by git
// and Mercurial for binary patch payloads.
//
// Four input bytes are read as a big-endian 32-bit word and written as five
// base-85 digits, most significant first. A short final group of k bytes
// becomes k+1 characters, or a zero-filled full group of 5 when padding is
// requested; the decoder undoes the truncation with a round-up correction on
// the last group. Output is roughly 25% larger than the input.
//
// Both directions work on whole buffers:
//
//	text := base85.Encode(raw, false)
//	raw, err := base85.Decode(text)
//
// The only shared state is the decode lookup table built at init and never
// written again, so any number of goroutines may encode and decode
// concurrently without synchronization.
package base85
