package base85

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecodeInvalidCharacter(t *testing.T) {
	cases := []struct {
		src    string
		offset int
	}{
		{" ", 0},
		{"O<`^z\n", 5},
		{"O<\x00^z", 2},
		{"O<`^z O<`^z", 5}, // no whitespace tolerance
		{"O,", 1},
		{"\"0000", 0},
	}
	for _, tc := range cases {
		got, err := DecodeString(tc.src)
		if !errors.Is(err, ErrInvalidCharacter) {
			t.Fatalf("Decode(%q) err = %v, want ErrInvalidCharacter", tc.src, err)
		}
		var ice *InvalidCharacterError
		if !errors.As(err, &ice) {
			t.Fatalf("Decode(%q) err = %T, want *InvalidCharacterError", tc.src, err)
		}
		if ice.Offset != tc.offset || ice.Byte != tc.src[tc.offset] {
			t.Fatalf("Decode(%q) reported %q at %d, want %q at %d",
				tc.src, ice.Byte, ice.Offset, tc.src[tc.offset], tc.offset)
		}
		if got != nil {
			t.Fatalf("Decode(%q) returned partial output %x alongside error", tc.src, got)
		}
	}
}

func TestDecodeOverflow(t *testing.T) {
	cases := []struct {
		src    string
		offset int
	}{
		{"~~~~~", 0},  // 85^5-1, above 2^32-1: caught by the last-digit check
		{"~~~~", 0},   // above 0x03030303 after four digits
		{"|NsD", 0},   // 0x03030304, one past the four-digit bound
		{"|NsC1", 0},  // fifth digit would carry past 2^32
		{"00000~~~~~", 5},
	}
	for _, tc := range cases {
		got, err := DecodeString(tc.src)
		if !errors.Is(err, ErrOverflow) {
			t.Fatalf("Decode(%q) err = %v, want ErrOverflow", tc.src, err)
		}
		var oe *OverflowError
		if !errors.As(err, &oe) {
			t.Fatalf("Decode(%q) err = %T, want *OverflowError", tc.src, err)
		}
		if oe.Offset != tc.offset {
			t.Fatalf("Decode(%q) reported group offset %d, want %d", tc.src, oe.Offset, tc.offset)
		}
		if got != nil {
			t.Fatalf("Decode(%q) returned partial output %x alongside error", tc.src, got)
		}
	}
}

func TestDecodeSingleCharFragment(t *testing.T) {
	// One trailing character maps to zero output bytes and cannot be
	// decoded, on its own or after complete groups.
	for _, src := range []string{"A", "0", "~", "O<`^zA", "0000000000!"} {
		if _, err := DecodeString(src); !errors.Is(err, ErrOverflow) {
			t.Fatalf("Decode(%q) err = %v, want ErrOverflow", src, err)
		}
	}
}

func TestDecodeFourDigitBound(t *testing.T) {
	// "|NsC" holds exactly 0x03030303 after four digits; the last multiply
	// lands on 0xFFFFFFFF and the round-up correction wraps, so this
	// non-canonical group decodes to the same bytes as "000".
	got := mustDecode(t, "|NsC")
	if want := []byte{0, 0, 0}; !bytes.Equal(got, want) {
		t.Fatalf("Decode(%q) = %x, want %x", "|NsC", got, want)
	}
}

func TestDecodeStopsAtFirstError(t *testing.T) {
	// Both an invalid character and an overflowing group are present; the
	// invalid character comes first.
	_, err := DecodeString("00000 ~~~~~")
	if !errors.Is(err, ErrInvalidCharacter) {
		t.Fatalf("err = %v, want ErrInvalidCharacter", err)
	}
	var ice *InvalidCharacterError
	if !errors.As(err, &ice) || ice.Offset != 5 {
		t.Fatalf("err = %v, want invalid character at offset 5", err)
	}
}

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte(nil))
	f.Add([]byte("Man "))
	f.Add([]byte("pleasure."))
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x00})
	f.Fuzz(func(t *testing.T, src []byte) {
		for _, pad := range []bool{false, true} {
			text := Encode(src, pad)
			if len(text) != EncodedLen(len(src), pad) {
				t.Fatalf("len(Encode) = %d, want %d", len(text), EncodedLen(len(src), pad))
			}
			got, err := Decode(text)
			if err != nil {
				t.Fatalf("Decode(Encode(%x, pad=%v)) error: %v", src, pad, err)
			}
			if !bytes.Equal(got[:len(src)], src) {
				t.Fatalf("round trip mismatch (pad=%v): %x -> %x", pad, src, got)
			}
			for _, b := range got[len(src):] {
				if b != 0 {
					t.Fatalf("nonzero padding tail (pad=%v): %x -> %x", pad, src, got)
				}
			}
		}
	})
}

func FuzzDecode(f *testing.F) {
	f.Add("O<`^z")
	f.Add("~~~~~")
	f.Add("|NsC")
	f.Add("not base85!")
	f.Fuzz(func(t *testing.T, src string) {
		got, err := Decode([]byte(src))
		if err != nil {
			if !errors.Is(err, ErrInvalidCharacter) && !errors.Is(err, ErrOverflow) {
				t.Fatalf("Decode(%q) unexpected error kind: %v", src, err)
			}
			if got != nil {
				t.Fatalf("Decode(%q) returned output alongside error", src)
			}
			return
		}
		if len(got) != DecodedLen(len(src)) {
			t.Fatalf("len(Decode(%q)) = %d, want %d", src, len(got), DecodedLen(len(src)))
		}
	})
}
