package base85

// maxPartial is the largest value a group may hold once its fourth digit is
// in; anything above it would push the next multiply past 32 bits
// (0x03030303 * 85 == 0xFFFFFFFF).
const maxPartial = 0x03030303

// DecodedLen returns the number of bytes Decode produces for m input
// characters: floor(4m/5).
func DecodedLen(m int) int { return m * 4 / 5 }

// Decode decodes base85 text back into bytes. It fails with an error
// wrapping ErrInvalidCharacter when src contains a byte outside the
// alphabet, and with one wrapping ErrOverflow when a group's value cannot
// come from a 4-byte word. A trailing fragment of a single character
// carries too few bits to reconstruct any byte and is rejected the same
// way. On failure no partial output is returned.
//
// A short final group was truncated by Encode after zero-filling, so the
// decoder biases its word upward before cutting it back to the remaining
// output bytes; that correction deliberately wraps modulo 2^32, which makes
// some non-canonical spellings of a group decode to the same bytes as the
// canonical one.
func Decode(src []byte) ([]byte, error) {
	dst := make([]byte, DecodedLen(len(src)))
	di := 0
	for si := 0; si < len(src); {
		group := si

		v := decTable[src[si]]
		if v < 0 {
			return nil, &InvalidCharacterError{Byte: src[si], Offset: si}
		}
		si++
		word := uint32(v)

		for i := 0; i < 3; i++ {
			word *= 85
			if si < len(src) {
				if v = decTable[src[si]]; v < 0 {
					return nil, &InvalidCharacterError{Byte: src[si], Offset: si}
				}
				si++
				word += uint32(v)
			}
		}

		// Bound the first four digits before the last multiply. The
		// placement matters: moving this check changes which inputs
		// are accepted.
		if word > maxPartial {
			return nil, &OverflowError{Offset: group}
		}

		word *= 85
		if si < len(src) {
			if v = decTable[src[si]]; v < 0 {
				return nil, &InvalidCharacterError{Byte: src[si], Offset: si}
			}
			si++
			d := uint32(v)
			if word > 0xFFFFFFFF-d {
				return nil, &OverflowError{Offset: group}
			}
			word += d
		}

		// Round up a short final group. rem is 1..3 here: rem == 0
		// means the group maps to no output bytes at all, which only
		// a 1-character fragment can do.
		if rem := len(dst) - di; rem < 4 {
			if rem == 0 {
				return nil, &OverflowError{Offset: group}
			}
			word += 0xFFFFFF >> ((rem - 1) * 8)
		}

		for shift := 24; shift >= 0 && di < len(dst); shift -= 8 {
			dst[di] = byte(word >> shift)
			di++
		}
	}
	return dst, nil
}

// DecodeString is Decode on a string input.
func DecodeString(s string) ([]byte, error) {
	return Decode([]byte(s))
}
