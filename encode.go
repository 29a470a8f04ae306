package base85

// EncodedLen returns the number of characters Encode emits for n input
// bytes: ceil(5n/4) unpadded, or n rounded up to whole 4-byte groups times
// 5/4 when padding.
func EncodedLen(n int, pad bool) int {
	if pad {
		return (n + 3) / 4 * 5
	}
	return (n*5 + 3) / 4
}

// Encode encodes src, returning base85 text of exactly
// EncodedLen(len(src), pad) characters. Each 4-byte group becomes 5
// characters; a short final group of k bytes is zero-filled to form the word
// and emits only its k+1 leading characters, unless pad is true, in which
// case all 5 are emitted. Encoding cannot fail; empty input yields empty
// output.
func Encode(src []byte, pad bool) []byte {
	dst := make([]byte, EncodedLen(len(src), pad))
	di := 0
	for si := 0; si < len(src); si += 4 {
		k := len(src) - si
		if k > 4 {
			k = 4
		}

		var word uint32
		switch k {
		case 4:
			word |= uint32(src[si+3])
			fallthrough
		case 3:
			word |= uint32(src[si+2]) << 8
			fallthrough
		case 2:
			word |= uint32(src[si+1]) << 16
			fallthrough
		case 1:
			word |= uint32(src[si]) << 24
		}

		var group [5]byte
		for i := 4; i >= 0; i-- {
			group[i] = Alphabet[word%85]
			word /= 85
		}

		n := 5
		if !pad && k < 4 {
			n = k + 1
		}
		di += copy(dst[di:], group[:n])
	}
	return dst
}

// EncodeToString is Encode returning a string.
func EncodeToString(src []byte, pad bool) string {
	return string(Encode(src, pad))
}
