package base85

// Alphabet is the 85-character set shared by git and Mercurial for binary
// patches: digits, then upper and lower case, then the printable specials
// that survive quoting in common transports. A character's position is its
// base-85 digit value.
const Alphabet = "0123456789" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"!#$%&()*+-;<=>?@^_`{|}~"

// decTable maps an input byte to its digit value, or -1 for bytes outside
// the alphabet. Written only during init; decoders share it read-only.
var decTable [256]int8

func init() {
	for i := range decTable {
		decTable[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		decTable[Alphabet[i]] = int8(i)
	}
}
