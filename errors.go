package base85

import (
	"errors"
	"fmt"
)

// Sentinels for the two ways a decode can fail. Errors returned by Decode
// wrap one of these, so callers can match with errors.Is.
var (
	ErrInvalidCharacter = errors.New("base85: invalid character")
	ErrOverflow         = errors.New("base85: group value out of range")
)

// InvalidCharacterError reports an input byte outside the alphabet.
type InvalidCharacterError struct {
	Byte   byte // the offending byte
	Offset int  // its position in the input
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("base85: invalid character %q at offset %d", e.Byte, e.Offset)
}

func (e *InvalidCharacterError) Unwrap() error { return ErrInvalidCharacter }

// OverflowError reports a group whose value no 4-byte word could have
// produced, including a trailing fragment too short to decode.
type OverflowError struct {
	Offset int // position of the group's first character
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("base85: group at offset %d does not fit a 32-bit word", e.Offset)
}

func (e *OverflowError) Unwrap() error { return ErrOverflow }
