package trie

import (
	"errors"
	"fmt"
)

// ErrInvalidCharacter is matched by every validation failure.
var ErrInvalidCharacter = errors.New("invalid character")

// InvalidCharError reports the first byte of a word that falls outside a-z.
type InvalidCharError struct {
	Word string
	Pos  int
	Char byte
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("%v %q at position %d in %q", ErrInvalidCharacter, e.Char, e.Pos, e.Word)
}

func (e *InvalidCharError) Unwrap() error {
	return ErrInvalidCharacter
}

// Validate returns an *InvalidCharError unless word consists solely of
// lowercase ASCII letters. The empty word is valid.
func Validate(word string) error {
	for i := 0; i < len(word); i++ {
		if c := word[i]; c < 'a' || c > 'z' {
			return &InvalidCharError{Word: word, Pos: i, Char: c}
		}
	}
	return nil
}
