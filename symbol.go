package hufftree

import (
	"strconv"

	"github.com/pkg/errors"
)

// Symbol represents a symbol in the 8-bit alphabet.
type Symbol byte

// NumSymbols is the number of symbols in the alphabet.
const NumSymbols = 256

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(NumSymbols - 1)

// ParseSymbol parses the decimal representation of a Symbol.
func ParseSymbol(str string) (Symbol, error) {
	n, err := strconv.Atoi(str)
	if err != nil {
		return 0, errors.Wrapf(ErrBadSymbol, "%q is not a decimal integer", str)
	}
	if n < 0 || n > int(MaxSymbol) {
		return 0, errors.Wrapf(ErrBadSymbol, "%d is outside the range 0 .. %d", n, MaxSymbol)
	}
	return Symbol(n), nil
}
