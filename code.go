package hufftree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// MaxCodeSize is the length of the longest Code that can occur in a tree
// over NumSymbols symbols.
const MaxCodeSize = NumSymbols - 1

const codeWords = (MaxCodeSize + 63) / 64

// Code represents the path from the root of a Tree to one of its leaves,
// which is also the bit sequence that encodes the leaf's Symbol.  A 0 bit
// means "go left" and a 1 bit means "go right".
//
// The zero value is the empty Code, which only ever names the root.  Codes
// are comparable and may be used as map keys.
//
type Code struct {
	// size holds the number of valid bits.
	size byte

	// words holds the actual values of the bits.  The least significant
	// bit of words[0] is the first bit.  Bits at or beyond size are zero.
	words [codeWords]uint64
}

// ParseCode parses a path rendered as a string of '0' and '1' characters.
func ParseCode(path string) (Code, error) {
	if len(path) > MaxCodeSize {
		return Code{}, errors.Wrapf(ErrBadPath, "%d bits exceeds the maximum of %d", len(path), MaxCodeSize)
	}
	var hc Code
	for i := 0; i < len(path); i++ {
		switch ch := path[i]; ch {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, errors.Wrapf(ErrBadPath, "unexpected character %q at offset %d", ch, i)
		}
	}
	return hc, nil
}

// MustParseCode is like ParseCode, but panics on error.
func MustParseCode(path string) Code {
	hc, err := ParseCode(path)
	if err != nil {
		panic(err)
	}
	return hc
}

// Len returns the number of bits in this Code.
func (hc Code) Len() int {
	return int(hc.size)
}

// Bit returns the i'th bit of this Code, either 0 or 1.
func (hc Code) Bit(i int) uint {
	assert.Assertf(i >= 0 && i < int(hc.size), "bit index %d out of range [0, %d)", i, hc.size)
	return uint(hc.words[i/64]>>(uint(i)%64)) & 1
}

// Append returns a copy of this Code with one more bit at the end.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(hc.size < MaxCodeSize, "code is already %d bits long", hc.size)
	i := uint(hc.size)
	if bit != 0 {
		hc.words[i/64] |= uint64(1) << (i % 64)
	}
	hc.size++
	return hc
}

// HasPrefix returns true iff prefix is a prefix of this Code.  Every Code is
// a prefix of itself.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.size > hc.size {
		return false
	}
	for i := 0; i < prefix.Len(); i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// Path returns this Code as a string of '0' and '1' characters, in the same
// form accepted by ParseCode.
func (hc Code) Path() string {
	var buf strings.Builder
	buf.Grow(hc.Len())
	for i := 0; i < hc.Len(); i++ {
		buf.WriteByte('0' + byte(hc.Bit(i)))
	}
	return buf.String()
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.size == 0 {
		return "\"\""
	}
	return strconv.Quote(hc.Path())
}

var _ fmt.Stringer = Code{}
