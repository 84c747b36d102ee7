package hufftree

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNoSymbols is returned by Build when no symbol has a positive frequency.
var ErrNoSymbols = errors.New("hufftree: no symbol has a positive frequency")

// Errors wrapped by *ParseError.
var (
	ErrBadSymbol       = errors.New("invalid symbol")
	ErrBadPath         = errors.New("invalid path")
	ErrTruncatedRecord = errors.New("record is missing its path line")
	ErrDuplicateSymbol = errors.New("symbol appears in more than one record")
	ErrPathConflict    = errors.New("path collides with another record")
	ErrIncompleteTree  = errors.New("tree has a node with only one child")
	ErrEmptyTable      = errors.New("table contains no records")
)

// ErrUnknownSymbol is returned when encoding a symbol that has no leaf in the
// Tree.
var ErrUnknownSymbol = errors.New("hufftree: symbol is not in the tree")

// ErrBadBit is reported by TextBitReader when it meets a byte that is neither
// a bit nor whitespace.
var ErrBadBit = errors.New("hufftree: invalid bit character")

// ErrTruncatedStream is returned by DecodeStrict when the bits run out partway
// through a code.
var ErrTruncatedStream = errors.New("hufftree: bit stream ended in the middle of a code")

// ParseError reports a malformed table.  Line and Record are 1-based.  Line
// is zero for input that has no lines, such as JSON, and both are zero when
// the problem concerns the table as a whole rather than one record.
type ParseError struct {
	Line   int
	Record int
	Err    error
}

// Error fulfills the error interface.
func (e *ParseError) Error() string {
	if e.Line == 0 && e.Record == 0 {
		return fmt.Sprintf("hufftree: parse error: %v", e.Err)
	}
	if e.Line == 0 {
		return fmt.Sprintf("hufftree: parse error in record %d: %v", e.Record, e.Err)
	}
	return fmt.Sprintf("hufftree: parse error at line %d (record %d): %v", e.Line, e.Record, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

var _ error = (*ParseError)(nil)
