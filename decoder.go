package hufftree

import (
	"bytes"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// BitSource is a sequential, single-pass source of bits.
type BitSource interface {
	// HasNextBit returns true while unread bits remain.
	HasNextBit() bool

	// NextBit consumes one bit and returns it.  Any non-zero value counts
	// as a 1 bit.  Calling NextBit when HasNextBit is false is an error.
	NextBit() int
}

// Decoder translates bits into symbols by walking a Tree.  Each Decoder
// carries its own cursor into the Tree, so concurrent decodes against one
// Tree need one Decoder apiece.
type Decoder struct {
	tree   *Tree
	cursor Node
}

// NewDecoder returns a Decoder for the given Tree, with its cursor at the
// root.
func NewDecoder(t *Tree) *Decoder {
	assert.Assertf(t != nil, "tree is nil")
	return &Decoder{tree: t, cursor: t.root}
}

// Reset moves the cursor back to the root, discarding any partial code.
func (d *Decoder) Reset() {
	d.cursor = d.tree.root
}

// Truncated returns true iff the cursor is partway through a code, i.e. the
// last Translate ran out of bits before reaching a leaf.
func (d *Decoder) Truncated() bool {
	_, isLeaf := d.cursor.(*Leaf)
	return !isLeaf && d.cursor != d.tree.root
}

// Translate consumes every bit of src and writes each decoded symbol to
// sink, returning the number of symbols written.
//
// At each step, if the cursor is on a leaf, its symbol is emitted and the
// cursor returns to the root; otherwise one bit is consumed and the cursor
// moves to the left child on 0 or the right child on anything else.  Once
// src is exhausted, a cursor resting on a leaf emits that final symbol.
//
// Running out of bits partway through a code is not an error: Translate
// returns normally and Truncated reports the condition.  A later Translate
// resumes from the same cursor position.
//
// A Tree whose root is a leaf has an empty code for its only symbol.  Such a
// Tree emits its symbol once for each bit in src, consuming the bit.
//
// Only errors returned by sink abort the translation.
//
func (d *Decoder) Translate(src BitSource, sink io.ByteWriter) (int, error) {
	root := d.tree.root
	var n int

	if leaf, ok := root.(*Leaf); ok {
		for src.HasNextBit() {
			src.NextBit()
			if err := sink.WriteByte(byte(leaf.Symbol)); err != nil {
				return n, errors.Wrap(err, "hufftree: failed to write decoded symbol")
			}
			n++
		}
		return n, nil
	}

	for src.HasNextBit() {
		switch node := d.cursor.(type) {
		case *Leaf:
			if err := sink.WriteByte(byte(node.Symbol)); err != nil {
				return n, errors.Wrap(err, "hufftree: failed to write decoded symbol")
			}
			n++
			d.cursor = root

		case *Internal:
			if src.NextBit() == 0 {
				d.cursor = node.Left
			} else {
				d.cursor = node.Right
			}
		}
	}

	if leaf, ok := d.cursor.(*Leaf); ok {
		if err := sink.WriteByte(byte(leaf.Symbol)); err != nil {
			return n, errors.Wrap(err, "hufftree: failed to write decoded symbol")
		}
		n++
		d.cursor = root
	}
	return n, nil
}

// Decode translates all of src with a fresh Decoder and returns the decoded
// symbols.  A trailing partial code is silently dropped.
func Decode(t *Tree, src BitSource) []byte {
	var buf bytes.Buffer
	_, _ = NewDecoder(t).Translate(src, &buf)
	return buf.Bytes()
}

// DecodeStrict is like Decode, but returns ErrTruncatedStream along with the
// symbols decoded so far if src ends partway through a code.
func DecodeStrict(t *Tree, src BitSource) ([]byte, error) {
	var buf bytes.Buffer
	d := NewDecoder(t)
	_, _ = d.Translate(src, &buf)
	if d.Truncated() {
		return buf.Bytes(), ErrTruncatedStream
	}
	return buf.Bytes(), nil
}
