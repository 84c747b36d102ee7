package hufftree

import (
	"github.com/pkg/errors"
)

// Encode writes the Code of each byte of data to dst.  It returns
// ErrUnknownSymbol if data contains a byte that has no leaf in the Tree.
//
// A Tree whose root is a leaf writes a single 0 bit per symbol, matching the
// way Decoder emits one symbol per bit for such a Tree.
//
func (t *Tree) Encode(dst BitSink, data []byte) error {
	_, degenerate := t.root.(*Leaf)
	for offset, ch := range data {
		hc, found := t.codes[Symbol(ch)]
		if !found {
			return errors.Wrapf(ErrUnknownSymbol, "symbol %d at offset %d", ch, offset)
		}
		if degenerate {
			if err := dst.WriteBit(0); err != nil {
				return err
			}
			continue
		}
		for i := 0; i < hc.Len(); i++ {
			if err := dst.WriteBit(hc.Bit(i)); err != nil {
				return err
			}
		}
	}
	return nil
}
