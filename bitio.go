package hufftree

import (
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// BitReader is a BitSource that reads bytes and yields their bits, most
// significant bit first.
type BitReader struct {
	r     io.ByteReader
	err   error
	limit int64
	cur   byte
	avail uint
	eof   bool
}

// NewBitReader returns a BitReader over r.  If limit is non-negative, the
// BitReader yields at most limit bits, which lets a caller ignore the padding
// in the final byte; reaching EOF before limit bits is an error.  A negative
// limit yields every bit up to EOF.
func NewBitReader(r io.ByteReader, limit int64) *BitReader {
	return &BitReader{r: r, limit: limit}
}

// HasNextBit fulfills BitSource.
func (br *BitReader) HasNextBit() bool {
	if br.limit == 0 {
		return false
	}
	if br.avail != 0 {
		return true
	}
	if br.eof {
		return false
	}
	ch, err := br.r.ReadByte()
	if err != nil {
		br.eof = true
		if err != io.EOF {
			br.err = errors.Wrap(err, "hufftree: failed to read bits")
		} else if br.limit > 0 {
			br.err = errors.Wrapf(io.ErrUnexpectedEOF, "hufftree: %d bits missing", br.limit)
		}
		return false
	}
	br.cur = ch
	br.avail = 8
	return true
}

// NextBit fulfills BitSource.
func (br *BitReader) NextBit() int {
	assert.Assertf(br.HasNextBit(), "NextBit called with no bits remaining")
	br.avail--
	if br.limit > 0 {
		br.limit--
	}
	return int(br.cur>>br.avail) & 1
}

// Err returns the first error encountered while reading, if any.  Reaching
// EOF is not an error unless a limit was set and not met.
func (br *BitReader) Err() error {
	return br.err
}

var _ BitSource = (*BitReader)(nil)

// TextBitReader is a BitSource that reads bits written as the ASCII
// characters '0' and '1'.  Whitespace between bits is skipped.
type TextBitReader struct {
	r      io.ByteReader
	err    error
	offset int64
	next   int
	ready  bool
	done   bool
}

// NewTextBitReader returns a TextBitReader over r.
func NewTextBitReader(r io.ByteReader) *TextBitReader {
	return &TextBitReader{r: r}
}

// HasNextBit fulfills BitSource.  It stops at the first byte that is neither
// a bit nor whitespace and reports it through Err.
func (tr *TextBitReader) HasNextBit() bool {
	for !tr.ready && !tr.done {
		ch, err := tr.r.ReadByte()
		if err != nil {
			tr.done = true
			if err != io.EOF {
				tr.err = errors.Wrap(err, "hufftree: failed to read bits")
			}
			break
		}
		switch ch {
		case '0', '1':
			tr.next = int(ch - '0')
			tr.ready = true
		case ' ', '\t', '\r', '\n':
			// pass
		default:
			tr.done = true
			tr.err = errors.Wrapf(ErrBadBit, "byte %q at offset %d", ch, tr.offset)
		}
		tr.offset++
	}
	return tr.ready
}

// NextBit fulfills BitSource.
func (tr *TextBitReader) NextBit() int {
	assert.Assertf(tr.HasNextBit(), "NextBit called with no bits remaining")
	tr.ready = false
	return tr.next
}

// Err returns the first error encountered while reading, if any.
func (tr *TextBitReader) Err() error {
	return tr.err
}

var _ BitSource = (*TextBitReader)(nil)

// BitSink accepts bits one at a time.
type BitSink interface {
	WriteBit(bit uint) error
}

// BitWriter is a BitSink that packs bits into bytes, most significant bit
// first.  The final byte is padded with zero bits by Flush.
type BitWriter struct {
	w     io.ByteWriter
	cur   byte
	nbits uint
	total int64
}

// NewBitWriter returns a BitWriter over w.
func NewBitWriter(w io.ByteWriter) *BitWriter {
	return &BitWriter{w: w}
}

// WriteBit fulfills BitSink.
func (bw *BitWriter) WriteBit(bit uint) error {
	bw.cur <<= 1
	if bit != 0 {
		bw.cur |= 1
	}
	bw.nbits++
	bw.total++
	if bw.nbits == 8 {
		return bw.emit()
	}
	return nil
}

// Flush writes any partial byte, padded with zero bits.
func (bw *BitWriter) Flush() error {
	if bw.nbits == 0 {
		return nil
	}
	bw.cur <<= 8 - bw.nbits
	return bw.emit()
}

// Bits returns the number of bits written so far, not counting padding.
func (bw *BitWriter) Bits() int64 {
	return bw.total
}

func (bw *BitWriter) emit() error {
	ch := bw.cur
	bw.cur = 0
	bw.nbits = 0
	if err := bw.w.WriteByte(ch); err != nil {
		return errors.Wrap(err, "hufftree: failed to write bits")
	}
	return nil
}

var _ BitSink = (*BitWriter)(nil)

// TextBitWriter is a BitSink that writes each bit as an ASCII '0' or '1'.
type TextBitWriter struct {
	w     io.ByteWriter
	total int64
}

// NewTextBitWriter returns a TextBitWriter over w.
func NewTextBitWriter(w io.ByteWriter) *TextBitWriter {
	return &TextBitWriter{w: w}
}

// WriteBit fulfills BitSink.
func (tw *TextBitWriter) WriteBit(bit uint) error {
	ch := byte('0')
	if bit != 0 {
		ch = '1'
	}
	if err := tw.w.WriteByte(ch); err != nil {
		return errors.Wrap(err, "hufftree: failed to write bits")
	}
	tw.total++
	return nil
}

// Bits returns the number of bits written so far.
func (tw *TextBitWriter) Bits() int64 {
	return tw.total
}

var _ BitSink = (*TextBitWriter)(nil)
