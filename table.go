package hufftree

import (
	"bufio"
	"bytes"
	"encoding"
	"encoding/json"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// WriteTable writes the Tree to w as a table of (symbol, path) records, one
// record per leaf, leaves enumerated from left to right.  Each record is two
// lines: the symbol as a decimal integer, then its path as '0' and '1'
// characters.  The path line is empty only for a single-leaf Tree.
func WriteTable(w io.Writer, t *Tree) (int64, error) {
	var buf bytes.Buffer
	t.Walk(func(sym Symbol, hc Code) {
		buf.WriteString(strconv.Itoa(int(sym)))
		buf.WriteByte('\n')
		buf.WriteString(hc.Path())
		buf.WriteByte('\n')
	})
	return buf.WriteTo(w)
}

// ReadTable reads a table in the form written by WriteTable and rebuilds the
// Tree it describes.  The order of records does not matter.
//
// Malformed input, including a line too long for any valid record, yields a
// *ParseError.  Errors from r itself are returned as-is, wrapped with context.
//
func ReadTable(r io.Reader) (*Tree, error) {
	var rb treeRebuilder
	var lineNum, record int

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNum++
		record++
		symLine := lineNum

		sym, err := ParseSymbol(string(trimCR(sc.Bytes())))
		if err != nil {
			return nil, &ParseError{Line: symLine, Record: record, Err: err}
		}

		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, scanError(err, lineNum+1, record, ErrBadPath)
			}
			return nil, &ParseError{Line: symLine, Record: record, Err: ErrTruncatedRecord}
		}
		lineNum++

		hc, err := ParseCode(string(trimCR(sc.Bytes())))
		if err != nil {
			return nil, &ParseError{Line: lineNum, Record: record, Err: err}
		}

		if err := rb.add(sym, hc); err != nil {
			return nil, &ParseError{Line: lineNum, Record: record, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, scanError(err, lineNum+1, record+1, ErrBadSymbol)
	}
	return rb.finish()
}

// scanError reports a line too long to scan as a malformed line of the given
// kind, and anything else as a read failure.
func scanError(err error, line int, record int, kind error) error {
	if errors.Is(err, bufio.ErrTooLong) {
		return &ParseError{Line: line, Record: record, Err: errors.Wrap(kind, "line too long")}
	}
	return errors.Wrap(err, "hufftree: failed to read table")
}

func trimCR(line []byte) []byte {
	return bytes.TrimSuffix(line, []byte{'\r'})
}

// MarshalText returns the Tree in the form written by WriteTable.
func (t *Tree) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := WriteTable(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalText replaces this Tree with the one described by the table in
// text.
func (t *Tree) UnmarshalText(text []byte) error {
	u, err := ReadTable(bytes.NewReader(text))
	if err != nil {
		return err
	}
	*t = *u
	return nil
}

type codeRecord struct {
	Symbol int    `json:"symbol"`
	Path   string `json:"path"`
}

// MarshalJSON returns the Tree as a JSON array of {"symbol", "path"} objects,
// in the same order as WriteTable.
func (t *Tree) MarshalJSON() ([]byte, error) {
	records := make([]codeRecord, 0, t.NumLeaves())
	t.Walk(func(sym Symbol, hc Code) {
		records = append(records, codeRecord{int(sym), hc.Path()})
	})
	return json.Marshal(records)
}

// UnmarshalJSON replaces this Tree with the one described by a JSON array in
// the form produced by MarshalJSON.
func (t *Tree) UnmarshalJSON(raw []byte) error {
	var records []codeRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return err
	}

	var rb treeRebuilder
	for index, rec := range records {
		if err := rb.addRecord(rec); err != nil {
			return &ParseError{Record: index + 1, Err: err}
		}
	}
	u, err := rb.finish()
	if err != nil {
		return err
	}
	*t = *u
	return nil
}

func (rb *treeRebuilder) addRecord(rec codeRecord) error {
	if rec.Symbol < 0 || rec.Symbol > int(MaxSymbol) {
		return errors.Wrapf(ErrBadSymbol, "%d is outside the range 0 .. %d", rec.Symbol, MaxSymbol)
	}
	hc, err := ParseCode(rec.Path)
	if err != nil {
		return err
	}
	return rb.add(Symbol(rec.Symbol), hc)
}

var (
	_ encoding.TextMarshaler   = (*Tree)(nil)
	_ encoding.TextUnmarshaler = (*Tree)(nil)
	_ json.Marshaler           = (*Tree)(nil)
	_ json.Unmarshaler         = (*Tree)(nil)
)

// type treeRebuilder {{{

// treeRebuilder grows a tree of placeholder nodes one path at a time.  A
// placeholder may have zero, one, or two children until every path has been
// added; finish checks that the result is a strict binary tree.
type treeRebuilder struct {
	root *draftNode
	seen [NumSymbols]bool
}

type draftNode struct {
	child  [2]*draftNode
	symbol Symbol
	isLeaf bool
}

func (rb *treeRebuilder) add(sym Symbol, hc Code) error {
	if rb.seen[sym] {
		return errors.Wrapf(ErrDuplicateSymbol, "symbol %d", sym)
	}
	if rb.root == nil {
		rb.root = &draftNode{}
	}

	node := rb.root
	for i := 0; i < hc.Len(); i++ {
		if node.isLeaf {
			return errors.Wrapf(ErrPathConflict, "path %s passes through the leaf for symbol %d", hc, node.symbol)
		}
		bit := hc.Bit(i)
		if node.child[bit] == nil {
			node.child[bit] = &draftNode{}
		}
		node = node.child[bit]
	}

	if node.isLeaf {
		return errors.Wrapf(ErrPathConflict, "path %s is already assigned to symbol %d", hc, node.symbol)
	}
	if node.child[0] != nil || node.child[1] != nil {
		return errors.Wrapf(ErrPathConflict, "path %s is a prefix of another record's path", hc)
	}

	node.symbol = sym
	node.isLeaf = true
	rb.seen[sym] = true
	return nil
}

func (rb *treeRebuilder) finish() (*Tree, error) {
	if rb.root == nil {
		return nil, &ParseError{Err: ErrEmptyTable}
	}
	root, err := rb.root.freeze(Code{})
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return newTree(root), nil
}

// freeze converts a placeholder subtree into Leaf and Internal nodes.  The
// recursion depth is bounded by MaxCodeSize.
func (d *draftNode) freeze(hc Code) (Node, error) {
	if d.isLeaf {
		return &Leaf{Symbol: d.symbol}, nil
	}
	if d.child[0] == nil || d.child[1] == nil {
		return nil, errors.Wrapf(ErrIncompleteTree, "node at path %s", hc)
	}
	left, err := d.child[0].freeze(hc.Append(0))
	if err != nil {
		return nil, err
	}
	right, err := d.child[1].freeze(hc.Append(1))
	if err != nil {
		return nil, err
	}
	return &Internal{Left: left, Right: right}, nil
}

// }}}
