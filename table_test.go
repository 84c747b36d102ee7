package hufftree

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

const classicTable = "102\n0\n99\n100\n100\n101\n97\n1100\n98\n1101\n101\n111\n"

func TestWriteTable(t *testing.T) {
	tree := makeClassicTree()

	var buf strings.Builder
	n, err := WriteTable(&buf, tree)
	if err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}
	if actual := buf.String(); actual != classicTable {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", classicTable, actual)
	}
	if n != int64(len(classicTable)) {
		t.Errorf("expected %d bytes, got %d", len(classicTable), n)
	}
}

func TestWriteTable_SingleSymbol(t *testing.T) {
	var ft FrequencyTable
	ft['a'] = 5
	tree, err := Build(ft)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var buf strings.Builder
	_, _ = WriteTable(&buf, tree)
	if expect := "97\n\n"; buf.String() != expect {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", expect, buf.String())
	}

	u, err := ReadTable(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	if _, ok := u.Root().(*Leaf); !ok || !u.Equal(tree) {
		t.Errorf("single-leaf tree did not survive a round trip: %v", u)
	}
}

func TestReadTable_RoundTrip(t *testing.T) {
	inputs := []string{
		"abcdef",
		"the quick brown fox jumps over the lazy dog",
		"mississippi",
		"\x00\x01\x02\xfe\xff\xff",
	}
	for _, input := range inputs {
		tree, err := Build(CountBytes([]byte(input)))
		if err != nil {
			t.Fatalf("Build failed: %v", err)
		}
		text, err := tree.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText failed: %v", err)
		}
		var u Tree
		if err := u.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText failed: %v", err)
		}
		if !u.Equal(tree) {
			t.Errorf("%q: tree changed across a round trip:\n\texpect: %v\n\tactual: %v", input, tree, &u)
		}

		again, _ := u.MarshalText()
		if string(again) != string(text) {
			t.Errorf("%q: table changed across a round trip:\n\texpect: %q\n\tactual: %q", input, text, again)
		}
	}
}

func TestReadTable_OrderIndependent(t *testing.T) {
	shuffled := "97\n1100\n101\n111\n102\n0\n98\n1101\n100\n101\n99\n100\n"
	tree, err := ReadTable(strings.NewReader(shuffled))
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	if !tree.Equal(makeClassicTree()) {
		t.Errorf("wrong tree: %v", tree)
	}

	var buf strings.Builder
	_, _ = WriteTable(&buf, tree)
	if buf.String() != classicTable {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", classicTable, buf.String())
	}
}

func TestReadTable_CRLF(t *testing.T) {
	tree, err := ReadTable(strings.NewReader("97\r\n0\r\n98\r\n1\r\n"))
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	if sym, _ := tree.Lookup(MustParseCode("1")); sym != 'b' {
		t.Errorf("expected symbol %d, got %d", 'b', sym)
	}
}

func TestReadTable_Errors(t *testing.T) {
	type testRow struct {
		name   string
		input  string
		expect error
		line   int
		record int
	}

	testData := [...]testRow{
		{"bad-bit", "97\n0\n98\n2\n", ErrBadPath, 4, 2},
		{"not-a-number", "97\n0\nb\n1\n", ErrBadSymbol, 3, 2},
		{"out-of-range", "256\n0\n", ErrBadSymbol, 1, 1},
		{"negative", "-1\n0\n", ErrBadSymbol, 1, 1},
		{"truncated", "97\n0\n98\n", ErrTruncatedRecord, 3, 2},
		{"trailing-blank", "97\n0\n98\n1\n\n", ErrBadSymbol, 5, 3},
		{"duplicate", "97\n0\n97\n1\n", ErrDuplicateSymbol, 4, 2},
		{"same-path", "97\n0\n98\n0\n", ErrPathConflict, 4, 2},
		{"through-leaf", "97\n0\n98\n01\n", ErrPathConflict, 4, 2},
		{"onto-internal", "97\n01\n98\n0\n", ErrPathConflict, 4, 2},
		{"incomplete", "97\n0\n98\n10\n", ErrIncompleteTree, 0, 0},
		{"empty", "", ErrEmptyTable, 0, 0},
		{"huge-path", "97\n" + strings.Repeat("0", 70000) + "\n", ErrBadPath, 2, 1},
		{"huge-symbol", "97\n0\n" + strings.Repeat("9", 70000) + "\n1\n", ErrBadSymbol, 3, 2},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := ReadTable(strings.NewReader(row.input))
			if !errors.Is(err, row.expect) {
				t.Fatalf("expected %v, got %v", row.expect, err)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if perr.Line != row.line || perr.Record != row.record {
				t.Errorf("expected line %d record %d, got line %d record %d", row.line, row.record, perr.Line, perr.Record)
			}
		})
	}
}

func TestTree_MarshalJSON(t *testing.T) {
	tree := makeClassicTree()

	raw, err := json.Marshal(tree)
	if err != nil {
		t.Errorf("json.Marshal failed: %v", err)
	}
	expectJSON := `[{"symbol":102,"path":"0"},{"symbol":99,"path":"100"},{"symbol":100,"path":"101"},{"symbol":97,"path":"1100"},{"symbol":98,"path":"1101"},{"symbol":101,"path":"111"}]`
	actualJSON := string(raw)
	if expectJSON != actualJSON {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectJSON, actualJSON)
	}

	var u Tree
	if err := json.Unmarshal(raw, &u); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}
	if !u.Equal(tree) {
		t.Errorf("wrong tree: %v", &u)
	}
}

func TestTree_UnmarshalJSON_Errors(t *testing.T) {
	type testRow struct {
		input  string
		expect error
	}

	testData := [...]testRow{
		{`[{"symbol":300,"path":"0"},{"symbol":1,"path":"1"}]`, ErrBadSymbol},
		{`[{"symbol":0,"path":"0"},{"symbol":1,"path":"2"}]`, ErrBadPath},
		{`[{"symbol":0,"path":"0"}]`, ErrIncompleteTree},
		{`[]`, ErrEmptyTable},
	}
	for _, row := range testData {
		var u Tree
		if err := json.Unmarshal([]byte(row.input), &u); !errors.Is(err, row.expect) {
			t.Errorf("%s: expected %v, got %v", row.input, row.expect, err)
		}
	}
}
