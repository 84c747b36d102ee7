package hufftree

import (
	"strings"
)

// bitSlice is a BitSource over a fixed list of bit values.
type bitSlice struct {
	bits []int
	pos  int
}

func bitsOf(path string) *bitSlice {
	bs := &bitSlice{bits: make([]int, 0, len(path))}
	for _, ch := range path {
		bs.bits = append(bs.bits, int(ch-'0'))
	}
	return bs
}

func (bs *bitSlice) HasNextBit() bool {
	return bs.pos < len(bs.bits)
}

func (bs *bitSlice) NextBit() int {
	bit := bs.bits[bs.pos]
	bs.pos++
	return bit
}

func classicFrequencies() FrequencyTable {
	var ft FrequencyTable
	ft['a'] = 5
	ft['b'] = 9
	ft['c'] = 12
	ft['d'] = 13
	ft['e'] = 16
	ft['f'] = 45
	return ft
}

func makeClassicTree() *Tree {
	t, err := Build(classicFrequencies())
	if err != nil {
		panic(err)
	}
	return t
}

// encodePaths concatenates the paths of each byte of text.
func encodePaths(t *Tree, text string) string {
	var buf strings.Builder
	for i := 0; i < len(text); i++ {
		hc, found := t.Code(Symbol(text[i]))
		if !found {
			panic("symbol not in tree")
		}
		buf.WriteString(hc.Path())
	}
	return buf.String()
}
