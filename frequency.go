package hufftree

import (
	"io"

	"github.com/pkg/errors"
)

// FrequencyTable holds the number of occurrences of each Symbol, indexed by
// the Symbol's code.  Only positive entries take part in building a Tree.
type FrequencyTable [NumSymbols]uint64

// CountBytes returns the FrequencyTable for the given data.
func CountBytes(data []byte) FrequencyTable {
	var ft FrequencyTable
	ft.Add(data)
	return ft
}

// CountFrequencies reads r to EOF and returns the FrequencyTable of
// everything it read.
func CountFrequencies(r io.Reader) (FrequencyTable, error) {
	var ft FrequencyTable
	var buf [32 << 10]byte
	for {
		n, err := r.Read(buf[:])
		ft.Add(buf[:n])
		if err == io.EOF {
			return ft, nil
		}
		if err != nil {
			return ft, errors.Wrap(err, "hufftree: failed to count frequencies")
		}
	}
}

// Add counts one occurrence of every byte in data.  Counts saturate instead
// of wrapping around.
func (ft *FrequencyTable) Add(data []byte) {
	for _, ch := range data {
		if ft[ch] != ^uint64(0) {
			ft[ch]++
		}
	}
}

// Len returns the number of symbols with a positive frequency.
func (ft *FrequencyTable) Len() int {
	var n int
	for _, freq := range ft {
		if freq != 0 {
			n++
		}
	}
	return n
}

// Symbols returns the symbols with a positive frequency, in ascending order.
func (ft *FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, ft.Len())
	for sym, freq := range ft {
		if freq != 0 {
			out = append(out, Symbol(sym))
		}
	}
	return out
}
