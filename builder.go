package hufftree

import (
	"container/heap"
	"math"
)

// Build constructs the Huffman tree for the given frequencies.  Symbols with
// a frequency of 0 are left out of the tree entirely.  Build returns
// ErrNoSymbols if that leaves nothing at all.
//
// Construction repeatedly removes the two lowest-frequency nodes from a
// min-heap and replaces them with a new internal node whose left child is
// the first node removed and whose right child is the second.  Ties are
// broken deterministically:
//
//   - lower frequency first;
//   - at equal frequency, leaves before internal nodes;
//   - leaves in ascending Symbol order;
//   - internal nodes in the order they were created.
//
// If only one symbol has a positive frequency, the resulting Tree is a single
// Leaf and that symbol's Code is empty.
//
func Build(freq FrequencyTable) (*Tree, error) {
	nodes := make([]nodeAndFreq, 0, freq.Len())
	for sym := 0; sym < NumSymbols; sym++ {
		if f := freq[sym]; f != 0 {
			nodes = append(nodes, nodeAndFreq{&Leaf{Symbol(sym)}, f, uint32(sym)})
		}
	}
	if len(nodes) == 0 {
		return nil, ErrNoSymbols
	}

	h := freqHeap{nodes}
	h.Init()

	// Internal nodes rank after every possible leaf, in creation order.
	nextRank := uint32(NumSymbols)

	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndFreq)
		b := heap.Pop(&h).(nodeAndFreq)

		// Compute freqSum using saturating addition
		freqSum := a.freq + b.freq
		if freqSum < a.freq {
			freqSum = math.MaxUint64
		}

		heap.Push(&h, nodeAndFreq{&Internal{Left: a.node, Right: b.node}, freqSum, nextRank})
		nextRank++
	}

	root := heap.Pop(&h).(nodeAndFreq)
	return newTree(root.node), nil
}

// type nodeAndFreq + type freqHeap {{{

type nodeAndFreq struct {
	node Node
	freq uint64
	rank uint32
}

type freqHeap struct {
	list []nodeAndFreq
}

func (h *freqHeap) Init() {
	heap.Init(h)
}

func (h *freqHeap) Len() int {
	return len(h.list)
}

func (h *freqHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *freqHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.rank < b.rank
}

func (h *freqHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndFreq))
}

func (h *freqHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nodeAndFreq{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*freqHeap)(nil)

// }}}
