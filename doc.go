// Package hufftree implements explicit Huffman code trees over an 8-bit
// alphabet.  A Tree is built from symbol frequencies, persisted as a
// line-oriented table of (symbol, path) records, reconstructed from such a
// table, and used as a state machine to decode a stream of bits one bit at a
// time.
//
// References:
//
//     D. A. Huffman, "A Method for the Construction of Minimum-Redundancy
//     Codes", Proceedings of the IRE, 1952
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package hufftree
