// Package alphabet implements the bit-vector alphabet that every automaton
// in advicebits is defined over.
//
// An alphabet of width w is the set {0,1}^w. A SymbolMap names the bit
// positions by grouping them into tapes: tape i is an ordered list of
// atomic-proposition names, and bit j within tape i is the truth value of
// tape[i][j] at the current position of tape i. Multi-tape symbols are the
// left-to-right concatenation of each tape's bits, so ordering within a tape
// is observable — it fixes bit positions.
//
// Symbols are represented as fixed-width strings of '0'/'1' characters
// rather than machine integers: automata in this module rarely need
// arithmetic on symbols, but constantly need to slice, concatenate and
// splice them when tapes are extended or removed, which strings do cheaply
// and without a separate width parameter tagging along.
package alphabet
