// Package automaton implements the multi-tape NFA engine advicebits builds
// every higher-level construction on top of: union, intersection,
// complement, determinisation, trimming, language emptiness with witness,
// and deterministic transition enumeration.
//
// Unlike a byte-oriented Thompson NFA, automata here have no epsilon
// transitions: the alphabet is explicit (a fixed-width bit-vector symbol per
// transition, see package alphabet) and every transition already consumes
// exactly one symbol, so nondeterminism is expressed purely through multiple
// initial states and multiple outgoing transitions on the same symbol.
package automaton
