// Package encode builds the CNF candidate-search encoding the CEGIS loop
// drives: a variable allocator, the Invariant descriptor (trans/state
// variable ranges for one automaton-shaped unknown), the base automaton
// clauses (existence, accepting, completeness, determinism), the
// word-acceptance/word-rejection refinement clause generators, and the
// decoder turning a satisfying model back into an automaton.Automaton.
package encode
