package encode

import (
	"fmt"

	"github.com/hyperltl/advicebits/alphabet"
	"github.com/hyperltl/advicebits/sat"
)

// AcceptAtLeastOneOf asserts that at least one word in words is accepted by
// the automaton inv describes. For each word it Tseitin-encodes "some run
// over this word reaches a final state" as one auxiliary variable per
// candidate run (a run is a choice of destination state at every step),
// then ORs the auxiliary variables across every word's runs in a single
// closing clause, so the asserted property is truly "at least one of these
// words is accepted" rather than only the last word considered.
func AcceptAtLeastOneOf(words [][]alphabet.Symbol, inv *Invariant, alloc *VariableAllocator, solver sat.Solver) error {
	var allAux []int

	for _, word := range words {
		for _, run := range paths(inv.NumStates, len(word)) {
			conj := make([]int, 0, len(word)+1)
			src := 0
			for i, sym := range word {
				symIdx, err := inv.SymbolIndex(sym)
				if err != nil {
					return fmt.Errorf("encode: AcceptAtLeastOneOf: %w", err)
				}
				dst := run[i]
				conj = append(conj, inv.TransVar(src, symIdx, dst))
				src = dst
			}
			conj = append(conj, inv.StateVars[src])

			aux := alloc.Next(1)
			for _, v := range conj {
				if err := solver.AddClause([]int{v, -aux}); err != nil {
					return err
				}
			}
			allAux = append(allAux, aux)
		}
	}

	return solver.AddClause(allAux)
}

// paths enumerates every sequence of length steps of states in
// [0, numStates), the candidate destination-state choice at each step of a
// run starting from state 0.
func paths(numStates, steps int) [][]int {
	if steps == 0 {
		return [][]int{{}}
	}
	var out [][]int
	var gen func(prefix []int, depth int)
	gen = func(prefix []int, depth int) {
		if depth == steps {
			out = append(out, append([]int(nil), prefix...))
			return
		}
		for s := 0; s < numStates; s++ {
			gen(append(prefix, s), depth+1)
		}
	}
	gen(nil, 0)
	return out
}
