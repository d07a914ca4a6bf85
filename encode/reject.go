package encode

import (
	"fmt"

	"github.com/hyperltl/advicebits/alphabet"
	"github.com/hyperltl/advicebits/sat"
)

// Reject asserts that word is NOT accepted by the automaton inv describes
// (add_word_to_be_rejected): for every possible run over word, either some
// step's transition does not hold or the run's final state is not
// accepting. The empty word is rejected outright by forcing the initial
// state to be non-final.
func Reject(word []alphabet.Symbol, inv *Invariant, solver sat.Solver) error {
	if len(word) == 0 {
		return solver.AddClause([]int{-inv.StateVars[0]})
	}

	for _, run := range paths(inv.NumStates, len(word)) {
		clause := make([]int, 0, len(word)+1)
		src := 0
		for i, sym := range word {
			symIdx, err := inv.SymbolIndex(sym)
			if err != nil {
				return fmt.Errorf("encode: Reject: %w", err)
			}
			dst := run[i]
			clause = append(clause, -inv.TransVar(src, symIdx, dst))
			src = dst
		}
		clause = append(clause, -inv.StateVars[src])
		if err := solver.AddClause(clause); err != nil {
			return err
		}
	}
	return nil
}
