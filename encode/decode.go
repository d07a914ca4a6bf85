package encode

import (
	"github.com/hyperltl/advicebits/alphabet"
	"github.com/hyperltl/advicebits/automaton"
	"github.com/hyperltl/advicebits/sat"
)

// Decode turns a satisfying model back into an automaton.Automaton over sm:
// state 0 is the sole initial state, state s is final iff inv.StateVars[s]
// is true in model, and a transition (src, sym, dst) exists iff
// inv.TransVar(src, symIdx, dst) is true. The result is trimmed before
// returning, so every caller gets an automaton with no unreachable or
// dead states regardless of how it goes on to use it.
func Decode(model sat.Model, inv *Invariant, sm alphabet.SymbolMap) (*automaton.Automaton, error) {
	bld := automaton.NewBuilder(sm)
	bld.AddStates(inv.NumStates)
	bld.MarkInitial(0)

	for s, v := range inv.StateVars {
		if model[v] {
			bld.MarkFinal(automaton.StateID(s))
		}
	}

	for src := 0; src < inv.NumStates; src++ {
		for symIdx, sym := range inv.UsedAlphabet {
			for dst := 0; dst < inv.NumStates; dst++ {
				if model[inv.TransVar(src, symIdx, dst)] {
					bld.AddTransition(automaton.StateID(src), sym, automaton.StateID(dst))
				}
			}
		}
	}

	built, err := bld.Build()
	if err != nil {
		return nil, err
	}
	return automaton.Trim(built)
}
