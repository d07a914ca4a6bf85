package automaton

import "github.com/hyperltl/advicebits/alphabet"

// Complement returns an automaton with L(result) = universe* \ L(a), by
// determinising a, completing it over universe (complement requires a
// total alphabet definition), and flipping finality.
//
// universe is the alphabet Complement treats as total. Passing
// alphabet.EnumerateWidth(a.Width()) gives the textbook Σ*; callers working
// with a wide tape width should instead pass a.UsedSymbols() (or another
// restricted universe) to avoid a 2^w blowup — the two choices agree on
// every word built only from symbols in universe.
func Complement(a *Automaton, universe []alphabet.Symbol) (*Automaton, error) {
	dfa, err := Determinize(a)
	if err != nil {
		return nil, err
	}
	complete := completeOverUniverse(dfa, universe)

	bld := NewBuilder(complete.symbolMap)
	bld.AddStates(complete.numStates)
	for s := range complete.initial {
		bld.MarkInitial(s)
	}
	for s := 0; s < complete.numStates; s++ {
		if !complete.IsFinal(StateID(s)) {
			bld.MarkFinal(StateID(s))
		}
	}
	for _, t := range complete.transitions {
		bld.AddTransition(t.Src, t.Sym, t.Dst)
	}
	return bld.Build()
}

// completeOverUniverse adds a single trap state and routes every missing
// (state, symbol) pair from universe to it, including the trap's own
// self-loops, so the result has exactly one outgoing transition per symbol
// in universe from every state.
func completeOverUniverse(dfa *Automaton, universe []alphabet.Symbol) *Automaton {
	adj := adjacencyBySymbol(dfa)

	bld := NewBuilder(dfa.symbolMap)
	bld.AddStates(dfa.numStates)
	trap := bld.AddState()

	for s := range dfa.initial {
		bld.MarkInitial(s)
	}
	for s := range dfa.final {
		bld.MarkFinal(s)
	}

	for _, t := range dfa.transitions {
		bld.AddTransition(t.Src, t.Sym, t.Dst)
	}

	for s := 0; s < dfa.numStates; s++ {
		for _, sym := range universe {
			if dsts := adj[StateID(s)][sym]; len(dsts) == 0 {
				bld.AddTransition(StateID(s), sym, trap)
			}
		}
	}
	for _, sym := range universe {
		bld.AddTransition(trap, sym, trap)
	}

	out, _ := bld.Build() // numStates/symbolMap/transitions are all internally consistent by construction
	return out
}
