package automaton

// Union returns an automaton whose language is L(a) ∪ L(b). Since automata
// here support multiple initial states directly, union is a disjoint union
// of state spaces with b's states shifted past a's — no epsilon transitions
// needed, matching mata_nfa.union's semantics but without the library.
func Union(a, b *Automaton) (*Automaton, error) {
	if err := requireSameAlphabet("union", a, b); err != nil {
		return nil, err
	}

	offset := StateID(a.numStates)
	bld := NewBuilder(a.symbolMap)
	bld.AddStates(a.numStates + b.numStates)

	for s := range a.initial {
		bld.MarkInitial(s)
	}
	for s := range a.final {
		bld.MarkFinal(s)
	}
	for s := range b.initial {
		bld.MarkInitial(s + offset)
	}
	for s := range b.final {
		bld.MarkFinal(s + offset)
	}

	for _, t := range a.transitions {
		bld.AddTransition(t.Src, t.Sym, t.Dst)
	}
	for _, t := range b.transitions {
		bld.AddTransition(t.Src+offset, t.Sym, t.Dst+offset)
	}

	return bld.Build()
}
