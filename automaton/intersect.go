package automaton

// Intersect returns an automaton whose language is L(a) ∩ L(b), built by
// the standard product construction: states are pairs (sa, sb), and a
// transition (sa,sb) -> (da,db) on symbol x exists iff a has sa->da on x
// and b has sb->db on x.
func Intersect(a, b *Automaton) (*Automaton, error) {
	if err := requireSameAlphabet("intersect", a, b); err != nil {
		return nil, err
	}

	pairID := func(sa, sb StateID) StateID {
		return sa*StateID(b.numStates) + sb
	}

	bld := NewBuilder(a.symbolMap)
	bld.AddStates(a.numStates * b.numStates)

	for sa := range a.initial {
		for sb := range b.initial {
			bld.MarkInitial(pairID(sa, sb))
		}
	}
	for sa := range a.final {
		for sb := range b.final {
			bld.MarkFinal(pairID(sa, sb))
		}
	}

	// Index b's outgoing transitions by source state. The join below still
	// compares every transition of a with every transition of b, keeping
	// the pairs whose symbols match.
	bBySrc := make(map[StateID][]Transition)
	for _, t := range b.transitions {
		bBySrc[t.Src] = append(bBySrc[t.Src], t)
	}

	for sb, bTrans := range bBySrc {
		for _, ta := range a.transitions {
			for _, tb := range bTrans {
				if tb.Sym != ta.Sym {
					continue
				}
				bld.AddTransition(pairID(ta.Src, sb), ta.Sym, pairID(ta.Dst, tb.Dst))
			}
		}
	}

	return bld.Build()
}
