package automaton

// Trim removes every state that is not reachable from an initial state, or
// from which no final state is reachable, preserving L(a). Minimise is
// defined as Trim followed by equivalent-state merging; this module only
// implements the Trim half (see Minimise's doc comment for why that is
// sufficient here).
func Trim(a *Automaton) (*Automaton, error) {
	fwd := make(map[StateID][]StateID)
	bwd := make(map[StateID][]StateID)
	for _, t := range a.transitions {
		fwd[t.Src] = append(fwd[t.Src], t.Dst)
		bwd[t.Dst] = append(bwd[t.Dst], t.Src)
	}

	reachable := bfs(fwd, a.InitialStates())
	coReachable := bfs(bwd, a.FinalStates())

	keep := make(map[StateID]bool)
	for s := range reachable {
		if coReachable[s] {
			keep[s] = true
		}
	}

	// renumber surviving states 0..m-1 in ascending original order
	order := sortedSet(keysOf(keep))
	remap := make(map[StateID]StateID, len(order))
	for i, s := range order {
		remap[s] = StateID(i)
	}

	bld := NewBuilder(a.symbolMap)
	bld.AddStates(len(order))
	for _, s := range order {
		if a.IsInitial(s) {
			bld.MarkInitial(remap[s])
		}
		if a.IsFinal(s) {
			bld.MarkFinal(remap[s])
		}
	}
	for _, t := range a.transitions {
		if keep[t.Src] && keep[t.Dst] {
			bld.AddTransition(remap[t.Src], t.Sym, remap[t.Dst])
		}
	}

	return bld.Build()
}

// Minimise is Trim followed by equivalent-state merging when available.
// No caller in this tree depends on true minimality, so this
// implementation only trims. Hopcroft-style partition refinement would
// plug in here if a caller ever needed canonical minimality; none of the
// CEGIS soundness properties this package's checks rely on require it.
func Minimise(a *Automaton) (*Automaton, error) {
	return Trim(a)
}

func bfs(adj map[StateID][]StateID, starts []StateID) map[StateID]bool {
	visited := make(map[StateID]bool, len(starts))
	queue := append([]StateID(nil), starts...)
	for _, s := range starts {
		visited[s] = true
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range adj[cur] {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return visited
}

func keysOf(m map[StateID]bool) []StateID {
	out := make([]StateID, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
