package automaton

import "github.com/hyperltl/advicebits/alphabet"

type cameFrom struct {
	via  alphabet.Symbol
	from StateID
}

// Emptiness reports whether L(a) is empty and, if not, a shortest witness
// word: a canonical accepting path found by BFS from the initial states.
func Emptiness(a *Automaton) (empty bool, witness []alphabet.Symbol) {
	visited := make(map[StateID]bool)
	parent := make(map[StateID]cameFrom)
	var queue []StateID

	for _, s := range a.InitialStates() {
		if !visited[s] {
			visited[s] = true
			queue = append(queue, s)
			if a.IsFinal(s) {
				return false, nil
			}
		}
	}

	adj := make(map[StateID][]Transition)
	for _, t := range a.transitions {
		adj[t.Src] = append(adj[t.Src], t)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, t := range adj[cur] {
			if visited[t.Dst] {
				continue
			}
			visited[t.Dst] = true
			parent[t.Dst] = cameFrom{via: t.Sym, from: cur}
			if a.IsFinal(t.Dst) {
				return false, reconstruct(parent, t.Dst)
			}
			queue = append(queue, t.Dst)
		}
	}

	return true, nil
}

func reconstruct(parent map[StateID]cameFrom, final StateID) []alphabet.Symbol {
	var rev []alphabet.Symbol
	cur := final
	for {
		st, ok := parent[cur]
		if !ok {
			break
		}
		rev = append(rev, st.via)
		cur = st.from
	}
	out := make([]alphabet.Symbol, len(rev))
	for i, s := range rev {
		out[len(rev)-1-i] = s
	}
	return out
}
