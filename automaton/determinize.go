package automaton

import (
	"sort"
	"strconv"
	"strings"

	"github.com/hyperltl/advicebits/alphabet"
	"github.com/hyperltl/advicebits/internal/sparse"
)

// Determinize returns a DFA with L(result) = L(a), built by the classic
// subset construction. Only symbols that actually occur on some transition
// of a are considered: the full 2^w alphabet is never materialised, and
// subset construction never needs more than the observed alphabet to
// compute language-preserving determinism (a "missing" symbol simply has no
// successor subset, which is exactly the behavior a total, but
// unreachable-on-that-symbol, DFA would have anyway).
func Determinize(a *Automaton) (*Automaton, error) {
	adj := adjacencyBySymbol(a)
	used := a.UsedSymbols()

	bld := NewBuilder(a.symbolMap)
	ids := make(map[string]StateID)

	start := sortedSet(a.InitialStates())
	startKey := setKey(start)
	startID := bld.AddState()
	ids[startKey] = startID
	bld.MarkInitial(startID)
	if intersectsFinal(a, start) {
		bld.MarkFinal(startID)
	}

	queue := [][]StateID{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curID := ids[setKey(cur)]

		for _, sym := range used {
			next := move(adj, cur, sym, a.NumStates())
			if len(next) == 0 {
				continue
			}
			nk := setKey(next)
			nid, ok := ids[nk]
			if !ok {
				nid = bld.AddState()
				ids[nk] = nid
				if intersectsFinal(a, next) {
					bld.MarkFinal(nid)
				}
				queue = append(queue, next)
			}
			bld.AddTransition(curID, sym, nid)
		}
	}

	return bld.Build()
}

// adjacencyBySymbol indexes a's transitions as src -> symbol -> sorted dsts.
func adjacencyBySymbol(a *Automaton) map[StateID]map[alphabet.Symbol][]StateID {
	adj := make(map[StateID]map[alphabet.Symbol][]StateID)
	for _, t := range a.transitions {
		m, ok := adj[t.Src]
		if !ok {
			m = make(map[alphabet.Symbol][]StateID)
			adj[t.Src] = m
		}
		m[t.Sym] = append(m[t.Sym], t.Dst)
	}
	return adj
}

// move computes the successor subset reached from any state in cur on sym,
// tracking visited destination states in a SparseSet rather than a map —
// the same worklist-over-a-bounded-universe pattern NFA simulation uses,
// here applied to state subsets instead of single states.
func move(adj map[StateID]map[alphabet.Symbol][]StateID, cur []StateID, sym alphabet.Symbol, numStates int) []StateID {
	seen := sparse.NewSparseSet(uint32(numStates))
	for _, s := range cur {
		for _, d := range adj[s][sym] {
			seen.Insert(uint32(d))
		}
	}
	values := seen.Values()
	out := make([]StateID, len(values))
	for i, v := range values {
		out[i] = StateID(v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedSet(ids []StateID) []StateID {
	out := append([]StateID(nil), ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func setKey(ids []StateID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(int(id))
	}
	return strings.Join(parts, ",")
}

func intersectsFinal(a *Automaton, ids []StateID) bool {
	for _, s := range ids {
		if a.IsFinal(s) {
			return true
		}
	}
	return false
}
