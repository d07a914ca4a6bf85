package automaton

import "github.com/hyperltl/advicebits/alphabet"

// accepts runs word against a as an NFA (multiple initial/current states)
// and reports whether some run ends in a final state. Test-only helper.
func accepts(a *Automaton, word []alphabet.Symbol) bool {
	adj := adjacencyBySymbol(a)
	cur := map[StateID]bool{}
	for _, s := range a.InitialStates() {
		cur[s] = true
	}
	for _, sym := range word {
		next := map[StateID]bool{}
		for s := range cur {
			for _, d := range adj[s][sym] {
				next[d] = true
			}
		}
		cur = next
		if len(cur) == 0 {
			return false
		}
	}
	for s := range cur {
		if a.IsFinal(s) {
			return true
		}
	}
	return false
}

func allWordsUpTo(w, maxLen int) [][]alphabet.Symbol {
	symbols := alphabet.EnumerateWidth(w)
	var out [][]alphabet.Symbol
	var gen func(prefix []alphabet.Symbol, depth int)
	gen = func(prefix []alphabet.Symbol, depth int) {
		cp := append([]alphabet.Symbol(nil), prefix...)
		out = append(out, cp)
		if depth == maxLen {
			return
		}
		for _, s := range symbols {
			gen(append(prefix, s), depth+1)
		}
	}
	gen(nil, 0)
	return out
}
