package tape

import (
	"github.com/hyperltl/advicebits/alphabet"
	"github.com/hyperltl/advicebits/automaton"
)

// accepts runs word against a as an NFA. Test-only helper mirroring
// automaton's own (unexported, package-private) test helper — duplicated
// here since tape's tests exercise automata only through automaton's
// exported API.
func accepts(a *automaton.Automaton, word []alphabet.Symbol) bool {
	adj := make(map[automaton.StateID]map[alphabet.Symbol][]automaton.StateID)
	for _, t := range a.Transitions() {
		m, ok := adj[t.Src]
		if !ok {
			m = make(map[alphabet.Symbol][]automaton.StateID)
			adj[t.Src] = m
		}
		m[t.Sym] = append(m[t.Sym], t.Dst)
	}

	cur := map[automaton.StateID]bool{}
	for _, s := range a.InitialStates() {
		cur[s] = true
	}
	for _, sym := range word {
		next := map[automaton.StateID]bool{}
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

func allWordsUpTo(symbols []alphabet.Symbol, maxLen int) [][]alphabet.Symbol {
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
