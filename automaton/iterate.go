package automaton

import "sort"

// IterateTransitions returns the automaton's transitions in a fixed,
// deterministic order (ascending by src, then symbol, then dst), so that
// tests and decoders never depend on map-iteration order.
func IterateTransitions(a *Automaton) []Transition {
	out := append([]Transition(nil), a.transitions...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Src != out[j].Src {
			return out[i].Src < out[j].Src
		}
		if out[i].Sym != out[j].Sym {
			return out[i].Sym < out[j].Sym
		}
		return out[i].Dst < out[j].Dst
	})
	return out
}
