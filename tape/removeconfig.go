package tape

import (
	"github.com/hyperltl/advicebits/automaton"
)

// RemoveConfigurationTape drops the last tape entirely and projects every
// transition symbol down to the remaining tapes' bits — the inverse of
// appending a configuration tape via ExtendAlphabetOnTape.
func RemoveConfigurationTape(a *automaton.Automaton) (*automaton.Automaton, error) {
	sm := a.SymbolMap()
	if len(sm) == 0 {
		return nil, ErrNotSingleTape
	}
	keepWidth := sm.Width() - len(sm[len(sm)-1])
	newSM := sm.Clone()[:len(sm)-1]

	bld := automaton.NewBuilder(newSM)
	bld.AddStates(a.NumStates())
	for _, s := range a.InitialStates() {
		bld.MarkInitial(s)
	}
	for _, s := range a.FinalStates() {
		bld.MarkFinal(s)
	}
	for _, t := range a.Transitions() {
		bld.AddTransition(t.Src, t.Sym.Slice(0, keepWidth), t.Dst)
	}

	return bld.Build()
}
