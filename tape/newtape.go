package tape

import (
	"github.com/hyperltl/advicebits/alphabet"
	"github.com/hyperltl/advicebits/automaton"
)

// CreateNewTape appends an empty auxiliary tape. Since the new tape
// contributes zero bits, every transition symbol is unchanged — only the
// symbol map and derived NumberOfTapes grow.
func CreateNewTape(a *automaton.Automaton) (*automaton.Automaton, error) {
	newSM := append(a.SymbolMap().Clone(), alphabet.TapeDescriptor{})

	bld := automaton.NewBuilder(newSM)
	bld.AddStates(a.NumStates())
	for _, s := range a.InitialStates() {
		bld.MarkInitial(s)
	}
	for _, s := range a.FinalStates() {
		bld.MarkFinal(s)
	}
	for _, t := range a.Transitions() {
		bld.AddTransition(t.Src, t.Sym, t.Dst)
	}

	return bld.Build()
}
