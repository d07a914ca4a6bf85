package tape

import (
	"fmt"

	"github.com/hyperltl/advicebits/alphabet"
	"github.com/hyperltl/advicebits/automaton"
)

// RemoveSymbolOnIndex drops bit position bitIndex from tape tapeIndex's
// descriptor and erases the corresponding bit from every transition symbol.
// The result is language-preserving only when the removed bit was already a
// free variable (every assignment reachable from a given state on the
// remaining bits was already present for both 0 and 1 on the removed one) —
// callers are responsible for that precondition.
func RemoveSymbolOnIndex(a *automaton.Automaton, tapeIndex, bitIndex int) (*automaton.Automaton, error) {
	sm := a.SymbolMap()
	if tapeIndex < 0 || tapeIndex >= len(sm) {
		return nil, fmt.Errorf("%w: %d", ErrTapeIndexOutOfRange, tapeIndex)
	}
	old := sm[tapeIndex]
	if bitIndex < 0 || bitIndex >= len(old) {
		return nil, fmt.Errorf("%w: %d", ErrBitIndexOutOfRange, bitIndex)
	}

	globalPos := sm.TapeOffset(tapeIndex) + bitIndex

	newSM := sm.Clone()
	newTape := make(alphabet.TapeDescriptor, 0, len(old)-1)
	newTape = append(newTape, old[:bitIndex]...)
	newTape = append(newTape, old[bitIndex+1:]...)
	newSM[tapeIndex] = newTape

	bld := automaton.NewBuilder(newSM)
	bld.AddStates(a.NumStates())
	for _, s := range a.InitialStates() {
		bld.MarkInitial(s)
	}
	for _, s := range a.FinalStates() {
		bld.MarkFinal(s)
	}

	for _, t := range a.Transitions() {
		sym := alphabet.Concat(t.Sym.Slice(0, globalPos), t.Sym.Slice(globalPos+1, t.Sym.Width()))
		bld.AddTransition(t.Src, sym, t.Dst)
	}

	return bld.Build()
}
