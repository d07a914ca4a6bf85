package tape

import (
	"fmt"

	"github.com/hyperltl/advicebits/alphabet"
	"github.com/hyperltl/advicebits/automaton"
)

// ExtendAlphabetOnTape replaces tape tapeIndex's descriptor with newDescriptor,
// a cylindrification: atomic propositions newDescriptor shares with the old
// descriptor keep their transition values, and every name newDescriptor adds
// is a free variable — each transition is replaced by one copy per
// assignment of the new variables, so the language is unchanged when
// projected back onto the old tape's propositions. Generalised to an
// arbitrary tape index rather than only the last one.
func ExtendAlphabetOnTape(a *automaton.Automaton, tapeIndex int, newDescriptor alphabet.TapeDescriptor) (*automaton.Automaton, error) {
	sm := a.SymbolMap()
	if tapeIndex < 0 || tapeIndex >= len(sm) {
		return nil, fmt.Errorf("%w: %d", ErrTapeIndexOutOfRange, tapeIndex)
	}

	old := sm[tapeIndex]
	mapping := make([]int, len(newDescriptor)) // mapping[i] = old bit position, or -1 if free
	numNew := 0
	for i, name := range newDescriptor {
		if pos := old.Index(name); pos >= 0 {
			mapping[i] = pos
		} else {
			mapping[i] = -1
			numNew++
		}
	}

	prefixLen := sm.TapeOffset(tapeIndex)
	suffixStart := prefixLen + len(old)

	newSM := sm.Clone()
	newSM[tapeIndex] = newDescriptor.Clone()

	bld := automaton.NewBuilder(newSM)
	bld.AddStates(a.NumStates())
	for _, s := range a.InitialStates() {
		bld.MarkInitial(s)
	}
	for _, s := range a.FinalStates() {
		bld.MarkFinal(s)
	}

	assignments := alphabet.EnumerateWidth(numNew)
	for _, t := range a.Transitions() {
		prefix := t.Sym.Slice(0, prefixLen)
		oldTape := t.Sym.Slice(prefixLen, suffixStart)
		suffix := t.Sym.Slice(suffixStart, t.Sym.Width())

		for _, assign := range assignments {
			newTape := make([]byte, len(newDescriptor))
			freeIdx := 0
			for i, pos := range mapping {
				if pos >= 0 {
					newTape[i] = byte(oldTape.Bit(pos)) + '0'
				} else {
					newTape[i] = assign[freeIdx]
					freeIdx++
				}
			}
			sym := alphabet.Concat(prefix, alphabet.Symbol(newTape), suffix)
			bld.AddTransition(t.Src, sym, t.Dst)
		}
	}

	return bld.Build()
}
