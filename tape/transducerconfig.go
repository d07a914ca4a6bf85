package tape

import (
	"fmt"

	"github.com/hyperltl/advicebits/alphabet"
	"github.com/hyperltl/advicebits/automaton"
)

// AddTransducerNextSymbols turns a MultitapeLift-shaped automaton — traces
// real tapes of one common descriptor plus a trailing empty auxiliary tape —
// into a transducer: each real tape gets a matching "next" tape of free
// variables, producing the 2*traces tape layout [cur_0..cur_n-1,
// next_0..next_n-1] the CEGIS loop's inductiveness check runs over. The
// original auxiliary tape is dropped here;
// ExtendTransducerAlphabetOnConfigurationTapes reintroduces it as a pair of
// dedicated configuration tapes.
func AddTransducerNextSymbols(a *automaton.Automaton, traces int) (*automaton.Transducer, error) {
	sm := a.SymbolMap()
	if len(sm) != traces+1 {
		return nil, fmt.Errorf("tape: AddTransducerNextSymbols: expected %d tapes (traces+aux), got %d", traces+1, len(sm))
	}

	tapeWidth := len(sm[0])
	newSM := make(alphabet.SymbolMap, 0, 2*traces)
	for i := 0; i < traces; i++ {
		newSM = append(newSM, sm[i].Clone())
	}
	for i := 0; i < traces; i++ {
		newSM = append(newSM, sm[i].Clone())
	}

	bld := automaton.NewBuilder(newSM)
	bld.AddStates(a.NumStates())
	for _, s := range a.InitialStates() {
		bld.MarkInitial(s)
	}
	for _, s := range a.FinalStates() {
		bld.MarkFinal(s)
	}

	curWidth := traces * tapeWidth
	for _, t := range a.Transitions() {
		cur := t.Sym.Slice(0, curWidth)
		for _, next := range alphabet.EnumerateWidth(curWidth) {
			bld.AddTransition(t.Src, alphabet.Concat(cur, next), t.Dst)
		}
	}

	built, err := bld.Build()
	if err != nil {
		return nil, err
	}
	return automaton.NewTransducer(built)
}

// ExtendTransducerAlphabetOnConfigurationTapes appends one configuration
// tape carrying configDescriptor after the current half and one after the
// next half, each a free variable since the transducer's transitions never
// previously constrained configuration bits.
func ExtendTransducerAlphabetOnConfigurationTapes(t *automaton.Transducer, configDescriptor alphabet.TapeDescriptor) (*automaton.Transducer, error) {
	half := t.TapesHalf()
	sm := t.SymbolMap()

	newSM := make(alphabet.SymbolMap, 0, len(sm)+2)
	newSM = append(newSM, sm[:half]...)
	newSM = append(newSM, configDescriptor.Clone())
	newSM = append(newSM, sm[half:]...)
	newSM = append(newSM, configDescriptor.Clone())

	bld := automaton.NewBuilder(newSM)
	bld.AddStates(t.NumStates())
	for _, s := range t.InitialStates() {
		bld.MarkInitial(s)
	}
	for _, s := range t.FinalStates() {
		bld.MarkFinal(s)
	}

	curWidth := sm.TapeOffset(half)
	configWidth := len(configDescriptor)
	for _, tr := range t.Transitions() {
		cur := tr.Sym.Slice(0, curWidth)
		next := tr.Sym.Slice(curWidth, tr.Sym.Width())
		for _, curConf := range alphabet.EnumerateWidth(configWidth) {
			for _, nextConf := range alphabet.EnumerateWidth(configWidth) {
				sym := alphabet.Concat(cur, curConf, next, nextConf)
				bld.AddTransition(tr.Src, sym, tr.Dst)
			}
		}
	}

	built, err := bld.Build()
	if err != nil {
		return nil, err
	}
	return automaton.NewTransducer(built)
}
