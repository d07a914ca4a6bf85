package tape

import (
	"fmt"

	"github.com/hyperltl/advicebits/alphabet"
	"github.com/hyperltl/advicebits/automaton"
)

// MultitapeLift lifts a single-tape automaton into a `traces`-tape one where
// each of the first traces tapes carries an independent run of a, all
// synchronized on the same underlying state space, plus one empty auxiliary
// tape appended last. The result accepts a tuple of words
// (w_0, ..., w_{traces-1}) iff every w_i is individually accepted by a.
//
// a is determinised first: intersection of the per-tape copies below is
// only sound when every copy shares one deterministic state space driven
// independently by each tape.
func MultitapeLift(a *automaton.Automaton, traces int) (*automaton.Automaton, error) {
	if a.NumberOfTapes() != 1 {
		return nil, ErrNotSingleTape
	}
	if traces < 2 {
		return nil, ErrTraceCountTooSmall
	}

	dfa, err := automaton.Determinize(a)
	if err != nil {
		return nil, fmt.Errorf("tape: MultitapeLift: %w", err)
	}

	base := dfa.SymbolMap()[0]
	newSM := make(alphabet.SymbolMap, 0, traces+1)
	for i := 0; i < traces; i++ {
		newSM = append(newSM, base.Clone())
	}
	newSM = append(newSM, alphabet.TapeDescriptor{}) // auxiliary tape

	copies := make([]*automaton.Automaton, traces)
	for i := 0; i < traces; i++ {
		copies[i], err = parallelCopy(dfa, newSM, i, len(base))
		if err != nil {
			return nil, err
		}
	}

	result := copies[0]
	for i := 1; i < len(copies); i++ {
		result, err = automaton.Intersect(result, copies[i])
		if err != nil {
			return nil, fmt.Errorf("tape: MultitapeLift: %w", err)
		}
	}
	return automaton.Minimise(result)
}

// parallelCopy builds one of MultitapeLift's n copies: transitions keep dfa's
// original symbol at tape position `at` and enumerate every possible
// assignment of tapeWidth-wide free variables on the remaining `traces-1`
// real tapes (the auxiliary tape stays empty).
func parallelCopy(dfa *automaton.Automaton, sm alphabet.SymbolMap, at, tapeWidth int) (*automaton.Automaton, error) {
	bld := automaton.NewBuilder(sm)
	bld.AddStates(dfa.NumStates())
	for _, s := range dfa.InitialStates() {
		bld.MarkInitial(s)
	}
	for _, s := range dfa.FinalStates() {
		bld.MarkFinal(s)
	}

	numRealTapes := len(sm) - 1
	freeWidth := (numRealTapes - 1) * tapeWidth
	beforeWidth := at * tapeWidth
	afterWidth := freeWidth - beforeWidth

	for _, t := range dfa.Transitions() {
		for _, free := range alphabet.EnumerateWidth(freeWidth) {
			before := free.Slice(0, beforeWidth)
			after := free.Slice(beforeWidth, beforeWidth+afterWidth)
			sym := alphabet.Concat(before, t.Sym, after)
			bld.AddTransition(t.Src, sym, t.Dst)
		}
	}

	return bld.Build()
}

// MultitapeLiftTransducer is MultitapeLift's transducer counterpart: it
// lifts a 2-tape (current, next) transducer into a 2*traces+2-tape one,
// pairing each trace's current and next tape and appending one empty
// auxiliary tape after each half.
func MultitapeLiftTransducer(t *automaton.Transducer, traces int) (*automaton.Transducer, error) {
	if t.NumberOfTapes() != 2 {
		return nil, ErrNotTransducer
	}
	if traces < 2 {
		return nil, ErrTraceCountTooSmall
	}

	sm := t.SymbolMap()
	curDesc, nextDesc := sm[0], sm[1]

	newSM := make(alphabet.SymbolMap, 0, 2*traces+2)
	for i := 0; i < traces; i++ {
		newSM = append(newSM, curDesc.Clone())
	}
	newSM = append(newSM, alphabet.TapeDescriptor{})
	for i := 0; i < traces; i++ {
		newSM = append(newSM, nextDesc.Clone())
	}
	newSM = append(newSM, alphabet.TapeDescriptor{})

	copies := make([]*automaton.Automaton, traces)
	var err error
	for i := 0; i < traces; i++ {
		copies[i], err = parallelTransducerCopy(t.Automaton, newSM, i, len(curDesc), len(nextDesc))
		if err != nil {
			return nil, err
		}
	}

	result := copies[0]
	for i := 1; i < len(copies); i++ {
		result, err = automaton.Intersect(result, copies[i])
		if err != nil {
			return nil, fmt.Errorf("tape: MultitapeLiftTransducer: %w", err)
		}
	}
	result, err = automaton.Minimise(result)
	if err != nil {
		return nil, err
	}
	return automaton.NewTransducer(result)
}

func parallelTransducerCopy(t *automaton.Automaton, sm alphabet.SymbolMap, at, curWidth, nextWidth int) (*automaton.Automaton, error) {
	bld := automaton.NewBuilder(sm)
	bld.AddStates(t.NumStates())
	for _, s := range t.InitialStates() {
		bld.MarkInitial(s)
	}
	for _, s := range t.FinalStates() {
		bld.MarkFinal(s)
	}

	traces := (len(sm) - 2) / 2
	curFreeWidth := (traces - 1) * curWidth
	nextFreeWidth := (traces - 1) * nextWidth
	curBefore := at * curWidth
	curAfter := curFreeWidth - curBefore
	nextBefore := at * nextWidth
	nextAfter := nextFreeWidth - nextBefore

	for _, tr := range t.Transitions() {
		curBits := tr.Sym.Slice(0, curWidth)
		nextBits := tr.Sym.Slice(curWidth, curWidth+nextWidth)
		for _, curFree := range alphabet.EnumerateWidth(curFreeWidth) {
			curB := curFree.Slice(0, curBefore)
			curA := curFree.Slice(curBefore, curBefore+curAfter)
			for _, nextFree := range alphabet.EnumerateWidth(nextFreeWidth) {
				nextB := nextFree.Slice(0, nextBefore)
				nextA := nextFree.Slice(nextBefore, nextBefore+nextAfter)
				sym := alphabet.Concat(curB, curBits, curA, nextB, nextBits, nextA)
				bld.AddTransition(tr.Src, sym, tr.Dst)
			}
		}
	}

	return bld.Build()
}
