package cegis

import (
	"fmt"
	"sort"

	"github.com/hyperltl/advicebits/alphabet"
	"github.com/hyperltl/advicebits/automaton"
)

// defaultChecker implements every semantic check expressible purely in
// terms of the automaton/tape algebra (initial inclusion, inductiveness,
// irreflexivity, transitivity, backwards reachability). CheckTransitionCondition
// needs the out-of-scope formula frontend's eventuality transducer and
// trace-quantifier semantics and is left for an injected Checker.
type defaultChecker struct{}

// NewDefaultChecker returns the Checker grounded entirely in this module's
// own automaton/tape packages.
func NewDefaultChecker() Checker { return defaultChecker{} }

// CheckInitialInclusion verifies L(I) ⊆ L(candidateA) by intersecting I
// with candidateA's complement and checking emptiness.
func (defaultChecker) CheckInitialInclusion(inst *Instance, candidateA *automaton.Automaton) (bool, alphabet.Word, error) {
	universe := unionSymbols(inst.Initial.UsedSymbols(), candidateA.UsedSymbols())
	notA, err := automaton.Complement(candidateA, universe)
	if err != nil {
		return false, nil, fmt.Errorf("cegis: CheckInitialInclusion: %w", err)
	}
	violating, err := automaton.Intersect(inst.Initial, notA)
	if err != nil {
		return false, nil, fmt.Errorf("cegis: CheckInitialInclusion: %w", err)
	}
	empty, witness := automaton.Emptiness(violating)
	return empty, witness, nil
}

// CheckInductiveness verifies ∀(c,c′) ∈ L(S̃), c ∈ L(candidateA) ⇒
// c′ ∈ L(candidateA), by building the automaton of S̃-steps whose source is
// in A and whose destination is not, and checking it is empty.
func (defaultChecker) CheckInductiveness(inst *Instance, candidateA *automaton.Automaton) (bool, alphabet.Word, error) {
	half := inst.ExtendedTransducer.TapesHalf()
	nextTapes := inst.ExtendedTransducer.SymbolMap()[:half]

	curOK, err := insertFreeTapes(candidateA, candidateA.NumberOfTapes(), nextTapes)
	if err != nil {
		return false, nil, fmt.Errorf("cegis: CheckInductiveness: %w", err)
	}
	// The universe must be every symbol a configuration tape can hold, not
	// just the ones candidateA happens to use — a symbol candidateA never
	// transitions on would otherwise be absent from notA altogether rather
	// than correctly routed to its trap state. It is taken from the cur half
	// of every symbol the extended transducer uses, plus candidateA's own.
	curW := inst.ExtendedTransducer.SymbolMap().TapeOffset(half)
	var curSyms []alphabet.Symbol
	for _, sym := range inst.ExtendedTransducer.UsedSymbols() {
		curSyms = append(curSyms, sym.Slice(0, curW))
	}
	notA, err := automaton.Complement(candidateA, unionSymbols(curSyms, candidateA.UsedSymbols()))
	if err != nil {
		return false, nil, fmt.Errorf("cegis: CheckInductiveness: %w", err)
	}
	nextBad, err := insertFreeTapes(notA, 0, nextTapes)
	if err != nil {
		return false, nil, fmt.Errorf("cegis: CheckInductiveness: %w", err)
	}
	step, err := automaton.Intersect(curOK, nextBad)
	if err != nil {
		return false, nil, fmt.Errorf("cegis: CheckInductiveness: %w", err)
	}
	violating, err := automaton.Intersect(step, inst.ExtendedTransducer.Automaton)
	if err != nil {
		return false, nil, fmt.Errorf("cegis: CheckInductiveness: %w", err)
	}
	empty, witness := automaton.Emptiness(violating)
	return empty, witness, nil
}

// CheckIrreflexive verifies no configuration c has ⟨c,c⟩ ∈ L(candidateT) by
// intersecting T with the diagonal automaton (cur tapes equal next tapes
// symbol-for-symbol) and checking emptiness.
func (defaultChecker) CheckIrreflexive(inst *Instance, candidateT *automaton.Transducer) (bool, alphabet.Word, error) {
	diag, err := diagonalAutomaton(candidateT)
	if err != nil {
		return false, nil, fmt.Errorf("cegis: CheckIrreflexive: %w", err)
	}
	violating, err := automaton.Intersect(candidateT.Automaton, diag)
	if err != nil {
		return false, nil, fmt.Errorf("cegis: CheckIrreflexive: %w", err)
	}
	empty, witness := automaton.Emptiness(violating)
	return empty, witness, nil
}

// CheckTransitive verifies ⟨a,b⟩,⟨b,c⟩ ∈ L(candidateT) ⇒ ⟨a,c⟩ ∈ L(candidateT)
// for a ∈ L(candidateA), by building the 3-tape-half composite (a,b,c) where
// a-b and b-c both hold via T and a ∈ A, and checking it is contained in the
// (a,c)-with-b-free reading of T.
func (defaultChecker) CheckTransitive(inst *Instance, candidateT *automaton.Transducer, candidateA *automaton.Automaton) (bool, alphabet.Word, error) {
	half := candidateT.TapesHalf()
	halfTapes := candidateT.SymbolMap()[:half]

	tab, err := insertFreeTapes(candidateT.Automaton, candidateT.NumberOfTapes(), halfTapes) // (a,b,c_free)
	if err != nil {
		return false, nil, fmt.Errorf("cegis: CheckTransitive: %w", err)
	}
	tbc, err := insertFreeTapes(candidateT.Automaton, 0, halfTapes) // (a_free,b,c)
	if err != nil {
		return false, nil, fmt.Errorf("cegis: CheckTransitive: %w", err)
	}
	abViaT, err := automaton.Intersect(tab, tbc)
	if err != nil {
		return false, nil, fmt.Errorf("cegis: CheckTransitive: %w", err)
	}

	bcFree := append(halfTapes.Clone(), halfTapes.Clone()...)
	aInA, err := insertFreeTapes(candidateA, candidateA.NumberOfTapes(), bcFree) // (a=A, b_free, c_free)
	if err != nil {
		return false, nil, fmt.Errorf("cegis: CheckTransitive: %w", err)
	}
	abc, err := automaton.Intersect(abViaT, aInA)
	if err != nil {
		return false, nil, fmt.Errorf("cegis: CheckTransitive: %w", err)
	}

	acFreeB, err := insertFreeTapes(candidateT.Automaton, half, halfTapes) // (a, b_free, c)
	if err != nil {
		return false, nil, fmt.Errorf("cegis: CheckTransitive: %w", err)
	}
	// The universe must cover every symbol abc might present, not just the
	// ones acFreeB itself uses: a symbol that appears only in abc would be
	// missing from notAC, so a violating word using it would be rejected by
	// notAC instead of being caught.
	notAC, err := automaton.Complement(acFreeB, unionSymbols(acFreeB.UsedSymbols(), abc.UsedSymbols()))
	if err != nil {
		return false, nil, fmt.Errorf("cegis: CheckTransitive: %w", err)
	}
	violating, err := automaton.Intersect(abc, notAC)
	if err != nil {
		return false, nil, fmt.Errorf("cegis: CheckTransitive: %w", err)
	}
	empty, witness := automaton.Emptiness(violating)
	return empty, witness, nil
}

// CheckBackwardsReachability verifies every candidateA configuration is
// reachable in one S̃-step, ordered by candidateT, from inst.Initial.
// candidateT is assumed to share inst.ExtendedTransducer's tape shape — the
// general construction would additionally widen T across the trace
// quantifiers, a step that depends on formula-frontend bookkeeping this
// package does not model (see DESIGN.md).
func (defaultChecker) CheckBackwardsReachability(inst *Instance, candidateA *automaton.Automaton, candidateT *automaton.Transducer) (bool, alphabet.Word, error) {
	half := inst.ExtendedTransducer.TapesHalf()
	if candidateT.NumberOfTapes() != inst.ExtendedTransducer.NumberOfTapes() {
		return false, nil, fmt.Errorf("cegis: CheckBackwardsReachability: candidate T has %d tapes, want %d to match the extended transducer", candidateT.NumberOfTapes(), inst.ExtendedTransducer.NumberOfTapes())
	}

	step, err := automaton.Intersect(inst.ExtendedTransducer.Automaton, candidateT.Automaton)
	if err != nil {
		return false, nil, fmt.Errorf("cegis: CheckBackwardsReachability: %w", err)
	}
	nextTapes := inst.ExtendedTransducer.SymbolMap()[:half]
	initCyl, err := insertFreeTapes(inst.Initial, half, nextTapes) // (I, free-next)
	if err != nil {
		return false, nil, fmt.Errorf("cegis: CheckBackwardsReachability: %w", err)
	}
	reachableFromI, err := automaton.Intersect(step, initCyl)
	if err != nil {
		return false, nil, fmt.Errorf("cegis: CheckBackwardsReachability: %w", err)
	}
	reachableConfigs, err := projectDropPrefixTapes(reachableFromI, half)
	if err != nil {
		return false, nil, fmt.Errorf("cegis: CheckBackwardsReachability: %w", err)
	}

	universe := unionSymbols(candidateA.UsedSymbols(), reachableConfigs.UsedSymbols())
	notReachable, err := automaton.Complement(reachableConfigs, universe)
	if err != nil {
		return false, nil, fmt.Errorf("cegis: CheckBackwardsReachability: %w", err)
	}
	violating, err := automaton.Intersect(candidateA, notReachable)
	if err != nil {
		return false, nil, fmt.Errorf("cegis: CheckBackwardsReachability: %w", err)
	}
	empty, witness := automaton.Emptiness(violating)
	return empty, witness, nil
}

// CheckTransitionCondition is not implemented by defaultChecker: the
// trace-quantifier / eventuality condition needs the out-of-scope formula
// frontend's semantics, not just automaton/tape algebra. Callers that need
// it supply their own Checker (tests supply a fake).
func (defaultChecker) CheckTransitionCondition(inst *Instance, candidateA *automaton.Automaton, candidateT *automaton.Transducer) (bool, alphabet.Word, error) {
	return false, nil, ErrTransitionConditionNotImplemented
}

// insertFreeTapes builds a new automaton over a's symbol map with tapes
// inserted at tape index pos (0 prepends, len(a.SymbolMap()) appends): every
// existing transition is cylindrified over every possible assignment to the
// newly inserted bits, the same technique tape.ExtendAlphabetOnTape uses to
// widen an existing tape, generalised here to splice in brand new tapes at
// an arbitrary position (needed only by these relational checks, not by any
// tape-algebra primitive, so it stays local to this package).
func insertFreeTapes(a *automaton.Automaton, pos int, tapes alphabet.SymbolMap) (*automaton.Automaton, error) {
	sm := a.SymbolMap()
	if pos < 0 || pos > len(sm) {
		return nil, fmt.Errorf("cegis: insertFreeTapes: position %d out of range [0,%d]", pos, len(sm))
	}

	newSM := make(alphabet.SymbolMap, 0, len(sm)+len(tapes))
	newSM = append(newSM, sm[:pos]...)
	newSM = append(newSM, tapes.Clone()...)
	newSM = append(newSM, sm[pos:]...)

	insertOffset := sm.TapeOffset(pos)
	insertWidth := tapes.Width()

	bld := automaton.NewBuilder(newSM)
	bld.AddStates(a.NumStates())
	for _, s := range a.InitialStates() {
		bld.MarkInitial(s)
	}
	for _, s := range a.FinalStates() {
		bld.MarkFinal(s)
	}
	for _, t := range a.Transitions() {
		prefix := t.Sym.Slice(0, insertOffset)
		suffix := t.Sym.Slice(insertOffset, t.Sym.Width())
		for _, free := range alphabet.EnumerateWidth(insertWidth) {
			bld.AddTransition(t.Src, alphabet.Concat(prefix, free, suffix), t.Dst)
		}
	}
	return bld.Build()
}

// projectDropPrefixTapes existentially projects out the first n tapes of a,
// collapsing every transition onto its suffix bits. Multiple transitions
// may land on the same (src, suffix, dst) triple, which is fine for an NFA:
// the result accepts exactly the suffix symbols reachable by some dropped
// prefix, which is what existential projection means.
func projectDropPrefixTapes(a *automaton.Automaton, n int) (*automaton.Automaton, error) {
	sm := a.SymbolMap()
	if n < 0 || n > len(sm) {
		return nil, fmt.Errorf("cegis: projectDropPrefixTapes: count %d out of range [0,%d]", n, len(sm))
	}
	dropWidth := sm.TapeOffset(n)

	bld := automaton.NewBuilder(sm[n:])
	bld.AddStates(a.NumStates())
	for _, s := range a.InitialStates() {
		bld.MarkInitial(s)
	}
	for _, s := range a.FinalStates() {
		bld.MarkFinal(s)
	}
	for _, t := range a.Transitions() {
		bld.AddTransition(t.Src, t.Sym.Slice(dropWidth, t.Sym.Width()), t.Dst)
	}
	return bld.Build()
}

// diagonalAutomaton builds the single-state automaton over t's symbol map
// that self-loops on exactly the symbols whose cur-half bits equal their
// next-half bits — intersecting it with a transducer restricts to the
// "related to itself" pairs, the construction CheckIrreflexive needs.
func diagonalAutomaton(t *automaton.Transducer) (*automaton.Automaton, error) {
	sm := t.SymbolMap()
	half := t.TapesHalf()
	halfWidth := sm.TapeOffset(half)

	bld := automaton.NewBuilder(sm)
	s := bld.AddState()
	bld.MarkInitial(s)
	bld.MarkFinal(s)
	for _, sym := range t.UsedSymbols() {
		if sym.Slice(0, halfWidth) == sym.Slice(halfWidth, sym.Width()) {
			bld.AddTransition(s, sym, s)
		}
	}
	return bld.Build()
}

// unionSymbols returns the sorted, deduplicated union of two symbol lists.
func unionSymbols(a, b []alphabet.Symbol) []alphabet.Symbol {
	seen := make(map[alphabet.Symbol]bool, len(a)+len(b))
	for _, s := range a {
		seen[s] = true
	}
	for _, s := range b {
		seen[s] = true
	}
	out := make([]alphabet.Symbol, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
