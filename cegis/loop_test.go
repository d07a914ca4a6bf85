package cegis

import (
	"errors"
	"strings"
	"testing"

	"github.com/hyperltl/advicebits/alphabet"
	"github.com/hyperltl/advicebits/automaton"
	"github.com/hyperltl/advicebits/sat"
)

// buildConfigurationShapedInstance returns a minimal Instance whose Initial
// and ExtendedTransducer already carry the traces-tapes-plus-config shape
// Run lifts every decoded candidate to: two trace tapes of one bit each,
// plus an empty trailing auxiliary tape and an empty trailing configuration
// tape on each half. ExtendedTransducer self-loops on every assignment of
// its four real bits, so its tape-0 projection (used as invA's and invT's
// SAT alphabet) sees every symbol a test might need.
func buildConfigurationShapedInstance(t *testing.T) *Instance {
	t.Helper()
	trace := alphabet.TapeDescriptor{"p"}
	aux := alphabet.TapeDescriptor{}
	config := alphabet.TapeDescriptor{}

	initSM := alphabet.SymbolMap{trace.Clone(), trace.Clone(), aux.Clone(), config.Clone()}
	ib := automaton.NewBuilder(initSM)
	i0 := ib.AddState()
	i1 := ib.AddState()
	ib.MarkInitial(i0)
	ib.MarkFinal(i1)
	ib.AddTransition(i0, "11", i1)
	initial, err := ib.Build()
	if err != nil {
		t.Fatalf("build Initial: %v", err)
	}

	sysSM := alphabet.SymbolMap{
		trace.Clone(), trace.Clone(), aux.Clone(), config.Clone(),
		trace.Clone(), trace.Clone(), aux.Clone(), config.Clone(),
	}
	sb := automaton.NewBuilder(sysSM)
	s0 := sb.AddState()
	sb.MarkInitial(s0)
	sb.MarkFinal(s0)
	for _, sym := range alphabet.EnumerateWidth(4) {
		sb.AddTransition(s0, sym, s0)
	}
	sysA, err := sb.Build()
	if err != nil {
		t.Fatalf("build ExtendedTransducer: %v", err)
	}
	sys, err := automaton.NewTransducer(sysA)
	if err != nil {
		t.Fatalf("NewTransducer: %v", err)
	}

	return &Instance{
		Initial:            initial,
		ExtendedTransducer: sys,
		TraceQuantifiers:   []Quantifier{{Universal: true, TraceIndex: 1}},
	}
}

// alwaysPassChecker reports every check as passing unconditionally, letting
// a test exercise Run's synthesis/decoding/lifting plumbing without
// depending on which specific model the solver happens to produce first.
type alwaysPassChecker struct{}

func (alwaysPassChecker) CheckInitialInclusion(*Instance, *automaton.Automaton) (bool, alphabet.Word, error) {
	return true, nil, nil
}
func (alwaysPassChecker) CheckInductiveness(*Instance, *automaton.Automaton) (bool, alphabet.Word, error) {
	return true, nil, nil
}
func (alwaysPassChecker) CheckIrreflexive(*Instance, *automaton.Transducer) (bool, alphabet.Word, error) {
	return true, nil, nil
}
func (alwaysPassChecker) CheckTransitive(*Instance, *automaton.Transducer, *automaton.Automaton) (bool, alphabet.Word, error) {
	return true, nil, nil
}
func (alwaysPassChecker) CheckBackwardsReachability(*Instance, *automaton.Automaton, *automaton.Transducer) (bool, alphabet.Word, error) {
	return true, nil, nil
}
func (alwaysPassChecker) CheckTransitionCondition(*Instance, *automaton.Automaton, *automaton.Transducer) (bool, alphabet.Word, error) {
	return true, nil, nil
}

func TestRunSynthesizesOnFirstAcceptedModel(t *testing.T) {
	inst := buildConfigurationShapedInstance(t)
	cfg := DefaultConfig()
	cfg.ClauseExplosionGuard = 0

	a, tr, err := Run(inst, alwaysPassChecker{}, sat.NewBruteForce(), 1, 1, cfg, Supplied{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if a == nil || tr == nil {
		t.Fatal("expected a non-nil certificate pair")
	}
	if a.NumberOfTapes() != 4 {
		t.Errorf("candidate A tape count = %d, want 4", a.NumberOfTapes())
	}
	if tr.NumberOfTapes() != 8 {
		t.Errorf("candidate T tape count = %d, want 8", tr.NumberOfTapes())
	}
}

// refiningInitialInclusionChecker fails CheckInitialInclusion exactly once
// (returning a witness sized to whatever candidateA it is handed) before
// passing every subsequent call, and passes every other check
// unconditionally. This exercises the refinement path — Run must add an
// AcceptAtLeastOneOf clause and pull a fresh model — without the test
// needing to predict which model sat.BruteForce produces.
type refiningInitialInclusionChecker struct {
	failed bool
}

func (c *refiningInitialInclusionChecker) CheckInitialInclusion(inst *Instance, candidateA *automaton.Automaton) (bool, alphabet.Word, error) {
	if !c.failed {
		c.failed = true
		witness := alphabet.Word{alphabet.Symbol(strings.Repeat("1", candidateA.Width()))}
		return false, witness, nil
	}
	return true, nil, nil
}
func (c *refiningInitialInclusionChecker) CheckInductiveness(*Instance, *automaton.Automaton) (bool, alphabet.Word, error) {
	return true, nil, nil
}
func (c *refiningInitialInclusionChecker) CheckIrreflexive(*Instance, *automaton.Transducer) (bool, alphabet.Word, error) {
	return true, nil, nil
}
func (c *refiningInitialInclusionChecker) CheckTransitive(*Instance, *automaton.Transducer, *automaton.Automaton) (bool, alphabet.Word, error) {
	return true, nil, nil
}
func (c *refiningInitialInclusionChecker) CheckBackwardsReachability(*Instance, *automaton.Automaton, *automaton.Transducer) (bool, alphabet.Word, error) {
	return true, nil, nil
}
func (c *refiningInitialInclusionChecker) CheckTransitionCondition(*Instance, *automaton.Automaton, *automaton.Transducer) (bool, alphabet.Word, error) {
	return true, nil, nil
}

func TestRunRefinesAfterAFailedCheckThenSucceeds(t *testing.T) {
	inst := buildConfigurationShapedInstance(t)
	cfg := DefaultConfig()
	cfg.ClauseExplosionGuard = 0

	checker := &refiningInitialInclusionChecker{}
	a, tr, err := Run(inst, checker, sat.NewBruteForce(), 1, 1, cfg, Supplied{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !checker.failed {
		t.Fatal("expected CheckInitialInclusion to have been exercised at least once")
	}
	if a == nil || tr == nil {
		t.Fatal("expected a non-nil certificate pair after refinement")
	}
}

func TestRunRejectsSuppliedCertificateOnInitialInclusionFailure(t *testing.T) {
	inst := buildConfigurationShapedInstance(t)

	// A supplied A that excludes Initial's one accepted word ("11").
	smA := inst.Initial.SymbolMap()
	bldA := automaton.NewBuilder(smA)
	sA0 := bldA.AddState()
	bldA.MarkInitial(sA0)
	bldA.MarkFinal(sA0)
	bldA.AddTransition(sA0, "00", sA0)
	suppliedA, err := bldA.Build()
	if err != nil {
		t.Fatalf("build supplied A: %v", err)
	}

	smT := inst.ExtendedTransducer.SymbolMap()
	bldT := automaton.NewBuilder(smT)
	sT0 := bldT.AddState()
	bldT.MarkInitial(sT0)
	sT1 := bldT.AddState()
	bldT.MarkFinal(sT1)
	for _, sym := range alphabet.EnumerateWidth(4) {
		bldT.AddTransition(sT0, sym, sT1)
	}
	suppliedTA, err := bldT.Build()
	if err != nil {
		t.Fatalf("build supplied T: %v", err)
	}
	suppliedT, err := automaton.NewTransducer(suppliedTA)
	if err != nil {
		t.Fatalf("NewTransducer: %v", err)
	}

	cfg := DefaultConfig()
	_, _, err = Run(inst, NewDefaultChecker(), sat.NewBruteForce(), 1, 1, cfg, Supplied{A: suppliedA, T: suppliedT})
	if err == nil {
		t.Fatal("expected an error for a supplied A that excludes an initial word")
	}
	var rejected *CertificateRejectedError
	if !errors.As(err, &rejected) {
		t.Fatalf("err = %v, want *CertificateRejectedError", err)
	}
	if rejected.Check != "initial-inclusion" {
		t.Errorf("rejected.Check = %q, want %q", rejected.Check, "initial-inclusion")
	}
	if !errors.Is(err, ErrCertificateRejected) {
		t.Error("expected errors.Is(err, ErrCertificateRejected) to hold")
	}
}

func TestRunPropagatesTransitionConditionNotImplemented(t *testing.T) {
	inst := buildConfigurationShapedInstance(t)

	// Run reaches CheckTransitionCondition only when every earlier check
	// passes. A T that accepts everything fails irreflexivity, so here
	// Initial, A and T all accept nothing: one initial, non-final state
	// with no transitions each.
	smA := inst.Initial.SymbolMap()
	bldI := automaton.NewBuilder(smA)
	bldI.MarkInitial(bldI.AddState())
	emptyInitial, err := bldI.Build()
	if err != nil {
		t.Fatalf("build empty Initial: %v", err)
	}
	inst.Initial = emptyInitial

	bldA := automaton.NewBuilder(smA)
	sA0 := bldA.AddState()
	bldA.MarkInitial(sA0)
	suppliedA, err := bldA.Build()
	if err != nil {
		t.Fatalf("build supplied A: %v", err)
	}

	smT := inst.ExtendedTransducer.SymbolMap()
	bldT := automaton.NewBuilder(smT)
	sT0 := bldT.AddState()
	bldT.MarkInitial(sT0)
	suppliedTA, err := bldT.Build()
	if err != nil {
		t.Fatalf("build supplied T: %v", err)
	}
	suppliedT, err := automaton.NewTransducer(suppliedTA)
	if err != nil {
		t.Fatalf("NewTransducer: %v", err)
	}

	cfg := DefaultConfig()
	_, _, err = Run(inst, NewDefaultChecker(), sat.NewBruteForce(), 1, 1, cfg, Supplied{A: suppliedA, T: suppliedT})
	if !errors.Is(err, ErrTransitionConditionNotImplemented) {
		t.Fatalf("err = %v, want ErrTransitionConditionNotImplemented", err)
	}
}

func TestRunExhaustsEnumerationWhenNoCertificateExists(t *testing.T) {
	inst := buildConfigurationShapedInstance(t)
	cfg := DefaultConfig()
	cfg.ClauseExplosionGuard = 0

	unsatisfiable := unsatisfiableChecker{}
	_, _, err := Run(inst, unsatisfiable, sat.NewBruteForce(), 1, 1, cfg, Supplied{})
	if !errors.Is(err, ErrNoSolutionWithinBound) {
		t.Fatalf("err = %v, want ErrNoSolutionWithinBound", err)
	}
}

// unsatisfiableChecker rejects every candidate's inductiveness with an
// empty witness, a check Run never tries to refine, so enumeration is
// guaranteed to run out.
type unsatisfiableChecker struct{}

func (unsatisfiableChecker) CheckInitialInclusion(*Instance, *automaton.Automaton) (bool, alphabet.Word, error) {
	return true, nil, nil
}
func (unsatisfiableChecker) CheckInductiveness(*Instance, *automaton.Automaton) (bool, alphabet.Word, error) {
	return false, nil, nil
}
func (unsatisfiableChecker) CheckIrreflexive(*Instance, *automaton.Transducer) (bool, alphabet.Word, error) {
	return true, nil, nil
}
func (unsatisfiableChecker) CheckTransitive(*Instance, *automaton.Transducer, *automaton.Automaton) (bool, alphabet.Word, error) {
	return true, nil, nil
}
func (unsatisfiableChecker) CheckBackwardsReachability(*Instance, *automaton.Automaton, *automaton.Transducer) (bool, alphabet.Word, error) {
	return true, nil, nil
}
func (unsatisfiableChecker) CheckTransitionCondition(*Instance, *automaton.Automaton, *automaton.Transducer) (bool, alphabet.Word, error) {
	return true, nil, nil
}
