package cegis

import (
	"github.com/hyperltl/advicebits/alphabet"
	"github.com/hyperltl/advicebits/automaton"
)

// Quantifier is one entry of a HyperLTL trace-quantifier prefix: whether
// trace TraceIndex is universally or existentially bound. The (out-of-scope)
// formula frontend produces the full list; the core only ever needs its
// length (the lifting arity) and, for the transition-condition check, the
// quantifiers themselves.
type Quantifier struct {
	Universal  bool
	TraceIndex int
}

// Instance bundles the fixed inputs to one CEGIS run — the pieces that do
// not change across iterations (I, S̃, S, E, Q).
type Instance struct {
	// Initial is I, the initial-configuration automaton, shaped over the
	// same per-configuration tape layout as the invariant A (i.e. the
	// first TapesHalf() tapes of ExtendedTransducer).
	Initial *automaton.Automaton

	// ExtendedTransducer is S̃: the system transducer lifted across the
	// trace quantifiers and widened with configuration tapes, the shape
	// every semantic check in this package runs its automata algebra
	// against.
	ExtendedTransducer *automaton.Transducer

	// System is S, the original (un-lifted) transducer; carried for
	// checks this package does not implement (CheckTransitionCondition).
	System *automaton.Transducer

	// Eventuality is E, the eventuality-transitions transducer the
	// out-of-scope transition-condition check needs.
	Eventuality *automaton.Transducer

	// TraceQuantifiers is Q.
	TraceQuantifiers []Quantifier
}

// ConfigurationSymbolMap returns the single-configuration tape layout that
// candidate A, Initial, and every witness produced by this package's checks
// are expressed over: the first half of ExtendedTransducer's tapes.
func (inst *Instance) ConfigurationSymbolMap() alphabet.SymbolMap {
	half := inst.ExtendedTransducer.TapesHalf()
	return inst.ExtendedTransducer.SymbolMap()[:half]
}

// Checker is the semantic-checker collaborator: the HyperLTL(MSO) formula
// frontend and its eventuality/quantifier machinery stay out of this
// package, and a Checker is the seam a real implementation plugs into. Each
// method runs one of the fixed-order checks against a candidate (or
// supplied) A/T pair and, on failure, returns a witness word suitable for a
// refinement clause (encode.AcceptAtLeastOneOf or encode.Reject, depending
// on the check).
type Checker interface {
	// CheckInitialInclusion verifies L(inst.Initial) ⊆ L(candidateA).
	CheckInitialInclusion(inst *Instance, candidateA *automaton.Automaton) (ok bool, witness alphabet.Word, err error)

	// CheckInductiveness verifies ∀(c,c′) ∈ L(inst.ExtendedTransducer),
	// c ∈ L(candidateA) ⇒ c′ ∈ L(candidateA).
	CheckInductiveness(inst *Instance, candidateA *automaton.Automaton) (ok bool, witness alphabet.Word, err error)

	// CheckIrreflexive verifies no configuration c has ⟨c,c⟩ ∈ L(candidateT).
	CheckIrreflexive(inst *Instance, candidateT *automaton.Transducer) (ok bool, witness alphabet.Word, err error)

	// CheckTransitive verifies ⟨a,b⟩,⟨b,c⟩ ∈ L(candidateT) ⇒
	// ⟨a,c⟩ ∈ L(candidateT), restricted to a ∈ L(candidateA).
	CheckTransitive(inst *Instance, candidateT *automaton.Transducer, candidateA *automaton.Automaton) (ok bool, witness alphabet.Word, err error)

	// CheckBackwardsReachability verifies every candidateA configuration is
	// reachable from inst.Initial via inst.ExtendedTransducer under
	// candidateT.
	CheckBackwardsReachability(inst *Instance, candidateA *automaton.Automaton, candidateT *automaton.Transducer) (ok bool, witness alphabet.Word, err error)

	// CheckTransitionCondition verifies the trace-quantifier / eventuality
	// condition, which needs the out-of-scope formula frontend's
	// eventuality transducer E and quantifier list Q.
	CheckTransitionCondition(inst *Instance, candidateA *automaton.Automaton, candidateT *automaton.Transducer) (ok bool, witness alphabet.Word, err error)
}
