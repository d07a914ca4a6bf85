package cegis

import (
	"fmt"
	"sort"

	"github.com/projectdiscovery/gologger"

	"github.com/hyperltl/advicebits/alphabet"
	"github.com/hyperltl/advicebits/automaton"
	"github.com/hyperltl/advicebits/encode"
	"github.com/hyperltl/advicebits/sat"
	"github.com/hyperltl/advicebits/tape"
)

// Supplied carries a user-supplied certificate half (or both). When a field
// is set, Run allocates no SAT encoding for it and checks the supplied
// value directly instead of decoding a candidate. When both fields are set,
// a failing check aborts with a CertificateRejectedError, since there is
// nothing left to refine. When only one is set, a failing check never
// rejects it: Run adds whatever refinement clause applies to the encoded
// half, if any, and moves on to the next model.
type Supplied struct {
	A *automaton.Automaton
	T *automaton.Transducer
}

// Run performs one CEGIS synthesis call: it allocates SAT
// encodings for whichever of A, T is not supplied, then iterates solver
// models. Each candidate is decoded over the effective alphabet and lifted
// to inst's configuration shape (matching inst.Initial /
// inst.ExtendedTransducer) before Checker's checks run, in the fixed order
// initial inclusion, inductiveness, irreflexivity, transitivity, backwards
// reachability, transition condition. The first failing check either aborts
// (both A and T supplied) or adds a refinement clause and requests the next
// model. Run returns the first pair that passes every check, or
// ErrNoSolutionWithinBound once solver enumeration is exhausted.
func Run(inst *Instance, checker Checker, solver sat.Solver, statesA, statesT int, cfg Config, supplied Supplied) (*automaton.Automaton, *automaton.Transducer, error) {
	traces := len(inst.TraceQuantifiers) + 1
	initialSM := inst.Initial.SymbolMap()
	baseDescriptor := initialSM[0]
	configDescriptor := initialSM[len(initialSM)-1]

	alloc := encode.NewVariableAllocator()

	var invA *encode.Invariant
	if supplied.A == nil {
		invA = encode.NewInvariant(statesA, inst.ExtendedTransducer.AllSymbolsFromFirstTape())
		if err := encode.GenerateAutomatonCondition(invA, alloc, solver, false); err != nil {
			return nil, nil, err
		}
		if err := encode.GenerateAcceptingCondition(invA, alloc, solver, false); err != nil {
			return nil, nil, err
		}
	}

	var invT *encode.Invariant
	if supplied.T == nil {
		invT = encode.NewInvariant(statesT, allSymbolsFromFirstTapePair(inst.ExtendedTransducer))
		if err := encode.GenerateAutomatonCondition(invT, alloc, solver, true); err != nil {
			return nil, nil, err
		}
		if err := encode.GenerateAcceptingCondition(invT, alloc, solver, true); err != nil {
			return nil, nil, err
		}
	}

	iteration := 0
	for model := range solver.Models() {
		iteration++
		gologger.Verbose().Msgf("cegis: iteration %d, %d true variables", iteration, countTrue(model))

		candidateA := supplied.A
		if candidateA == nil {
			raw, err := encode.Decode(model, invA, alphabet.SymbolMap{baseDescriptor})
			if err != nil {
				return nil, nil, err
			}
			candidateA, err = liftAutomatonToConfigurationShape(raw, traces, configDescriptor)
			if err != nil {
				return nil, nil, err
			}
		}

		candidateT := supplied.T
		if candidateT == nil {
			rawSM := alphabet.SymbolMap{baseDescriptor.Clone(), baseDescriptor.Clone()}
			rawA, err := encode.Decode(model, invT, rawSM)
			if err != nil {
				return nil, nil, err
			}
			rawT, err := automaton.NewTransducer(rawA)
			if err != nil {
				return nil, nil, err
			}
			candidateT, err = liftTransducerToConfigurationShape(rawT, traces, configDescriptor)
			if err != nil {
				return nil, nil, err
			}
		}

		ok, witness, failed, err := runChecks(inst, checker, candidateA, candidateT)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			return candidateA, candidateT, nil
		}

		gologger.Verbose().Msgf("cegis: iteration %d failed %q", iteration, failed)
		if supplied.A != nil && supplied.T != nil {
			return nil, nil, &CertificateRejectedError{Check: failed, Witness: witness}
		}

		switch failed {
		case "initial-inclusion":
			if invA == nil {
				gologger.Warning().Msgf("cegis: iteration %d: initial inclusion failed against a supplied A; no refinement possible, requesting next model", iteration)
				continue
			}
			if tooLarge(model, cfg.ClauseExplosionGuard) {
				gologger.Warning().Msgf("cegis: iteration %d: clause-explosion guard skipped initial-inclusion refinement", iteration)
				continue
			}
			words := expandWitness(witness, candidateA, traces)
			if err := encode.AcceptAtLeastOneOf(words, invA, alloc, solver); err != nil {
				return nil, nil, err
			}
		case "irreflexivity":
			if invT == nil {
				gologger.Warning().Msgf("cegis: iteration %d: irreflexivity failed against a supplied T; no refinement possible, requesting next model", iteration)
				continue
			}
			half := candidateT.TapesHalf()
			word := projectPairWord(witness, candidateT.SymbolMap(), half)
			if err := encode.Reject(word, invT, solver); err != nil {
				return nil, nil, err
			}
		case "inductiveness", "transitivity", "backwards-reachability", "transition-condition":
			// These checks have no refinement clause in this
			// implementation; the loop simply requests the next model.
		}
	}

	return nil, nil, ErrNoSolutionWithinBound
}

// runChecks runs every Checker method in a fixed order, stopping at the
// first failure or error.
func runChecks(inst *Instance, checker Checker, candidateA *automaton.Automaton, candidateT *automaton.Transducer) (ok bool, witness alphabet.Word, failedCheck string, err error) {
	type step struct {
		name string
		run  func() (bool, alphabet.Word, error)
	}
	steps := []step{
		{"initial-inclusion", func() (bool, alphabet.Word, error) { return checker.CheckInitialInclusion(inst, candidateA) }},
		{"inductiveness", func() (bool, alphabet.Word, error) { return checker.CheckInductiveness(inst, candidateA) }},
		{"irreflexivity", func() (bool, alphabet.Word, error) { return checker.CheckIrreflexive(inst, candidateT) }},
		{"transitivity", func() (bool, alphabet.Word, error) { return checker.CheckTransitive(inst, candidateT, candidateA) }},
		{"backwards-reachability", func() (bool, alphabet.Word, error) { return checker.CheckBackwardsReachability(inst, candidateA, candidateT) }},
		{"transition-condition", func() (bool, alphabet.Word, error) { return checker.CheckTransitionCondition(inst, candidateA, candidateT) }},
	}
	for _, s := range steps {
		ok, witness, err = s.run()
		if err != nil || !ok {
			return ok, witness, s.name, err
		}
	}
	return true, nil, "", nil
}

// liftAutomatonToConfigurationShape widens a raw (single-tape, Σ′) decoded
// candidate A into the traces-tape-plus-config shape inst.Initial and
// inst.ExtendedTransducer's cur half share.
func liftAutomatonToConfigurationShape(raw *automaton.Automaton, traces int, configDescriptor alphabet.TapeDescriptor) (*automaton.Automaton, error) {
	lifted, err := tape.MultitapeLift(raw, traces)
	if err != nil {
		return nil, fmt.Errorf("cegis: lift candidate A: %w", err)
	}
	// MultitapeLift's own auxiliary tape is left untouched: a fresh tape is
	// appended and that one is widened to configDescriptor instead, so the
	// result carries both an (empty) auxiliary tape and a configuration
	// tape — the same per-half shape liftTransducerToConfigurationShape
	// produces for T, which candidateA must match for the relational
	// checks' tape-concatenation algebra to type-check.
	withConfigTape, err := tape.CreateNewTape(lifted)
	if err != nil {
		return nil, fmt.Errorf("cegis: lift candidate A: %w", err)
	}
	widened, err := tape.ExtendAlphabetOnTape(withConfigTape, len(withConfigTape.SymbolMap())-1, configDescriptor)
	if err != nil {
		return nil, fmt.Errorf("cegis: lift candidate A: %w", err)
	}
	return widened, nil
}

// liftTransducerToConfigurationShape is liftAutomatonToConfigurationShape's
// transducer counterpart: after MultitapeLiftTransducer, it appends one
// configDescriptor tape after each half, leaving the empty auxiliary tapes
// in place.
func liftTransducerToConfigurationShape(raw *automaton.Transducer, traces int, configDescriptor alphabet.TapeDescriptor) (*automaton.Transducer, error) {
	lifted, err := tape.MultitapeLiftTransducer(raw, traces)
	if err != nil {
		return nil, fmt.Errorf("cegis: lift candidate T: %w", err)
	}
	widened, err := tape.ExtendTransducerAlphabetOnConfigurationTapes(lifted, configDescriptor)
	if err != nil {
		return nil, fmt.Errorf("cegis: lift candidate T: %w", err)
	}
	return widened, nil
}

// allSymbolsFromFirstTapePair is automaton.Automaton.AllSymbolsFromFirstTape's
// transducer counterpart: it projects every used wide symbol of t onto the
// first tape of each half, giving the effective (cur, next) alphabet the
// relation invariant T is encoded over.
func allSymbolsFromFirstTapePair(t *automaton.Transducer) []alphabet.Symbol {
	sm := t.SymbolMap()
	half := t.TapesHalf()
	curW := len(sm[0])
	nextW := len(sm[half])
	nextOff := sm.TapeOffset(half)

	seen := make(map[alphabet.Symbol]bool)
	for _, sym := range t.UsedSymbols() {
		cur := alphabet.Project(sym, rangeInts(0, curW))
		next := alphabet.Project(sym, rangeInts(nextOff, nextOff+nextW))
		seen[alphabet.Concat(cur, next)] = true
	}
	out := make([]alphabet.Symbol, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// expandWitness re-expresses a witness word over candidateA's wide,
// lifted configuration alphabet as one narrow Σ′ word per real trace tape:
// each of the traces synchronised tapes independently gives a word the
// narrow invariant should additionally accept.
func expandWitness(witness alphabet.Word, candidateA *automaton.Automaton, traces int) [][]alphabet.Symbol {
	sm := candidateA.SymbolMap()
	out := make([][]alphabet.Symbol, traces)
	for i := 0; i < traces; i++ {
		out[i] = projectTapeWord(witness, sm, i)
	}
	return out
}

func projectTapeWord(word alphabet.Word, sm alphabet.SymbolMap, tapeIndex int) alphabet.Word {
	off := sm.TapeOffset(tapeIndex)
	keep := rangeInts(off, off+len(sm[tapeIndex]))
	out := make(alphabet.Word, len(word))
	for i, sym := range word {
		out[i] = alphabet.Project(sym, keep)
	}
	return out
}

func projectPairWord(word alphabet.Word, sm alphabet.SymbolMap, half int) alphabet.Word {
	curKeep := rangeInts(0, len(sm[0]))
	nextOff := sm.TapeOffset(half)
	nextKeep := rangeInts(nextOff, nextOff+len(sm[half]))
	out := make(alphabet.Word, len(word))
	for i, sym := range word {
		out[i] = alphabet.Concat(alphabet.Project(sym, curKeep), alphabet.Project(sym, nextKeep))
	}
	return out
}

func rangeInts(lo, hi int) []int {
	out := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, i)
	}
	return out
}

func tooLarge(model sat.Model, guard int) bool {
	if guard <= 0 {
		return false
	}
	return countTrue(model) > guard
}

func countTrue(model sat.Model) int {
	n := 0
	for _, v := range model {
		if v {
			n++
		}
	}
	return n
}
