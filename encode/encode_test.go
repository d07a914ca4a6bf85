package encode

import (
	"testing"

	"github.com/hyperltl/advicebits/alphabet"
	"github.com/hyperltl/advicebits/automaton"
	"github.com/hyperltl/advicebits/sat"
)

func accepts(a *automaton.Automaton, word []alphabet.Symbol) bool {
	adj := make(map[automaton.StateID]map[alphabet.Symbol][]automaton.StateID)
	for _, t := range a.Transitions() {
		m, ok := adj[t.Src]
		if !ok {
			m = make(map[alphabet.Symbol][]automaton.StateID)
			adj[t.Src] = m
		}
		m[t.Sym] = append(m[t.Sym], t.Dst)
	}
	cur := map[automaton.StateID]bool{}
	for _, s := range a.InitialStates() {
		cur[s] = true
	}
	for _, sym := range word {
		next := map[automaton.StateID]bool{}
		for s := range cur {
			for _, d := range adj[s][sym] {
				next[d] = true
			}
		}
		cur = next
		if len(cur) == 0 {
			return false
		}
	}
	for s := range cur {
		if a.IsFinal(s) {
			return true
		}
	}
	return false
}

func baseInvariant(t *testing.T, solver sat.Solver) (*Invariant, *VariableAllocator) {
	t.Helper()
	inv := NewInvariant(2, alphabet.EnumerateWidth(1))
	alloc := NewVariableAllocator()
	if err := GenerateAutomatonCondition(inv, alloc, solver, false); err != nil {
		t.Fatalf("GenerateAutomatonCondition: %v", err)
	}
	if err := GenerateAcceptingCondition(inv, alloc, solver, false); err != nil {
		t.Fatalf("GenerateAcceptingCondition: %v", err)
	}
	if err := GenerateCompletenessCondition(inv, solver); err != nil {
		t.Fatalf("GenerateCompletenessCondition: %v", err)
	}
	if err := GenerateDeterminismCondition(inv, solver); err != nil {
		t.Fatalf("GenerateDeterminismCondition: %v", err)
	}
	return inv, alloc
}

func firstModel(t *testing.T, solver sat.Solver) sat.Model {
	t.Helper()
	for m := range solver.Models() {
		return m
	}
	t.Fatal("expected at least one model")
	return nil
}

func TestDecodeProducesCompleteDeterministicAutomaton(t *testing.T) {
	solver := sat.NewBruteForce()
	inv, _ := baseInvariant(t, solver)

	model := firstModel(t, solver)
	sm := alphabet.SymbolMap{alphabet.TapeDescriptor{"p"}}
	a, err := Decode(model, inv, sm)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	for src := 0; src < a.NumStates(); src++ {
		for _, sym := range inv.UsedAlphabet {
			count := 0
			for _, tr := range a.Transitions() {
				if tr.Src == automaton.StateID(src) && tr.Sym == sym {
					count++
				}
			}
			if count != 1 {
				t.Errorf("state %d symbol %s has %d outgoing transitions, want exactly 1", src, sym, count)
			}
		}
	}
	if len(a.FinalStates()) == 0 {
		t.Error("expected at least one final state")
	}
}

func TestAcceptAtLeastOneOfMakesWordAccepted(t *testing.T) {
	solver := sat.NewBruteForce()
	inv, alloc := baseInvariant(t, solver)

	word := []alphabet.Symbol{"1"}
	if err := AcceptAtLeastOneOf([][]alphabet.Symbol{word}, inv, alloc, solver); err != nil {
		t.Fatalf("AcceptAtLeastOneOf: %v", err)
	}

	model := firstModel(t, solver)
	sm := alphabet.SymbolMap{alphabet.TapeDescriptor{"p"}}
	a, err := Decode(model, inv, sm)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !accepts(a, word) {
		t.Errorf("decoded automaton should accept %v", word)
	}
}

func TestAcceptAtLeastOneOfMultipleWordsOrsAcrossAll(t *testing.T) {
	solver := sat.NewBruteForce()
	inv, alloc := baseInvariant(t, solver)

	w1 := []alphabet.Symbol{"1", "1"}
	w2 := []alphabet.Symbol{"1"}
	if err := AcceptAtLeastOneOf([][]alphabet.Symbol{w1, w2}, inv, alloc, solver); err != nil {
		t.Fatalf("AcceptAtLeastOneOf: %v", err)
	}

	found := false
	for m := range solver.Models() {
		sm := alphabet.SymbolMap{alphabet.TapeDescriptor{"p"}}
		a, err := Decode(m, inv, sm)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if accepts(a, w1) || accepts(a, w2) {
			found = true
		}
		break
	}
	if !found {
		t.Error("expected the first model to accept at least one of the offered words")
	}
}

func TestRejectMakesWordRejected(t *testing.T) {
	solver := sat.NewBruteForce()
	inv, _ := baseInvariant(t, solver)

	word := []alphabet.Symbol{"1"}
	if err := Reject(word, inv, solver); err != nil {
		t.Fatalf("Reject: %v", err)
	}

	model := firstModel(t, solver)
	sm := alphabet.SymbolMap{alphabet.TapeDescriptor{"p"}}
	a, err := Decode(model, inv, sm)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if accepts(a, word) {
		t.Errorf("decoded automaton should reject %v", word)
	}
}

func TestRejectEmptyWordForcesNonFinalInitial(t *testing.T) {
	solver := sat.NewBruteForce()
	inv, _ := baseInvariant(t, solver)

	if err := Reject(nil, inv, solver); err != nil {
		t.Fatalf("Reject: %v", err)
	}
	model := firstModel(t, solver)
	if model[inv.StateVars[0]] {
		t.Error("initial state should not be final after rejecting the empty word")
	}
}
