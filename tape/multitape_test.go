package tape

import (
	"testing"

	"github.com/hyperltl/advicebits/alphabet"
	"github.com/hyperltl/advicebits/automaton"
)

func singleSymbolLanguage(t *testing.T) *automaton.Automaton {
	t.Helper()
	sm := alphabet.SymbolMap{alphabet.TapeDescriptor{"p"}}
	b := automaton.NewBuilder(sm)
	s0 := b.AddState()
	s1 := b.AddState()
	b.MarkInitial(s0)
	b.MarkFinal(s1)
	b.AddTransition(s0, "1", s1)
	a, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return a
}

func TestMultitapeLiftSynchronizesTraces(t *testing.T) {
	orig := singleSymbolLanguage(t)

	lifted, err := MultitapeLift(orig, 2)
	if err != nil {
		t.Fatalf("MultitapeLift: %v", err)
	}
	if lifted.NumberOfTapes() != 3 {
		t.Fatalf("NumberOfTapes = %d, want 3 (2 real + 1 aux)", lifted.NumberOfTapes())
	}
	if lifted.Width() != 2 {
		t.Fatalf("Width = %d, want 2 (aux contributes 0 bits)", lifted.Width())
	}

	cases := []struct {
		word   alphabet.Symbol
		accept bool
	}{
		{"11", true},
		{"10", false},
		{"01", false},
		{"00", false},
	}
	for _, c := range cases {
		got := accepts(lifted, []alphabet.Symbol{c.word})
		if got != c.accept {
			t.Errorf("accepts([%s]) = %v, want %v", c.word, got, c.accept)
		}
	}
	if accepts(lifted, nil) {
		t.Error("empty word should not be accepted (orig doesn't accept empty)")
	}
}

func TestMultitapeLiftRejectsWrongShape(t *testing.T) {
	orig := singleSymbolLanguage(t)
	if _, err := MultitapeLift(orig, 1); err == nil {
		t.Error("expected error for traces < 2")
	}

	twoTape := alphabet.SymbolMap{alphabet.TapeDescriptor{"p"}, alphabet.TapeDescriptor{"q"}}
	b := automaton.NewBuilder(twoTape)
	s0 := b.AddState()
	b.MarkInitial(s0)
	notSingleTape, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, err := MultitapeLift(notSingleTape, 2); err == nil {
		t.Error("expected error for a non-single-tape automaton")
	}
}

func buildSingleSymbolTransducer(t *testing.T) *automaton.Transducer {
	t.Helper()
	sm := alphabet.SymbolMap{alphabet.TapeDescriptor{"p"}, alphabet.TapeDescriptor{"p"}}
	b := automaton.NewBuilder(sm)
	s0 := b.AddState()
	s1 := b.AddState()
	b.MarkInitial(s0)
	b.MarkFinal(s1)
	b.AddTransition(s0, "10", s1) // cur=1, next=0
	a, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	tr, err := automaton.NewTransducer(a)
	if err != nil {
		t.Fatalf("NewTransducer: %v", err)
	}
	return tr
}

func TestMultitapeLiftTransducerShape(t *testing.T) {
	orig := buildSingleSymbolTransducer(t)

	lifted, err := MultitapeLiftTransducer(orig, 2)
	if err != nil {
		t.Fatalf("MultitapeLiftTransducer: %v", err)
	}
	if lifted.NumberOfTapes() != 6 {
		t.Fatalf("NumberOfTapes = %d, want 6 (2 cur + aux + 2 next + aux)", lifted.NumberOfTapes())
	}
	if lifted.Width() != 4 {
		t.Fatalf("Width = %d, want 4", lifted.Width())
	}
	if lifted.TapesHalf() != 3 {
		t.Fatalf("TapesHalf = %d, want 3", lifted.TapesHalf())
	}

	// Both traces must take the same (cur=1,next=0) transition in lockstep.
	if !accepts(lifted.Automaton, []alphabet.Symbol{"1100"}) {
		t.Error("expected lockstep transition 1100 to be accepted")
	}
	if accepts(lifted.Automaton, []alphabet.Symbol{"1000"}) {
		t.Error("mismatched trace transitions should not be accepted")
	}
}
