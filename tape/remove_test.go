package tape

import (
	"testing"

	"github.com/hyperltl/advicebits/alphabet"
	"github.com/hyperltl/advicebits/automaton"
)

func TestRemoveSymbolOnIndexErasesFreeBit(t *testing.T) {
	sm := alphabet.SymbolMap{alphabet.TapeDescriptor{"p", "q"}}
	b := automaton.NewBuilder(sm)
	s0 := b.AddState()
	b.MarkInitial(s0)
	b.MarkFinal(s0)
	// p=1 regardless of q: q is a free variable at every state.
	b.AddTransition(s0, "10", s0)
	b.AddTransition(s0, "11", s0)
	a, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	reduced, err := RemoveSymbolOnIndex(a, 0, 1)
	if err != nil {
		t.Fatalf("RemoveSymbolOnIndex: %v", err)
	}
	if reduced.Width() != 1 {
		t.Fatalf("width = %d, want 1", reduced.Width())
	}
	if len(reduced.SymbolMap()[0]) != 1 || reduced.SymbolMap()[0][0] != "p" {
		t.Fatalf("descriptor = %v, want [p]", reduced.SymbolMap()[0])
	}

	for _, w := range allWordsUpTo(alphabet.EnumerateWidth(1), 3) {
		want := true
		for _, sym := range w {
			if sym != "1" {
				want = false
			}
		}
		if accepts(reduced, w) != want {
			t.Errorf("reduced accepts(%v) = %v, want %v", w, accepts(reduced, w), want)
		}
	}
}

func TestRemoveSymbolOnIndexRejectsBadIndex(t *testing.T) {
	sm := alphabet.SymbolMap{alphabet.TapeDescriptor{"p"}}
	b := automaton.NewBuilder(sm)
	s0 := b.AddState()
	b.MarkInitial(s0)
	a, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, err := RemoveSymbolOnIndex(a, 0, 3); err == nil {
		t.Error("expected error for out-of-range bit index")
	}
}
