package automaton

import "github.com/hyperltl/advicebits/alphabet"

// Builder constructs an Automaton incrementally using a low-level API: add
// states one at a time, mark initial/final, add transitions, then Build.
// Every state here is uniform — no epsilon, split, or capture states —
// distinguished only by which transitions and markings reference it.
type Builder struct {
	numStates   int
	initial     map[StateID]bool
	final       map[StateID]bool
	transitions []Transition
	symbolMap   alphabet.SymbolMap
}

// NewBuilder creates a Builder for automata over sm.
func NewBuilder(sm alphabet.SymbolMap) *Builder {
	return &Builder{
		initial:   make(map[StateID]bool),
		final:     make(map[StateID]bool),
		symbolMap: sm.Clone(),
	}
}

// AddState allocates a fresh state and returns its ID.
func (b *Builder) AddState() StateID {
	id := StateID(b.numStates)
	b.numStates++
	return id
}

// AddStates allocates n fresh states, returning the first one; the rest are
// contiguous (id, id+1, ..., id+n-1).
func (b *Builder) AddStates(n int) StateID {
	id := StateID(b.numStates)
	b.numStates += n
	return id
}

// MarkInitial marks s as an initial state.
func (b *Builder) MarkInitial(s StateID) { b.initial[s] = true }

// MarkFinal marks s as an accepting state.
func (b *Builder) MarkFinal(s StateID) { b.final[s] = true }

// AddTransition records a transition <src, sym, dst>. Width is validated at
// Build time.
func (b *Builder) AddTransition(src StateID, sym alphabet.Symbol, dst StateID) {
	b.transitions = append(b.transitions, Transition{Src: src, Sym: sym, Dst: dst})
}

// NumStates returns the number of states allocated so far.
func (b *Builder) NumStates() int { return b.numStates }

// Build finalizes the Automaton.
func (b *Builder) Build() (*Automaton, error) {
	return New(b.numStates, sortedKeys(b.initial), sortedKeys(b.final), b.transitions, b.symbolMap)
}
