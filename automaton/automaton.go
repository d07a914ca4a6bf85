package automaton

import (
	"fmt"
	"sort"

	"github.com/hyperltl/advicebits/alphabet"
)

// StateID identifies a state by its position in 0..NumStates()-1.
type StateID int

// Transition is one triple <src, symbol, dst> of an automaton.
type Transition struct {
	Src StateID
	Sym alphabet.Symbol
	Dst StateID
}

// Automaton is the 5-tuple <states, initial, final, transitions, symbol map>.
// Automata are immutable once produced by an algebraic operation — every
// operation in this package returns a new value and never mutates its
// operands' internal tables.
type Automaton struct {
	numStates   int
	initial     map[StateID]bool
	final       map[StateID]bool
	transitions []Transition
	symbolMap   alphabet.SymbolMap
}

// New builds an Automaton from an explicit transition list. It validates
// that every symbol's width matches the symbol map's width and that every
// state referenced is within [0, numStates).
func New(numStates int, initial, final []StateID, transitions []Transition, sm alphabet.SymbolMap) (*Automaton, error) {
	w := sm.Width()
	initSet := make(map[StateID]bool, len(initial))
	for _, s := range initial {
		if s < 0 || int(s) >= numStates {
			return nil, fmt.Errorf("automaton: initial state %d out of range [0,%d)", s, numStates)
		}
		initSet[s] = true
	}
	finalSet := make(map[StateID]bool, len(final))
	for _, s := range final {
		if s < 0 || int(s) >= numStates {
			return nil, fmt.Errorf("automaton: final state %d out of range [0,%d)", s, numStates)
		}
		finalSet[s] = true
	}
	trans := make([]Transition, len(transitions))
	for i, t := range transitions {
		if t.Sym.Width() != w {
			return nil, fmt.Errorf("%w: transition symbol width %d, symbol map width %d", alphabet.ErrWidthMismatch, t.Sym.Width(), w)
		}
		if int(t.Src) < 0 || int(t.Src) >= numStates || int(t.Dst) < 0 || int(t.Dst) >= numStates {
			return nil, fmt.Errorf("automaton: transition %v references state outside [0,%d)", t, numStates)
		}
		trans[i] = t
	}
	return &Automaton{
		numStates:   numStates,
		initial:     initSet,
		final:       finalSet,
		transitions: trans,
		symbolMap:   sm.Clone(),
	}, nil
}

// NumStates returns |Q|.
func (a *Automaton) NumStates() int { return a.numStates }

// IsInitial reports whether s is an initial state.
func (a *Automaton) IsInitial(s StateID) bool { return a.initial[s] }

// IsFinal reports whether s is an accepting state.
func (a *Automaton) IsFinal(s StateID) bool { return a.final[s] }

// InitialStates returns the set of initial states in ascending order.
func (a *Automaton) InitialStates() []StateID { return sortedKeys(a.initial) }

// FinalStates returns the set of accepting states in ascending order.
func (a *Automaton) FinalStates() []StateID { return sortedKeys(a.final) }

// SymbolMap returns the automaton's symbol map.
func (a *Automaton) SymbolMap() alphabet.SymbolMap { return a.symbolMap }

// Width returns the bit-width of the alphabet, i.e. SymbolMap().Width().
func (a *Automaton) Width() int { return a.symbolMap.Width() }

// NumberOfTapes returns the derived attribute len(symbol_map).
func (a *Automaton) NumberOfTapes() int { return a.symbolMap.NumberOfTapes() }

// Transitions returns the raw transition list (not copied; callers must not
// mutate it). Use IterateTransitions for a stable, sorted view.
func (a *Automaton) Transitions() []Transition { return a.transitions }

// String renders the automaton's symbol map as "Symbols: [...]".
func (a *Automaton) String() string { return a.symbolMap.String() }

func sortedKeys(m map[StateID]bool) []StateID {
	out := make([]StateID, 0, len(m))
	for s := range m {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// UsedSymbols returns the distinct symbols that actually occur on some
// transition, in ascending lexicographic order. The SAT encoder restricts
// its alphabet to exactly this set to avoid enumerating the full 2^w
// alphabet.
func (a *Automaton) UsedSymbols() []alphabet.Symbol {
	seen := make(map[alphabet.Symbol]bool)
	for _, t := range a.transitions {
		seen[t.Sym] = true
	}
	out := make([]alphabet.Symbol, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AllSymbolsFromFirstTape returns the distinct symbols restricted to the
// first tape's bit range, i.e. the projection of UsedSymbols onto tape 0 —
// used to compute the invariant's effective alphabet from a transducer's
// used symbols.
func (a *Automaton) AllSymbolsFromFirstTape() []alphabet.Symbol {
	if len(a.symbolMap) == 0 {
		return nil
	}
	w0 := len(a.symbolMap[0])
	seen := make(map[alphabet.Symbol]bool)
	for _, sym := range a.UsedSymbols() {
		seen[alphabet.Project(sym, rangeInts(0, w0))] = true
	}
	out := make([]alphabet.Symbol, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func rangeInts(lo, hi int) []int {
	out := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, i)
	}
	return out
}
