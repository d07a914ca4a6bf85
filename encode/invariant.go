package encode

import "github.com/hyperltl/advicebits/alphabet"

// VarRange describes how one family of CNF variables maps back to
// (src, symbol, dst) triples as a single named value:
//
//	trans_vars[src, sym, dst] = Offset + src*StrideSrc + sym*StrideSym + dst
//
// with dst varying fastest, matching the src/symbol/dst nesting order the
// rest of the package assumes.
type VarRange struct {
	Offset    int // first variable id in this range
	StrideSrc int // k * |Σ'|, where k = NumStates
	StrideSym int // k
}

// Invariant is the SAT descriptor for one automaton-shaped unknown: either
// the invariant automaton A or the well-founded relation transducer T. It
// tracks the CNF variable ranges allocated for it so later clause
// generators (completeness, determinism, word-acceptance refinement) and
// Decode can address the same variables consistently.
type Invariant struct {
	NumStates    int
	UsedAlphabet []alphabet.Symbol
	TransVars    VarRange
	StateVars    []int // one variable per state, StateVars[s] true iff s is final

	symbolIndex map[alphabet.Symbol]int
}

// NewInvariant creates an Invariant descriptor over numStates states and the
// given used alphabet (typically automaton.Automaton.UsedSymbols() or
// AllSymbolsFromFirstTape(), restricting the SAT alphabet to symbols
// actually observed rather than materialising 2^w).
func NewInvariant(numStates int, usedAlphabet []alphabet.Symbol) *Invariant {
	idx := make(map[alphabet.Symbol]int, len(usedAlphabet))
	for i, s := range usedAlphabet {
		idx[s] = i
	}
	return &Invariant{
		NumStates:    numStates,
		UsedAlphabet: usedAlphabet,
		symbolIndex:  idx,
	}
}

// SymbolIndex returns the position of sym within UsedAlphabet, or an error
// if sym was never observed.
func (inv *Invariant) SymbolIndex(sym alphabet.Symbol) (int, error) {
	i, ok := inv.symbolIndex[sym]
	if !ok {
		return 0, ErrSymbolNotInAlphabet
	}
	return i, nil
}

// TransVar returns the CNF variable id for the transition
// (src, symbolIndex, dst). Panics if TransVars has not yet been allocated
// (i.e. GenerateAutomatonCondition has not run) — a programmer error, never
// a data-dependent one.
func (inv *Invariant) TransVar(src, symbolIndex, dst int) int {
	if inv.TransVars.Offset == 0 {
		panic("encode: TransVar called before GenerateAutomatonCondition allocated TransVars")
	}
	return inv.TransVars.Offset + src*inv.TransVars.StrideSrc + symbolIndex*inv.TransVars.StrideSym + dst
}

// DestVars returns every transition variable out of src on symbolIndex, one
// per destination state, in ascending destination order.
func (inv *Invariant) DestVars(src, symbolIndex int) []int {
	out := make([]int, inv.NumStates)
	for dst := 0; dst < inv.NumStates; dst++ {
		out[dst] = inv.TransVar(src, symbolIndex, dst)
	}
	return out
}
