package alphabet

import "fmt"

// TapeDescriptor is the ordered list of atomic-proposition names carried by
// one tape. Its length is the tape's width in bits; the order is
// significant, since it fixes bit positions.
type TapeDescriptor []string

// Index returns the bit position of name within the tape, or -1 if name is
// not one of the tape's atomic propositions.
func (td TapeDescriptor) Index(name string) int {
	for i, n := range td {
		if n == name {
			return i
		}
	}
	return -1
}

// Clone returns an independent copy of td.
func (td TapeDescriptor) Clone() TapeDescriptor {
	out := make(TapeDescriptor, len(td))
	copy(out, td)
	return out
}

// SymbolMap is an ordered list of tape descriptors. The alphabet width w of
// an automaton built over a SymbolMap equals the sum of the tapes' widths.
type SymbolMap []TapeDescriptor

// Width returns the total number of bits across all tapes.
func (sm SymbolMap) Width() int {
	w := 0
	for _, td := range sm {
		w += len(td)
	}
	return w
}

// NumberOfTapes returns len(sm).
func (sm SymbolMap) NumberOfTapes() int {
	return len(sm)
}

// TapeOffset returns the bit offset at which tape i begins within a full
// symbol, i.e. the sum of the widths of tapes before it.
func (sm SymbolMap) TapeOffset(i int) int {
	off := 0
	for j := 0; j < i; j++ {
		off += len(sm[j])
	}
	return off
}

// Equal reports whether sm and other name the same tapes in the same order
// with the same atomic propositions — the equality algebraic operations
// require of their operands (see automaton.ErrAlphabetMismatch).
func (sm SymbolMap) Equal(other SymbolMap) bool {
	if len(sm) != len(other) {
		return false
	}
	for i := range sm {
		if len(sm[i]) != len(other[i]) {
			return false
		}
		for j := range sm[i] {
			if sm[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep, independent copy of sm.
func (sm SymbolMap) Clone() SymbolMap {
	out := make(SymbolMap, len(sm))
	for i, td := range sm {
		out[i] = td.Clone()
	}
	return out
}

// String renders sm the way the Python reference labels automata, in Go's
// slice notation: "Symbols: [[p q] [r]]".
func (sm SymbolMap) String() string {
	return fmt.Sprintf("Symbols: %v", toSlice(sm))
}

func toSlice(sm SymbolMap) []TapeDescriptor {
	return sm
}

// Decode returns the atomic-proposition name that bit position pos (global,
// across the whole symbol) denotes, and the tape it belongs to.
func (sm SymbolMap) Decode(pos int) (tape int, name string) {
	off := 0
	for i, td := range sm {
		if pos < off+len(td) {
			return i, td[pos-off]
		}
		off += len(td)
	}
	return -1, ""
}
