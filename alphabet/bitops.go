package alphabet

import "strconv"

// EnumerateWidth returns the complete, ordered list of 2^w symbols of width
// w: the canonical symbol-to-integer bijection used throughout advicebits.
// Symbol index i is the fixed-width big-endian binary representation of i,
// zero-padded to w characters (e.g. EnumerateWidth(2) = ["00","01","10","11"]).
//
// This is used by the completeness/determinism clause generators and by the
// "re-expand a projected witness" step of the candidate encoder, both of
// which operate over small effective alphabets. Callers working with a
// wide per-tape alphabet must restrict to a used-symbol universe instead of
// calling this directly — see Automaton.UsedSymbols.
func EnumerateWidth(w int) []Symbol {
	if w <= 0 {
		return []Symbol{""}
	}
	n := 1 << uint(w)
	out := make([]Symbol, n)
	for i := 0; i < n; i++ {
		out[i] = Symbol(leftPad(strconv.FormatInt(int64(i), 2), w))
	}
	return out
}

func leftPad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	pad := make([]byte, w-len(s))
	for i := range pad {
		pad[i] = '0'
	}
	return string(pad) + s
}

// Project erases the bit positions of s not present in keep, producing a
// symbol of smaller (or equal) width. keep holds the positions to retain, in
// ascending order.
func Project(s Symbol, keep []int) Symbol {
	out := make([]byte, len(keep))
	for i, pos := range keep {
		out[i] = s[pos]
	}
	return Symbol(out)
}

// ExtendBits inserts len(insertPositions) fresh bits into s. insertPositions
// gives each new bit's offset in the *resulting* symbol, ascending, and
// values[i] ('0' or '1') is the bit inserted at insertPositions[i].
func ExtendBits(s Symbol, insertPositions []int, values []byte) Symbol {
	total := len(s) + len(insertPositions)
	out := make([]byte, total)

	inserted := make(map[int]byte, len(insertPositions))
	for i, pos := range insertPositions {
		inserted[pos] = values[i]
	}

	srcIdx := 0
	for i := 0; i < total; i++ {
		if v, ok := inserted[i]; ok {
			out[i] = v
		} else {
			out[i] = s[srcIdx]
			srcIdx++
		}
	}
	return Symbol(out)
}
