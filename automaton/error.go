package automaton

import (
	"errors"
	"fmt"

	"github.com/hyperltl/advicebits/alphabet"
)

// Sentinel errors for automaton operations.
var (
	// ErrAlphabetMismatch indicates an algebraic operation over two
	// automata received operands with incompatible symbol maps.
	ErrAlphabetMismatch = errors.New("automaton: alphabet mismatch")

	// ErrOddTapeCount indicates an attempt to treat an automaton with an
	// odd number of tapes as a Transducer.
	ErrOddTapeCount = errors.New("automaton: transducer requires an even number of tapes")
)

// AlphabetMismatchError wraps ErrAlphabetMismatch with the two offending
// symbol maps, so an algebraic op over mismatched tape layouts fails
// loudly rather than silently producing garbage transitions.
type AlphabetMismatchError struct {
	Op    string
	Left  alphabet.SymbolMap
	Right alphabet.SymbolMap
}

// Error implements the error interface.
func (e *AlphabetMismatchError) Error() string {
	return fmt.Sprintf("automaton: %s: alphabet mismatch (%v vs %v)", e.Op, e.Left, e.Right)
}

// Unwrap allows errors.Is(err, ErrAlphabetMismatch).
func (e *AlphabetMismatchError) Unwrap() error { return ErrAlphabetMismatch }

func requireSameAlphabet(op string, a, b *Automaton) error {
	if !a.symbolMap.Equal(b.symbolMap) {
		return &AlphabetMismatchError{Op: op, Left: a.symbolMap, Right: b.symbolMap}
	}
	return nil
}
