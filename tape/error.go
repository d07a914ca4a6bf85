package tape

import "errors"

// Sentinel errors for tape-algebra operations.
var (
	// ErrTapeIndexOutOfRange indicates a tape index outside [0, NumberOfTapes).
	ErrTapeIndexOutOfRange = errors.New("tape: tape index out of range")

	// ErrBitIndexOutOfRange indicates a bit index outside a tape's width.
	ErrBitIndexOutOfRange = errors.New("tape: bit index out of range")

	// ErrNotSingleTape indicates an operation that requires a one-tape
	// automaton (e.g. MultitapeLift) received one with a different shape.
	ErrNotSingleTape = errors.New("tape: operation requires a single-tape automaton")

	// ErrNotTransducer indicates an operation that requires an even
	// (current/next) tape count received an odd one.
	ErrNotTransducer = errors.New("tape: operation requires a transducer (current/next tape pair)")

	// ErrTraceCountTooSmall indicates a multitape lift was asked to produce
	// fewer than 2 trace copies, which is never meaningful (a HyperLTL(MSO)
	// property always compares at least two traces).
	ErrTraceCountTooSmall = errors.New("tape: trace count must be at least 2")
)
