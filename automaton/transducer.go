package automaton

// Transducer tags an Automaton whose tapes come in two equal-length halves:
// the first half describes the "current" configuration, the second the
// "next" configuration. It is a tag on Automaton rather than a subclass —
// TapesHalf is a derived attribute, and every automaton.* operation works
// on the embedded Automaton unchanged.
type Transducer struct {
	*Automaton
}

// NewTransducer wraps a, which must have an even number of tapes.
func NewTransducer(a *Automaton) (*Transducer, error) {
	if a.NumberOfTapes()%2 != 0 {
		return nil, ErrOddTapeCount
	}
	return &Transducer{Automaton: a}, nil
}

// TapesHalf returns number_of_tapes / 2, the invariant tape count of each
// half.
func (t *Transducer) TapesHalf() int {
	return t.NumberOfTapes() / 2
}
