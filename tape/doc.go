// Package tape implements the tape algebra used to reshape automata and
// transducers between the single-tape system automaton the frontend parses
// and the multi-tape objects the CEGIS loop's semantic checks consume:
// widening a tape's alphabet by cylindrification, dropping an unused bit,
// appending an empty auxiliary tape, and lifting a single-tape automaton (or
// a 2-tape transducer) across several trace copies via synchronized product.
//
// Every operation here returns a new value; none mutates its argument.
package tape
