package tape

import (
	"fmt"

	"github.com/hyperltl/advicebits/automaton"
)

// RestrictAutomatonWithFormula lifts a single-tape system automaton across
// traceQuantifiers+1 traces, widens the resulting auxiliary tape to match
// formulaAut's configuration-tape descriptor, and intersects with
// formulaAut. formulaAut is the (out-of-scope) MSO formula frontend's
// output automaton; callers without a real frontend can supply a stub
// built directly with automaton.NewBuilder, which is how this function is
// exercised in tests.
func RestrictAutomatonWithFormula(a *automaton.Automaton, formulaAut *automaton.Automaton, traceQuantifiers int) (*automaton.Automaton, error) {
	lifted, err := MultitapeLift(a, traceQuantifiers+1)
	if err != nil {
		return nil, fmt.Errorf("tape: RestrictAutomatonWithFormula: lift: %w", err)
	}

	formulaSM := formulaAut.SymbolMap()
	if len(formulaSM) == 0 {
		return nil, ErrNotSingleTape
	}
	widened, err := ExtendAlphabetOnTape(lifted, len(lifted.SymbolMap())-1, formulaSM[len(formulaSM)-1])
	if err != nil {
		return nil, fmt.Errorf("tape: RestrictAutomatonWithFormula: extend: %w", err)
	}

	intersected, err := automaton.Intersect(widened, formulaAut)
	if err != nil {
		return nil, fmt.Errorf("tape: RestrictAutomatonWithFormula: intersect: %w", err)
	}

	return automaton.Minimise(intersected)
}

// RestrictTransducerWithFormula lifts a 2-tape system transducer across
// traceQuantifiers+1 traces, appends a pair of configuration tapes matching
// formulaAut's, and intersects with formulaAut. Unlike
// RestrictAutomatonWithFormula, the transducer already carries its
// current/next tape pair before lifting, so AddTransducerNextSymbols —
// which manufactures a next-tape pairing for a MultitapeLift-shaped
// *invariant* automaton's inductiveness check — has no role here.
func RestrictTransducerWithFormula(t *automaton.Transducer, formulaAut *automaton.Automaton, traceQuantifiers int) (*automaton.Automaton, error) {
	lifted, err := MultitapeLiftTransducer(t, traceQuantifiers+1)
	if err != nil {
		return nil, fmt.Errorf("tape: RestrictTransducerWithFormula: lift: %w", err)
	}

	formulaSM := formulaAut.SymbolMap()
	if len(formulaSM) == 0 {
		return nil, ErrNotSingleTape
	}
	withConfig, err := ExtendTransducerAlphabetOnConfigurationTapes(lifted, formulaSM[len(formulaSM)-1])
	if err != nil {
		return nil, fmt.Errorf("tape: RestrictTransducerWithFormula: extend config: %w", err)
	}

	intersected, err := automaton.Intersect(withConfig.Automaton, formulaAut)
	if err != nil {
		return nil, fmt.Errorf("tape: RestrictTransducerWithFormula: intersect: %w", err)
	}

	return automaton.Minimise(intersected)
}
