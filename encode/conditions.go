package encode

import "github.com/hyperltl/advicebits/sat"

// GenerateAutomatonCondition allocates inv's transition-variable range and
// asserts "some transition exists". For a transducer (transducer=true) the
// clause is relaxed to "some transition exists, or the first transition
// variable is unset". Since the first transition variable is itself one of
// the disjuncts, that clause is a tautology: for a transducer no transition
// is forced to exist.
func GenerateAutomatonCondition(inv *Invariant, alloc *VariableAllocator, solver sat.Solver, transducer bool) error {
	n := inv.NumStates * inv.NumStates * len(inv.UsedAlphabet)
	offset := alloc.Next(n)
	inv.TransVars = VarRange{
		Offset:    offset,
		StrideSrc: inv.NumStates * len(inv.UsedAlphabet),
		StrideSym: inv.NumStates,
	}

	clause := make([]int, 0, n+1)
	for i := 0; i < n; i++ {
		clause = append(clause, offset+i)
	}
	if transducer {
		clause = append(clause, -offset)
	}
	return solver.AddClause(clause)
}

// GenerateAcceptingCondition allocates inv's state-variable range and
// asserts "some state is accepting". For a transducer (transducer=true) the
// clause also carries the negation of the first state variable, which makes
// it a tautology: for a transducer no state is forced to be accepting.
func GenerateAcceptingCondition(inv *Invariant, alloc *VariableAllocator, solver sat.Solver, transducer bool) error {
	offset := alloc.Next(inv.NumStates)
	inv.StateVars = make([]int, inv.NumStates)
	for i := range inv.StateVars {
		inv.StateVars[i] = offset + i
	}

	clause := append([]int(nil), inv.StateVars...)
	if transducer {
		clause = append(clause, -inv.StateVars[0])
	}
	return solver.AddClause(clause)
}

// GenerateCompletenessCondition asserts, for every (src, symbol) pair, that
// at least one destination state exists — the automaton is total.
func GenerateCompletenessCondition(inv *Invariant, solver sat.Solver) error {
	for src := 0; src < inv.NumStates; src++ {
		for symIdx := range inv.UsedAlphabet {
			if err := solver.AddClause(inv.DestVars(src, symIdx)); err != nil {
				return err
			}
		}
	}
	return nil
}

// GenerateDeterminismCondition asserts, for every (src, symbol) pair, that
// at most one destination state exists — a textbook pairwise at-most-one
// encoding over the same k candidate destinations completeness requires to
// exist. Combined with completeness this pins the unknown automaton down
// to exactly one transition per (src, symbol).
func GenerateDeterminismCondition(inv *Invariant, solver sat.Solver) error {
	for src := 0; src < inv.NumStates; src++ {
		for symIdx := range inv.UsedAlphabet {
			vars := inv.DestVars(src, symIdx)
			for i := 0; i < len(vars); i++ {
				for j := i + 1; j < len(vars); j++ {
					if err := solver.AddClause([]int{-vars[i], -vars[j]}); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}
