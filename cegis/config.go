package cegis

// Config holds the tunables of one Run: every field that changes behavior
// gets a sentence explaining what it trades off, not just what it is.
type Config struct {
	// ClauseExplosionGuard caps how many variables (auxiliary ones included)
	// may be true in a candidate model before the initial-inclusion refinement
	// step is skipped for that iteration and the next model is requested
	// instead. This is an optimisation against pathologically large
	// refinement clauses, not a semantic requirement — a conforming loop
	// may set this arbitrarily high.
	ClauseExplosionGuard int

	// RelationBound records a state count for T independent of A's bound.
	// Run does not read it: T's bound is always Run's statesT argument.
	RelationBound *int

	// SolverName selects the SAT backend by name; "gini" is the only
	// built-in, backed by sat.New.
	SolverName string
}

// DefaultConfig returns a clause-explosion guard of 15, no separate relation
// bound, and the gini backend.
func DefaultConfig() Config {
	return Config{
		ClauseExplosionGuard: 15,
		SolverName:           "gini",
	}
}
