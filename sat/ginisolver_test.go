package sat

// Compile-time assertions that both concrete solvers satisfy Solver.
var (
	_ Solver = (*GiniSolver)(nil)
	_ Solver = (*BruteForce)(nil)
)
