package sat

import "errors"

// ErrSolverUndetermined indicates the underlying solver returned neither a
// satisfiable nor an unsatisfiable verdict (e.g. interrupted by a budget).
var ErrSolverUndetermined = errors.New("sat: solver returned no verdict")
