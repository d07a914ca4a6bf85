package sat

import (
	"iter"

	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"

	"github.com/hyperltl/advicebits/internal/conv"
)

// GiniSolver is the concrete default Solver, backed by
// github.com/irifrance/gini. gini grows its own variable pool on demand as
// literals referencing higher variable ids are added, so no separate
// allocation call is needed to keep it in lockstep with
// encode.VariableAllocator's ids — the two pools simply agree on meaning by
// construction (variable id i always means the same thing to both).
type GiniSolver struct {
	g      *gini.Gini
	maxVar int
}

// New returns a fresh GiniSolver with an empty clause database.
func New() *GiniSolver {
	return &GiniSolver{g: gini.New()}
}

// AddClause implements Solver.
func (s *GiniSolver) AddClause(lits []int) error {
	for _, l := range lits {
		if v := abs(l); v > s.maxVar {
			s.maxVar = v
		}
		s.g.Add(toLit(l))
	}
	s.g.Add(0)
	return nil
}

// Solve implements Solver.
func (s *GiniSolver) Solve() (bool, error) {
	switch s.g.Solve() {
	case 1:
		return true, nil
	case -1:
		return false, nil
	default:
		return false, ErrSolverUndetermined
	}
}

// Models implements Solver, blocking each yielded model with its negation
// before searching for the next one.
func (s *GiniSolver) Models() iter.Seq[Model] {
	return func(yield func(Model) bool) {
		for {
			if s.g.Solve() != 1 {
				return
			}
			m := make(Model, s.maxVar)
			block := make([]int, 0, s.maxVar)
			for v := 1; v <= s.maxVar; v++ {
				val := s.g.Value(z.Var(conv.IntToInt32(v)).Pos())
				m[v] = val
				if val {
					block = append(block, -v)
				} else {
					block = append(block, v)
				}
			}
			if !yield(m) {
				return
			}
			if err := s.AddClause(block); err != nil {
				return
			}
		}
	}
}

func toLit(id int) z.Lit {
	if id > 0 {
		return z.Var(conv.IntToInt32(id)).Pos()
	}
	return z.Var(conv.IntToInt32(-id)).Neg()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
