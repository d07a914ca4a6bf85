package sat

import "iter"

// BruteForce is a tiny exhaustive-search Solver used only by tests: it
// tries every assignment of the variables seen so far in ascending order,
// with no clause-learning or unit propagation. Adequate (and fully
// deterministic, unlike a real CDCL solver's model order) for the small
// fixtures encode/ and cegis/ exercise it with; never use it on anything
// resembling a production-sized instance.
type BruteForce struct {
	clauses [][]int
	maxVar  int
}

// NewBruteForce returns an empty BruteForce solver.
func NewBruteForce() *BruteForce {
	return &BruteForce{}
}

// AddClause implements Solver.
func (b *BruteForce) AddClause(lits []int) error {
	clause := append([]int(nil), lits...)
	for _, l := range clause {
		if v := abs(l); v > b.maxVar {
			b.maxVar = v
		}
	}
	b.clauses = append(b.clauses, clause)
	return nil
}

// Solve implements Solver.
func (b *BruteForce) Solve() (bool, error) {
	for m := range b.Models() {
		_ = m
		return true, nil
	}
	return false, nil
}

// Models implements Solver by exhaustively trying every assignment of
// variables 1..maxVar in ascending numeric order. maxVar is re-read from b
// on every iteration rather than captured once up front, so a caller that
// calls AddClause from inside its consuming loop (CEGIS refinement, which
// may introduce brand-new auxiliary variables between one yielded model and
// the next) still gets those variables and clauses reflected in every model
// tried afterwards, the same way GiniSolver's fresh re-solve does.
func (b *BruteForce) Models() iter.Seq[Model] {
	return func(yield func(Model) bool) {
		for bits := 0; bits < 1<<uint(b.maxVar); bits++ {
			n := b.maxVar
			m := make(Model, n)
			for v := 1; v <= n; v++ {
				m[v] = bits&(1<<uint(v-1)) != 0
			}
			if b.satisfies(m) {
				if !yield(m) {
					return
				}
			}
		}
	}
}

func (b *BruteForce) satisfies(m Model) bool {
	for _, clause := range b.clauses {
		ok := false
		for _, l := range clause {
			if l > 0 && m[l] {
				ok = true
				break
			}
			if l < 0 && !m[-l] {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}
