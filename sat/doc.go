// Package sat defines the CNF oracle contract the CEGIS loop drives its
// candidate search through (Solver), a gini-backed concrete implementation
// (GiniSolver), and a brute-force implementation used only by tests, where
// determinism and small variable counts matter more than performance.
package sat
