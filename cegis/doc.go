// Package cegis drives the counter-example-guided inductive synthesis loop:
// it poses the existence of an invariant automaton A and a well-founded
// relation transducer T as a Boolean satisfiability problem, decodes each
// candidate the solver produces, runs the semantic checks of a Checker
// collaborator against it in a fixed order, and refines the encoding on the
// first failing check. The automata algebra and candidate encoder are pure;
// this package is the one place that owns the iterate-and-refine state
// machine and reports its progress.
package cegis
