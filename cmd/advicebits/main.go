/*
Advicebits synthesizes an invariant automaton A and a well-founded relation
transducer T certifying a HyperLTL(MSO) property of a regular-transducer
system.

Usage:

	advicebits [flags]

The flags are:

	-f, --formula FILE
		The HyperLTL(MSO) formula file. Consumed by the injected formula
		frontend, not by this binary directly.

	-i, --initial FILE
		The .mata-style initial-configuration automaton I.

	-s, --system FILE
		The .mata-style system transducer S.

	-m, --symbols FILE
		The symbol-mapping file naming I and S's atomic propositions.

	-k, --max-states N
		The state bound for the synthesized invariant A (and for the
		relation transducer T too, unless --relation-states or a relation
		state bound in the --config file gives T its own).

	--supplied-relation FILE
		A .mata-style transducer to use as T directly, skipping its SAT
		encoding. If --supplied-invariant is also given, the pair is
		rejected (not refined) when it fails a semantic check; given alone,
		a failing check only moves the search on to the next candidate A.

	--supplied-invariant FILE
		A .mata-style automaton to use as A directly, skipping its SAT
		encoding. If --supplied-relation is also given, the pair is
		rejected (not refined) when it fails a semantic check; given alone,
		a failing check only moves the search on to the next candidate T.

	--relation-states N
		A state bound for T independent of --max-states.

	--config FILE
		An optional TOML tunables file (config.LoadTunables); see
		config.DefaultTunables for what it can override.

On success, A and T are written as DOT visualisation source to "A.dot" and
"T.dot" in the current directory and the process exits 0. Exit 1 means
solver enumeration was exhausted with no certificate found
(cegis.ErrNoSolutionWithinBound); exit 2 covers every other error, including
a malformed input file or a rejected supplied certificate.
*/
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	"github.com/spf13/pflag"

	"github.com/hyperltl/advicebits/automaton"
	"github.com/hyperltl/advicebits/cegis"
	"github.com/hyperltl/advicebits/config"
	"github.com/hyperltl/advicebits/ioformat"
	"github.com/hyperltl/advicebits/sat"
)

const (
	// ExitSuccess indicates a and t were synthesized and written out.
	ExitSuccess = 0

	// ExitNoSolution indicates cegis.Run exhausted its enumeration bound.
	ExitNoSolution = 1

	// ExitError covers every other failure: a malformed input, an
	// alphabet mismatch, a rejected supplied certificate, or an I/O error
	// writing the DOT outputs.
	ExitError = 2
)

// FrontendFactory builds the fixed CEGIS inputs from the formula,
// initial-configuration, system, and symbol-mapping file paths. The
// HyperLTL(MSO) grammar itself is out of scope; this function value is
// the seam a real frontend implementation plugs into, and tests inject a
// fake here instead of a parser.
type FrontendFactory func(formulaPath, initialPath, systemPath, symbolMapPath string) (*cegis.Instance, error)

// unimplementedFrontendFactory is the default FrontendFactory: it always
// fails, since no HyperLTL(MSO) grammar ships with this binary. A
// deployment wires a real one in by replacing frontendFactory before
// calling run.
func unimplementedFrontendFactory(string, string, string, string) (*cegis.Instance, error) {
	return nil, errors.New("advicebits: no formula frontend is wired in; replace main.frontendFactory")
}

var frontendFactory FrontendFactory = unimplementedFrontendFactory

var (
	formulaFile   = pflag.StringP("formula", "f", "", "HyperLTL(MSO) formula file (mandatory)")
	initialFile   = pflag.StringP("initial", "i", "", "initial-configuration automaton file (mandatory)")
	systemFile    = pflag.StringP("system", "s", "", "system transducer file (mandatory)")
	symbolsFile   = pflag.StringP("symbols", "m", "", "symbol-mapping file (mandatory)")
	maxStates     = pflag.IntP("max-states", "k", 0, "state bound for the invariant automaton (mandatory)")
	suppliedRel   = pflag.String("supplied-relation", "", "optional .mata transducer file to use as T directly")
	suppliedInv   = pflag.String("supplied-invariant", "", "optional .mata automaton file to use as A directly")
	relationBound = pflag.Int("relation-states", 0, "optional independent state bound for T")
	configFile    = pflag.String("config", "", "optional TOML tunables file")
)

func main() {
	pflag.Parse()
	os.Exit(run(frontendFactory, os.Stderr))
}

func run(frontend FrontendFactory, stderr *os.File) int {
	if *formulaFile == "" || *initialFile == "" || *systemFile == "" || *symbolsFile == "" || *maxStates <= 0 {
		fmt.Fprintln(stderr, "advicebits: --formula, --initial, --system, --symbols, and --max-states are all mandatory")
		return ExitError
	}

	tunables := config.DefaultTunables()
	if *configFile != "" {
		loaded, err := config.LoadTunables(*configFile)
		if err != nil {
			fmt.Fprintf(stderr, "advicebits: %v\n", err)
			return ExitError
		}
		tunables = loaded
	}
	configureLogging(tunables.LogLevel)

	inst, err := frontend(*formulaFile, *initialFile, *systemFile, *symbolsFile)
	if err != nil {
		fmt.Fprintf(stderr, "advicebits: %v\n", err)
		return ExitError
	}

	var supplied cegis.Supplied
	if *suppliedInv != "" {
		a, err := readSuppliedInvariant(*suppliedInv, inst)
		if err != nil {
			fmt.Fprintf(stderr, "advicebits: %v\n", err)
			return ExitError
		}
		supplied.A = a
	}
	if *suppliedRel != "" {
		t, err := readSuppliedRelation(*suppliedRel, inst)
		if err != nil {
			fmt.Fprintf(stderr, "advicebits: %v\n", err)
			return ExitError
		}
		supplied.T = t
	}

	cfg := cegis.DefaultConfig()
	cfg.ClauseExplosionGuard = tunables.ClauseExplosionGuard
	cfg.SolverName = tunables.SolverName
	statesT := *maxStates
	if *relationBound > 0 {
		statesT = *relationBound
	} else if tunables.RelationStateBound > 0 {
		statesT = tunables.RelationStateBound
	}

	solver, err := newSolver(cfg.SolverName)
	if err != nil {
		fmt.Fprintf(stderr, "advicebits: %v\n", err)
		return ExitError
	}
	a, t, err := cegis.Run(inst, cegis.NewDefaultChecker(), solver, *maxStates, statesT, cfg, supplied)
	if err != nil {
		if errors.Is(err, cegis.ErrNoSolutionWithinBound) {
			fmt.Fprintf(stderr, "advicebits: %v\n", err)
			return ExitNoSolution
		}
		fmt.Fprintf(stderr, "advicebits: %v\n", err)
		return ExitError
	}

	if err := writeOutputs(a, t); err != nil {
		fmt.Fprintf(stderr, "advicebits: %v\n", err)
		return ExitError
	}
	return ExitSuccess
}

// newSolver resolves cegis.Config.SolverName to a sat.Solver. "gini" is the
// only built-in backend; an unrecognised name is a configuration error
// rather than a silent fallback.
func newSolver(name string) (sat.Solver, error) {
	switch name {
	case "", "gini":
		return sat.New(), nil
	default:
		return nil, fmt.Errorf("unknown solver %q", name)
	}
}

func readSuppliedInvariant(path string, inst *cegis.Instance) (*automaton.Automaton, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open supplied invariant: %w", err)
	}
	defer f.Close()
	return ioformat.ReadAutomaton(f, inst.ConfigurationSymbolMap())
}

func readSuppliedRelation(path string, inst *cegis.Instance) (*automaton.Transducer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open supplied relation: %w", err)
	}
	defer f.Close()
	sm := inst.ExtendedTransducer.SymbolMap()
	half := sm[:inst.ExtendedTransducer.TapesHalf()]
	return ioformat.ReadTransducer(f, half)
}

func writeOutputs(a *automaton.Automaton, t *automaton.Transducer) error {
	af, err := os.Create("A.dot")
	if err != nil {
		return fmt.Errorf("create A.dot: %w", err)
	}
	defer af.Close()
	if err := ioformat.WriteAutomatonDOT(af, a); err != nil {
		return fmt.Errorf("write A.dot: %w", err)
	}

	tf, err := os.Create("T.dot")
	if err != nil {
		return fmt.Errorf("create T.dot: %w", err)
	}
	defer tf.Close()
	if err := ioformat.WriteTransducerDOT(tf, t); err != nil {
		return fmt.Errorf("write T.dot: %w", err)
	}
	return nil
}

func configureLogging(level string) {
	switch level {
	case "silent":
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	case "error":
		gologger.DefaultLogger.SetMaxLevel(levels.LevelError)
	case "warning":
		gologger.DefaultLogger.SetMaxLevel(levels.LevelWarning)
	case "verbose":
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	case "debug":
		gologger.DefaultLogger.SetMaxLevel(levels.LevelDebug)
	default:
		gologger.DefaultLogger.SetMaxLevel(levels.LevelInfo)
	}
}
