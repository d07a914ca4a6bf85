package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hyperltl/advicebits/alphabet"
	"github.com/hyperltl/advicebits/automaton"
	"github.com/hyperltl/advicebits/cegis"
	"github.com/hyperltl/advicebits/ioformat"
)

// withFlags sets every mandatory/optional pflag-backed variable for the
// duration of a test and restores the zero value afterwards, since they are
// package-level globals shared across the whole test binary.
func withFlags(t *testing.T, formula, initial, system, symbols string, k int, suppliedInvPath, suppliedRelPath string, relStates int, cfgPath string) {
	t.Helper()
	*formulaFile = formula
	*initialFile = initial
	*systemFile = system
	*symbolsFile = symbols
	*maxStates = k
	*suppliedInv = suppliedInvPath
	*suppliedRel = suppliedRelPath
	*relationBound = relStates
	*configFile = cfgPath
	t.Cleanup(func() {
		*formulaFile, *initialFile, *systemFile, *symbolsFile = "", "", "", ""
		*maxStates, *relationBound = 0, 0
		*suppliedInv, *suppliedRel, *configFile = "", "", ""
	})
}

func fakeFrontend(inst *cegis.Instance, err error) FrontendFactory {
	return func(string, string, string, string) (*cegis.Instance, error) {
		return inst, err
	}
}

func TestRunRejectsMissingMandatoryFlags(t *testing.T) {
	withFlags(t, "", "", "", "", 0, "", "", 0, "")
	devnull, _ := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	defer devnull.Close()
	got := run(fakeFrontend(nil, nil), devnull)
	if got != ExitError {
		t.Errorf("run() = %d, want ExitError", got)
	}
}

func TestRunPropagatesFrontendError(t *testing.T) {
	withFlags(t, "f.formula", "f.initial", "f.system", "f.symbols", 2, "", "", 0, "")
	devnull, _ := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	defer devnull.Close()
	got := run(fakeFrontend(nil, errors.New("frontend exploded")), devnull)
	if got != ExitError {
		t.Errorf("run() = %d, want ExitError", got)
	}
}

func TestRunRejectsMissingConfigFile(t *testing.T) {
	dir := t.TempDir()
	withFlags(t, "f", "i", "s", "m", 2, "", "", 0, filepath.Join(dir, "missing.toml"))
	devnull, _ := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	defer devnull.Close()
	got := run(fakeFrontend(nil, nil), devnull)
	if got != ExitError {
		t.Errorf("run() = %d, want ExitError", got)
	}
}

// buildUniversalInstance returns an Instance whose ExtendedTransducer
// self-loops on every 4-bit symbol. Supplied A/T that accept everything
// (writeUniversalAutomaton) pass initial inclusion and inductiveness
// against it, but such a T relates every configuration to itself, so
// CheckIrreflexive rejects the supplied pair.
func buildUniversalInstance(t *testing.T) *cegis.Instance {
	t.Helper()
	trace := alphabet.TapeDescriptor{"p"}
	aux := alphabet.TapeDescriptor{}
	config := alphabet.TapeDescriptor{}

	initSM := alphabet.SymbolMap{trace.Clone(), trace.Clone(), aux.Clone(), config.Clone()}
	ib := automaton.NewBuilder(initSM)
	i0 := ib.AddState()
	ib.MarkInitial(i0)
	ib.MarkFinal(i0)
	for _, sym := range alphabet.EnumerateWidth(2) {
		ib.AddTransition(i0, sym, i0)
	}
	initial, err := ib.Build()
	if err != nil {
		t.Fatalf("build Initial: %v", err)
	}

	sysSM := alphabet.SymbolMap{
		trace.Clone(), trace.Clone(), aux.Clone(), config.Clone(),
		trace.Clone(), trace.Clone(), aux.Clone(), config.Clone(),
	}
	sb := automaton.NewBuilder(sysSM)
	s0 := sb.AddState()
	sb.MarkInitial(s0)
	sb.MarkFinal(s0)
	for _, sym := range alphabet.EnumerateWidth(4) {
		sb.AddTransition(s0, sym, s0)
	}
	sysA, err := sb.Build()
	if err != nil {
		t.Fatalf("build ExtendedTransducer: %v", err)
	}
	sys, err := automaton.NewTransducer(sysA)
	if err != nil {
		t.Fatalf("NewTransducer: %v", err)
	}

	return &cegis.Instance{
		Initial:            initial,
		ExtendedTransducer: sys,
		TraceQuantifiers:   []cegis.Quantifier{{Universal: true, TraceIndex: 1}},
	}
}

func TestRunEndToEndWithSuppliedCertificatesRejectedByIrreflexivity(t *testing.T) {
	inst := buildUniversalInstance(t)
	dir := t.TempDir()

	invPath := filepath.Join(dir, "invariant.mata")
	invFile, err := os.Create(invPath)
	if err != nil {
		t.Fatalf("create invariant file: %v", err)
	}
	if err := writeUniversalAutomaton(invFile, inst.ConfigurationSymbolMap()); err != nil {
		t.Fatalf("write invariant file: %v", err)
	}
	invFile.Close()

	relPath := filepath.Join(dir, "relation.mata")
	relFile, err := os.Create(relPath)
	if err != nil {
		t.Fatalf("create relation file: %v", err)
	}
	half := inst.ExtendedTransducer.SymbolMap()[:inst.ExtendedTransducer.TapesHalf()]
	fullSM := append(alphabet.SymbolMap(half).Clone(), alphabet.SymbolMap(half).Clone()...)
	if err := writeUniversalAutomaton(relFile, fullSM); err != nil {
		t.Fatalf("write relation file: %v", err)
	}
	relFile.Close()

	withFlags(t, "f", "i", "s", "m", 1, invPath, relPath, 0, "")

	devnull, _ := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	defer devnull.Close()
	got := run(fakeFrontend(inst, nil), devnull)
	if got != ExitError {
		t.Errorf("run() = %d, want ExitError (the supplied relation is not irreflexive)", got)
	}
}

// writeUniversalAutomaton writes a single-state, universally self-looping,
// initial-and-final automaton over sm — the minimal "accept everything"
// fixture suitable both as a supplied invariant (width sm.Width()) and,
// doubled, as a supplied relation.
func writeUniversalAutomaton(w *os.File, sm alphabet.SymbolMap) error {
	bld := automaton.NewBuilder(sm)
	s0 := bld.AddState()
	bld.MarkInitial(s0)
	bld.MarkFinal(s0)
	for _, sym := range alphabet.EnumerateWidth(sm.Width()) {
		bld.AddTransition(s0, sym, s0)
	}
	a, err := bld.Build()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := ioformat.WriteAutomaton(&buf, a); err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}
