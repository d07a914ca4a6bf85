// Package ioformat implements the plain-text file formats advicebits reads
// and writes: .mata-style automaton descriptions, the newline-delimited
// symbol-mapping file, and DOT visualisation source for synthesized
// certificates.
package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/hyperltl/advicebits/alphabet"
	"github.com/hyperltl/advicebits/automaton"
)

const nfaHeader = "@NFA-explicit"

type rawTriple struct {
	src, sym, dst string
	line          int
}

// ReadAutomaton parses a .mata-style NFA description from r against sm,
// rejecting any transition symbol whose width does not match sm.Width().
// State names on %States-enum lines get IDs first, in the order listed;
// names seen only on %Initial, %Final or transition lines are numbered
// after them, in that order. So a %States-enum line (if present) fixes the
// numbering; states named only in transitions are still accepted.
func ReadAutomaton(r io.Reader, sm alphabet.SymbolMap) (*automaton.Automaton, error) {
	names := map[string]automaton.StateID{}
	order := func(name string) automaton.StateID {
		if id, ok := names[name]; ok {
			return id
		}
		id := automaton.StateID(len(names))
		names[name] = id
		return id
	}

	var initialNames, finalNames []string
	var triples []rawTriple

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case nfaHeader:
			// format marker; nothing to record.
		case "%States-enum":
			for _, s := range fields[1:] {
				order(s)
			}
		case "%Initial":
			initialNames = append(initialNames, fields[1:]...)
		case "%Final":
			finalNames = append(finalNames, fields[1:]...)
		default:
			if len(fields) != 3 {
				return nil, &InputParseError{Line: lineNo, Reason: fmt.Sprintf("expected \"src symbol dst\", got %q", line)}
			}
			triples = append(triples, rawTriple{fields[0], fields[1], fields[2], lineNo})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ioformat: read automaton: %w", err)
	}

	for _, n := range initialNames {
		order(n)
	}
	for _, n := range finalNames {
		order(n)
	}
	for _, tr := range triples {
		order(tr.src)
		order(tr.dst)
	}

	w := sm.Width()
	bld := automaton.NewBuilder(sm)
	bld.AddStates(len(names))
	for _, n := range initialNames {
		bld.MarkInitial(names[n])
	}
	for _, n := range finalNames {
		bld.MarkFinal(names[n])
	}
	for _, tr := range triples {
		sym := alphabet.Symbol(tr.sym)
		if sym.Width() != w {
			return nil, &InputParseError{Line: tr.line, Reason: fmt.Sprintf("symbol %q has width %d, want %d", tr.sym, sym.Width(), w)}
		}
		bld.AddTransition(names[tr.src], sym, names[tr.dst])
	}

	a, err := bld.Build()
	if err != nil {
		return nil, fmt.Errorf("ioformat: read automaton: %w", err)
	}
	return a, nil
}

// ReadTransducer parses a .mata-style transducer description from r.
// halfSM describes one side of the paired-tape layout (width w_tape); the
// file stores each transition's symbol as the two halves concatenated, of
// width 2·w_tape, split at the midpoint to rebuild the (cur, next)
// pairing, which is exactly halfSM duplicated as the full symbol map.
func ReadTransducer(r io.Reader, halfSM alphabet.SymbolMap) (*automaton.Transducer, error) {
	fullSM := append(halfSM.Clone(), halfSM.Clone()...)
	a, err := ReadAutomaton(r, fullSM)
	if err != nil {
		return nil, err
	}
	t, err := automaton.NewTransducer(a)
	if err != nil {
		return nil, fmt.Errorf("ioformat: read transducer: %w", err)
	}
	return t, nil
}

// WriteAutomaton emits a, in .mata-style explicit-NFA form, to w.
func WriteAutomaton(w io.Writer, a *automaton.Automaton) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, nfaHeader); err != nil {
		return err
	}

	stateNames := make([]string, a.NumStates())
	for i := range stateNames {
		stateNames[i] = fmt.Sprintf("s%d", i)
	}
	if _, err := fmt.Fprintf(bw, "%%States-enum  %s\n", strings.Join(stateNames, " ")); err != nil {
		return err
	}

	initial := a.InitialStates()
	initNames := make([]string, len(initial))
	for i, s := range initial {
		initNames[i] = stateNames[s]
	}
	if _, err := fmt.Fprintf(bw, "%%Initial      %s\n", strings.Join(initNames, " ")); err != nil {
		return err
	}

	final := a.FinalStates()
	finalNames := make([]string, len(final))
	for i, s := range final {
		finalNames[i] = stateNames[s]
	}
	if _, err := fmt.Fprintf(bw, "%%Final        %s\n", strings.Join(finalNames, " ")); err != nil {
		return err
	}

	transitions := append([]automaton.Transition(nil), a.Transitions()...)
	sort.Slice(transitions, func(i, j int) bool {
		if transitions[i].Src != transitions[j].Src {
			return transitions[i].Src < transitions[j].Src
		}
		if transitions[i].Sym != transitions[j].Sym {
			return transitions[i].Sym < transitions[j].Sym
		}
		return transitions[i].Dst < transitions[j].Dst
	})
	for _, t := range transitions {
		if _, err := fmt.Fprintf(bw, "%s %s %s\n", stateNames[t.Src], string(t.Sym), stateNames[t.Dst]); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteTransducer emits t, in .mata-style explicit-NFA form, to w. Since a
// Transducer's symbols already carry both tape halves concatenated, this is
// WriteAutomaton over t.Automaton with no further splitting.
func WriteTransducer(w io.Writer, t *automaton.Transducer) error {
	return WriteAutomaton(w, t.Automaton)
}
