package ioformat

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"

	"github.com/hyperltl/advicebits/automaton"
)

// dotTemplate renders a digraph in the same shape Graphviz's "dot" tool
// expects: a double-circled state per accepting state, an unlabeled arrow
// into every initial state from a synthetic point node, and one labeled
// edge per transition. No graphviz Go binding appears anywhere in the
// example pack this was grounded on, so this writer, like the rest of this
// package, uses only the standard library (text/template plus fmt); see
// DESIGN.md.
var dotTemplate = template.Must(template.New("dot").Parse(`digraph {{.Name}} {
	rankdir=LR;
	node [shape=circle];
{{- range .Final}}
	{{.}} [shape=doublecircle];
{{- end}}
{{- range .Initial}}
	__start_{{.}} [shape=point];
	__start_{{.}} -> {{.}};
{{- end}}
{{- range .Edges}}
	{{.Src}} -> {{.Dst}} [label="{{.Label}}"];
{{- end}}
}
`))

type dotEdge struct {
	Src, Dst, Label string
}

type dotData struct {
	Name    string
	Initial []string
	Final   []string
	Edges   []dotEdge
}

// WriteAutomatonDOT renders a as DOT source under the graph name "A", the
// visualisation output for a synthesized invariant automaton.
func WriteAutomatonDOT(w io.Writer, a *automaton.Automaton) error {
	return writeDOT(w, "A", a, func(_ int, label string) string { return label })
}

// WriteTransducerDOT renders t as DOT source under the graph name "T",
// labeling each edge "cur/next" by splitting the stored symbol at the
// tapes-half midpoint, the visualisation output for a synthesized relation
// transducer.
func WriteTransducerDOT(w io.Writer, t *automaton.Transducer) error {
	half := t.TapesHalf()
	curWidth := 0
	for i := 0; i < half; i++ {
		curWidth += len(t.SymbolMap()[i])
	}
	return writeDOT(w, "T", t.Automaton, func(_ int, label string) string {
		if curWidth <= 0 || curWidth >= len(label) {
			return label
		}
		return label[:curWidth] + "/" + label[curWidth:]
	})
}

func writeDOT(w io.Writer, name string, a *automaton.Automaton, formatLabel func(width int, label string) string) error {
	stateNames := make([]string, a.NumStates())
	for i := range stateNames {
		stateNames[i] = fmt.Sprintf("s%d", i)
	}

	data := dotData{Name: name}
	for _, s := range a.InitialStates() {
		data.Initial = append(data.Initial, stateNames[s])
	}
	for _, s := range a.FinalStates() {
		data.Final = append(data.Final, stateNames[s])
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
	for _, tr := range transitions {
		label := formatLabel(a.Width(), string(tr.Sym))
		data.Edges = append(data.Edges, dotEdge{
			Src:   stateNames[tr.Src],
			Dst:   stateNames[tr.Dst],
			Label: strings.ReplaceAll(label, `"`, `\"`),
		})
	}

	return dotTemplate.Execute(w, data)
}
