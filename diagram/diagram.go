// Package diagram renders automatons as Mermaid and Graphviz diagrams.
//
// Both writers emit the machine's structure in edge-declaration order, so
// the same machine always renders to the same bytes. Symbols of type rune
// print as the character they encode; every other state and symbol type
// prints the way fmt would print it.
package diagram

import (
	"fmt"
	"io"
	"strings"

	automaton "github.com/Azure/go-automaton"
)

// WriteMermaid writes m to w as a Mermaid stateDiagram-v2.
//
// The pseudo-state [*] points at the initial state, every terminal state
// points back at [*], and each edge is labeled with its symbol. State names
// are flattened into Mermaid-safe identifiers, so distinct states whose
// names differ only in punctuation may collide in the rendering.
func WriteMermaid[S, Sym comparable](w io.Writer, m *automaton.Machine[S, Sym]) error {
	var err error
	p := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}
	p("stateDiagram-v2\n")
	p("  [*] --> %s\n", mermaidID(m.Initial()))
	for _, e := range m.Edges() {
		p("  %s --> %s: %s\n", mermaidID(e.From), mermaidID(e.To), text(e.On))
	}
	for _, t := range m.Terminals() {
		p("  %s --> [*]\n", mermaidID(t))
	}
	return err
}

// WriteDOT writes m to w in Graphviz DOT, laid out left to right with
// terminal states drawn as double circles. The output pastes into any DOT
// renderer as-is.
func WriteDOT[S, Sym comparable](w io.Writer, m *automaton.Machine[S, Sym]) error {
	var err error
	p := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}
	p("digraph {\n")
	p("    rankdir=LR;\n")
	p("    node [shape=circle];\n")
	p("    __start [shape=point];\n")
	for _, t := range m.Terminals() {
		p("    %s [shape=doublecircle];\n", dotID(t))
	}
	p("    __start -> %s;\n", dotID(m.Initial()))
	for _, e := range m.Edges() {
		p("    %s -> %s [label=%q];\n", dotID(e.From), dotID(e.To), text(e.On))
	}
	p("}\n")
	return err
}

// mermaidID flattens a state name into an identifier Mermaid accepts.
func mermaidID(v any) string {
	s := text(v)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, s)
}

func dotID(v any) string {
	return fmt.Sprintf("%q", text(v))
}

// text renders states and symbols for diagram labels. rune is an alias for
// int32, so int32 symbols print as characters; that is the point for the
// Machine[string, rune] automatons def compiles, and a tolerable quirk for
// anything else.
func text(v any) string {
	if r, ok := v.(rune); ok {
		return string(r)
	}
	return fmt.Sprint(v)
}
