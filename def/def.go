// Package def reads and writes serialized automaton definitions.
//
// A Definition is the edge list of a character automaton as data, in YAML
// (JSON works too, being a YAML subset), ready to be compiled into a
// Machine[string, rune]:
//
//	name: leading-a
//	initial: s1
//	terminal: [s2]
//	edges:
//	  - {from: s1, on: a, to: s2}
//	  - {from: s2, on: a, to: s2}
//
// Definitions are a serialization of the automaton's data model, not a
// configuration system: the package never touches the filesystem, callers
// bring bytes or readers.
package def

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	automaton "github.com/Azure/go-automaton"
)

// ErrBadDefinition is what every defect found by Parse or Compile unwraps
// to. Determinism conflicts keep unwrapping to automaton.ErrNondeterministic
// instead, since they are a property of the edges, not of their encoding.
var ErrBadDefinition = errors.New("bad automaton definition")

// Definition is the serialized form of a character automaton.
type Definition struct {
	Name     string   `yaml:"name,omitempty" json:"name,omitempty"`
	Initial  string   `yaml:"initial" json:"initial"`
	Terminal []string `yaml:"terminal" json:"terminal"`
	Edges    []Edge   `yaml:"edges" json:"edges"`
}

// Edge mirrors automaton.Edge with the symbol spelled as a one-character
// string, the way it reads best in YAML.
type Edge struct {
	From string `yaml:"from" json:"from"`
	On   string `yaml:"on" json:"on"`
	To   string `yaml:"to" json:"to"`
}

// Parse decodes a YAML (or JSON) definition.
func Parse(data []byte) (*Definition, error) {
	var d Definition
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDefinition, err)
	}
	return &d, nil
}

// Load is Parse on a reader.
func Load(r io.Reader) (*Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDefinition, err)
	}
	return Parse(data)
}

// Encode writes the definition to w as YAML.
func (d *Definition) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(d); err != nil {
		return err
	}
	return enc.Close()
}

// Compile validates the definition and builds the machine it describes.
//
// Structural defects (missing initial state, empty edge endpoints, symbols
// that aren't exactly one character) are collected across all edges and
// returned joined, each unwrapping to ErrBadDefinition. Edges that survive
// validation go through automaton.New, so determinism conflicts surface
// exactly as they would for hand-declared edges.
func (d *Definition) Compile() (*automaton.Machine[string, rune], error) {
	var errs []error
	if d.Initial == "" {
		errs = append(errs, fmt.Errorf("%w: no initial state", ErrBadDefinition))
	}
	edges := make([]automaton.Edge[string, rune], 0, len(d.Edges))
	for i, e := range d.Edges {
		sym, ok := oneRune(e.On)
		switch {
		case e.From == "":
			errs = append(errs, fmt.Errorf("%w: edge %d has no source state", ErrBadDefinition, i))
		case e.To == "":
			errs = append(errs, fmt.Errorf("%w: edge %d has no destination state", ErrBadDefinition, i))
		case !ok:
			errs = append(errs, fmt.Errorf("%w: edge %d symbol %q is not exactly one character", ErrBadDefinition, i, e.On))
		default:
			edges = append(edges, automaton.Edge[string, rune]{From: e.From, On: sym, To: e.To})
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return automaton.New(d.Initial, d.Terminal, edges...)
}

func oneRune(s string) (rune, bool) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, true
}

// FromMachine exports a character automaton back into a Definition,
// edge-declaration order preserved, so compiling the result reproduces
// the machine.
func FromMachine[S ~string](name string, m *automaton.Machine[S, rune]) *Definition {
	d := &Definition{Name: name, Initial: string(m.Initial())}
	for _, t := range m.Terminals() {
		d.Terminal = append(d.Terminal, string(t))
	}
	for _, e := range m.Edges() {
		d.Edges = append(d.Edges, Edge{From: string(e.From), On: string(e.On), To: string(e.To)})
	}
	return d
}
