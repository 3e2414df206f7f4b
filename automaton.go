package automaton

import (
	"errors"
)

// Edge is one transition rule: reading On in state From moves the machine to To.
//
// Edges are declared as plain data and handed to New; the declaration order is
// remembered and drives the branching order of Paths and Traverse.
type Edge[S, Sym comparable] struct {
	From S
	On   Sym
	To   S
}

// Machine is a deterministic finite automaton (DFA).
//
// A Machine owns a transition table (at most one successor per state and
// symbol), an initial state, a set of terminal states, and a current-state
// cursor. The table is fixed at construction; only the cursor ever changes,
// and Advance is the only method that changes it.
//
//	m, err := automaton.New("s1", []string{"s4"},
//		automaton.Edge[string, rune]{From: "s1", On: 'a', To: "s2"},
//		automaton.Edge[string, rune]{From: "s2", On: 'b', To: "s3"},
//		automaton.Edge[string, rune]{From: "s3", On: 'a', To: "s4"},
//		automaton.Edge[string, rune]{From: "s4", On: 'a', To: "s4"},
//	)
//	automaton.AcceptsString(m, "aba") // true: "ab" then one or more 'a'
//	automaton.AcceptsString(m, "ab")  // false: "ab" alone ends short of s4
//
// State identifiers and symbols are opaque comparable values: strings and
// runes in the examples above, but any comparable types work. The rune
// instantiation Machine[S, rune] is the character automaton of classic
// exercises and gets string helpers (AcceptsString, PathStrings) for free.
//
// A Machine is not safe for concurrent use: the cursor is a single mutable
// field and callers must serialize access themselves. Accepts and Paths
// observe the table through private cursors of their own, so they never
// disturb (and are never disturbed by) the machine's cursor.
type Machine[S, Sym comparable] struct {
	table    map[S]map[Sym]S // (state, symbol) -> successor
	order    map[S][]Sym     // per-state symbol declaration order
	edges    []Edge[S, Sym]  // declaration order, duplicates folded
	states   []S             // declaration order: initial first, then as edges mention them
	alphabet []Sym           // declaration order, distinct
	initial  S
	current  S

	terminals []S
	terminal  Set[S]
	stateSet  Set[S]
	symSet    Set[Sym]
}

// New constructs a Machine from an initial state, the terminal states and an
// edge list.
//
// Every edge is a guarded insert into the transition table: a second edge for
// an already-registered (From, On) pair is ignored when it names the same To,
// and is a determinism conflict otherwise. All conflicts are collected and
// returned joined into a single error; each one unwraps to
// ErrNondeterministic. The cursor starts at initial.
func New[S, Sym comparable](initial S, terminals []S, edges ...Edge[S, Sym]) (*Machine[S, Sym], error) {
	m := &Machine[S, Sym]{
		table:   make(map[S]map[Sym]S),
		order:   make(map[S][]Sym),
		initial: initial,
		current: initial,
	}
	m.noteState(initial)
	for _, t := range terminals {
		if m.terminal.Has(t) {
			continue
		}
		m.terminal.Add(t)
		m.terminals = append(m.terminals, t)
	}
	var errs []error
	for _, e := range edges {
		if err := m.insert(e); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return m, nil
}

// MustNew is New panicking on error, for machines declared in tests or of
// literals known to be deterministic.
func MustNew[S, Sym comparable](initial S, terminals []S, edges ...Edge[S, Sym]) *Machine[S, Sym] {
	m, err := New(initial, terminals, edges...)
	if err != nil {
		panic(err)
	}
	return m
}

// insert is the guarded table insert behind New.
func (m *Machine[S, Sym]) insert(e Edge[S, Sym]) error {
	if to, ok := m.table[e.From][e.On]; ok {
		if to == e.To {
			return nil // same rule declared twice
		}
		return &ConflictError[S, Sym]{From: e.From, On: e.On, To: e.To, Existing: to}
	}
	if m.table[e.From] == nil {
		m.table[e.From] = make(map[Sym]S)
	}
	m.table[e.From][e.On] = e.To
	m.order[e.From] = append(m.order[e.From], e.On)
	m.edges = append(m.edges, e)
	m.noteState(e.From)
	m.noteState(e.To)
	if !m.symSet.Has(e.On) {
		m.symSet.Add(e.On)
		m.alphabet = append(m.alphabet, e.On)
	}
	return nil
}

func (m *Machine[S, Sym]) noteState(s S) {
	if m.stateSet.Has(s) {
		return
	}
	m.stateSet.Add(s)
	m.states = append(m.states, s)
}

// Current returns the state the cursor is in.
func (m *Machine[S, Sym]) Current() S { return m.current }

// Initial returns the state the machine starts in.
func (m *Machine[S, Sym]) Initial() S { return m.initial }

// Reset moves the cursor back to the initial state.
func (m *Machine[S, Sym]) Reset() { m.current = m.initial }

// Advance consumes one symbol, moving the cursor along the matching out-edge.
//
// Advance is the only mutating method of Machine. When the current state has
// no out-edge on sym, Advance returns an error unwrapping to ErrNoTransition
// and the cursor stays where it was.
func (m *Machine[S, Sym]) Advance(sym Sym) error {
	to, ok := m.table[m.current][sym]
	if !ok {
		return &TransitionError[S, Sym]{State: m.current, On: sym}
	}
	m.current = to
	return nil
}

// OutEdges returns the successor per symbol for the current state, an empty
// map when the state has none. The map is a copy: mutating it does not touch
// the machine.
func (m *Machine[S, Sym]) OutEdges() map[Sym]S {
	out := make(map[Sym]S, len(m.table[m.current]))
	for sym, to := range m.table[m.current] {
		out[sym] = to
	}
	return out
}

// IsTerminal reports whether the current state is a terminal state: input
// ending here is accepted.
func (m *Machine[S, Sym]) IsTerminal() bool { return m.terminal.Has(m.current) }

// IsStuck reports whether the current state has no out-edges at all, so no
// symbol can Advance the machine any further.
func (m *Machine[S, Sym]) IsStuck() bool { return len(m.table[m.current]) == 0 }

// States returns every state the machine knows, in declaration order: the
// initial state first, then sources and destinations in the order the edge
// list first mentions them. Terminal states outside the transition table are
// not states of the machine (they are unreachable by construction).
func (m *Machine[S, Sym]) States() []S { return append([]S(nil), m.states...) }

// Edges returns the transition rules in declaration order, with duplicate
// declarations folded away.
func (m *Machine[S, Sym]) Edges() []Edge[S, Sym] { return append([]Edge[S, Sym](nil), m.edges...) }

// Terminals returns the terminal states in declaration order.
func (m *Machine[S, Sym]) Terminals() []S { return append([]S(nil), m.terminals...) }

// Alphabet returns every distinct symbol some edge consumes, in declaration
// order.
func (m *Machine[S, Sym]) Alphabet() []Sym { return append([]Sym(nil), m.alphabet...) }

// Clone returns a machine with an independent cursor sharing the (immutable)
// transition table, so a clone can be advanced without the original noticing.
func (m *Machine[S, Sym]) Clone() *Machine[S, Sym] {
	c := *m
	return &c
}
