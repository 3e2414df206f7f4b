package automaton

// Accepts reports whether the machine, started fresh from its initial state,
// consumes the whole input and ends in a terminal state.
//
// A symbol with no matching out-edge makes the answer false right away;
// that is a normal outcome of the check, not an error. Accepts walks a
// private cursor, so the machine's own cursor is never touched.
func (m *Machine[S, Sym]) Accepts(input ...Sym) bool {
	at := m.initial
	for _, sym := range input {
		to, ok := m.table[at][sym]
		if !ok {
			return false
		}
		at = to
	}
	return m.terminal.Has(at)
}

// AcceptsString is Accepts for character automata, feeding the string to a
// Machine[S, rune] rune by rune.
func AcceptsString[S comparable](m *Machine[S, rune], input string) bool {
	return m.Accepts([]rune(input)...)
}
