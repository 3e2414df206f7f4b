package automaton

// Paths enumerates every input sequence of exactly length symbols that walks
// the machine from its CURRENT state into a terminal state, every step being
// a valid transition.
//
// The exploration is depth-first and branches over the out-edges of each
// state in edge-declaration order, so the result order is deterministic.
// The cursor travels by value through the recursion: sibling branches are
// independent and the machine's own cursor never moves. Negative lengths
// yield nil; length 0 yields one empty sequence iff the current state is
// already terminal.
//
// There is no memoization: the result set is worst-case exponential in
// length, which is fine at the exercise scale this is meant for.
func Paths[S, Sym comparable](m *Machine[S, Sym], length int) [][]Sym {
	if m == nil || length < 0 {
		return nil
	}
	var paths [][]Sym
	m.walk(m.current, length, nil, &paths)
	return paths
}

// walk recurses with the cursor as the at argument. prefix's backing array is
// shared across sibling branches; the base case snapshots it before yielding.
func (m *Machine[S, Sym]) walk(at S, remaining int, prefix []Sym, paths *[][]Sym) {
	if remaining == 0 {
		if m.terminal.Has(at) {
			*paths = append(*paths, append([]Sym(nil), prefix...))
		}
		return
	}
	for _, sym := range m.order[at] {
		m.walk(m.table[at][sym], remaining-1, append(prefix, sym), paths)
	}
}

// PathStrings is Paths for character automata, with each rune sequence
// joined into a string.
func PathStrings[S comparable](m *Machine[S, rune], length int) []string {
	var out []string
	for _, p := range Paths(m, length) {
		out = append(out, string(p))
	}
	return out
}
