package automaton

// TraverseDecision controls how Traverse proceeds after visiting a state.
type TraverseDecision int

const (
	TraverseContinue  TraverseDecision = iota // keep going, expand this state's successors
	TraverseEndBranch                         // don't expand this state's successors
	TraverseStop                              // abort the whole traversal
)

// Traverse visits every state reachable from the machine's current state,
// breadth-first, expanding out-edges in declaration order. Each state is
// visited once; walked is the chain of states the traversal came through to
// reach it (empty for the current state itself). The visit decision can end
// the branch or stop the traversal.
func Traverse[S, Sym comparable](m *Machine[S, Sym], visit func(state S, walked []S) TraverseDecision) {
	if m == nil || visit == nil {
		return
	}
	type entry struct {
		state  S
		walked []S
	}
	var seen Set[S]
	seen.Add(m.current)
	queue := []entry{{state: m.current}}
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		switch visit(e.state, e.walked) {
		case TraverseStop:
			return
		case TraverseEndBranch:
			continue
		}
		walked := append(append([]S(nil), e.walked...), e.state)
		for _, sym := range m.order[e.state] {
			next := m.table[e.state][sym]
			if seen.Has(next) {
				continue
			}
			seen.Add(next)
			queue = append(queue, entry{state: next, walked: walked})
		}
	}
}

// Reachable returns the states reachable from the current state, the current
// state included, in traversal order.
func Reachable[S, Sym comparable](m *Machine[S, Sym]) []S {
	var states []S
	Traverse(m, func(s S, _ []S) TraverseDecision {
		states = append(states, s)
		return TraverseContinue
	})
	return states
}

// DeadEnds returns the reachable states a walk can get stuck in: states that
// are not terminal and have no out-edges. A machine with dead ends rejects
// every input that wanders into one, which usually means the edge list has a
// typo.
func DeadEnds[S, Sym comparable](m *Machine[S, Sym]) []S {
	var dead []S
	Traverse(m, func(s S, _ []S) TraverseDecision {
		if len(m.table[s]) == 0 && !m.terminal.Has(s) {
			dead = append(dead, s)
		}
		return TraverseContinue
	})
	return dead
}
