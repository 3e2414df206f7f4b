package automaton

import "context"

// Notify will be called before and after each Advance a Runner performs.
//
// BeforeAdvance sees the machine with its cursor still on the source state
// and may replace the context handed to later hooks. AfterAdvance sees the
// cursor on the destination state, or still on the source state together
// with the non-nil error when the advance was refused.
type Notify[S, Sym comparable] struct {
	BeforeAdvance func(ctx context.Context, m *Machine[S, Sym], sym Sym) context.Context
	AfterAdvance  func(ctx context.Context, m *Machine[S, Sym], sym Sym, err error)
}
