package automaton

import (
	"errors"
	"fmt"
)

var (
	// ErrNondeterministic is the construction-time failure: two edges leave
	// the same state on the same symbol toward different states, so the
	// structure would not be a DFA. Every ConflictError unwraps to it.
	ErrNondeterministic = errors.New("nondeterministic transition")

	// ErrNoTransition is the advance-time failure: the current state has no
	// out-edge on the symbol. Every TransitionError unwraps to it.
	ErrNoTransition = errors.New("no transition")
)

// ConflictError pinpoints one determinism conflict found by New: the edge
// From -[On]-> To clashed with the earlier-declared From -[On]-> Existing.
// New joins every conflict it finds into the single error it returns.
type ConflictError[S, Sym comparable] struct {
	From     S
	On       Sym
	To       S
	Existing S
}

func (e *ConflictError[S, Sym]) Error() string {
	return fmt.Sprintf("%v: %v -[%s]-> %v, but %v -[%s]-> %v was declared first",
		ErrNondeterministic, e.From, symText(e.On), e.To, e.From, symText(e.On), e.Existing)
}
func (e *ConflictError[S, Sym]) Unwrap() error { return ErrNondeterministic }

// TransitionError reports the Advance that was refused: State had no
// out-edge on On. The machine's cursor is untouched by a refused Advance.
type TransitionError[S, Sym comparable] struct {
	State S
	On    Sym
}

func (e *TransitionError[S, Sym]) Error() string {
	return fmt.Sprintf("%v: %v has no out-edge on %s", ErrNoTransition, e.State, symText(e.On))
}
func (e *TransitionError[S, Sym]) Unwrap() error { return ErrNoTransition }

// symText renders a symbol for error messages. rune is an alias for int32,
// so rune symbols print as the character they encode instead of its code
// point, which is what anyone debugging a character automaton wants to see.
func symText(v any) string {
	if r, ok := v.(rune); ok {
		return string(r)
	}
	return fmt.Sprint(v)
}
