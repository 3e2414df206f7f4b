package automaton

import (
	"fmt"
	"log/slog"
)

func (m *Machine[S, Sym]) String() string {
	if m == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Machine(%d states, %d edges, at %v)", len(m.states), len(m.edges), m.current)
}

// LogValue is used with log/slog, you can use it like:
//
//	logger.Info("advancing", "machine", automaton.LogValue(m))
//
// The value resolves when the record is emitted, so the attribute always
// shows the machine's state at log time.
func LogValue[S, Sym comparable](m *Machine[S, Sym]) logValue[S, Sym] {
	return logValue[S, Sym]{Machine: m}
}

type logValue[S, Sym comparable] struct{ *Machine[S, Sym] }

func (lv logValue[S, Sym]) LogValue() slog.Value {
	if lv.Machine == nil {
		return slog.StringValue("<nil>")
	}
	return slog.GroupValue(
		slog.Any("current", lv.Current()),
		slog.Bool("terminal", lv.IsTerminal()),
		slog.Bool("stuck", lv.IsStuck()),
	)
}
