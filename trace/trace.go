// Package trace records the advances a machine makes as structured events.
//
// A Recorder turns the advance hooks of an automaton into a timestamped
// event stream, one walk at a time. Wire it to a machine through Notify:
//
//	rec := &trace.Recorder[string, rune]{Log: slog.Default()}
//	runner := &automaton.Runner[string, rune]{
//		Machine: m,
//		Notify:  []automaton.Notify[string, rune]{rec.Notify()},
//	}
//
// Every walk gets its own ID, every event within it a sequence number, so
// interleaved logs from different walks stay attributable. Refused advances
// are recorded too, with Err set and the cursor shown holding its state.
package trace

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	automaton "github.com/Azure/go-automaton"
)

// Event is one observed advance, successful or refused.
type Event[S, Sym comparable] struct {
	Walk     uuid.UUID // walk this event belongs to
	Seq      int       // position within the walk, starting at 0
	From     S
	On       Sym
	To       S    // equals From when the advance was refused
	Terminal bool // whether the machine ended up on a terminal state
	Err      error
	At       time.Time
}

// Sink receives events as they are recorded.
type Sink[S, Sym comparable] interface {
	Record(Event[S, Sym])
}

// Recorder collects events from a machine's advance hooks.
//
// Clock defaults to the wall clock, Log to silence. A Recorder observes one
// machine walk at a time; give concurrent walks their own Recorders.
type Recorder[S, Sym comparable] struct {
	Clock clock.Clock
	Log   *slog.Logger
	Sinks []Sink[S, Sym]

	mu     sync.Mutex
	walk   uuid.UUID
	seq    int
	from   S
	events []Event[S, Sym]
}

// Start begins a new walk and returns its ID. Calling Start between runs
// keeps each run's events under a distinct walk ID; the first recorded
// event starts a walk implicitly if none is open.
func (r *Recorder[S, Sym]) Start() uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.walk = uuid.New()
	r.seq = 0
	return r.walk
}

// Events returns a copy of everything recorded so far, across walks.
func (r *Recorder[S, Sym]) Events() []Event[S, Sym] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event[S, Sym](nil), r.events...)
}

// Notify returns the hook pair that feeds this Recorder. Register it with
// the machine's driver; the Before hook captures the source state, the
// After hook emits the event.
func (r *Recorder[S, Sym]) Notify() automaton.Notify[S, Sym] {
	return automaton.Notify[S, Sym]{
		BeforeAdvance: func(ctx context.Context, m *automaton.Machine[S, Sym], sym Sym) context.Context {
			r.mu.Lock()
			r.from = m.Current()
			r.mu.Unlock()
			return ctx
		},
		AfterAdvance: func(ctx context.Context, m *automaton.Machine[S, Sym], sym Sym, err error) {
			r.record(ctx, m, sym, err)
		},
	}
}

func (r *Recorder[S, Sym]) record(ctx context.Context, m *automaton.Machine[S, Sym], sym Sym, err error) {
	r.mu.Lock()
	if r.Clock == nil {
		r.Clock = clock.New()
	}
	if r.walk == uuid.Nil {
		r.walk = uuid.New()
		r.seq = 0
	}
	e := Event[S, Sym]{
		Walk:     r.walk,
		Seq:      r.seq,
		From:     r.from,
		On:       sym,
		To:       m.Current(),
		Terminal: m.IsTerminal(),
		Err:      err,
		At:       r.Clock.Now(),
	}
	r.seq++
	r.events = append(r.events, e)
	sinks := r.Sinks
	log := r.Log
	r.mu.Unlock()

	for _, s := range sinks {
		s.Record(e)
	}
	if log == nil {
		return
	}
	attrs := []any{
		"walk", e.Walk,
		"seq", e.Seq,
		"from", e.From,
		"on", e.On,
		"to", e.To,
		"terminal", e.Terminal,
	}
	if err != nil {
		log.WarnContext(ctx, "advance refused", append(attrs, "error", err)...)
		return
	}
	log.InfoContext(ctx, "advance", attrs...)
}
