package automaton

import (
	"context"
	"errors"
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/cenkalti/backoff/v4"
)

var ErrNoMachine = errors.New("Runner has no Machine to drive")

// Runner replays a recorded input sequence against a Machine.
//
// Run is what Accepts is, made observable: the same whole-word check from the
// initial state, but abortable through a context, hookable through Notify,
// and paceable for demos and simulations. Zero-value fields get sensible
// defaults; a Runner with just the Machine set behaves exactly like Accepts.
//
//	r := automaton.Runner[string, rune]{Machine: m}
//	outcome, err := r.Run(ctx, []rune("aba"))
//
// Like the Machine itself, a Runner is single-threaded: one Run at a time.
type Runner[S, Sym comparable] struct {
	Machine *Machine[S, Sym]
	Clock   clock.Clock     // for pacing and unit tests, defaults to the wall clock
	Pace    backoff.BackOff // optional delay before each advance
	Notify  []Notify[S, Sym]

	outcome Outcome
}

// Outcome returns where the last (or ongoing) run stands: Pending before the
// first Run, Running from inside hooks, and a terminated outcome afterwards.
func (r *Runner[S, Sym]) Outcome() Outcome { return r.outcome }

// Run resets the machine to its initial state and advances it over input,
// one symbol at a time.
//
// Between symbols Run checks ctx and, when Pace is set, sleeps its
// NextBackOff on the runner's clock. Outcome/error pairs:
//
//	Accepted, nil        whole input consumed, terminal state reached
//	Rejected, nil        whole input consumed, final state not terminal
//	Rejected, err        some symbol had no transition (err unwraps to ErrNoTransition)
//	Canceled, err        ctx was done, or Pace gave up before the input ended
func (r *Runner[S, Sym]) Run(ctx context.Context, input []Sym) (Outcome, error) {
	if r.Machine == nil {
		return Pending, ErrNoMachine
	}
	if r.Clock == nil {
		r.Clock = clock.New()
	}
	r.Machine.Reset()
	r.outcome = Running
	for i, sym := range input {
		select {
		case <-ctx.Done():
			r.outcome = Canceled
			return Canceled, ctx.Err()
		default:
		}
		if r.Pace != nil {
			next := r.Pace.NextBackOff()
			if next == backoff.Stop {
				r.outcome = Canceled
				return Canceled, fmt.Errorf("Pace stopped the run at symbol %d of %d", i, len(input))
			}
			r.Clock.Sleep(next)
		}
		for _, n := range r.Notify {
			if n.BeforeAdvance != nil {
				ctx = n.BeforeAdvance(ctx, r.Machine, sym)
			}
		}
		err := r.Machine.Advance(sym)
		for _, n := range r.Notify {
			if n.AfterAdvance != nil {
				n.AfterAdvance(ctx, r.Machine, sym, err)
			}
		}
		if err != nil {
			r.outcome = Rejected
			return Rejected, err
		}
	}
	if r.Machine.IsTerminal() {
		r.outcome = Accepted
		return Accepted, nil
	}
	r.outcome = Rejected
	return Rejected, nil
}
