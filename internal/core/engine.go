package core

import (
	"fmt"
	"log/slog"
	"time"

	"settle/internal/logging"
)

// Termination decides whether an engine runs another generation.
type Termination interface {
	// Continue is called before every generation with the number of
	// generations already run and whether the last one changed anything.
	Continue(generation int, changed bool) bool
	String() string
}

type untilConverged struct{}

func (untilConverged) Continue(_ int, changed bool) bool { return changed }
func (untilConverged) String() string                    { return "until converged" }

// UntilConverged stops at the first generation that changes nothing.
func UntilConverged() Termination { return untilConverged{} }

type fixedGenerations int

func (n fixedGenerations) Continue(generation int, _ bool) bool { return generation < int(n) }
func (n fixedGenerations) String() string                       { return fmt.Sprintf("%d generations", int(n)) }

// FixedGenerations runs exactly n generations regardless of stability.
func FixedGenerations(n int) Termination {
	if n < 0 {
		n = 0
	}
	return fixedGenerations(n)
}

// Observer receives a report after every generation.
type Observer interface {
	ObserveGeneration(automaton string, generation, changes int, elapsed time.Duration)
}

// Result summarizes a finished run.
type Result struct {
	Generations int
	Count       int
	// Converged reports whether some generation produced an empty changeset.
	Converged bool
}

// Option customizes an Engine.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	observer Observer
}

// WithLogger sets the logger used for per-generation debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver registers an observer notified after every generation.
func WithObserver(obs Observer) Option {
	return func(o *options) { o.observer = obs }
}

// Engine drives an Automaton through alternating read and write phases.
// Every changeset is computed in full from the current snapshot before any
// entry of it is applied.
type Engine[C any] struct {
	automaton  Automaton[C]
	term       Termination
	opts       options
	generation int
	converged  bool
	err        error
}

// NewEngine wraps the automaton with the given termination policy.
func NewEngine[C any](a Automaton[C], term Termination, opts ...Option) *Engine[C] {
	o := options{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if term == nil {
		term = UntilConverged()
	}
	return &Engine[C]{automaton: a, term: term, opts: o}
}

// Generation returns the number of generations evolved so far.
func (e *Engine[C]) Generation() int { return e.generation }

// Err returns the error that stopped the engine, if any.
func (e *Engine[C]) Err() error { return e.err }

// Evolve runs one generation and reports whether the state changed. An
// empty changeset leaves the automaton untouched.
func (e *Engine[C]) Evolve() bool {
	if e.err != nil {
		return false
	}
	start := time.Now()
	changes := e.automaton.Collect()
	if f, ok := e.automaton.(Failer); ok {
		if err := f.Err(); err != nil {
			e.err = fmt.Errorf("%s generation %d: %w", e.automaton.Name(), e.generation+1, err)
			return false
		}
	}
	e.generation++
	if len(changes) == 0 {
		e.converged = true
	} else {
		e.automaton.Apply(changes)
	}
	elapsed := time.Since(start)

	e.opts.logger.Debug("generation",
		"automaton", e.automaton.Name(),
		"generation", e.generation,
		"changes", len(changes),
		"elapsed", elapsed)
	if e.opts.observer != nil {
		e.opts.observer.ObserveGeneration(e.automaton.Name(), e.generation, len(changes), elapsed)
	}
	return len(changes) > 0
}

// Run evolves until the termination policy stops it.
func (e *Engine[C]) Run() (Result, error) {
	changed := true
	for e.term.Continue(e.generation, changed) {
		changed = e.Evolve()
		if e.err != nil {
			return e.result(), e.err
		}
	}
	res := e.result()
	e.opts.logger.Info("run finished",
		"automaton", e.automaton.Name(),
		"termination", e.term.String(),
		"generations", res.Generations,
		"count", res.Count,
		"converged", res.Converged)
	return res, nil
}

func (e *Engine[C]) result() Result {
	return Result{Generations: e.generation, Count: e.automaton.Count(), Converged: e.converged}
}
