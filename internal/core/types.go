package core

import (
	"io"
	"sort"
)

// Automaton is a generation-stepped cellular automaton. Collect is the read
// phase: it computes the changeset from the current snapshot without
// modifying it. Apply is the write phase.
type Automaton[C any] interface {
	Name() string
	Collect() []C
	Apply(changes []C)
	Count() int
}

// Failer is implemented by automata whose read phase can hit an
// unrecoverable condition. Err is checked after every Collect.
type Failer interface {
	Err() error
}

// Sim is a fully ingested automaton ready to run to completion.
type Sim interface {
	Name() string
	Count() int
	Run(opts ...Option) (Result, error)
	Parameters() ParameterSnapshot
}

// Factory constructs a Sim from an optional configuration map and the raw
// initial state.
type Factory func(cfg map[string]string, input io.Reader) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names returns the registered simulation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
