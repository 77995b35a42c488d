package constraint

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ricbit/constraint/pkg/constraintlog"
)

// Config holds the Solver's configuration, applied via Option functions.
// This mirrors gnark's constraint/solver.Option/Config pattern: a
// functional-options struct with a documented default.
type Config struct {
	// Logger receives debug-level tracing of bound changes, branch
	// attempts, and external-predicate verdicts. Defaults to the shared
	// constraintlog logger.
	Logger zerolog.Logger
	// MaxRecursion caps the number of search nodes Solve will visit
	// before giving up with ErrSearchLimitReached. Zero means
	// unbounded. This guards against pathological or malformed puzzle
	// inputs recursing without bound; it has no analogue in the
	// original C++, which trusted its hand-built puzzle instances.
	MaxRecursion int
}

// DefaultConfig returns the Solver configuration used when no Option is
// supplied: the shared constraintlog logger, unbounded recursion.
func DefaultConfig() Config {
	return Config{Logger: constraintlog.Logger()}
}

// Option configures a Solver at construction time.
type Option func(*Config)

// WithLogger overrides the logger used for debug tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithMaxRecursion bounds the number of search nodes Solve will visit.
func WithMaxRecursion(n int) Option {
	return func(c *Config) { c.MaxRecursion = n }
}

// Solver is the facade described in spec §4.1: it owns a frozen Model,
// runs propagation then search on Solve, and exposes Value once solved.
type Solver struct {
	model  *Model
	config Config
	store  *boundsStore
	driver searchDriver
	solved bool

	counters counters
}

// NewSolver freezes model and prepares a Solver. The model must not be
// mutated after this call (AddVariable, NewVariable, etc. will all
// return ErrModelFrozen).
func NewSolver(model *Model, opts ...Option) *Solver {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	model.freeze()
	log := logSink{log: cfg.Logger}
	return &Solver{
		model:  model,
		config: cfg,
		store:  newBoundsStore(model.variables),
		driver: searchDriver{
			model:        model,
			prop:         propagator{model: model, log: log},
			maxRecursion: cfg.MaxRecursion,
		},
	}
}

// Solve runs the initial propagation pass seeded with every constraint,
// then enters the search driver. It prints the five diagnostic lines of
// spec §6 to stdout, in order, regardless of outcome. ctx is checked
// cooperatively between search nodes; a cancelled or expired ctx
// surfaces as ctx.Err() returned as the error, distinct from
// Unsatisfiable.
func (s *Solver) Solve(ctx context.Context) (Outcome, error) {
	fmt.Printf("Variables: %d\n", len(s.model.variables))
	fmt.Printf("Constraints: %d\n", len(s.model.constraints))

	w := newWorklist(len(s.model.constraints))
	for i := range s.model.constraints {
		w.push(ConsID(i))
	}
	if err := s.driver.prop.propagate(s.store, w, &s.counters.constraintsChecked); err != nil {
		if _, ok := err.(infeasible); ok {
			fmt.Printf("Free variables: %d\n", s.countFree())
			fmt.Printf("Recursion nodes: %d\n", 0)
			fmt.Printf("Constraints checked: %d\n", s.counters.constraintsChecked)
			return Unsatisfiable, nil
		}
		return Unsatisfiable, err
	}

	fmt.Printf("Free variables: %d\n", s.countFree())

	found, err := s.driver.run(ctx, s.store, &s.counters)
	fmt.Printf("Recursion nodes: %d\n", s.counters.recursionNodes)
	fmt.Printf("Constraints checked: %d\n", s.counters.constraintsChecked)
	if err != nil {
		return Unsatisfiable, err
	}
	if found {
		s.solved = true
		return Solved, nil
	}
	return Unsatisfiable, nil
}

func (s *Solver) countFree() int {
	free := 0
	for i := range s.model.variables {
		if !s.store.fixed(VarID(i)) {
			free++
		}
	}
	return free
}

// Value returns the snapshot value of v. Only legal after Solve has
// returned Solved.
func (s *Solver) Value(v VarID) (int32, error) {
	if !s.solved {
		return 0, ErrNotSolved
	}
	if int(v) < 0 || int(v) >= len(s.model.variables) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownVariable, v)
	}
	return s.store.snapshotValue(v), nil
}
