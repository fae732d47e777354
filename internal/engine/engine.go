package engine

import (
	"log/slog"

	"github.com/samber/lo"

	"github.com/roach88/santa/internal/core"
)

// DefaultMaxAttempts bounds the restart loop in Generate.
const DefaultMaxAttempts = 100

// Engine draws Secret Santa assignments.
//
// The zero value is not usable; construct with New. An Engine is not safe
// for concurrent use when its Source is not.
type Engine struct {
	source      Source
	ids         IDGenerator
	maxAttempts int
	logger      *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource sets the random source used to pick receivers.
func WithSource(src Source) Option {
	return func(e *Engine) {
		e.source = src
	}
}

// WithSeed is shorthand for WithSource(NewSeededSource(seed)).
func WithSeed(seed uint64) Option {
	return WithSource(NewSeededSource(seed))
}

// WithMaxAttempts overrides DefaultMaxAttempts. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxAttempts = n
		}
	}
}

// WithIDGenerator sets the generator for AssignmentSet IDs.
func WithIDGenerator(g IDGenerator) Option {
	return func(e *Engine) {
		e.ids = g
	}
}

// WithLogger sets the logger. Attempt-level detail is logged at debug.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an Engine with a runtime-seeded source and UUIDv7 set IDs
// unless options say otherwise.
func New(opts ...Option) *Engine {
	e := &Engine{
		source:      globalSource{},
		ids:         UUIDv7Generator{},
		maxAttempts: DefaultMaxAttempts,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MaxAttempts reports the configured attempt bound.
func (e *Engine) MaxAttempts() int {
	return e.maxAttempts
}

// Generate draws a derangement of roster.
//
// Givers are visited in roster order. Each giver receives a uniformly chosen
// participant from those not yet received, excluding itself. If a giver is
// left with no candidate the attempt is abandoned and a new one starts from
// the full roster. The distribution over derangements is not uniform.
//
// Returns an InsufficientParticipants error for fewer than two participants
// and a GenerationFailed error when every attempt dead-ends. A partial
// attempt is never returned.
func (e *Engine) Generate(roster []core.Participant) (*core.AssignmentSet, error) {
	n := len(roster)
	if n < 2 {
		return nil, core.NewInsufficientParticipantsError(n)
	}

	e.logger.Debug("generating assignments", "participants", n, "max_attempts", e.maxAttempts)

	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		assigned, ok := e.attempt(roster)
		if !ok {
			e.logger.Debug("attempt dead-ended", "attempt", attempt)
			continue
		}

		set := &core.AssignmentSet{
			ID:          e.ids.Generate(),
			Attempts:    attempt,
			Assignments: assigned,
		}
		e.logger.Info("assignments generated", "set_id", set.ID, "participants", n, "attempts", attempt)
		return set, nil
	}

	e.logger.Warn("assignment generation failed", "participants", n, "attempts", e.maxAttempts)
	return nil, core.NewGenerationFailedError(e.maxAttempts)
}

// attempt runs one greedy pass. available keeps roster order so a given
// sequence of picks always yields the same result.
func (e *Engine) attempt(roster []core.Participant) ([]core.Assignment, bool) {
	available := lo.Range(len(roster))
	assigned := make([]core.Assignment, 0, len(roster))

	for giver := range roster {
		candidates := lo.Filter(available, func(p int, _ int) bool {
			return p != giver
		})
		if len(candidates) == 0 {
			return nil, false
		}

		receiver := candidates[e.source.IntN(len(candidates))]
		assigned = append(assigned, core.Assignment{
			Giver:         roster[giver],
			Receiver:      roster[receiver],
			GiverIndex:    giver,
			ReceiverIndex: receiver,
		})
		available = lo.Without(available, receiver)
	}

	return assigned, true
}
