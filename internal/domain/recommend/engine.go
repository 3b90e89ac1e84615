// Package recommend ranks catalog courses by content similarity to a reference
// course or to the set of courses a learner is enrolled in.
//
// The pipeline per reference course is:
//
//	feature.Extract -> tfidf corpus (reference + candidates) -> similarity.Score -> rank
//
// An Engine carries only immutable settings. Each call builds its own corpus and
// discards it on return, so one Engine may serve concurrent callers.
package recommend

import (
	"fmt"

	"github.com/kailas-cloud/learnrec/internal/domain"
	"github.com/kailas-cloud/learnrec/internal/domain/recommend/similarity"
)

const (
	// DefaultTopN is used when a caller asks for zero or fewer results.
	DefaultTopN = 10
	// DefaultFallbackScore is the placeholder score of popularity entries.
	DefaultFallbackScore = 50
	// overFetch multiplies topN for the per-course runs of ForLearner.
	overFetch = 2
)

// Engine is a stateless content-based recommender.
type Engine struct {
	weights       similarity.Weights
	defaultTopN   int
	fallbackScore int
}

// Option configures an Engine.
type Option func(*Engine)

// WithWeights overrides the signal weights.
func WithWeights(w similarity.Weights) Option {
	return func(e *Engine) { e.weights = w }
}

// WithDefaultTopN overrides the result count used when topN <= 0.
func WithDefaultTopN(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.defaultTopN = n
		}
	}
}

// WithFallbackScore overrides the placeholder score of popularity entries.
func WithFallbackScore(score int) Option {
	return func(e *Engine) { e.fallbackScore = clampPercent(score) }
}

// NewEngine creates an Engine. Weights are validated here so that scoring never
// has to.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		weights:       similarity.DefaultWeights(),
		defaultTopN:   DefaultTopN,
		fallbackScore: DefaultFallbackScore,
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.weights.Validate(); err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}
	return e, nil
}

// MustNewEngine is NewEngine that panics on invalid options.
func MustNewEngine(opts ...Option) *Engine {
	e, err := NewEngine(opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// Weights returns the signal weights in use.
func (e *Engine) Weights() similarity.Weights { return e.weights }

func (e *Engine) topN(n int) int {
	if n <= 0 {
		return e.defaultTopN
	}
	return n
}

func errMissingID(role string, idx int) error {
	if idx < 0 {
		return fmt.Errorf("%s: %w", role, domain.ErrMissingCourseID)
	}
	return fmt.Errorf("%s %d: %w", role, idx, domain.ErrMissingCourseID)
}
