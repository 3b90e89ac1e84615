// Package similarity computes the per-pair signals that feed course ranking.
package similarity

import (
	"fmt"
	"math"

	"github.com/kailas-cloud/learnrec/internal/domain"
	"github.com/kailas-cloud/learnrec/internal/domain/recommend/feature"
	"github.com/kailas-cloud/learnrec/internal/domain/recommend/tfidf"
)

// weightTolerance bounds floating-point drift when checking that weights sum to 1.
const weightTolerance = 1e-6

// Weights are the fixed coefficients of the combined score.
type Weights struct {
	Text     float64
	Category float64
	Tags     float64
	Level    float64
}

// DefaultWeights returns 0.4 text, 0.3 category, 0.2 tags, 0.1 level.
func DefaultWeights() Weights {
	return Weights{Text: 0.4, Category: 0.3, Tags: 0.2, Level: 0.1}
}

// Validate checks that every weight is non-negative and that they sum to 1.
func (w Weights) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"text", w.Text}, {"category", w.Category}, {"tags", w.Tags}, {"level", w.Level},
	} {
		if f.v < 0 || math.IsNaN(f.v) {
			return fmt.Errorf("%w: %s weight %v is negative", domain.ErrInvalidWeights, f.name, f.v)
		}
	}
	if sum := w.Text + w.Category + w.Tags + w.Level; math.Abs(sum-1) > weightTolerance {
		return fmt.Errorf("%w: weights sum to %v, want 1", domain.ErrInvalidWeights, sum)
	}
	return nil
}

// Breakdown holds the four signals of one (reference, candidate) pair, each in [0, 1],
// and their weighted combination.
type Breakdown struct {
	Text     float64
	Category float64
	Tags     float64
	Level    float64
	Score    float64
}

// Score compares a candidate against the reference course. Categories match when
// their lowercased forms are equal, so two uncategorized courses match.
func Score(ref, cand feature.Set, refVec, candVec tfidf.Vector, w Weights) Breakdown {
	b := Breakdown{
		Text:     Cosine(refVec, candVec),
		Category: indicator(ref.Category == cand.Category),
		Tags:     Jaccard(ref.Tags, cand.Tags),
		Level:    indicator(ref.Level == cand.Level),
	}
	b.Score = w.Text*b.Text + w.Category*b.Category + w.Tags*b.Tags + w.Level*b.Level
	return b
}

// Cosine returns the cosine of the angle between a and b, or 0 when either is a
// zero vector.
func Cosine(a, b tfidf.Vector) float64 {
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for _, term := range a.Terms() {
		if wb, ok := b[term]; ok {
			dot += a[term] * wb
		}
	}
	// Rounding can push identical vectors a hair above 1.
	return math.Min(dot/(na*nb), 1)
}

// Jaccard returns |a ∩ b| / |a ∪ b|, or 0 when both sets are empty.
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	if len(b) < len(a) {
		a, b = b, a
	}
	inter := 0
	for k := range a {
		if _, ok := b[k]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

func indicator(ok bool) float64 {
	if ok {
		return 1
	}
	return 0
}
