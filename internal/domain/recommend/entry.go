package recommend

import (
	"math"

	"github.com/kailas-cloud/learnrec/internal/domain/course"
	"github.com/kailas-cloud/learnrec/internal/domain/recommend/similarity"
)

// Reason tells the caller how an entry was produced.
type Reason string

const (
	// ReasonSimilar marks entries scored by content similarity.
	ReasonSimilar Reason = "similar_content"
	// ReasonPopular marks popularity fallback entries.
	ReasonPopular Reason = "popular"
)

// Details is the percent view of a similarity breakdown.
type Details struct {
	TextSimilarity float64 // 0-100, one decimal
	CategoryMatch  bool
	TagsSimilarity float64 // 0-100, one decimal
	LevelMatch     bool
}

// Entry is one recommended course.
type Entry struct {
	Course     course.Course
	MatchScore int // 0-100
	Details    *Details
	Reason     Reason
}

func detailsFrom(b similarity.Breakdown) *Details {
	return &Details{
		TextSimilarity: roundTenth(b.Text * 100),
		CategoryMatch:  b.Category == 1,
		TagsSimilarity: roundTenth(b.Tags * 100),
		LevelMatch:     b.Level == 1,
	}
}

// percent converts a [0,1] score to an integer percentage, rounding half up.
func percent(score float64) int {
	return clampPercent(roundHalfUp(score * 100))
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func roundTenth(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}

func clampPercent(p int) int {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}
