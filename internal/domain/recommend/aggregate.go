package recommend

import (
	"sort"

	"github.com/kailas-cloud/learnrec/internal/domain/course"
)

// accumulator sums the per-course scores of one candidate during ForLearner.
type accumulator struct {
	entry Entry // first entry seen for the candidate
	total int
	count int
}

// ForLearner recommends from pool for a learner enrolled in enrolled.
//
// With no enrolled courses it falls back to the topN highest-rated pool courses,
// each carrying the placeholder fallback score and ReasonPopular.
//
// Otherwise every enrolled course is ranked against the full pool (over-fetching
// 2*topN), and each candidate's MatchScore becomes the mean over the enrolled
// courses that actually recommended it. A candidate matched by a single enrolled
// course is averaged over 1, not over len(enrolled).
func (e *Engine) ForLearner(enrolled, pool []course.Course, topN int) ([]Entry, error) {
	topN = e.topN(topN)
	if len(enrolled) == 0 {
		return e.popular(pool, topN)
	}

	groups := make(map[string]*accumulator)
	var order []string
	for i := range enrolled {
		if enrolled[i].ID() == "" {
			return nil, errMissingID("enrolled course", i)
		}
		entries, err := e.ForCourse(enrolled[i], pool, overFetch*topN)
		if err != nil {
			return nil, err
		}
		for _, en := range entries {
			id := en.Course.ID()
			acc, ok := groups[id]
			if !ok {
				acc = &accumulator{entry: en}
				groups[id] = acc
				order = append(order, id)
			}
			acc.total += en.MatchScore
			acc.count++
		}
	}

	out := make([]Entry, 0, len(order))
	for _, id := range order {
		acc := groups[id]
		en := acc.entry
		en.MatchScore = clampPercent(roundHalfUp(float64(acc.total) / float64(acc.count)))
		out = append(out, en)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out, nil
}

// popular orders pool by rating, highest first, keeping pool order on ties.
func (e *Engine) popular(pool []course.Course, topN int) ([]Entry, error) {
	for i := range pool {
		if pool[i].ID() == "" {
			return nil, errMissingID("candidate", i)
		}
	}
	ranked := make([]course.Course, len(pool))
	copy(ranked, pool)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rating() > ranked[j].Rating()
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	out := make([]Entry, len(ranked))
	for i, c := range ranked {
		out[i] = Entry{
			Course:     c,
			MatchScore: e.fallbackScore,
			Reason:     ReasonPopular,
		}
	}
	return out, nil
}
