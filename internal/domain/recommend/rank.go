package recommend

import (
	"sort"

	"github.com/kailas-cloud/learnrec/internal/domain/course"
	"github.com/kailas-cloud/learnrec/internal/domain/recommend/feature"
	"github.com/kailas-cloud/learnrec/internal/domain/recommend/similarity"
	"github.com/kailas-cloud/learnrec/internal/domain/recommend/tfidf"
)

// scored is a candidate with its raw combined score, before percent conversion.
type scored struct {
	course    course.Course
	breakdown similarity.Breakdown
}

// ForCourse ranks candidates by similarity to reference and returns at most topN
// entries. The reference itself is never returned, nor is any candidate with a
// combined score of zero. Ties keep candidate order.
func (e *Engine) ForCourse(reference course.Course, candidates []course.Course, topN int) ([]Entry, error) {
	ranked, err := e.rank(reference, candidates, e.topN(topN))
	if err != nil {
		return nil, err
	}
	out := make([]Entry, len(ranked))
	for i, s := range ranked {
		out[i] = Entry{
			Course:     s.course,
			MatchScore: percent(s.breakdown.Score),
			Details:    detailsFrom(s.breakdown),
			Reason:     ReasonSimilar,
		}
	}
	return out, nil
}

func (e *Engine) rank(reference course.Course, candidates []course.Course, topN int) ([]scored, error) {
	if reference.ID() == "" {
		return nil, errMissingID("reference course", -1)
	}
	for i := range candidates {
		if candidates[i].ID() == "" {
			return nil, errMissingID("candidate", i)
		}
	}
	if len(candidates) == 0 {
		return []scored{}, nil
	}

	refFeatures := feature.Extract(reference)
	features := make([]feature.Set, len(candidates))
	docs := make([]string, 0, len(candidates)+1)
	docs = append(docs, refFeatures.Combined)
	for i := range candidates {
		features[i] = feature.Extract(candidates[i])
		docs = append(docs, features[i].Combined)
	}

	// Fresh corpus per call: document 0 is the reference, i+1 is candidate i.
	corpus := tfidf.NewCorpus(docs)
	refVec := corpus.Vector(0)

	results := make([]scored, 0, len(candidates))
	for i := range candidates {
		if candidates[i].ID() == reference.ID() {
			continue
		}
		b := similarity.Score(refFeatures, features[i], refVec, corpus.Vector(i+1), e.weights)
		if b.Score <= 0 {
			continue
		}
		results = append(results, scored{course: candidates[i], breakdown: b})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].breakdown.Score > results[j].breakdown.Score
	})
	if len(results) > topN {
		results = results[:topN]
	}
	return results, nil
}
