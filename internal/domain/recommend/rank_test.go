package recommend

import (
	"errors"
	"reflect"
	"testing"

	"github.com/kailas-cloud/learnrec/internal/domain"
	"github.com/kailas-cloud/learnrec/internal/domain/course"
	"github.com/kailas-cloud/learnrec/internal/domain/recommend/similarity"
)

func mk(t *testing.T, f course.Fields) course.Course {
	t.Helper()
	c, err := course.New(f)
	if err != nil {
		t.Fatalf("course.New(%q): %v", f.ID, err)
	}
	return c
}

func ids(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Course.ID()
	}
	return out
}

func reactCourse(t *testing.T) course.Course {
	return mk(t, course.Fields{
		ID:          "react",
		Title:       "Complete React Developer Course",
		Description: "Build modern single page applications with React and hooks",
		Category:    "Web Development",
		Tags:        "React, JavaScript, Frontend",
		Level:       course.Beginner,
	})
}

func catalog(t *testing.T) []course.Course {
	return []course.Course{
		mk(t, course.Fields{
			ID:          "python",
			Title:       "Python for Data Science",
			Description: "Analyze datasets with pandas and numpy",
			Category:    "Data Science",
			Tags:        "Python, Pandas, NumPy",
			Level:       course.Beginner,
			Rating:      4.8,
		}),
		mk(t, course.Fields{
			ID:          "nextjs",
			Title:       "Next.js Full Stack Applications",
			Description: "Server rendering for React applications",
			Category:    "Web Development",
			Tags:        "React, Next.js, SSR",
			Level:       course.Intermediate,
			Rating:      4.6,
		}),
		mk(t, course.Fields{
			ID:          "vue",
			Title:       "Vue Frontend Fundamentals",
			Description: "Reactive user interfaces",
			Category:    "Web Development",
			Tags:        "Vue, JavaScript, Frontend",
			Level:       course.Beginner,
			Rating:      4.2,
		}),
		mk(t, course.Fields{
			ID:       "k8s",
			Title:    "Kubernetes in Production",
			Category: "DevOps",
			Tags:     "Kubernetes, Docker",
			Level:    course.Advanced,
			Rating:   4.9,
		}),
	}
}

func indexOf(entries []Entry, id string) int {
	for i, e := range entries {
		if e.Course.ID() == id {
			return i
		}
	}
	return -1
}

func TestForCourse_NextJSAbovePython(t *testing.T) {
	e := MustNewEngine()
	ref := reactCourse(t)

	got, err := e.ForCourse(ref, catalog(t), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	next, py := indexOf(got, "nextjs"), indexOf(got, "python")
	if next < 0 {
		t.Fatalf("expected nextjs in results, got %v", ids(got))
	}
	if py >= 0 && py <= next {
		t.Errorf("expected nextjs ranked above python, got %v", ids(got))
	}
	if py >= 0 && got[next].MatchScore <= got[py].MatchScore {
		t.Errorf("expected strictly higher score for nextjs: %d vs %d",
			got[next].MatchScore, got[py].MatchScore)
	}
	if k := indexOf(got, "k8s"); k >= 0 {
		t.Errorf("k8s shares no signal with the reference and must be filtered, got %v", ids(got))
	}
}

func TestForCourse_SelfExclusion(t *testing.T) {
	e := MustNewEngine()
	ref := reactCourse(t)
	pool := append([]course.Course{ref}, catalog(t)...)
	pool = append(pool, ref)

	got, err := e.ForCourse(ref, pool, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, en := range got {
		if en.Course.ID() == ref.ID() {
			t.Fatalf("reference course returned in its own recommendations: %v", ids(got))
		}
	}
}

func TestForCourse_ScoreBoundsAndOrdering(t *testing.T) {
	e := MustNewEngine()
	ref := reactCourse(t)
	twinFields := ref.Fields()
	twinFields.ID = "react-twin"
	twin := mk(t, twinFields)

	pool := append(catalog(t), twin)
	got, err := e.ForCourse(ref, pool, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("expected results")
	}
	for i, en := range got {
		if en.MatchScore < 0 || en.MatchScore > 100 {
			t.Errorf("entry %d score %d out of [0,100]", i, en.MatchScore)
		}
		if i > 0 && en.MatchScore > got[i-1].MatchScore {
			t.Errorf("not sorted at %d: %d > %d", i, en.MatchScore, got[i-1].MatchScore)
		}
		if en.Reason != ReasonSimilar {
			t.Errorf("entry %d reason = %q", i, en.Reason)
		}
		if en.Details == nil {
			t.Errorf("entry %d missing details", i)
		}
	}
	if got[0].Course.ID() != "react-twin" || got[0].MatchScore != 100 {
		t.Errorf("identical course should rank first with 100, got %s=%d", got[0].Course.ID(), got[0].MatchScore)
	}
	d := got[0].Details
	if d.TextSimilarity != 100 || d.TagsSimilarity != 100 || !d.CategoryMatch || !d.LevelMatch {
		t.Errorf("unexpected twin details: %+v", *d)
	}
}

func TestForCourse_StableTies(t *testing.T) {
	e := MustNewEngine()
	ref := reactCourse(t)
	a := mk(t, course.Fields{ID: "a", Title: "Frontend Testing", Category: "Web Development", Tags: "Jest"})
	b := mk(t, course.Fields{ID: "b", Title: "Frontend Testing", Category: "Web Development", Tags: "Jest"})

	got, err := e.ForCourse(ref, []course.Course{a, b}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(ids(got), []string{"a", "b"}) {
		t.Errorf("expected input order a,b on ties, got %v", ids(got))
	}

	got, err = e.ForCourse(ref, []course.Course{b, a}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(ids(got), []string{"b", "a"}) {
		t.Errorf("expected input order b,a on ties, got %v", ids(got))
	}
}

func TestForCourse_Deterministic(t *testing.T) {
	e := MustNewEngine()
	ref := reactCourse(t)
	pool := catalog(t)

	first, err := e.ForCourse(ref, pool, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 20; i++ {
		again, err := e.ForCourse(ref, pool, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs:\n%+v\n%+v", i, first, again)
		}
	}
}

func TestForCourse_DegenerateCandidate(t *testing.T) {
	e := MustNewEngine()
	ref := reactCourse(t)
	blank := mk(t, course.Fields{ID: "blank"})

	got, err := e.ForCourse(ref, []course.Course{blank}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Only the default Beginner level matches: 0.1 -> 10.
	if len(got) != 1 {
		t.Fatalf("expected the blank course via level match, got %v", ids(got))
	}
	d := got[0].Details
	if d.TextSimilarity != 0 || d.TagsSimilarity != 0 || d.CategoryMatch {
		t.Errorf("blank course must score zero text/tags/category, got %+v", *d)
	}
	if got[0].MatchScore != 10 {
		t.Errorf("expected score 10, got %d", got[0].MatchScore)
	}
}

func TestForCourse_UncategorizedPairMatchesOnCategory(t *testing.T) {
	e := MustNewEngine()
	ref := mk(t, course.Fields{ID: "r", Title: "Alpha Guide", Level: course.Advanced})
	cand := mk(t, course.Fields{ID: "c", Title: "Gamma Notes", Level: course.Beginner})

	got, err := e.ForCourse(ref, []course.Course{cand}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected the candidate to be kept on the category signal, got %v", ids(got))
	}
	d := got[0].Details
	if !d.CategoryMatch || d.LevelMatch || d.TextSimilarity != 0 || d.TagsSimilarity != 0 {
		t.Errorf("unexpected details: %+v", *d)
	}
	if got[0].MatchScore != 30 {
		t.Errorf("expected score 30, got %d", got[0].MatchScore)
	}
}

func TestForCourse_TopN(t *testing.T) {
	e := MustNewEngine()
	ref := reactCourse(t)

	var pool []course.Course
	for i := 0; i < 15; i++ {
		pool = append(pool, mk(t, course.Fields{
			ID:       string(rune('a' + i)),
			Title:    "React Patterns",
			Category: "Web Development",
		}))
	}

	tests := []struct {
		name string
		topN int
		want int
	}{
		{"explicit", 3, 3},
		{"zero uses default", 0, DefaultTopN},
		{"negative uses default", -1, DefaultTopN},
		{"larger than pool", 100, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.ForCourse(ref, pool, tt.topN)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("expected %d results, got %d", tt.want, len(got))
			}
		})
	}
}

func TestForCourse_EmptyPool(t *testing.T) {
	e := MustNewEngine()
	got, err := e.ForCourse(reactCourse(t), nil, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil result, got %v", got)
	}
}

func TestForCourse_MissingID(t *testing.T) {
	e := MustNewEngine()

	_, err := e.ForCourse(course.Course{}, catalog(t), 10)
	if !errors.Is(err, domain.ErrMissingCourseID) {
		t.Errorf("reference without id: expected ErrMissingCourseID, got %v", err)
	}

	pool := append(catalog(t), course.Course{})
	_, err = e.ForCourse(reactCourse(t), pool, 10)
	if !errors.Is(err, domain.ErrMissingCourseID) {
		t.Errorf("candidate without id: expected ErrMissingCourseID, got %v", err)
	}
}

func TestNewEngine_Options(t *testing.T) {
	if _, err := NewEngine(WithWeights(similarity.Weights{Text: 0.5, Category: 0.5, Tags: 0.5})); !errors.Is(err, domain.ErrInvalidWeights) {
		t.Errorf("expected ErrInvalidWeights, got %v", err)
	}

	e, err := NewEngine(WithDefaultTopN(3), WithFallbackScore(150))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.defaultTopN != 3 {
		t.Errorf("defaultTopN = %d, want 3", e.defaultTopN)
	}
	if e.fallbackScore != 100 {
		t.Errorf("fallback score should clamp to 100, got %d", e.fallbackScore)
	}
}

func TestRounding(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0.125, 13}, // 12.5 rounds half up
		{0.7449, 74},
		{0, 0},
		{1, 100},
		{1.0000001, 100},
	}
	for _, tt := range tests {
		if got := percent(tt.in); got != tt.want {
			t.Errorf("percent(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if got := roundTenth(33.333333); got != 33.3 {
		t.Errorf("roundTenth = %v, want 33.3", got)
	}
	if got := roundTenth(66.66666); got != 66.7 {
		t.Errorf("roundTenth = %v, want 66.7", got)
	}
}
