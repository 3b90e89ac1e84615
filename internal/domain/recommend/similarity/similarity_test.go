package similarity

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/kailas-cloud/learnrec/internal/domain"
	"github.com/kailas-cloud/learnrec/internal/domain/course"
	"github.com/kailas-cloud/learnrec/internal/domain/recommend/feature"
	"github.com/kailas-cloud/learnrec/internal/domain/recommend/tfidf"
)

func set(items ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(items))
	for _, it := range items {
		m[it] = struct{}{}
	}
	return m
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b tfidf.Vector
		want float64
	}{
		{"identical", tfidf.Vector{"go": 1, "rust": 2}, tfidf.Vector{"go": 1, "rust": 2}, 1},
		{"orthogonal", tfidf.Vector{"go": 1}, tfidf.Vector{"rust": 1}, 0},
		{"scaled", tfidf.Vector{"go": 1, "rust": 1}, tfidf.Vector{"go": 3, "rust": 3}, 1},
		{"partial", tfidf.Vector{"go": 1, "rust": 0}, tfidf.Vector{"go": 1, "rust": 1}, 1 / math.Sqrt2},
		{"left zero", tfidf.Vector{}, tfidf.Vector{"go": 1}, 0},
		{"right nil", tfidf.Vector{"go": 1}, nil, 0},
		{"both empty", nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cosine(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Cosine = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("Cosine out of [0,1]: %v", got)
			}
		})
	}
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		name string
		a, b map[string]struct{}
		want float64
	}{
		{"identical", set("react", "js"), set("js", "react"), 1},
		{"disjoint", set("react"), set("python"), 0},
		{"half", set("react", "js"), set("react", "css"), 1.0 / 3.0},
		{"both empty", set(), set(), 0},
		{"one empty", set("go"), set(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Jaccard(tt.a, tt.b); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Jaccard = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScore_Signals(t *testing.T) {
	ref := feature.Set{Category: "web development", Tags: set("react", "js"), Level: course.Beginner}
	cand := feature.Set{Category: "web development", Tags: set("react", "next"), Level: course.Advanced}
	vec := tfidf.Vector{"react": 1}

	b := Score(ref, cand, vec, vec, DefaultWeights())
	if b.Text != 1 {
		t.Errorf("text = %v, want 1", b.Text)
	}
	if b.Category != 1 {
		t.Errorf("category = %v, want 1", b.Category)
	}
	if math.Abs(b.Tags-1.0/3.0) > 1e-12 {
		t.Errorf("tags = %v, want 1/3", b.Tags)
	}
	if b.Level != 0 {
		t.Errorf("level = %v, want 0", b.Level)
	}
	want := 0.4*1 + 0.3*1 + 0.2*(1.0/3.0) + 0.1*0
	if math.Abs(b.Score-want) > 1e-12 {
		t.Errorf("score = %v, want %v", b.Score, want)
	}
}

func TestScore_EmptyCategoriesMatch(t *testing.T) {
	ref := feature.Set{Level: course.Beginner}
	cand := feature.Set{Level: course.Beginner}

	b := Score(ref, cand, nil, nil, DefaultWeights())
	if b.Category != 1 {
		t.Errorf("two empty categories are equal and should match, got %v", b.Category)
	}
	if b.Text != 0 || b.Tags != 0 {
		t.Errorf("degenerate text/tags must score 0, got text=%v tags=%v", b.Text, b.Tags)
	}
	if b.Level != 1 {
		t.Errorf("default levels should match, got %v", b.Level)
	}
	if math.Abs(b.Score-0.4) > 1e-12 {
		t.Errorf("score = %v, want 0.4", b.Score)
	}
}

func TestScore_EmptyVersusSetCategory(t *testing.T) {
	b := Score(feature.Set{}, feature.Set{Category: "devops"}, nil, nil, DefaultWeights())
	if b.Category != 0 {
		t.Errorf("empty vs non-empty category must not match, got %v", b.Category)
	}
}

func TestWeights_Validate(t *testing.T) {
	if err := DefaultWeights().Validate(); err != nil {
		t.Fatalf("default weights invalid: %v", err)
	}
	tests := []struct {
		name string
		w    Weights
	}{
		{"negative", Weights{Text: 1.2, Category: -0.2}},
		{"short sum", Weights{Text: 0.4, Category: 0.3}},
		{"nan", Weights{Text: math.NaN(), Category: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.w.Validate(); !errors.Is(err, domain.ErrInvalidWeights) {
				t.Errorf("expected ErrInvalidWeights, got %v", err)
			}
		})
	}
}

func TestWeights_Validate_ReportsFirstInvalidInOrder(t *testing.T) {
	w := Weights{Text: 0.5, Category: -0.1, Tags: -0.2, Level: -0.3}
	for i := 0; i < 20; i++ {
		err := w.Validate()
		if err == nil || !strings.Contains(err.Error(), "category weight") {
			t.Fatalf("run %d: expected the category weight to be reported, got %v", i, err)
		}
	}
}
