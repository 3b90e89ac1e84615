// Package feature derives the scoring features of a course record.
package feature

import (
	"strings"
	"unicode"

	"github.com/kailas-cloud/learnrec/internal/domain/course"
	"github.com/kailas-cloud/learnrec/internal/domain/recommend/text"
)

// Repetition factors for the combined text. Repeating a field multiplies its term
// counts, so title, category and tag terms outweigh description terms.
const (
	titleRepeat       = 3
	categoryRepeat    = 2
	tagsRepeat        = 2
	descriptionRepeat = 1
)

// Set holds the features of one course for the duration of a single call.
type Set struct {
	Combined string
	Category string
	Tags     map[string]struct{}
	Level    course.Level
	Price    float64
}

// Extract builds the feature set of c. It never fails: missing attributes yield
// empty features.
func Extract(c course.Course) Set {
	title := text.Normalize(c.Title())
	category := text.Normalize(c.Category())
	tags := text.Normalize(c.Tags())
	description := text.Normalize(c.Description())

	parts := make([]string, 0, titleRepeat+categoryRepeat+tagsRepeat+descriptionRepeat)
	parts = repeat(parts, title, titleRepeat)
	parts = repeat(parts, category, categoryRepeat)
	parts = repeat(parts, tags, tagsRepeat)
	parts = repeat(parts, description, descriptionRepeat)

	level := c.Level()
	if level == "" {
		level = course.Beginner
	}

	return Set{
		Combined: strings.Join(parts, " "),
		Category: strings.ToLower(strings.TrimSpace(c.Category())),
		Tags:     TagSet(c.Tags()),
		Level:    level,
		Price:    c.Price(),
	}
}

// TagSet splits raw tags on commas and whitespace into a lowercase token set.
func TagSet(raw string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(raw), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

func repeat(parts []string, s string, n int) []string {
	if s == "" {
		return parts
	}
	for i := 0; i < n; i++ {
		parts = append(parts, s)
	}
	return parts
}
