package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	domcourse "github.com/kailas-cloud/learnrec/internal/domain/course"
)

// catalogFile is the seed file layout. Course records are loose: any of the
// accepted field aliases may appear, with string, number, bool or array values.
type catalogFile struct {
	Courses     []map[string]any    `json:"courses"`
	Enrollments map[string][]string `json:"enrollments"`
}

type catalog struct {
	courses     []domcourse.Course
	enrollments map[string][]string
}

// learners returns enrollment keys in sorted order.
func (c *catalog) learners() []string {
	out := make([]string, 0, len(c.enrollments))
	for id := range c.enrollments {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func parseCatalog(data []byte) (*catalog, error) {
	var f catalogFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	out := &catalog{
		courses:     make([]domcourse.Course, 0, len(f.Courses)),
		enrollments: f.Enrollments,
	}
	if out.enrollments == nil {
		out.enrollments = map[string][]string{}
	}
	for i, raw := range f.Courses {
		c, err := domcourse.FromRecord(flatten(raw))
		if err != nil {
			return nil, fmt.Errorf("course %d: %w", i, err)
		}
		out.courses = append(out.courses, c)
	}
	return out, nil
}

// flatten converts decoded JSON values to the string record form used by storage.
func flatten(raw map[string]any) map[string]string {
	rec := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := stringify(v); ok {
			rec[k] = s
		}
	}
	return rec
}

func stringify(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(x), true
	case []any:
		parts := make([]string, 0, len(x))
		for _, e := range x {
			if s, ok := stringify(e); ok && s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", "), true
	default:
		return fmt.Sprint(x), true
	}
}
