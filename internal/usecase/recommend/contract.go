package recommend

import (
	"context"

	domcourse "github.com/kailas-cloud/learnrec/internal/domain/course"
	domrec "github.com/kailas-cloud/learnrec/internal/domain/recommend"
)

// CourseReader reads catalog courses.
type CourseReader interface {
	Get(ctx context.Context, id string) (domcourse.Course, error)
	GetMany(ctx context.Context, ids []string) ([]domcourse.Course, error)
	ListActive(ctx context.Context, exclude ...string) ([]domcourse.Course, error)
}

// EnrollmentReader reads the courses a learner is enrolled in.
type EnrollmentReader interface {
	CourseIDs(ctx context.Context, learnerID string) ([]string, error)
}

// Engine ranks candidate courses.
type Engine interface {
	ForCourse(reference domcourse.Course, candidates []domcourse.Course, topN int) ([]domrec.Entry, error)
	ForLearner(enrolled, pool []domcourse.Course, topN int) ([]domrec.Entry, error)
}
