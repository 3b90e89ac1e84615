package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/learnrec/internal/domain"
	domcourse "github.com/kailas-cloud/learnrec/internal/domain/course"
	domrec "github.com/kailas-cloud/learnrec/internal/domain/recommend"
	"github.com/kailas-cloud/learnrec/internal/logger"
	"github.com/kailas-cloud/learnrec/internal/metrics"
)

const (
	modeCourse  = "course"
	modeLearner = "learner"
)

// Result is one page of recommendations.
type Result struct {
	Items    []domrec.Entry
	Limit    int  // effective limit after clamping
	Fallback bool // items come from the popularity fallback

	degraded bool
}

// Service loads courses and enrollments and hands them to the engine.
type Service struct {
	courses      CourseReader
	enrollments  EnrollmentReader
	engine       Engine
	defaultLimit int
	maxLimit     int
}

// New creates a recommendation service.
func New(courses CourseReader, enrollments EnrollmentReader, engine Engine) *Service {
	d := domain.DefaultRecommendDefaults()
	return &Service{
		courses:      courses,
		enrollments:  enrollments,
		engine:       engine,
		defaultLimit: d.Limit,
		maxLimit:     d.MaxLimit,
	}
}

// WithLimits sets the default and maximum result counts. Non-positive values are ignored.
func (s *Service) WithLimits(defaultLimit, maxLimit int) *Service {
	if defaultLimit > 0 {
		s.defaultLimit = defaultLimit
	}
	if maxLimit > 0 {
		s.maxLimit = maxLimit
	}
	if s.defaultLimit > s.maxLimit {
		s.defaultLimit = s.maxLimit
	}
	return s
}

// ForCourse recommends catalog courses similar to courseID.
func (s *Service) ForCourse(ctx context.Context, courseID string, limit int) (res Result, err error) {
	start := time.Now()
	defer func() { observe(modeCourse, start, res, err) }()

	courseID = strings.TrimSpace(courseID)
	if courseID == "" {
		return Result{}, fmt.Errorf("%w: course id is required", domain.ErrInvalidRequest)
	}
	limit = s.clamp(limit)
	ctx = logger.With(ctx, zap.String("course_id", courseID))

	ref, err := s.courses.Get(ctx, courseID)
	if err != nil {
		return Result{}, fmt.Errorf("get course %s: %w", courseID, err)
	}
	candidates, err := s.courses.ListActive(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list courses: %w", err)
	}

	items, err := s.engine.ForCourse(ref, candidates, limit)
	if err != nil {
		return s.degrade(ctx, modeCourse, limit, err)
	}
	return Result{Items: items, Limit: limit}, nil
}

// ForLearner recommends catalog courses for a learner based on their enrollments.
// Learners without enrollments get the most highly rated active courses.
func (s *Service) ForLearner(ctx context.Context, learnerID string, limit int) (res Result, err error) {
	start := time.Now()
	defer func() { observe(modeLearner, start, res, err) }()

	learnerID = strings.TrimSpace(learnerID)
	if learnerID == "" {
		return Result{}, fmt.Errorf("%w: learner id is required", domain.ErrInvalidRequest)
	}
	limit = s.clamp(limit)
	ctx = logger.With(ctx, zap.String("learner_id", learnerID))

	ids, err := s.enrollments.CourseIDs(ctx, learnerID)
	if err != nil {
		return Result{}, fmt.Errorf("get enrollments %s: %w", learnerID, err)
	}

	var enrolled []domcourse.Course
	if len(ids) > 0 {
		enrolled, err = s.courses.GetMany(ctx, ids)
		if err != nil {
			return Result{}, fmt.Errorf("get enrolled courses: %w", err)
		}
	}
	pool, err := s.courses.ListActive(ctx, ids...)
	if err != nil {
		return Result{}, fmt.Errorf("list courses: %w", err)
	}

	items, err := s.engine.ForLearner(enrolled, pool, limit)
	if err != nil {
		return s.degrade(ctx, modeLearner, limit, err)
	}
	return Result{Items: items, Limit: limit, Fallback: len(enrolled) == 0}, nil
}

// HealthCheck reports an error when the catalog cannot be read or has no active courses.
func (s *Service) HealthCheck(ctx context.Context) error {
	courses, err := s.courses.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("list courses: %w", err)
	}
	if len(courses) == 0 {
		return errors.New("catalog has no active courses")
	}
	return nil
}

func (s *Service) clamp(limit int) int {
	switch {
	case limit <= 0:
		return s.defaultLimit
	case limit > s.maxLimit:
		return s.maxLimit
	default:
		return limit
	}
}

// degrade turns an engine precondition failure into an empty page.
func (s *Service) degrade(ctx context.Context, mode string, limit int, err error) (Result, error) {
	logger.FromContext(ctx).Warn("recommendation degraded to empty result",
		zap.String("mode", mode),
		zap.Error(err),
	)
	return Result{Items: []domrec.Entry{}, Limit: limit, degraded: true}, nil
}

func observe(mode string, start time.Time, res Result, err error) {
	metrics.RecommendDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RecommendRequestsTotal.WithLabelValues(mode, outcome(err)).Inc()
		return
	}
	if res.degraded {
		metrics.RecommendRequestsTotal.WithLabelValues(mode, "degraded").Inc()
		return
	}
	metrics.RecommendRequestsTotal.WithLabelValues(mode, "ok").Inc()
	metrics.RecommendResultSize.WithLabelValues(mode).Observe(float64(len(res.Items)))
	if res.Fallback {
		metrics.RecommendFallbackTotal.Inc()
	}
}

func outcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrCourseNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidRequest):
		return "invalid"
	default:
		return "error"
	}
}
