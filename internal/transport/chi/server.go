package chi

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/learnrec/internal/domain"
	domrec "github.com/kailas-cloud/learnrec/internal/domain/recommend"
	healthuc "github.com/kailas-cloud/learnrec/internal/usecase/health"
	recuc "github.com/kailas-cloud/learnrec/internal/usecase/recommend"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Recommender produces recommendation pages.
type Recommender interface {
	ForCourse(ctx context.Context, courseID string, limit int) (recuc.Result, error)
	ForLearner(ctx context.Context, learnerID string, limit int) (recuc.Result, error)
}

// HealthChecker aggregates component health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// Server serves the recommendation HTTP API.
type Server struct {
	recommend     Recommender
	health        HealthChecker
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(recommend Recommender, health HealthChecker, logger *zap.Logger) *Server {
	s := &Server{
		recommend: recommend,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrCourseNotFound, http.StatusNotFound, ErrorResponseCodeCourseNotFound),
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest, ErrorResponseCodeValidationFailed),
		sentinelHandler(domain.ErrMissingCourseID, http.StatusBadRequest, ErrorResponseCodeValidationFailed),
	}
	return s
}

// Mount registers the API routes on r.
func (s *Server) Mount(r chi.Router) {
	r.Get("/api/v1/courses/{courseID}/recommendations", s.RecommendForCourse)
	r.Get("/api/v1/learners/{learnerID}/recommendations", s.RecommendForLearner)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// RecommendForCourse handles GET /api/v1/courses/{courseID}/recommendations.
func (s *Server) RecommendForCourse(w http.ResponseWriter, r *http.Request) {
	limit, ok := bindLimit(w, r)
	if !ok {
		return
	}

	res, err := s.recommend.ForCourse(r.Context(), chi.URLParam(r, "courseID"), limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, recommendationsToDTO(res))
}

// RecommendForLearner handles GET /api/v1/learners/{learnerID}/recommendations.
func (s *Server) RecommendForLearner(w http.ResponseWriter, r *http.Request) {
	limit, ok := bindLimit(w, r)
	if !ok {
		return
	}

	res, err := s.recommend.ForLearner(r.Context(), chi.URLParam(r, "learnerID"), limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, recommendationsToDTO(res))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// bindLimit parses the optional limit query parameter. Zero means "use the default".
func bindLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	var limit *int
	if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &limit); err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponseCodeBadRequest, "Invalid format for parameter limit: "+err.Error())
		return 0, false
	}
	if limit == nil {
		return 0, true
	}
	return *limit, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorResponseCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrCourseNotFound,
		domain.ErrInvalidRequest,
		domain.ErrMissingCourseID,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

func sentinelHandler(sentinel error, status int, code ErrorResponseCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorResponseCodeInternalError, "internal error")
}

func recommendationsToDTO(res recuc.Result) RecommendationListResponse {
	items := make([]RecommendationItem, len(res.Items))
	for i := range res.Items {
		items[i] = entryToDTO(&res.Items[i])
	}
	return RecommendationListResponse{
		Items:    items,
		Total:    len(items),
		Limit:    res.Limit,
		Fallback: res.Fallback,
	}
}

func entryToDTO(e *domrec.Entry) RecommendationItem {
	c := &e.Course
	item := RecommendationItem{
		ID:          c.ID(),
		Title:       c.Title(),
		Description: c.Description(),
		Category:    c.Category(),
		Tags:        c.Tags(),
		Instructor:  c.Instructor(),
		Level:       string(c.Level()),
		Price:       c.Price(),
		Rating:      c.Rating(),
		MatchScore:  e.MatchScore,
		Reason:      string(e.Reason),
	}
	if e.Details != nil {
		item.MatchDetails = &MatchDetails{
			TextSimilarity: e.Details.TextSimilarity,
			CategoryMatch:  e.Details.CategoryMatch,
			TagsSimilarity: e.Details.TagsSimilarity,
			LevelMatch:     e.Details.LevelMatch,
		}
	}
	return item
}
