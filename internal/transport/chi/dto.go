package chi

// ErrorResponseCode is a machine-readable error code.
type ErrorResponseCode string

// Error codes returned in ErrorResponse.Code.
const (
	ErrorResponseCodeBadRequest       ErrorResponseCode = "bad_request"
	ErrorResponseCodeUnauthorized     ErrorResponseCode = "unauthorized"
	ErrorResponseCodeValidationFailed ErrorResponseCode = "validation_failed"
	ErrorResponseCodeCourseNotFound   ErrorResponseCode = "course_not_found"
	ErrorResponseCodeRateLimited      ErrorResponseCode = "rate_limited"
	ErrorResponseCodeInternalError    ErrorResponseCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorResponseCode `json:"code"`
	Message string            `json:"message"`
}

// MatchDetails is the per-signal breakdown of a content match, in percent.
type MatchDetails struct {
	TextSimilarity float64 `json:"textSimilarity"`
	CategoryMatch  bool    `json:"categoryMatch"`
	TagsSimilarity float64 `json:"tagsSimilarity"`
	LevelMatch     bool    `json:"levelMatch"`
}

// RecommendationItem is a recommended course.
type RecommendationItem struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Category     string        `json:"category"`
	Tags         string        `json:"tags"`
	Instructor   string        `json:"instructor"`
	Level        string        `json:"level"`
	Price        float64       `json:"price"`
	Rating       float64       `json:"rating"`
	MatchScore   int           `json:"matchScore"`
	MatchDetails *MatchDetails `json:"matchDetails,omitempty"`
	Reason       string        `json:"reason"`
}

// RecommendationListResponse is the body of both recommendation endpoints.
type RecommendationListResponse struct {
	Items    []RecommendationItem `json:"items"`
	Total    int                  `json:"total"`
	Limit    int                  `json:"limit"`
	Fallback bool                 `json:"fallback"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
