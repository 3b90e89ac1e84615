package domain

import "errors"

var (
	// ErrCourseNotFound signals a missing course record.
	ErrCourseNotFound = errors.New("course not found")
	// ErrMissingCourseID signals a course record without a usable identity.
	ErrMissingCourseID = errors.New("course id is required")
	// ErrInvalidRequest signals malformed request parameters.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrInvalidWeights signals a scoring weight set that is negative or does not sum to 1.
	ErrInvalidWeights = errors.New("invalid scoring weights")
)
