package enrollment

import (
	"context"
	"fmt"
	"sort"

	"github.com/kailas-cloud/learnrec/internal/domain"
)

// store is the consumer interface for enrollment sets (ISP).
type store interface {
	SMembers(ctx context.Context, key string) ([]string, error)
	SAdd(ctx context.Context, key string, members ...string) error
}

// Repo implements usecase/recommend.EnrollmentReader. Each learner owns one set of course IDs.
type Repo struct {
	store  store
	prefix string
}

// New creates an enrollment repository using the default key prefix.
func New(s store) *Repo {
	return &Repo{store: s, prefix: domain.KeyPrefix}
}

// WithPrefix overrides the key prefix. An empty prefix keeps the current one.
func (r *Repo) WithPrefix(prefix string) *Repo {
	if prefix != "" {
		r.prefix = prefix
	}
	return r
}

// CourseIDs returns the learner's enrolled course IDs, sorted. Unknown learners have none.
func (r *Repo) CourseIDs(ctx context.Context, learnerID string) ([]string, error) {
	key := r.key(learnerID)
	ids, err := r.store.SMembers(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("smembers %s: %w", key, err)
	}
	if ids == nil {
		ids = []string{}
	}
	sort.Strings(ids)
	return ids, nil
}

// Enroll adds courses to the learner's enrollment set.
func (r *Repo) Enroll(ctx context.Context, learnerID string, courseIDs ...string) error {
	key := r.key(learnerID)
	if err := r.store.SAdd(ctx, key, courseIDs...); err != nil {
		return fmt.Errorf("sadd %s: %w", key, err)
	}
	return nil
}

func (r *Repo) key(learnerID string) string {
	return fmt.Sprintf("%senrollments:%s", r.prefix, learnerID)
}
