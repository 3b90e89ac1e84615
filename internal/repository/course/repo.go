package course

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sort"
	"strings"

	"github.com/kailas-cloud/learnrec/internal/domain"
	domcourse "github.com/kailas-cloud/learnrec/internal/domain/course"
)

// store is the consumer interface for course hashes (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements usecase/recommend.CourseReader on top of hash records.
type Repo struct {
	store  store
	prefix string
}

// New creates a course repository using the default key prefix.
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

// Get returns a course by ID.
func (r *Repo) Get(ctx context.Context, id string) (domcourse.Course, error) {
	key := r.key(id)
	rec, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return domcourse.Course{}, fmt.Errorf("hgetall %s: %w", key, err)
	}
	if len(rec) == 0 {
		return domcourse.Course{}, domain.ErrCourseNotFound
	}
	return r.decode(key, rec)
}

// GetMany returns the courses for ids in the requested order. Unknown IDs are skipped.
func (r *Repo) GetMany(ctx context.Context, ids []string) ([]domcourse.Course, error) {
	if len(ids) == 0 {
		return []domcourse.Course{}, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.key(id)
	}
	return r.load(ctx, keys)
}

// ListActive returns every active course except the excluded IDs, sorted by ID.
func (r *Repo) ListActive(ctx context.Context, exclude ...string) ([]domcourse.Course, error) {
	pattern := r.prefix + "course:*"
	keys, err := r.store.Scan(ctx, pattern)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", pattern, err)
	}
	if len(keys) == 0 {
		return []domcourse.Course{}, nil
	}

	all, err := r.load(ctx, keys)
	if err != nil {
		return nil, err
	}

	skip := make(map[string]struct{}, len(exclude))
	for _, id := range exclude {
		skip[id] = struct{}{}
	}

	out := make([]domcourse.Course, 0, len(all))
	seen := make(map[string]struct{}, len(all))
	for _, c := range all {
		if !c.Active() {
			continue
		}
		if _, ok := skip[c.ID()]; ok {
			continue
		}
		// SCAN may return a key more than once.
		if _, ok := seen[c.ID()]; ok {
			continue
		}
		seen[c.ID()] = struct{}{}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

// Put writes a course using canonical field names.
func (r *Repo) Put(ctx context.Context, c domcourse.Course) error {
	key := r.key(c.ID())
	if err := r.store.HSet(ctx, key, c.Record()); err != nil {
		return fmt.Errorf("hset %s: %w", key, err)
	}
	return nil
}

func (r *Repo) load(ctx context.Context, keys []string) ([]domcourse.Course, error) {
	recs, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall multi: %w", err)
	}
	out := make([]domcourse.Course, 0, len(recs))
	for i, rec := range recs {
		if len(rec) == 0 {
			continue
		}
		c, err := r.decode(keys[i], rec)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// decode maps a hash onto a Course. Records without a usable ID field take it from the key.
func (r *Repo) decode(key string, rec map[string]string) (domcourse.Course, error) {
	c, err := domcourse.FromRecord(rec)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, domain.ErrMissingCourseID) {
		return domcourse.Course{}, fmt.Errorf("decode %s: %w", key, err)
	}
	fixed := maps.Clone(rec)
	fixed[domcourse.FieldID] = strings.TrimPrefix(key, r.prefix+"course:")
	c, err = domcourse.FromRecord(fixed)
	if err != nil {
		return domcourse.Course{}, fmt.Errorf("decode %s: %w", key, err)
	}
	return c, nil
}

func (r *Repo) key(id string) string {
	return fmt.Sprintf("%scourse:%s", r.prefix, id)
}
