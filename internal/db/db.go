package db

import (
	"context"
	"time"
)

// Store is the main database facade combining all sub-interfaces.
type Store interface {
	Pinger
	HashReader
	HashWriter
	SetReader
	SetWriter
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HashReader reads hash records.
type HashReader interface {
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// HashWriter writes hash records.
type HashWriter interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
}

// SetReader reads set members.
type SetReader interface {
	SMembers(ctx context.Context, key string) ([]string, error)
}

// SetWriter adds set members.
type SetWriter interface {
	SAdd(ctx context.Context, key string, members ...string) error
}
