package health

import "context"

// DBPinger reports whether the course store answers.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// CatalogChecker reports whether the catalog has active courses to recommend from.
type CatalogChecker interface {
	HealthCheck(ctx context.Context) error
}
