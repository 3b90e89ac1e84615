package health

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/learnrec/internal/logger"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy means the store answers and the catalog can serve recommendations.
	Healthy Status = "ok"
	// Degraded means the store answers but recommendations would come back empty.
	Degraded Status = "degraded"
	// Unhealthy means the store is unreachable.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Names of the reported checks.
const (
	CheckDatabase = "database"
	CheckCatalog  = "catalog"
)

// checkTimeout bounds each individual check.
const checkTimeout = 2 * time.Second

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

type check struct {
	name string
	// failStatus is the worst status this check can cause.
	failStatus Status
	run        func(ctx context.Context) error
}

// Service runs the store and catalog checks.
type Service struct {
	checks []check
}

// New creates a Service. catalog can be nil, in which case only the store is checked.
func New(db DBPinger, catalog CatalogChecker) *Service {
	s := &Service{checks: []check{
		{name: CheckDatabase, failStatus: Unhealthy, run: db.Ping},
	}}
	if catalog != nil {
		s.checks = append(s.checks, check{name: CheckCatalog, failStatus: Degraded, run: catalog.HealthCheck})
	}
	return s
}

// Check runs every check in order. The report status is the worst outcome.
func (s *Service) Check(ctx context.Context) Report {
	report := Report{Status: Healthy, Checks: make(map[string]CheckResult, len(s.checks))}
	for _, c := range s.checks {
		cctx, cancel := context.WithTimeout(ctx, checkTimeout)
		err := c.run(cctx)
		cancel()

		if err == nil {
			report.Checks[c.name] = CheckOK
			continue
		}
		report.Checks[c.name] = CheckError
		report.Status = worse(report.Status, c.failStatus)
		logger.FromContext(ctx).Warn("health check failed",
			zap.String("check", c.name),
			zap.Error(err),
		)
	}
	return report
}

func severity(s Status) int {
	switch s {
	case Unhealthy:
		return 2
	case Degraded:
		return 1
	default:
		return 0
	}
}

func worse(a, b Status) Status {
	if severity(b) > severity(a) {
		return b
	}
	return a
}
