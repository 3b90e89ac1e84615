// learnrec-seed loads a JSON course catalog and learner enrollments into the store.
//
// Usage:
//
//	learnrec-seed -file catalog.json
//
// Connection settings come from config/<ENV>.yaml, as for the API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/learnrec/internal/config"
	dbRedis "github.com/kailas-cloud/learnrec/internal/db/redis"
	domcourse "github.com/kailas-cloud/learnrec/internal/domain/course"
	logpkg "github.com/kailas-cloud/learnrec/internal/logger"
	courserepo "github.com/kailas-cloud/learnrec/internal/repository/course"
	enrollmentrepo "github.com/kailas-cloud/learnrec/internal/repository/enrollment"
	"github.com/kailas-cloud/learnrec/internal/version"
)

type options struct {
	file        string
	showVersion bool
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.file, "file", "catalog.json", "path to the JSON catalog file")
	flag.BoolVar(&o.showVersion, "version", false, "print version and exit")
	flag.Parse()
	return o
}

func main() {
	opts := parseFlags()
	if opts.showVersion {
		fmt.Println(version.String())
		return
	}

	env := config.GetEnv()
	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	if err := run(ctx, cfg, opts, logger); err != nil {
		logger.Fatal("Seeding failed", zap.Error(err))
	}
}

type courseWriter interface {
	Put(ctx context.Context, c domcourse.Course) error
}

type enrollmentWriter interface {
	Enroll(ctx context.Context, learnerID string, courseIDs ...string) error
}

func run(ctx context.Context, cfg config.Config, opts options, logger *zap.Logger) error {
	data, err := os.ReadFile(filepath.Clean(opts.file))
	if err != nil {
		return fmt.Errorf("read %s: %w", opts.file, err)
	}
	cat, err := parseCatalog(data)
	if err != nil {
		return err
	}

	s, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Password: cfg.Database.Password,
	})
	if err != nil {
		return fmt.Errorf("create store: %w", err)
	}
	defer s.Close()

	if err := s.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		return fmt.Errorf("database not ready: %w", err)
	}

	start := time.Now()
	courses := courserepo.New(s).WithPrefix(cfg.Storage.KeyPrefix)
	enrollments := enrollmentrepo.New(s).WithPrefix(cfg.Storage.KeyPrefix)
	if err := seed(ctx, courses, enrollments, cat); err != nil {
		return err
	}
	logger.Info("Catalog seeded",
		zap.String("file", opts.file),
		zap.Int("courses", len(cat.courses)),
		zap.Int("learners", len(cat.enrollments)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

func seed(ctx context.Context, courses courseWriter, enrollments enrollmentWriter, cat *catalog) error {
	for i := range cat.courses {
		if err := courses.Put(ctx, cat.courses[i]); err != nil {
			return fmt.Errorf("put course %s: %w", cat.courses[i].ID(), err)
		}
	}
	for _, learnerID := range cat.learners() {
		ids := cat.enrollments[learnerID]
		if len(ids) == 0 {
			continue
		}
		if err := enrollments.Enroll(ctx, learnerID, ids...); err != nil {
			return fmt.Errorf("enroll %s: %w", learnerID, err)
		}
	}
	return nil
}
