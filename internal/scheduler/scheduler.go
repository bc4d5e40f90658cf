// Package scheduler runs the background refresh jobs on cron schedules:
// daily content plus a cache sweep, the weekly horoscope, and the default
// recommendation lists. Jobs never overlap with themselves and a panicking
// job is recovered and logged.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/tbourn/bhakti-feed/internal/config"
)

// Refresher performs the refresh work.
type Refresher interface {
	RefreshDaily(ctx context.Context) error
	RefreshWeekly(ctx context.Context) error
	RefreshRecommendations(ctx context.Context) error
}

// DefaultJobTimeout bounds a single job run.
const DefaultJobTimeout = 2 * time.Minute

// Scheduler owns the cron runner.
type Scheduler struct {
	cron    *cron.Cron
	log     zerolog.Logger
	timeout time.Duration
	jobs    []string
}

// New registers the refresh jobs described by cfg. An empty spec disables
// that job.
func New(cfg config.RefreshConfig, r Refresher, log zerolog.Logger) (*Scheduler, error) {
	cl := cronLogger{log: log}
	s := &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(cl),
			cron.SkipIfStillRunning(cl),
		), cron.WithLogger(cl)),
		log:     log,
		timeout: DefaultJobTimeout,
	}

	jobs := []struct {
		name string
		spec string
		run  func(context.Context) error
	}{
		{"daily", cfg.DailySpec, r.RefreshDaily},
		{"weekly", cfg.WeeklySpec, r.RefreshWeekly},
		{"recommendations", cfg.Recommendations, r.RefreshRecommendations},
	}
	for _, j := range jobs {
		if j.spec == "" {
			continue
		}
		if _, err := s.cron.AddFunc(j.spec, s.wrap(j.name, j.run)); err != nil {
			return nil, fmt.Errorf("schedule %s job %q: %w", j.name, j.spec, err)
		}
		s.jobs = append(s.jobs, j.name)
	}
	return s, nil
}

// Jobs lists the registered job names.
func (s *Scheduler) Jobs() []string { return append([]string(nil), s.jobs...) }

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Strs("jobs", s.jobs).Msg("refresh scheduler started")
}

// Stop prevents new runs and waits for running jobs or ctx.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) wrap(name string, run func(context.Context) error) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		start := time.Now()
		if err := run(ctx); err != nil {
			s.log.Warn().Err(err).Str("job", name).Msg("refresh job failed")
			return
		}
		s.log.Debug().Str("job", name).Dur("took", time.Since(start)).Msg("refresh job done")
	}
}

// cronLogger adapts zerolog to cron.Logger.
type cronLogger struct{ log zerolog.Logger }

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}
