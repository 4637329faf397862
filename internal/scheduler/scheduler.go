// Package scheduler drives periodic pipeline runs for the daemon.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// RunFunc executes one scheduled pipeline run.
type RunFunc func(ctx context.Context) error

// Scheduler manages the daemon's recurring edge runs.
type Scheduler struct {
	cron       *cron.Cron
	run        RunFunc
	runTimeout time.Duration
	logger     *logrus.Logger
	mu         sync.RWMutex
	isRunning  bool
	jobIDs     []cron.EntryID
}

// NewScheduler creates a scheduler. All jobs fire in UTC.
func NewScheduler(run RunFunc, runTimeout time.Duration, logger *logrus.Logger) *Scheduler {
	if runTimeout <= 0 {
		runTimeout = 10 * time.Minute
	}
	return &Scheduler{
		cron:       cron.New(cron.WithLocation(time.UTC)),
		run:        run,
		runTimeout: runTimeout,
		logger:     logger,
	}
}

// ScheduleInterval schedules a run every intervalSeconds. Intervals under 30
// seconds are raised to 30 to respect API quotas.
func (s *Scheduler) ScheduleInterval(intervalSeconds int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("cannot schedule job while scheduler is running")
	}
	if intervalSeconds < 30 {
		intervalSeconds = 30
	}

	entryID, err := s.cron.AddFunc(fmt.Sprintf("@every %ds", intervalSeconds), s.jobFunc())
	if err != nil {
		return fmt.Errorf("failed to add interval job: %w", err)
	}
	s.jobIDs = append(s.jobIDs, entryID)
	s.logger.WithField("interval_seconds", intervalSeconds).Info("Scheduled interval run")
	return nil
}

// ScheduleCron schedules runs from a standard cron expression.
func (s *Scheduler) ScheduleCron(expression string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("cannot schedule job while scheduler is running")
	}

	entryID, err := s.cron.AddFunc(expression, s.jobFunc())
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}
	s.jobIDs = append(s.jobIDs, entryID)
	s.logger.WithField("cron", expression).Info("Scheduled cron run")
	return nil
}

func (s *Scheduler) jobFunc() func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.runTimeout)
		defer cancel()

		if err := s.run(ctx); err != nil {
			s.logger.WithError(err).Error("Scheduled run failed")
		}
	}
}

// Start starts the scheduler. At least one job must be scheduled first.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("scheduler is already running")
	}
	if len(s.jobIDs) == 0 {
		return fmt.Errorf("no jobs scheduled")
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.WithField("jobs", len(s.jobIDs)).Info("Scheduler started")
	return nil
}

// Stop stops the scheduler and waits for any in-flight run to finish.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return nil
	}

	<-s.cron.Stop().Done()
	s.isRunning = false
	s.logger.Info("Scheduler stopped")
	return nil
}

// IsRunning returns whether the scheduler is currently running.
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRun returns the earliest upcoming run time, or the zero time when
// nothing is scheduled.
func (s *Scheduler) NextRun() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return time.Time{}
	}
	next := time.Time{}
	for _, jobID := range s.jobIDs {
		entry := s.cron.Entry(jobID)
		if entry.Valid() && (next.IsZero() || entry.Next.Before(next)) {
			next = entry.Next
		}
	}
	return next
}
