package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestStartRequiresJobs(t *testing.T) {
	s := NewScheduler(func(context.Context) error { return nil }, time.Minute, testLogger())
	if err := s.Start(); err == nil {
		t.Fatal("starting with no jobs must fail")
	}
}

func TestScheduleAfterStartRejected(t *testing.T) {
	s := NewScheduler(func(context.Context) error { return nil }, time.Minute, testLogger())
	if err := s.ScheduleInterval(60); err != nil {
		t.Fatal(err)
	}
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	defer s.Stop()

	if err := s.ScheduleInterval(60); err == nil {
		t.Fatal("scheduling while running must fail")
	}
	if !s.IsRunning() {
		t.Fatal("scheduler should report running")
	}
	if s.NextRun().IsZero() {
		t.Fatal("next run should be set while running")
	}
}

func TestStopIdempotent(t *testing.T) {
	s := NewScheduler(func(context.Context) error { return nil }, time.Minute, testLogger())
	if err := s.Stop(); err != nil {
		t.Fatalf("stopping an idle scheduler should be a no-op, got %v", err)
	}
}

func TestCronExpressionValidation(t *testing.T) {
	s := NewScheduler(func(context.Context) error { return nil }, time.Minute, testLogger())
	if err := s.ScheduleCron("not a cron"); err == nil {
		t.Fatal("invalid cron expression must fail")
	}
	if err := s.ScheduleCron("*/5 * * * *"); err != nil {
		t.Fatalf("valid cron expression rejected: %v", err)
	}
}
