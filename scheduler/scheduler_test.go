package scheduler

import (
	"context"
	"sync/atomic"
	"testing"

	"sentinance/model"
)

type countingMovers struct {
	warmed atomic.Int32
}

func (c *countingMovers) TopMovers(context.Context) (model.MoversResponse, error) {
	return model.MoversResponse{}, nil
}

func (c *countingMovers) MostActive(context.Context) (model.MostActiveResponse, error) {
	return model.MostActiveResponse{}, nil
}

func (c *countingMovers) Warm(context.Context) { c.warmed.Add(1) }

func TestRegisterWarmup(t *testing.T) {
	movers := &countingMovers{}
	s := NewScheduler(context.Background(), movers)

	if err := s.RegisterWarmup(""); err != nil {
		t.Fatalf("empty schedule should be accepted: %v", err)
	}
	if len(s.Cron.Entries()) != 0 {
		t.Fatal("empty schedule must not register a job")
	}

	if err := s.RegisterWarmup("0 */5 * * * *"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Cron.Entries()) != 1 {
		t.Fatalf("expected 1 job, got %d", len(s.Cron.Entries()))
	}

	if err := s.RegisterWarmup("not a cron"); err == nil {
		t.Fatal("expected error for invalid schedule")
	}
}

func TestWarmupRunsMovers(t *testing.T) {
	movers := &countingMovers{}
	s := NewScheduler(context.Background(), movers)
	s.warmup()
	if movers.warmed.Load() != 1 {
		t.Fatalf("expected one warm-up, got %d", movers.warmed.Load())
	}
}
