package scheduler

import (
	"context"
	"fmt"
	"time"

	"sentinance/service"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const warmupTimeout = 30 * time.Second

// Scheduler runs background jobs for the serving process.
type Scheduler struct {
	Cron   *cron.Cron
	Movers service.MoversService
	Ctx    context.Context
}

func NewScheduler(ctx context.Context, movers service.MoversService) *Scheduler {
	return &Scheduler{
		Cron:   cron.New(cron.WithSeconds()),
		Movers: movers,
		Ctx:    ctx,
	}
}

// RegisterWarmup schedules the watch-list cache warm-up. An empty schedule
// disables it.
func (s *Scheduler) RegisterWarmup(schedule string) error {
	if schedule == "" {
		return nil
	}
	if _, err := s.Cron.AddFunc(schedule, s.warmup); err != nil {
		return fmt.Errorf("register warm-up task: %w", err)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Int("jobs", len(s.Cron.Entries())).Msg("scheduler started")
}

// Stop waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Info().Msg("scheduler stopped")
}

func (s *Scheduler) warmup() {
	ctx, cancel := context.WithTimeout(s.Ctx, warmupTimeout)
	defer cancel()
	s.Movers.Warm(ctx)
}
