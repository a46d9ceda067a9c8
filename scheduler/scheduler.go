package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"propfinder/config"
	"propfinder/services"
)

// Scheduler drives the periodic upstream healthcheck, via a cron
// expression when one is configured, otherwise a plain interval.
type Scheduler struct {
	cfg    *config.HealthcheckConfig
	health *services.HealthcheckService
	cron   *cron.Cron
	ticker *time.Ticker
	stopCh chan struct{}
}

func New(cfg *config.HealthcheckConfig, health *services.HealthcheckService) *Scheduler {
	return &Scheduler{
		cfg:    cfg,
		health: health,
		cron:   cron.New(),
		stopCh: make(chan struct{}),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	switch {
	case s.cfg.Cron != "":
		log.Printf("scheduler: healthcheck cron: %s", s.cfg.Cron)
		_, err := s.cron.AddFunc(s.cfg.Cron, func() {
			s.health.Check(ctx)
		})
		if err != nil {
			return fmt.Errorf("invalid cron expression: %w", err)
		}
		s.cron.Start()
	case s.cfg.Interval > 0:
		log.Printf("scheduler: healthcheck interval: %s", s.cfg.Interval)
		s.ticker = time.NewTicker(s.cfg.Interval)
		go func() {
			for {
				select {
				case <-s.ticker.C:
					s.health.Check(ctx)
				case <-s.stopCh:
					return
				case <-ctx.Done():
					return
				}
			}
		}()
	default:
		log.Println("scheduler: no healthcheck schedule configured")
		return nil
	}

	// Probe once at startup so /healthz has data immediately.
	go s.health.Check(ctx)

	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
	if s.ticker != nil {
		s.ticker.Stop()
	}
	close(s.stopCh)
}
