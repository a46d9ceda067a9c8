package services

import (
	"context"
	"log"
	"sync"
	"time"
)

// Pinger is the minimal upstream probe the healthcheck needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthStatus is the last observed upstream reachability result.
type HealthStatus struct {
	Healthy   bool      `json:"healthy"`
	CheckedAt time.Time `json:"checked_at"`
	Detail    string    `json:"detail,omitempty"`
}

// HealthcheckService probes the listing source periodically and keeps
// only the latest result. No listing data is retained.
type HealthcheckService struct {
	pinger Pinger

	mu   sync.Mutex
	last HealthStatus
}

func NewHealthcheckService(pinger Pinger) *HealthcheckService {
	return &HealthcheckService{pinger: pinger}
}

// Check probes the upstream source and records the outcome.
func (s *HealthcheckService) Check(ctx context.Context) {
	status := HealthStatus{Healthy: true, CheckedAt: time.Now()}

	if err := s.pinger.Ping(ctx); err != nil {
		status.Healthy = false
		status.Detail = err.Error()
		log.Printf("healthcheck: upstream probe failed: %v", err)
	}

	s.mu.Lock()
	s.last = status
	s.mu.Unlock()
}

// Status returns the most recent probe result. CheckedAt is zero when
// no probe has run yet.
func (s *HealthcheckService) Status() HealthStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}
