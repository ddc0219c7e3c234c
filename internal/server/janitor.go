package server

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Janitor periodically evicts idle sessions from a Registry.
type Janitor struct {
	registry *Registry
	ttl      time.Duration
	interval time.Duration
	logger   *zap.Logger
}

// NewJanitor creates a janitor that sweeps every ttl/4, but at least once
// a minute.
func NewJanitor(registry *Registry, ttl time.Duration, logger *zap.Logger) *Janitor {
	return &Janitor{
		registry: registry,
		ttl:      ttl,
		interval: min(max(ttl/4, time.Second), time.Minute),
		logger:   logger,
	}
}

// Start runs the sweep loop in a goroutine until ctx is cancelled.
func (j *Janitor) Start(ctx context.Context) {
	go j.run(ctx)
}

func (j *Janitor) run(ctx context.Context) {
	j.logger.Debug("session janitor started", zap.Duration("ttl", j.ttl), zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Debug("session janitor stopped")
			return
		case <-ticker.C:
			j.sweep()
		}
	}
}

func (j *Janitor) sweep() {
	expired := j.registry.Expire(j.ttl)
	if len(expired) > 0 {
		j.logger.Info("expired idle sessions", zap.Int("count", len(expired)), zap.Int("remaining", j.registry.Len()))
	}
}
