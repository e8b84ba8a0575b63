// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package services

import (
	"context"
	"time"

	"github.com/tomtom215/bundlerelay/internal/logging"
	"github.com/tomtom215/bundlerelay/internal/metrics"
)

// RedeliveryPruner is satisfied by *webhook.Handler.
type RedeliveryPruner interface {
	PruneRedeliveries() (removed, remaining int)
}

// RedeliveryPruneService periodically drops expired webhook signatures so
// the redelivery set shrinks between deliveries, and reports its size.
type RedeliveryPruneService struct {
	pruner   RedeliveryPruner
	interval time.Duration
}

// NewRedeliveryPruneService creates the service. A non-positive interval
// falls back to one minute.
func NewRedeliveryPruneService(pruner RedeliveryPruner, interval time.Duration) *RedeliveryPruneService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &RedeliveryPruneService{pruner: pruner, interval: interval}
}

// Serve implements suture.Service.
func (r *RedeliveryPruneService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.prune()
		}
	}
}

func (r *RedeliveryPruneService) prune() {
	removed, remaining := r.pruner.PruneRedeliveries()
	metrics.RecordRedeliveryPrune(removed, remaining)
	if removed > 0 {
		logging.Debug().
			Str("service", r.String()).
			Int("removed", removed).
			Int("remaining", remaining).
			Msg("Pruned webhook redelivery signatures")
	}
}

// String names the service in supervisor logs.
func (r *RedeliveryPruneService) String() string { return "webhook-redelivery-pruner" }
