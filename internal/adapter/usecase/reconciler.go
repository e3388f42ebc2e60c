package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pagecast/internal/core/domain"
	"pagecast/internal/core/port"
	"pagecast/internal/metrics"
)

// Reconciler fails in-progress campaigns whose last write is older than
// staleAfter. A crashed run cannot be resumed without resending to the
// recipients it already reached, so stalled runs are never requeued.
type Reconciler struct {
	store      port.CampaignStore
	events     port.EventPublisher
	logger     *slog.Logger
	staleAfter time.Duration
	now        func() time.Time
}

func NewReconciler(store port.CampaignStore, events port.EventPublisher, logger *slog.Logger, staleAfter time.Duration) *Reconciler {
	return &Reconciler{store: store, events: events, logger: logger, staleAfter: staleAfter, now: time.Now}
}

// Run fails every stalled campaign and returns how many it changed.
func (r *Reconciler) Run(ctx context.Context) (int, error) {
	now := r.now()
	stale, err := r.store.FailStale(ctx, now.Add(-r.staleAfter), domain.ReasonStalled)
	if err != nil {
		return 0, fmt.Errorf("fail stale campaigns: %w", err)
	}
	for i := range stale {
		c := &stale[i]
		r.logger.Warn("stalled campaign failed",
			slog.String("campaign_id", c.ID.String()),
			slog.Int("sent", c.SentCount),
			slog.Int("total", c.TotalRecipients),
			slog.Time("last_update", c.UpdatedAt),
		)
		publishEvent(ctx, r.events, r.logger, c, domain.EventFailed, now)
	}
	metrics.CampaignsReconciled.Add(float64(len(stale)))
	return len(stale), nil
}
