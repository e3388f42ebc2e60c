package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pagecast/internal/core/domain"
	"pagecast/internal/core/port"
	"pagecast/internal/metrics"
)

// DefaultCheckpointEvery is the number of recipients attempted between
// progress writes. Failed attempts count toward it, including recipients the
// tag gate rejects without an external call.
const DefaultCheckpointEvery = 10

// Dispatcher runs one due campaign per Tick: claim, resolve credential and
// audience, deliver sequentially, checkpoint, finalize.
type Dispatcher struct {
	store     port.CampaignStore
	resolver  *AudienceResolver
	messenger port.Messenger
	events    port.EventPublisher
	logger    *slog.Logger

	checkpointEvery int
	now             func() time.Time
}

// NewDispatcher wires a dispatcher. events may be nil. A checkpointEvery
// below one falls back to DefaultCheckpointEvery.
func NewDispatcher(
	store port.CampaignStore,
	resolver *AudienceResolver,
	messenger port.Messenger,
	events port.EventPublisher,
	logger *slog.Logger,
	checkpointEvery int,
) *Dispatcher {
	if checkpointEvery < 1 {
		checkpointEvery = DefaultCheckpointEvery
	}
	return &Dispatcher{
		store:           store,
		resolver:        resolver,
		messenger:       messenger,
		events:          events,
		logger:          logger,
		checkpointEvery: checkpointEvery,
		now:             time.Now,
	}
}

// Tick claims at most one due campaign and runs it to completion. Losing the
// claim race, or finding nothing due, is not an error. Store and resolver
// errors after the claim abort the run and leave the campaign in_progress.
func (d *Dispatcher) Tick(ctx context.Context) (domain.TickResult, error) {
	now := d.now()
	idle := domain.TickResult{Outcome: domain.TickIdle}

	c, err := d.store.NextDue(ctx, now)
	if err != nil {
		metrics.DispatchTicks.WithLabelValues("error").Inc()
		return idle, fmt.Errorf("select due campaign: %w", err)
	}
	if c == nil {
		metrics.DispatchTicks.WithLabelValues(string(domain.TickIdle)).Inc()
		return idle, nil
	}
	if !c.Dispatchable(now) {
		d.logger.Warn("selected campaign is not dispatchable",
			slog.String("campaign_id", c.ID.String()),
			slog.String("status", string(c.Status)),
		)
		metrics.DispatchTicks.WithLabelValues(string(domain.TickIdle)).Inc()
		return idle, nil
	}

	claimed, err := d.store.TryClaim(ctx, c.ID, now)
	if err != nil {
		metrics.DispatchTicks.WithLabelValues("error").Inc()
		return idle, fmt.Errorf("claim campaign %s: %w", c.ID, err)
	}
	if !claimed {
		d.logger.Debug("campaign claimed elsewhere", slog.String("campaign_id", c.ID.String()))
		metrics.DispatchTicks.WithLabelValues(string(domain.TickIdle)).Inc()
		return idle, nil
	}

	c.Status = domain.StatusInProgress
	c.ClaimedAt = &now
	log := d.logger.With(slog.String("campaign_id", c.ID.String()), slog.String("campaign", c.Name))
	log.Info("campaign claimed", slog.String("audience", c.Audience.String()))
	d.publish(ctx, c, domain.EventClaimed)

	res, err := d.run(ctx, log, c, now)
	res.CampaignID = c.ID
	res.Elapsed = d.now().Sub(now)
	metrics.DispatchTicks.WithLabelValues(string(res.Outcome)).Inc()
	metrics.DispatchDuration.WithLabelValues(string(res.Outcome)).Observe(res.Elapsed.Seconds())
	if err != nil {
		log.Error("campaign run aborted", slog.Any("error", err), slog.Int("sent", res.Sent), slog.Int("failed", res.Failed))
		return res, err
	}
	return res, nil
}

func (d *Dispatcher) run(ctx context.Context, log *slog.Logger, c *domain.Campaign, claimedAt time.Time) (domain.TickResult, error) {
	res := domain.TickResult{Outcome: domain.TickAborted}

	var ch *domain.Channel
	if c.ChannelID != nil {
		var err error
		ch, err = d.store.GetChannel(ctx, *c.ChannelID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return res, fmt.Errorf("load channel: %w", err)
		}
	}
	if ch == nil || ch.AccessToken.Empty() {
		log.Warn("campaign failed", slog.String("reason", domain.ReasonMissingCredential))
		if err := d.fail(ctx, c, domain.ReasonMissingCredential); err != nil {
			return res, err
		}
		res.Outcome = domain.TickFailed
		return res, nil
	}

	recipients, err := d.resolver.Resolve(ctx, ch.ID, c.Audience)
	if err != nil {
		return res, fmt.Errorf("resolve audience: %w", err)
	}
	total := len(recipients)
	if err = d.store.SetTotal(ctx, c.ID, total); err != nil {
		return res, fmt.Errorf("store recipient total: %w", err)
	}
	c.TotalRecipients = total
	res.Total = total

	required := c.Audience.RequiresTag()
	for i, r := range recipients {
		if err = ctx.Err(); err != nil {
			return res, fmt.Errorf("interrupted after %d of %d sends: %w", i, total, err)
		}

		if err = domain.CheckSendAllowed(required, c.Tag); err != nil {
			res.Failed++
			metrics.Deliveries.WithLabelValues(metrics.PathBroadcast, "rejected").Inc()
		} else {
			dl := d.messenger.Send(ctx, domain.SendRequest{
				RecipientID: r.ExternalID,
				Text:        c.Message,
				Tag:         c.Tag,
				Credential:  ch.AccessToken,
			})
			metrics.Deliveries.WithLabelValues(metrics.PathBroadcast, dl.Outcome.String()).Inc()
			if dl.OK() {
				res.Sent++
			} else {
				res.Failed++
				log.Debug("delivery failed",
					slog.String("recipient", r.ExternalID),
					slog.String("outcome", dl.Outcome.String()),
					slog.Int("code", dl.Code),
					slog.String("message", dl.Message),
				)
			}
		}

		if attempts := i + 1; attempts%d.checkpointEvery == 0 && attempts < total {
			d.checkpoint(ctx, log, c, res.Sent, res.Failed)
		}
	}

	elapsed := d.now().Sub(claimedAt)
	if err = d.store.MarkSent(ctx, c.ID, res.Sent, res.Failed, elapsed); err != nil {
		return res, fmt.Errorf("finalize campaign: %w", err)
	}
	c.Status = domain.StatusSent
	c.Progress = 100
	c.SentCount, c.FailedCount = res.Sent, res.Failed
	c.TimeSpent = &elapsed
	d.publish(ctx, c, domain.EventSent)

	log.Info("campaign sent",
		slog.Int("total", total),
		slog.Int("sent", res.Sent),
		slog.Int("failed", res.Failed),
		slog.Duration("took", elapsed),
	)
	res.Outcome = domain.TickSent
	return res, nil
}

// checkpoint persists progress. Write failures are logged and do not stop the
// run.
func (d *Dispatcher) checkpoint(ctx context.Context, log *slog.Logger, c *domain.Campaign, sent, failed int) {
	progress := domain.CheckpointProgress(sent, c.TotalRecipients)
	if err := d.store.UpdateProgress(ctx, c.ID, sent, failed, progress); err != nil {
		log.Warn("progress checkpoint failed", slog.Any("error", err), slog.Int("sent", sent))
		return
	}
	c.SentCount, c.FailedCount, c.Progress = sent, failed, progress
	d.publish(ctx, c, domain.EventProgress)
}

func (d *Dispatcher) fail(ctx context.Context, c *domain.Campaign, reason string) error {
	if err := d.store.MarkFailed(ctx, c.ID, reason); err != nil {
		return fmt.Errorf("mark campaign failed: %w", err)
	}
	c.Status = domain.StatusFailed
	c.Progress = 100
	c.FailureReason = reason
	d.publish(ctx, c, domain.EventFailed)
	return nil
}

func (d *Dispatcher) publish(ctx context.Context, c *domain.Campaign, kind domain.EventKind) {
	publishEvent(ctx, d.events, d.logger, c, kind, d.now())
}

func publishEvent(ctx context.Context, events port.EventPublisher, logger *slog.Logger, c *domain.Campaign, kind domain.EventKind, at time.Time) {
	if events == nil {
		return
	}
	ev := domain.CampaignEvent{
		Kind:            kind,
		CampaignID:      c.ID,
		AccountID:       c.AccountID,
		Status:          c.Status,
		Progress:        c.Progress,
		TotalRecipients: c.TotalRecipients,
		SentCount:       c.SentCount,
		FailedCount:     c.FailedCount,
		Reason:          c.FailureReason,
		At:              at,
	}
	if err := events.Publish(ctx, ev); err != nil {
		logger.Warn("publish campaign event failed",
			slog.String("campaign_id", c.ID.String()),
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
	}
}
