package postgres

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"pagecast/internal/core/domain"
)

const campaignColumns = `id, account_id, channel_id, name, audience, message, tag, status,
    progress, total_recipients, sent_count, failed_count, scheduled_at, claimed_at,
    time_spent_ms, failure_reason, is_template, created_at, updated_at`

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c                      domain.Campaign
		channelID              *uuid.UUID
		audience, tag, status  string
		scheduledAt, claimedAt *time.Time
		timeSpentMs            *int64
	)
	err := row.Scan(
		&c.ID,
		&c.AccountID,
		&channelID,
		&c.Name,
		&audience,
		&c.Message,
		&tag,
		&status,
		&c.Progress,
		&c.TotalRecipients,
		&c.SentCount,
		&c.FailedCount,
		&scheduledAt,
		&claimedAt,
		&timeSpentMs,
		&c.FailureReason,
		&c.IsTemplate,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return c, err
	}
	c.ChannelID = channelID
	c.Tag = domain.MessageTag(tag)
	c.Status = domain.CampaignStatus(status)
	c.ScheduledAt = scheduledAt
	c.ClaimedAt = claimedAt
	if timeSpentMs != nil {
		d := time.Duration(*timeSpentMs) * time.Millisecond
		c.TimeSpent = &d
	}
	if audience != "" {
		a, perr := domain.ParseAudience(audience)
		if perr != nil {
			// kept as-is so the resolver reports it at dispatch time
			a = domain.Audience{Kind: domain.AudienceKind(audience)}
		}
		c.Audience = a
	}
	return c, nil
}

func collectCampaigns(rows pgx.Rows) ([]domain.Campaign, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}
