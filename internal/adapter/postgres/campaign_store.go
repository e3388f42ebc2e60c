package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"pagecast/internal/core/domain"
)

// NextDue returns the earliest due campaign, or nil. Campaigns whose channel
// was deleted are returned too so the dispatcher can fail them. The row lock
// is only a hint to concurrent selectors; TryClaim is what makes the claim
// exclusive.
func (r *CampaignRepository) NextDue(ctx context.Context, now time.Time) (*domain.Campaign, error) {
	query := `
        SELECT ` + campaignColumns + `
        FROM campaigns
        WHERE status = 'scheduled'
          AND NOT is_template
          AND scheduled_at <= $1
        ORDER BY scheduled_at, id
        LIMIT 1
        FOR UPDATE SKIP LOCKED`
	c, err := scanCampaign(r.db.QueryRow(ctx, query, now))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// TryClaim is the compare-and-set that hands a campaign to exactly one
// dispatcher.
func (r *CampaignRepository) TryClaim(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
        UPDATE campaigns
        SET status = 'in_progress', claimed_at = $2, progress = 0, updated_at = $2
        WHERE id = $1 AND status = 'scheduled' AND NOT is_template`, id, at)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *CampaignRepository) GetChannel(ctx context.Context, id uuid.UUID) (*domain.Channel, error) {
	var (
		ch    domain.Channel
		token string
	)
	err := r.db.QueryRow(ctx, `
        SELECT id, account_id, external_id, name, COALESCE(access_token, '')
        FROM channels
        WHERE id = $1`, id).
		Scan(&ch.ID, &ch.AccountID, &ch.ExternalID, &ch.Name, &token)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	ch.AccessToken = domain.Credential(token)
	return &ch, nil
}

func (r *CampaignRepository) SetTotal(ctx context.Context, id uuid.UUID, total int) error {
	return r.execRunning(ctx, id, `
        UPDATE campaigns
        SET total_recipients = $2, updated_at = now()
        WHERE id = $1 AND status = 'in_progress'`, id, total)
}

func (r *CampaignRepository) UpdateProgress(ctx context.Context, id uuid.UUID, sent, failed, progress int) error {
	return r.execRunning(ctx, id, `
        UPDATE campaigns
        SET sent_count = $2, failed_count = $3, progress = $4, updated_at = now()
        WHERE id = $1 AND status = 'in_progress'`, id, sent, failed, progress)
}

func (r *CampaignRepository) MarkSent(ctx context.Context, id uuid.UUID, sent, failed int, timeSpent time.Duration) error {
	return r.execRunning(ctx, id, `
        UPDATE campaigns
        SET status = 'sent', sent_count = $2, failed_count = $3, progress = 100,
            time_spent_ms = $4, updated_at = now()
        WHERE id = $1 AND status = 'in_progress'`, id, sent, failed, timeSpent.Milliseconds())
}

func (r *CampaignRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	return r.execRunning(ctx, id, `
        UPDATE campaigns
        SET status = 'failed', progress = 100, failure_reason = $2, updated_at = now()
        WHERE id = $1 AND status = 'in_progress'`, id, reason)
}

// FailStale fails every in-progress campaign not written since before.
func (r *CampaignRepository) FailStale(ctx context.Context, before time.Time, reason string) ([]domain.Campaign, error) {
	rows, err := r.db.Query(ctx, `
        UPDATE campaigns
        SET status = 'failed', progress = 100, failure_reason = $2, updated_at = now()
        WHERE status = 'in_progress' AND updated_at < $1
        RETURNING `+campaignColumns, before, reason)
	if err != nil {
		return nil, err
	}
	return collectCampaigns(rows)
}

// execRunning runs a write guarded by status = 'in_progress' and reports
// domain.ErrNotInProgress when the guard matched nothing.
func (r *CampaignRepository) execRunning(ctx context.Context, id uuid.UUID, query string, args ...any) error {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %s: %w", id, domain.ErrNotInProgress)
	}
	return nil
}
