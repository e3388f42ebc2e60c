package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"pagecast/internal/core/domain"
	"pagecast/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository and
// port.CampaignStore on PostgreSQL.
type CampaignRepository struct {
	db DB
}

// NewCampaignRepository returns a repository backed by db, typically a
// *pgxpool.Pool.
func NewCampaignRepository(db DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	var audience string
	if !c.Audience.IsZero() {
		audience = c.Audience.String()
	}
	_, err := r.db.Exec(ctx, `
        INSERT INTO campaigns
            (id, account_id, channel_id, name, audience, message, tag, status,
             total_recipients, scheduled_at, is_template, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)`,
		c.ID, c.AccountID, c.ChannelID, c.Name, audience, c.Message, string(c.Tag), string(c.Status),
		c.TotalRecipients, c.ScheduledAt, c.IsTemplate, c.CreatedAt)
	return err
}

func (r *CampaignRepository) Get(ctx context.Context, accountID, id uuid.UUID) (*domain.Campaign, error) {
	c, err := scanCampaign(r.db.QueryRow(ctx, `
        SELECT `+campaignColumns+`
        FROM campaigns
        WHERE account_id = $1 AND id = $2`, accountID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns campaigns (or templates) newest first.
func (r *CampaignRepository) List(ctx context.Context, accountID uuid.UUID, f port.ListFilter) ([]domain.Campaign, error) {
	query := `
        SELECT ` + campaignColumns + `
        FROM campaigns
        WHERE account_id = $1 AND is_template = $2`
	args := []any{accountID, f.Templates}
	if f.Status != "" {
		args = append(args, string(f.Status))
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	args = append(args, f.Limit, f.Offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectCampaigns(rows)
}

func (r *CampaignRepository) Cancel(ctx context.Context, accountID, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `
        UPDATE campaigns
        SET status = 'cancelled', progress = 100, updated_at = now()
        WHERE account_id = $1 AND id = $2 AND status = 'scheduled'`, accountID, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *CampaignRepository) Schedule(ctx context.Context, accountID, id uuid.UUID, at time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
        UPDATE campaigns
        SET status = 'scheduled', scheduled_at = $3, updated_at = now()
        WHERE account_id = $1 AND id = $2
          AND status = 'draft' AND NOT is_template AND channel_id IS NOT NULL`, accountID, id, at)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *CampaignRepository) ChannelOwned(ctx context.Context, accountID, channelID uuid.UUID) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM channels WHERE id = $2 AND account_id = $1)`,
		accountID, channelID).Scan(&ok)
	return ok, err
}
