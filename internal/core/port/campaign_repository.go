package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pagecast/internal/core/domain"
)

// CampaignStore is the dispatcher's only external state dependency. Every
// status-changing method is a conditional update against the backing store
// so that concurrent invocations cannot double-process a campaign.
type CampaignStore interface {
	// NextDue returns the earliest scheduled, non-template campaign whose
	// scheduled time is not after now, or nil when nothing is due.
	NextDue(ctx context.Context, now time.Time) (*domain.Campaign, error)
	// TryClaim flips a campaign from scheduled to in_progress. It reports
	// false when the row no longer reads scheduled (claim lost).
	TryClaim(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	// GetChannel returns the channel with its delivery credential, or
	// domain.ErrNotFound.
	GetChannel(ctx context.Context, id uuid.UUID) (*domain.Channel, error)
	// SetTotal records the audience size computed at dispatch time.
	SetTotal(ctx context.Context, id uuid.UUID, total int) error
	// UpdateProgress writes a checkpoint of an in-progress campaign.
	UpdateProgress(ctx context.Context, id uuid.UUID, sent, failed, progress int) error
	// MarkSent finalizes a run.
	MarkSent(ctx context.Context, id uuid.UUID, sent, failed int, timeSpent time.Duration) error
	// MarkFailed moves an in-progress campaign to failed with progress 100.
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
	// FailStale fails in-progress campaigns with no write since before, and
	// returns the ones it changed.
	FailStale(ctx context.Context, before time.Time, reason string) ([]domain.Campaign, error)
}

// ListFilter narrows CampaignRepository.List.
type ListFilter struct {
	Status    domain.CampaignStatus
	Templates bool
	Limit     int
	Offset    int
}

// CampaignRepository covers the authoring side of campaigns. All methods are
// scoped to the owning account.
type CampaignRepository interface {
	Create(ctx context.Context, c *domain.Campaign) error
	Get(ctx context.Context, accountID, id uuid.UUID) (*domain.Campaign, error)
	List(ctx context.Context, accountID uuid.UUID, f ListFilter) ([]domain.Campaign, error)
	// Cancel flips scheduled to cancelled; false when the campaign is not
	// scheduled (or not owned).
	Cancel(ctx context.Context, accountID, id uuid.UUID) (bool, error)
	// Schedule flips a draft to scheduled at the given time; false when the
	// campaign is not a schedulable draft.
	Schedule(ctx context.Context, accountID, id uuid.UUID, at time.Time) (bool, error)
	// ChannelOwned reports whether the channel belongs to the account.
	ChannelOwned(ctx context.Context, accountID, channelID uuid.UUID) (bool, error)
}
