package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pagecast/internal/core/domain"
)

// DispatchUseCase is the single entrypoint invoked by the scheduler. Each
// call processes at most one campaign.
type DispatchUseCase interface {
	Tick(ctx context.Context) (domain.TickResult, error)
}

// ReconcileUseCase fails orphaned in-progress campaigns.
type ReconcileUseCase interface {
	Run(ctx context.Context) (int, error)
}

// CampaignUseCase exposes campaign authoring to the HTTP layer.
type CampaignUseCase interface {
	Create(ctx context.Context, req CreateCampaign) (*domain.Campaign, error)
	CreateTemplate(ctx context.Context, accountID uuid.UUID, name, message string) (*domain.Campaign, error)
	Schedule(ctx context.Context, accountID, id uuid.UUID, at time.Time) error
	Cancel(ctx context.Context, accountID, id uuid.UUID) error
	Get(ctx context.Context, accountID, id uuid.UUID) (*domain.Campaign, error)
	List(ctx context.Context, accountID uuid.UUID, f ListFilter) ([]domain.Campaign, error)
	Preview(ctx context.Context, accountID, channelID uuid.UUID, audience string) (*AudiencePreview, error)
}

// MessageUseCase is the interactive single-send path.
type MessageUseCase interface {
	SendOne(ctx context.Context, accountID, conversationID uuid.UUID, text string, tag string) (*domain.Conversation, error)
}

// InboundUseCase ingests inbound messages from the platform webhook.
type InboundUseCase interface {
	Record(ctx context.Context, msg domain.InboundMessage) error
}

// CreateCampaign is the input of CampaignUseCase.Create. Audience and Tag
// are raw user input and validated by the use case.
type CreateCampaign struct {
	AccountID   uuid.UUID
	ChannelID   uuid.UUID
	Name        string
	Audience    string
	Message     string
	Tag         string
	ScheduledAt *time.Time
	SendNow     bool
}

// AudienceEstimate is an advisory count for previews. The authoritative
// recipient count is computed at dispatch time.
type AudienceEstimate struct {
	Total         int
	InsideWindow  int
	OutsideWindow int
}

// AudiencePreview is returned to the campaign builder before commit.
type AudiencePreview struct {
	Audience    string
	TagRequired bool
	Estimate    AudienceEstimate
}
