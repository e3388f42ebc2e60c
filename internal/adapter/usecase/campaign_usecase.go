package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"pagecast/internal/core/domain"
	"pagecast/internal/core/port"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// CampaignUseCase implements campaign authoring: drafts, templates,
// scheduling, cancellation and audience previews.
type CampaignUseCase struct {
	repo     port.CampaignRepository
	resolver *AudienceResolver
	events   port.EventPublisher
	logger   *slog.Logger
	now      func() time.Time
}

// NewCampaignUseCase wires the authoring use case. events may be nil.
func NewCampaignUseCase(
	repo port.CampaignRepository,
	resolver *AudienceResolver,
	events port.EventPublisher,
	logger *slog.Logger,
) *CampaignUseCase {
	return &CampaignUseCase{repo: repo, resolver: resolver, events: events, logger: logger, now: time.Now}
}

// Create validates and stores a campaign. Tag requirements are checked here
// so a batch that could only ever be rejected never reaches the dispatcher.
func (u *CampaignUseCase) Create(ctx context.Context, req port.CreateCampaign) (*domain.Campaign, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidCampaign)
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, domain.ErrEmptyMessage
	}
	audience, err := domain.ParseAudience(req.Audience)
	if err != nil {
		return nil, err
	}
	tag, err := domain.ParseMessageTag(req.Tag)
	if err != nil {
		return nil, err
	}
	if err = domain.CheckSendAllowed(audience.RequiresTag(), tag); err != nil {
		return nil, err
	}

	owned, err := u.repo.ChannelOwned(ctx, req.AccountID, req.ChannelID)
	if err != nil {
		return nil, fmt.Errorf("check channel ownership: %w", err)
	}
	if !owned {
		return nil, fmt.Errorf("channel %s: %w", req.ChannelID, domain.ErrNotFound)
	}

	now := u.now()
	channelID := req.ChannelID
	c := &domain.Campaign{
		ID:        uuid.New(),
		AccountID: req.AccountID,
		ChannelID: &channelID,
		Name:      name,
		Audience:  audience,
		Message:   req.Message,
		Tag:       tag,
		Status:    domain.StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	switch {
	case req.SendNow:
		c.ScheduledAt = &now
		c.Status = domain.StatusScheduled
	case req.ScheduledAt != nil:
		at := req.ScheduledAt.UTC()
		c.ScheduledAt = &at
		c.Status = domain.StatusScheduled
	}

	est, err := u.resolver.Estimate(ctx, channelID, audience)
	if err != nil {
		u.logger.Warn("audience estimate failed", slog.String("channel_id", channelID.String()), slog.Any("error", err))
	} else {
		c.TotalRecipients = est.Total
	}

	if err = u.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	u.logger.Info("campaign created",
		slog.String("campaign_id", c.ID.String()),
		slog.String("status", string(c.Status)),
		slog.String("audience", audience.String()),
	)
	return c, nil
}

// CreateTemplate stores a reusable name and message. Templates are never
// dispatched.
func (u *CampaignUseCase) CreateTemplate(ctx context.Context, accountID uuid.UUID, name, message string) (*domain.Campaign, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidCampaign)
	}
	if strings.TrimSpace(message) == "" {
		return nil, domain.ErrEmptyMessage
	}
	now := u.now()
	c := &domain.Campaign{
		ID:         uuid.New(),
		AccountID:  accountID,
		Name:       name,
		Message:    message,
		Status:     domain.StatusDraft,
		IsTemplate: true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create template: %w", err)
	}
	return c, nil
}

// Schedule moves a draft to scheduled.
func (u *CampaignUseCase) Schedule(ctx context.Context, accountID, id uuid.UUID, at time.Time) error {
	ok, err := u.repo.Schedule(ctx, accountID, id, at.UTC())
	if err != nil {
		return fmt.Errorf("schedule campaign: %w", err)
	}
	if ok {
		return nil
	}
	if _, err = u.Get(ctx, accountID, id); err != nil {
		return err
	}
	return domain.ErrNotSchedulable
}

// Cancel moves a scheduled campaign to cancelled. A campaign already claimed
// by the dispatcher can no longer be cancelled.
func (u *CampaignUseCase) Cancel(ctx context.Context, accountID, id uuid.UUID) error {
	ok, err := u.repo.Cancel(ctx, accountID, id)
	if err != nil {
		return fmt.Errorf("cancel campaign: %w", err)
	}
	if ok {
		u.logger.Info("campaign cancelled", slog.String("campaign_id", id.String()))
		u.publishCancelled(ctx, accountID, id)
		return nil
	}
	if _, err = u.Get(ctx, accountID, id); err != nil {
		return err
	}
	return domain.ErrNotCancellable
}

func (u *CampaignUseCase) publishCancelled(ctx context.Context, accountID, id uuid.UUID) {
	if u.events == nil {
		return
	}
	c, err := u.repo.Get(ctx, accountID, id)
	if err != nil {
		u.logger.Warn("reload cancelled campaign failed", slog.String("campaign_id", id.String()), slog.Any("error", err))
		return
	}
	publishEvent(ctx, u.events, u.logger, c, domain.EventCancelled, u.now())
}

func (u *CampaignUseCase) Get(ctx context.Context, accountID, id uuid.UUID) (*domain.Campaign, error) {
	c, err := u.repo.Get(ctx, accountID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	return c, nil
}

// List returns the account's campaigns, newest first.
func (u *CampaignUseCase) List(ctx context.Context, accountID uuid.UUID, f port.ListFilter) ([]domain.Campaign, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidCampaign, f.Status)
	}
	if f.Limit <= 0 {
		f.Limit = defaultListLimit
	}
	if f.Limit > maxListLimit {
		f.Limit = maxListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	out, err := u.repo.List(ctx, accountID, f)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return out, nil
}

// Preview estimates the audience of a rule before a campaign is committed.
func (u *CampaignUseCase) Preview(ctx context.Context, accountID, channelID uuid.UUID, audience string) (*port.AudiencePreview, error) {
	a, err := domain.ParseAudience(audience)
	if err != nil {
		return nil, err
	}
	owned, err := u.repo.ChannelOwned(ctx, accountID, channelID)
	if err != nil {
		return nil, fmt.Errorf("check channel ownership: %w", err)
	}
	if !owned {
		return nil, fmt.Errorf("channel %s: %w", channelID, domain.ErrNotFound)
	}
	est, err := u.resolver.Estimate(ctx, channelID, a)
	if err != nil {
		return nil, err
	}
	return &port.AudiencePreview{
		Audience:    a.String(),
		TagRequired: a.RequiresTag(),
		Estimate:    est,
	}, nil
}
