package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pagecast/internal/core/domain"
	"pagecast/internal/core/port"
)

// AudienceResolver turns a targeting rule into the recipients of a channel.
// Recency rules are evaluated against the resolver's clock at resolution
// time, so a dispatch sees current activity rather than activity at
// scheduling time.
type AudienceResolver struct {
	conversations port.ConversationRepository
	window        time.Duration
	now           func() time.Time
}

// NewAudienceResolver returns a resolver using window as the trailing
// activity window of the recency rules.
func NewAudienceResolver(conversations port.ConversationRepository, window time.Duration) *AudienceResolver {
	return &AudienceResolver{conversations: conversations, window: window, now: time.Now}
}

// Resolve returns the ordered, deduplicated recipients matching the rule. A
// store failure is returned as an error and never as an empty audience.
func (r *AudienceResolver) Resolve(ctx context.Context, channelID uuid.UUID, a domain.Audience) ([]domain.Recipient, error) {
	matched, err := r.match(ctx, channelID, a)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Recipient, 0, len(matched))
	for _, c := range matched {
		out = append(out, domain.Recipient{ExternalID: c.RecipientExternalID})
	}
	return out, nil
}

// Estimate counts the audience for previews, split by whether each party is
// inside the free-response window. The numbers are advisory.
func (r *AudienceResolver) Estimate(ctx context.Context, channelID uuid.UUID, a domain.Audience) (port.AudienceEstimate, error) {
	matched, err := r.match(ctx, channelID, a)
	if err != nil {
		return port.AudienceEstimate{}, err
	}
	now := r.now()
	est := port.AudienceEstimate{Total: len(matched)}
	for _, c := range matched {
		if domain.InsideWindow(c.LastInboundAt, now, r.window) {
			est.InsideWindow++
		}
	}
	est.OutsideWindow = est.Total - est.InsideWindow
	return est, nil
}

func (r *AudienceResolver) match(ctx context.Context, channelID uuid.UUID, a domain.Audience) ([]domain.Conversation, error) {
	switch a.Kind {
	case domain.AudienceAll, domain.AudienceActive, domain.AudienceInactive, domain.AudienceLabel:
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAudience, a.String())
	}

	convs, err := r.conversations.ListByChannel(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("list conversations of channel %s: %w", channelID, err)
	}

	now := r.now()
	seen := make(map[string]struct{}, len(convs))
	out := make([]domain.Conversation, 0, len(convs))
	for _, c := range convs {
		if c.RecipientExternalID == "" {
			continue
		}
		if _, dup := seen[c.RecipientExternalID]; dup {
			continue
		}
		if !r.matches(a, c, now) {
			continue
		}
		seen[c.RecipientExternalID] = struct{}{}
		out = append(out, c)
	}
	return out, nil
}

func (r *AudienceResolver) matches(a domain.Audience, c domain.Conversation, now time.Time) bool {
	switch a.Kind {
	case domain.AudienceAll:
		return true
	case domain.AudienceActive:
		return domain.InsideWindow(c.LastInboundAt, now, r.window)
	case domain.AudienceInactive:
		return !domain.InsideWindow(c.LastInboundAt, now, r.window)
	case domain.AudienceLabel:
		return c.HasLabel(a.Label)
	}
	return false
}
