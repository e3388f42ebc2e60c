package port

import (
	"context"

	"pagecast/internal/core/domain"
)

// Messenger is the external send primitive. Implementations pace calls and
// classify every response; they never return a bare error.
type Messenger interface {
	Send(ctx context.Context, req domain.SendRequest) domain.Delivery
}

// EventPublisher notifies observers of campaign state written by the
// dispatcher.
type EventPublisher interface {
	Publish(ctx context.Context, ev domain.CampaignEvent) error
}
