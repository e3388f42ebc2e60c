package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pagecast/internal/core/domain"
)

// ConversationRepository reads and updates conversations.
type ConversationRepository interface {
	// ListByChannel returns every conversation of the channel in a stable
	// order (creation time, then id).
	ListByChannel(ctx context.Context, channelID uuid.UUID) ([]domain.Conversation, error)
	// GetSendTarget loads a conversation owned by the account together with
	// its channel credential, or domain.ErrNotFound.
	GetSendTarget(ctx context.Context, accountID, conversationID uuid.UUID) (*domain.SendTarget, error)
	// UpdateLastMessage stores the latest outbound text on the conversation.
	UpdateLastMessage(ctx context.Context, conversationID uuid.UUID, text string, at time.Time) error
	// RecordInbound upserts the conversation for an inbound message. It
	// returns domain.ErrNotFound when the channel is not connected.
	RecordInbound(ctx context.Context, msg domain.InboundMessage) (*domain.Conversation, error)
}
