package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"pagecast/internal/core/domain"
	"pagecast/internal/core/port"
	"pagecast/internal/metrics"
)

// MessageUseCase sends a single message into an existing conversation,
// applying the same tag rule as the broadcast path.
type MessageUseCase struct {
	conversations port.ConversationRepository
	messenger     port.Messenger
	logger        *slog.Logger
	window        time.Duration
	now           func() time.Time
}

func NewMessageUseCase(conversations port.ConversationRepository, messenger port.Messenger, logger *slog.Logger, window time.Duration) *MessageUseCase {
	return &MessageUseCase{
		conversations: conversations,
		messenger:     messenger,
		logger:        logger,
		window:        window,
		now:           time.Now,
	}
}

// SendOne delivers text to the party of the conversation. A recipient
// rejection is returned as *domain.DeliveryError.
func (u *MessageUseCase) SendOne(ctx context.Context, accountID, conversationID uuid.UUID, text string, rawTag string) (*domain.Conversation, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyMessage
	}
	tag, err := domain.ParseMessageTag(rawTag)
	if err != nil {
		return nil, err
	}

	target, err := u.conversations.GetSendTarget(ctx, accountID, conversationID)
	if err != nil {
		return nil, err
	}
	if target.Channel.AccessToken.Empty() {
		return nil, domain.ErrNoCredential
	}

	now := u.now()
	conv := target.Conversation
	required := domain.ConversationAudience(conv.LastInboundAt, now, u.window).RequiresTag()
	if err = domain.CheckSendAllowed(required, tag); err != nil {
		metrics.Deliveries.WithLabelValues(metrics.PathInteractive, "rejected").Inc()
		return nil, err
	}

	dl := u.messenger.Send(ctx, domain.SendRequest{
		RecipientID: conv.RecipientExternalID,
		Text:        text,
		Tag:         tag,
		Credential:  target.Channel.AccessToken,
	})
	metrics.Deliveries.WithLabelValues(metrics.PathInteractive, dl.Outcome.String()).Inc()
	if err = dl.Error(); err != nil {
		u.logger.Warn("message not delivered",
			slog.String("conversation_id", conversationID.String()),
			slog.String("outcome", dl.Outcome.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	sentAt := u.now()
	if err = u.conversations.UpdateLastMessage(ctx, conv.ID, text, sentAt); err != nil {
		return nil, fmt.Errorf("update conversation: %w", err)
	}
	conv.LastMessage = text
	conv.LastMessageAt = &sentAt
	return &conv, nil
}
