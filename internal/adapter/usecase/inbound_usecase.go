package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pagecast/internal/core/domain"
	"pagecast/internal/core/port"
)

// InboundUseCase records messages received through the webhook. Recency
// rules and the single-send window read the timestamps it maintains.
type InboundUseCase struct {
	conversations port.ConversationRepository
	logger        *slog.Logger
	now           func() time.Time
}

func NewInboundUseCase(conversations port.ConversationRepository, logger *slog.Logger) *InboundUseCase {
	return &InboundUseCase{conversations: conversations, logger: logger, now: time.Now}
}

// Record upserts the sender's conversation. Messages for channels that are
// not connected are dropped.
func (u *InboundUseCase) Record(ctx context.Context, msg domain.InboundMessage) error {
	if msg.ChannelExternalID == "" || msg.SenderID == "" {
		return fmt.Errorf("%w: missing channel or sender", domain.ErrInvalidInbound)
	}
	if msg.At.IsZero() {
		msg.At = u.now()
	}
	conv, err := u.conversations.RecordInbound(ctx, msg)
	if errors.Is(err, domain.ErrNotFound) {
		u.logger.Warn("inbound message for unknown channel", slog.String("channel", msg.ChannelExternalID))
		return nil
	}
	if err != nil {
		return fmt.Errorf("record inbound message: %w", err)
	}
	u.logger.Debug("inbound message recorded",
		slog.String("conversation_id", conv.ID.String()),
		slog.Time("at", msg.At),
	)
	return nil
}
