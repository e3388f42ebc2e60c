package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"pagecast/internal/core/domain"
)

const conversationColumns = `cv.id, cv.channel_id, cv.account_id, cv.recipient_external_id,
    cv.recipient_name, cv.labels, cv.last_message, cv.last_message_at,
    cv.last_inbound_at, cv.created_at`

// ConversationRepository implements port.ConversationRepository.
type ConversationRepository struct {
	db DB
}

func NewConversationRepository(db DB) *ConversationRepository {
	return &ConversationRepository{db: db}
}

func conversationDest(c *domain.Conversation) []any {
	return []any{
		&c.ID,
		&c.ChannelID,
		&c.AccountID,
		&c.RecipientExternalID,
		&c.RecipientName,
		&c.Labels,
		&c.LastMessage,
		&c.LastMessageAt,
		&c.LastInboundAt,
		&c.CreatedAt,
	}
}

func (r *ConversationRepository) ListByChannel(ctx context.Context, channelID uuid.UUID) ([]domain.Conversation, error) {
	rows, err := r.db.Query(ctx, `
        SELECT `+conversationColumns+`
        FROM conversations cv
        WHERE cv.channel_id = $1
        ORDER BY cv.created_at, cv.id`, channelID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Conversation, error) {
		var c domain.Conversation
		err := row.Scan(conversationDest(&c)...)
		return c, err
	})
}

func (r *ConversationRepository) GetSendTarget(ctx context.Context, accountID, conversationID uuid.UUID) (*domain.SendTarget, error) {
	var (
		t     domain.SendTarget
		token string
	)
	dest := append(conversationDest(&t.Conversation),
		&t.Channel.ID, &t.Channel.AccountID, &t.Channel.ExternalID, &t.Channel.Name, &token)
	err := r.db.QueryRow(ctx, `
        SELECT `+conversationColumns+`,
            ch.id, ch.account_id, ch.external_id, ch.name, COALESCE(ch.access_token, '')
        FROM conversations cv
        JOIN channels ch ON ch.id = cv.channel_id
        WHERE cv.account_id = $1 AND cv.id = $2`, accountID, conversationID).Scan(dest...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	t.Channel.AccessToken = domain.Credential(token)
	return &t, nil
}

func (r *ConversationRepository) UpdateLastMessage(ctx context.Context, conversationID uuid.UUID, text string, at time.Time) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE conversations
        SET last_message = $2, last_message_at = $3
        WHERE id = $1`, conversationID, text, at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RecordInbound upserts the conversation keyed by channel and sender. The
// inbound timestamp only moves forward so redelivered webhooks are harmless.
func (r *ConversationRepository) RecordInbound(ctx context.Context, msg domain.InboundMessage) (*domain.Conversation, error) {
	var c domain.Conversation
	err := r.db.QueryRow(ctx, `
        INSERT INTO conversations AS cv
            (id, channel_id, account_id, recipient_external_id, last_message,
             last_message_at, last_inbound_at, created_at)
        SELECT $1, ch.id, ch.account_id, $3, $4, $5, $5, $5
        FROM channels ch
        WHERE ch.external_id = $2
        ON CONFLICT (channel_id, recipient_external_id) DO UPDATE
        SET last_message    = EXCLUDED.last_message,
            last_message_at = EXCLUDED.last_message_at,
            last_inbound_at = GREATEST(cv.last_inbound_at, EXCLUDED.last_inbound_at)
        RETURNING `+conversationColumns,
		uuid.New(), msg.ChannelExternalID, msg.SenderID, msg.Text, msg.At).Scan(conversationDest(&c)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
