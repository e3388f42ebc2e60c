package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagecast/internal/core/domain"
)

var conversationCols = []string{
	"id", "channel_id", "account_id", "recipient_external_id", "recipient_name",
	"labels", "last_message", "last_message_at", "last_inbound_at", "created_at",
}

func conversationRow(channel, account uuid.UUID, psid string, lastInbound *time.Time) []any {
	return []any{uuid.New(), channel, account, psid, "", []string{"vip"}, "", nil, lastInbound, time.Now()}
}

func TestListByChannel(t *testing.T) {
	mock := newMockPool(t)
	repo := NewConversationRepository(mock)
	channel, account := uuid.New(), uuid.New()
	seen := time.Now().Add(-time.Hour)

	mock.ExpectQuery(`ORDER BY cv.created_at, cv.id`).WithArgs(channel).
		WillReturnRows(pgxmock.NewRows(conversationCols).
			AddRow(conversationRow(channel, account, "psid-1", &seen)...).
			AddRow(conversationRow(channel, account, "psid-2", nil)...))

	out, err := repo.ListByChannel(context.Background(), channel)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "psid-1", out[0].RecipientExternalID)
	require.NotNil(t, out[0].LastInboundAt)
	assert.Nil(t, out[1].LastInboundAt)
	assert.True(t, out[1].HasLabel("VIP"))
}

func TestGetSendTarget(t *testing.T) {
	mock := newMockPool(t)
	repo := NewConversationRepository(mock)
	channel, account := uuid.New(), uuid.New()

	cols := append(append([]string{}, conversationCols...), "ch_id", "ch_account_id", "external_id", "name", "access_token")
	row := append(conversationRow(channel, account, "psid-7", nil), channel, account, "page-1", "Shop", "tok")
	mock.ExpectQuery(`JOIN channels ch ON ch.id = cv.channel_id`).
		WithArgs(account, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(cols).AddRow(row...))
	mock.ExpectQuery(`JOIN channels ch`).
		WithArgs(account, pgxmock.AnyArg()).
		WillReturnError(pgx.ErrNoRows)

	target, err := repo.GetSendTarget(context.Background(), account, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "psid-7", target.Conversation.RecipientExternalID)
	assert.Equal(t, "tok", target.Channel.AccessToken.Reveal())

	_, err = repo.GetSendTarget(context.Background(), account, uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordInbound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewConversationRepository(mock)
	channel, account := uuid.New(), uuid.New()
	at := time.Now()

	mock.ExpectQuery(`ON CONFLICT \(channel_id, recipient_external_id\) DO UPDATE`).
		WithArgs(pgxmock.AnyArg(), "page-1", "psid-3", "hello", at).
		WillReturnRows(pgxmock.NewRows(conversationCols).AddRow(conversationRow(channel, account, "psid-3", &at)...))
	mock.ExpectQuery(`INSERT INTO conversations`).
		WithArgs(pgxmock.AnyArg(), "page-x", "psid-3", "hello", at).
		WillReturnError(pgx.ErrNoRows)

	conv, err := repo.RecordInbound(context.Background(), domain.InboundMessage{
		ChannelExternalID: "page-1", SenderID: "psid-3", Text: "hello", At: at,
	})
	require.NoError(t, err)
	assert.Equal(t, "psid-3", conv.RecipientExternalID)

	_, err = repo.RecordInbound(context.Background(), domain.InboundMessage{
		ChannelExternalID: "page-x", SenderID: "psid-3", Text: "hello", At: at,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateLastMessage(t *testing.T) {
	mock := newMockPool(t)
	id := uuid.New()
	at := time.Now()
	mock.ExpectExec(`UPDATE conversations`).WithArgs(id, "hi", at).WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, NewConversationRepository(mock).UpdateLastMessage(context.Background(), id, "hi", at))
}
