package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pagecast/internal/core/domain"
	"pagecast/internal/core/port/mocks"
)

func newSendTarget(lastInbound *time.Time) *domain.SendTarget {
	return &domain.SendTarget{
		Conversation: domain.Conversation{ID: uuid.New(), RecipientExternalID: "psid-9", LastInboundAt: lastInbound},
		Channel:      domain.Channel{ID: uuid.New(), AccessToken: "page-token"},
	}
}

func newMessageUseCase(t *testing.T) (*MessageUseCase, *mocks.MockConversationRepository, *mocks.MockMessenger) {
	t.Helper()
	convs := mocks.NewMockConversationRepository(t)
	messenger := mocks.NewMockMessenger(t)
	u := NewMessageUseCase(convs, messenger, discardLogger(), 24*time.Hour)
	u.now = func() time.Time { return testNow }
	return u, convs, messenger
}

func TestSendOneInsideWindow(t *testing.T) {
	u, convs, messenger := newMessageUseCase(t)
	account := uuid.New()
	recent := testNow.Add(-time.Hour)
	target := newSendTarget(&recent)

	convs.EXPECT().GetSendTarget(mock.Anything, account, target.Conversation.ID).Return(target, nil).Once()
	messenger.EXPECT().Send(mock.Anything, domain.SendRequest{
		RecipientID: "psid-9", Text: "thanks!", Credential: "page-token",
	}).Return(domain.Delivery{Outcome: domain.DeliverySuccess, MessageID: "mid.1"}).Once()
	convs.EXPECT().UpdateLastMessage(mock.Anything, target.Conversation.ID, "thanks!", testNow).Return(nil).Once()

	conv, err := u.SendOne(context.Background(), account, target.Conversation.ID, "thanks!", "")
	require.NoError(t, err)
	assert.Equal(t, "thanks!", conv.LastMessage)
	require.NotNil(t, conv.LastMessageAt)
}

func TestSendOneOutsideWindowNeedsTag(t *testing.T) {
	u, convs, messenger := newMessageUseCase(t)
	account := uuid.New()
	old := testNow.Add(-72 * time.Hour)
	target := newSendTarget(&old)
	convs.EXPECT().GetSendTarget(mock.Anything, account, target.Conversation.ID).Return(target, nil).Once()

	_, err := u.SendOne(context.Background(), account, target.Conversation.ID, "ping", "")
	require.ErrorIs(t, err, domain.ErrTagRequired)
	messenger.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSendOneTaggedOutsideWindow(t *testing.T) {
	u, convs, messenger := newMessageUseCase(t)
	account := uuid.New()
	target := newSendTarget(nil)
	convs.EXPECT().GetSendTarget(mock.Anything, account, target.Conversation.ID).Return(target, nil).Once()
	messenger.EXPECT().Send(mock.Anything, mock.MatchedBy(func(r domain.SendRequest) bool {
		return r.Tag == domain.TagHumanAgent
	})).Return(domain.Delivery{Outcome: domain.DeliverySuccess}).Once()
	convs.EXPECT().UpdateLastMessage(mock.Anything, target.Conversation.ID, "follow-up", testNow).Return(nil).Once()

	_, err := u.SendOne(context.Background(), account, target.Conversation.ID, "follow-up", "human_agent")
	require.NoError(t, err)
}

func TestSendOneDeliveryErrors(t *testing.T) {
	account := uuid.New()
	recent := testNow.Add(-time.Minute)

	t.Run("recipient", func(t *testing.T) {
		u, convs, messenger := newMessageUseCase(t)
		target := newSendTarget(&recent)
		convs.EXPECT().GetSendTarget(mock.Anything, account, target.Conversation.ID).Return(target, nil).Once()
		messenger.EXPECT().Send(mock.Anything, mock.Anything).
			Return(domain.Delivery{Outcome: domain.DeliveryRecipientError, Code: 10, Message: "outside allowed window"}).Once()

		_, err := u.SendOne(context.Background(), account, target.Conversation.ID, "hi", "")
		var de *domain.DeliveryError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, 10, de.Code)
		assert.NotContains(t, err.Error(), "page-token")
	})

	t.Run("transport", func(t *testing.T) {
		u, convs, messenger := newMessageUseCase(t)
		target := newSendTarget(&recent)
		cause := errors.New("connection refused")
		convs.EXPECT().GetSendTarget(mock.Anything, account, target.Conversation.ID).Return(target, nil).Once()
		messenger.EXPECT().Send(mock.Anything, mock.Anything).
			Return(domain.Delivery{Outcome: domain.DeliveryTransportError, Err: cause}).Once()

		_, err := u.SendOne(context.Background(), account, target.Conversation.ID, "hi", "")
		require.ErrorIs(t, err, cause)
	})
}

func TestSendOneRejectsInput(t *testing.T) {
	u, convs, _ := newMessageUseCase(t)
	account, id := uuid.New(), uuid.New()

	_, err := u.SendOne(context.Background(), account, id, "  ", "")
	require.ErrorIs(t, err, domain.ErrEmptyMessage)

	_, err = u.SendOne(context.Background(), account, id, "hi", "PROMO")
	require.ErrorIs(t, err, domain.ErrUnknownTag)

	convs.EXPECT().GetSendTarget(mock.Anything, account, id).Return(nil, domain.ErrNotFound).Once()
	_, err = u.SendOne(context.Background(), account, id, "hi", "")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordInbound(t *testing.T) {
	convs := mocks.NewMockConversationRepository(t)
	u := NewInboundUseCase(convs, discardLogger())
	u.now = func() time.Time { return testNow }

	msg := domain.InboundMessage{ChannelExternalID: "page-1", SenderID: "psid-1", Text: "hello"}
	want := msg
	want.At = testNow
	convs.EXPECT().RecordInbound(mock.Anything, want).Return(&domain.Conversation{ID: uuid.New()}, nil).Once()
	require.NoError(t, u.Record(context.Background(), msg))

	unknown := domain.InboundMessage{ChannelExternalID: "page-x", SenderID: "psid-1", At: testNow}
	convs.EXPECT().RecordInbound(mock.Anything, unknown).Return(nil, domain.ErrNotFound).Once()
	require.NoError(t, u.Record(context.Background(), unknown))

	require.ErrorIs(t, u.Record(context.Background(), domain.InboundMessage{SenderID: "x"}), domain.ErrInvalidInbound)
}
