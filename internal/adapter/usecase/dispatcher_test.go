package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pagecast/internal/core/domain"
	"pagecast/internal/core/port/mocks"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type dispatchFixture struct {
	store     *mocks.MockCampaignStore
	convs     *mocks.MockConversationRepository
	messenger *mocks.MockMessenger
	dispatch  *Dispatcher
	campaign  *domain.Campaign
	channel   *domain.Channel
}

func newDispatchFixture(t *testing.T, audience domain.Audience, tag domain.MessageTag) *dispatchFixture {
	t.Helper()
	f := &dispatchFixture{
		store:     mocks.NewMockCampaignStore(t),
		convs:     mocks.NewMockConversationRepository(t),
		messenger: mocks.NewMockMessenger(t),
	}
	f.channel = &domain.Channel{ID: uuid.New(), ExternalID: "page-1", AccessToken: "tok-secret"}
	due := testNow.Add(-time.Minute)
	f.campaign = &domain.Campaign{
		ID:          uuid.New(),
		AccountID:   uuid.New(),
		ChannelID:   &f.channel.ID,
		Name:        "spring sale",
		Audience:    audience,
		Message:     "hello",
		Tag:         tag,
		Status:      domain.StatusScheduled,
		ScheduledAt: &due,
	}

	resolver := NewAudienceResolver(f.convs, 24*time.Hour)
	resolver.now = func() time.Time { return testNow }
	f.dispatch = NewDispatcher(f.store, resolver, f.messenger, nil, discardLogger(), 10)
	f.dispatch.now = func() time.Time { return testNow }
	return f
}

func (f *dispatchFixture) expectClaim() {
	f.store.EXPECT().NextDue(mock.Anything, testNow).Return(f.campaign, nil).Once()
	f.store.EXPECT().TryClaim(mock.Anything, f.campaign.ID, testNow).Return(true, nil).Once()
}

func (f *dispatchFixture) expectAudience(n int) {
	f.store.EXPECT().GetChannel(mock.Anything, f.channel.ID).Return(f.channel, nil).Once()
	f.convs.EXPECT().ListByChannel(mock.Anything, f.channel.ID).Return(conversations(n, nil), nil).Once()
	f.store.EXPECT().SetTotal(mock.Anything, f.campaign.ID, n).Return(nil).Once()
}

func conversations(n int, lastInbound *time.Time) []domain.Conversation {
	out := make([]domain.Conversation, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, domain.Conversation{
			ID:                  uuid.New(),
			RecipientExternalID: fmt.Sprintf("psid-%d", i),
			LastInboundAt:       lastInbound,
		})
	}
	return out
}

func delivered(_ context.Context, req domain.SendRequest) domain.Delivery {
	return domain.Delivery{Outcome: domain.DeliverySuccess, MessageID: "m-" + req.RecipientID}
}

func TestTickIdleWhenNothingDue(t *testing.T) {
	f := newDispatchFixture(t, domain.Audience{Kind: domain.AudienceAll}, domain.TagAccountUpdate)
	f.store.EXPECT().NextDue(mock.Anything, testNow).Return(nil, nil).Once()

	res, err := f.dispatch.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.TickIdle, res.Outcome)
}

func TestTickLostClaimIsIdle(t *testing.T) {
	f := newDispatchFixture(t, domain.Audience{Kind: domain.AudienceAll}, domain.TagAccountUpdate)
	f.store.EXPECT().NextDue(mock.Anything, testNow).Return(f.campaign, nil).Once()
	f.store.EXPECT().TryClaim(mock.Anything, f.campaign.ID, testNow).Return(false, nil).Once()

	res, err := f.dispatch.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.TickIdle, res.Outcome)
	f.messenger.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestTickRecipientErrorDoesNotStopRun(t *testing.T) {
	f := newDispatchFixture(t, domain.Audience{Kind: domain.AudienceAll}, domain.TagAccountUpdate)
	f.expectClaim()
	f.expectAudience(10)

	f.messenger.EXPECT().Send(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, req domain.SendRequest) domain.Delivery {
			assert.Equal(t, domain.TagAccountUpdate, req.Tag)
			assert.Equal(t, "tok-secret", req.Credential.Reveal())
			if req.RecipientID == "psid-5" {
				return domain.Delivery{Outcome: domain.DeliveryRecipientError, Code: 551, Message: "user unavailable"}
			}
			return delivered(ctx, req)
		}).Times(10)
	f.store.EXPECT().MarkSent(mock.Anything, f.campaign.ID, 9, 1, mock.Anything).Return(nil).Once()

	res, err := f.dispatch.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.TickSent, res.Outcome)
	assert.Equal(t, f.campaign.ID, res.CampaignID)
	assert.Equal(t, 10, res.Total)
	assert.Equal(t, 9, res.Sent)
	assert.Equal(t, 1, res.Failed)
}

func TestTickCheckpointsEveryTenAttempts(t *testing.T) {
	f := newDispatchFixture(t, domain.Audience{Kind: domain.AudienceAll}, domain.TagAccountUpdate)
	f.expectClaim()
	f.expectAudience(23)

	f.messenger.EXPECT().Send(mock.Anything, mock.Anything).RunAndReturn(delivered).Times(23)
	f.store.EXPECT().UpdateProgress(mock.Anything, f.campaign.ID, 10, 0, 43).Return(nil).Once()
	f.store.EXPECT().UpdateProgress(mock.Anything, f.campaign.ID, 20, 0, 86).Return(nil).Once()
	f.store.EXPECT().MarkSent(mock.Anything, f.campaign.ID, 23, 0, mock.Anything).Return(nil).Once()

	res, err := f.dispatch.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.TickSent, res.Outcome)
	assert.Equal(t, 23, res.Sent)
	assert.LessOrEqual(t, res.Sent, res.Total)
}

func TestTickCheckpointCountsFailedAttempts(t *testing.T) {
	f := newDispatchFixture(t, domain.Audience{Kind: domain.AudienceAll}, domain.TagAccountUpdate)
	f.expectClaim()
	f.expectAudience(12)

	f.messenger.EXPECT().Send(mock.Anything, mock.Anything).
		Return(domain.Delivery{Outcome: domain.DeliveryRecipientError, Code: 551}).Times(12)
	f.store.EXPECT().UpdateProgress(mock.Anything, f.campaign.ID, 0, 10, 0).Return(nil).Once()
	f.store.EXPECT().MarkSent(mock.Anything, f.campaign.ID, 0, 12, mock.Anything).Return(nil).Once()

	res, err := f.dispatch.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.TickSent, res.Outcome)
	assert.Equal(t, 12, res.Failed)
}

func TestTickCheckpointFailureIsNotFatal(t *testing.T) {
	f := newDispatchFixture(t, domain.Audience{Kind: domain.AudienceAll}, domain.TagAccountUpdate)
	f.expectClaim()
	f.expectAudience(12)

	f.messenger.EXPECT().Send(mock.Anything, mock.Anything).RunAndReturn(delivered).Times(12)
	f.store.EXPECT().UpdateProgress(mock.Anything, f.campaign.ID, 10, 0, 83).Return(errors.New("conn reset")).Once()
	f.store.EXPECT().MarkSent(mock.Anything, f.campaign.ID, 12, 0, mock.Anything).Return(nil).Once()

	res, err := f.dispatch.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.TickSent, res.Outcome)
}

func TestTickMissingCredentialFailsCampaign(t *testing.T) {
	cases := map[string]func(f *dispatchFixture){
		"empty token": func(f *dispatchFixture) {
			f.channel.AccessToken = ""
			f.store.EXPECT().GetChannel(mock.Anything, f.channel.ID).Return(f.channel, nil).Once()
		},
		"channel gone": func(f *dispatchFixture) {
			f.store.EXPECT().GetChannel(mock.Anything, f.channel.ID).Return(nil, domain.ErrNotFound).Once()
		},
		"channel deleted": func(f *dispatchFixture) {
			f.campaign.ChannelID = nil
		},
	}
	for name, setup := range cases {
		t.Run(name, func(t *testing.T) {
			f := newDispatchFixture(t, domain.Audience{Kind: domain.AudienceAll}, domain.TagAccountUpdate)
			f.expectClaim()
			setup(f)
			f.store.EXPECT().MarkFailed(mock.Anything, f.campaign.ID, domain.ReasonMissingCredential).Return(nil).Once()

			res, err := f.dispatch.Tick(context.Background())
			require.NoError(t, err)
			assert.Equal(t, domain.TickFailed, res.Outcome)
			f.messenger.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
			f.convs.AssertNotCalled(t, "ListByChannel", mock.Anything, mock.Anything)
		})
	}
}

func TestTickSkipsCampaignNotYetDue(t *testing.T) {
	f := newDispatchFixture(t, domain.Audience{Kind: domain.AudienceAll}, "")
	later := testNow.Add(time.Hour)
	f.campaign.ScheduledAt = &later
	f.store.EXPECT().NextDue(mock.Anything, testNow).Return(f.campaign, nil).Once()

	res, err := f.dispatch.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.TickIdle, res.Outcome)
	f.store.AssertNotCalled(t, "TryClaim", mock.Anything, mock.Anything, mock.Anything)
}

func TestTickActiveRecentlyTargetsWindowOnly(t *testing.T) {
	f := newDispatchFixture(t, domain.Audience{Kind: domain.AudienceActive}, "")
	f.expectClaim()

	recent := testNow.Add(-2 * time.Hour)
	old := testNow.Add(-48 * time.Hour)
	convs := []domain.Conversation{
		{ID: uuid.New(), RecipientExternalID: "psid-a", LastInboundAt: &recent},
		{ID: uuid.New(), RecipientExternalID: "psid-b", LastInboundAt: &old},
		{ID: uuid.New(), RecipientExternalID: "psid-c", LastInboundAt: &recent},
	}
	f.store.EXPECT().GetChannel(mock.Anything, f.channel.ID).Return(f.channel, nil).Once()
	f.convs.EXPECT().ListByChannel(mock.Anything, f.channel.ID).Return(convs, nil).Once()
	f.store.EXPECT().SetTotal(mock.Anything, f.campaign.ID, 2).Return(nil).Once()

	var got []string
	f.messenger.EXPECT().Send(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, req domain.SendRequest) domain.Delivery {
			got = append(got, req.RecipientID)
			assert.Empty(t, req.Tag)
			return delivered(ctx, req)
		}).Times(2)
	f.store.EXPECT().MarkSent(mock.Anything, f.campaign.ID, 2, 0, mock.Anything).Return(nil).Once()

	res, err := f.dispatch.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"psid-a", "psid-c"}, got)
	assert.Equal(t, 2, res.Sent)
}

func TestTickUntaggedBroadcastNeverCallsMessenger(t *testing.T) {
	f := newDispatchFixture(t, domain.Audience{Kind: domain.AudienceLabel, Label: "vip"}, "")
	f.expectClaim()

	convs := conversations(3, nil)
	for i := range convs {
		convs[i].Labels = []string{"VIP"}
	}
	f.store.EXPECT().GetChannel(mock.Anything, f.channel.ID).Return(f.channel, nil).Once()
	f.convs.EXPECT().ListByChannel(mock.Anything, f.channel.ID).Return(convs, nil).Once()
	f.store.EXPECT().SetTotal(mock.Anything, f.campaign.ID, 3).Return(nil).Once()
	f.store.EXPECT().MarkSent(mock.Anything, f.campaign.ID, 0, 3, mock.Anything).Return(nil).Once()

	res, err := f.dispatch.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.TickSent, res.Outcome)
	assert.Equal(t, 3, res.Failed)
	f.messenger.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestTickEmptyAudienceCompletes(t *testing.T) {
	f := newDispatchFixture(t, domain.Audience{Kind: domain.AudienceAll}, domain.TagAccountUpdate)
	f.expectClaim()
	f.expectAudience(0)
	f.store.EXPECT().MarkSent(mock.Anything, f.campaign.ID, 0, 0, mock.Anything).Return(nil).Once()

	res, err := f.dispatch.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.TickSent, res.Outcome)
	assert.Zero(t, res.Total)
}

func TestTickStoreErrorAbortsRun(t *testing.T) {
	f := newDispatchFixture(t, domain.Audience{Kind: domain.AudienceAll}, domain.TagAccountUpdate)
	f.expectClaim()
	f.store.EXPECT().GetChannel(mock.Anything, f.channel.ID).Return(f.channel, nil).Once()
	f.convs.EXPECT().ListByChannel(mock.Anything, f.channel.ID).Return(nil, errors.New("db down")).Once()

	res, err := f.dispatch.Tick(context.Background())
	require.Error(t, err)
	assert.Equal(t, domain.TickAborted, res.Outcome)
	assert.Contains(t, err.Error(), "db down")
}

func TestTickCancelledContextStopsLoop(t *testing.T) {
	f := newDispatchFixture(t, domain.Audience{Kind: domain.AudienceAll}, domain.TagAccountUpdate)
	f.expectClaim()
	f.expectAudience(5)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	calls := 0
	f.messenger.EXPECT().Send(mock.Anything, mock.Anything).
		RunAndReturn(func(c context.Context, req domain.SendRequest) domain.Delivery {
			calls++
			if calls == 3 {
				cancel()
			}
			return delivered(c, req)
		}).Times(3)

	res, err := f.dispatch.Tick(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, domain.TickAborted, res.Outcome)
	assert.Equal(t, 3, res.Sent)
}

func TestTickPublishesEvents(t *testing.T) {
	f := newDispatchFixture(t, domain.Audience{Kind: domain.AudienceAll}, domain.TagAccountUpdate)
	events := mocks.NewMockEventPublisher(t)
	f.dispatch.events = events
	f.expectClaim()
	f.expectAudience(1)
	f.messenger.EXPECT().Send(mock.Anything, mock.Anything).RunAndReturn(delivered).Once()
	f.store.EXPECT().MarkSent(mock.Anything, f.campaign.ID, 1, 0, mock.Anything).Return(nil).Once()

	var kinds []domain.EventKind
	events.EXPECT().Publish(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, ev domain.CampaignEvent) error {
			kinds = append(kinds, ev.Kind)
			if ev.Kind == domain.EventSent {
				assert.Equal(t, 100, ev.Progress)
				assert.Equal(t, domain.StatusSent, ev.Status)
			}
			return errors.New("redis unavailable")
		}).Times(2)

	res, err := f.dispatch.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.TickSent, res.Outcome)
	assert.Equal(t, []domain.EventKind{domain.EventClaimed, domain.EventSent}, kinds)
}

func TestReconcilerFailsStaleRuns(t *testing.T) {
	store := mocks.NewMockCampaignStore(t)
	r := NewReconciler(store, nil, discardLogger(), 15*time.Minute)
	r.now = func() time.Time { return testNow }

	stale := []domain.Campaign{{ID: uuid.New(), Status: domain.StatusFailed, Progress: 100, FailureReason: domain.ReasonStalled}}
	store.EXPECT().FailStale(mock.Anything, testNow.Add(-15*time.Minute), domain.ReasonStalled).Return(stale, nil).Once()

	n, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestReconcilerStoreError(t *testing.T) {
	store := mocks.NewMockCampaignStore(t)
	r := NewReconciler(store, nil, discardLogger(), time.Minute)
	store.EXPECT().FailStale(mock.Anything, mock.Anything, domain.ReasonStalled).Return(nil, errors.New("boom")).Once()

	_, err := r.Run(context.Background())
	require.Error(t, err)
}
