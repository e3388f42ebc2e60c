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
	"pagecast/internal/core/port"
	"pagecast/internal/core/port/mocks"
)

func newCampaignUseCase(t *testing.T) (*CampaignUseCase, *mocks.MockCampaignRepository, *mocks.MockConversationRepository) {
	t.Helper()
	repo := mocks.NewMockCampaignRepository(t)
	convs := mocks.NewMockConversationRepository(t)
	resolver := NewAudienceResolver(convs, 24*time.Hour)
	resolver.now = func() time.Time { return testNow }
	u := NewCampaignUseCase(repo, resolver, nil, discardLogger())
	u.now = func() time.Time { return testNow }
	return u, repo, convs
}

func TestCreateCampaignSendNow(t *testing.T) {
	u, repo, convs := newCampaignUseCase(t)
	account, channel := uuid.New(), uuid.New()

	repo.EXPECT().ChannelOwned(mock.Anything, account, channel).Return(true, nil).Once()
	convs.EXPECT().ListByChannel(mock.Anything, channel).Return(conversations(4, nil), nil).Once()
	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Campaign")).Return(nil).Once()

	c, err := u.Create(context.Background(), port.CreateCampaign{
		AccountID: account,
		ChannelID: channel,
		Name:      "  launch ",
		Audience:  "all users",
		Message:   "we are live",
		Tag:       "account_update",
		SendNow:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "launch", c.Name)
	assert.Equal(t, domain.StatusScheduled, c.Status)
	assert.Equal(t, domain.TagAccountUpdate, c.Tag)
	assert.Equal(t, domain.AudienceAll, c.Audience.Kind)
	require.NotNil(t, c.ScheduledAt)
	assert.Equal(t, testNow, *c.ScheduledAt)
	assert.Equal(t, 4, c.TotalRecipients)
	assert.True(t, c.Dispatchable(testNow))
}

func TestCreateCampaignWithoutScheduleIsDraft(t *testing.T) {
	u, repo, convs := newCampaignUseCase(t)
	account, channel := uuid.New(), uuid.New()

	repo.EXPECT().ChannelOwned(mock.Anything, account, channel).Return(true, nil).Once()
	convs.EXPECT().ListByChannel(mock.Anything, channel).Return(nil, errors.New("timeout")).Once()
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

	c, err := u.Create(context.Background(), port.CreateCampaign{
		AccountID: account, ChannelID: channel, Name: "n", Audience: "active_24h", Message: "m",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, c.Status)
	assert.Nil(t, c.ScheduledAt)
	assert.Zero(t, c.TotalRecipients)
}

func TestCreateCampaignValidation(t *testing.T) {
	base := port.CreateCampaign{Name: "n", Audience: "all", Message: "m", Tag: "HUMAN_AGENT"}
	cases := []struct {
		name   string
		mutate func(*port.CreateCampaign)
		want   error
	}{
		{"blank name", func(r *port.CreateCampaign) { r.Name = " " }, domain.ErrInvalidCampaign},
		{"blank message", func(r *port.CreateCampaign) { r.Message = "" }, domain.ErrEmptyMessage},
		{"bad audience", func(r *port.CreateCampaign) { r.Audience = "everyone" }, domain.ErrInvalidAudience},
		{"bad tag", func(r *port.CreateCampaign) { r.Tag = "PROMO" }, domain.ErrUnknownTag},
		{"untagged outside window", func(r *port.CreateCampaign) { r.Tag = "" }, domain.ErrTagRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u, _, _ := newCampaignUseCase(t)
			req := base
			tc.mutate(&req)
			_, err := u.Create(context.Background(), req)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCreateCampaignForeignChannel(t *testing.T) {
	u, repo, _ := newCampaignUseCase(t)
	repo.EXPECT().ChannelOwned(mock.Anything, mock.Anything, mock.Anything).Return(false, nil).Once()

	_, err := u.Create(context.Background(), port.CreateCampaign{Name: "n", Audience: "active-recently", Message: "m"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateTemplate(t *testing.T) {
	u, repo, _ := newCampaignUseCase(t)
	account := uuid.New()
	repo.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, c *domain.Campaign) error {
			assert.True(t, c.IsTemplate)
			assert.Nil(t, c.ChannelID)
			assert.Nil(t, c.ScheduledAt)
			return nil
		}).Once()

	c, err := u.CreateTemplate(context.Background(), account, "welcome", "hi there")
	require.NoError(t, err)
	assert.False(t, c.Dispatchable(testNow))
}

func TestCancelCampaign(t *testing.T) {
	account, id := uuid.New(), uuid.New()

	t.Run("scheduled", func(t *testing.T) {
		u, repo, _ := newCampaignUseCase(t)
		repo.EXPECT().Cancel(mock.Anything, account, id).Return(true, nil).Once()
		require.NoError(t, u.Cancel(context.Background(), account, id))
	})

	t.Run("publishes terminal state", func(t *testing.T) {
		u, repo, _ := newCampaignUseCase(t)
		events := mocks.NewMockEventPublisher(t)
		u.events = events

		repo.EXPECT().Cancel(mock.Anything, account, id).Return(true, nil).Once()
		repo.EXPECT().Get(mock.Anything, account, id).Return(&domain.Campaign{
			ID: id, AccountID: account, Status: domain.StatusCancelled, Progress: 100, TotalRecipients: 40,
		}, nil).Once()

		var got domain.CampaignEvent
		events.EXPECT().Publish(mock.Anything, mock.AnythingOfType("domain.CampaignEvent")).
			Run(func(_ context.Context, ev domain.CampaignEvent) { got = ev }).
			Return(nil).Once()

		require.NoError(t, u.Cancel(context.Background(), account, id))
		assert.Equal(t, domain.EventCancelled, got.Kind)
		assert.Equal(t, domain.StatusCancelled, got.Status)
		assert.Equal(t, 100, got.Progress)
		assert.True(t, got.Status.IsTerminal())
		assert.Equal(t, 40, got.TotalRecipients)
		assert.Equal(t, testNow, got.At)
	})

	t.Run("already claimed", func(t *testing.T) {
		u, repo, _ := newCampaignUseCase(t)
		repo.EXPECT().Cancel(mock.Anything, account, id).Return(false, nil).Once()
		repo.EXPECT().Get(mock.Anything, account, id).
			Return(&domain.Campaign{ID: id, Status: domain.StatusInProgress}, nil).Once()
		require.ErrorIs(t, u.Cancel(context.Background(), account, id), domain.ErrNotCancellable)
	})

	t.Run("unknown", func(t *testing.T) {
		u, repo, _ := newCampaignUseCase(t)
		repo.EXPECT().Cancel(mock.Anything, account, id).Return(false, nil).Once()
		repo.EXPECT().Get(mock.Anything, account, id).Return(nil, domain.ErrNotFound).Once()
		require.ErrorIs(t, u.Cancel(context.Background(), account, id), domain.ErrNotFound)
	})
}

func TestScheduleDraft(t *testing.T) {
	account, id := uuid.New(), uuid.New()
	at := testNow.Add(time.Hour)

	u, repo, _ := newCampaignUseCase(t)
	repo.EXPECT().Schedule(mock.Anything, account, id, at).Return(false, nil).Once()
	repo.EXPECT().Get(mock.Anything, account, id).Return(&domain.Campaign{ID: id, Status: domain.StatusSent}, nil).Once()
	require.ErrorIs(t, u.Schedule(context.Background(), account, id, at), domain.ErrNotSchedulable)
}

func TestListClampsLimit(t *testing.T) {
	u, repo, _ := newCampaignUseCase(t)
	account := uuid.New()
	repo.EXPECT().List(mock.Anything, account, port.ListFilter{Limit: maxListLimit}).Return(nil, nil).Once()

	_, err := u.List(context.Background(), account, port.ListFilter{Limit: 5000})
	require.NoError(t, err)

	_, err = u.List(context.Background(), account, port.ListFilter{Status: "archived"})
	require.ErrorIs(t, err, domain.ErrInvalidCampaign)
}

func TestPreviewSplitsWindow(t *testing.T) {
	u, repo, convs := newCampaignUseCase(t)
	account, channel := uuid.New(), uuid.New()
	recent := testNow.Add(-time.Hour)

	list := append(conversations(2, &recent), conversations(3, nil)...)
	repo.EXPECT().ChannelOwned(mock.Anything, account, channel).Return(true, nil).Once()
	convs.EXPECT().ListByChannel(mock.Anything, channel).Return(list, nil).Once()

	p, err := u.Preview(context.Background(), account, channel, "all")
	require.NoError(t, err)
	assert.True(t, p.TagRequired)
	assert.Equal(t, "all", p.Audience)
	assert.Equal(t, port.AudienceEstimate{Total: 3, InsideWindow: 2, OutsideWindow: 1}, p.Estimate)
}
