package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagecast/internal/core/domain"
)

func setup(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestPublishStoresSnapshot(t *testing.T) {
	mr, client := setup(t)
	pub := NewEventPublisher(client, "events", time.Hour)
	ctx := context.Background()

	ev := domain.CampaignEvent{
		Kind:            domain.EventProgress,
		CampaignID:      uuid.New(),
		Status:          domain.StatusInProgress,
		Progress:        43,
		TotalRecipients: 23,
		SentCount:       10,
		At:              time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, pub.Publish(ctx, ev))

	got, err := pub.Latest(ctx, ev.CampaignID)
	require.NoError(t, err)
	assert.Equal(t, ev, *got)
	assert.Equal(t, time.Hour, mr.TTL(snapshotKey(ev.CampaignID)))
}

func TestPublishReachesSubscribers(t *testing.T) {
	_, client := setup(t)
	pub := NewEventPublisher(client, "events", time.Minute)
	ctx := context.Background()

	sub := client.Subscribe(ctx, "events")
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	ev := domain.CampaignEvent{Kind: domain.EventSent, CampaignID: uuid.New(), Status: domain.StatusSent, Progress: 100}
	require.NoError(t, pub.Publish(ctx, ev))

	select {
	case msg := <-sub.Channel():
		var got domain.CampaignEvent
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, domain.EventSent, got.Kind)
		assert.Equal(t, ev.CampaignID, got.CampaignID)
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
	}
}

func TestLatestMissing(t *testing.T) {
	_, client := setup(t)
	_, err := NewEventPublisher(client, "events", time.Minute).Latest(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPublishFailsWhenServerDown(t *testing.T) {
	client := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 200 * time.Millisecond})
	defer client.Close()
	err := NewEventPublisher(client, "events", time.Minute).Publish(context.Background(), domain.CampaignEvent{CampaignID: uuid.New()})
	require.Error(t, err)
}
