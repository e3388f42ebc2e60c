package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckpointProgress(t *testing.T) {
	assert.Equal(t, 0, CheckpointProgress(0, 0))
	assert.Equal(t, 43, CheckpointProgress(10, 23))
	assert.Equal(t, 86, CheckpointProgress(20, 23))
	assert.Equal(t, 99, CheckpointProgress(20, 20))
}

func TestCampaignDispatchable(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)
	ch := uuid.New()

	c := Campaign{Status: StatusScheduled, ChannelID: &ch, ScheduledAt: &past}
	assert.True(t, c.Dispatchable(now))

	c.ScheduledAt = &future
	assert.False(t, c.Dispatchable(now))

	c.ScheduledAt = &past
	c.Status = StatusCancelled
	assert.False(t, c.Dispatchable(now))

	tpl := Campaign{Status: StatusScheduled, IsTemplate: true, ScheduledAt: &past}
	assert.False(t, tpl.Dispatchable(now))

	orphan := Campaign{Status: StatusScheduled, ScheduledAt: &past}
	assert.True(t, orphan.Dispatchable(now))

	unscheduled := Campaign{Status: StatusScheduled, ChannelID: &ch}
	assert.False(t, unscheduled.Dispatchable(now))
}

func TestStatusIsTerminal(t *testing.T) {
	for _, s := range []CampaignStatus{StatusSent, StatusFailed, StatusCancelled} {
		assert.True(t, s.IsTerminal(), s)
	}
	for _, s := range []CampaignStatus{StatusDraft, StatusScheduled, StatusInProgress} {
		assert.False(t, s.IsTerminal(), s)
	}
}

func TestCredentialNeverRenders(t *testing.T) {
	ch := Channel{ID: uuid.New(), AccessToken: Credential("EAAB-secret-token")}

	assert.NotContains(t, fmt.Sprintf("%v %+v %s", ch, ch, ch.AccessToken), "secret")

	b, err := json.Marshal(ch)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret")

	var buf bytes.Buffer
	slog.New(slog.NewJSONHandler(&buf, nil)).Info("channel", slog.Any("token", ch.AccessToken))
	assert.NotContains(t, buf.String(), "secret")

	assert.Equal(t, "EAAB-secret-token", ch.AccessToken.Reveal())
}

func TestDeliveryError(t *testing.T) {
	assert.NoError(t, Delivery{Outcome: DeliverySuccess}.Error())

	err := Delivery{Outcome: DeliveryRecipientError, Code: 551, Message: "user unavailable"}.Error()
	var de *DeliveryError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 551, de.Code)

	err = Delivery{Outcome: DeliveryTransportError, Err: fmt.Errorf("timeout")}.Error()
	assert.EqualError(t, err, "delivery transport: timeout")
}
