package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventKind names a campaign state change observed by subscribers.
type EventKind string

const (
	EventClaimed   EventKind = "claimed"
	EventProgress  EventKind = "progress"
	EventSent      EventKind = "sent"
	EventFailed    EventKind = "failed"
	EventCancelled EventKind = "cancelled"
)

// CampaignEvent is published whenever the dispatcher writes campaign state,
// and when an operator cancels a scheduled campaign.
type CampaignEvent struct {
	Kind            EventKind      `json:"kind"`
	CampaignID      uuid.UUID      `json:"campaign_id"`
	AccountID       uuid.UUID      `json:"account_id"`
	Status          CampaignStatus `json:"status"`
	Progress        int            `json:"progress"`
	TotalRecipients int            `json:"total_recipients"`
	SentCount       int            `json:"sent_count"`
	FailedCount     int            `json:"failed_count"`
	Reason          string         `json:"reason,omitempty"`
	At              time.Time      `json:"at"`
}
