package domain

import (
	"time"

	"github.com/google/uuid"
)

// CampaignStatus is the lifecycle state of a broadcast campaign.
type CampaignStatus string

const (
	StatusDraft      CampaignStatus = "draft"
	StatusScheduled  CampaignStatus = "scheduled"
	StatusInProgress CampaignStatus = "in_progress"
	StatusSent       CampaignStatus = "sent"
	StatusFailed     CampaignStatus = "failed"
	StatusCancelled  CampaignStatus = "cancelled"
)

// IsTerminal reports whether no further transition may leave the status.
func (s CampaignStatus) IsTerminal() bool {
	return s == StatusSent || s == StatusFailed || s == StatusCancelled
}

// Valid reports whether s is one of the known statuses.
func (s CampaignStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusScheduled, StatusInProgress, StatusSent, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// High-level failure causes stored on failed campaigns.
const (
	ReasonMissingCredential = "missing channel credential"
	ReasonStalled           = "stalled run"
)

// Campaign is a bulk message scheduled for delivery to a channel audience.
// Templates carry only a name and a message and are never dispatched.
type Campaign struct {
	ID              uuid.UUID
	AccountID       uuid.UUID
	ChannelID       *uuid.UUID
	Name            string
	Audience        Audience
	Message         string
	Tag             MessageTag
	Status          CampaignStatus
	Progress        int // percent, 0..100
	TotalRecipients int
	SentCount       int
	FailedCount     int
	ScheduledAt     *time.Time
	ClaimedAt       *time.Time
	TimeSpent       *time.Duration // set on completion only
	FailureReason   string
	IsTemplate      bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Dispatchable reports whether a tick may claim the campaign at now. A
// campaign without a channel is still dispatchable; the run fails it.
func (c *Campaign) Dispatchable(now time.Time) bool {
	return !c.IsTemplate &&
		c.Status == StatusScheduled &&
		c.ScheduledAt != nil &&
		!c.ScheduledAt.After(now)
}

// CheckpointProgress computes the percentage persisted while a run is still
// in flight. It never reaches 100, which is reserved for terminal states.
func CheckpointProgress(sent, total int) int {
	if total <= 0 {
		return 0
	}
	p := sent * 100 / total
	if p > 99 {
		p = 99
	}
	if p < 0 {
		p = 0
	}
	return p
}

// TickOutcome summarises what a single dispatcher invocation did.
type TickOutcome string

const (
	TickIdle   TickOutcome = "idle"   // nothing due, or the claim was lost
	TickSent   TickOutcome = "sent"   // a campaign ran to completion
	TickFailed TickOutcome = "failed" // a campaign was claimed and failed fatally
	// TickAborted means a claimed run stopped on a store or resolver error and
	// was left in_progress.
	TickAborted TickOutcome = "aborted"
)

// TickResult is returned by one dispatcher invocation.
type TickResult struct {
	Outcome    TickOutcome
	CampaignID uuid.UUID
	Total      int
	Sent       int
	Failed     int
	Elapsed    time.Duration
}
