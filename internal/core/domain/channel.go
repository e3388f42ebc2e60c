package domain

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

const redacted = "[REDACTED]"

// Credential is a channel access token. It never renders its value through
// fmt, slog or encoding/json; Reveal is the only way to read it.
type Credential string

func (c Credential) String() string { return redacted }

// LogValue implements slog.LogValuer.
func (c Credential) LogValue() slog.Value { return slog.StringValue(redacted) }

func (c Credential) MarshalJSON() ([]byte, error) { return []byte(`"` + redacted + `"`), nil }

// Reveal returns the raw token for the delivery request.
func (c Credential) Reveal() string { return string(c) }

// Empty reports whether no usable token is present.
func (c Credential) Empty() bool { return len(c) == 0 }

// Channel is a connected messaging endpoint, such as a business page.
type Channel struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	ExternalID  string
	Name        string
	AccessToken Credential
}

// Recipient is a party addressable on a channel by its channel-scoped id.
type Recipient struct {
	ExternalID string
}

// Conversation is the thread between a channel and one external party.
type Conversation struct {
	ID                  uuid.UUID
	ChannelID           uuid.UUID
	AccountID           uuid.UUID
	RecipientExternalID string
	RecipientName       string
	Labels              []string
	LastMessage         string
	LastMessageAt       *time.Time
	LastInboundAt       *time.Time
	CreatedAt           time.Time
}

// HasLabel reports whether the conversation carries label, case-insensitively.
func (c Conversation) HasLabel(label string) bool {
	for _, l := range c.Labels {
		if strings.EqualFold(l, label) {
			return true
		}
	}
	return false
}

// SendTarget is a conversation resolved together with what the interactive
// send path needs to deliver into it.
type SendTarget struct {
	Conversation Conversation
	Channel      Channel
}

// InboundMessage is a message received from an external party.
type InboundMessage struct {
	ChannelExternalID string
	SenderID          string
	Text              string
	At                time.Time
}
