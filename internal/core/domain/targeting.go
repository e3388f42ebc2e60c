package domain

import (
	"fmt"
	"strings"
	"time"
)

// AudienceKind selects which parties of a channel a campaign targets.
type AudienceKind string

const (
	AudienceAll      AudienceKind = "all"
	AudienceActive   AudienceKind = "active-recently"
	AudienceInactive AudienceKind = "inactive-recently"
	AudienceLabel    AudienceKind = "label"
)

const labelPrefix = "label:"

// Audience is a parsed targeting rule. Label is set only for AudienceLabel.
type Audience struct {
	Kind  AudienceKind
	Label string
}

// tagRequired is the single rule table consulted by both the broadcast
// dispatcher and the interactive send path. Active-recently audiences are
// inside the free-response window by construction.
var tagRequired = map[AudienceKind]bool{
	AudienceAll:      true,
	AudienceActive:   false,
	AudienceInactive: true,
	AudienceLabel:    true,
}

// RequiresTag reports whether sends to this audience must carry a compliance
// tag. Unknown kinds require one.
func (a Audience) RequiresTag() bool {
	req, ok := tagRequired[a.Kind]
	if !ok {
		return true
	}
	return req
}

// String renders the audience in its stored form.
func (a Audience) String() string {
	if a.Kind == AudienceLabel {
		return labelPrefix + a.Label
	}
	return string(a.Kind)
}

// IsZero reports whether no rule is set.
func (a Audience) IsZero() bool { return a.Kind == "" }

// ParseAudience parses a stored or user supplied targeting rule. The legacy
// dashboard values active_24h, inactive_24h and vip are accepted as aliases.
func ParseAudience(s string) (Audience, error) {
	v := strings.TrimSpace(s)
	switch strings.ToLower(v) {
	case "all", "all users":
		return Audience{Kind: AudienceAll}, nil
	case string(AudienceActive), "active_24h":
		return Audience{Kind: AudienceActive}, nil
	case string(AudienceInactive), "inactive_24h":
		return Audience{Kind: AudienceInactive}, nil
	case "vip":
		return Audience{Kind: AudienceLabel, Label: "vip"}, nil
	}
	if len(v) > len(labelPrefix) && strings.EqualFold(v[:len(labelPrefix)], labelPrefix) {
		label := strings.TrimSpace(v[len(labelPrefix):])
		if label != "" {
			return Audience{Kind: AudienceLabel, Label: label}, nil
		}
	}
	return Audience{}, fmt.Errorf("%w: %q", ErrInvalidAudience, s)
}

// ConversationAudience places a single conversation into the recency rule
// that describes it, so the interactive send path shares the broadcast rule
// table. A conversation without inbound activity is inactive.
func ConversationAudience(lastInbound *time.Time, now time.Time, window time.Duration) Audience {
	if InsideWindow(lastInbound, now, window) {
		return Audience{Kind: AudienceActive}
	}
	return Audience{Kind: AudienceInactive}
}

// InsideWindow reports whether lastInbound falls within the trailing window
// ending at now.
func InsideWindow(lastInbound *time.Time, now time.Time, window time.Duration) bool {
	if lastInbound == nil {
		return false
	}
	return now.Sub(*lastInbound) <= window
}
