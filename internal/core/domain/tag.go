package domain

import (
	"fmt"
	"strings"
)

// MessageTag is a platform policy label that permits sends outside the
// free-response window. The empty tag means "untagged".
type MessageTag string

const (
	TagAccountUpdate        MessageTag = "ACCOUNT_UPDATE"
	TagPostPurchaseUpdate   MessageTag = "POST_PURCHASE_UPDATE"
	TagConfirmedEventUpdate MessageTag = "CONFIRMED_EVENT_UPDATE"
	TagHumanAgent           MessageTag = "HUMAN_AGENT"
)

// Tags lists the accepted vocabulary.
var Tags = []MessageTag{TagAccountUpdate, TagPostPurchaseUpdate, TagConfirmedEventUpdate, TagHumanAgent}

// ParseMessageTag validates s against the vocabulary. Blank input yields the
// empty tag.
func ParseMessageTag(s string) (MessageTag, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	if v == "" {
		return "", nil
	}
	for _, t := range Tags {
		if MessageTag(v) == t {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTag, s)
}

// CheckSendAllowed is the local compliance check applied before any external
// call.
func CheckSendAllowed(required bool, tag MessageTag) error {
	if required && tag == "" {
		return ErrTagRequired
	}
	return nil
}
