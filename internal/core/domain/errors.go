package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrTagRequired     = errors.New("message tag is required outside the response window")
	ErrUnknownTag      = errors.New("unknown message tag")
	ErrInvalidAudience = errors.New("invalid audience")
	ErrInvalidCampaign = errors.New("invalid campaign")
	ErrNotCancellable  = errors.New("campaign is not scheduled")
	ErrNotSchedulable  = errors.New("campaign is not a draft")
	ErrEmptyMessage    = errors.New("message text is required")
	ErrNoCredential    = errors.New("channel has no access token")
	ErrInvalidInbound  = errors.New("invalid inbound message")
	ErrNotInProgress   = errors.New("campaign is no longer in progress")
)
