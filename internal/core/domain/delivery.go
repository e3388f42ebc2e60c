package domain

import "fmt"

// DeliveryOutcome classifies the result of one send call.
type DeliveryOutcome int

const (
	DeliverySuccess DeliveryOutcome = iota
	// DeliveryRecipientError is an error payload with a machine-readable code,
	// e.g. the recipient blocked the channel.
	DeliveryRecipientError
	// DeliveryTransportError covers network failures, timeouts and unreadable
	// responses.
	DeliveryTransportError
)

func (o DeliveryOutcome) String() string {
	switch o {
	case DeliverySuccess:
		return "success"
	case DeliveryRecipientError:
		return "recipient-error"
	case DeliveryTransportError:
		return "transport-error"
	}
	return "unknown"
}

// SendRequest is one outbound message.
type SendRequest struct {
	RecipientID string
	Text        string
	Tag         MessageTag
	Credential  Credential
}

// Delivery is the classified result of a send call.
type Delivery struct {
	Outcome   DeliveryOutcome
	MessageID string
	Code      int
	Subcode   int
	Message   string
	Err       error // transport errors only
}

// OK reports whether the message was accepted.
func (d Delivery) OK() bool { return d.Outcome == DeliverySuccess }

// Error converts a failed delivery into an error value. It returns nil on
// success.
func (d Delivery) Error() error {
	switch d.Outcome {
	case DeliverySuccess:
		return nil
	case DeliveryRecipientError:
		return &DeliveryError{Code: d.Code, Subcode: d.Subcode, Message: d.Message}
	}
	if d.Err != nil {
		return fmt.Errorf("delivery transport: %w", d.Err)
	}
	return fmt.Errorf("delivery transport: %s", d.Message)
}

// DeliveryError is a recipient-level rejection reported by the platform.
type DeliveryError struct {
	Code    int
	Subcode int
	Message string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery rejected (code %d): %s", e.Code, e.Message)
}
