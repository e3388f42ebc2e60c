// Package messenger delivers text messages through the Messenger Send API.
package messenger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"pagecast/internal/config/configs"
	"pagecast/internal/core/domain"
)

const maxResponseBytes = 1 << 20

// Client implements port.Messenger. Calls are paced by a shared limiter so
// broadcast and interactive sends draw from the same budget.
type Client struct {
	http     *http.Client
	endpoint string
	limiter  *rate.Limiter
	retryMax int
	logger   *slog.Logger
	backoff  func(attempt int) time.Duration
}

// NewClient builds a client from cfg. A zero SendInterval disables pacing.
func NewClient(cfg configs.Messenger, logger *slog.Logger) *Client {
	limit := rate.Inf
	if cfg.SendInterval > 0 {
		limit = rate.Every(cfg.SendInterval)
	}
	return &Client{
		http:     &http.Client{Timeout: cfg.Timeout},
		endpoint: cfg.Endpoint,
		limiter:  rate.NewLimiter(limit, 1),
		retryMax: cfg.RetryMax,
		logger:   logger,
		backoff: func(i int) time.Duration {
			return time.Duration(200+100*i) * time.Millisecond
		},
	}
}

type sendPayload struct {
	Recipient     payloadRecipient `json:"recipient"`
	Message       payloadMessage   `json:"message"`
	MessagingType string           `json:"messaging_type"`
	Tag           string           `json:"tag,omitempty"`
}

type payloadRecipient struct {
	ID string `json:"id"`
}

type payloadMessage struct {
	Text string `json:"text"`
}

type sendResponse struct {
	RecipientID string      `json:"recipient_id"`
	MessageID   string      `json:"message_id"`
	Error       *graphError `json:"error"`
}

type graphError struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	Code      int    `json:"code"`
	Subcode   int    `json:"error_subcode"`
	FBTraceID string `json:"fbtrace_id"`
}

// Send delivers one message. Transport failures are retried up to RetryMax
// times; recipient errors are final. Every attempt, retries included, waits
// for the shared limiter, and a retry additionally sleeps its backoff first.
func (c *Client) Send(ctx context.Context, req domain.SendRequest) domain.Delivery {
	var last domain.Delivery
	for i := 0; i <= c.retryMax; i++ {
		if i > 0 {
			c.logger.Debug("send retry",
				slog.String("recipient", req.RecipientID),
				slog.Int("attempt", i),
				slog.Any("error", last.Err),
			)
			select {
			case <-ctx.Done():
				return last
			case <-time.After(c.backoff(i - 1)):
			}
		}
		if err := c.limiter.Wait(ctx); err != nil {
			if i > 0 {
				return last
			}
			return transportError(err)
		}

		last = c.post(ctx, req)
		if last.Outcome != domain.DeliveryTransportError {
			return last
		}
	}
	return last
}

func (c *Client) post(ctx context.Context, req domain.SendRequest) domain.Delivery {
	payload := sendPayload{
		Recipient:     payloadRecipient{ID: req.RecipientID},
		Message:       payloadMessage{Text: req.Text},
		MessagingType: "RESPONSE",
	}
	if req.Tag != "" {
		payload.MessagingType = "MESSAGE_TAG"
		payload.Tag = string(req.Tag)
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return transportError(err)
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return transportError(fmt.Errorf("parse endpoint: %w", err))
	}
	q := u.Query()
	q.Set("access_token", req.Credential.Reveal())
	u.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return transportError(c.scrub(err))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return transportError(c.scrub(err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return transportError(fmt.Errorf("read response: %w", err))
	}

	var out sendResponse
	if err = json.Unmarshal(raw, &out); err != nil {
		return transportError(fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err))
	}
	if out.Error != nil && out.Error.Code != 0 {
		return domain.Delivery{
			Outcome: domain.DeliveryRecipientError,
			Code:    out.Error.Code,
			Subcode: out.Error.Subcode,
			Message: out.Error.Message,
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return transportError(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
	return domain.Delivery{Outcome: domain.DeliverySuccess, MessageID: out.MessageID}
}

// scrub strips the query string, which carries the access token, from
// errors produced by net/http.
func (c *Client) scrub(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		uerr.URL = c.endpoint
	}
	return err
}

func transportError(err error) domain.Delivery {
	return domain.Delivery{Outcome: domain.DeliveryTransportError, Message: err.Error(), Err: err}
}
