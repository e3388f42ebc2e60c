package httpadapter

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"pagecast/internal/core/domain"
)

const signatureHeader = "X-Hub-Signature-256"

type webhookPayload struct {
	Object string         `json:"object"`
	Entry  []webhookEntry `json:"entry"`
}

type webhookEntry struct {
	ID        string             `json:"id"`
	Messaging []webhookMessaging `json:"messaging"`
}

type webhookMessaging struct {
	Sender    webhookParty    `json:"sender"`
	Recipient webhookParty    `json:"recipient"`
	Timestamp int64           `json:"timestamp"`
	Message   *webhookMessage `json:"message"`
}

type webhookParty struct {
	ID string `json:"id"`
}

type webhookMessage struct {
	MID    string `json:"mid"`
	Text   string `json:"text"`
	IsEcho bool   `json:"is_echo"`
}

// handleWebhookVerify answers the platform's subscription handshake.
func (h *Handler) handleWebhookVerify(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	token := h.deps.Webhook.VerifyToken
	if q.Get("hub.mode") != "subscribe" || token == "" ||
		!hmac.Equal([]byte(q.Get("hub.verify_token")), []byte(token)) {
		w.WriteHeader(http.StatusForbidden)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	_, _ = io.WriteString(w, q.Get("hub.challenge"))
}

// handleWebhookEvent ingests inbound messages. Individual records that fail
// are logged and skipped so the platform does not redeliver the batch.
func (h *Handler) handleWebhookEvent(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if secret := h.deps.Webhook.AppSecret; secret != "" && !validSignature(secret, r.Header.Get(signatureHeader), body) {
		h.logger.Warn("webhook signature mismatch")
		w.WriteHeader(http.StatusForbidden)
		return
	}

	var payload webhookPayload
	if err = json.Unmarshal(body, &payload); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if payload.Object != "page" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	for _, entry := range payload.Entry {
		for _, ev := range entry.Messaging {
			if ev.Message == nil || ev.Message.IsEcho {
				continue
			}
			msg := domain.InboundMessage{
				ChannelExternalID: ev.Recipient.ID,
				SenderID:          ev.Sender.ID,
				Text:              ev.Message.Text,
			}
			if ev.Timestamp > 0 {
				msg.At = time.UnixMilli(ev.Timestamp).UTC()
			}
			if err = h.deps.Inbound.Record(r.Context(), msg); err != nil {
				h.logger.Error("record inbound message failed",
					slog.String("channel", msg.ChannelExternalID),
					slog.String("mid", ev.Message.MID),
					slog.Any("error", err),
				)
			}
		}
	}
	_, _ = io.WriteString(w, "EVENT_RECEIVED")
}

func validSignature(secret, header string, body []byte) bool {
	sig, ok := strings.CutPrefix(header, "sha256=")
	if !ok {
		return false
	}
	got, err := hex.DecodeString(sig)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}
