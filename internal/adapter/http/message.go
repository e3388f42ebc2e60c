package httpadapter

import (
	"net/http"
	"time"
)

type sendMessageRequest struct {
	Text string `json:"text"`
	Tag  string `json:"tag"`
}

type conversationResponse struct {
	ID            string     `json:"id"`
	Recipient     string     `json:"recipient_id"`
	LastMessage   string     `json:"last_message"`
	LastMessageAt *time.Time `json:"last_message_at,omitempty"`
}

func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid conversation id"})
		return
	}
	var req sendMessageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}
	conv, err := h.deps.Messages.SendOne(r.Context(), accountID(r), id, req.Text, req.Tag)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, conversationResponse{
		ID:            conv.ID.String(),
		Recipient:     conv.RecipientExternalID,
		LastMessage:   conv.LastMessage,
		LastMessageAt: conv.LastMessageAt,
	})
}
