package httpadapter

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"pagecast/internal/core/domain"
)

// ProgressReader serves the latest cached state of a running campaign.
type ProgressReader interface {
	Latest(ctx context.Context, id uuid.UUID) (*domain.CampaignEvent, error)
}

type progressResponse struct {
	CampaignID      uuid.UUID `json:"campaign_id"`
	Status          string    `json:"status"`
	Progress        int       `json:"progress"`
	TotalRecipients int       `json:"total_recipients"`
	SentCount       int       `json:"sent_count"`
	FailedCount     int       `json:"failed_count"`
	FailureReason   string    `json:"failure_reason,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// handleProgress prefers the cached event and falls back to the store when
// the cache is absent, empty, or belongs to another account.
func (h *Handler) handleProgress(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid campaign id"})
		return
	}
	account := accountID(r)

	if h.deps.Progress != nil {
		ev, err := h.deps.Progress.Latest(r.Context(), id)
		switch {
		case err == nil && ev.AccountID == account:
			writeJSON(w, http.StatusOK, progressResponse{
				CampaignID:      ev.CampaignID,
				Status:          string(ev.Status),
				Progress:        ev.Progress,
				TotalRecipients: ev.TotalRecipients,
				SentCount:       ev.SentCount,
				FailedCount:     ev.FailedCount,
				FailureReason:   ev.Reason,
				UpdatedAt:       ev.At,
			})
			return
		case err != nil && !errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("progress cache read failed", slog.String("campaign_id", id.String()), slog.Any("error", err))
		}
	}

	c, err := h.deps.Campaigns.Get(r.Context(), account, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, progressResponse{
		CampaignID:      c.ID,
		Status:          string(c.Status),
		Progress:        c.Progress,
		TotalRecipients: c.TotalRecipients,
		SentCount:       c.SentCount,
		FailedCount:     c.FailedCount,
		FailureReason:   c.FailureReason,
		UpdatedAt:       c.UpdatedAt,
	})
}
