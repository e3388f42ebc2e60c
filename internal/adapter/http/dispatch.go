package httpadapter

import (
	"net/http"

	"github.com/google/uuid"
)

type tickResponse struct {
	Outcome    string     `json:"outcome"`
	CampaignID *uuid.UUID `json:"campaign_id,omitempty"`
	Total      int        `json:"total"`
	Sent       int        `json:"sent"`
	Failed     int        `json:"failed"`
	ElapsedMs  int64      `json:"elapsed_ms"`
}

// handleDispatchTick runs one dispatcher invocation synchronously, for
// deployments that trigger dispatch from an external scheduler.
func (h *Handler) handleDispatchTick(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Dispatch.Tick(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := tickResponse{
		Outcome:   string(res.Outcome),
		Total:     res.Total,
		Sent:      res.Sent,
		Failed:    res.Failed,
		ElapsedMs: res.Elapsed.Milliseconds(),
	}
	if res.CampaignID != uuid.Nil {
		id := res.CampaignID
		out.CampaignID = &id
	}
	writeJSON(w, http.StatusOK, out)
}
