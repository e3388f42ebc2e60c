package httpadapter

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"pagecast/internal/core/domain"
	"pagecast/internal/core/port"
)

type createCampaignRequest struct {
	ChannelID   uuid.UUID  `json:"channel_id"`
	Name        string     `json:"name"`
	Audience    string     `json:"audience"`
	Message     string     `json:"message"`
	Tag         string     `json:"tag"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	SendNow     bool       `json:"send_now"`
}

type templateRequest struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

type scheduleRequest struct {
	ScheduledAt time.Time `json:"scheduled_at"`
}

type previewRequest struct {
	ChannelID uuid.UUID `json:"channel_id"`
	Audience  string    `json:"audience"`
}

type campaignResponse struct {
	ID              uuid.UUID  `json:"id"`
	ChannelID       *uuid.UUID `json:"channel_id,omitempty"`
	Name            string     `json:"name"`
	Audience        string     `json:"audience,omitempty"`
	Message         string     `json:"message"`
	Tag             string     `json:"tag,omitempty"`
	Status          string     `json:"status"`
	Progress        int        `json:"progress"`
	TotalRecipients int        `json:"total_recipients"`
	SentCount       int        `json:"sent_count"`
	FailedCount     int        `json:"failed_count"`
	ScheduledAt     *time.Time `json:"scheduled_at,omitempty"`
	ClaimedAt       *time.Time `json:"claimed_at,omitempty"`
	TimeSpentMs     *int64     `json:"time_spent_ms,omitempty"`
	FailureReason   string     `json:"failure_reason,omitempty"`
	IsTemplate      bool       `json:"is_template"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	out := campaignResponse{
		ID:              c.ID,
		ChannelID:       c.ChannelID,
		Name:            c.Name,
		Message:         c.Message,
		Tag:             string(c.Tag),
		Status:          string(c.Status),
		Progress:        c.Progress,
		TotalRecipients: c.TotalRecipients,
		SentCount:       c.SentCount,
		FailedCount:     c.FailedCount,
		ScheduledAt:     c.ScheduledAt,
		ClaimedAt:       c.ClaimedAt,
		FailureReason:   c.FailureReason,
		IsTemplate:      c.IsTemplate,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
	if !c.Audience.IsZero() {
		out.Audience = c.Audience.String()
	}
	if c.TimeSpent != nil {
		ms := c.TimeSpent.Milliseconds()
		out.TimeSpentMs = &ms
	}
	return out
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}
	c, err := h.deps.Campaigns.Create(r.Context(), port.CreateCampaign{
		AccountID:   accountID(r),
		ChannelID:   req.ChannelID,
		Name:        req.Name,
		Audience:    req.Audience,
		Message:     req.Message,
		Tag:         req.Tag,
		ScheduledAt: req.ScheduledAt,
		SendNow:     req.SendNow,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCampaignResponse(c))
}

func (h *Handler) handleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req templateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}
	c, err := h.deps.Campaigns.CreateTemplate(r.Context(), accountID(r), req.Name, req.Message)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCampaignResponse(c))
}

// handleListCampaigns accepts optional status, templates, limit and offset
// query parameters.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := port.ListFilter{Status: domain.CampaignStatus(q.Get("status"))}
	var err error
	if v := q.Get("templates"); v != "" {
		if f.Templates, err = strconv.ParseBool(v); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid templates flag"})
			return
		}
	}
	if v := q.Get("limit"); v != "" {
		if f.Limit, err = strconv.Atoi(v); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid limit"})
			return
		}
	}
	if v := q.Get("offset"); v != "" {
		if f.Offset, err = strconv.Atoi(v); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid offset"})
			return
		}
	}

	list, err := h.deps.Campaigns.List(r.Context(), accountID(r), f)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]campaignResponse, 0, len(list))
	for i := range list {
		out = append(out, toCampaignResponse(&list[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid campaign id"})
		return
	}
	c, err := h.deps.Campaigns.Get(r.Context(), accountID(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid campaign id"})
		return
	}
	if err := h.deps.Campaigns.Cancel(r.Context(), accountID(r), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid campaign id"})
		return
	}
	var req scheduleRequest
	if err := decodeJSON(w, r, &req); err != nil || req.ScheduledAt.IsZero() {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "scheduled_at is required"})
		return
	}
	if err := h.deps.Campaigns.Schedule(r.Context(), accountID(r), id, req.ScheduledAt); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}
	p, err := h.deps.Campaigns.Preview(r.Context(), accountID(r), req.ChannelID, req.Audience)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"audience":       p.Audience,
		"tag_required":   p.TagRequired,
		"total":          p.Estimate.Total,
		"inside_window":  p.Estimate.InsideWindow,
		"outside_window": p.Estimate.OutsideWindow,
	})
}
