package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pagecast/internal/config/configs"
	"pagecast/internal/core/port"
)

// Deps are the use cases served over HTTP. Progress is optional; without it
// progress reads go to the campaign store.
type Deps struct {
	Campaigns port.CampaignUseCase
	Messages  port.MessageUseCase
	Inbound   port.InboundUseCase
	Dispatch  port.DispatchUseCase
	Progress  ProgressReader
	Webhook   configs.Messenger
}

// Handler is the inbound HTTP adapter. Campaign and conversation routes are
// scoped to the account named by the X-Account-ID header.
type Handler struct {
	deps   Deps
	logger *slog.Logger
	router chi.Router
}

func NewHandler(deps Deps, logger *slog.Logger) *Handler {
	h := &Handler{deps: deps, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RealIP, middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/webhook", h.handleWebhookVerify)
	r.Post("/webhook", h.handleWebhookEvent)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/dispatch/tick", h.handleDispatchTick)

		r.Group(func(r chi.Router) {
			r.Use(requireAccount)

			r.Route("/campaigns", func(r chi.Router) {
				r.Post("/", h.handleCreateCampaign)
				r.Get("/", h.handleListCampaigns)
				r.Post("/templates", h.handleCreateTemplate)
				r.Post("/preview", h.handlePreview)
				r.Get("/{id}", h.handleGetCampaign)
				r.Get("/{id}/progress", h.handleProgress)
				r.Post("/{id}/cancel", h.handleCancel)
				r.Post("/{id}/schedule", h.handleSchedule)
			})
			r.Post("/conversations/{id}/messages", h.handleSendMessage)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
