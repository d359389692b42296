package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"nicgate/internal/validation/models"
	"nicgate/internal/validation/service"
	"nicgate/pkg/domain"
	"nicgate/pkg/platform/httputil"
	"nicgate/pkg/requestcontext"
)

// Service defines the interface for validation operations.
type Service interface {
	Validate(ctx context.Context, raw string) (*service.Outcome, error)
	History(ctx context.Context, nic domain.NIC) ([]models.ValidationRecord, error)
}

// Handler wires validation endpoints to the validation service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a validation handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the public validation endpoint.
func (h *Handler) Register(r chi.Router) {
	r.Post("/validate", h.HandleValidate)
}

// RegisterProtected mounts endpoints that require admin auth.
func (h *Handler) RegisterProtected(r chi.Router) {
	r.Get("/validations/{nic}", h.HandleHistory)
}

// HandleValidate handles POST /validate requests.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[ValidateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	outcome, err := h.service.Validate(ctx, req.NIC)
	if err != nil {
		h.logger.ErrorContext(ctx, "validation failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "validation served",
		"request_id", requestID,
		"accepted", outcome.Record.Accepted,
		"cached", outcome.CacheHit,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromOutcome(outcome))
}

// HandleHistory handles GET /validations/{nic} requests.
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	nic, err := domain.ParseNIC(chi.URLParam(r, "nic"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	records, err := h.service.History(ctx, nic)
	if err != nil {
		h.logger.ErrorContext(ctx, "history lookup failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, HistoryResponse{
		NIC:     nic.String(),
		Count:   len(records),
		Records: records,
	})
}
