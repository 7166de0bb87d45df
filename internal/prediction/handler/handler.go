package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"picoplaca/internal/prediction"
	dErrors "picoplaca/pkg/domain-errors"
	"picoplaca/pkg/platform/httputil"
	"picoplaca/pkg/requestcontext"
)

// Service defines the interface for verdict evaluation.
type Service interface {
	Evaluate(ctx context.Context, req prediction.Request) (*prediction.Verdict, error)
}

// Handler wires the prediction endpoint to the prediction service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a prediction handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts prediction endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/predict", h.HandlePredict)
}

// HandlePredict handles POST /predict requests.
func (h *Handler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	var req PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	verdict, err := h.service.Evaluate(ctx, req.ToRequest())
	if err != nil {
		h.logger.ErrorContext(ctx, "prediction failed",
			"request_id", requestID,
			"plate", req.Plate,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "prediction served",
		"request_id", requestID,
		"plate", verdict.Plate.String(),
		"can_circulate", verdict.CanCirculate,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromVerdict(verdict))
}
