package outreach

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/outreachai/outreach-ai-platform/internal/http/middleware"
	"github.com/outreachai/outreach-ai-platform/internal/pipeline"
	"github.com/outreachai/outreach-ai-platform/internal/profile"
	"github.com/outreachai/outreach-ai-platform/pkg/logging"
)

// PipelineService is the slice of Service the handler needs.
type PipelineService interface {
	ParseProfile(ctx context.Context, credential string, req ParseProfileRequest) (*profile.LinkedInProfile, error)
	GenerateMessage(ctx context.Context, credential string, req GenerateMessageRequest) (string, error)
}

// Handler wires HTTP requests to the outreach pipelines.
type Handler struct {
	service PipelineService
	logger  *logging.Logger
}

// NewHandler creates an outreach handler.
func NewHandler(service PipelineService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ParseProfile handles POST /parse_profile: profile HTML in, structured
// LinkedInProfile out.
func (h *Handler) ParseProfile(w http.ResponseWriter, r *http.Request) {
	credential, ok := middleware.BearerFromContext(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	var req ParseProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode parse_profile request", "error", err)
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	parsed, err := h.service.ParseProfile(r.Context(), credential, req)
	if err != nil {
		h.writePipelineError(w, "parse_profile", err)
		return
	}

	h.writeJSON(w, http.StatusOK, parsed)
}

// Generate handles POST /generate: runs the full extraction, analysis,
// drafting pipeline.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	credential, ok := middleware.BearerFromContext(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	var req GenerateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode generate request", "error", err)
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message, err := h.service.GenerateMessage(r.Context(), credential, req)
	if err != nil {
		h.writePipelineError(w, "generate", err)
		return
	}

	h.writeJSON(w, http.StatusOK, GenerateMessageResponse{
		GeneratedMessage: message,
		Status:           "success",
	})
}

// GenerateLegacy handles POST /generate/legacy: the canned no-model behavior
// kept for early extension clients.
func (h *Handler) GenerateLegacy(w http.ResponseWriter, r *http.Request) {
	var req LegacyGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode legacy generate request", "error", err)
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.writeJSON(w, http.StatusOK, LegacyGenerate(req))
}

// writePipelineError maps pipeline failures onto the endpoint contract:
// missing inputs are the client's fault, everything else surfaces as a 503
// carrying the underlying cause. One boundary per endpoint, no partial
// results.
func (h *Handler) writePipelineError(w http.ResponseWriter, endpoint string, err error) {
	if errors.Is(err, pipeline.ErrMissingInput) {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.Error("pipeline failed", "endpoint", endpoint, "error", err)
	h.writeError(w, http.StatusServiceUnavailable, "pipeline failed: "+err.Error())
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", "error", err)
	}
}
