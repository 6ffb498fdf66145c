package transport

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mockapi/app/usecase"
	"mockapi/internal/domain/entity"
	"mockapi/internal/infrastructure/metrics"
	"mockapi/internal/infrastructure/recovery"
)

const recoverySuggestion = "The model response could not be parsed as JSON. Retry the request or rephrase the description; the raw response is included for manual salvage."

type MockAPIHandler struct {
	generator usecase.MockGenerator
	limiter   *FixedWindowLimiter
	logger    *slog.Logger
}

func NewMockAPIHandler(
	generator usecase.MockGenerator,
	limiter *FixedWindowLimiter,
	logger *slog.Logger,
) *MockAPIHandler {
	return &MockAPIHandler{
		generator: generator,
		limiter:   limiter,
		logger:    logger,
	}
}

// Middleware для метрик
func (h *MockAPIHandler) withMetrics(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := r.URL.Path
		method := r.Method

		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rw, r)

		duration := time.Since(start)
		statusStr := strconv.Itoa(rw.status)

		metrics.IncHTTPRequest(method, path)
		metrics.ObserveHTTPDuration(method, path, statusStr, duration)

		if rw.status >= 400 {
			metrics.IncHTTPError(method, path, statusStr)
		}
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (h *MockAPIHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/generate-mock-api", h.withMetrics(h.limiter.Limit(h.handleGenerate))).Methods(http.MethodPost)
	r.HandleFunc("/health", h.withMetrics(h.handleHealth)).Methods(http.MethodGet)

	// Prometheus
	r.Handle("/metrics", promhttp.Handler())
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type generateMockReq struct {
	Description string `json:"description"`
}

// POST /generate-mock-api
func (h *MockAPIHandler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	w.Header().Set("X-Request-Id", requestID)
	logger := h.logger.With("request_id", requestID)

	var req generateMockReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Description == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Description is required"})
		return
	}

	spec, err := h.generator.Generate(r.Context(), req.Description)
	if err != nil {
		h.writeGenerateError(w, logger, err)
		return
	}

	logger.Info("mock spec generated", "top_level_keys", len(spec))
	writeJSON(w, http.StatusOK, spec)
}

func (h *MockAPIHandler) writeGenerateError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var formatErr *recovery.FormatError
	var upstreamErr *entity.UpstreamError

	switch {
	case errors.Is(err, entity.ErrRateLimited):
		logger.Warn("provider rate limited", "err", err)
		writeJSON(w, http.StatusTooManyRequests, map[string]string{
			"error":   "AI service rate limit exceeded",
			"message": "Please try again later.",
		})

	case errors.As(err, &formatErr):
		logger.Error("generation produced unparseable response", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":       "Failed to parse generated mock API",
			"rawResponse": formatErr.OriginalText,
			"suggestion":  recoverySuggestion,
		})

	case errors.As(err, &upstreamErr):
		logger.Error("completion request failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Failed to generate mock API",
			"details": upstreamErr.Detail,
		})

	default:
		logger.Error("generation failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Failed to generate mock API",
			"details": err.Error(),
		})
	}
}

// GET /health
func (h *MockAPIHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"ok": true,
		"ts": time.Now().UTC(),
	}
	writeJSON(w, http.StatusOK, status)
}
