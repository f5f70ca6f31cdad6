package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"pdfhash/internal/handler"
	"pdfhash/internal/hashing"
	"pdfhash/internal/models"
)

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	Core *handler.Handler
	Log  *zap.Logger

	// MaxBodyBytes bounds the raw request body read off the wire. The core
	// decoder enforces the decoded-payload ceiling; this guards the base64
	// wire form plus JSON framing.
	MaxBodyBytes int64
}

// NewHandlers creates a new Handlers struct.
func NewHandlers(core *handler.Handler, log *zap.Logger, maxBodyBytes int64) *Handlers {
	return &Handlers{Core: core, Log: log, MaxBodyBytes: maxBodyBytes}
}

// respondWithJSON is a helper to send a JSON response.
func (h *Handlers) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			h.Log.Error("failed to encode response", zap.Error(err))
		}
	}
}

// HandleCreateDigest adapts the HTTP request into an invocation event, runs
// the core pipeline, and replays the structured response. The same pipeline
// serves the Lambda entry point unchanged.
func (h *Handlers) HandleCreateDigest(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.MaxBodyBytes))
	if err != nil {
		h.respondWithJSON(w, http.StatusRequestEntityTooLarge, models.ErrorResponse{
			Status:    "error",
			ErrorKind: string(models.KindSizeLimit),
			Message:   "request body too large",
		})
		return
	}

	headers := make(map[string]string, len(r.Header))
	for name := range r.Header {
		headers[name] = r.Header.Get(name)
	}

	event := events.APIGatewayProxyRequest{
		HTTPMethod:      r.Method,
		Headers:         headers,
		Body:            string(body),
		IsBase64Encoded: false,
	}

	resp, _ := h.Core.Handle(r.Context(), event)

	for name, value := range resp.Headers {
		w.Header().Set(name, value)
	}
	w.WriteHeader(resp.StatusCode)
	if _, err := io.WriteString(w, resp.Body); err != nil {
		h.Log.Error("failed to write response body", zap.Error(err))
	}
}

// HandleAlgorithmListing returns a list of supported hash algorithms.
func (h *Handlers) HandleAlgorithmListing(w http.ResponseWriter, r *http.Request) {
	algorithms := hashing.ListSupportedAlgorithms()
	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{"algorithms": algorithms})
}
