package handler

import (
	"bytes"
	"context"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"pdfhash/internal/config"
	"pdfhash/internal/hashing"
	"pdfhash/internal/models"
)

// DigestRecorder persists computed digests. Recording is best-effort: the
// digest is deterministic, so a lost record can be reproduced from the same
// payload at any time.
type DigestRecorder interface {
	Record(ctx context.Context, record models.DigestRecord) error
}

// Handler is the synchronous invocation pipeline: decode, hash, build
// response. One instance serves many concurrent invocations; it holds no
// per-request state.
type Handler struct {
	cfg      *config.Config
	log      *zap.Logger
	recorder DigestRecorder
}

// New creates a Handler. recorder may be nil when no audit store is
// configured.
func New(cfg *config.Config, log *zap.Logger, recorder DigestRecorder) *Handler {
	return &Handler{cfg: cfg, log: log, recorder: recorder}
}

// Handle processes one invocation event and always returns a well-formed
// response; the error return is always nil so the platform never substitutes
// a generic 502.
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	requestID := uuid.New()

	req, detail := Decode(event, h.cfg)
	if detail != nil {
		h.log.Info("request rejected",
			zap.String("request_id", requestID.String()),
			zap.String("error_kind", string(detail.Kind)),
			zap.String("message", detail.Message),
		)
		return Failure(detail, requestID), nil
	}
	req.ID = requestID

	hasher, err := hashing.GetHasher(req.Algorithm)
	if err != nil {
		// Validation already screened the selector; reaching this is a defect.
		h.log.Error("validated algorithm missing from registry",
			zap.String("request_id", requestID.String()),
			zap.String("algorithm", req.Algorithm),
			zap.Error(err),
		)
		return Failure(&models.ErrorDetail{
			Kind:    models.KindInternal,
			Message: "hashing algorithm unavailable",
		}, requestID), nil
	}

	digest, err := hasher.Sum(bytes.NewReader(req.Payload))
	if err != nil {
		h.log.Error("digest computation failed",
			zap.String("request_id", requestID.String()),
			zap.String("algorithm", req.Algorithm),
			zap.Error(err),
		)
		return Failure(&models.ErrorDetail{
			Kind:    models.KindInternal,
			Message: "failed to compute digest",
		}, requestID), nil
	}

	result := &models.HashResult{
		Digest:     digest,
		Algorithm:  req.Algorithm,
		ByteLength: int64(len(req.Payload)),
		ComputedAt: time.Now().UTC(),
	}

	if h.recorder != nil {
		record := models.DigestRecord{
			RequestID:  req.ID,
			Algorithm:  result.Algorithm,
			Digest:     result.Digest,
			ByteLength: result.ByteLength,
			ComputedAt: result.ComputedAt,
		}
		if err := h.recorder.Record(ctx, record); err != nil {
			h.log.Warn("failed to record digest",
				zap.String("request_id", requestID.String()),
				zap.Error(err),
			)
		}
	}

	return Success(result, requestID), nil
}
