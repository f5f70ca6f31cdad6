package handler

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"pdfhash/internal/config"
	"pdfhash/internal/hashing"
	"pdfhash/internal/models"
)

// Decode parses an invocation event into a HashRequest. Pure transformation:
// rejected events are classified, never logged here.
func Decode(event events.APIGatewayProxyRequest, cfg *config.Config) (*models.HashRequest, *models.ErrorDetail) {
	if event.HTTPMethod != http.MethodPost {
		return nil, &models.ErrorDetail{
			Kind:    models.KindValidation,
			Message: fmt.Sprintf("method %s not allowed, use POST", event.HTTPMethod),
		}
	}

	if event.Body == "" {
		return nil, &models.ErrorDetail{
			Kind:    models.KindValidation,
			Message: "missing payload: request body is empty",
		}
	}

	rawBody := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, &models.ErrorDetail{
				Kind:    models.KindDecodeFailure,
				Message: "request body is not valid base64",
			}
		}
		rawBody = decoded
	}

	var submit models.SubmitRequest
	if err := json.Unmarshal(rawBody, &submit); err != nil {
		return nil, &models.ErrorDetail{
			Kind:    models.KindDecodeFailure,
			Message: "request body is not a valid JSON submit document",
		}
	}

	if submit.Payload == "" {
		return nil, &models.ErrorDetail{
			Kind:    models.KindValidation,
			Message: "missing payload: \"payload\" field is empty",
		}
	}

	algorithm := submit.Algorithm
	if algorithm == "" {
		algorithm = cfg.DefaultAlgorithm
	}
	if !cfg.AlgorithmAllowed(algorithm) || !hashing.Supported(algorithm) {
		return nil, &models.ErrorDetail{
			Kind:    models.KindValidation,
			Message: fmt.Sprintf("unsupported algorithm %q", algorithm),
		}
	}

	// Coarse guard before decoding: DecodedLen overestimates by at most two
	// bytes, so anything past max+2 cannot fit. The exact check happens on
	// the decoded bytes below.
	if int64(base64.StdEncoding.DecodedLen(len(submit.Payload))) > cfg.MaxPayloadBytes+2 {
		return nil, &models.ErrorDetail{
			Kind:    models.KindSizeLimit,
			Message: fmt.Sprintf("payload exceeds maximum size of %d bytes", cfg.MaxPayloadBytes),
		}
	}

	payload, err := base64.StdEncoding.DecodeString(submit.Payload)
	if err != nil {
		return nil, &models.ErrorDetail{
			Kind:    models.KindDecodeFailure,
			Message: "\"payload\" field is not valid base64",
		}
	}

	if len(payload) == 0 {
		return nil, &models.ErrorDetail{
			Kind:    models.KindValidation,
			Message: "missing payload: decoded payload is empty",
		}
	}
	if int64(len(payload)) > cfg.MaxPayloadBytes {
		return nil, &models.ErrorDetail{
			Kind:    models.KindSizeLimit,
			Message: fmt.Sprintf("payload of %d bytes exceeds maximum size of %d bytes", len(payload), cfg.MaxPayloadBytes),
		}
	}

	return &models.HashRequest{
		Payload:   payload,
		Algorithm: algorithm,
	}, nil
}
