package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"pdfhash/internal/models"
)

// baseHeaders returns the headers every response carries. CORS mirrors the
// gateway-level contract so browsers can consume the endpoint directly.
func baseHeaders(requestID uuid.UUID) map[string]string {
	return map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "POST, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type, x-api-key",
		"X-Request-Id":                 requestID.String(),
	}
}

// Success builds the 200 response for a computed digest.
func Success(result *models.HashResult, requestID uuid.UUID) events.APIGatewayProxyResponse {
	body, _ := json.Marshal(models.SuccessResponse{
		Digest:     result.Digest,
		Algorithm:  result.Algorithm,
		ByteLength: result.ByteLength,
		Timestamp:  result.ComputedAt.UTC().Format(time.RFC3339),
		Status:     "success",
	})
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    baseHeaders(requestID),
		Body:       string(body),
	}
}

// Failure maps an ErrorDetail to its status code and JSON error body. The
// message is the classified one from the point of detection; internal stack
// detail never crosses this boundary.
func Failure(detail *models.ErrorDetail, requestID uuid.UUID) events.APIGatewayProxyResponse {
	body, _ := json.Marshal(models.ErrorResponse{
		Status:    "error",
		ErrorKind: string(detail.Kind),
		Message:   detail.Message,
	})
	return events.APIGatewayProxyResponse{
		StatusCode: statusFor(detail.Kind),
		Headers:    baseHeaders(requestID),
		Body:       string(body),
	}
}

func statusFor(kind models.ErrorKind) int {
	switch kind {
	case models.KindValidation, models.KindDecodeFailure:
		return http.StatusBadRequest
	case models.KindSizeLimit:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
