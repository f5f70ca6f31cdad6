package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfhash/internal/models"
)

func TestSuccessResponse(t *testing.T) {
	requestID := uuid.New()
	computedAt := time.Date(2026, 8, 23, 12, 30, 0, 0, time.UTC)

	resp := Success(&models.HashResult{
		Digest:     "14bcd090baf31edba64e9cbd8cdfc15f943344aa72cb3675ad8e91bfcbce03ad",
		Algorithm:  "sha256",
		ByteLength: 15,
		ComputedAt: computedAt,
	}, requestID)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
	assert.Equal(t, requestID.String(), resp.Headers["X-Request-Id"])

	var body models.SuccessResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, "sha256", body.Algorithm)
	assert.Equal(t, int64(15), body.ByteLength)
	assert.Equal(t, "2026-08-23T12:30:00Z", body.Timestamp)
}

func TestFailureStatusMapping(t *testing.T) {
	cases := []struct {
		kind models.ErrorKind
		want int
	}{
		{models.KindValidation, http.StatusBadRequest},
		{models.KindDecodeFailure, http.StatusBadRequest},
		{models.KindSizeLimit, http.StatusRequestEntityTooLarge},
		{models.KindInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			resp := Failure(&models.ErrorDetail{Kind: tc.kind, Message: "boom"}, uuid.New())
			assert.Equal(t, tc.want, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Headers["Content-Type"])
			assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])

			var body models.ErrorResponse
			require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
			assert.Equal(t, "error", body.Status)
			assert.Equal(t, string(tc.kind), body.ErrorKind)
			assert.Equal(t, "boom", body.Message)
		})
	}
}
