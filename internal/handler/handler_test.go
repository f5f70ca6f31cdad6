package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pdfhash/internal/models"
)

type captureRecorder struct {
	records []models.DigestRecord
	err     error
}

func (r *captureRecorder) Record(_ context.Context, record models.DigestRecord) error {
	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, record)
	return nil
}

// Reference digest for the minimal PDF byte sequence used throughout the
// tests; any conforming implementation must reproduce it byte for byte.
const minimalPDFDigest = "14bcd090baf31edba64e9cbd8cdfc15f943344aa72cb3675ad8e91bfcbce03ad"

func TestHandleSuccess(t *testing.T) {
	recorder := &captureRecorder{}
	h := New(testConfig(), zap.NewNop(), recorder)

	payload := []byte("%PDF-1.4\n%%EOF\n")
	resp, err := h.Handle(context.Background(), submitEvent(t, payload, ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Headers["X-Request-Id"])

	var body models.SuccessResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.Equal(t, minimalPDFDigest, body.Digest)
	assert.Equal(t, "sha256", body.Algorithm)
	assert.Equal(t, int64(len(payload)), body.ByteLength)
	assert.Equal(t, "success", body.Status)

	require.Len(t, recorder.records, 1)
	assert.Equal(t, minimalPDFDigest, recorder.records[0].Digest)
	assert.Equal(t, int64(len(payload)), recorder.records[0].ByteLength)
}

func TestHandleDeterminism(t *testing.T) {
	h := New(testConfig(), zap.NewNop(), nil)
	event := submitEvent(t, []byte("%PDF-1.4\n%%EOF\n"), "")

	first, err := h.Handle(context.Background(), event)
	require.NoError(t, err)
	second, err := h.Handle(context.Background(), event)
	require.NoError(t, err)

	var a, b models.SuccessResponse
	require.NoError(t, json.Unmarshal([]byte(first.Body), &a))
	require.NoError(t, json.Unmarshal([]byte(second.Body), &b))
	assert.Equal(t, a.Digest, b.Digest)
}

func TestHandleValidationFailure(t *testing.T) {
	h := New(testConfig(), zap.NewNop(), nil)

	resp, err := h.Handle(context.Background(), submitEvent(t, []byte("x"), "md5"))
	require.NoError(t, err, "handler must never surface a raw error to the platform")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "validation", body.ErrorKind)
}

func TestHandleRecorderFailureDoesNotFailRequest(t *testing.T) {
	recorder := &captureRecorder{err: errors.New("db down")}
	h := New(testConfig(), zap.NewNop(), recorder)

	resp, err := h.Handle(context.Background(), submitEvent(t, []byte("%PDF-1.4\n%%EOF\n"), ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandleWithoutRecorder(t *testing.T) {
	h := New(testConfig(), zap.NewNop(), nil)

	resp, err := h.Handle(context.Background(), submitEvent(t, []byte("%PDF-1.4\n%%EOF\n"), "sha512"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.SuccessResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.Equal(t, "sha512", body.Algorithm)
	assert.Len(t, body.Digest, 128)
}
