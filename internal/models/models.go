package models

import (
	"time"

	"github.com/google/uuid"
)

// -- Error classification --

// ErrorKind classifies a failure for status mapping and client retry decisions.
type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindDecodeFailure ErrorKind = "decode-failure"
	KindSizeLimit     ErrorKind = "size-limit"
	KindInternal      ErrorKind = "internal"
)

// ErrorDetail is constructed at the point of failure detection and carried
// outward unchanged. Retryable is consulted only by the client wrapper.
type ErrorDetail struct {
	Kind      ErrorKind
	Message   string
	Retryable bool
}

func (e *ErrorDetail) Error() string {
	return string(e.Kind) + ": " + e.Message
}

// -- Request/result values --

// HashRequest is one validated, decoded hashing call. Built once per
// invocation and discarded when the response is written.
type HashRequest struct {
	ID        uuid.UUID
	Payload   []byte
	Algorithm string
}

// HashResult is the digest outcome for a single request.
type HashResult struct {
	Digest     string
	Algorithm  string
	ByteLength int64
	ComputedAt time.Time
}

// DigestRecord is what the audit store persists for one computed digest.
// The payload itself is never stored.
type DigestRecord struct {
	RequestID  uuid.UUID
	Algorithm  string
	Digest     string
	ByteLength int64
	ComputedAt time.Time
}

// -- Wire schema --

// Algorithm describes one registered digest algorithm for the listing endpoint.
type Algorithm struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SubmitRequest is the JSON document clients POST to the digest endpoint.
// Payload is the base64 encoding of the raw PDF bytes.
type SubmitRequest struct {
	Payload   string `json:"payload"`
	Algorithm string `json:"algorithm,omitempty"`
}

type SuccessResponse struct {
	Digest     string `json:"digest"`
	Algorithm  string `json:"algorithm"`
	ByteLength int64  `json:"byteLength"`
	Timestamp  string `json:"timestamp"`
	Status     string `json:"status"`
}

type ErrorResponse struct {
	Status    string `json:"status"`
	ErrorKind string `json:"errorKind"`
	Message   string `json:"message"`
}
