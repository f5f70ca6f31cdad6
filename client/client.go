// Package client is the caller-side wrapper for the digest endpoint. It
// encodes the payload per the wire contract, bounds each attempt with a
// timeout, and retries transient failures with exponential backoff and
// jitter. Retrying is always safe: the server-side computation is a pure
// function of the submitted bytes.
package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"time"

	"pdfhash/internal/models"
)

// Config controls one Client. Zero values fall back to the defaults below.
type Config struct {
	Endpoint string
	APIKey   string

	// Timeout bounds a single attempt, not the whole call.
	Timeout       time.Duration
	MaxAttempts   int
	BackoffBase   time.Duration
	BackoffJitter time.Duration

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

const (
	defaultTimeout       = 10 * time.Second
	defaultMaxAttempts   = 3
	defaultBackoffBase   = 250 * time.Millisecond
	defaultBackoffJitter = 100 * time.Millisecond
)

// Outcome is the result of one call: either a HashResult or the last
// ErrorDetail, plus how many attempts were made. Attempts is always at least
// one and never exceeds the configured maximum.
type Outcome struct {
	Result   *models.HashResult
	Err      *models.ErrorDetail
	Attempts int
}

type Client struct {
	cfg  Config
	http *http.Client
}

// New creates a Client, filling unset Config fields with defaults.
func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = defaultBackoffBase
	}
	if cfg.BackoffJitter < 0 {
		cfg.BackoffJitter = defaultBackoffJitter
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{cfg: cfg, http: httpClient}
}

// HashBytes submits the given bytes for hashing. algorithm may be empty to
// use the server default.
func (c *Client) HashBytes(ctx context.Context, data []byte, algorithm string) Outcome {
	body, err := json.Marshal(models.SubmitRequest{
		Payload:   base64.StdEncoding.EncodeToString(data),
		Algorithm: algorithm,
	})
	if err != nil {
		return Outcome{
			Err:      &models.ErrorDetail{Kind: models.KindInternal, Message: fmt.Sprintf("failed to encode request: %v", err)},
			Attempts: 1,
		}
	}

	var last *models.ErrorDetail
	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return Outcome{
					Err:      &models.ErrorDetail{Kind: models.KindInternal, Message: ctx.Err().Error(), Retryable: true},
					Attempts: attempt - 1,
				}
			case <-time.After(c.backoff(attempt)):
			}
		}

		result, detail := c.doAttempt(ctx, body)
		if detail == nil {
			return Outcome{Result: result, Attempts: attempt}
		}
		last = detail
		if !detail.Retryable {
			return Outcome{Err: detail, Attempts: attempt}
		}
	}
	return Outcome{Err: last, Attempts: c.cfg.MaxAttempts}
}

// HashFile resolves a local file reference to bytes and submits it.
func (c *Client) HashFile(ctx context.Context, path string, algorithm string) Outcome {
	data, err := os.ReadFile(path)
	if err != nil {
		return Outcome{
			Err:      &models.ErrorDetail{Kind: models.KindValidation, Message: fmt.Sprintf("cannot read %s: %v", path, err)},
			Attempts: 1,
		}
	}
	return c.HashBytes(ctx, data, algorithm)
}

// backoff returns the sleep before the given attempt (attempt >= 2):
// base doubled per prior retry, plus uniform jitter.
func (c *Client) backoff(attempt int) time.Duration {
	delay := c.cfg.BackoffBase << (attempt - 2)
	if c.cfg.BackoffJitter > 0 {
		delay += time.Duration(rand.Int63n(int64(c.cfg.BackoffJitter)))
	}
	return delay
}

// doAttempt performs one request/response cycle. A cancelled or failed
// attempt leaves no state behind; the next attempt is fully independent.
func (c *Client) doAttempt(ctx context.Context, body []byte) (*models.HashResult, *models.ErrorDetail) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &models.ErrorDetail{Kind: models.KindValidation, Message: fmt.Sprintf("invalid endpoint: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("x-api-key", c.cfg.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Network and timeout failures are transient by classification.
		return nil, &models.ErrorDetail{Kind: models.KindInternal, Message: fmt.Sprintf("request failed: %v", err), Retryable: true}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &models.ErrorDetail{Kind: models.KindInternal, Message: fmt.Sprintf("failed to read response: %v", err), Retryable: true}
	}

	if resp.StatusCode >= 500 {
		return nil, &models.ErrorDetail{
			Kind:      models.KindInternal,
			Message:   errorMessage(respBody, resp.StatusCode),
			Retryable: true,
		}
	}
	if resp.StatusCode >= 400 {
		var errResp models.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.ErrorKind != "" {
			return nil, &models.ErrorDetail{Kind: models.ErrorKind(errResp.ErrorKind), Message: errResp.Message}
		}
		return nil, &models.ErrorDetail{Kind: models.KindValidation, Message: errorMessage(respBody, resp.StatusCode)}
	}

	var success models.SuccessResponse
	if err := json.Unmarshal(respBody, &success); err != nil || success.Digest == "" {
		return nil, &models.ErrorDetail{Kind: models.KindDecodeFailure, Message: "malformed success response from endpoint"}
	}

	computedAt, _ := time.Parse(time.RFC3339, success.Timestamp)
	return &models.HashResult{
		Digest:     success.Digest,
		Algorithm:  success.Algorithm,
		ByteLength: success.ByteLength,
		ComputedAt: computedAt,
	}, nil
}

func errorMessage(body []byte, status int) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return fmt.Sprintf("endpoint returned status %d", status)
}
