package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"pdfhash/internal/models"
)

// DigestStore is the write-only audit log of computed digests. There is no
// read path: invocations stay independent and nothing is cached across
// requests.
type DigestStore struct {
	pool *pgxpool.Pool
}

func NewDigestStore(pool *pgxpool.Pool) *DigestStore {
	return &DigestStore{pool: pool}
}

// Record inserts one digest audit row. The payload itself is never persisted.
func (s *DigestStore) Record(ctx context.Context, record models.DigestRecord) error {
	_, err := s.pool.Exec(
		ctx,
		`INSERT INTO digest_audit (request_uuid, algorithm, digest, byte_length, computed_at) VALUES ($1, $2, $3, $4, $5)`,
		record.RequestID,
		record.Algorithm,
		record.Digest,
		record.ByteLength,
		record.ComputedAt,
	)
	if err != nil {
		return fmt.Errorf("db error inserting digest record: %w", err)
	}
	return nil
}
