package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/msouga/VerificacionCrediticia-sub001/pkg/events"
	pgshared "github.com/msouga/VerificacionCrediticia-sub001/pkg/postgres"
)

// OutboxRepo implements events.OutboxRepository. Entries are written in the
// same database the aggregates live in, so an event is durable as soon as
// the use case returns; the relay drains them to the broker afterwards.
type OutboxRepo struct {
	pool *pgxpool.Pool
}

// NewOutboxRepo creates a new repository backed by PostgreSQL.
func NewOutboxRepo(pool *pgxpool.Pool) *OutboxRepo {
	return &OutboxRepo{pool: pool}
}

// Store inserts the entries atomically. Duplicate event IDs are ignored so
// a retried save does not fail on events already recorded.
func (r *OutboxRepo) Store(ctx context.Context, entries []events.OutboxEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return pgshared.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		for _, entry := range entries {
			_, err := tx.Exec(ctx, `
				INSERT INTO outbox (id, aggregate_id, aggregate_type, event_type, payload, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
				ON CONFLICT (id) DO NOTHING
			`, entry.ID, entry.AggregateID, entry.AggregateType, entry.EventType, entry.Payload, entry.CreatedAt)
			if err != nil {
				return fmt.Errorf("insert outbox entry %s: %w", entry.ID, err)
			}
		}
		return nil
	})
}

// FetchUnpublished returns the oldest unpublished entries, bounded by
// batchSize, in creation order.
func (r *OutboxRepo) FetchUnpublished(ctx context.Context, batchSize int) ([]events.OutboxEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, aggregate_id, aggregate_type, event_type, payload, created_at, published_at
		FROM outbox
		WHERE published_at IS NULL
		ORDER BY created_at ASC
		LIMIT $1
	`, batchSize)
	if err != nil {
		return nil, fmt.Errorf("fetch unpublished outbox entries: %w", err)
	}
	defer rows.Close()

	var entries []events.OutboxEntry
	for rows.Next() {
		var entry events.OutboxEntry
		if err := rows.Scan(
			&entry.ID, &entry.AggregateID, &entry.AggregateType,
			&entry.EventType, &entry.Payload, &entry.CreatedAt, &entry.PublishedAt,
		); err != nil {
			return nil, fmt.Errorf("scan outbox entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// MarkPublished stamps the entries as delivered.
func (r *OutboxRepo) MarkPublished(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.pool.Exec(ctx, `
		UPDATE outbox SET published_at = $1 WHERE id = ANY($2)
	`, time.Now().UTC(), ids)
	if err != nil {
		return fmt.Errorf("mark outbox entries published: %w", err)
	}
	return nil
}
