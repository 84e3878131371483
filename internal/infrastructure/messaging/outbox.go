package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/event"
	"github.com/msouga/VerificacionCrediticia-sub001/pkg/events"
	"github.com/msouga/VerificacionCrediticia-sub001/pkg/kafka"
)

// ---------------------------------------------------------------------------
// Transactional outbox delivery
// ---------------------------------------------------------------------------

// OutboxPublisher implements port.EventPublisher by recording events in the
// outbox table instead of talking to the broker. Delivery is the relay's
// job, so a broker outage never fails a use case.
type OutboxPublisher struct {
	outbox events.OutboxRepository
	logger *slog.Logger
}

// NewOutboxPublisher creates a publisher that stores events for the relay.
func NewOutboxPublisher(outbox events.OutboxRepository, logger *slog.Logger) *OutboxPublisher {
	return &OutboxPublisher{outbox: outbox, logger: logger}
}

// Publish converts the events to outbox entries and stores them.
func (p *OutboxPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if len(evts) == 0 {
		return nil
	}
	entries := make([]events.OutboxEntry, 0, len(evts))
	for _, evt := range evts {
		entries = append(entries, events.NewOutboxEntry(evt))
		p.logger.Debug("staging domain event",
			"event_type", evt.EventType(),
			"aggregate_id", evt.AggregateID(),
		)
	}
	if err := p.outbox.Store(ctx, entries); err != nil {
		return fmt.Errorf("store outbox entries: %w", err)
	}
	return nil
}

// OutboxRelay drains unpublished outbox entries to Kafka on a fixed
// interval. Entries are only marked published after the broker accepts the
// batch, so delivery is at-least-once and consumers must deduplicate by
// event ID.
type OutboxRelay struct {
	outbox    events.OutboxRepository
	producer  *kafka.Producer
	topic     string
	interval  time.Duration
	batchSize int
	logger    *slog.Logger
}

// NewOutboxRelay creates a relay publishing to the given topic.
func NewOutboxRelay(
	outbox events.OutboxRepository,
	producer *kafka.Producer,
	topic string,
	interval time.Duration,
	batchSize int,
	logger *slog.Logger,
) *OutboxRelay {
	return &OutboxRelay{
		outbox:    outbox,
		producer:  producer,
		topic:     topic,
		interval:  interval,
		batchSize: batchSize,
		logger:    logger,
	}
}

// Run polls until ctx is cancelled. Failures are logged and retried on the
// next tick; the entries stay unpublished until the broker takes them.
func (r *OutboxRelay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.drainOnce(ctx); err != nil {
				r.logger.Error("outbox relay pass failed", "error", err)
			}
		}
	}
}

func (r *OutboxRelay) drainOnce(ctx context.Context) error {
	entries, err := r.outbox.FetchUnpublished(ctx, r.batchSize)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(entries))
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		messages = append(messages, kafka.Message{
			Key:   []byte(entry.AggregateID),
			Value: entry.Payload,
			Headers: map[string]string{
				"event_type": entry.EventType,
				"event_id":   entry.ID,
			},
		})
		ids = append(ids, entry.ID)
	}

	if err := r.producer.Publish(ctx, r.topic, messages...); err != nil {
		return fmt.Errorf("publish outbox batch to %s: %w", r.topic, err)
	}
	if err := r.outbox.MarkPublished(ctx, ids); err != nil {
		return fmt.Errorf("mark outbox batch published: %w", err)
	}

	r.logger.Info("outbox batch delivered", "count", len(ids), "topic", r.topic)
	return nil
}
