//go:build integration

package integration

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/event"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/infrastructure/messaging"
	"github.com/msouga/VerificacionCrediticia-sub001/pkg/events"
	"github.com/msouga/VerificacionCrediticia-sub001/pkg/kafka"
	"github.com/msouga/VerificacionCrediticia-sub001/pkg/testutil"
)

// memoryOutbox keeps relay tests independent of postgres. Store/FetchUnpublished/
// MarkPublished match the table-backed repository semantics.
type memoryOutbox struct {
	mu      sync.Mutex
	entries []events.OutboxEntry
}

func (m *memoryOutbox) Store(_ context.Context, entries []events.OutboxEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entries...)
	return nil
}

func (m *memoryOutbox) FetchUnpublished(_ context.Context, limit int) ([]events.OutboxEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []events.OutboxEntry
	for _, e := range m.entries {
		if e.PublishedAt == nil {
			out = append(out, e)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (m *memoryOutbox) MarkPublished(_ context.Context, ids []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	for i := range m.entries {
		for _, id := range ids {
			if m.entries[i].ID == id {
				m.entries[i].PublishedAt = &now
			}
		}
	}
	return nil
}

func (m *memoryOutbox) unpublishedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.entries {
		if e.PublishedAt == nil {
			n++
		}
	}
	return n
}

func readOneMessage(t *testing.T, brokers []string, topic string) kafkago.Message {
	t.Helper()

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  "relay-test",
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	t.Cleanup(func() { _ = reader.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	msg, err := reader.ReadMessage(ctx)
	require.NoError(t, err, "expected a message on %s", topic)
	return msg
}

func TestOutboxRelay_DeliversToKafka(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	kc := testutil.NewKafkaContainer(ctx, t)
	t.Cleanup(func() { kc.Cleanup(t) })

	producer := kafka.NewProducer(kafka.Config{Brokers: kc.Brokers})
	t.Cleanup(func() { _ = producer.Close() })

	logger := slog.Default()
	outbox := &memoryOutbox{}

	publisher := messaging.NewOutboxPublisher(outbox, logger)
	evt := event.NewCaseFileCreated(testutil.TestCaseFileID.String(), testutil.TestTenantID,
		testutil.TestApplicantCURP, testutil.TestCompanyRFC)
	require.NoError(t, publisher.Publish(ctx, evt))
	require.Equal(t, 1, outbox.unpublishedCount())

	relay := messaging.NewOutboxRelay(outbox, producer, testutil.TestEventTopic,
		100*time.Millisecond, 10, logger)
	go relay.Run(ctx)

	msg := readOneMessage(t, kc.Brokers, testutil.TestEventTopic)
	assert.Equal(t, testutil.TestCaseFileID.String(), string(msg.Key))
	assert.NotEmpty(t, msg.Value)

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "verification.case_file.created", headers["event_type"])
	assert.Equal(t, evt.EventID(), headers["event_id"])

	require.Eventually(t, func() bool {
		return outbox.unpublishedCount() == 0
	}, 10*time.Second, 100*time.Millisecond, "relay should mark the entry published")
}

func TestKafkaEventPublisher_DirectDelivery(t *testing.T) {
	ctx := context.Background()

	kc := testutil.NewKafkaContainer(ctx, t)
	t.Cleanup(func() { kc.Cleanup(t) })

	producer := kafka.NewProducer(kafka.Config{Brokers: kc.Brokers})
	t.Cleanup(func() { _ = producer.Close() })

	publisher := messaging.NewKafkaEventPublisher(producer, testutil.TestEventTopic, slog.Default())

	evt := event.NewCaseFileClosed(testutil.TestCaseFileID.String(), testutil.TestTenantID, "resolved")
	require.NoError(t, publisher.Publish(ctx, evt))

	msg := readOneMessage(t, kc.Brokers, testutil.TestEventTopic)
	assert.Equal(t, testutil.TestCaseFileID.String(), string(msg.Key))
}
