package kafka

import (
	"testing"
)

func TestNewProducer(t *testing.T) {
	cfg := Config{
		Brokers: []string{"localhost:9092", "localhost:9093"},
	}

	p := NewProducer(cfg)
	if p == nil {
		t.Fatal("expected non-nil producer")
	}
	if len(p.brokers) != 2 {
		t.Fatalf("expected 2 brokers, got %d", len(p.brokers))
	}
	if p.brokers[0] != "localhost:9092" {
		t.Errorf("expected broker localhost:9092, got %s", p.brokers[0])
	}
	if p.writers == nil {
		t.Fatal("expected writers map to be initialized")
	}
	if len(p.writers) != 0 {
		t.Errorf("expected empty writers map, got %d entries", len(p.writers))
	}
	if p.transport != nil {
		t.Error("expected nil transport when TLS and SASL are disabled")
	}
}

func TestNewProducerWithTLS(t *testing.T) {
	p := NewProducer(Config{
		Brokers: []string{"kafka:9092"},
		TLS:     true,
	})

	if p.transport == nil {
		t.Fatal("expected transport when TLS is enabled")
	}
	if p.transport.TLS == nil {
		t.Error("expected TLS config on transport")
	}
	if p.transport.SASL != nil {
		t.Error("expected no SASL mechanism when SASL is disabled")
	}
}

func TestNewProducerWithSASL(t *testing.T) {
	p := NewProducer(Config{
		Brokers:       []string{"kafka:9092"},
		SASLEnabled:   true,
		SASLMechanism: "SCRAM-SHA-256",
		SASLUsername:  "svc-verificacion",
		SASLPassword:  "secret",
	})

	if p.transport == nil {
		t.Fatal("expected transport when SASL is enabled")
	}
	if p.transport.SASL == nil {
		t.Error("expected SASL mechanism on transport")
	}
}

func TestResolveSASLUnknownMechanism(t *testing.T) {
	m := resolveSASL(Config{SASLMechanism: "GSSAPI"})
	if m != nil {
		t.Error("expected nil mechanism for unknown SASL mechanism")
	}
}

func TestMessageConstruction(t *testing.T) {
	msg := Message{
		Key:   []byte("case-001"),
		Value: []byte(`{"final_score":"72.5"}`),
		Headers: map[string]string{
			"event_type": "verification.evaluation.completed",
			"tenant_id":  "default",
		},
	}

	if string(msg.Key) != "case-001" {
		t.Errorf("expected key case-001, got %s", string(msg.Key))
	}
	if len(msg.Headers) != 2 {
		t.Fatalf("expected 2 headers, got %d", len(msg.Headers))
	}
	if msg.Headers["event_type"] != "verification.evaluation.completed" {
		t.Errorf("unexpected event_type header: %s", msg.Headers["event_type"])
	}
}

func TestGetOrCreateWriter(t *testing.T) {
	p := NewProducer(Config{
		Brokers: []string{"localhost:9092"},
	})

	w1 := p.getOrCreateWriter("topic-a")
	if w1 == nil {
		t.Fatal("expected non-nil writer")
	}

	// Same topic should return the same writer instance.
	w2 := p.getOrCreateWriter("topic-a")
	if w1 != w2 {
		t.Error("expected same writer instance for same topic")
	}

	// Different topic should return a different writer.
	w3 := p.getOrCreateWriter("topic-b")
	if w1 == w3 {
		t.Error("expected different writer instance for different topic")
	}

	if len(p.writers) != 2 {
		t.Errorf("expected 2 writers, got %d", len(p.writers))
	}
}

func TestProducerClose(t *testing.T) {
	p := NewProducer(Config{
		Brokers: []string{"localhost:9092"},
	})

	_ = p.getOrCreateWriter("topic-a")
	_ = p.getOrCreateWriter("topic-b")

	if len(p.writers) != 2 {
		t.Fatalf("expected 2 writers before close, got %d", len(p.writers))
	}

	err := p.Close()
	if err != nil {
		t.Fatalf("unexpected error on close: %v", err)
	}

	if len(p.writers) != 0 {
		t.Errorf("expected 0 writers after close, got %d", len(p.writers))
	}
}
