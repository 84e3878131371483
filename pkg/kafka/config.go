package kafka

// Config holds Kafka connection parameters.
type Config struct {
	Brokers []string

	// TLS enables TLS for broker connections.
	TLS bool

	// SASL configuration for authentication.
	SASLEnabled   bool
	SASLMechanism string // "PLAIN", "SCRAM-SHA-256" or "SCRAM-SHA-512"
	SASLUsername  string
	SASLPassword  string
}
