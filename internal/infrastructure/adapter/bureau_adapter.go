package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/model"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/port"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/valueobject"
	"github.com/msouga/VerificacionCrediticia-sub001/pkg/money"
)

// ---------------------------------------------------------------------------
// Credit bureau adapter – structured for real integration
// ---------------------------------------------------------------------------

// BureauConfig holds configuration for the bureau adapter.
type BureauConfig struct {
	// BaseURL is the base URL for the bureau API.
	BaseURL string
	// APIKey is the authentication credential for the bureau API.
	APIKey string
	// TimeoutSeconds is the HTTP client timeout.
	TimeoutSeconds int
	// MaxRetries is the maximum number of retry attempts on transient failures.
	MaxRetries int
	// RetryBackoffMs is the base backoff duration in milliseconds between retries.
	RetryBackoffMs int
}

// DefaultBureauConfig returns sensible defaults for development.
func DefaultBureauConfig() BureauConfig {
	return BureauConfig{
		BaseURL:        "https://api.burodecredito.example.com",
		APIKey:         "dev-api-key",
		TimeoutSeconds: 10,
		MaxRetries:     3,
		RetryBackoffMs: 200,
	}
}

// HTTPClient defines the interface for making requests to the bureau.
// This enables testing with mock implementations.
type HTTPClient interface {
	// FetchEntityProfile retrieves the profile for a CURP or RFC identifier.
	FetchEntityProfile(ctx context.Context, entityID string) (port.EntityProfile, error)
}

// BureauAdapter implements port.BureauGateway. It is designed to be swapped
// with a real HTTP-based implementation when integrating with the national
// bureau; with a nil client it serves deterministic simulated profiles.
type BureauAdapter struct {
	config BureauConfig
	client HTTPClient // nil = use simulated responses
}

// NewBureauAdapter creates a new adapter with the given configuration.
// If client is nil, simulated responses are used (suitable for development).
func NewBureauAdapter(config BureauConfig, client HTTPClient) *BureauAdapter {
	return &BureauAdapter{config: config, client: client}
}

// FetchProfile retrieves the bureau profile for the given identifier.
// It implements port.BureauGateway.
//
// When a real HTTPClient is provided, the adapter calls the bureau API with
// retry logic. Otherwise, it returns a deterministic simulated profile.
func (a *BureauAdapter) FetchProfile(ctx context.Context, entityID string) (port.EntityProfile, error) {
	if entityID == "" {
		return port.EntityProfile{}, fmt.Errorf("entity ID is required")
	}

	if a.client != nil {
		profile, err := a.fetchWithRetry(ctx, entityID)
		if err != nil {
			return port.EntityProfile{}, fmt.Errorf("bureau request failed: %w", err)
		}
		return profile, nil
	}

	return a.simulateProfile(entityID), nil
}

// fetchWithRetry calls the bureau API with exponential backoff retry logic.
func (a *BureauAdapter) fetchWithRetry(ctx context.Context, entityID string) (port.EntityProfile, error) {
	var lastErr error

	for attempt := 0; attempt <= a.config.MaxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter.
			backoff := time.Duration(a.config.RetryBackoffMs) * time.Millisecond * (1 << uint(attempt-1))
			jitter := time.Duration(rand.Int63n(int64(backoff) / 2))
			select {
			case <-ctx.Done():
				return port.EntityProfile{}, ctx.Err()
			case <-time.After(backoff + jitter):
			}
		}

		profile, err := a.client.FetchEntityProfile(ctx, entityID)
		if err == nil {
			return profile, nil
		}
		lastErr = err
	}

	return port.EntityProfile{}, fmt.Errorf("exhausted %d retries: %w", a.config.MaxRetries, lastErr)
}

// simulateProfile generates a deterministic simulated bureau profile.
// All attributes derive from the identifier hash, making traversals
// reproducible for testing. Identifiers of CURP length (18) are treated as
// persons, everything else as companies.
func (a *BureauAdapter) simulateProfile(entityID string) port.EntityProfile {
	h := sha256.Sum256([]byte(entityID))

	kind := valueobject.EntityKindCompany
	if len(entityID) == 18 {
		kind = valueobject.EntityKindPerson
	}

	labels := []string{"RISK LOW", "RISK MODERATE", "RISK HIGH", "RISK VERY HIGH"}
	label := labels[int(h[0])%len(labels)]

	debtCount := int(h[1]) % 3
	debts := make([]model.DebtRecord, 0, debtCount)
	for i := 0; i < debtCount; i++ {
		base := int64(binary.BigEndian.Uint32(h[4+i*4:8+i*4]) % 500_000)
		overdue := 0
		if h[2]%2 == 1 {
			overdue = int(h[3+i]) % 180
		}
		debts = append(debts, model.DebtRecord{
			Creditor:           fmt.Sprintf("BANCO-%02d", int(h[12+i])%20),
			DebtType:           "CREDIT_LINE",
			OriginalAmount:     money.New(decimal.NewFromInt(base+1_000), money.MXN),
			OutstandingBalance: money.New(decimal.NewFromInt(base), money.MXN),
			DaysOverdue:        overdue,
			Qualification:      label,
		})
	}

	relCount := int(h[16]) % 3
	relations := make([]port.EntityRelation, 0, relCount)
	for i := 0; i < relCount; i++ {
		relations = append(relations, port.EntityRelation{
			ID:           fmt.Sprintf("RFC%09d", binary.BigEndian.Uint32(h[20+i*4:24+i*4])%1_000_000_000),
			Kind:         valueobject.EntityKindCompany,
			Name:         fmt.Sprintf("EMPRESA SIMULADA %02d", int(h[24+i])%50),
			RelationType: "SHAREHOLDER",
		})
	}

	return port.EntityProfile{
		ID:        entityID,
		Kind:      kind,
		Name:      fmt.Sprintf("ENTIDAD %s", entityID),
		RiskLabel: label,
		Debts:     debts,
		Relations: relations,
	}
}
