package port

import (
	"context"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/model"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// External service ports
// ---------------------------------------------------------------------------

// EntityRelation is one direct relationship reported by the bureau:
// legal representation, shareholding, or a related-company listing.
type EntityRelation struct {
	ID           string
	Kind         valueobject.EntityKind
	Name         string
	RelationType string
}

// EntityProfile is everything the bureau returns for a single identifier:
// the entity's own risk label, its debts, and its direct relations.
type EntityProfile struct {
	ID        string
	Kind      valueobject.EntityKind
	Name      string
	RiskLabel string
	Debts     []model.DebtRecord
	Relations []EntityRelation
}

// BureauGateway fetches entity profiles from the external credit bureau.
// Failures are per-call: the explorer treats a failing seed lookup as fatal
// and a failing mid-traversal lookup as a prunable branch.
type BureauGateway interface {
	FetchProfile(ctx context.Context, entityID string) (EntityProfile, error)
}

// DocumentStore fetches uploaded document bytes from durable storage.
// Retried pipeline items are fetched fresh from here, never replayed from
// memory.
type DocumentStore interface {
	Fetch(ctx context.Context, storageKey string) ([]byte, error)
}

// DocumentExtractor runs OCR extraction over document bytes and returns the
// applicant identity fields found in it.
type DocumentExtractor interface {
	Extract(ctx context.Context, kind string, data []byte) (map[string]string, error)
}
