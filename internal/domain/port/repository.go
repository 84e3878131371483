package port

import (
	"context"
	"errors"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/event"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/model"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/valueobject"
)

// ErrNotFound is returned by repositories when a lookup matches nothing.
var ErrNotFound = errors.New("not found")

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// CaseFileRepository persists and retrieves case files.
type CaseFileRepository interface {
	Save(ctx context.Context, cf model.CaseFile) error
	FindByID(ctx context.Context, tenantID, id string) (model.CaseFile, error)
	List(ctx context.Context, tenantID string, limit, offset int) ([]model.CaseFile, error)
	Delete(ctx context.Context, tenantID, id string) error
}

// EvaluationRepository persists and retrieves evaluation results.
type EvaluationRepository interface {
	Save(ctx context.Context, res model.EvaluationResult) error
	FindByID(ctx context.Context, tenantID, id string) (model.EvaluationResult, error)
	FindLatestByCaseFile(ctx context.Context, tenantID, caseFileID string) (model.EvaluationResult, error)
}

// RuleRepository supplies the active ordered rule set and the depth-weight
// policy as a read-only snapshot per evaluation run.
type RuleRepository interface {
	ActiveRules(ctx context.Context, tenantID string) ([]model.Rule, error)
	DepthWeightPolicy(ctx context.Context, tenantID string) (valueobject.DepthWeightPolicy, error)
}

// DocumentRepository persists and retrieves uploaded documents.
type DocumentRepository interface {
	Save(ctx context.Context, doc model.Document) error
	FindByID(ctx context.Context, tenantID, id string) (model.Document, error)
	// FindUnprocessed returns documents not in a terminal state, used by the
	// pipeline's startup recovery to re-enqueue interrupted work.
	FindUnprocessed(ctx context.Context) ([]model.Document, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
