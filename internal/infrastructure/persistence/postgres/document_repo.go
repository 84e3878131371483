package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/model"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/valueobject"
)

// DocumentRepo implements port.DocumentRepository.
type DocumentRepo struct {
	pool *pgxpool.Pool
}

// NewDocumentRepo creates a new repository backed by PostgreSQL.
func NewDocumentRepo(pool *pgxpool.Pool) *DocumentRepo {
	return &DocumentRepo{pool: pool}
}

// Save persists a document (upsert by ID with optimistic locking).
func (r *DocumentRepo) Save(ctx context.Context, doc model.Document) error {
	extracted, err := json.Marshal(doc.ExtractedFields())
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}

	query := `
		INSERT INTO documents (
			id, tenant_id, case_file_id, kind, storage_key, status,
			attempts, extracted, failure_reason, version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (id) DO UPDATE SET
			status         = EXCLUDED.status,
			attempts       = EXCLUDED.attempts,
			extracted      = EXCLUDED.extracted,
			failure_reason = EXCLUDED.failure_reason,
			version        = EXCLUDED.version,
			updated_at     = EXCLUDED.updated_at
		WHERE documents.version = EXCLUDED.version - 1
	`
	tag, err := r.pool.Exec(ctx, query,
		doc.ID(), doc.TenantID(), doc.CaseFileID(), doc.Kind(), doc.StorageKey(),
		doc.Status().String(), doc.Attempts(), extracted, doc.FailureReason(),
		doc.Version(), doc.CreatedAt(), doc.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on document")
	}
	return nil
}

// FindByID retrieves a single document.
func (r *DocumentRepo) FindByID(ctx context.Context, tenantID, id string) (model.Document, error) {
	query := documentSelect + ` WHERE tenant_id = $1 AND id = $2`
	doc, err := scanDocument(r.pool.QueryRow(ctx, query, tenantID, id))
	if err != nil {
		return model.Document{}, mapNoRows(err)
	}
	return doc, nil
}

// FindUnprocessed returns all documents not in a terminal state, oldest
// first. Used by the pipeline's startup recovery pass.
func (r *DocumentRepo) FindUnprocessed(ctx context.Context) ([]model.Document, error) {
	query := documentSelect + `
		WHERE status IN ('UPLOADED', 'PROCESSING')
		ORDER BY created_at ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query unprocessed documents: %w", err)
	}
	defer rows.Close()

	var result []model.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, doc)
	}
	return result, rows.Err()
}

const documentSelect = `
	SELECT id, tenant_id, case_file_id, kind, storage_key, status,
	       attempts, extracted, failure_reason, version, created_at, updated_at
	FROM documents
`

func scanDocument(s scannable) (model.Document, error) {
	var (
		id, tenantID, caseFileID string
		kind, storageKey         string
		statusStr                string
		attempts                 int
		extractedJSON            []byte
		failureReason            string
		version                  int
		createdAt, updatedAt     time.Time
	)

	err := s.Scan(
		&id, &tenantID, &caseFileID, &kind, &storageKey, &statusStr,
		&attempts, &extractedJSON, &failureReason, &version, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.Document{}, fmt.Errorf("scan document: %w", err)
	}

	status, err := valueobject.NewDocumentStatus(statusStr)
	if err != nil {
		return model.Document{}, fmt.Errorf("parse document status: %w", err)
	}

	var extracted map[string]string
	if len(extractedJSON) > 0 {
		if err := json.Unmarshal(extractedJSON, &extracted); err != nil {
			return model.Document{}, fmt.Errorf("decode extracted fields: %w", err)
		}
	}

	return model.ReconstructDocument(
		id, tenantID, caseFileID, kind, storageKey,
		status, attempts, extracted, failureReason,
		version, createdAt, updatedAt,
	), nil
}
