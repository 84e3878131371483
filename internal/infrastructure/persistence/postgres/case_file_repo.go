package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/model"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/valueobject"
)

// CaseFileRepo implements port.CaseFileRepository.
type CaseFileRepo struct {
	pool *pgxpool.Pool
}

// NewCaseFileRepo creates a new repository backed by PostgreSQL.
func NewCaseFileRepo(pool *pgxpool.Pool) *CaseFileRepo {
	return &CaseFileRepo{pool: pool}
}

// Save persists a case file (upsert by ID with optimistic locking).
func (r *CaseFileRepo) Save(ctx context.Context, cf model.CaseFile) error {
	query := `
		INSERT INTO case_files (
			id, tenant_id, applicant_id, company_id, applicant_name,
			company_name, status, latest_evaluation_id, version,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (id) DO UPDATE SET
			status               = EXCLUDED.status,
			latest_evaluation_id = EXCLUDED.latest_evaluation_id,
			version              = EXCLUDED.version,
			updated_at           = EXCLUDED.updated_at
		WHERE case_files.version = EXCLUDED.version - 1
	`
	tag, err := r.pool.Exec(ctx, query,
		cf.ID(), cf.TenantID(), cf.ApplicantID(), cf.CompanyID(),
		cf.ApplicantName(), cf.CompanyName(),
		cf.Status().String(), cf.LatestEvaluationID(),
		cf.Version(), cf.CreatedAt(), cf.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save case file: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on case file")
	}
	return nil
}

// FindByID retrieves a single case file.
func (r *CaseFileRepo) FindByID(ctx context.Context, tenantID, id string) (model.CaseFile, error) {
	query := `
		SELECT id, tenant_id, applicant_id, company_id, applicant_name,
		       company_name, status, latest_evaluation_id, version,
		       created_at, updated_at
		FROM case_files
		WHERE tenant_id = $1 AND id = $2
	`
	cf, err := scanCaseFile(r.pool.QueryRow(ctx, query, tenantID, id))
	if err != nil {
		return model.CaseFile{}, mapNoRows(err)
	}
	return cf, nil
}

// List retrieves case files for a tenant, newest first.
func (r *CaseFileRepo) List(ctx context.Context, tenantID string, limit, offset int) ([]model.CaseFile, error) {
	query := `
		SELECT id, tenant_id, applicant_id, company_id, applicant_name,
		       company_name, status, latest_evaluation_id, version,
		       created_at, updated_at
		FROM case_files
		WHERE tenant_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list case files: %w", err)
	}
	defer rows.Close()

	var result []model.CaseFile
	for rows.Next() {
		cf, err := scanCaseFile(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, cf)
	}
	return result, rows.Err()
}

// Delete removes a case file. Evaluations referencing it are kept for audit.
func (r *CaseFileRepo) Delete(ctx context.Context, tenantID, id string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM case_files WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete case file: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanCaseFile(s scannable) (model.CaseFile, error) {
	var (
		id, tenantID, applicantID, companyID string
		applicantName, companyName           string
		statusStr, latestEvaluationID        string
		version                              int
		createdAt, updatedAt                 time.Time
	)

	err := s.Scan(
		&id, &tenantID, &applicantID, &companyID,
		&applicantName, &companyName,
		&statusStr, &latestEvaluationID,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.CaseFile{}, fmt.Errorf("scan case file: %w", err)
	}

	status, err := valueobject.NewCaseFileStatus(statusStr)
	if err != nil {
		return model.CaseFile{}, fmt.Errorf("parse case file status: %w", err)
	}

	return model.ReconstructCaseFile(
		id, tenantID, applicantID, companyID,
		applicantName, companyName,
		status, latestEvaluationID,
		version, createdAt, updatedAt,
	), nil
}
