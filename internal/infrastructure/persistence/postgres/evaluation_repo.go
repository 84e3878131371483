package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/model"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/valueobject"
)

// EvaluationRepo implements port.EvaluationRepository. Evaluation rows are
// append-only; the graph snapshot and alert list are stored as JSONB.
type EvaluationRepo struct {
	pool *pgxpool.Pool
}

// NewEvaluationRepo creates a new repository backed by PostgreSQL.
func NewEvaluationRepo(pool *pgxpool.Pool) *EvaluationRepo {
	return &EvaluationRepo{pool: pool}
}

// Save persists an evaluation result. Results are immutable, so a plain
// insert suffices.
func (r *EvaluationRepo) Save(ctx context.Context, res model.EvaluationResult) error {
	graphJSON, err := encodeGraph(res.Graph())
	if err != nil {
		return fmt.Errorf("save evaluation: %w", err)
	}
	alertsJSON, err := marshalAlerts(res.Alerts())
	if err != nil {
		return fmt.Errorf("save evaluation: %w", err)
	}

	query := `
		INSERT INTO evaluations (
			id, tenant_id, case_file_id, applicant_id, company_id,
			final_score, recommendation, risk_level, alerts, graph, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`
	_, err = r.pool.Exec(ctx, query,
		res.ID(), res.TenantID(), res.CaseFileID(),
		res.ApplicantID(), res.CompanyID(),
		res.FinalScore(), res.Recommendation().String(), res.RiskLevel().String(),
		alertsJSON, graphJSON, res.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save evaluation: %w", err)
	}
	return nil
}

// FindByID retrieves a single evaluation result.
func (r *EvaluationRepo) FindByID(ctx context.Context, tenantID, id string) (model.EvaluationResult, error) {
	query := evaluationSelect + ` WHERE tenant_id = $1 AND id = $2`
	res, err := scanEvaluation(r.pool.QueryRow(ctx, query, tenantID, id))
	if err != nil {
		return model.EvaluationResult{}, mapNoRows(err)
	}
	return res, nil
}

// FindLatestByCaseFile retrieves the most recent evaluation of a case file.
func (r *EvaluationRepo) FindLatestByCaseFile(ctx context.Context, tenantID, caseFileID string) (model.EvaluationResult, error) {
	query := evaluationSelect + `
		WHERE tenant_id = $1 AND case_file_id = $2
		ORDER BY created_at DESC
		LIMIT 1
	`
	res, err := scanEvaluation(r.pool.QueryRow(ctx, query, tenantID, caseFileID))
	if err != nil {
		return model.EvaluationResult{}, mapNoRows(err)
	}
	return res, nil
}

const evaluationSelect = `
	SELECT id, tenant_id, case_file_id, applicant_id, company_id,
	       final_score, recommendation, risk_level, alerts, graph, created_at
	FROM evaluations
`

func scanEvaluation(s scannable) (model.EvaluationResult, error) {
	var (
		id, tenantID, caseFileID     string
		applicantID, companyID       string
		finalScore                   decimal.Decimal
		recommendationStr, levelStr  string
		alertsJSON, graphJSON        []byte
		createdAt                    time.Time
	)

	err := s.Scan(
		&id, &tenantID, &caseFileID,
		&applicantID, &companyID,
		&finalScore, &recommendationStr, &levelStr,
		&alertsJSON, &graphJSON, &createdAt,
	)
	if err != nil {
		return model.EvaluationResult{}, fmt.Errorf("scan evaluation: %w", err)
	}

	recommendation, err := valueobject.NewRecommendation(recommendationStr)
	if err != nil {
		return model.EvaluationResult{}, fmt.Errorf("parse recommendation: %w", err)
	}
	level, err := valueobject.NewRiskLevel(levelStr)
	if err != nil {
		return model.EvaluationResult{}, fmt.Errorf("parse risk level: %w", err)
	}
	alerts, err := unmarshalAlerts(alertsJSON)
	if err != nil {
		return model.EvaluationResult{}, err
	}
	graph, err := decodeGraph(graphJSON)
	if err != nil {
		return model.EvaluationResult{}, err
	}

	return model.ReconstructEvaluationResult(
		id, tenantID, caseFileID, applicantID, companyID,
		finalScore, recommendation, level,
		alerts, graph, createdAt,
	), nil
}
