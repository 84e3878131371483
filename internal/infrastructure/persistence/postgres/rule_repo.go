package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/model"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/valueobject"
)

// RuleRepo implements port.RuleRepository. Rules and the depth-weight policy
// are configuration data; each evaluation run takes a read-only snapshot.
type RuleRepo struct {
	pool *pgxpool.Pool
}

// NewRuleRepo creates a new repository backed by PostgreSQL.
func NewRuleRepo(pool *pgxpool.Pool) *RuleRepo {
	return &RuleRepo{pool: pool}
}

// ActiveRules returns the tenant's active rules in evaluation order.
func (r *RuleRepo) ActiveRules(ctx context.Context, tenantID string) ([]model.Rule, error) {
	query := `
		SELECT name, field, operator, value, weight, outcome, active,
		       eval_order, created_at
		FROM scoring_rules
		WHERE tenant_id = $1 AND active
		ORDER BY eval_order ASC, created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query scoring rules: %w", err)
	}
	defer rows.Close()

	var result []model.Rule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rule)
	}
	return result, rows.Err()
}

// DepthWeightPolicy returns the tenant's configured depth weights, or the
// default policy when none is configured.
func (r *RuleRepo) DepthWeightPolicy(ctx context.Context, tenantID string) (valueobject.DepthWeightPolicy, error) {
	var raw []string
	err := r.pool.QueryRow(ctx,
		`SELECT weights FROM depth_weight_policies WHERE tenant_id = $1`, tenantID,
	).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return valueobject.DefaultDepthWeightPolicy(), nil
	}
	if err != nil {
		return valueobject.DepthWeightPolicy{}, fmt.Errorf("query depth weight policy: %w", err)
	}

	weights := make([]decimal.Decimal, 0, len(raw))
	for _, s := range raw {
		w, err := decimal.NewFromString(s)
		if err != nil {
			return valueobject.DepthWeightPolicy{}, fmt.Errorf("parse depth weight %q: %w", s, err)
		}
		weights = append(weights, w)
	}
	return valueobject.NewDepthWeightPolicy(weights)
}

func scanRule(s scannable) (model.Rule, error) {
	var (
		name, field, operatorStr, outcomeStr string
		value, weight                        decimal.Decimal
		active                               bool
		order                                int
		createdAt                            time.Time
	)

	err := s.Scan(&name, &field, &operatorStr, &value, &weight, &outcomeStr, &active, &order, &createdAt)
	if err != nil {
		return model.Rule{}, fmt.Errorf("scan scoring rule: %w", err)
	}

	operator, err := valueobject.NewRuleOperator(operatorStr)
	if err != nil {
		return model.Rule{}, fmt.Errorf("parse rule operator: %w", err)
	}
	outcome, err := valueobject.NewRuleOutcome(outcomeStr)
	if err != nil {
		return model.Rule{}, fmt.Errorf("parse rule outcome: %w", err)
	}

	return model.NewRule(name, field, operator, value, weight, outcome, active, order, createdAt)
}
