package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Rule – declarative comparison rule (configuration data)
// ---------------------------------------------------------------------------

// Rule compares a named numeric field of an exploration result against a
// configured value. Rules are loaded once per evaluation as a read-only
// snapshot and treated as immutable during the run.
type Rule struct {
	Name      string
	Field     string
	Operator  valueobject.RuleOperator
	Value     decimal.Decimal
	Weight    decimal.Decimal
	Outcome   valueobject.RuleOutcome
	Active    bool
	Order     int
	CreatedAt time.Time
}

// NewRule validates and creates a rule.
func NewRule(
	name, field string,
	operator valueobject.RuleOperator,
	value, weight decimal.Decimal,
	outcome valueobject.RuleOutcome,
	active bool,
	order int,
	createdAt time.Time,
) (Rule, error) {
	if name == "" {
		return Rule{}, errors.New("rule name is required")
	}
	if field == "" {
		return Rule{}, errors.New("rule field is required")
	}
	if operator.IsZero() {
		return Rule{}, errors.New("rule operator is required")
	}
	if outcome.IsZero() {
		return Rule{}, errors.New("rule outcome is required")
	}
	if weight.IsNegative() {
		return Rule{}, errors.New("rule weight must not be negative")
	}
	return Rule{
		Name:      name,
		Field:     field,
		Operator:  operator,
		Value:     value,
		Weight:    weight,
		Outcome:   outcome,
		Active:    active,
		Order:     order,
		CreatedAt: createdAt,
	}, nil
}
