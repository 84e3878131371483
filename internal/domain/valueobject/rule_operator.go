package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// RuleOperator – immutable value object
// ---------------------------------------------------------------------------

// RuleOperator is the comparison operator of a declarative rule. Comparisons
// are exact decimal comparisons: the operands are business figures, not
// floating measurements, so no epsilon tolerance is applied.
type RuleOperator struct {
	value string
}

const (
	ruleOperatorGreaterThan    = "GT"
	ruleOperatorLessThan       = "LT"
	ruleOperatorGreaterOrEqual = "GTE"
	ruleOperatorLessOrEqual    = "LTE"
	ruleOperatorEqual          = "EQ"
	ruleOperatorNotEqual       = "NEQ"
)

var (
	RuleOperatorGreaterThan    = RuleOperator{value: ruleOperatorGreaterThan}
	RuleOperatorLessThan       = RuleOperator{value: ruleOperatorLessThan}
	RuleOperatorGreaterOrEqual = RuleOperator{value: ruleOperatorGreaterOrEqual}
	RuleOperatorLessOrEqual    = RuleOperator{value: ruleOperatorLessOrEqual}
	RuleOperatorEqual          = RuleOperator{value: ruleOperatorEqual}
	RuleOperatorNotEqual       = RuleOperator{value: ruleOperatorNotEqual}
)

var validRuleOperators = map[string]RuleOperator{
	ruleOperatorGreaterThan:    RuleOperatorGreaterThan,
	ruleOperatorLessThan:       RuleOperatorLessThan,
	ruleOperatorGreaterOrEqual: RuleOperatorGreaterOrEqual,
	ruleOperatorLessOrEqual:    RuleOperatorLessOrEqual,
	ruleOperatorEqual:          RuleOperatorEqual,
	ruleOperatorNotEqual:       RuleOperatorNotEqual,
}

// NewRuleOperator creates a RuleOperator from a raw string.
func NewRuleOperator(s string) (RuleOperator, error) {
	v, ok := validRuleOperators[s]
	if !ok {
		return RuleOperator{}, fmt.Errorf("invalid rule operator: %q", s)
	}
	return v, nil
}

// String returns the string representation of the operator.
func (o RuleOperator) String() string { return o.value }

// IsZero returns true if the operator has not been initialised.
func (o RuleOperator) IsZero() bool { return o.value == "" }

// Equal returns true when both operators carry the same value.
func (o RuleOperator) Equal(other RuleOperator) bool { return o.value == other.value }

// Apply evaluates `field <op> target` per the operator's algebraic meaning.
func (o RuleOperator) Apply(field, target decimal.Decimal) bool {
	cmp := field.Cmp(target)
	switch o.value {
	case ruleOperatorGreaterThan:
		return cmp > 0
	case ruleOperatorLessThan:
		return cmp < 0
	case ruleOperatorGreaterOrEqual:
		return cmp >= 0
	case ruleOperatorLessOrEqual:
		return cmp <= 0
	case ruleOperatorEqual:
		return cmp == 0
	case ruleOperatorNotEqual:
		return cmp != 0
	default:
		return false
	}
}

// ---------------------------------------------------------------------------
// RuleOutcome – immutable value object
// ---------------------------------------------------------------------------

// RuleOutcome is the bucket a matching rule contributes its weight toward.
type RuleOutcome struct {
	value string
}

const (
	ruleOutcomeApprove      = "APPROVE"
	ruleOutcomeManualReview = "MANUAL_REVIEW"
	ruleOutcomeReject       = "REJECT"
)

var (
	RuleOutcomeApprove      = RuleOutcome{value: ruleOutcomeApprove}
	RuleOutcomeManualReview = RuleOutcome{value: ruleOutcomeManualReview}
	RuleOutcomeReject       = RuleOutcome{value: ruleOutcomeReject}
)

var validRuleOutcomes = map[string]RuleOutcome{
	ruleOutcomeApprove:      RuleOutcomeApprove,
	ruleOutcomeManualReview: RuleOutcomeManualReview,
	ruleOutcomeReject:       RuleOutcomeReject,
}

// NewRuleOutcome creates a RuleOutcome from a raw string.
func NewRuleOutcome(s string) (RuleOutcome, error) {
	v, ok := validRuleOutcomes[s]
	if !ok {
		return RuleOutcome{}, fmt.Errorf("invalid rule outcome: %q", s)
	}
	return v, nil
}

// String returns the string representation of the outcome.
func (o RuleOutcome) String() string { return o.value }

// IsZero returns true if the outcome has not been initialised.
func (o RuleOutcome) IsZero() bool { return o.value == "" }

// Equal returns true when both outcomes carry the same value.
func (o RuleOutcome) Equal(other RuleOutcome) bool { return o.value == other.value }
