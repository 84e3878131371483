package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// RiskLevel – immutable value object
// ---------------------------------------------------------------------------

// RiskLevel is the internal risk classification of an entity, ordered from
// least to most risky.
type RiskLevel struct {
	value string
}

const (
	riskLevelLow      = "LOW"
	riskLevelModerate = "MODERATE"
	riskLevelHigh     = "HIGH"
	riskLevelVeryHigh = "VERY_HIGH"
)

var (
	RiskLevelLow      = RiskLevel{value: riskLevelLow}
	RiskLevelModerate = RiskLevel{value: riskLevelModerate}
	RiskLevelHigh     = RiskLevel{value: riskLevelHigh}
	RiskLevelVeryHigh = RiskLevel{value: riskLevelVeryHigh}
)

var validRiskLevels = map[string]RiskLevel{
	riskLevelLow:      RiskLevelLow,
	riskLevelModerate: RiskLevelModerate,
	riskLevelHigh:     RiskLevelHigh,
	riskLevelVeryHigh: RiskLevelVeryHigh,
}

var riskLevelRanks = map[string]int{
	riskLevelLow:      0,
	riskLevelModerate: 1,
	riskLevelHigh:     2,
	riskLevelVeryHigh: 3,
}

// NewRiskLevel creates a RiskLevel from a raw string.
func NewRiskLevel(s string) (RiskLevel, error) {
	v, ok := validRiskLevels[s]
	if !ok {
		return RiskLevel{}, fmt.Errorf("invalid risk level: %q", s)
	}
	return v, nil
}

// String returns the string representation of the level.
func (l RiskLevel) String() string { return l.value }

// IsZero returns true if the level has not been initialised.
func (l RiskLevel) IsZero() bool { return l.value == "" }

// Equal returns true when both levels carry the same value.
func (l RiskLevel) Equal(other RiskLevel) bool { return l.value == other.value }

// Rank returns the ordinal position of the level (0 = Low ... 3 = VeryHigh).
func (l RiskLevel) Rank() int { return riskLevelRanks[l.value] }

// WorseThan returns true when this level carries more risk than other.
func (l RiskLevel) WorseThan(other RiskLevel) bool { return l.Rank() > other.Rank() }

// ---------------------------------------------------------------------------
// CreditStatus – immutable value object
// ---------------------------------------------------------------------------

// CreditStatus is the bureau-facing credit standing category of an entity.
type CreditStatus struct {
	value string
}

const (
	creditStatusNormal          = "NORMAL"
	creditStatusPotentialIssues = "POTENTIAL_ISSUES"
	creditStatusDelinquent      = "DELINQUENT"
	creditStatusInCollections   = "IN_COLLECTIONS"
	creditStatusWrittenOff      = "WRITTEN_OFF"
)

var (
	CreditStatusNormal          = CreditStatus{value: creditStatusNormal}
	CreditStatusPotentialIssues = CreditStatus{value: creditStatusPotentialIssues}
	CreditStatusDelinquent      = CreditStatus{value: creditStatusDelinquent}
	CreditStatusInCollections   = CreditStatus{value: creditStatusInCollections}
	CreditStatusWrittenOff      = CreditStatus{value: creditStatusWrittenOff}
)

var validCreditStatuses = map[string]CreditStatus{
	creditStatusNormal:          CreditStatusNormal,
	creditStatusPotentialIssues: CreditStatusPotentialIssues,
	creditStatusDelinquent:      CreditStatusDelinquent,
	creditStatusInCollections:   CreditStatusInCollections,
	creditStatusWrittenOff:      CreditStatusWrittenOff,
}

// NewCreditStatus creates a CreditStatus from a raw string.
func NewCreditStatus(s string) (CreditStatus, error) {
	v, ok := validCreditStatuses[s]
	if !ok {
		return CreditStatus{}, fmt.Errorf("invalid credit status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s CreditStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s CreditStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s CreditStatus) Equal(other CreditStatus) bool { return s.value == other.value }

// IsAdverse reports whether the status represents a live risk signal that
// must raise an alert during scoring.
func (s CreditStatus) IsAdverse() bool {
	switch s.value {
	case creditStatusPotentialIssues, creditStatusDelinquent,
		creditStatusInCollections, creditStatusWrittenOff:
		return true
	default:
		return false
	}
}
