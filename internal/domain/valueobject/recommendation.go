package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// Recommendation – immutable value object
// ---------------------------------------------------------------------------

// Recommendation is the tri-state outcome of a credit evaluation.
type Recommendation struct {
	value string
}

const (
	recommendationApprove      = "APPROVE"
	recommendationManualReview = "MANUAL_REVIEW"
	recommendationReject       = "REJECT"
)

var (
	RecommendationApprove      = Recommendation{value: recommendationApprove}
	RecommendationManualReview = Recommendation{value: recommendationManualReview}
	RecommendationReject       = Recommendation{value: recommendationReject}
)

var validRecommendations = map[string]Recommendation{
	recommendationApprove:      RecommendationApprove,
	recommendationManualReview: RecommendationManualReview,
	recommendationReject:       RecommendationReject,
}

// NewRecommendation creates a Recommendation from a raw string.
func NewRecommendation(s string) (Recommendation, error) {
	v, ok := validRecommendations[s]
	if !ok {
		return Recommendation{}, fmt.Errorf("invalid recommendation: %q", s)
	}
	return v, nil
}

// String returns the string representation of the recommendation.
func (r Recommendation) String() string { return r.value }

// IsZero returns true if the recommendation has not been initialised.
func (r Recommendation) IsZero() bool { return r.value == "" }

// Equal returns true when both recommendations carry the same value.
func (r Recommendation) Equal(other Recommendation) bool { return r.value == other.value }

// ---------------------------------------------------------------------------
// AlertSeverity – immutable value object
// ---------------------------------------------------------------------------

// AlertSeverity grades how urgent an alert is. Severity degrades with the
// depth of the triggering node.
type AlertSeverity struct {
	value string
}

const (
	alertSeverityLow      = "LOW"
	alertSeverityMedium   = "MEDIUM"
	alertSeverityHigh     = "HIGH"
	alertSeverityCritical = "CRITICAL"
)

var (
	AlertSeverityLow      = AlertSeverity{value: alertSeverityLow}
	AlertSeverityMedium   = AlertSeverity{value: alertSeverityMedium}
	AlertSeverityHigh     = AlertSeverity{value: alertSeverityHigh}
	AlertSeverityCritical = AlertSeverity{value: alertSeverityCritical}
)

var validAlertSeverities = map[string]AlertSeverity{
	alertSeverityLow:      AlertSeverityLow,
	alertSeverityMedium:   AlertSeverityMedium,
	alertSeverityHigh:     AlertSeverityHigh,
	alertSeverityCritical: AlertSeverityCritical,
}

// severityLadder orders severities from least to most urgent.
var severityLadder = []AlertSeverity{
	AlertSeverityLow,
	AlertSeverityMedium,
	AlertSeverityHigh,
	AlertSeverityCritical,
}

var severityRanks = map[string]int{
	alertSeverityLow:      0,
	alertSeverityMedium:   1,
	alertSeverityHigh:     2,
	alertSeverityCritical: 3,
}

// NewAlertSeverity creates an AlertSeverity from a raw string.
func NewAlertSeverity(s string) (AlertSeverity, error) {
	v, ok := validAlertSeverities[s]
	if !ok {
		return AlertSeverity{}, fmt.Errorf("invalid alert severity: %q", s)
	}
	return v, nil
}

// String returns the string representation of the severity.
func (s AlertSeverity) String() string { return s.value }

// IsZero returns true if the severity has not been initialised.
func (s AlertSeverity) IsZero() bool { return s.value == "" }

// Equal returns true when both severities carry the same value.
func (s AlertSeverity) Equal(other AlertSeverity) bool { return s.value == other.value }

// Rank returns the ordinal position of the severity (0 = Low ... 3 = Critical).
func (s AlertSeverity) Rank() int { return severityRanks[s.value] }

// Lowered returns the severity reduced by the given number of steps,
// clamped at Low.
func (s AlertSeverity) Lowered(steps int) AlertSeverity {
	rank := s.Rank() - steps
	if rank < 0 {
		rank = 0
	}
	return severityLadder[rank]
}
