package service

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// RiskClassifier – pure mapping from bureau risk labels
// ---------------------------------------------------------------------------

// Classification is the internal reading of one bureau risk label.
type Classification struct {
	Level  valueobject.RiskLevel
	Score  decimal.Decimal
	Status valueobject.CreditStatus
}

// RiskClassifier maps bureau-supplied risk labels to an internal risk
// level, a normalized score on the bureau-native 0-1000 scale, and a
// credit-status category. It makes no external calls and is safe to call
// concurrently.
type RiskClassifier struct{}

// NewRiskClassifier returns a new classifier instance.
func NewRiskClassifier() *RiskClassifier {
	return &RiskClassifier{}
}

var (
	scoreLow      = decimal.NewFromInt(800)
	scoreModerate = decimal.NewFromInt(550)
	scoreHigh     = decimal.NewFromInt(350)
	scoreVeryHigh = decimal.NewFromInt(150)
)

// Classify reads a bureau risk label, case-insensitively, and returns the
// classification. An unrecognized, empty, or absent label never fails: it
// defaults to Moderate, so an unknown signal is read as medium risk rather
// than silently as low risk.
//
// Both English and Spanish bureau phrasings are recognized ("RISK LOW",
// "LOW RISK", "RIESGO BAJO", ...). The VERY HIGH variants are matched
// before HIGH, since every very-high phrasing contains "HIGH"/"ALTO".
func (c *RiskClassifier) Classify(label string) Classification {
	return classificationFor(levelFromLabel(label))
}

// CanonicalLabel returns the uppercase bureau phrasing that classifies back
// to the given level.
func (c *RiskClassifier) CanonicalLabel(level valueobject.RiskLevel) string {
	switch level {
	case valueobject.RiskLevelLow:
		return "RISK LOW"
	case valueobject.RiskLevelHigh:
		return "RISK HIGH"
	case valueobject.RiskLevelVeryHigh:
		return "RISK VERY HIGH"
	default:
		return "RISK MODERATE"
	}
}

func levelFromLabel(label string) valueobject.RiskLevel {
	norm := strings.ToUpper(strings.TrimSpace(label))
	switch {
	case norm == "":
		return valueobject.RiskLevelModerate
	case strings.Contains(norm, "VERY HIGH") || strings.Contains(norm, "MUY ALTO"):
		return valueobject.RiskLevelVeryHigh
	case strings.Contains(norm, "HIGH") || strings.Contains(norm, "ALTO"):
		return valueobject.RiskLevelHigh
	case strings.Contains(norm, "LOW") || strings.Contains(norm, "BAJO"):
		return valueobject.RiskLevelLow
	case strings.Contains(norm, "MODERATE") || strings.Contains(norm, "MEDIUM") || strings.Contains(norm, "MEDIO"):
		return valueobject.RiskLevelModerate
	default:
		return valueobject.RiskLevelModerate
	}
}

// classificationFor is the total mapping from level to score and status:
// every risk level has exactly one score and one status.
func classificationFor(level valueobject.RiskLevel) Classification {
	switch level {
	case valueobject.RiskLevelLow:
		return Classification{Level: level, Score: scoreLow, Status: valueobject.CreditStatusNormal}
	case valueobject.RiskLevelHigh:
		return Classification{Level: level, Score: scoreHigh, Status: valueobject.CreditStatusDelinquent}
	case valueobject.RiskLevelVeryHigh:
		return Classification{Level: level, Score: scoreVeryHigh, Status: valueobject.CreditStatusInCollections}
	default:
		return Classification{Level: valueobject.RiskLevelModerate, Score: scoreModerate, Status: valueobject.CreditStatusPotentialIssues}
	}
}
