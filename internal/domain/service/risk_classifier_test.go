package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/service"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/valueobject"
)

func TestRiskClassifier_Classify(t *testing.T) {
	c := service.NewRiskClassifier()

	t.Run("maps the canonical labels", func(t *testing.T) {
		cases := []struct {
			label  string
			level  valueobject.RiskLevel
			score  int64
			status valueobject.CreditStatus
		}{
			{"RISK LOW", valueobject.RiskLevelLow, 800, valueobject.CreditStatusNormal},
			{"RISK MODERATE", valueobject.RiskLevelModerate, 550, valueobject.CreditStatusPotentialIssues},
			{"RISK HIGH", valueobject.RiskLevelHigh, 350, valueobject.CreditStatusDelinquent},
			{"RISK VERY HIGH", valueobject.RiskLevelVeryHigh, 150, valueobject.CreditStatusInCollections},
		}
		for _, tc := range cases {
			cls := c.Classify(tc.label)
			assert.Equal(t, tc.level, cls.Level, tc.label)
			assert.True(t, cls.Score.IntPart() == tc.score, tc.label)
			assert.Equal(t, tc.status, cls.Status, tc.label)
		}
	})

	t.Run("is case-insensitive and tolerates surrounding text", func(t *testing.T) {
		assert.Equal(t, valueobject.RiskLevelLow, c.Classify("low risk").Level)
		assert.Equal(t, valueobject.RiskLevelHigh, c.Classify("  Risk High  ").Level)
		assert.Equal(t, valueobject.RiskLevelModerate, c.Classify("medium").Level)
	})

	t.Run("matches very-high phrasings before high", func(t *testing.T) {
		assert.Equal(t, valueobject.RiskLevelVeryHigh, c.Classify("RISK VERY HIGH").Level)
		assert.Equal(t, valueobject.RiskLevelVeryHigh, c.Classify("very high risk").Level)
		assert.Equal(t, valueobject.RiskLevelVeryHigh, c.Classify("RIESGO MUY ALTO").Level)
	})

	t.Run("recognizes Spanish bureau phrasings", func(t *testing.T) {
		assert.Equal(t, valueobject.RiskLevelLow, c.Classify("RIESGO BAJO").Level)
		assert.Equal(t, valueobject.RiskLevelHigh, c.Classify("RIESGO ALTO").Level)
		assert.Equal(t, valueobject.RiskLevelModerate, c.Classify("RIESGO MEDIO").Level)
	})

	t.Run("defaults unknown and empty labels to moderate", func(t *testing.T) {
		for _, label := range []string{"", "   ", "garbage", "N/A", "???"} {
			cls := c.Classify(label)
			assert.Equal(t, valueobject.RiskLevelModerate, cls.Level, "label %q", label)
			assert.Equal(t, valueobject.CreditStatusPotentialIssues, cls.Status, "label %q", label)
		}
	})

	t.Run("every level has exactly one score and status", func(t *testing.T) {
		levels := []valueobject.RiskLevel{
			valueobject.RiskLevelLow,
			valueobject.RiskLevelModerate,
			valueobject.RiskLevelHigh,
			valueobject.RiskLevelVeryHigh,
		}
		seenScores := map[string]bool{}
		for _, level := range levels {
			cls := c.Classify(c.CanonicalLabel(level))
			require.Equal(t, level, cls.Level)
			require.False(t, seenScores[cls.Score.String()], "duplicate score for %s", level)
			seenScores[cls.Score.String()] = true
		}
	})
}
