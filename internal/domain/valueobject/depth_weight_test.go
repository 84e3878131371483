package valueobject_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/valueobject"
)

func TestDepthWeightPolicy(t *testing.T) {
	t.Run("default policy halves per level", func(t *testing.T) {
		p := valueobject.DefaultDepthWeightPolicy()
		assert.True(t, p.WeightAt(0).Equal(decimal.NewFromInt(1)))
		assert.True(t, p.WeightAt(1).Equal(decimal.NewFromFloat(0.5)))
		assert.True(t, p.WeightAt(2).Equal(decimal.NewFromFloat(0.25)))
		assert.Equal(t, 2, p.MaxDepth())
	})

	t.Run("out-of-range depths weigh zero", func(t *testing.T) {
		p := valueobject.DefaultDepthWeightPolicy()
		assert.True(t, p.WeightAt(3).IsZero())
		assert.True(t, p.WeightAt(-1).IsZero())
	})

	t.Run("rejects empty and negative weights", func(t *testing.T) {
		_, err := valueobject.NewDepthWeightPolicy(nil)
		assert.Error(t, err)

		_, err = valueobject.NewDepthWeightPolicy([]decimal.Decimal{decimal.NewFromInt(-1)})
		assert.Error(t, err)
	})

	t.Run("copies the weight slice", func(t *testing.T) {
		weights := []decimal.Decimal{decimal.NewFromInt(1), decimal.NewFromFloat(0.5)}
		p, err := valueobject.NewDepthWeightPolicy(weights)
		require.NoError(t, err)

		weights[0] = decimal.NewFromInt(99)
		assert.True(t, p.WeightAt(0).Equal(decimal.NewFromInt(1)))
	})
}

func TestAlertSeverity_Lowered(t *testing.T) {
	assert.Equal(t, valueobject.AlertSeverityCritical, valueobject.AlertSeverityCritical.Lowered(0))
	assert.Equal(t, valueobject.AlertSeverityHigh, valueobject.AlertSeverityCritical.Lowered(1))
	assert.Equal(t, valueobject.AlertSeverityMedium, valueobject.AlertSeverityCritical.Lowered(2))
	assert.Equal(t, valueobject.AlertSeverityLow, valueobject.AlertSeverityCritical.Lowered(3))
	// Clamped at the bottom of the ladder.
	assert.Equal(t, valueobject.AlertSeverityLow, valueobject.AlertSeverityCritical.Lowered(10))
	assert.Equal(t, valueobject.AlertSeverityLow, valueobject.AlertSeverityLow.Lowered(1))
}
