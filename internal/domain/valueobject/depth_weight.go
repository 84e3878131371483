package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// DepthWeightPolicy – immutable value object
// ---------------------------------------------------------------------------

// DepthWeightPolicy maps traversal depth to the penalty weight a node at
// that depth contributes to the final score. Depths beyond the configured
// range weigh zero, so distant entities cannot influence the outcome.
type DepthWeightPolicy struct {
	weights []decimal.Decimal
}

// NewDepthWeightPolicy creates a policy from per-depth weights, where
// weights[i] applies to nodes at depth i. At least the seed depth must be
// covered and no weight may be negative.
func NewDepthWeightPolicy(weights []decimal.Decimal) (DepthWeightPolicy, error) {
	if len(weights) == 0 {
		return DepthWeightPolicy{}, fmt.Errorf("depth weight policy requires at least one weight")
	}
	for i, w := range weights {
		if w.IsNegative() {
			return DepthWeightPolicy{}, fmt.Errorf("depth weight at depth %d is negative: %s", i, w)
		}
	}
	copied := make([]decimal.Decimal, len(weights))
	copy(copied, weights)
	return DepthWeightPolicy{weights: copied}, nil
}

// DefaultDepthWeightPolicy returns the standard policy: the seeds count in
// full, first-degree relations at half weight, second-degree at a quarter.
func DefaultDepthWeightPolicy() DepthWeightPolicy {
	return DepthWeightPolicy{weights: []decimal.Decimal{
		decimal.NewFromInt(1),
		decimal.NewFromFloat(0.5),
		decimal.NewFromFloat(0.25),
	}}
}

// WeightAt returns the weight for the given depth, zero when the depth is
// negative or beyond the configured range.
func (p DepthWeightPolicy) WeightAt(depth int) decimal.Decimal {
	if depth < 0 || depth >= len(p.weights) {
		return decimal.Zero
	}
	return p.weights[depth]
}

// MaxDepth returns the deepest level carrying a configured weight.
func (p DepthWeightPolicy) MaxDepth() int { return len(p.weights) - 1 }

// IsZero returns true if the policy has not been initialised.
func (p DepthWeightPolicy) IsZero() bool { return len(p.weights) == 0 }
