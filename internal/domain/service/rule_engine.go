package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/model"
)

// ---------------------------------------------------------------------------
// RuleEngine – declarative comparison rules over exploration fields
// ---------------------------------------------------------------------------

// RuleEvaluation is the outcome of evaluating one rule: whether it matched
// and the weight it contributes toward its outcome bucket.
type RuleEvaluation struct {
	Rule         model.Rule
	Matched      bool
	Contribution decimal.Decimal
}

// RuleEngine evaluates an ordered set of declarative comparison rules
// against named fields of an exploration result. It never decides the final
// recommendation itself; the scoring engine folds its contributions in.
type RuleEngine struct{}

// NewRuleEngine returns a new engine instance.
func NewRuleEngine() *RuleEngine {
	return &RuleEngine{}
}

// Evaluate runs the active rules in ascending order against the field map.
// A rule whose field is absent is skipped: it stays in the output as a
// non-match, never as an error. Comparisons are exact decimal comparisons.
func (e *RuleEngine) Evaluate(rules []model.Rule, fields map[string]decimal.Decimal) []RuleEvaluation {
	active := make([]model.Rule, 0, len(rules))
	for _, r := range rules {
		if r.Active {
			active = append(active, r)
		}
	}
	sort.SliceStable(active, func(i, j int) bool { return active[i].Order < active[j].Order })

	out := make([]RuleEvaluation, 0, len(active))
	for _, r := range active {
		value, ok := fields[r.Field]
		if !ok {
			out = append(out, RuleEvaluation{Rule: r, Matched: false, Contribution: decimal.Zero})
			continue
		}
		if r.Operator.Apply(value, r.Value) {
			out = append(out, RuleEvaluation{Rule: r, Matched: true, Contribution: r.Weight})
			continue
		}
		out = append(out, RuleEvaluation{Rule: r, Matched: false, Contribution: decimal.Zero})
	}
	return out
}
