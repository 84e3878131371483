package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/model"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// ScoringEngine – folds the graph and rule outcomes into one recommendation
// ---------------------------------------------------------------------------

// ScoringConfig carries the decision thresholds on the 0-100 scale. The
// 60/40 defaults are business policy, supplied as configuration rather
// than hardwired.
type ScoringConfig struct {
	ApproveThreshold  decimal.Decimal
	ReviewThreshold   decimal.Decimal
	HighRiskThreshold decimal.Decimal
}

// DefaultScoringConfig returns the standard thresholds.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		ApproveThreshold:  decimal.NewFromInt(60),
		ReviewThreshold:   decimal.NewFromInt(40),
		HighRiskThreshold: decimal.NewFromInt(25),
	}
}

// ScoreResult is the outcome of folding one graph.
type ScoreResult struct {
	FinalScore     decimal.Decimal
	Recommendation valueobject.Recommendation
	RiskLevel      valueobject.RiskLevel
	Alerts         []model.Alert
}

// ScoringEngine consumes an explored graph and the rule engine's outcomes
// and produces a single score, the alert list, and the recommendation.
// Deterministic for a given graph, ruleset, and weight policy; no side
// effects beyond attaching alerts to the graph it was handed.
type ScoringEngine struct {
	cfg ScoringConfig
}

// NewScoringEngine creates an engine with the given thresholds.
func NewScoringEngine(cfg ScoringConfig) *ScoringEngine {
	return &ScoringEngine{cfg: cfg}
}

// Score folds the graph under the depth-weight policy and merges in rule
// contributions.
func (s *ScoringEngine) Score(
	graph *model.Graph,
	ruleEvals []RuleEvaluation,
	policy valueobject.DepthWeightPolicy,
) ScoreResult {
	alerts := s.raiseAlerts(graph)
	finalScore := s.weightedScore(graph, policy)

	forcedReject, forcedReview := foldRules(ruleEvals)
	recommendation := s.classify(finalScore, len(alerts) > 0, forcedReject, forcedReview)

	return ScoreResult{
		FinalScore:     finalScore,
		Recommendation: recommendation,
		RiskLevel:      s.riskLevelFor(finalScore),
		Alerts:         alerts,
	}
}

// raiseAlerts emits one alert per node with an adverse credit status, in
// breadth-first node order. Severity starts at the status's base grade and
// steps down one notch per depth level.
func (s *ScoringEngine) raiseAlerts(graph *model.Graph) []model.Alert {
	var alerts []model.Alert
	for _, node := range graph.Nodes() {
		if !node.Status.IsAdverse() {
			continue
		}
		kind, base := alertProfile(node.Status)
		alert := model.NewAlert(
			kind,
			base.Lowered(node.Depth),
			node.ID,
			node.Depth,
			fmt.Sprintf("%s reported as %s at depth %d", node.Name, node.Status, node.Depth),
		)
		node.Alerts = append(node.Alerts, alert)
		alerts = append(alerts, alert)
	}
	return alerts
}

// weightedScore rescales each node's bureau-native score onto 0-100 and
// computes the depth-weighted mean, so shallow, directly-controlled
// entities dominate the outcome. Nodes beyond the policy's range weigh zero.
func (s *ScoringEngine) weightedScore(graph *model.Graph, policy valueobject.DepthWeightPolicy) decimal.Decimal {
	ten := decimal.NewFromInt(10)
	weightedSum := decimal.Zero
	weightTotal := decimal.Zero
	for _, node := range graph.Nodes() {
		weight := policy.WeightAt(node.Depth)
		if weight.IsZero() {
			continue
		}
		contribution := node.Score.Div(ten)
		weightedSum = weightedSum.Add(contribution.Mul(weight))
		weightTotal = weightTotal.Add(weight)
	}
	if weightTotal.IsZero() {
		return decimal.Zero
	}
	return weightedSum.Div(weightTotal)
}

// classify applies the decision ladder, first applicable wins:
//
//  1. a rule-forced Reject is a hard override;
//  2. any alert caps the outcome at ManualReview: a live risk signal
//     anywhere in the network always costs at least a manual look;
//  3. otherwise the thresholds decide, with a rule-forced review
//     downgrading an Approve.
func (s *ScoringEngine) classify(score decimal.Decimal, hasAlerts, forcedReject, forcedReview bool) valueobject.Recommendation {
	switch {
	case forcedReject:
		return valueobject.RecommendationReject
	case hasAlerts:
		if score.GreaterThanOrEqual(s.cfg.ReviewThreshold) {
			return valueobject.RecommendationManualReview
		}
		return valueobject.RecommendationReject
	case score.GreaterThanOrEqual(s.cfg.ApproveThreshold):
		if forcedReview {
			return valueobject.RecommendationManualReview
		}
		return valueobject.RecommendationApprove
	case score.GreaterThanOrEqual(s.cfg.ReviewThreshold):
		return valueobject.RecommendationManualReview
	default:
		return valueobject.RecommendationReject
	}
}

// riskLevelFor bands the final score into a risk level for the result.
func (s *ScoringEngine) riskLevelFor(score decimal.Decimal) valueobject.RiskLevel {
	switch {
	case score.GreaterThanOrEqual(s.cfg.ApproveThreshold):
		return valueobject.RiskLevelLow
	case score.GreaterThanOrEqual(s.cfg.ReviewThreshold):
		return valueobject.RiskLevelModerate
	case score.GreaterThanOrEqual(s.cfg.HighRiskThreshold):
		return valueobject.RiskLevelHigh
	default:
		return valueobject.RiskLevelVeryHigh
	}
}

// foldRules reduces rule evaluations to the two flags the ladder needs.
// Approve-outcome matches are informational only: they never override the
// alert cap nor upgrade a recommendation.
func foldRules(evals []RuleEvaluation) (forcedReject, forcedReview bool) {
	for _, ev := range evals {
		if !ev.Matched {
			continue
		}
		switch {
		case ev.Rule.Outcome.Equal(valueobject.RuleOutcomeReject):
			forcedReject = true
		case ev.Rule.Outcome.Equal(valueobject.RuleOutcomeManualReview):
			forcedReview = true
		}
	}
	return forcedReject, forcedReview
}

// alertProfile maps an adverse status to its alert kind and base severity
// at depth 0.
func alertProfile(status valueobject.CreditStatus) (model.AlertKind, valueobject.AlertSeverity) {
	switch status {
	case valueobject.CreditStatusDelinquent:
		return model.AlertKindDelinquency, valueobject.AlertSeverityCritical
	case valueobject.CreditStatusInCollections, valueobject.CreditStatusWrittenOff:
		return model.AlertKindHighExposure, valueobject.AlertSeverityCritical
	default:
		return model.AlertKindStructuralRisk, valueobject.AlertSeverityHigh
	}
}
