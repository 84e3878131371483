package service_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/model"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/service"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/valueobject"
)

func node(id string, depth int, score int64, status valueobject.CreditStatus) *model.NetworkNode {
	return &model.NetworkNode{
		ID:     id,
		Kind:   valueobject.EntityKindCompany,
		Name:   "ENTIDAD " + id,
		Depth:  depth,
		Score:  decimal.NewFromInt(score),
		Level:  valueobject.RiskLevelModerate,
		Status: status,
	}
}

func buildGraph(t *testing.T, nodes ...*model.NetworkNode) *model.Graph {
	t.Helper()
	g := model.NewGraph()
	for _, n := range nodes {
		require.NoError(t, g.AddNode(n))
	}
	return g
}

func forceRule(t *testing.T, name string, outcome valueobject.RuleOutcome) model.Rule {
	t.Helper()
	r, err := model.NewRule(
		name, "total_nodes",
		valueobject.RuleOperatorGreaterOrEqual,
		decimal.Zero, decimal.NewFromInt(1),
		outcome, true, 1, time.Now(),
	)
	require.NoError(t, err)
	return r
}

func TestScoringEngine_Score(t *testing.T) {
	engine := service.NewScoringEngine(service.DefaultScoringConfig())
	policy := valueobject.DefaultDepthWeightPolicy()

	t.Run("clean shallow network approves", func(t *testing.T) {
		// Applicant 75, company 70 on the 0-100 scale, no adverse statuses.
		g := buildGraph(t,
			node("CURP-1", 0, 750, valueobject.CreditStatusNormal),
			node("RFC-1", 0, 700, valueobject.CreditStatusNormal),
		)
		res := engine.Score(g, nil, policy)

		assert.True(t, res.FinalScore.Equal(decimal.RequireFromString("72.5")), "got %s", res.FinalScore)
		assert.Equal(t, valueobject.RecommendationApprove, res.Recommendation)
		assert.Equal(t, valueobject.RiskLevelLow, res.RiskLevel)
		assert.Empty(t, res.Alerts)
	})

	t.Run("delinquent low-score network rejects", func(t *testing.T) {
		g := buildGraph(t,
			node("CURP-1", 0, 300, valueobject.CreditStatusDelinquent),
			node("RFC-1", 0, 400, valueobject.CreditStatusNormal),
		)
		res := engine.Score(g, nil, policy)

		assert.True(t, res.FinalScore.Equal(decimal.NewFromInt(35)), "got %s", res.FinalScore)
		assert.Equal(t, valueobject.RecommendationReject, res.Recommendation)
		require.Len(t, res.Alerts, 1)
		assert.Equal(t, model.AlertKindDelinquency, res.Alerts[0].Kind)
		assert.Equal(t, valueobject.AlertSeverityCritical, res.Alerts[0].Severity)
	})

	t.Run("borderline network with a deep adverse node goes to manual review", func(t *testing.T) {
		g := buildGraph(t,
			node("CURP-1", 0, 650, valueobject.CreditStatusNormal),
			node("RFC-1", 0, 600, valueobject.CreditStatusNormal),
			node("RFC-DEEP", 2, 400, valueobject.CreditStatusPotentialIssues),
		)
		res := engine.Score(g, nil, policy)

		// (65 + 60 + 40*0.25) / 2.25 = 60
		assert.True(t, res.FinalScore.Equal(decimal.NewFromInt(60)), "got %s", res.FinalScore)
		assert.Equal(t, valueobject.RecommendationManualReview, res.Recommendation)
		require.Len(t, res.Alerts, 1)
		assert.Equal(t, model.AlertKindStructuralRisk, res.Alerts[0].Kind)
	})

	t.Run("alert severity steps down with depth", func(t *testing.T) {
		g := buildGraph(t,
			node("CURP-1", 0, 800, valueobject.CreditStatusNormal),
			node("RFC-A", 1, 350, valueobject.CreditStatusDelinquent),
			node("RFC-B", 2, 350, valueobject.CreditStatusDelinquent),
		)
		res := engine.Score(g, nil, policy)

		require.Len(t, res.Alerts, 2)
		assert.Equal(t, valueobject.AlertSeverityHigh, res.Alerts[0].Severity)
		assert.Equal(t, valueobject.AlertSeverityMedium, res.Alerts[1].Severity)
	})

	t.Run("alerts are attached to their nodes", func(t *testing.T) {
		bad := node("RFC-BAD", 1, 150, valueobject.CreditStatusInCollections)
		g := buildGraph(t, node("CURP-1", 0, 800, valueobject.CreditStatusNormal), bad)
		res := engine.Score(g, nil, policy)

		require.Len(t, res.Alerts, 1)
		require.Len(t, bad.Alerts, 1)
		assert.Equal(t, model.AlertKindHighExposure, bad.Alerts[0].Kind)
		assert.Equal(t, "RFC-BAD", bad.Alerts[0].NodeID)
	})

	t.Run("a rule-forced reject overrides a passing score", func(t *testing.T) {
		g := buildGraph(t,
			node("CURP-1", 0, 900, valueobject.CreditStatusNormal),
			node("RFC-1", 0, 900, valueobject.CreditStatusNormal),
		)
		evals := service.NewRuleEngine().Evaluate(
			[]model.Rule{forceRule(t, "hard-stop", valueobject.RuleOutcomeReject)},
			map[string]decimal.Decimal{"total_nodes": decimal.NewFromInt(2)},
		)
		res := engine.Score(g, evals, policy)
		assert.Equal(t, valueobject.RecommendationReject, res.Recommendation)
	})

	t.Run("a rule-forced review downgrades an approve", func(t *testing.T) {
		g := buildGraph(t,
			node("CURP-1", 0, 900, valueobject.CreditStatusNormal),
			node("RFC-1", 0, 900, valueobject.CreditStatusNormal),
		)
		evals := service.NewRuleEngine().Evaluate(
			[]model.Rule{forceRule(t, "second-look", valueobject.RuleOutcomeManualReview)},
			map[string]decimal.Decimal{"total_nodes": decimal.NewFromInt(2)},
		)
		res := engine.Score(g, evals, policy)
		assert.Equal(t, valueobject.RecommendationManualReview, res.Recommendation)
	})

	t.Run("nodes beyond the policy range weigh zero", func(t *testing.T) {
		g := buildGraph(t,
			node("CURP-1", 0, 600, valueobject.CreditStatusNormal),
			node("RFC-FAR", 7, 100, valueobject.CreditStatusNormal),
		)
		res := engine.Score(g, nil, policy)
		assert.True(t, res.FinalScore.Equal(decimal.NewFromInt(60)), "got %s", res.FinalScore)
	})

	t.Run("an empty graph scores zero and rejects", func(t *testing.T) {
		res := engine.Score(model.NewGraph(), nil, policy)
		assert.True(t, res.FinalScore.IsZero())
		assert.Equal(t, valueobject.RecommendationReject, res.Recommendation)
		assert.Equal(t, valueobject.RiskLevelVeryHigh, res.RiskLevel)
	})
}
