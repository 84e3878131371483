package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/application/dto"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/model"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/port"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/service"
)

// EvaluateCaseUseCase orchestrates one credit evaluation: network
// exploration, rule evaluation, scoring, persistence, and event publishing.
// It is the single entry point the case-file surface exposes for scoring.
type EvaluateCaseUseCase struct {
	caseRepo        port.CaseFileRepository
	evalRepo        port.EvaluationRepository
	ruleRepo        port.RuleRepository
	publisher       port.EventPublisher
	explorer        *service.GraphExplorer
	ruleEngine      *service.RuleEngine
	scoringEngine   *service.ScoringEngine
	logger          *slog.Logger
	defaultMaxDepth int
}

// NewEvaluateCaseUseCase wires dependencies.
func NewEvaluateCaseUseCase(
	caseRepo port.CaseFileRepository,
	evalRepo port.EvaluationRepository,
	ruleRepo port.RuleRepository,
	publisher port.EventPublisher,
	explorer *service.GraphExplorer,
	ruleEngine *service.RuleEngine,
	scoringEngine *service.ScoringEngine,
	logger *slog.Logger,
	defaultMaxDepth int,
) *EvaluateCaseUseCase {
	return &EvaluateCaseUseCase{
		caseRepo:        caseRepo,
		evalRepo:        evalRepo,
		ruleRepo:        ruleRepo,
		publisher:       publisher,
		explorer:        explorer,
		ruleEngine:      ruleEngine,
		scoringEngine:   scoringEngine,
		logger:          logger,
		defaultMaxDepth: defaultMaxDepth,
	}
}

// Execute runs a full evaluation for the case file's applicant/company pair.
func (uc *EvaluateCaseUseCase) Execute(ctx context.Context, req dto.EvaluateCaseRequest) (dto.EvaluationResponse, error) {
	now := time.Now().UTC()

	// 1. Load the case file and mark it evaluating.
	cf, err := uc.caseRepo.FindByID(ctx, req.TenantID, req.CaseFileID)
	if err != nil {
		return dto.EvaluationResponse{}, fmt.Errorf("load case file: %w", err)
	}
	cf, err = cf.BeginEvaluation(now)
	if err != nil {
		return dto.EvaluationResponse{}, fmt.Errorf("begin evaluation: %w", err)
	}
	if err := uc.caseRepo.Save(ctx, cf); err != nil {
		return dto.EvaluationResponse{}, fmt.Errorf("save case file: %w", err)
	}

	// 2. Snapshot the rule configuration for this run.
	rules, err := uc.ruleRepo.ActiveRules(ctx, req.TenantID)
	if err != nil {
		return dto.EvaluationResponse{}, fmt.Errorf("load rules: %w", err)
	}
	policy, err := uc.ruleRepo.DepthWeightPolicy(ctx, req.TenantID)
	if err != nil {
		return dto.EvaluationResponse{}, fmt.Errorf("load depth weight policy: %w", err)
	}

	// 3. Explore the relationship network.
	maxDepth := req.MaxDepth
	if maxDepth <= 0 {
		maxDepth = uc.defaultMaxDepth
	}
	graph, err := uc.explorer.Explore(ctx, cf.ApplicantID(), cf.CompanyID(), maxDepth)
	if err != nil {
		return dto.EvaluationResponse{}, fmt.Errorf("explore network: %w", err)
	}

	// 4. Evaluate configured rules against the exploration fields.
	ruleEvals := uc.ruleEngine.Evaluate(rules, ruleFields(graph, cf.ApplicantID(), cf.CompanyID()))

	// 5. Fold everything into the final score and recommendation.
	scored := uc.scoringEngine.Score(graph, ruleEvals, policy)

	// 6. Build and persist the result.
	result, err := model.NewEvaluationResult(
		req.TenantID, cf.ID(), cf.ApplicantID(), cf.CompanyID(),
		scored.FinalScore, scored.Recommendation, scored.RiskLevel,
		scored.Alerts, graph, now,
	)
	if err != nil {
		return dto.EvaluationResponse{}, fmt.Errorf("build evaluation result: %w", err)
	}
	if err := uc.evalRepo.Save(ctx, result); err != nil {
		return dto.EvaluationResponse{}, fmt.Errorf("save evaluation: %w", err)
	}

	// 7. Attach to the case file.
	cf, err = cf.AttachEvaluation(result.ID(), now)
	if err != nil {
		return dto.EvaluationResponse{}, fmt.Errorf("attach evaluation: %w", err)
	}
	if err := uc.caseRepo.Save(ctx, cf); err != nil {
		return dto.EvaluationResponse{}, fmt.Errorf("save case file: %w", err)
	}

	// 8. Publish domain events.
	events := append(result.DomainEvents(), cf.DomainEvents()...)
	if err := uc.publisher.Publish(ctx, events...); err != nil {
		return dto.EvaluationResponse{}, fmt.Errorf("publish events: %w", err)
	}

	uc.logger.Info("evaluation completed",
		"case_file_id", cf.ID(),
		"final_score", scored.FinalScore,
		"recommendation", scored.Recommendation,
		"alerts", len(scored.Alerts),
	)
	return toEvaluationResponse(result), nil
}

// ruleFields assembles the statically enumerable field map the rule engine
// compares against. Keeping the mapping here leaves the engine free of
// reflection.
func ruleFields(graph *model.Graph, applicantID, companyID string) map[string]decimal.Decimal {
	summary := graph.Summary()
	fields := map[string]decimal.Decimal{
		"total_nodes":       decimal.NewFromInt(int64(summary.TotalNodes)),
		"total_persons":     decimal.NewFromInt(int64(summary.TotalPersons)),
		"total_companies":   decimal.NewFromInt(int64(summary.TotalCompanies)),
		"total_connections": decimal.NewFromInt(int64(summary.TotalConnections)),
		"pruned_branches":   decimal.NewFromInt(int64(len(graph.Diagnostics()))),
	}

	totalDebt := decimal.Zero
	overdueDebt := decimal.Zero
	overdueCount := 0
	maxDaysOverdue := 0
	worstLevel := 0
	for _, node := range graph.Nodes() {
		if node.Level.Rank() > worstLevel {
			worstLevel = node.Level.Rank()
		}
		for _, debt := range node.Debts {
			totalDebt = totalDebt.Add(debt.OutstandingBalance.Amount())
			if debt.IsOverdue() {
				overdueDebt = overdueDebt.Add(debt.OutstandingBalance.Amount())
				overdueCount++
			}
			if debt.DaysOverdue > maxDaysOverdue {
				maxDaysOverdue = debt.DaysOverdue
			}
		}
	}
	fields["total_debt"] = totalDebt
	fields["overdue_debt"] = overdueDebt
	fields["overdue_count"] = decimal.NewFromInt(int64(overdueCount))
	fields["max_days_overdue"] = decimal.NewFromInt(int64(maxDaysOverdue))
	fields["worst_risk_level"] = decimal.NewFromInt(int64(worstLevel))

	if applicant, ok := graph.Node(applicantID); ok {
		fields["applicant_score"] = applicant.Score
	}
	if company, ok := graph.Node(companyID); ok {
		fields["company_score"] = company.Score
	}
	return fields
}
