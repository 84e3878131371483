package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/event"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// EvaluationResult aggregate root
// ---------------------------------------------------------------------------

// EvaluationResult is the sole externally visible artifact of a credit
// evaluation: final score on the 0-100 scale, recommendation, risk level,
// ordered alert list, and the explored graph for visualization. Produced
// once per evaluation request and immutable thereafter.
type EvaluationResult struct {
	id             string
	tenantID       string
	caseFileID     string
	applicantID    string
	companyID      string
	finalScore     decimal.Decimal
	recommendation valueobject.Recommendation
	riskLevel      valueobject.RiskLevel
	alerts         []Alert
	graph          *Graph
	createdAt      time.Time
	domainEvents   []event.DomainEvent
}

// NewEvaluationResult creates the aggregate and emits EvaluationCompleted.
func NewEvaluationResult(
	tenantID, caseFileID, applicantID, companyID string,
	finalScore decimal.Decimal,
	recommendation valueobject.Recommendation,
	riskLevel valueobject.RiskLevel,
	alerts []Alert,
	graph *Graph,
	now time.Time,
) (EvaluationResult, error) {
	if applicantID == "" {
		return EvaluationResult{}, errors.New("applicant ID is required")
	}
	if companyID == "" {
		return EvaluationResult{}, errors.New("company ID is required")
	}
	if recommendation.IsZero() {
		return EvaluationResult{}, errors.New("recommendation is required")
	}
	if graph == nil {
		return EvaluationResult{}, errors.New("graph is required")
	}

	id := uuid.New().String()
	res := EvaluationResult{
		id:             id,
		tenantID:       tenantID,
		caseFileID:     caseFileID,
		applicantID:    applicantID,
		companyID:      companyID,
		finalScore:     finalScore,
		recommendation: recommendation,
		riskLevel:      riskLevel,
		alerts:         copyAlerts(alerts),
		graph:          graph,
		createdAt:      now,
	}
	res.domainEvents = append(res.domainEvents, event.NewEvaluationCompleted(
		id, tenantID, caseFileID, applicantID, companyID,
		finalScore, recommendation.String(), riskLevel.String(),
		len(alerts), graph.Summary().TotalNodes,
	))
	return res, nil
}

// ReconstructEvaluationResult rebuilds the aggregate from persistence
// without side-effects.
func ReconstructEvaluationResult(
	id, tenantID, caseFileID, applicantID, companyID string,
	finalScore decimal.Decimal,
	recommendation valueobject.Recommendation,
	riskLevel valueobject.RiskLevel,
	alerts []Alert,
	graph *Graph,
	createdAt time.Time,
) EvaluationResult {
	return EvaluationResult{
		id:             id,
		tenantID:       tenantID,
		caseFileID:     caseFileID,
		applicantID:    applicantID,
		companyID:      companyID,
		finalScore:     finalScore,
		recommendation: recommendation,
		riskLevel:      riskLevel,
		alerts:         copyAlerts(alerts),
		graph:          graph,
		createdAt:      createdAt,
	}
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (r EvaluationResult) ID() string                                 { return r.id }
func (r EvaluationResult) TenantID() string                           { return r.tenantID }
func (r EvaluationResult) CaseFileID() string                         { return r.caseFileID }
func (r EvaluationResult) ApplicantID() string                        { return r.applicantID }
func (r EvaluationResult) CompanyID() string                          { return r.companyID }
func (r EvaluationResult) FinalScore() decimal.Decimal                { return r.finalScore }
func (r EvaluationResult) Recommendation() valueobject.Recommendation { return r.recommendation }
func (r EvaluationResult) RiskLevel() valueobject.RiskLevel           { return r.riskLevel }
func (r EvaluationResult) Graph() *Graph                              { return r.graph }
func (r EvaluationResult) CreatedAt() time.Time                       { return r.createdAt }
func (r EvaluationResult) DomainEvents() []event.DomainEvent          { return r.domainEvents }

// Alerts returns a copy of the ordered alert list.
func (r EvaluationResult) Alerts() []Alert { return copyAlerts(r.alerts) }

// ClearEvents returns a copy with an empty event list (call after publishing).
func (r EvaluationResult) ClearEvents() EvaluationResult {
	next := r
	next.domainEvents = nil
	return next
}

func copyAlerts(src []Alert) []Alert {
	if len(src) == 0 {
		return nil
	}
	dst := make([]Alert, len(src))
	copy(dst, src)
	return dst
}
