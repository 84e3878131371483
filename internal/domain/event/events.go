package event

import (
	"github.com/shopspring/decimal"

	"github.com/msouga/VerificacionCrediticia-sub001/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Case file events
// ---------------------------------------------------------------------------

// CaseFileCreated is raised when a new case file (expediente) is opened.
type CaseFileCreated struct {
	events.BaseEvent
	ApplicantID string `json:"applicant_id"`
	CompanyID   string `json:"company_id"`
}

func NewCaseFileCreated(caseFileID, tenantID, applicantID, companyID string) CaseFileCreated {
	return CaseFileCreated{
		BaseEvent:   events.NewBaseEvent("verification.case_file.created", caseFileID, "CaseFile", tenantID),
		ApplicantID: applicantID,
		CompanyID:   companyID,
	}
}

// CaseFileClosed is raised when a case file is closed.
type CaseFileClosed struct {
	events.BaseEvent
	Reason string `json:"reason"`
}

func NewCaseFileClosed(caseFileID, tenantID, reason string) CaseFileClosed {
	return CaseFileClosed{
		BaseEvent: events.NewBaseEvent("verification.case_file.closed", caseFileID, "CaseFile", tenantID),
		Reason:    reason,
	}
}

// ---------------------------------------------------------------------------
// Evaluation events
// ---------------------------------------------------------------------------

// EvaluationCompleted is raised when the scoring engine produces a result.
type EvaluationCompleted struct {
	events.BaseEvent
	CaseFileID     string          `json:"case_file_id"`
	ApplicantID    string          `json:"applicant_id"`
	CompanyID      string          `json:"company_id"`
	FinalScore     decimal.Decimal `json:"final_score"`
	Recommendation string          `json:"recommendation"`
	RiskLevel      string          `json:"risk_level"`
	AlertCount     int             `json:"alert_count"`
	NodeCount      int             `json:"node_count"`
}

func NewEvaluationCompleted(
	evaluationID, tenantID, caseFileID, applicantID, companyID string,
	finalScore decimal.Decimal,
	recommendation, riskLevel string,
	alertCount, nodeCount int,
) EvaluationCompleted {
	return EvaluationCompleted{
		BaseEvent:      events.NewBaseEvent("verification.evaluation.completed", evaluationID, "Evaluation", tenantID),
		CaseFileID:     caseFileID,
		ApplicantID:    applicantID,
		CompanyID:      companyID,
		FinalScore:     finalScore,
		Recommendation: recommendation,
		RiskLevel:      riskLevel,
		AlertCount:     alertCount,
		NodeCount:      nodeCount,
	}
}

// ---------------------------------------------------------------------------
// Document pipeline events
// ---------------------------------------------------------------------------

// DocumentProcessed is raised when OCR extraction succeeds for a document.
type DocumentProcessed struct {
	events.BaseEvent
	CaseFileID string `json:"case_file_id"`
	Kind       string `json:"kind"`
	FieldCount int    `json:"field_count"`
}

func NewDocumentProcessed(documentID, tenantID, caseFileID, kind string, fieldCount int) DocumentProcessed {
	return DocumentProcessed{
		BaseEvent:  events.NewBaseEvent("verification.document.processed", documentID, "Document", tenantID),
		CaseFileID: caseFileID,
		Kind:       kind,
		FieldCount: fieldCount,
	}
}

// DocumentProcessingFailed is raised when extraction fails after the retry.
type DocumentProcessingFailed struct {
	events.BaseEvent
	CaseFileID string `json:"case_file_id"`
	Kind       string `json:"kind"`
	Reason     string `json:"reason"`
	Attempts   int    `json:"attempts"`
}

func NewDocumentProcessingFailed(documentID, tenantID, caseFileID, kind, reason string, attempts int) DocumentProcessingFailed {
	return DocumentProcessingFailed{
		BaseEvent:  events.NewBaseEvent("verification.document.failed", documentID, "Document", tenantID),
		CaseFileID: caseFileID,
		Kind:       kind,
		Reason:     reason,
		Attempts:   attempts,
	}
}
