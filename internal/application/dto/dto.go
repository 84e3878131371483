package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// EvaluateCaseRequest asks for a fresh evaluation of a case file.
type EvaluateCaseRequest struct {
	TenantID   string `json:"tenant_id"`
	CaseFileID string `json:"case_file_id"`
	// MaxDepth bounds the exploration; zero means the configured default.
	MaxDepth int `json:"max_depth,omitempty"`
}

// CreateCaseFileRequest opens a new case file for an applicant/company pair.
type CreateCaseFileRequest struct {
	TenantID      string `json:"tenant_id"`
	ApplicantID   string `json:"applicant_id"`
	CompanyID     string `json:"company_id"`
	ApplicantName string `json:"applicant_name"`
	CompanyName   string `json:"company_name"`
}

// GetCaseFileRequest identifies a case file to retrieve.
type GetCaseFileRequest struct {
	TenantID   string `json:"tenant_id"`
	CaseFileID string `json:"case_file_id"`
}

// ListCaseFilesRequest pages through a tenant's case files.
type ListCaseFilesRequest struct {
	TenantID string `json:"tenant_id"`
	Limit    int    `json:"limit"`
	Offset   int    `json:"offset"`
}

// DeleteCaseFileRequest identifies a case file to delete.
type DeleteCaseFileRequest struct {
	TenantID   string `json:"tenant_id"`
	CaseFileID string `json:"case_file_id"`
}

// GetEvaluationRequest identifies an evaluation to retrieve.
type GetEvaluationRequest struct {
	TenantID     string `json:"tenant_id"`
	EvaluationID string `json:"evaluation_id"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// DebtRecordResponse is the external representation of one reported debt.
type DebtRecordResponse struct {
	Creditor           string          `json:"creditor"`
	DebtType           string          `json:"debt_type"`
	OriginalAmount     decimal.Decimal `json:"original_amount"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	Currency           string          `json:"currency"`
	DaysOverdue        int             `json:"days_overdue"`
	Overdue            bool            `json:"overdue"`
	Qualification      string          `json:"qualification"`
	DueDate            *time.Time      `json:"due_date,omitempty"`
}

// NetworkNodeResponse is the external representation of one graph node.
type NetworkNodeResponse struct {
	ID         string               `json:"id"`
	Kind       string               `json:"kind"`
	Name       string               `json:"name"`
	Depth      int                  `json:"depth"`
	Score      decimal.Decimal      `json:"score"`
	RiskLevel  string               `json:"risk_level"`
	Status     string               `json:"status"`
	Debts      []DebtRecordResponse `json:"debts,omitempty"`
	AlertCount int                  `json:"alert_count"`
}

// ConnectionResponse is the external representation of one graph edge.
type ConnectionResponse struct {
	SourceID     string `json:"source_id"`
	TargetID     string `json:"target_id"`
	RelationType string `json:"relation_type"`
}

// GraphResponse carries the explored network for visualization.
type GraphResponse struct {
	Nodes          []NetworkNodeResponse `json:"nodes"`
	Connections    []ConnectionResponse  `json:"connections"`
	TotalNodes     int                   `json:"total_nodes"`
	TotalPersons   int                   `json:"total_persons"`
	TotalCompanies int                   `json:"total_companies"`
	PrunedBranches int                   `json:"pruned_branches"`
}

// AlertResponse is the external representation of one alert.
type AlertResponse struct {
	Kind     string `json:"kind"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	NodeID   string `json:"node_id"`
	Depth    int    `json:"depth"`
}

// EvaluationResponse is the external representation of an evaluation result.
type EvaluationResponse struct {
	ID             string          `json:"id"`
	TenantID       string          `json:"tenant_id"`
	CaseFileID     string          `json:"case_file_id"`
	ApplicantID    string          `json:"applicant_id"`
	CompanyID      string          `json:"company_id"`
	FinalScore     decimal.Decimal `json:"final_score"`
	Recommendation string          `json:"recommendation"`
	RiskLevel      string          `json:"risk_level"`
	Alerts         []AlertResponse `json:"alerts"`
	Graph          GraphResponse   `json:"graph"`
	CreatedAt      time.Time       `json:"created_at"`
}

// CaseFileResponse is the external representation of a case file.
type CaseFileResponse struct {
	ID                 string    `json:"id"`
	TenantID           string    `json:"tenant_id"`
	ApplicantID        string    `json:"applicant_id"`
	CompanyID          string    `json:"company_id"`
	ApplicantName      string    `json:"applicant_name"`
	CompanyName        string    `json:"company_name"`
	Status             string    `json:"status"`
	LatestEvaluationID string    `json:"latest_evaluation_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// UploadDocumentRequest registers an already-stored document for extraction.
type UploadDocumentRequest struct {
	TenantID   string `json:"tenant_id"`
	CaseFileID string `json:"case_file_id"`
	Kind       string `json:"kind"`
	StorageKey string `json:"storage_key"`
}

// GetDocumentRequest identifies a single document.
type GetDocumentRequest struct {
	TenantID   string `json:"tenant_id"`
	DocumentID string `json:"document_id"`
}

// DocumentResponse is the external representation of a document.
type DocumentResponse struct {
	ID            string            `json:"id"`
	TenantID      string            `json:"tenant_id"`
	CaseFileID    string            `json:"case_file_id"`
	Kind          string            `json:"kind"`
	StorageKey    string            `json:"storage_key"`
	Status        string            `json:"status"`
	Attempts      int               `json:"attempts"`
	Extracted     map[string]string `json:"extracted,omitempty"`
	FailureReason string            `json:"failure_reason,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}
