package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// CaseFileStatus – immutable value object
// ---------------------------------------------------------------------------

// CaseFileStatus represents the lifecycle stage of a case file (expediente).
type CaseFileStatus struct {
	value string
}

const (
	caseFileStatusOpen       = "OPEN"
	caseFileStatusEvaluating = "EVALUATING"
	caseFileStatusEvaluated  = "EVALUATED"
	caseFileStatusClosed     = "CLOSED"
)

var (
	CaseFileStatusOpen       = CaseFileStatus{value: caseFileStatusOpen}
	CaseFileStatusEvaluating = CaseFileStatus{value: caseFileStatusEvaluating}
	CaseFileStatusEvaluated  = CaseFileStatus{value: caseFileStatusEvaluated}
	CaseFileStatusClosed     = CaseFileStatus{value: caseFileStatusClosed}
)

var validCaseFileStatuses = map[string]CaseFileStatus{
	caseFileStatusOpen:       CaseFileStatusOpen,
	caseFileStatusEvaluating: CaseFileStatusEvaluating,
	caseFileStatusEvaluated:  CaseFileStatusEvaluated,
	caseFileStatusClosed:     CaseFileStatusClosed,
}

// NewCaseFileStatus creates a CaseFileStatus from a raw string.
func NewCaseFileStatus(s string) (CaseFileStatus, error) {
	v, ok := validCaseFileStatuses[s]
	if !ok {
		return CaseFileStatus{}, fmt.Errorf("invalid case file status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s CaseFileStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s CaseFileStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s CaseFileStatus) Equal(other CaseFileStatus) bool { return s.value == other.value }

// ---------------------------------------------------------------------------
// DocumentStatus – immutable value object
// ---------------------------------------------------------------------------

// DocumentStatus represents the processing state of an uploaded document.
// UPLOADED and PROCESSING are non-terminal: on restart, documents stuck in
// either state are re-enqueued once for processing.
type DocumentStatus struct {
	value string
}

const (
	documentStatusUploaded   = "UPLOADED"
	documentStatusProcessing = "PROCESSING"
	documentStatusProcessed  = "PROCESSED"
	documentStatusFailed     = "FAILED"
)

var (
	DocumentStatusUploaded   = DocumentStatus{value: documentStatusUploaded}
	DocumentStatusProcessing = DocumentStatus{value: documentStatusProcessing}
	DocumentStatusProcessed  = DocumentStatus{value: documentStatusProcessed}
	DocumentStatusFailed     = DocumentStatus{value: documentStatusFailed}
)

var validDocumentStatuses = map[string]DocumentStatus{
	documentStatusUploaded:   DocumentStatusUploaded,
	documentStatusProcessing: DocumentStatusProcessing,
	documentStatusProcessed:  DocumentStatusProcessed,
	documentStatusFailed:     DocumentStatusFailed,
}

// NewDocumentStatus creates a DocumentStatus from a raw string.
func NewDocumentStatus(s string) (DocumentStatus, error) {
	v, ok := validDocumentStatuses[s]
	if !ok {
		return DocumentStatus{}, fmt.Errorf("invalid document status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s DocumentStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s DocumentStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s DocumentStatus) Equal(other DocumentStatus) bool { return s.value == other.value }

// IsTerminal reports whether the document has finished processing.
func (s DocumentStatus) IsTerminal() bool {
	return s.value == documentStatusProcessed || s.value == documentStatusFailed
}

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	// ErrInvalidStatusTransition is returned when an aggregate transition is
	// attempted from an incompatible state.
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrSeedNotFound is returned when one of the two root entities of an
	// exploration cannot be resolved by the bureau. It is fatal for the
	// evaluation: no partial graph is produced.
	ErrSeedNotFound = errors.New("seed entity not found")
)
