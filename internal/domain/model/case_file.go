package model

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/event"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// CaseFile aggregate root (expediente)
// ---------------------------------------------------------------------------

// CaseFile is an immutable aggregate. Every mutation returns a new copy.
// It ties an applicant person (CURP) to the associated company (RFC) and
// records the latest evaluation produced for the pair.
type CaseFile struct {
	id                 string
	tenantID           string
	applicantID        string
	companyID          string
	applicantName      string
	companyName        string
	status             valueobject.CaseFileStatus
	latestEvaluationID string
	version            int
	createdAt          time.Time
	updatedAt          time.Time
	domainEvents       []event.DomainEvent
}

// NewCaseFile creates a brand-new case file in OPEN status.
func NewCaseFile(
	tenantID, applicantID, companyID, applicantName, companyName string,
	now time.Time,
) (CaseFile, error) {
	if tenantID == "" {
		return CaseFile{}, errors.New("tenant ID is required")
	}
	if applicantID == "" {
		return CaseFile{}, errors.New("applicant ID is required")
	}
	if companyID == "" {
		return CaseFile{}, errors.New("company ID is required")
	}

	id := uuid.New().String()
	cf := CaseFile{
		id:            id,
		tenantID:      tenantID,
		applicantID:   applicantID,
		companyID:     companyID,
		applicantName: applicantName,
		companyName:   companyName,
		status:        valueobject.CaseFileStatusOpen,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}
	cf.domainEvents = append(cf.domainEvents, event.NewCaseFileCreated(id, tenantID, applicantID, companyID))
	return cf, nil
}

// ReconstructCaseFile rebuilds an aggregate from persistence without side-effects.
func ReconstructCaseFile(
	id, tenantID, applicantID, companyID, applicantName, companyName string,
	status valueobject.CaseFileStatus,
	latestEvaluationID string,
	version int,
	createdAt, updatedAt time.Time,
) CaseFile {
	return CaseFile{
		id:                 id,
		tenantID:           tenantID,
		applicantID:        applicantID,
		companyID:          companyID,
		applicantName:      applicantName,
		companyName:        companyName,
		status:             status,
		latestEvaluationID: latestEvaluationID,
		version:            version,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions (each returns a new copy)
// ---------------------------------------------------------------------------

// BeginEvaluation transitions OPEN, EVALUATING or EVALUATED -> EVALUATING.
// EVALUATING is accepted so a run that failed after the status was persisted
// can be restarted instead of leaving the case stuck.
func (c CaseFile) BeginEvaluation(now time.Time) (CaseFile, error) {
	if c.status.Equal(valueobject.CaseFileStatusClosed) {
		return c, valueobject.ErrInvalidStatusTransition
	}
	next := c
	next.status = valueobject.CaseFileStatusEvaluating
	next.updatedAt = now
	next.version = c.version + 1
	next.domainEvents = copyCaseEvents(c.domainEvents)
	return next, nil
}

// AttachEvaluation transitions EVALUATING -> EVALUATED, recording the
// evaluation that now represents the case.
func (c CaseFile) AttachEvaluation(evaluationID string, now time.Time) (CaseFile, error) {
	if !c.status.Equal(valueobject.CaseFileStatusEvaluating) {
		return c, valueobject.ErrInvalidStatusTransition
	}
	if evaluationID == "" {
		return c, errors.New("evaluation ID is required")
	}
	next := c
	next.status = valueobject.CaseFileStatusEvaluated
	next.latestEvaluationID = evaluationID
	next.updatedAt = now
	next.version = c.version + 1
	next.domainEvents = copyCaseEvents(c.domainEvents)
	return next, nil
}

// Close transitions any non-closed status -> CLOSED and emits CaseFileClosed.
func (c CaseFile) Close(reason string, now time.Time) (CaseFile, error) {
	if c.status.Equal(valueobject.CaseFileStatusClosed) {
		return c, valueobject.ErrInvalidStatusTransition
	}
	next := c
	next.status = valueobject.CaseFileStatusClosed
	next.updatedAt = now
	next.version = c.version + 1
	next.domainEvents = copyCaseEvents(c.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewCaseFileClosed(c.id, c.tenantID, reason))
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (c CaseFile) ID() string                         { return c.id }
func (c CaseFile) TenantID() string                   { return c.tenantID }
func (c CaseFile) ApplicantID() string                { return c.applicantID }
func (c CaseFile) CompanyID() string                  { return c.companyID }
func (c CaseFile) ApplicantName() string              { return c.applicantName }
func (c CaseFile) CompanyName() string                { return c.companyName }
func (c CaseFile) Status() valueobject.CaseFileStatus { return c.status }
func (c CaseFile) LatestEvaluationID() string         { return c.latestEvaluationID }
func (c CaseFile) Version() int                       { return c.version }
func (c CaseFile) CreatedAt() time.Time               { return c.createdAt }
func (c CaseFile) UpdatedAt() time.Time               { return c.updatedAt }
func (c CaseFile) DomainEvents() []event.DomainEvent  { return c.domainEvents }

// ClearEvents returns a copy with an empty event list (call after publishing).
func (c CaseFile) ClearEvents() CaseFile {
	next := c
	next.domainEvents = nil
	return next
}

func copyCaseEvents(src []event.DomainEvent) []event.DomainEvent {
	if len(src) == 0 {
		return nil
	}
	dst := make([]event.DomainEvent, len(src))
	copy(dst, src)
	return dst
}
