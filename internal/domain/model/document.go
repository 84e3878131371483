package model

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/event"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Document aggregate root (background OCR pipeline)
// ---------------------------------------------------------------------------

// Document is an uploaded identity document (INE, RFC constancy, bank
// statement) attached to a case file and processed by the background
// pipeline. Each status transition is persisted before the next stage
// starts, so a crash leaves the document in its last durable state.
type Document struct {
	id            string
	tenantID      string
	caseFileID    string
	kind          string
	storageKey    string
	status        valueobject.DocumentStatus
	attempts      int
	extracted     map[string]string
	failureReason string
	version       int
	createdAt     time.Time
	updatedAt     time.Time
	domainEvents  []event.DomainEvent
}

// NewDocument registers an uploaded document in UPLOADED status.
func NewDocument(tenantID, caseFileID, kind, storageKey string, now time.Time) (Document, error) {
	if tenantID == "" {
		return Document{}, errors.New("tenant ID is required")
	}
	if caseFileID == "" {
		return Document{}, errors.New("case file ID is required")
	}
	if storageKey == "" {
		return Document{}, errors.New("storage key is required")
	}
	return Document{
		id:         uuid.New().String(),
		tenantID:   tenantID,
		caseFileID: caseFileID,
		kind:       kind,
		storageKey: storageKey,
		status:     valueobject.DocumentStatusUploaded,
		version:    1,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructDocument rebuilds an aggregate from persistence without side-effects.
func ReconstructDocument(
	id, tenantID, caseFileID, kind, storageKey string,
	status valueobject.DocumentStatus,
	attempts int,
	extracted map[string]string,
	failureReason string,
	version int,
	createdAt, updatedAt time.Time,
) Document {
	return Document{
		id:            id,
		tenantID:      tenantID,
		caseFileID:    caseFileID,
		kind:          kind,
		storageKey:    storageKey,
		status:        status,
		attempts:      attempts,
		extracted:     copyFields(extracted),
		failureReason: failureReason,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions (each returns a new copy)
// ---------------------------------------------------------------------------

// MarkProcessing transitions UPLOADED or PROCESSING -> PROCESSING and counts
// the attempt. Re-entering PROCESSING covers the one-retry path and the
// startup re-enqueue of items left mid-flight by a crash.
func (d Document) MarkProcessing(now time.Time) (Document, error) {
	if d.status.IsTerminal() {
		return d, valueobject.ErrInvalidStatusTransition
	}
	next := d
	next.status = valueobject.DocumentStatusProcessing
	next.attempts = d.attempts + 1
	next.updatedAt = now
	next.version = d.version + 1
	next.domainEvents = copyDocEvents(d.domainEvents)
	return next, nil
}

// MarkProcessed transitions PROCESSING -> PROCESSED with the extracted
// identity fields and emits DocumentProcessed.
func (d Document) MarkProcessed(extracted map[string]string, now time.Time) (Document, error) {
	if !d.status.Equal(valueobject.DocumentStatusProcessing) {
		return d, valueobject.ErrInvalidStatusTransition
	}
	next := d
	next.status = valueobject.DocumentStatusProcessed
	next.extracted = copyFields(extracted)
	next.failureReason = ""
	next.updatedAt = now
	next.version = d.version + 1
	next.domainEvents = copyDocEvents(d.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewDocumentProcessed(
		d.id, d.tenantID, d.caseFileID, d.kind, len(extracted),
	))
	return next, nil
}

// MarkFailed transitions PROCESSING -> FAILED with the failure reason and
// emits DocumentProcessingFailed. The failure is durably recorded, never
// silently dropped.
func (d Document) MarkFailed(reason string, now time.Time) (Document, error) {
	if !d.status.Equal(valueobject.DocumentStatusProcessing) {
		return d, valueobject.ErrInvalidStatusTransition
	}
	next := d
	next.status = valueobject.DocumentStatusFailed
	next.failureReason = reason
	next.updatedAt = now
	next.version = d.version + 1
	next.domainEvents = copyDocEvents(d.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewDocumentProcessingFailed(
		d.id, d.tenantID, d.caseFileID, d.kind, reason, next.attempts,
	))
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (d Document) ID() string                         { return d.id }
func (d Document) TenantID() string                   { return d.tenantID }
func (d Document) CaseFileID() string                 { return d.caseFileID }
func (d Document) Kind() string                       { return d.kind }
func (d Document) StorageKey() string                 { return d.storageKey }
func (d Document) Status() valueobject.DocumentStatus { return d.status }
func (d Document) Attempts() int                      { return d.attempts }
func (d Document) FailureReason() string              { return d.failureReason }
func (d Document) Version() int                       { return d.version }
func (d Document) CreatedAt() time.Time               { return d.createdAt }
func (d Document) UpdatedAt() time.Time               { return d.updatedAt }
func (d Document) DomainEvents() []event.DomainEvent  { return d.domainEvents }

// ExtractedFields returns a copy of the OCR-extracted identity fields.
func (d Document) ExtractedFields() map[string]string { return copyFields(d.extracted) }

// ClearEvents returns a copy with an empty event list (call after publishing).
func (d Document) ClearEvents() Document {
	next := d
	next.domainEvents = nil
	return next
}

func copyDocEvents(src []event.DomainEvent) []event.DomainEvent {
	if len(src) == 0 {
		return nil
	}
	dst := make([]event.DomainEvent, len(src))
	copy(dst, src)
	return dst
}

func copyFields(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
