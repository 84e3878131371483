package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/application/dto"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/model"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/port"
)

// ---------------------------------------------------------------------------
// Document use cases
// ---------------------------------------------------------------------------

// UploadDocumentUseCase registers a stored document and queues it for
// background extraction.
type UploadDocumentUseCase struct {
	caseRepo port.CaseFileRepository
	docRepo  port.DocumentRepository
	queue    port.DocumentQueue
}

// NewUploadDocumentUseCase wires dependencies.
func NewUploadDocumentUseCase(
	caseRepo port.CaseFileRepository,
	docRepo port.DocumentRepository,
	queue port.DocumentQueue,
) *UploadDocumentUseCase {
	return &UploadDocumentUseCase{caseRepo: caseRepo, docRepo: docRepo, queue: queue}
}

// Execute validates the case file, persists the document as UPLOADED and
// enqueues it. The extraction itself happens on the pipeline workers.
func (uc *UploadDocumentUseCase) Execute(ctx context.Context, req dto.UploadDocumentRequest) (dto.DocumentResponse, error) {
	if _, err := uc.caseRepo.FindByID(ctx, req.TenantID, req.CaseFileID); err != nil {
		return dto.DocumentResponse{}, fmt.Errorf("load case file: %w", err)
	}

	doc, err := model.NewDocument(req.TenantID, req.CaseFileID, req.Kind, req.StorageKey, time.Now().UTC())
	if err != nil {
		return dto.DocumentResponse{}, fmt.Errorf("create document: %w", err)
	}
	if err := uc.docRepo.Save(ctx, doc); err != nil {
		return dto.DocumentResponse{}, fmt.Errorf("save document: %w", err)
	}

	uc.queue.EnqueueDocument(doc.TenantID(), doc.ID())
	return toDocumentResponse(doc), nil
}

// GetDocumentUseCase retrieves a single document with its extraction state.
type GetDocumentUseCase struct {
	docRepo port.DocumentRepository
}

// NewGetDocumentUseCase wires dependencies.
func NewGetDocumentUseCase(docRepo port.DocumentRepository) *GetDocumentUseCase {
	return &GetDocumentUseCase{docRepo: docRepo}
}

// Execute loads a document by identifier.
func (uc *GetDocumentUseCase) Execute(ctx context.Context, req dto.GetDocumentRequest) (dto.DocumentResponse, error) {
	doc, err := uc.docRepo.FindByID(ctx, req.TenantID, req.DocumentID)
	if err != nil {
		return dto.DocumentResponse{}, fmt.Errorf("load document: %w", err)
	}
	return toDocumentResponse(doc), nil
}

func toDocumentResponse(doc model.Document) dto.DocumentResponse {
	return dto.DocumentResponse{
		ID:            doc.ID(),
		TenantID:      doc.TenantID(),
		CaseFileID:    doc.CaseFileID(),
		Kind:          doc.Kind(),
		StorageKey:    doc.StorageKey(),
		Status:        doc.Status().String(),
		Attempts:      doc.Attempts(),
		Extracted:     doc.ExtractedFields(),
		FailureReason: doc.FailureReason(),
		CreatedAt:     doc.CreatedAt(),
		UpdatedAt:     doc.UpdatedAt(),
	}
}
