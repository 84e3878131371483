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
// Case file management use cases
// ---------------------------------------------------------------------------

// CreateCaseFileUseCase opens a new case file for an applicant/company pair.
type CreateCaseFileUseCase struct {
	caseRepo  port.CaseFileRepository
	publisher port.EventPublisher
}

// NewCreateCaseFileUseCase wires dependencies.
func NewCreateCaseFileUseCase(caseRepo port.CaseFileRepository, publisher port.EventPublisher) *CreateCaseFileUseCase {
	return &CreateCaseFileUseCase{caseRepo: caseRepo, publisher: publisher}
}

// Execute creates and persists a new case file.
func (uc *CreateCaseFileUseCase) Execute(ctx context.Context, req dto.CreateCaseFileRequest) (dto.CaseFileResponse, error) {
	cf, err := model.NewCaseFile(
		req.TenantID, req.ApplicantID, req.CompanyID,
		req.ApplicantName, req.CompanyName, time.Now().UTC(),
	)
	if err != nil {
		return dto.CaseFileResponse{}, fmt.Errorf("create case file: %w", err)
	}
	if err := uc.caseRepo.Save(ctx, cf); err != nil {
		return dto.CaseFileResponse{}, fmt.Errorf("save case file: %w", err)
	}
	if err := uc.publisher.Publish(ctx, cf.DomainEvents()...); err != nil {
		return dto.CaseFileResponse{}, fmt.Errorf("publish events: %w", err)
	}
	return toCaseFileResponse(cf), nil
}

// GetCaseFileUseCase retrieves a single case file.
type GetCaseFileUseCase struct {
	caseRepo port.CaseFileRepository
}

// NewGetCaseFileUseCase wires dependencies.
func NewGetCaseFileUseCase(caseRepo port.CaseFileRepository) *GetCaseFileUseCase {
	return &GetCaseFileUseCase{caseRepo: caseRepo}
}

// Execute loads a case file by identifier.
func (uc *GetCaseFileUseCase) Execute(ctx context.Context, req dto.GetCaseFileRequest) (dto.CaseFileResponse, error) {
	cf, err := uc.caseRepo.FindByID(ctx, req.TenantID, req.CaseFileID)
	if err != nil {
		return dto.CaseFileResponse{}, fmt.Errorf("load case file: %w", err)
	}
	return toCaseFileResponse(cf), nil
}

// ListCaseFilesUseCase pages through a tenant's case files.
type ListCaseFilesUseCase struct {
	caseRepo port.CaseFileRepository
}

// NewListCaseFilesUseCase wires dependencies.
func NewListCaseFilesUseCase(caseRepo port.CaseFileRepository) *ListCaseFilesUseCase {
	return &ListCaseFilesUseCase{caseRepo: caseRepo}
}

// Execute lists case files with paging defaults applied.
func (uc *ListCaseFilesUseCase) Execute(ctx context.Context, req dto.ListCaseFilesRequest) ([]dto.CaseFileResponse, error) {
	limit := req.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}
	files, err := uc.caseRepo.List(ctx, req.TenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list case files: %w", err)
	}
	out := make([]dto.CaseFileResponse, 0, len(files))
	for _, cf := range files {
		out = append(out, toCaseFileResponse(cf))
	}
	return out, nil
}

// DeleteCaseFileUseCase removes a case file.
type DeleteCaseFileUseCase struct {
	caseRepo port.CaseFileRepository
}

// NewDeleteCaseFileUseCase wires dependencies.
func NewDeleteCaseFileUseCase(caseRepo port.CaseFileRepository) *DeleteCaseFileUseCase {
	return &DeleteCaseFileUseCase{caseRepo: caseRepo}
}

// Execute deletes a case file by identifier.
func (uc *DeleteCaseFileUseCase) Execute(ctx context.Context, req dto.DeleteCaseFileRequest) error {
	if err := uc.caseRepo.Delete(ctx, req.TenantID, req.CaseFileID); err != nil {
		return fmt.Errorf("delete case file: %w", err)
	}
	return nil
}
