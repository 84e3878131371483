package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/application/dto"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/application/usecase"
)

// Compile-time assertion that VerificationHandler implements VerificationServiceServer.
var _ VerificationServiceServer = (*VerificationHandler)(nil)

// VerificationHandler implements the gRPC VerificationServiceServer interface.
type VerificationHandler struct {
	UnimplementedVerificationServiceServer
	evaluateCase  *usecase.EvaluateCaseUseCase
	getEvaluation *usecase.GetEvaluationUseCase
	createCase    *usecase.CreateCaseFileUseCase
	getCase       *usecase.GetCaseFileUseCase
	listCases     *usecase.ListCaseFilesUseCase
	deleteCase    *usecase.DeleteCaseFileUseCase
	uploadDoc     *usecase.UploadDocumentUseCase
	getDoc        *usecase.GetDocumentUseCase
}

func NewVerificationHandler(
	evaluateCase *usecase.EvaluateCaseUseCase,
	getEvaluation *usecase.GetEvaluationUseCase,
	createCase *usecase.CreateCaseFileUseCase,
	getCase *usecase.GetCaseFileUseCase,
	listCases *usecase.ListCaseFilesUseCase,
	deleteCase *usecase.DeleteCaseFileUseCase,
	uploadDoc *usecase.UploadDocumentUseCase,
	getDoc *usecase.GetDocumentUseCase,
) *VerificationHandler {
	return &VerificationHandler{
		evaluateCase:  evaluateCase,
		getEvaluation: getEvaluation,
		createCase:    createCase,
		getCase:       getCase,
		listCases:     listCases,
		deleteCase:    deleteCase,
		uploadDoc:     uploadDoc,
		getDoc:        getDoc,
	}
}

// Proto-aligned request/response message types. The server runs the JSON
// codec, so these marshal with the same tags the REST-facing DTOs use.

type EvaluateCaseRequest struct {
	TenantID   string `json:"tenant_id"`
	CaseFileID string `json:"case_file_id"`
	MaxDepth   int32  `json:"max_depth,omitempty"`
}

type EvaluateCaseResponse struct {
	Evaluation *dto.EvaluationResponse `json:"evaluation"`
}

type GetEvaluationRequest struct {
	TenantID     string `json:"tenant_id"`
	EvaluationID string `json:"evaluation_id"`
}

type GetEvaluationResponse struct {
	Evaluation *dto.EvaluationResponse `json:"evaluation"`
}

type CreateCaseFileRequest struct {
	TenantID      string `json:"tenant_id"`
	ApplicantID   string `json:"applicant_id"`
	CompanyID     string `json:"company_id"`
	ApplicantName string `json:"applicant_name"`
	CompanyName   string `json:"company_name"`
}

type CreateCaseFileResponse struct {
	CaseFile *dto.CaseFileResponse `json:"case_file"`
}

type GetCaseFileRequest struct {
	TenantID   string `json:"tenant_id"`
	CaseFileID string `json:"case_file_id"`
}

type GetCaseFileResponse struct {
	CaseFile *dto.CaseFileResponse `json:"case_file"`
}

type ListCaseFilesRequest struct {
	TenantID string `json:"tenant_id"`
	Limit    int32  `json:"limit,omitempty"`
	Offset   int32  `json:"offset,omitempty"`
}

type ListCaseFilesResponse struct {
	CaseFiles []dto.CaseFileResponse `json:"case_files"`
}

type DeleteCaseFileRequest struct {
	TenantID   string `json:"tenant_id"`
	CaseFileID string `json:"case_file_id"`
}

type DeleteCaseFileResponse struct {
	Deleted bool `json:"deleted"`
}

type UploadDocumentRequest struct {
	TenantID   string `json:"tenant_id"`
	CaseFileID string `json:"case_file_id"`
	Kind       string `json:"kind"`
	StorageKey string `json:"storage_key"`
}

type UploadDocumentResponse struct {
	Document *dto.DocumentResponse `json:"document"`
}

type GetDocumentRequest struct {
	TenantID   string `json:"tenant_id"`
	DocumentID string `json:"document_id"`
}

type GetDocumentResponse struct {
	Document *dto.DocumentResponse `json:"document"`
}

// EvaluateCase runs a fresh evaluation of a case file.
func (h *VerificationHandler) EvaluateCase(ctx context.Context, req *EvaluateCaseRequest) (*EvaluateCaseResponse, error) {
	if req.TenantID == "" || req.CaseFileID == "" {
		return nil, status.Error(codes.InvalidArgument, "tenant_id and case_file_id are required")
	}
	res, err := h.evaluateCase.Execute(ctx, dto.EvaluateCaseRequest{
		TenantID:   req.TenantID,
		CaseFileID: req.CaseFileID,
		MaxDepth:   int(req.MaxDepth),
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &EvaluateCaseResponse{Evaluation: &res}, nil
}

// GetEvaluation retrieves a stored evaluation result.
func (h *VerificationHandler) GetEvaluation(ctx context.Context, req *GetEvaluationRequest) (*GetEvaluationResponse, error) {
	res, err := h.getEvaluation.Execute(ctx, dto.GetEvaluationRequest{
		TenantID:     req.TenantID,
		EvaluationID: req.EvaluationID,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &GetEvaluationResponse{Evaluation: &res}, nil
}

// CreateCaseFile opens a new case file.
func (h *VerificationHandler) CreateCaseFile(ctx context.Context, req *CreateCaseFileRequest) (*CreateCaseFileResponse, error) {
	res, err := h.createCase.Execute(ctx, dto.CreateCaseFileRequest{
		TenantID:      req.TenantID,
		ApplicantID:   req.ApplicantID,
		CompanyID:     req.CompanyID,
		ApplicantName: req.ApplicantName,
		CompanyName:   req.CompanyName,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &CreateCaseFileResponse{CaseFile: &res}, nil
}

// GetCaseFile retrieves a case file.
func (h *VerificationHandler) GetCaseFile(ctx context.Context, req *GetCaseFileRequest) (*GetCaseFileResponse, error) {
	res, err := h.getCase.Execute(ctx, dto.GetCaseFileRequest{
		TenantID:   req.TenantID,
		CaseFileID: req.CaseFileID,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &GetCaseFileResponse{CaseFile: &res}, nil
}

// ListCaseFiles pages through a tenant's case files.
func (h *VerificationHandler) ListCaseFiles(ctx context.Context, req *ListCaseFilesRequest) (*ListCaseFilesResponse, error) {
	res, err := h.listCases.Execute(ctx, dto.ListCaseFilesRequest{
		TenantID: req.TenantID,
		Limit:    int(req.Limit),
		Offset:   int(req.Offset),
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &ListCaseFilesResponse{CaseFiles: res}, nil
}

// DeleteCaseFile removes a case file.
func (h *VerificationHandler) DeleteCaseFile(ctx context.Context, req *DeleteCaseFileRequest) (*DeleteCaseFileResponse, error) {
	err := h.deleteCase.Execute(ctx, dto.DeleteCaseFileRequest{
		TenantID:   req.TenantID,
		CaseFileID: req.CaseFileID,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &DeleteCaseFileResponse{Deleted: true}, nil
}

// UploadDocument registers a stored document and queues it for extraction.
func (h *VerificationHandler) UploadDocument(ctx context.Context, req *UploadDocumentRequest) (*UploadDocumentResponse, error) {
	res, err := h.uploadDoc.Execute(ctx, dto.UploadDocumentRequest{
		TenantID:   req.TenantID,
		CaseFileID: req.CaseFileID,
		Kind:       req.Kind,
		StorageKey: req.StorageKey,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &UploadDocumentResponse{Document: &res}, nil
}

// GetDocument retrieves a document with its extraction state.
func (h *VerificationHandler) GetDocument(ctx context.Context, req *GetDocumentRequest) (*GetDocumentResponse, error) {
	res, err := h.getDoc.Execute(ctx, dto.GetDocumentRequest{
		TenantID:   req.TenantID,
		DocumentID: req.DocumentID,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &GetDocumentResponse{Document: &res}, nil
}
