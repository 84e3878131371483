package usecase

import (
	"context"
	"fmt"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/application/dto"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/port"
)

// GetEvaluationUseCase retrieves a persisted evaluation result.
type GetEvaluationUseCase struct {
	evalRepo port.EvaluationRepository
}

// NewGetEvaluationUseCase wires dependencies.
func NewGetEvaluationUseCase(evalRepo port.EvaluationRepository) *GetEvaluationUseCase {
	return &GetEvaluationUseCase{evalRepo: evalRepo}
}

// Execute loads an evaluation by identifier.
func (uc *GetEvaluationUseCase) Execute(ctx context.Context, req dto.GetEvaluationRequest) (dto.EvaluationResponse, error) {
	res, err := uc.evalRepo.FindByID(ctx, req.TenantID, req.EvaluationID)
	if err != nil {
		return dto.EvaluationResponse{}, fmt.Errorf("load evaluation: %w", err)
	}
	return toEvaluationResponse(res), nil
}
