package usecase

import (
	"github.com/msouga/VerificacionCrediticia-sub001/internal/application/dto"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/model"
)

func toEvaluationResponse(res model.EvaluationResult) dto.EvaluationResponse {
	alerts := make([]dto.AlertResponse, 0, len(res.Alerts()))
	for _, a := range res.Alerts() {
		alerts = append(alerts, dto.AlertResponse{
			Kind:     string(a.Kind),
			Severity: a.Severity.String(),
			Message:  a.Message,
			NodeID:   a.NodeID,
			Depth:    a.Depth,
		})
	}
	return dto.EvaluationResponse{
		ID:             res.ID(),
		TenantID:       res.TenantID(),
		CaseFileID:     res.CaseFileID(),
		ApplicantID:    res.ApplicantID(),
		CompanyID:      res.CompanyID(),
		FinalScore:     res.FinalScore(),
		Recommendation: res.Recommendation().String(),
		RiskLevel:      res.RiskLevel().String(),
		Alerts:         alerts,
		Graph:          toGraphResponse(res.Graph()),
		CreatedAt:      res.CreatedAt(),
	}
}

func toGraphResponse(g *model.Graph) dto.GraphResponse {
	if g == nil {
		return dto.GraphResponse{}
	}
	summary := g.Summary()
	out := dto.GraphResponse{
		TotalNodes:     summary.TotalNodes,
		TotalPersons:   summary.TotalPersons,
		TotalCompanies: summary.TotalCompanies,
		PrunedBranches: len(g.Diagnostics()),
	}
	for _, n := range g.Nodes() {
		debts := make([]dto.DebtRecordResponse, 0, len(n.Debts))
		for _, d := range n.Debts {
			debts = append(debts, dto.DebtRecordResponse{
				Creditor:           d.Creditor,
				DebtType:           d.DebtType,
				OriginalAmount:     d.OriginalAmount.Amount(),
				OutstandingBalance: d.OutstandingBalance.Amount(),
				Currency:           d.OutstandingBalance.Currency().Code(),
				DaysOverdue:        d.DaysOverdue,
				Overdue:            d.IsOverdue(),
				Qualification:      d.Qualification,
				DueDate:            d.DueDate,
			})
		}
		out.Nodes = append(out.Nodes, dto.NetworkNodeResponse{
			ID:         n.ID,
			Kind:       n.Kind.String(),
			Name:       n.Name,
			Depth:      n.Depth,
			Score:      n.Score,
			RiskLevel:  n.Level.String(),
			Status:     n.Status.String(),
			Debts:      debts,
			AlertCount: len(n.Alerts),
		})
	}
	for _, c := range g.Connections() {
		out.Connections = append(out.Connections, dto.ConnectionResponse{
			SourceID:     c.SourceID,
			TargetID:     c.TargetID,
			RelationType: c.RelationType,
		})
	}
	return out
}

func toCaseFileResponse(cf model.CaseFile) dto.CaseFileResponse {
	return dto.CaseFileResponse{
		ID:                 cf.ID(),
		TenantID:           cf.TenantID(),
		ApplicantID:        cf.ApplicantID(),
		CompanyID:          cf.CompanyID(),
		ApplicantName:      cf.ApplicantName(),
		CompanyName:        cf.CompanyName(),
		Status:             cf.Status().String(),
		LatestEvaluationID: cf.LatestEvaluationID(),
		CreatedAt:          cf.CreatedAt(),
		UpdatedAt:          cf.UpdatedAt(),
	}
}
