package postgres

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/model"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/valueobject"
	"github.com/msouga/VerificacionCrediticia-sub001/pkg/money"
)

// ---------------------------------------------------------------------------
// JSONB codec for relationship graphs and alerts
// ---------------------------------------------------------------------------

// The explored graph is persisted as a single JSONB document alongside the
// evaluation row. Snapshots are immutable once written, so there is no
// versioning concern beyond the field names below.

type debtDoc struct {
	Creditor           string     `json:"creditor"`
	DebtType           string     `json:"debt_type"`
	OriginalAmount     string     `json:"original_amount"`
	OutstandingBalance string     `json:"outstanding_balance"`
	Currency           string     `json:"currency"`
	DaysOverdue        int        `json:"days_overdue"`
	Qualification      string     `json:"qualification"`
	DueDate            *time.Time `json:"due_date,omitempty"`
}

type alertDoc struct {
	Kind     string `json:"kind"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	NodeID   string `json:"node_id"`
	Depth    int    `json:"depth"`
}

type nodeDoc struct {
	ID     string     `json:"id"`
	Kind   string     `json:"kind"`
	Name   string     `json:"name"`
	Depth  int        `json:"depth"`
	Score  string     `json:"score"`
	Level  string     `json:"level"`
	Status string     `json:"status"`
	Debts  []debtDoc  `json:"debts,omitempty"`
	Alerts []alertDoc `json:"alerts,omitempty"`
}

type connectionDoc struct {
	SourceID     string `json:"source_id"`
	TargetID     string `json:"target_id"`
	RelationType string `json:"relation_type"`
}

type diagnosticDoc struct {
	EntityID string `json:"entity_id"`
	Depth    int    `json:"depth"`
	Reason   string `json:"reason"`
}

type graphDoc struct {
	Nodes       []nodeDoc       `json:"nodes"`
	Connections []connectionDoc `json:"connections,omitempty"`
	Diagnostics []diagnosticDoc `json:"diagnostics,omitempty"`
}

func encodeGraph(g *model.Graph) ([]byte, error) {
	doc := graphDoc{}
	for _, n := range g.Nodes() {
		doc.Nodes = append(doc.Nodes, nodeDoc{
			ID:     n.ID,
			Kind:   n.Kind.String(),
			Name:   n.Name,
			Depth:  n.Depth,
			Score:  n.Score.String(),
			Level:  n.Level.String(),
			Status: n.Status.String(),
			Debts:  encodeDebts(n.Debts),
			Alerts: encodeAlerts(n.Alerts),
		})
	}
	for _, c := range g.Connections() {
		doc.Connections = append(doc.Connections, connectionDoc{
			SourceID:     c.SourceID,
			TargetID:     c.TargetID,
			RelationType: c.RelationType,
		})
	}
	for _, d := range g.Diagnostics() {
		doc.Diagnostics = append(doc.Diagnostics, diagnosticDoc{
			EntityID: d.EntityID,
			Depth:    d.Depth,
			Reason:   d.Reason,
		})
	}
	return json.Marshal(doc)
}

func decodeGraph(data []byte) (*model.Graph, error) {
	var doc graphDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode graph: %w", err)
	}

	g := model.NewGraph()
	for _, nd := range doc.Nodes {
		node, err := decodeNode(nd)
		if err != nil {
			return nil, err
		}
		if err := g.AddNode(node); err != nil {
			return nil, fmt.Errorf("decode graph: %w", err)
		}
	}
	for _, cd := range doc.Connections {
		err := g.AddConnection(model.Connection{
			SourceID:     cd.SourceID,
			TargetID:     cd.TargetID,
			RelationType: cd.RelationType,
		})
		if err != nil {
			return nil, fmt.Errorf("decode graph: %w", err)
		}
	}
	for _, dd := range doc.Diagnostics {
		g.AddDiagnostic(dd.EntityID, dd.Depth, dd.Reason)
	}
	return g, nil
}

func decodeNode(nd nodeDoc) (*model.NetworkNode, error) {
	kind, err := valueobject.NewEntityKind(nd.Kind)
	if err != nil {
		return nil, fmt.Errorf("decode node %s: %w", nd.ID, err)
	}
	level, err := valueobject.NewRiskLevel(nd.Level)
	if err != nil {
		return nil, fmt.Errorf("decode node %s: %w", nd.ID, err)
	}
	status, err := valueobject.NewCreditStatus(nd.Status)
	if err != nil {
		return nil, fmt.Errorf("decode node %s: %w", nd.ID, err)
	}
	score, err := decimal.NewFromString(nd.Score)
	if err != nil {
		return nil, fmt.Errorf("decode node %s score: %w", nd.ID, err)
	}
	debts, err := decodeDebts(nd.Debts)
	if err != nil {
		return nil, fmt.Errorf("decode node %s: %w", nd.ID, err)
	}
	alerts, err := decodeAlerts(nd.Alerts)
	if err != nil {
		return nil, fmt.Errorf("decode node %s: %w", nd.ID, err)
	}
	return &model.NetworkNode{
		ID:     nd.ID,
		Kind:   kind,
		Name:   nd.Name,
		Depth:  nd.Depth,
		Score:  score,
		Level:  level,
		Status: status,
		Debts:  debts,
		Alerts: alerts,
	}, nil
}

func encodeDebts(debts []model.DebtRecord) []debtDoc {
	out := make([]debtDoc, 0, len(debts))
	for _, d := range debts {
		out = append(out, debtDoc{
			Creditor:           d.Creditor,
			DebtType:           d.DebtType,
			OriginalAmount:     d.OriginalAmount.Amount().String(),
			OutstandingBalance: d.OutstandingBalance.Amount().String(),
			Currency:           d.OutstandingBalance.Currency().Code(),
			DaysOverdue:        d.DaysOverdue,
			Qualification:      d.Qualification,
			DueDate:            d.DueDate,
		})
	}
	return out
}

func decodeDebts(docs []debtDoc) ([]model.DebtRecord, error) {
	out := make([]model.DebtRecord, 0, len(docs))
	for _, dd := range docs {
		original, err := money.NewFromString(dd.OriginalAmount, dd.Currency)
		if err != nil {
			return nil, fmt.Errorf("decode debt: %w", err)
		}
		outstanding, err := money.NewFromString(dd.OutstandingBalance, dd.Currency)
		if err != nil {
			return nil, fmt.Errorf("decode debt: %w", err)
		}
		out = append(out, model.DebtRecord{
			Creditor:           dd.Creditor,
			DebtType:           dd.DebtType,
			OriginalAmount:     original,
			OutstandingBalance: outstanding,
			DaysOverdue:        dd.DaysOverdue,
			Qualification:      dd.Qualification,
			DueDate:            dd.DueDate,
		})
	}
	return out, nil
}

func marshalAlerts(alerts []model.Alert) ([]byte, error) {
	return json.Marshal(encodeAlerts(alerts))
}

func unmarshalAlerts(data []byte) ([]model.Alert, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var docs []alertDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("decode alerts: %w", err)
	}
	return decodeAlerts(docs)
}

func encodeAlerts(alerts []model.Alert) []alertDoc {
	out := make([]alertDoc, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, alertDoc{
			Kind:     string(a.Kind),
			Severity: a.Severity.String(),
			Message:  a.Message,
			NodeID:   a.NodeID,
			Depth:    a.Depth,
		})
	}
	return out
}

func decodeAlerts(docs []alertDoc) ([]model.Alert, error) {
	out := make([]model.Alert, 0, len(docs))
	for _, ad := range docs {
		severity, err := valueobject.NewAlertSeverity(ad.Severity)
		if err != nil {
			return nil, fmt.Errorf("decode alert: %w", err)
		}
		out = append(out, model.Alert{
			Kind:     model.AlertKind(ad.Kind),
			Severity: severity,
			Message:  ad.Message,
			NodeID:   ad.NodeID,
			Depth:    ad.Depth,
		})
	}
	return out, nil
}
