package model

import (
	"fmt"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Alert – structured warning raised while folding a graph
// ---------------------------------------------------------------------------

// AlertKind names the category of risk signal that triggered an alert.
type AlertKind string

const (
	// AlertKindDelinquency flags an entity with overdue payment behaviour.
	AlertKindDelinquency AlertKind = "DELINQUENCY"
	// AlertKindHighExposure flags an entity in collections or written off.
	AlertKindHighExposure AlertKind = "HIGH_EXPOSURE"
	// AlertKindStructuralRisk flags an entity with potential issues in the
	// surrounding network structure.
	AlertKindStructuralRisk AlertKind = "STRUCTURAL_RISK"
)

// Alert is created by the scoring engine when an explored entity shows an
// adverse credit status. Alerts are never mutated after creation.
type Alert struct {
	Kind     AlertKind
	Severity valueobject.AlertSeverity
	Message  string
	NodeID   string
	Depth    int
}

// NewAlert builds an alert for the given triggering node.
func NewAlert(kind AlertKind, severity valueobject.AlertSeverity, nodeID string, depth int, message string) Alert {
	return Alert{
		Kind:     kind,
		Severity: severity,
		Message:  message,
		NodeID:   nodeID,
		Depth:    depth,
	}
}

// String renders the alert for logs and diagnostics.
func (a Alert) String() string {
	return fmt.Sprintf("[%s/%s] %s (entity %s, depth %d)", a.Kind, a.Severity, a.Message, a.NodeID, a.Depth)
}
