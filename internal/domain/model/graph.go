package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/valueobject"
	"github.com/msouga/VerificacionCrediticia-sub001/pkg/money"
)

// ---------------------------------------------------------------------------
// Relationship graph (one exploration run owns one Graph instance)
// ---------------------------------------------------------------------------

// DebtRecord is a single debt reported by the bureau for an entity.
type DebtRecord struct {
	Creditor           string
	DebtType           string
	OriginalAmount     money.Money
	OutstandingBalance money.Money
	DaysOverdue        int
	Qualification      string
	DueDate            *time.Time
}

// IsOverdue reports whether the debt carries any days past due.
func (d DebtRecord) IsOverdue() bool { return d.DaysOverdue > 0 }

// Connection is a directed relationship between two nodes of the same graph.
type Connection struct {
	SourceID     string
	TargetID     string
	RelationType string
}

// NetworkNode is one entity discovered during exploration. Depth 0 marks the
// applicant/company seeds; the depth of a node is fixed at first visit and
// never revised to a deeper level.
type NetworkNode struct {
	ID     string
	Kind   valueobject.EntityKind
	Name   string
	Depth  int
	Score  decimal.Decimal
	Level  valueobject.RiskLevel
	Status valueobject.CreditStatus
	Debts  []DebtRecord

	// Alerts raised for this node. Populated by the scoring engine while
	// folding the graph; empty until then.
	Alerts []Alert
}

// TotalOutstanding sums the node's outstanding balances in the given currency.
// Debts in other currencies are skipped.
func (n *NetworkNode) TotalOutstanding(currency money.Currency) money.Money {
	total := money.Zero(currency)
	for _, d := range n.Debts {
		sum, err := total.Add(d.OutstandingBalance)
		if err != nil {
			continue
		}
		total = sum
	}
	return total
}

// Diagnostic records a non-fatal lookup failure absorbed during exploration.
// The failing branch is pruned; the evaluation continues on a partial network.
type Diagnostic struct {
	EntityID string
	Depth    int
	Reason   string
}

// GraphSummary carries the headline counts of an explored graph.
type GraphSummary struct {
	TotalNodes       int
	TotalPersons     int
	TotalCompanies   int
	TotalConnections int
}

// Graph is the deduplicated node/edge network produced by one exploration
// run. It is built by a single goroutine and handed to the scoring engine
// for the duration of one scoring call; it is never shared across runs.
type Graph struct {
	nodes       map[string]*NetworkNode
	order       []string
	connections []Connection
	diagnostics []Diagnostic
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{nodes: make(map[string]*NetworkNode)}
}

// Has reports whether an entity identifier is already part of the graph.
func (g *Graph) Has(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Node returns the node with the given identifier, if present.
func (g *Graph) Node(id string) (*NetworkNode, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// AddNode inserts a node. Each identifier appears at most once per graph:
// inserting a duplicate is rejected so the first-visited depth wins.
func (g *Graph) AddNode(n *NetworkNode) error {
	if n == nil || n.ID == "" {
		return fmt.Errorf("graph: node requires an identifier")
	}
	if _, ok := g.nodes[n.ID]; ok {
		return fmt.Errorf("graph: duplicate node %q", n.ID)
	}
	g.nodes[n.ID] = n
	g.order = append(g.order, n.ID)
	return nil
}

// AddConnection records a directed edge. Self-loops are rejected, and both
// endpoints must already exist in the graph: a relationship pointing outside
// the explored set is discarded by the caller rather than dangling here.
func (g *Graph) AddConnection(c Connection) error {
	if c.SourceID == c.TargetID {
		return fmt.Errorf("graph: self-loop on %q", c.SourceID)
	}
	if !g.Has(c.SourceID) {
		return fmt.Errorf("graph: connection source %q not in graph", c.SourceID)
	}
	if !g.Has(c.TargetID) {
		return fmt.Errorf("graph: connection target %q not in graph", c.TargetID)
	}
	g.connections = append(g.connections, c)
	return nil
}

// AddDiagnostic records an absorbed branch failure.
func (g *Graph) AddDiagnostic(entityID string, depth int, reason string) {
	g.diagnostics = append(g.diagnostics, Diagnostic{EntityID: entityID, Depth: depth, Reason: reason})
}

// Nodes returns the nodes in insertion (breadth-first) order.
func (g *Graph) Nodes() []*NetworkNode {
	out := make([]*NetworkNode, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}
	return out
}

// Connections returns the recorded edges.
func (g *Graph) Connections() []Connection { return g.connections }

// Diagnostics returns the absorbed lookup failures.
func (g *Graph) Diagnostics() []Diagnostic { return g.diagnostics }

// Summary computes the headline counts for the graph.
func (g *Graph) Summary() GraphSummary {
	s := GraphSummary{
		TotalNodes:       len(g.nodes),
		TotalConnections: len(g.connections),
	}
	for _, n := range g.nodes {
		if n.Kind.IsPerson() {
			s.TotalPersons++
		} else {
			s.TotalCompanies++
		}
	}
	return s
}
