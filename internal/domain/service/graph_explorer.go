package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/model"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/port"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// GraphExplorer – bounded breadth-first traversal of the bureau network
// ---------------------------------------------------------------------------

// GraphExplorer discovers the relationship network around an applicant and
// a company by querying the bureau once per distinct entity. Each run owns
// its own graph and visited set, so concurrent evaluations for different
// applicants need no coordination.
type GraphExplorer struct {
	bureau     port.BureauGateway
	classifier *RiskClassifier
	logger     *slog.Logger
}

// NewGraphExplorer wires dependencies.
func NewGraphExplorer(bureau port.BureauGateway, classifier *RiskClassifier, logger *slog.Logger) *GraphExplorer {
	return &GraphExplorer{
		bureau:     bureau,
		classifier: classifier,
		logger:     logger,
	}
}

// frontierItem is one pending expansion: a node already accepted into the
// graph whose relations have not been walked yet.
type frontierItem struct {
	profile port.EntityProfile
	depth   int
}

// Explore runs a breadth-first traversal from the two depth-0 seeds down to
// maxDepth. Both seed lookups must succeed: the run aborts with
// ErrSeedNotFound rather than returning a partial graph anchored on
// nothing. A lookup failure deeper in the traversal prunes that branch,
// records a diagnostic on the graph, and the run continues.
//
// The bureau is queried exactly once per distinct entity accepted into the
// graph, regardless of how many relationship edges reference it.
func (e *GraphExplorer) Explore(ctx context.Context, applicantID, companyID string, maxDepth int) (*model.Graph, error) {
	if applicantID == "" || companyID == "" {
		return nil, fmt.Errorf("explorer: both applicant and company identifiers are required")
	}

	graph := model.NewGraph()
	var frontier []frontierItem

	// Seed lookups are fatal on failure.
	seedIDs := []string{applicantID}
	if companyID != applicantID {
		seedIDs = append(seedIDs, companyID)
	}
	for _, id := range seedIDs {
		profile, err := e.bureau.FetchProfile(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", valueobject.ErrSeedNotFound, id, err)
		}
		e.accept(graph, profile, 0)
		frontier = append(frontier, frontierItem{profile: profile, depth: 0})
	}

	// Breadth-first expansion. The frontier only ever holds accepted nodes,
	// so depth d is fully expanded before depth d+1 begins and the first
	// visit to any entity is at its shallowest reachable depth.
	for len(frontier) > 0 {
		item := frontier[0]
		frontier = frontier[1:]

		childDepth := item.depth + 1
		for _, rel := range item.profile.Relations {
			if rel.ID == "" || rel.ID == item.profile.ID {
				continue
			}

			if graph.Has(rel.ID) {
				// Already visited at an equal or shallower depth: no new
				// node and no duplicate bureau lookup, only the edge.
				e.connect(graph, item.profile.ID, rel.ID, rel.RelationType)
				continue
			}

			if childDepth > maxDepth {
				// Beyond the blast-radius bound: the entity and its edge
				// are dropped.
				continue
			}

			profile, err := e.bureau.FetchProfile(ctx, rel.ID)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				graph.AddDiagnostic(rel.ID, childDepth, err.Error())
				e.logger.Warn("pruning branch after lookup failure",
					"entity_id", rel.ID,
					"depth", childDepth,
					"error", err,
				)
				continue
			}

			e.accept(graph, profile, childDepth)
			e.connect(graph, item.profile.ID, profile.ID, rel.RelationType)
			frontier = append(frontier, frontierItem{profile: profile, depth: childDepth})
		}
	}

	summary := graph.Summary()
	e.logger.Info("exploration complete",
		"applicant_id", applicantID,
		"company_id", companyID,
		"max_depth", maxDepth,
		"nodes", summary.TotalNodes,
		"persons", summary.TotalPersons,
		"companies", summary.TotalCompanies,
		"connections", summary.TotalConnections,
		"pruned", len(graph.Diagnostics()),
	)
	return graph, nil
}

// accept classifies the entity's bureau label and inserts the node.
func (e *GraphExplorer) accept(graph *model.Graph, profile port.EntityProfile, depth int) {
	cls := e.classifier.Classify(profile.RiskLabel)
	node := &model.NetworkNode{
		ID:     profile.ID,
		Kind:   profile.Kind,
		Name:   profile.Name,
		Depth:  depth,
		Score:  cls.Score,
		Level:  cls.Level,
		Status: cls.Status,
		Debts:  profile.Debts,
	}
	// The caller checks Has first, so insertion cannot collide.
	if err := graph.AddNode(node); err != nil {
		e.logger.Error("unexpected node rejection", "entity_id", profile.ID, "error", err)
	}
}

// connect records an edge between two accepted nodes. Self-loops and edges
// into unexplored territory were already filtered by the caller, so a
// rejection here is a bug worth logging, not a user-facing failure.
func (e *GraphExplorer) connect(graph *model.Graph, sourceID, targetID, relationType string) {
	conn := model.Connection{SourceID: sourceID, TargetID: targetID, RelationType: relationType}
	if err := graph.AddConnection(conn); err != nil {
		e.logger.Error("unexpected connection rejection",
			"source", sourceID,
			"target", targetID,
			"error", err,
		)
	}
}
