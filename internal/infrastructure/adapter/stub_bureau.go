package adapter

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/model"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/port"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/valueobject"
	"github.com/msouga/VerificacionCrediticia-sub001/pkg/money"
)

// StubBureauGateway is an in-memory bureau for development and tests.
// Profiles are registered up front; lookups for unknown identifiers fail,
// which exercises the explorer's seed-failure and branch-pruning paths.
type StubBureauGateway struct {
	mu       sync.RWMutex
	profiles map[string]port.EntityProfile
	calls    map[string]int
}

func NewStubBureauGateway() *StubBureauGateway {
	return &StubBureauGateway{
		profiles: make(map[string]port.EntityProfile),
		calls:    make(map[string]int),
	}
}

// Register adds or replaces a profile.
func (s *StubBureauGateway) Register(p port.EntityProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.ID] = p
}

// FetchProfile implements port.BureauGateway.
func (s *StubBureauGateway) FetchProfile(ctx context.Context, entityID string) (port.EntityProfile, error) {
	if err := ctx.Err(); err != nil {
		return port.EntityProfile{}, err
	}
	s.mu.Lock()
	s.calls[entityID]++
	p, ok := s.profiles[entityID]
	s.mu.Unlock()
	if !ok {
		return port.EntityProfile{}, fmt.Errorf("bureau has no record for %q", entityID)
	}
	return p, nil
}

// Calls reports how many lookups were made for the given identifier.
func (s *StubBureauGateway) Calls(entityID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.calls[entityID]
}

// NewStubBureauGatewayWithDemoData seeds a stub with a small demo network:
// a clean applicant employed by a company with an overdue credit line and a
// high-risk supplier one hop further out. Evaluating the pair exercises
// alerts, depth weighting and branch pruning without a live bureau.
func NewStubBureauGatewayWithDemoData() *StubBureauGateway {
	s := NewStubBureauGateway()
	s.Register(port.EntityProfile{
		ID:        "GOMC900101HDFLRR03",
		Kind:      valueobject.EntityKindPerson,
		Name:      "Carlos Gómez",
		RiskLabel: "RISK LOW",
		Relations: []port.EntityRelation{{
			ID:           "ACM010101AB1",
			Kind:         valueobject.EntityKindCompany,
			Name:         "Acme Comercial",
			RelationType: "EMPLOYEE",
		}},
	})
	s.Register(port.EntityProfile{
		ID:        "ACM010101AB1",
		Kind:      valueobject.EntityKindCompany,
		Name:      "Acme Comercial",
		RiskLabel: "RISK MODERATE",
		Debts: []model.DebtRecord{{
			Creditor:           "BANCO AZTECA",
			DebtType:           "CREDIT_LINE",
			OriginalAmount:     money.New(decimal.NewFromInt(500_000), money.MXN),
			OutstandingBalance: money.New(decimal.NewFromInt(120_000), money.MXN),
			DaysOverdue:        95,
			Qualification:      "C",
		}},
		Relations: []port.EntityRelation{{
			ID:           "SUP990101XY2",
			Kind:         valueobject.EntityKindCompany,
			Name:         "Suministros del Norte",
			RelationType: "SUPPLIER",
		}},
	})
	s.Register(port.EntityProfile{
		ID:        "SUP990101XY2",
		Kind:      valueobject.EntityKindCompany,
		Name:      "Suministros del Norte",
		RiskLabel: "RISK HIGH",
	})
	return s
}
