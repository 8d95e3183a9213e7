package intel

import (
	"context"
	"sync"

	"github.com/xnn-portal/xnn-portal/internal/identity"
	"github.com/xnn-portal/xnn-portal/internal/rbac"
	"github.com/xnn-portal/xnn-portal/internal/shared"
)

// Service is the intelligence dashboard state container. Reads require the
// intelligence area policy; classified documents additionally require the
// document's own clearance level.
type Service struct {
	mu          sync.RWMutex
	threat      ThreatLevel
	regions     []Region
	alerts      []Alert
	documents   []Document
	clock       shared.Clock
	areaPolicy  rbac.Policy
	vaultPolicy rbac.Policy
}

// NewService constructs the dashboard from seed data.
func NewService(clock shared.Clock, threat ThreatLevel, regions []Region, alerts []Alert, documents []Document) *Service {
	return &Service{
		threat:      threat,
		regions:     regions,
		alerts:      alerts,
		documents:   documents,
		clock:       clock,
		areaPolicy:  rbac.AreaPolicy(rbac.AreaIntelligence),
		vaultPolicy: rbac.AreaPolicy(rbac.AreaIntelligenceVault),
	}
}

func (s *Service) authorize(ctx context.Context) error {
	return rbac.Evaluate(identity.ActorFromContext(ctx), s.areaPolicy)
}

// Threat returns the current global threat level.
func (s *Service) Threat(ctx context.Context) (ThreatLevel, error) {
	if err := s.authorize(ctx); err != nil {
		return ThreatLevel{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.threat, nil
}

// SetThreat updates the global threat level. Levels outside 1..5 are
// rejected.
func (s *Service) SetThreat(ctx context.Context, level int, description string) (ThreatLevel, error) {
	if err := s.authorize(ctx); err != nil {
		return ThreatLevel{}, err
	}
	label := ThreatLabel(level)
	if label == "" {
		return ThreatLevel{}, shared.ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.threat = ThreatLevel{
		Level:       level,
		Label:       label,
		Description: description,
		UpdatedAt:   s.clock.Now(),
	}
	return s.threat, nil
}

// Regions lists all monitored regions.
func (s *Service) Regions(ctx context.Context) ([]Region, error) {
	if err := s.authorize(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Region(nil), s.regions...), nil
}

// Region returns one region by id.
func (s *Service) Region(ctx context.Context, id string) (Region, error) {
	if err := s.authorize(ctx); err != nil {
		return Region{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.regions {
		if r.ID == id {
			return r, nil
		}
	}
	return Region{}, shared.ErrNotFound
}

// ActiveAlerts lists unacknowledged alerts.
func (s *Service) ActiveAlerts(ctx context.Context) ([]Alert, error) {
	if err := s.authorize(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Alert
	for _, a := range s.alerts {
		if !a.Acknowledged {
			out = append(out, a)
		}
	}
	return out, nil
}

// AcknowledgeAlert marks an alert as handled.
func (s *Service) AcknowledgeAlert(ctx context.Context, alertID string) error {
	if err := s.authorize(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.alerts {
		if s.alerts[i].ID == alertID {
			s.alerts[i].Acknowledged = true
			return nil
		}
	}
	return shared.ErrNotFound
}

// Documents lists classified briefings the actor is cleared to see. The
// vault policy gates entry; each document's clearance gates its row.
func (s *Service) Documents(ctx context.Context) ([]Document, error) {
	actor := identity.ActorFromContext(ctx)
	if err := rbac.Evaluate(actor, s.vaultPolicy); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Document
	for _, doc := range s.documents {
		if (rbac.ClearancePolicy{Minimum: doc.Clearance}).Allows(actor) {
			out = append(out, doc)
		}
	}
	return out, nil
}

// Document returns one briefing. A document above the actor's clearance is
// indistinguishable from a missing one.
func (s *Service) Document(ctx context.Context, id string) (Document, error) {
	actor := identity.ActorFromContext(ctx)
	if err := rbac.Evaluate(actor, s.vaultPolicy); err != nil {
		return Document{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, doc := range s.documents {
		if doc.ID == id {
			if !(rbac.ClearancePolicy{Minimum: doc.Clearance}).Allows(actor) {
				return Document{}, shared.ErrNotFound
			}
			return doc, nil
		}
	}
	return Document{}, shared.ErrNotFound
}
