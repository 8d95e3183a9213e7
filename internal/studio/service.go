package studio

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/xnn-portal/xnn-portal/internal/identity"
	"github.com/xnn-portal/xnn-portal/internal/rbac"
	"github.com/xnn-portal/xnn-portal/internal/shared"
)

// Service is the broadcast control panel state container. Every mutation is
// gated by the studio area policy; denial surfaces shared.ErrUnauthorized.
type Service struct {
	mu       sync.RWMutex
	state    State
	clock    shared.Clock
	policy   rbac.Policy
	snapshot SnapshotStore
}

// NewService constructs the studio with the default camera setup.
func NewService(clock shared.Clock, snapshot SnapshotStore) *Service {
	return &Service{
		state: State{
			Ticker:       Ticker{Speed: TickerNormal},
			Cameras:      DefaultCameras(),
			ActiveCamera: "cam-1",
		},
		clock:    clock,
		policy:   rbac.AreaPolicy(rbac.AreaStudio),
		snapshot: snapshot,
	}
}

// Restore replaces the state from a stored snapshot, if one exists.
func (s *Service) Restore(ctx context.Context) error {
	if s.snapshot == nil {
		return nil
	}
	state, ok, err := s.snapshot.Load(ctx)
	if err != nil || !ok {
		return err
	}
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	return nil
}

// State returns the current snapshot.
func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneState(s.state)
}

func (s *Service) mutate(ctx context.Context, fn func(*State)) error {
	if err := rbac.Evaluate(identity.ActorFromContext(ctx), s.policy); err != nil {
		return err
	}
	s.mu.Lock()
	fn(&s.state)
	state := cloneState(s.state)
	s.mu.Unlock()
	if s.snapshot != nil {
		return s.snapshot.Save(ctx, state)
	}
	return nil
}

// GoLive starts the broadcast.
func (s *Service) GoLive(ctx context.Context) error {
	return s.mutate(ctx, func(st *State) {
		st.IsLive = true
		st.StreamKey = "xnn-" + uuid.NewString()
	})
}

// StopLive ends the broadcast.
func (s *Service) StopLive(ctx context.Context) error {
	return s.mutate(ctx, func(st *State) {
		st.IsLive = false
		st.StreamKey = ""
	})
}

// SwitchCamera makes the given camera the single active feed.
func (s *Service) SwitchCamera(ctx context.Context, cameraID string) error {
	if err := rbac.Evaluate(identity.ActorFromContext(ctx), s.policy); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	for i := range s.state.Cameras {
		if s.state.Cameras[i].ID == cameraID {
			found = true
			break
		}
	}
	if !found {
		return shared.ErrNotFound
	}
	for i := range s.state.Cameras {
		s.state.Cameras[i].IsActive = s.state.Cameras[i].ID == cameraID
	}
	s.state.ActiveCamera = cameraID
	return nil
}

// PushLowerThird shows a caption strip.
func (s *Service) PushLowerThird(ctx context.Context, text, subtext string, kind LowerThirdType) error {
	if kind == "" {
		kind = LowerThirdAnchor
	}
	return s.mutate(ctx, func(st *State) {
		st.LowerThird = &LowerThird{
			ID:      "lt-" + uuid.NewString(),
			Text:    text,
			Subtext: subtext,
			Type:    kind,
			Visible: true,
		}
	})
}

// ClearLowerThird removes the caption strip.
func (s *Service) ClearLowerThird(ctx context.Context) error {
	return s.mutate(ctx, func(st *State) { st.LowerThird = nil })
}

// TriggerBreaking raises the breaking banner attributed to the actor.
func (s *Service) TriggerBreaking(ctx context.Context, headline, content string) error {
	actor := identity.ActorFromContext(ctx)
	return s.mutate(ctx, func(st *State) {
		st.BreakingNews = &BreakingNews{
			ID:          "brk-" + uuid.NewString(),
			Headline:    headline,
			Content:     content,
			TriggeredAt: s.clock.Now(),
			TriggeredBy: actor.Username,
		}
	})
}

// ClearBreaking removes the breaking banner.
func (s *Service) ClearBreaking(ctx context.Context) error {
	return s.mutate(ctx, func(st *State) { st.BreakingNews = nil })
}

// StartTicker starts the crawl.
func (s *Service) StartTicker(ctx context.Context) error {
	return s.mutate(ctx, func(st *State) { st.Ticker.IsRunning = true })
}

// StopTicker stops the crawl.
func (s *Service) StopTicker(ctx context.Context) error {
	return s.mutate(ctx, func(st *State) { st.Ticker.IsRunning = false })
}

// SetTickerSpeed adjusts the crawl rate.
func (s *Service) SetTickerSpeed(ctx context.Context, speed TickerSpeed) error {
	return s.mutate(ctx, func(st *State) { st.Ticker.Speed = speed })
}

// AddTickerItem appends a crawl item.
func (s *Service) AddTickerItem(ctx context.Context, item string) error {
	return s.mutate(ctx, func(st *State) {
		st.Ticker.Items = append(st.Ticker.Items, item)
	})
}

// RemoveTickerItem removes the crawl item at index; out-of-range indexes
// are ignored.
func (s *Service) RemoveTickerItem(ctx context.Context, index int) error {
	return s.mutate(ctx, func(st *State) {
		if index < 0 || index >= len(st.Ticker.Items) {
			return
		}
		st.Ticker.Items = append(st.Ticker.Items[:index], st.Ticker.Items[index+1:]...)
	})
}

// SetSegment switches the current rundown segment.
func (s *Service) SetSegment(ctx context.Context, segment *Segment) error {
	return s.mutate(ctx, func(st *State) { st.Segment = segment })
}

// EmergencyBroadcast goes live with a breaking banner in one step.
func (s *Service) EmergencyBroadcast(ctx context.Context, message string) error {
	actor := identity.ActorFromContext(ctx)
	return s.mutate(ctx, func(st *State) {
		st.IsLive = true
		if st.StreamKey == "" {
			st.StreamKey = "xnn-" + uuid.NewString()
		}
		st.BreakingNews = &BreakingNews{
			ID:          "brk-" + uuid.NewString(),
			Headline:    "EMERGENCY BROADCAST",
			Content:     message,
			TriggeredAt: s.clock.Now(),
			TriggeredBy: actor.Username,
		}
	})
}

func cloneState(st State) State {
	out := st
	out.Cameras = append([]Camera(nil), st.Cameras...)
	out.Ticker.Items = append([]string(nil), st.Ticker.Items...)
	if st.Segment != nil {
		seg := *st.Segment
		out.Segment = &seg
	}
	if st.LowerThird != nil {
		lt := *st.LowerThird
		out.LowerThird = &lt
	}
	if st.BreakingNews != nil {
		brk := *st.BreakingNews
		out.BreakingNews = &brk
	}
	return out
}
