package studio_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/xnn-portal/xnn-portal/internal/identity"
	"github.com/xnn-portal/xnn-portal/internal/shared"
	"github.com/xnn-portal/xnn-portal/internal/studio"
)

func execCtx() context.Context {
	return identity.ContextWithActor(context.Background(), &identity.Principal{
		ID:       "exec-001",
		Username: "exec.producer",
		Role:     identity.RoleExecutiveEditor,
		IsActive: true,
	})
}

func editorCtx() context.Context {
	return identity.ContextWithActor(context.Background(), &identity.Principal{
		ID:       "edit-001",
		Username: "editor.test",
		Role:     identity.RoleEditor,
		IsActive: true,
	})
}

func newStudio() (*studio.Service, *shared.FixedClock) {
	clock := &shared.FixedClock{Instant: time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)}
	return studio.NewService(clock, nil), clock
}

func TestDefaultState(t *testing.T) {
	svc, _ := newStudio()
	state := svc.State()
	require.False(t, state.IsLive)
	require.Len(t, state.Cameras, 4)
	require.Equal(t, "cam-1", state.ActiveCamera)
	require.True(t, state.Cameras[0].IsActive)
	require.Equal(t, studio.TickerNormal, state.Ticker.Speed)
}

func TestEditorCannotControlStudio(t *testing.T) {
	svc, _ := newStudio()
	require.ErrorIs(t, svc.GoLive(editorCtx()), shared.ErrUnauthorized)
	require.ErrorIs(t, svc.SwitchCamera(editorCtx(), "cam-2"), shared.ErrUnauthorized)
	require.ErrorIs(t, svc.GoLive(context.Background()), shared.ErrUnauthorized)
	require.False(t, svc.State().IsLive)
}

func TestGoLiveAndStop(t *testing.T) {
	svc, _ := newStudio()
	ctx := execCtx()

	require.NoError(t, svc.GoLive(ctx))
	state := svc.State()
	require.True(t, state.IsLive)
	require.NotEmpty(t, state.StreamKey)

	require.NoError(t, svc.StopLive(ctx))
	state = svc.State()
	require.False(t, state.IsLive)
	require.Empty(t, state.StreamKey)
}

func TestSwitchCameraKeepsSingleActiveFeed(t *testing.T) {
	svc, _ := newStudio()
	ctx := execCtx()

	require.NoError(t, svc.SwitchCamera(ctx, "cam-3"))
	state := svc.State()
	require.Equal(t, "cam-3", state.ActiveCamera)
	active := 0
	for _, cam := range state.Cameras {
		if cam.IsActive {
			active++
			require.Equal(t, "cam-3", cam.ID)
		}
	}
	require.Equal(t, 1, active)

	require.ErrorIs(t, svc.SwitchCamera(ctx, "cam-9"), shared.ErrNotFound)
	require.Equal(t, "cam-3", svc.State().ActiveCamera)
}

func TestBreakingNewsAttribution(t *testing.T) {
	svc, clock := newStudio()
	ctx := execCtx()

	require.NoError(t, svc.TriggerBreaking(ctx, "Dam Failure Upstream", "Evacuations under way."))
	state := svc.State()
	require.NotNil(t, state.BreakingNews)
	require.Equal(t, "Dam Failure Upstream", state.BreakingNews.Headline)
	require.Equal(t, "exec.producer", state.BreakingNews.TriggeredBy)
	require.Equal(t, clock.Now(), state.BreakingNews.TriggeredAt)

	require.NoError(t, svc.ClearBreaking(ctx))
	require.Nil(t, svc.State().BreakingNews)
}

func TestLowerThird(t *testing.T) {
	svc, _ := newStudio()
	ctx := execCtx()

	require.NoError(t, svc.PushLowerThird(ctx, "Dr. Lena Okafor", "Hydrology, State University", studio.LowerThirdGuest))
	state := svc.State()
	require.NotNil(t, state.LowerThird)
	require.Equal(t, studio.LowerThirdGuest, state.LowerThird.Type)
	require.True(t, state.LowerThird.Visible)

	// Empty type falls back to the anchor strip.
	require.NoError(t, svc.PushLowerThird(ctx, "Tom Reyes", "", ""))
	require.Equal(t, studio.LowerThirdAnchor, svc.State().LowerThird.Type)

	require.NoError(t, svc.ClearLowerThird(ctx))
	require.Nil(t, svc.State().LowerThird)
}

func TestTicker(t *testing.T) {
	svc, _ := newStudio()
	ctx := execCtx()

	require.NoError(t, svc.AddTickerItem(ctx, "Markets close mixed"))
	require.NoError(t, svc.AddTickerItem(ctx, "Transit strike enters day 3"))
	require.NoError(t, svc.StartTicker(ctx))
	require.NoError(t, svc.SetTickerSpeed(ctx, studio.TickerFast))

	state := svc.State()
	require.True(t, state.Ticker.IsRunning)
	require.Equal(t, studio.TickerFast, state.Ticker.Speed)
	require.Equal(t, []string{"Markets close mixed", "Transit strike enters day 3"}, state.Ticker.Items)

	require.NoError(t, svc.RemoveTickerItem(ctx, 0))
	require.Equal(t, []string{"Transit strike enters day 3"}, svc.State().Ticker.Items)

	// Out-of-range removals are ignored.
	require.NoError(t, svc.RemoveTickerItem(ctx, 5))
	require.NoError(t, svc.RemoveTickerItem(ctx, -1))
	require.Len(t, svc.State().Ticker.Items, 1)

	require.NoError(t, svc.StopTicker(ctx))
	require.False(t, svc.State().Ticker.IsRunning)
}

func TestEmergencyBroadcast(t *testing.T) {
	svc, _ := newStudio()
	ctx := execCtx()

	require.NoError(t, svc.EmergencyBroadcast(ctx, "Seek higher ground immediately."))
	state := svc.State()
	require.True(t, state.IsLive)
	require.NotEmpty(t, state.StreamKey)
	require.NotNil(t, state.BreakingNews)
	require.Equal(t, "EMERGENCY BROADCAST", state.BreakingNews.Headline)
	require.Equal(t, "exec.producer", state.BreakingNews.TriggeredBy)
}

func TestSnapshotRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	snapshots := studio.NewRedisSnapshotStore(client, time.Hour)

	clock := &shared.FixedClock{Instant: time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)}
	svc := studio.NewService(clock, snapshots)
	ctx := execCtx()

	require.NoError(t, svc.GoLive(ctx))
	require.NoError(t, svc.AddTickerItem(ctx, "Markets close mixed"))
	want := svc.State()

	restored := studio.NewService(clock, snapshots)
	require.NoError(t, restored.Restore(context.Background()))
	require.Equal(t, want.IsLive, restored.State().IsLive)
	require.Equal(t, want.StreamKey, restored.State().StreamKey)
	require.Equal(t, want.Ticker.Items, restored.State().Ticker.Items)
}

func TestRestoreWithoutSnapshotKeepsDefaults(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	svc := studio.NewService(shared.SystemClock{}, studio.NewRedisSnapshotStore(client, time.Hour))
	require.NoError(t, svc.Restore(context.Background()))
	require.Equal(t, "cam-1", svc.State().ActiveCamera)
}
