package intel_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/xnn-portal/xnn-portal/internal/identity"
	"github.com/xnn-portal/xnn-portal/internal/intel"
	"github.com/xnn-portal/xnn-portal/internal/shared"
)

func ctxWith(role identity.Role, clearance identity.ClearanceLevel) context.Context {
	return identity.ContextWithActor(context.Background(), &identity.Principal{
		ID:        "p-test",
		Username:  "p.test",
		Role:      role,
		Clearance: clearance,
		IsActive:  true,
	})
}

func newDashboard() *intel.Service {
	threat, regions, alerts, documents := intel.SeedDashboard()
	clock := &shared.FixedClock{Instant: time.Date(2026, 3, 1, 7, 0, 0, 0, time.UTC)}
	return intel.NewService(clock, threat, regions, alerts, documents)
}

func TestDashboardRequiresExecutiveRole(t *testing.T) {
	svc := newDashboard()

	_, err := svc.Threat(ctxWith(identity.RoleEditor, identity.ClearanceTopSecret))
	require.ErrorIs(t, err, shared.ErrUnauthorized)

	_, err = svc.Regions(context.Background())
	require.ErrorIs(t, err, shared.ErrUnauthorized)

	_, err = svc.Threat(ctxWith(identity.RoleExecutiveEditor, identity.ClearancePublic))
	require.NoError(t, err)
}

func TestThreatLevel(t *testing.T) {
	svc := newDashboard()
	ctx := ctxWith(identity.RoleExecutiveEditor, identity.ClearanceConfidential)

	threat, err := svc.Threat(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, threat.Level)
	require.Equal(t, "ELEVATED", threat.Label)

	updated, err := svc.SetThreat(ctx, 5, "Coordinated incidents in two regions")
	require.NoError(t, err)
	require.Equal(t, "CRITICAL", updated.Label)

	threat, err = svc.Threat(ctx)
	require.NoError(t, err)
	require.Equal(t, 5, threat.Level)

	_, err = svc.SetThreat(ctx, 0, "")
	require.ErrorIs(t, err, shared.ErrNotFound)
	_, err = svc.SetThreat(ctx, 6, "")
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestRegions(t *testing.T) {
	svc := newDashboard()
	ctx := ctxWith(identity.RoleExecutiveEditor, identity.ClearancePublic)

	regions, err := svc.Regions(ctx)
	require.NoError(t, err)
	require.Len(t, regions, 3)

	region, err := svc.Region(ctx, "reg-001")
	require.NoError(t, err)
	require.Equal(t, "Eastern Corridor", region.Name)
	require.Equal(t, intel.RegionWarning, region.Status)
	require.Len(t, region.Activity, 1)

	_, err = svc.Region(ctx, "reg-404")
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestAlertAcknowledgement(t *testing.T) {
	svc := newDashboard()
	ctx := ctxWith(identity.RoleExecutiveEditor, identity.ClearancePublic)

	alerts, err := svc.ActiveAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	require.NoError(t, svc.AcknowledgeAlert(ctx, "alert-001"))
	alerts, err = svc.ActiveAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	require.Equal(t, "alert-002", alerts[0].ID)

	require.ErrorIs(t, svc.AcknowledgeAlert(ctx, "alert-404"), shared.ErrNotFound)
}

func TestVaultRequiresAdminAndTopClearance(t *testing.T) {
	svc := newDashboard()

	// Executive editors reach the dashboard but not the vault.
	_, err := svc.Documents(ctxWith(identity.RoleExecutiveEditor, identity.ClearanceTopSecret))
	require.ErrorIs(t, err, shared.ErrUnauthorized)

	// Secret clearance is one level short of the vault floor.
	_, err = svc.Documents(ctxWith(identity.RoleAdmin, identity.ClearanceSecret))
	require.ErrorIs(t, err, shared.ErrUnauthorized)

	_, err = svc.Document(ctxWith(identity.RoleAdmin, identity.ClearanceSecret), "doc-001")
	require.ErrorIs(t, err, shared.ErrUnauthorized)
}

func TestDocumentsVisibleInsideVault(t *testing.T) {
	svc := newDashboard()

	docs, err := svc.Documents(ctxWith(identity.RoleAdmin, identity.ClearanceTopSecret))
	require.NoError(t, err)
	require.Len(t, docs, 2)

	docs, err = svc.Documents(ctxWith(identity.RoleSuperAdmin, identity.ClearanceTopSecret))
	require.NoError(t, err)
	require.Len(t, docs, 2)
}

func TestDocumentLookup(t *testing.T) {
	svc := newDashboard()
	ctx := ctxWith(identity.RoleAdmin, identity.ClearanceTopSecret)

	doc, err := svc.Document(ctx, "doc-001")
	require.NoError(t, err)
	require.Equal(t, "Corridor Assessment Q1", doc.Title)

	doc, err = svc.Document(ctx, "doc-002")
	require.NoError(t, err)
	require.Equal(t, identity.ClearanceTopSecret, doc.Clearance)

	_, err = svc.Document(ctx, "doc-404")
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestThreatLabelRange(t *testing.T) {
	require.Equal(t, "LOW", intel.ThreatLabel(1))
	require.Equal(t, "CRITICAL", intel.ThreatLabel(5))
	require.Empty(t, intel.ThreatLabel(0))
	require.Empty(t, intel.ThreatLabel(6))
}
