package rbac

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xnn-portal/xnn-portal/internal/identity"
	"github.com/xnn-portal/xnn-portal/internal/shared"
)

func principalWith(role identity.Role, clearance identity.ClearanceLevel, perms ...string) *identity.Principal {
	return &identity.Principal{
		ID:          "p-test",
		Username:    "p.test",
		Role:        role,
		Clearance:   clearance,
		Permissions: perms,
		IsActive:    true,
	}
}

func TestRolePolicyMembership(t *testing.T) {
	pol := RolePolicy{Allowed: []identity.Role{identity.RoleEditor, identity.RoleAdmin}}

	require.True(t, pol.Allows(principalWith(identity.RoleEditor, 0)))
	require.True(t, pol.Allows(principalWith(identity.RoleAdmin, 0)))

	// Membership, not hierarchy: SUPER_ADMIN outranks ADMIN but is not in
	// the set, so it is denied.
	require.False(t, pol.Allows(principalWith(identity.RoleSuperAdmin, 0)))
	require.False(t, pol.Allows(principalWith(identity.RoleJournalist, 0)))
	require.False(t, pol.Allows(principalWith(identity.Role("BOGUS"), 0)))
	require.False(t, pol.Allows(nil))
}

func TestRolePolicyEmptySetDeniesEveryone(t *testing.T) {
	pol := RolePolicy{}
	require.False(t, pol.Allows(principalWith(identity.RoleSuperAdmin, identity.ClearanceTopSecret, "*")))
	require.False(t, pol.Allows(nil))
}

func TestClearancePolicy(t *testing.T) {
	pol := ClearancePolicy{Minimum: identity.ClearanceSecret}

	require.True(t, pol.Allows(principalWith(identity.RoleGuest, identity.ClearanceSecret)))
	require.True(t, pol.Allows(principalWith(identity.RoleGuest, identity.ClearanceTopSecret)))
	require.False(t, pol.Allows(principalWith(identity.RoleSuperAdmin, identity.ClearanceConfidential)))
	require.False(t, pol.Allows(nil))
}

func TestClearancePolicyPublicAdmitsAnonymous(t *testing.T) {
	pol := ClearancePolicy{Minimum: identity.ClearancePublic}
	require.True(t, pol.Allows(nil))
	require.True(t, pol.Allows(principalWith(identity.RoleGuest, identity.ClearancePublic)))
}

func TestPermissionPolicy(t *testing.T) {
	cases := []struct {
		name  string
		perms []string
		check string
		want  bool
	}{
		{"exact match", []string{"articles:read"}, "articles:read", true},
		{"exact mismatch", []string{"articles:read"}, "articles:create", false},
		{"namespace wildcard covers read", []string{"articles:*"}, "articles:read", true},
		{"namespace wildcard covers create", []string{"articles:*"}, "articles:create", true},
		{"namespace wildcard stays in namespace", []string{"articles:*"}, "queue:read", false},
		{"universal wildcard", []string{"*"}, "queue:manage", true},
		{"empty set", nil, "articles:read", false},
		{"bare perm no namespace", []string{"publish"}, "publish", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pol := PermissionPolicy{Permission: tc.check}
			got := pol.Allows(principalWith(identity.RoleJournalist, 0, tc.perms...))
			require.Equal(t, tc.want, got)
		})
	}

	require.False(t, PermissionPolicy{Permission: "articles:read"}.Allows(nil))
}

func TestAllOfRequiresEveryPolicy(t *testing.T) {
	pol := AllOf(
		RolePolicy{Allowed: []identity.Role{identity.RoleAdmin}},
		ClearancePolicy{Minimum: identity.ClearanceSecret},
	)

	require.True(t, pol.Allows(principalWith(identity.RoleAdmin, identity.ClearanceSecret)))
	require.False(t, pol.Allows(principalWith(identity.RoleAdmin, identity.ClearanceConfidential)))
	require.False(t, pol.Allows(principalWith(identity.RoleSuperAdmin, identity.ClearanceTopSecret)))
	require.False(t, pol.Allows(nil))

	// An empty conjunction is vacuously true.
	require.True(t, AllOf().Allows(nil))
}

func TestEvaluate(t *testing.T) {
	pol := RolePolicy{Allowed: []identity.Role{identity.RoleEditor}}

	require.NoError(t, Evaluate(principalWith(identity.RoleEditor, 0), pol))
	require.ErrorIs(t, Evaluate(principalWith(identity.RoleGuest, 0), pol), shared.ErrUnauthorized)
	require.ErrorIs(t, Evaluate(nil, pol), shared.ErrUnauthorized)
	require.NoError(t, Evaluate(nil, nil))
}

func TestAreaPolicies(t *testing.T) {
	editor := principalWith(identity.RoleEditor, identity.ClearanceInternal)
	execEditor := principalWith(identity.RoleExecutiveEditor, identity.ClearanceConfidential)
	admin := principalWith(identity.RoleAdmin, identity.ClearanceTopSecret)
	lowClearanceAdmin := principalWith(identity.RoleAdmin, identity.ClearanceSecret)
	journalist := principalWith(identity.RoleJournalist, identity.ClearanceTopSecret)

	cases := []struct {
		area      string
		principal *identity.Principal
		want      bool
	}{
		{AreaNewsroom, editor, true},
		{AreaNewsroom, journalist, false},
		{AreaNewsroom, nil, false},
		{AreaNewsroomStaff, admin, true},
		{AreaNewsroomStaff, editor, false},
		{AreaNewsroomAnalytics, editor, true},
		{AreaStudio, execEditor, true},
		{AreaStudio, editor, false},
		{AreaIntelligence, execEditor, true},
		{AreaIntelligence, journalist, false},
		{AreaIntelligenceVault, admin, true},
		{AreaIntelligenceVault, lowClearanceAdmin, false},
		{AreaIntelligenceVault, execEditor, false},
		{AreaIntelligenceVault, journalist, false},
	}
	for _, tc := range cases {
		got := AreaPolicy(tc.area).Allows(tc.principal)
		require.Equal(t, tc.want, got, "area %s", tc.area)
	}
}

func TestUnknownAreaDeniesEveryone(t *testing.T) {
	pol := AreaPolicy("backstage")
	require.False(t, pol.Allows(principalWith(identity.RoleSuperAdmin, identity.ClearanceTopSecret, "*")))
	require.False(t, pol.Allows(nil))
}
