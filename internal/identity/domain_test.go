package identity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoleOrdering(t *testing.T) {
	ordered := []Role{
		RoleGuest, RoleMember, RoleJournalist, RoleEditor,
		RoleExecutiveEditor, RoleAdmin, RoleSuperAdmin,
	}
	for i := 1; i < len(ordered); i++ {
		require.Greater(t, ordered[i].Level(), ordered[i-1].Level())
		require.True(t, ordered[i].AtLeast(ordered[i-1]))
		require.False(t, ordered[i-1].AtLeast(ordered[i]))
	}
	require.True(t, RoleEditor.AtLeast(RoleEditor))
}

func TestUnknownRoleRanksBelowGuest(t *testing.T) {
	bogus := Role("INTERN")
	require.Equal(t, -1, bogus.Level())
	require.False(t, bogus.Valid())
	require.False(t, bogus.AtLeast(RoleGuest))
	require.True(t, RoleGuest.AtLeast(bogus))
}

func TestClearanceNames(t *testing.T) {
	require.Equal(t, "Public", ClearancePublic.Name())
	require.Equal(t, "Secret", ClearanceSecret.Name())
	require.Equal(t, "Top Secret", ClearanceTopSecret.Name())
	require.Equal(t, "Unknown", ClearanceLevel(9).Name())
}

func TestHasPermission(t *testing.T) {
	p := &Principal{Permissions: []string{"articles:*", "queue:read"}}

	require.True(t, p.HasPermission("articles:read"))
	require.True(t, p.HasPermission("articles:create"))
	require.True(t, p.HasPermission("queue:read"))
	require.False(t, p.HasPermission("queue:manage"))
	require.False(t, p.HasPermission("studio:control"))

	super := &Principal{Permissions: []string{"*"}}
	require.True(t, super.HasPermission("anything:at:all"))
	require.True(t, super.HasPermission("publish"))

	var anon *Principal
	require.False(t, anon.HasPermission("articles:read"))
	require.Equal(t, "", anon.DisplayName())
}

func TestNestedNamespaceWildcard(t *testing.T) {
	// Only the last segment is rewritten: "a:b:*" covers "a:b:c" but not
	// "a:x:c".
	p := &Principal{Permissions: []string{"intel:documents:*"}}
	require.True(t, p.HasPermission("intel:documents:read"))
	require.False(t, p.HasPermission("intel:alerts:read"))
}

func TestSeedDirectoryFixtures(t *testing.T) {
	entries, staff := SeedDirectory()
	require.Len(t, entries, 4)
	require.Len(t, staff, 2)

	byUsername := make(map[string]DirectoryEntry, len(entries))
	for _, e := range entries {
		byUsername[e.Principal.Username] = e
	}

	root := byUsername["Elaria.Xana"]
	require.Equal(t, RoleSuperAdmin, root.Principal.Role)
	require.Equal(t, ClearanceTopSecret, root.Principal.Clearance)
	require.Equal(t, []string{"*"}, root.Principal.Permissions)
	require.True(t, root.Principal.IsActive)

	for _, username := range []string{"journalist.test", "editor.test", "reporter.world"} {
		entry, ok := byUsername[username]
		require.True(t, ok, username)
		require.Equal(t, "test123", entry.Secret, username)
	}
	require.Equal(t, RoleJournalist, byUsername["journalist.test"].Principal.Role)
	require.Equal(t, RoleEditor, byUsername["editor.test"].Principal.Role)
}
