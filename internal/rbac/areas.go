package rbac

import "github.com/xnn-portal/xnn-portal/internal/identity"

// Portal areas guarded by access policies.
const (
	AreaNewsroom          = "newsroom"
	AreaNewsroomStaff     = "newsroom/staff"
	AreaNewsroomAnalytics = "newsroom/analytics"
	AreaStudio            = "studio"
	AreaIntelligence      = "intelligence"
	AreaIntelligenceVault = "intelligence/classified"
)

var editorialRoles = []identity.Role{
	identity.RoleEditor,
	identity.RoleExecutiveEditor,
	identity.RoleAdmin,
	identity.RoleSuperAdmin,
}

var executiveRoles = []identity.Role{
	identity.RoleExecutiveEditor,
	identity.RoleAdmin,
	identity.RoleSuperAdmin,
}

var adminRoles = []identity.Role{
	identity.RoleAdmin,
	identity.RoleSuperAdmin,
}

var areaPolicies = map[string]Policy{
	AreaNewsroom:          RolePolicy{Allowed: editorialRoles},
	AreaNewsroomStaff:     RolePolicy{Allowed: adminRoles},
	AreaNewsroomAnalytics: RolePolicy{Allowed: editorialRoles},
	AreaStudio:            RolePolicy{Allowed: executiveRoles},
	AreaIntelligence:      RolePolicy{Allowed: executiveRoles},
	// The classified vault is the one area that requires both a role set
	// and a clearance floor.
	AreaIntelligenceVault: AllOf(
		RolePolicy{Allowed: adminRoles},
		ClearancePolicy{Minimum: identity.ClearanceTopSecret},
	),
}

// AreaPolicy returns the policy guarding the named portal area. Unknown
// areas deny everyone.
func AreaPolicy(area string) Policy {
	if pol, ok := areaPolicies[area]; ok {
		return pol
	}
	return denyAll{}
}

type denyAll struct{}

func (denyAll) Allows(*identity.Principal) bool { return false }
