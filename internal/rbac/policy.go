// Package rbac evaluates access policies against principals. Evaluation is
// pure: no side effects, no navigation, just allow or deny. The surrounding
// layers decide what a denial means.
package rbac

import (
	"github.com/xnn-portal/xnn-portal/internal/identity"
	"github.com/xnn-portal/xnn-portal/internal/shared"
)

// Policy is a single access requirement a principal must satisfy.
type Policy interface {
	// Allows reports whether the principal satisfies the policy.
	// A nil principal is anonymous.
	Allows(p *identity.Principal) bool
}

// RolePolicy allows principals whose role is a member of the allowed set.
// Membership is explicit; no hierarchy comparison takes place here.
type RolePolicy struct {
	Allowed []identity.Role
}

// Allows implements Policy.
func (pol RolePolicy) Allows(p *identity.Principal) bool {
	if p == nil {
		return false
	}
	for _, r := range pol.Allowed {
		if p.Role == r {
			return true
		}
	}
	return false
}

// ClearancePolicy allows principals whose clearance meets the minimum.
// An anonymous principal evaluates as clearance 0, so a minimum of 0 is
// public and anything higher denies.
type ClearancePolicy struct {
	Minimum identity.ClearanceLevel
}

// Allows implements Policy.
func (pol ClearancePolicy) Allows(p *identity.Principal) bool {
	level := identity.ClearancePublic
	if p != nil {
		level = p.Clearance
	}
	return level >= pol.Minimum
}

// PermissionPolicy allows principals whose permission set grants the
// permission: exact match, namespace wildcard ("articles:*" covers
// "articles:read"), or the universal "*".
type PermissionPolicy struct {
	Permission string
}

// Allows implements Policy.
func (pol PermissionPolicy) Allows(p *identity.Principal) bool {
	return p.HasPermission(pol.Permission)
}

// allOf requires every member policy to pass.
type allOf []Policy

// Allows implements Policy.
func (pols allOf) Allows(p *identity.Principal) bool {
	for _, pol := range pols {
		if !pol.Allows(p) {
			return false
		}
	}
	return true
}

// AllOf combines policies with logical AND.
func AllOf(policies ...Policy) Policy {
	return allOf(policies)
}

// Evaluate is the error-returning form of a policy check for call sites that
// propagate denial as a typed result.
func Evaluate(p *identity.Principal, pol Policy) error {
	if pol == nil || pol.Allows(p) {
		return nil
	}
	return shared.ErrUnauthorized
}
