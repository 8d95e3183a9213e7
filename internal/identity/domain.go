package identity

import "time"

// Role is a newsroom role, totally ordered by privilege.
type Role string

const (
	RoleGuest           Role = "GUEST"
	RoleMember          Role = "MEMBER"
	RoleJournalist      Role = "JOURNALIST"
	RoleEditor          Role = "EDITOR"
	RoleExecutiveEditor Role = "EXECUTIVE_EDITOR"
	RoleAdmin           Role = "ADMIN"
	RoleSuperAdmin      Role = "SUPER_ADMIN"
)

var roleRank = map[Role]int{
	RoleGuest:           0,
	RoleMember:          1,
	RoleJournalist:      2,
	RoleEditor:          3,
	RoleExecutiveEditor: 4,
	RoleAdmin:           5,
	RoleSuperAdmin:      6,
}

// Level returns the numeric rank of the role. Unknown roles rank below GUEST.
func (r Role) Level() int {
	if lvl, ok := roleRank[r]; ok {
		return lvl
	}
	return -1
}

// AtLeast reports whether r ranks at or above other. Most access checks use
// explicit role sets instead; this exists for threshold-style callers.
func (r Role) AtLeast(other Role) bool {
	return r.Level() >= other.Level()
}

// Valid reports whether the role is known.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// ClearanceLevel is the 0-5 sensitivity axis, independent of role.
type ClearanceLevel int

const (
	ClearancePublic       ClearanceLevel = 0
	ClearanceInternal     ClearanceLevel = 1
	ClearanceRestricted   ClearanceLevel = 2
	ClearanceConfidential ClearanceLevel = 3
	ClearanceSecret       ClearanceLevel = 4
	ClearanceTopSecret    ClearanceLevel = 5
)

var clearanceNames = map[ClearanceLevel]string{
	ClearancePublic:       "Public",
	ClearanceInternal:     "Internal",
	ClearanceRestricted:   "Restricted",
	ClearanceConfidential: "Confidential",
	ClearanceSecret:       "Secret",
	ClearanceTopSecret:    "Top Secret",
}

// Name returns the display name for the clearance level.
func (c ClearanceLevel) Name() string {
	if name, ok := clearanceNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Principal is an actor evaluated against access policies. Secrets are held
// by the directory, never on the principal record itself.
type Principal struct {
	ID          string
	Username    string
	Email       string
	FirstName   string
	LastName    string
	Role        Role
	Clearance   ClearanceLevel
	Permissions []string
	Avatar      string
	Department  string
	Region      string
	JoinedAt    time.Time
	LastActive  time.Time
	IsActive    bool
}

// DisplayName returns the human-readable name.
func (p *Principal) DisplayName() string {
	if p == nil {
		return ""
	}
	return p.FirstName + " " + p.LastName
}

// HasPermission reports whether the principal's permission set grants perm.
// A set entry of "*" grants everything; "ns:*" grants every perm under ns.
func (p *Principal) HasPermission(perm string) bool {
	if p == nil {
		return false
	}
	for _, have := range p.Permissions {
		if have == "*" || have == perm {
			return true
		}
	}
	if wc := namespaceWildcard(perm); wc != "" {
		for _, have := range p.Permissions {
			if have == wc {
				return true
			}
		}
	}
	return false
}

// namespaceWildcard rewrites the last colon segment of perm to "*".
// "articles:read" becomes "articles:*"; a perm without a namespace has none.
func namespaceWildcard(perm string) string {
	for i := len(perm) - 1; i >= 0; i-- {
		if perm[i] == ':' {
			return perm[:i] + ":*"
		}
	}
	return ""
}

// PerformanceMetrics summarises a staff member's recent output.
type PerformanceMetrics struct {
	MonthlyArticles int
	MonthlyViews    int
	Engagement      float64
	Quality         float64
}

// StaffMember extends Principal with newsroom productivity figures.
type StaffMember struct {
	Principal
	ArticlesWritten    int
	ArticlesPublished  int
	ApprovalRate       float64
	AveragePublishTime float64
	Performance        PerformanceMetrics
}
