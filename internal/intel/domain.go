package intel

import (
	"time"

	"github.com/xnn-portal/xnn-portal/internal/identity"
)

// ThreatLevel is the global alert posture, 1 (LOW) through 5 (CRITICAL).
type ThreatLevel struct {
	Level       int
	Label       string
	Description string
	UpdatedAt   time.Time
}

var threatLabels = map[int]string{
	1: "LOW",
	2: "GUARDED",
	3: "ELEVATED",
	4: "HIGH",
	5: "CRITICAL",
}

// ThreatLabel returns the label for a threat level, or empty for an
// out-of-range level.
func ThreatLabel(level int) string {
	return threatLabels[level]
}

// RegionStatus is a region's watch posture.
type RegionStatus string

const (
	RegionNormal  RegionStatus = "NORMAL"
	RegionWatch   RegionStatus = "WATCH"
	RegionWarning RegionStatus = "WARNING"
	RegionAlert   RegionStatus = "ALERT"
)

// ActivityReport is one observed event inside a region.
type ActivityReport struct {
	ID          string
	Type        string
	Description string
	Timestamp   time.Time
	Severity    string
}

// Region is one monitored area with its current intel.
type Region struct {
	ID          string
	Name        string
	Code        string
	Status      RegionStatus
	ThreatLevel int
	Summary     string
	Activity    []ActivityReport
}

// AlertSeverity classifies an alert.
type AlertSeverity string

const (
	AlertInfo     AlertSeverity = "INFO"
	AlertWarning  AlertSeverity = "WARNING"
	AlertCritical AlertSeverity = "CRITICAL"
)

// Alert is a dispatchable notice tied to a region. Acknowledging it is the
// only mutation.
type Alert struct {
	ID           string
	Title        string
	Message      string
	Severity     AlertSeverity
	Region       string
	CreatedAt    time.Time
	Acknowledged bool
}

// Document is a classified briefing gated by its own clearance level on top
// of the dashboard's role policy.
type Document struct {
	ID        string
	Title     string
	Summary   string
	Body      string
	Clearance identity.ClearanceLevel
	FiledAt   time.Time
}
