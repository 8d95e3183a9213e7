package intel

import (
	"time"

	"github.com/xnn-portal/xnn-portal/internal/identity"
)

// SeedDashboard returns the demo intelligence picture.
func SeedDashboard() (ThreatLevel, []Region, []Alert, []Document) {
	threat := ThreatLevel{
		Level:       3,
		Label:       ThreatLabel(3),
		Description: "Heightened monitoring across eastern corridors",
		UpdatedAt:   time.Date(2026, 2, 24, 6, 0, 0, 0, time.UTC),
	}

	regions := []Region{
		{
			ID:          "reg-001",
			Name:        "Eastern Corridor",
			Code:        "EC",
			Status:      RegionWarning,
			ThreatLevel: 4,
			Summary:     "Elevated movement along trade routes",
			Activity: []ActivityReport{
				{
					ID:          "rep-001",
					Type:        "MOVEMENT",
					Description: "Convoy activity near checkpoint 9",
					Timestamp:   time.Date(2026, 2, 23, 22, 15, 0, 0, time.UTC),
					Severity:    "HIGH",
				},
			},
		},
		{
			ID:          "reg-002",
			Name:        "Northern Shield",
			Code:        "NS",
			Status:      RegionNormal,
			ThreatLevel: 1,
			Summary:     "No notable activity",
		},
		{
			ID:          "reg-003",
			Name:        "Coastal Arc",
			Code:        "CA",
			Status:      RegionWatch,
			ThreatLevel: 2,
			Summary:     "Storm-related infrastructure strain",
		},
	}

	alerts := []Alert{
		{
			ID:        "alert-001",
			Title:     "Checkpoint congestion",
			Message:   "Checkpoint 9 backlog exceeds four hours",
			Severity:  AlertWarning,
			Region:    "reg-001",
			CreatedAt: time.Date(2026, 2, 23, 23, 0, 0, 0, time.UTC),
		},
		{
			ID:        "alert-002",
			Title:     "Flood gauge failure",
			Message:   "Gauge CA-12 offline, manual readings in effect",
			Severity:  AlertInfo,
			Region:    "reg-003",
			CreatedAt: time.Date(2026, 2, 24, 4, 30, 0, 0, time.UTC),
		},
	}

	documents := []Document{
		{
			ID:        "doc-001",
			Title:     "Corridor Assessment Q1",
			Summary:   "Quarterly posture review for the eastern corridor",
			Body:      "Full briefing text...",
			Clearance: identity.ClearanceSecret,
			FiledAt:   time.Date(2026, 2, 20, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:        "doc-002",
			Title:     "Source Network Summary",
			Summary:   "Active source inventory",
			Body:      "Full briefing text...",
			Clearance: identity.ClearanceTopSecret,
			FiledAt:   time.Date(2026, 2, 22, 16, 0, 0, 0, time.UTC),
		},
	}

	return threat, regions, alerts, documents
}
