package identity

import "time"

// SeedDirectory returns the fixed demo directory: login entries with their
// secrets plus the newsroom staff roster. The secrets are intentionally
// plain text; this is mock data for a demo deployment.
func SeedDirectory() ([]DirectoryEntry, []StaffMember) {
	entries := []DirectoryEntry{
		{
			Principal: Principal{
				ID:          "admin-001",
				Username:    "Elaria.Xana",
				Email:       "elaria.xana@xnn.com",
				FirstName:   "Elaria",
				LastName:    "Xana",
				Role:        RoleSuperAdmin,
				Clearance:   ClearanceTopSecret,
				Permissions: []string{"*"},
				Department:  "Executive",
				JoinedAt:    time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
				IsActive:    true,
			},
			Secret: "1234KalyMaddi3Lovez",
		},
		{
			Principal: Principal{
				ID:          "jour-001",
				Username:    "journalist.test",
				Email:       "journalist@xnn.com",
				FirstName:   "Marcus",
				LastName:    "Hale",
				Role:        RoleJournalist,
				Clearance:   ClearanceRestricted,
				Permissions: []string{"articles:read", "articles:create", "articles:update:own"},
				Department:  "National Desk",
				JoinedAt:    time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
				IsActive:    true,
			},
			Secret: "test123",
		},
		{
			Principal: Principal{
				ID:          "edit-001",
				Username:    "editor.test",
				Email:       "editor@xnn.com",
				FirstName:   "Sarah",
				LastName:    "Chen",
				Role:        RoleEditor,
				Clearance:   ClearanceConfidential,
				Permissions: []string{"articles:*", "queue:read", "queue:update"},
				Department:  "Editorial",
				JoinedAt:    time.Date(2022, 3, 10, 0, 0, 0, 0, time.UTC),
				IsActive:    true,
			},
			Secret: "test123",
		},
		{
			Principal: Principal{
				ID:          "jour-002",
				Username:    "reporter.world",
				Email:       "world@xnn.com",
				FirstName:   "James",
				LastName:    "Morrison",
				Role:        RoleJournalist,
				Clearance:   ClearanceRestricted,
				Permissions: []string{"articles:read", "articles:create"},
				Department:  "World Desk",
				JoinedAt:    time.Date(2023, 8, 20, 0, 0, 0, 0, time.UTC),
				IsActive:    true,
			},
			Secret: "test123",
		},
	}

	staff := []StaffMember{
		{
			Principal:          entries[1].Principal,
			ArticlesWritten:    45,
			ArticlesPublished:  38,
			ApprovalRate:       84,
			AveragePublishTime: 48,
			Performance: PerformanceMetrics{
				MonthlyArticles: 8,
				MonthlyViews:    125000,
				Engagement:      7.2,
				Quality:         8.5,
			},
		},
		{
			Principal:          entries[3].Principal,
			ArticlesWritten:    32,
			ArticlesPublished:  28,
			ApprovalRate:       88,
			AveragePublishTime: 36,
			Performance: PerformanceMetrics{
				MonthlyArticles: 6,
				MonthlyViews:    98000,
				Engagement:      7.8,
				Quality:         8.9,
			},
		},
	}

	return entries, staff
}
