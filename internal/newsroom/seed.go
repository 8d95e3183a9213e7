package newsroom

import (
	"context"
	"time"

	"github.com/xnn-portal/xnn-portal/internal/identity"
)

func ts(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func tsp(t time.Time) *time.Time { return &t }

// SeedContent returns the demo articles and editorial queue. Authors are
// looked up from the given directory entries by username so the seed data
// stays consistent with the directory.
func SeedContent(entries []identity.DirectoryEntry) ([]Article, []EditorialItem) {
	byUsername := make(map[string]identity.Principal, len(entries))
	for _, e := range entries {
		byUsername[e.Principal.Username] = e.Principal
	}

	articles := []Article{
		{
			ID:            "art-001",
			Headline:      "The Quiet Shift Reshaping Global Trade",
			Subtitle:      "How new corridors, tariffs, and treaties are rewriting the rules",
			Content:       "Full article content here...",
			Excerpt:       "A comprehensive investigation into the changing landscape of international commerce.",
			Author:        byUsername["journalist.test"],
			Category:      NewCategory("cat-001", "investigation"),
			Tags:          []string{"trade", "infrastructure", "policy"},
			Status:        StatusPublished,
			FeaturedImage: "/images/featured-trade-corridor.jpg",
			PublishedAt:   tsp(ts(2026, 2, 24, 10, 0)),
			CreatedAt:     ts(2026, 2, 20, 8, 0),
			UpdatedAt:     ts(2026, 2, 24, 10, 0),
			Views:         45230,
			Likes:         1234,
			Comments:      89,
			IsFeatured:    true,
		},
		{
			ID:            "art-002",
			Headline:      "Coastal Cities Draft New Flood Standards",
			Subtitle:      "Municipalities implement unprecedented infrastructure requirements",
			Content:       "Full article content here...",
			Excerpt:       "Municipalities along the eastern seaboard are implementing new standards.",
			Author:        byUsername["journalist.test"],
			Category:      NewCategory("cat-002", "national"),
			Tags:          []string{"infrastructure", "climate", "cities"},
			Status:        StatusInReview,
			FeaturedImage: "/images/topstory-flood-defense.jpg",
			CreatedAt:     ts(2026, 2, 23, 14, 0),
			UpdatedAt:     ts(2026, 2, 23, 14, 0),
		},
		{
			ID:            "art-003",
			Headline:      "Summit Ends With a Fragile Ceasefire Deal",
			Subtitle:      "Diplomatic breakthrough after marathon negotiations",
			Content:       "Full article content here...",
			Excerpt:       "Diplomatic breakthrough comes after marathon 72-hour negotiations.",
			Author:        byUsername["reporter.world"],
			Category:      NewCategory("cat-003", "world"),
			Tags:          []string{"diplomacy", "conflict", "peace"},
			Status:        StatusDraft,
			FeaturedImage: "/images/topstory-summit-hall.jpg",
			CreatedAt:     ts(2026, 2, 24, 9, 0),
			UpdatedAt:     ts(2026, 2, 24, 9, 0),
		},
	}

	queue := []EditorialItem{
		{
			ID:          "queue-001",
			ArticleID:   "art-002",
			Status:      StatusInReview,
			Priority:    PriorityHigh,
			SubmittedAt: ts(2026, 2, 23, 14, 0),
			Deadline:    tsp(ts(2026, 2, 25, 12, 0)),
		},
	}

	return articles, queue
}

// LoadSeed writes the seed content into a repository.
func LoadSeed(ctx context.Context, repo RepositoryPort, articles []Article, queue []EditorialItem) error {
	// Oldest first so newest-first listings come out in feed order.
	for i := len(articles) - 1; i >= 0; i-- {
		if err := repo.SaveArticle(ctx, articles[i]); err != nil {
			return err
		}
	}
	for _, item := range queue {
		if err := repo.SaveItem(ctx, item); err != nil {
			return err
		}
	}
	return nil
}
