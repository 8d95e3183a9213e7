package newsroom

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/xnn-portal/xnn-portal/internal/identity"
)

// ArticleStatus is an article's position in the editorial lifecycle.
type ArticleStatus string

const (
	StatusDraft       ArticleStatus = "DRAFT"
	StatusSubmitted   ArticleStatus = "SUBMITTED"
	StatusInReview    ArticleStatus = "IN_REVIEW"
	StatusEditing     ArticleStatus = "EDITING"
	StatusLegalReview ArticleStatus = "LEGAL_REVIEW"
	StatusScheduled   ArticleStatus = "SCHEDULED"
	StatusPublished   ArticleStatus = "PUBLISHED"
	StatusArchived    ArticleStatus = "ARCHIVED"
)

var allStatuses = []ArticleStatus{
	StatusDraft,
	StatusSubmitted,
	StatusInReview,
	StatusEditing,
	StatusLegalReview,
	StatusScheduled,
	StatusPublished,
	StatusArchived,
}

// Valid reports whether the status is known.
func (s ArticleStatus) Valid() bool {
	for _, known := range allStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Priority ranks editorial queue items.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

var titleCaser = cases.Title(language.AmericanEnglish)

// Category groups articles for the public site.
type Category struct {
	ID   string
	Name string
	Slug string
}

// NewCategory derives a category from its slug, title-casing the display
// name ("breaking-news" becomes "Breaking News").
func NewCategory(id, slug string) Category {
	return Category{
		ID:   id,
		Slug: slug,
		Name: titleCaser.String(strings.ReplaceAll(slug, "-", " ")),
	}
}

// Article is a single news story. Articles are never hard-deleted; ARCHIVED
// is the terminal state. The Views/Likes/Comments counters are engagement
// figures from the public site and only ever increase.
type Article struct {
	ID            string
	Headline      string
	Subtitle      string
	Content       string
	Excerpt       string
	Author        identity.Principal
	Category      Category
	Tags          []string
	Status        ArticleStatus
	FeaturedImage string
	Images        []string
	PublishedAt   *time.Time
	ScheduledAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Views         int
	Likes         int
	Comments      int
	IsBreaking    bool
	IsFeatured    bool
}

// EditorialComment is a note on a queue item. Comments are append-only and
// immutable once created.
type EditorialComment struct {
	ID        string
	Author    identity.Principal
	Content   string
	CreatedAt time.Time
}

// EditorialItem tracks one article through the review queue. Its Status
// always equals the status of the referenced article.
type EditorialItem struct {
	ID          string
	ArticleID   string
	Status      ArticleStatus
	Priority    Priority
	AssignedTo  *identity.Principal
	ReviewedBy  *identity.Principal
	Comments    []EditorialComment
	SubmittedAt time.Time
	Deadline    *time.Time
}
