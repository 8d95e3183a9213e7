package newsroom

import (
	"encoding/json"
	"time"

	"github.com/xnn-portal/xnn-portal/internal/identity"
)

// Persisted representations. Seed files and the postgres repository share
// this format; decoding an encoded article yields an equal value.

type principalRecord struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email,omitempty"`
	FirstName   string    `json:"first_name,omitempty"`
	LastName    string    `json:"last_name,omitempty"`
	Role        string    `json:"role"`
	Clearance   int       `json:"clearance"`
	Permissions []string  `json:"permissions,omitempty"`
	Avatar      string    `json:"avatar,omitempty"`
	Department  string    `json:"department,omitempty"`
	Region      string    `json:"region,omitempty"`
	JoinedAt    time.Time `json:"joined_at,omitempty"`
	LastActive  time.Time `json:"last_active,omitempty"`
	IsActive    bool      `json:"is_active"`
}

type categoryRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type articleRecord struct {
	ID            string          `json:"id"`
	Headline      string          `json:"headline"`
	Subtitle      string          `json:"subtitle,omitempty"`
	Content       string          `json:"content"`
	Excerpt       string          `json:"excerpt"`
	Author        principalRecord `json:"author"`
	Category      categoryRecord  `json:"category"`
	Tags          []string        `json:"tags,omitempty"`
	Status        string          `json:"status"`
	FeaturedImage string          `json:"featured_image,omitempty"`
	Images        []string        `json:"images,omitempty"`
	PublishedAt   *time.Time      `json:"published_at,omitempty"`
	ScheduledAt   *time.Time      `json:"scheduled_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Views         int             `json:"views"`
	Likes         int             `json:"likes"`
	Comments      int             `json:"comments"`
	IsBreaking    bool            `json:"is_breaking"`
	IsFeatured    bool            `json:"is_featured"`
}

type commentRecord struct {
	ID        string          `json:"id"`
	Author    principalRecord `json:"author"`
	Content   string          `json:"content"`
	CreatedAt time.Time       `json:"created_at"`
}

type itemRecord struct {
	ID          string           `json:"id"`
	ArticleID   string           `json:"article_id"`
	Status      string           `json:"status"`
	Priority    string           `json:"priority"`
	AssignedTo  *principalRecord `json:"assigned_to,omitempty"`
	ReviewedBy  *principalRecord `json:"reviewed_by,omitempty"`
	Comments    []commentRecord  `json:"comments,omitempty"`
	SubmittedAt time.Time        `json:"submitted_at"`
	Deadline    *time.Time       `json:"deadline,omitempty"`
}

func toPrincipalRecord(p identity.Principal) principalRecord {
	return principalRecord{
		ID:          p.ID,
		Username:    p.Username,
		Email:       p.Email,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Role:        string(p.Role),
		Clearance:   int(p.Clearance),
		Permissions: p.Permissions,
		Avatar:      p.Avatar,
		Department:  p.Department,
		Region:      p.Region,
		JoinedAt:    p.JoinedAt,
		LastActive:  p.LastActive,
		IsActive:    p.IsActive,
	}
}

func fromPrincipalRecord(rec principalRecord) identity.Principal {
	return identity.Principal{
		ID:          rec.ID,
		Username:    rec.Username,
		Email:       rec.Email,
		FirstName:   rec.FirstName,
		LastName:    rec.LastName,
		Role:        identity.Role(rec.Role),
		Clearance:   identity.ClearanceLevel(rec.Clearance),
		Permissions: rec.Permissions,
		Avatar:      rec.Avatar,
		Department:  rec.Department,
		Region:      rec.Region,
		JoinedAt:    rec.JoinedAt,
		LastActive:  rec.LastActive,
		IsActive:    rec.IsActive,
	}
}

func toArticleRecord(a Article) articleRecord {
	return articleRecord{
		ID:            a.ID,
		Headline:      a.Headline,
		Subtitle:      a.Subtitle,
		Content:       a.Content,
		Excerpt:       a.Excerpt,
		Author:        toPrincipalRecord(a.Author),
		Category:      categoryRecord{ID: a.Category.ID, Name: a.Category.Name, Slug: a.Category.Slug},
		Tags:          a.Tags,
		Status:        string(a.Status),
		FeaturedImage: a.FeaturedImage,
		Images:        a.Images,
		PublishedAt:   a.PublishedAt,
		ScheduledAt:   a.ScheduledAt,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
		Views:         a.Views,
		Likes:         a.Likes,
		Comments:      a.Comments,
		IsBreaking:    a.IsBreaking,
		IsFeatured:    a.IsFeatured,
	}
}

func fromArticleRecord(rec articleRecord) Article {
	return Article{
		ID:            rec.ID,
		Headline:      rec.Headline,
		Subtitle:      rec.Subtitle,
		Content:       rec.Content,
		Excerpt:       rec.Excerpt,
		Author:        fromPrincipalRecord(rec.Author),
		Category:      Category{ID: rec.Category.ID, Name: rec.Category.Name, Slug: rec.Category.Slug},
		Tags:          rec.Tags,
		Status:        ArticleStatus(rec.Status),
		FeaturedImage: rec.FeaturedImage,
		Images:        rec.Images,
		PublishedAt:   rec.PublishedAt,
		ScheduledAt:   rec.ScheduledAt,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
		Views:         rec.Views,
		Likes:         rec.Likes,
		Comments:      rec.Comments,
		IsBreaking:    rec.IsBreaking,
		IsFeatured:    rec.IsFeatured,
	}
}

func toItemRecord(item EditorialItem) itemRecord {
	rec := itemRecord{
		ID:          item.ID,
		ArticleID:   item.ArticleID,
		Status:      string(item.Status),
		Priority:    string(item.Priority),
		SubmittedAt: item.SubmittedAt,
		Deadline:    item.Deadline,
	}
	if item.AssignedTo != nil {
		p := toPrincipalRecord(*item.AssignedTo)
		rec.AssignedTo = &p
	}
	if item.ReviewedBy != nil {
		p := toPrincipalRecord(*item.ReviewedBy)
		rec.ReviewedBy = &p
	}
	for _, c := range item.Comments {
		rec.Comments = append(rec.Comments, commentRecord{
			ID:        c.ID,
			Author:    toPrincipalRecord(c.Author),
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		})
	}
	return rec
}

func fromItemRecord(rec itemRecord) EditorialItem {
	item := EditorialItem{
		ID:          rec.ID,
		ArticleID:   rec.ArticleID,
		Status:      ArticleStatus(rec.Status),
		Priority:    Priority(rec.Priority),
		SubmittedAt: rec.SubmittedAt,
		Deadline:    rec.Deadline,
	}
	if rec.AssignedTo != nil {
		p := fromPrincipalRecord(*rec.AssignedTo)
		item.AssignedTo = &p
	}
	if rec.ReviewedBy != nil {
		p := fromPrincipalRecord(*rec.ReviewedBy)
		item.ReviewedBy = &p
	}
	for _, c := range rec.Comments {
		item.Comments = append(item.Comments, EditorialComment{
			ID:        c.ID,
			Author:    fromPrincipalRecord(c.Author),
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		})
	}
	return item
}

// EncodeArticle serialises an article to its persisted JSON representation.
func EncodeArticle(a Article) ([]byte, error) {
	return json.Marshal(toArticleRecord(a))
}

// DecodeArticle parses the persisted JSON representation.
func DecodeArticle(data []byte) (Article, error) {
	var rec articleRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return Article{}, err
	}
	return fromArticleRecord(rec), nil
}

// EncodeItem serialises a queue item to its persisted JSON representation.
func EncodeItem(item EditorialItem) ([]byte, error) {
	return json.Marshal(toItemRecord(item))
}

// DecodeItem parses the persisted JSON representation.
func DecodeItem(data []byte) (EditorialItem, error) {
	var rec itemRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return EditorialItem{}, err
	}
	return fromItemRecord(rec), nil
}
