package newsroom

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/xnn-portal/xnn-portal/internal/shared"
)

// RepositoryPort describes article and queue storage used by Service.
type RepositoryPort interface {
	GetArticle(ctx context.Context, id string) (Article, error)
	SaveArticle(ctx context.Context, article Article) error
	ListArticles(ctx context.Context) ([]Article, error)
	ListArticlesByStatus(ctx context.Context, status ArticleStatus) ([]Article, error)
	ListDueScheduled(ctx context.Context, now time.Time) ([]Article, error)

	GetItemByArticle(ctx context.Context, articleID string) (EditorialItem, error)
	SaveItem(ctx context.Context, item EditorialItem) error
	ListQueue(ctx context.Context) ([]EditorialItem, error)
}

// MemoryRepository is the in-memory storage backing the demo deployment and
// tests. All state lives for the process lifetime. Mutating callers go
// through the service, which holds the acting-principal context; the
// repository itself guards its maps with a mutex so a background publisher
// and a foreground caller cannot race.
type MemoryRepository struct {
	mu       sync.RWMutex
	articles map[string]Article
	// createdOrder preserves newest-first listing like the original feed.
	createdOrder []string
	items        map[string]EditorialItem
	queueOrder   []string
}

// NewMemoryRepository constructs an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		articles: make(map[string]Article),
		items:    make(map[string]EditorialItem),
	}
}

// GetArticle fetches an article by id.
func (r *MemoryRepository) GetArticle(ctx context.Context, id string) (Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	article, ok := r.articles[id]
	if !ok {
		return Article{}, shared.ErrNotFound
	}
	return cloneArticle(article), nil
}

// SaveArticle inserts or updates an article.
func (r *MemoryRepository) SaveArticle(ctx context.Context, article Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.articles[article.ID]; !exists {
		r.createdOrder = append([]string{article.ID}, r.createdOrder...)
	}
	r.articles[article.ID] = cloneArticle(article)
	return nil
}

// ListArticles returns every article, newest first.
func (r *MemoryRepository) ListArticles(ctx context.Context) ([]Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Article, 0, len(r.createdOrder))
	for _, id := range r.createdOrder {
		out = append(out, cloneArticle(r.articles[id]))
	}
	return out, nil
}

// ListArticlesByStatus filters articles by exact status match.
func (r *MemoryRepository) ListArticlesByStatus(ctx context.Context, status ArticleStatus) ([]Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Article
	for _, id := range r.createdOrder {
		if a := r.articles[id]; a.Status == status {
			out = append(out, cloneArticle(a))
		}
	}
	return out, nil
}

// ListDueScheduled returns SCHEDULED articles whose scheduled time has
// passed, oldest first.
func (r *MemoryRepository) ListDueScheduled(ctx context.Context, now time.Time) ([]Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Article
	for _, a := range r.articles {
		if a.Status == StatusScheduled && a.ScheduledAt != nil && !a.ScheduledAt.After(now) {
			out = append(out, cloneArticle(a))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ScheduledAt.Before(*out[j].ScheduledAt)
	})
	return out, nil
}

// GetItemByArticle fetches the queue item tracking the given article.
func (r *MemoryRepository) GetItemByArticle(ctx context.Context, articleID string) (EditorialItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.queueOrder {
		if item := r.items[id]; item.ArticleID == articleID {
			return cloneItem(item), nil
		}
	}
	return EditorialItem{}, shared.ErrNotFound
}

// SaveItem inserts or updates a queue item.
func (r *MemoryRepository) SaveItem(ctx context.Context, item EditorialItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[item.ID]; !exists {
		r.queueOrder = append(r.queueOrder, item.ID)
	}
	r.items[item.ID] = cloneItem(item)
	return nil
}

// ListQueue returns all queue items in submission order.
func (r *MemoryRepository) ListQueue(ctx context.Context) ([]EditorialItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]EditorialItem, 0, len(r.queueOrder))
	for _, id := range r.queueOrder {
		out = append(out, cloneItem(r.items[id]))
	}
	return out, nil
}

func cloneArticle(a Article) Article {
	out := a
	out.Tags = append([]string(nil), a.Tags...)
	out.Images = append([]string(nil), a.Images...)
	if a.PublishedAt != nil {
		t := *a.PublishedAt
		out.PublishedAt = &t
	}
	if a.ScheduledAt != nil {
		t := *a.ScheduledAt
		out.ScheduledAt = &t
	}
	return out
}

func cloneItem(item EditorialItem) EditorialItem {
	out := item
	out.Comments = append([]EditorialComment(nil), item.Comments...)
	if item.AssignedTo != nil {
		p := *item.AssignedTo
		out.AssignedTo = &p
	}
	if item.ReviewedBy != nil {
		p := *item.ReviewedBy
		out.ReviewedBy = &p
	}
	if item.Deadline != nil {
		t := *item.Deadline
		out.Deadline = &t
	}
	return out
}
