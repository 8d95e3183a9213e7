package newsroom

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xnn-portal/xnn-portal/internal/shared"
)

// PGRepository is the postgres-backed storage variant. Articles and queue
// items are stored as their persisted JSON representation alongside the
// columns the queries filter on.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewPGRepository constructs a PGRepository.
func NewPGRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// GetArticle fetches an article by id.
func (r *PGRepository) GetArticle(ctx context.Context, id string) (Article, error) {
	var doc []byte
	err := r.pool.QueryRow(ctx, `SELECT doc FROM articles WHERE id = $1`, id).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Article{}, shared.ErrNotFound
		}
		return Article{}, err
	}
	return DecodeArticle(doc)
}

// SaveArticle upserts an article.
func (r *PGRepository) SaveArticle(ctx context.Context, article Article) error {
	doc, err := EncodeArticle(article)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO articles (id, status, scheduled_at, created_at, doc)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, scheduled_at = EXCLUDED.scheduled_at, doc = EXCLUDED.doc`,
		article.ID, string(article.Status), article.ScheduledAt, article.CreatedAt, doc)
	return err
}

// ListArticles returns every article, newest first.
func (r *PGRepository) ListArticles(ctx context.Context) ([]Article, error) {
	return r.listArticles(ctx, `SELECT doc FROM articles ORDER BY created_at DESC`)
}

// ListArticlesByStatus filters articles by exact status match.
func (r *PGRepository) ListArticlesByStatus(ctx context.Context, status ArticleStatus) ([]Article, error) {
	return r.listArticles(ctx, `SELECT doc FROM articles WHERE status = $1 ORDER BY created_at DESC`, string(status))
}

// ListDueScheduled returns SCHEDULED articles due at or before now.
func (r *PGRepository) ListDueScheduled(ctx context.Context, now time.Time) ([]Article, error) {
	return r.listArticles(ctx, `SELECT doc FROM articles
WHERE status = $1 AND scheduled_at IS NOT NULL AND scheduled_at <= $2
ORDER BY scheduled_at ASC`, string(StatusScheduled), now)
}

func (r *PGRepository) listArticles(ctx context.Context, query string, args ...any) ([]Article, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Article
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		article, err := DecodeArticle(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, article)
	}
	return out, rows.Err()
}

// GetItemByArticle fetches the queue item tracking the given article.
func (r *PGRepository) GetItemByArticle(ctx context.Context, articleID string) (EditorialItem, error) {
	var doc []byte
	err := r.pool.QueryRow(ctx, `SELECT doc FROM editorial_items WHERE article_id = $1`, articleID).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return EditorialItem{}, shared.ErrNotFound
		}
		return EditorialItem{}, err
	}
	return DecodeItem(doc)
}

// SaveItem upserts a queue item.
func (r *PGRepository) SaveItem(ctx context.Context, item EditorialItem) error {
	doc, err := EncodeItem(item)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO editorial_items (id, article_id, status, submitted_at, doc)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, doc = EXCLUDED.doc`,
		item.ID, item.ArticleID, string(item.Status), item.SubmittedAt, doc)
	return err
}

// ListQueue returns all queue items in submission order.
func (r *PGRepository) ListQueue(ctx context.Context) ([]EditorialItem, error) {
	rows, err := r.pool.Query(ctx, `SELECT doc FROM editorial_items ORDER BY submitted_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []EditorialItem
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		item, err := DecodeItem(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
