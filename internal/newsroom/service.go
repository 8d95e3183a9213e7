package newsroom

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/xnn-portal/xnn-portal/internal/identity"
	"github.com/xnn-portal/xnn-portal/internal/shared"
)

// System is the acting principal for time-driven operations such as the
// scheduled publisher.
var System = identity.Principal{
	ID:        "system",
	Username:  "system",
	FirstName: "XNN",
	LastName:  "System",
	Role:      identity.RoleAdmin,
	IsActive:  true,
}

// Service is the editorial workflow engine. Every mutating operation takes
// its acting principal from the context and fails typed, never silently.
type Service struct {
	repo      RepositoryPort
	directory identity.DirectoryPort
	activity  shared.ActivityRecorder
	clock     shared.Clock
	validate  *validator.Validate
	logger    *slog.Logger

	analytics analyticsState
}

// NewService constructs the workflow engine.
func NewService(repo RepositoryPort, directory identity.DirectoryPort, activity shared.ActivityRecorder, clock shared.Clock, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		directory: directory,
		activity:  activity,
		clock:     clock,
		validate:  validator.New(),
		logger:    logger,
	}
}

// DraftInput is the payload for creating a new draft.
type DraftInput struct {
	Headline     string `validate:"required,min=3"`
	Subtitle     string
	Content      string
	Excerpt      string
	CategoryID   string
	CategorySlug string `validate:"required"`
	Tags         []string
}

// CreateArticle creates a DRAFT article authored by the acting principal.
func (s *Service) CreateArticle(ctx context.Context, input DraftInput) (Article, error) {
	actor := identity.ActorFromContext(ctx)
	if actor == nil {
		return Article{}, shared.ErrUnauthorized
	}
	if err := s.validate.Struct(input); err != nil {
		return Article{}, fmt.Errorf("newsroom: invalid draft: %w", err)
	}

	now := s.clock.Now()
	article := Article{
		ID:        "art-" + uuid.NewString(),
		Headline:  input.Headline,
		Subtitle:  input.Subtitle,
		Content:   input.Content,
		Excerpt:   input.Excerpt,
		Author:    *actor,
		Category:  NewCategory(input.CategoryID, input.CategorySlug),
		Tags:      append([]string(nil), input.Tags...),
		Status:    StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.SaveArticle(ctx, article); err != nil {
		return Article{}, err
	}
	s.recordActivity(ctx, actor, "Created new draft", article.ID)
	return article, nil
}

// TransitionResult is the updated article/queue-item pair. Item is nil when
// the article has not yet entered the queue (DRAFT and draft-archival moves).
type TransitionResult struct {
	Article Article
	Item    *EditorialItem
}

// Transition moves an article to the target status. The move must be legal
// per the transition table; a same-status move is an idempotent no-op. On
// first entry to SUBMITTED a queue item is created; the queue item's status
// is kept equal to the article's. A non-empty comment is appended to the
// queue item attributed to the acting principal.
func (s *Service) Transition(ctx context.Context, articleID string, target ArticleStatus, comment string) (TransitionResult, error) {
	actor := identity.ActorFromContext(ctx)
	if actor == nil {
		return TransitionResult{}, shared.ErrUnauthorized
	}
	article, err := s.repo.GetArticle(ctx, articleID)
	if err != nil {
		return TransitionResult{}, err
	}
	if !target.Valid() {
		return TransitionResult{}, &InvalidTransitionError{From: article.Status, To: target}
	}

	if article.Status == target {
		// Replay. Nothing changes, publishedAt included.
		return s.currentPair(ctx, article)
	}
	if !CanTransition(article.Status, target) {
		return TransitionResult{}, &InvalidTransitionError{From: article.Status, To: target}
	}

	now := s.clock.Now()
	article.Status = target
	article.UpdatedAt = now
	if target == StatusPublished && article.PublishedAt == nil {
		published := now
		article.PublishedAt = &published
	}
	if err := s.repo.SaveArticle(ctx, article); err != nil {
		return TransitionResult{}, err
	}

	item, err := s.repo.GetItemByArticle(ctx, articleID)
	switch {
	case err == nil:
	case target == StatusSubmitted:
		item = EditorialItem{
			ID:          "queue-" + uuid.NewString(),
			ArticleID:   article.ID,
			Priority:    PriorityMedium,
			SubmittedAt: now,
		}
		err = nil
	default:
		// No queue item yet and we are not entering the queue; legal only
		// for draft archival.
		s.recordActivity(ctx, actor, "Moved article to "+string(target), article.ID)
		return TransitionResult{Article: article}, nil
	}

	item.Status = article.Status
	if comment != "" {
		item.Comments = append(item.Comments, EditorialComment{
			ID:        "comment-" + uuid.NewString(),
			Author:    *actor,
			Content:   comment,
			CreatedAt: now,
		})
	}
	if err := s.repo.SaveItem(ctx, item); err != nil {
		return TransitionResult{}, err
	}

	s.recordActivity(ctx, actor, "Moved article to "+string(target), article.ID)
	return TransitionResult{Article: article, Item: &item}, nil
}

func (s *Service) currentPair(ctx context.Context, article Article) (TransitionResult, error) {
	item, err := s.repo.GetItemByArticle(ctx, article.ID)
	if err != nil {
		return TransitionResult{Article: article}, nil
	}
	return TransitionResult{Article: article, Item: &item}, nil
}

// Assign sets the queue item's assignee. Unknown articles and unknown
// assignees both surface shared.ErrNotFound.
func (s *Service) Assign(ctx context.Context, articleID, assigneeID string) (EditorialItem, error) {
	actor := identity.ActorFromContext(ctx)
	if actor == nil {
		return EditorialItem{}, shared.ErrUnauthorized
	}
	item, err := s.repo.GetItemByArticle(ctx, articleID)
	if err != nil {
		return EditorialItem{}, err
	}
	assignee, err := s.directory.Principal(ctx, assigneeID)
	if err != nil {
		return EditorialItem{}, fmt.Errorf("newsroom: assignee %s: %w", assigneeID, err)
	}
	item.AssignedTo = &assignee
	if err := s.repo.SaveItem(ctx, item); err != nil {
		return EditorialItem{}, err
	}
	s.recordActivity(ctx, actor, "Assigned article to "+assignee.Username, articleID)
	return item, nil
}

// RecordView bumps the article's view counter. Counters never decrease.
func (s *Service) RecordView(ctx context.Context, articleID string) error {
	return s.bumpCounter(ctx, articleID, func(a *Article) { a.Views++ })
}

// Like bumps the article's like counter.
func (s *Service) Like(ctx context.Context, articleID string) error {
	return s.bumpCounter(ctx, articleID, func(a *Article) { a.Likes++ })
}

func (s *Service) bumpCounter(ctx context.Context, articleID string, bump func(*Article)) error {
	article, err := s.repo.GetArticle(ctx, articleID)
	if err != nil {
		return err
	}
	bump(&article)
	return s.repo.SaveArticle(ctx, article)
}

// ListByStatus returns articles whose status matches exactly.
func (s *Service) ListByStatus(ctx context.Context, status ArticleStatus) ([]Article, error) {
	return s.repo.ListArticlesByStatus(ctx, status)
}

// Queue returns queue items, filtered by exact status when one is given.
// An empty status means "all".
func (s *Service) Queue(ctx context.Context, status ArticleStatus) ([]EditorialItem, error) {
	items, err := s.repo.ListQueue(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return items, nil
	}
	filtered := items[:0]
	for _, item := range items {
		if item.Status == status {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// QueuePage returns one page of the (optionally filtered) queue.
func (s *Service) QueuePage(ctx context.Context, status ArticleStatus, page, perPage int) ([]EditorialItem, shared.Pagination, error) {
	items, err := s.Queue(ctx, status)
	if err != nil {
		return nil, shared.Pagination{}, err
	}
	p := shared.NewPagination(page, perPage, len(items))
	start := p.Offset()
	if start >= len(items) {
		return nil, p, nil
	}
	end := start + p.PerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], p, nil
}

// Staff returns the newsroom roster.
func (s *Service) Staff(ctx context.Context) ([]identity.StaffMember, error) {
	return s.directory.Staff(ctx)
}

// StaffMember returns one roster entry by principal id.
func (s *Service) StaffMember(ctx context.Context, id string) (identity.StaffMember, error) {
	return s.directory.StaffMember(ctx, id)
}

// PublishDue transitions every SCHEDULED article whose scheduled time has
// passed to PUBLISHED, acting as the system principal. Returns how many
// were published.
func (s *Service) PublishDue(ctx context.Context) (int, error) {
	due, err := s.repo.ListDueScheduled(ctx, s.clock.Now())
	if err != nil {
		return 0, err
	}
	ctx = identity.ContextWithActor(ctx, &System)
	published := 0
	for _, article := range due {
		if _, err := s.Transition(ctx, article.ID, StatusPublished, ""); err != nil {
			if s.logger != nil {
				s.logger.Error("publish due article", slog.String("article", article.ID), slog.Any("error", err))
			}
			continue
		}
		published++
	}
	return published, nil
}

func (s *Service) recordActivity(ctx context.Context, actor *identity.Principal, action, target string) {
	if s.activity == nil {
		return
	}
	entry := shared.ActivityEntry{
		ID:        "act-" + uuid.NewString(),
		ActorID:   actor.ID,
		ActorName: actor.DisplayName(),
		Action:    action,
		Target:    target,
		At:        s.clock.Now(),
	}
	if err := s.activity.Record(ctx, entry); err != nil && s.logger != nil {
		s.logger.Warn("record activity", slog.Any("error", err))
	}
}
