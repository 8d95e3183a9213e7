package newsroom

import (
	"fmt"

	"github.com/xnn-portal/xnn-portal/internal/shared"
)

// transitions is the adjacency table of legal status moves. Every article
// may archive early from any non-terminal state; PUBLISHED is reachable only
// through SCHEDULED.
var transitions = map[ArticleStatus][]ArticleStatus{
	StatusDraft:       {StatusSubmitted, StatusArchived},
	StatusSubmitted:   {StatusInReview, StatusArchived},
	StatusInReview:    {StatusEditing, StatusScheduled, StatusArchived},
	StatusEditing:     {StatusLegalReview, StatusSubmitted, StatusArchived},
	StatusLegalReview: {StatusScheduled, StatusArchived},
	StatusScheduled:   {StatusPublished, StatusArchived},
	StatusPublished:   {StatusArchived},
	StatusArchived:    {},
}

// CanTransition reports whether moving from one status to another is legal.
// A same-status move is permitted and treated as a no-op by the engine.
func CanTransition(from, to ArticleStatus) bool {
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// InvalidTransitionError reports an illegal status move. It matches
// shared.ErrInvalidTransition under errors.Is.
type InvalidTransitionError struct {
	From ArticleStatus
	To   ArticleStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("newsroom: cannot move article from %s to %s", e.From, e.To)
}

// Unwrap ties the error into the shared taxonomy.
func (e *InvalidTransitionError) Unwrap() error {
	return shared.ErrInvalidTransition
}
