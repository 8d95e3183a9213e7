package newsroom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to ArticleStatus
		want     bool
	}{
		{StatusDraft, StatusSubmitted, true},
		{StatusDraft, StatusInReview, false},
		{StatusDraft, StatusPublished, false},
		{StatusSubmitted, StatusInReview, true},
		{StatusSubmitted, StatusEditing, false},
		{StatusInReview, StatusEditing, true},
		{StatusInReview, StatusScheduled, true},
		{StatusInReview, StatusPublished, false},
		{StatusEditing, StatusLegalReview, true},
		{StatusEditing, StatusSubmitted, true},
		{StatusEditing, StatusScheduled, false},
		{StatusLegalReview, StatusScheduled, true},
		{StatusLegalReview, StatusEditing, false},
		{StatusScheduled, StatusPublished, true},
		{StatusScheduled, StatusInReview, false},
		{StatusPublished, StatusDraft, false},
		{StatusArchived, StatusDraft, false},
		{StatusArchived, StatusSubmitted, false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestArchiveReachableFromEveryActiveStatus(t *testing.T) {
	for from := range transitions {
		if from == StatusArchived {
			continue
		}
		require.True(t, CanTransition(from, StatusArchived), "%s -> ARCHIVED", from)
	}
}

func TestSameStatusIsAlwaysLegal(t *testing.T) {
	for from := range transitions {
		require.True(t, CanTransition(from, from), "%s -> %s", from, from)
	}
}

func TestPublishedOnlyReachableFromScheduled(t *testing.T) {
	for from := range transitions {
		if from == StatusScheduled || from == StatusPublished {
			continue
		}
		require.False(t, CanTransition(from, StatusPublished), "%s -> PUBLISHED", from)
	}
}
