package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xnn-portal/xnn-portal/internal/app"
	"github.com/xnn-portal/xnn-portal/internal/newsroom"
	_ "github.com/xnn-portal/xnn-portal/testing"
)

func TestTestModeFlagIsSet(t *testing.T) {
	app.RefreshTestMode()
	require.True(t, app.InTestMode())
}

func TestTailArg(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()

	os.Args = []string{"xnnportal", "queue", "IN_REVIEW"}
	require.Equal(t, "IN_REVIEW", tailArg(2))
	require.Equal(t, "", tailArg(3))
}

func TestNewsroomServiceLoadsSeed(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, directory := newsroomService(logger)
	require.NotNil(t, directory)

	items, err := svc.Queue(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, newsroom.StatusInReview, items[0].Status)
}
