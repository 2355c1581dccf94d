package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSectionHandlerReturnsContent(t *testing.T) {
	t.Parallel()

	handler := newGetSectionHandlerFunc(newTestFinder(sampleSections()))

	result, err := handler(context.Background(), newCallRequest(map[string]any{
		"slug": "daily-use",
	}))
	require.NoError(t, err)

	var resp getSectionResponse
	decodeResult(t, result, &resp)

	require.Equal(t, "daily-use", resp.Slug)
	require.Equal(t, "Daily Use", resp.Title)
	require.Equal(t, "## Daily Use\nRun it every morning.", resp.Content)
	require.Equal(t, "getting-started", resp.Prev)
	require.Equal(t, "troubleshooting", resp.Next)
}

func TestGetSectionHandlerUnknownSlug(t *testing.T) {
	t.Parallel()

	handler := newGetSectionHandlerFunc(newTestFinder(sampleSections()))

	result, err := handler(context.Background(), newCallRequest(map[string]any{
		"slug": "missing",
	}))
	require.NoError(t, err)
	require.True(t, result.IsError)
}

func TestGetSectionHandlerMissingSlugParameter(t *testing.T) {
	t.Parallel()

	handler := newGetSectionHandlerFunc(newTestFinder(sampleSections()))

	result, err := handler(context.Background(), newCallRequest(nil))
	require.NoError(t, err)
	require.True(t, result.IsError)
}
