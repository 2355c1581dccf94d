package tools

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/require"

	"github.com/docslicer/docslicer/internal/logging"
)

func TestWithToolLoggerRecoversFromPanic(t *testing.T) {
	t.Parallel()

	var panicking server.ToolHandlerFunc = func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		panic("boom")
	}

	wrapped := withToolLogger("panicky", panicking)

	result, err := wrapped(context.Background(), newCallRequest(nil))
	require.Error(t, err)
	require.Nil(t, result)
	require.Contains(t, err.Error(), "boom")
}

func TestWithToolLoggerInjectsRequestContext(t *testing.T) {
	t.Parallel()

	var sawRequestID string
	var handler server.ToolHandlerFunc = func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sawRequestID = logging.RequestIDFromContext(ctx)
		require.NotNil(t, logging.LoggerFromContext(ctx))
		return mcp.NewToolResultText("ok"), nil
	}

	wrapped := withToolLogger("plain", handler)

	result, err := wrapped(context.Background(), newCallRequest(nil))
	require.NoError(t, err)
	require.False(t, result.IsError)
	require.NotEmpty(t, sawRequestID)
}
