// Package tools provides MCP tool definitions for the docslicer server.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/docslicer/docslicer/internal/logging"
)

// withToolLogger wraps a tool handler to inject a request-scoped logger into
// context and provide panic recovery. The logger carries the tool name and a
// correlation ID and is available via logging.LoggerFromContext.
func withToolLogger(toolName string, handler server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
		logger := logging.WithTool(toolName)
		ctx = logging.ContextWithLogger(ctx, logger)
		ctx = logging.ContextWithRequestID(ctx, uuid.New().String())

		startTime := time.Now()
		logging.RequestStart(ctx, toolName)

		// Panic recovery with logging
		defer func() {
			if r := recover(); r != nil {
				logger.ErrorContext(ctx, "panic in tool execution",
					slog.String("tool", toolName),
					slog.Any("panic", r))
				result = nil
				err = fmt.Errorf("internal error in tool execution: %s", r)
			}
		}()

		result, err = handler(ctx, request)
		logging.RequestEnd(ctx, toolName, err == nil && (result == nil || !result.IsError), time.Since(startTime), err)
		return result, err
	}
}

// marshalResponse serializes a tool response as indented JSON.
func marshalResponse(ctx context.Context, logger *slog.Logger, resp any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		logger.ErrorContext(ctx, "Failed to marshal response",
			slog.String("error", err.Error()))
		return mcp.NewToolResultError("failed to serialize response"), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}
