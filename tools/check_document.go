package tools

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/docslicer/docslicer/internal/logging"
	"github.com/docslicer/docslicer/internal/sections"
)

// CheckDocumentTool exposes a tool reporting the health of the loaded guide.
//
//nolint:gochecknoglobals // Shared tool definition registered at startup.
var CheckDocumentTool = mcp.NewTool(
	"check_document",
	mcp.WithDescription(
		"Checks the loaded guide for problems: slug collisions between section "+
			"titles (which silently lose a section file), sections with no content "+
			"beyond their heading, and missing title or description. "+
			"Returns structured issues with severity tags.",
	),
)

// RegisterCheckDocumentTool registers the check document tool with the MCP server.
func RegisterCheckDocumentTool(s *server.MCPServer, finder *sections.Finder) {
	handler := newCheckDocumentHandlerFunc(finder)
	s.AddTool(CheckDocumentTool, withToolLogger("check_document", handler))
}

// newCheckDocumentHandlerFunc returns an MCP tool handler bound to a finder.
func newCheckDocumentHandlerFunc(
	finder *sections.Finder,
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger := logging.LoggerFromContext(ctx)
		logger.DebugContext(ctx, "Starting check_document operation")

		result := sections.CheckIndex(finder.Index())

		logger.InfoContext(ctx, "Document checked",
			slog.Bool("valid", result.Valid),
			slog.Int("issue_count", len(result.Issues)))

		return marshalResponse(ctx, logger, result)
	}
}
