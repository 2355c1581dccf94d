package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/docslicer/docslicer/internal/logging"
	"github.com/docslicer/docslicer/internal/sections"
)

// GetSectionTool exposes a tool for retrieving one section's markdown content.
//
//nolint:gochecknoglobals // Shared tool definition registered at startup.
var GetSectionTool = mcp.NewTool(
	"get_section",
	mcp.WithDescription(
		"Retrieves the full markdown content of a specific guide section. "+
			"Use the slug from list_sections output (e.g., 'getting-started'). "+
			"Use this when you need the detailed content for a specific topic.",
	),
	mcp.WithString(
		"slug",
		mcp.Required(),
		mcp.Description(
			"Section slug to retrieve (e.g., 'getting-started'). "+
				"Get valid slugs from the list_sections tool.",
		),
	),
)

// getSectionResponse is the JSON structure returned by the tool.
type getSectionResponse struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Order   int    `json:"order"`
	File    string `json:"file"`
	Content string `json:"content"`
	Prev    string `json:"prev,omitempty"`
	Next    string `json:"next,omitempty"`
}

// RegisterGetSectionTool registers the get section tool with the MCP server.
func RegisterGetSectionTool(s *server.MCPServer, finder *sections.Finder) {
	handler := newGetSectionHandlerFunc(finder)
	s.AddTool(GetSectionTool, withToolLogger("get_section", handler))
}

// newGetSectionHandlerFunc returns an MCP tool handler bound to a finder.
func newGetSectionHandlerFunc(
	finder *sections.Finder,
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger := logging.LoggerFromContext(ctx)
		logger.DebugContext(ctx, "Starting get_section operation")

		slug, err := request.RequireString("slug")
		if err != nil {
			logger.WarnContext(ctx, "Invalid parameters", slog.String("error", err.Error()))
			return mcp.NewToolResultError(fmt.Sprintf("missing or invalid slug parameter: %v", err)), nil
		}

		section, err := finder.GetBySlug(slug)
		if err != nil {
			logger.WarnContext(ctx, "Section not found",
				slog.String("slug", slug),
				slog.String("error", err.Error()))
			return mcp.NewToolResultError(fmt.Sprintf(
				"section not found: %s. Use the list_sections tool to find valid slugs", slug)), nil
		}

		prev, next, err := finder.Neighbors(slug)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		resp := getSectionResponse{
			Slug:    section.Slug,
			Title:   section.Title,
			Order:   section.Order,
			File:    section.File(),
			Content: section.Content,
		}
		if prev != nil {
			resp.Prev = prev.Slug
		}
		if next != nil {
			resp.Next = next.Slug
		}

		logger.InfoContext(ctx, "Section retrieved successfully",
			slog.String("slug", slug),
			slog.String("title", section.Title),
			slog.Int("content_size", len(section.Content)))

		return marshalResponse(ctx, logger, resp)
	}
}
