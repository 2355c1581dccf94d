package tools

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/docslicer/docslicer/internal/logging"
	"github.com/docslicer/docslicer/internal/sections"
)

// ListSectionsTool exposes a tool for listing the sections of the loaded guide.
//
//nolint:gochecknoglobals // Shared tool definition registered at startup.
var ListSectionsTool = mcp.NewTool(
	"list_sections",
	mcp.WithDescription(
		"Lists all sections of the loaded guide in document order. "+
			"Returns compact metadata (slug, title, previous/next neighbors) without content "+
			"to minimize context usage. "+
			"Use get_section to retrieve the full content for a specific section.",
	),
)

// sectionSummary is the per-section entry returned by list_sections.
type sectionSummary struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Order int    `json:"order"`
	File  string `json:"file"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
}

// listSectionsResponse is the JSON structure returned by the tool.
type listSectionsResponse struct {
	Guide    string           `json:"guide"`
	Sections []sectionSummary `json:"sections"`
	Count    int              `json:"count"`
	Usage    string           `json:"usage"`
}

// RegisterListSectionsTool registers the list sections tool with the MCP server.
func RegisterListSectionsTool(s *server.MCPServer, finder *sections.Finder) {
	handler := newListSectionsHandlerFunc(finder)
	s.AddTool(ListSectionsTool, withToolLogger("list_sections", handler))
}

// newListSectionsHandlerFunc returns an MCP tool handler bound to a finder.
func newListSectionsHandlerFunc(
	finder *sections.Finder,
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger := logging.LoggerFromContext(ctx)
		logger.DebugContext(ctx, "Starting list_sections operation")

		all := finder.GetAll()
		summaries := make([]sectionSummary, 0, len(all))
		for i, section := range all {
			summary := sectionSummary{
				Slug:  section.Slug,
				Title: section.Title,
				Order: section.Order,
				File:  section.File(),
			}
			if i > 0 {
				summary.Prev = all[i-1].Slug
			}
			if i < len(all)-1 {
				summary.Next = all[i+1].Slug
			}
			summaries = append(summaries, summary)
		}

		resp := listSectionsResponse{
			Guide:    finder.Title(),
			Sections: summaries,
			Count:    len(summaries),
			Usage:    "Use get_section with a slug from this list to retrieve full section content.",
		}

		logger.InfoContext(ctx, "Sections listed successfully",
			slog.Int("section_count", len(summaries)))

		return marshalResponse(ctx, logger, resp)
	}
}
