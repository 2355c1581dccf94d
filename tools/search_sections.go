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

const (
	defaultMaxResults = 10
	maxMaxResults     = 20
)

// SearchSectionsTool exposes a tool for searching the loaded guide.
//
//nolint:gochecknoglobals // Shared tool definition registered at startup.
var SearchSectionsTool = mcp.NewTool(
	"search_sections",
	mcp.WithDescription(
		"Searches guide sections by case-insensitive substring match across "+
			"titles, slugs, and content. Returns matching section metadata; "+
			"use get_section to retrieve full content.",
	),
	mcp.WithString(
		"query",
		mcp.Required(),
		mcp.Description("Substring to search for (e.g., 'error handling')."),
	),
	mcp.WithNumber(
		"max_results",
		mcp.Description("Maximum number of results to return (default: 10, max: 20)."),
	),
)

// searchSectionsResponse is the JSON structure returned by the tool.
type searchSectionsResponse struct {
	Query   string           `json:"query"`
	Results []sectionSummary `json:"results"`
	Count   int              `json:"count"`
	Total   int              `json:"total"`
}

// RegisterSearchSectionsTool registers the search tool with the MCP server.
func RegisterSearchSectionsTool(s *server.MCPServer, finder *sections.Finder) {
	handler := newSearchSectionsHandlerFunc(finder)
	s.AddTool(SearchSectionsTool, withToolLogger("search_sections", handler))
}

// newSearchSectionsHandlerFunc returns an MCP tool handler bound to a finder.
func newSearchSectionsHandlerFunc(
	finder *sections.Finder,
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger := logging.LoggerFromContext(ctx)
		logger.DebugContext(ctx, "Starting search_sections operation")

		query, err := request.RequireString("query")
		if err != nil {
			logger.WarnContext(ctx, "Invalid parameters", slog.String("error", err.Error()))
			return mcp.NewToolResultError(fmt.Sprintf("missing or invalid query parameter: %v", err)), nil
		}

		maxResults := request.GetInt("max_results", defaultMaxResults)
		if maxResults < 1 {
			maxResults = defaultMaxResults
		} else if maxResults > maxMaxResults {
			maxResults = maxMaxResults
		}

		matches := finder.Search(query)
		total := len(matches)
		if len(matches) > maxResults {
			matches = matches[:maxResults]
		}

		results := make([]sectionSummary, 0, len(matches))
		for _, section := range matches {
			results = append(results, sectionSummary{
				Slug:  section.Slug,
				Title: section.Title,
				Order: section.Order,
				File:  section.File(),
			})
		}

		logger.InfoContext(ctx, "Search completed",
			slog.String("query", query),
			slog.Int("total_matches", total),
			slog.Int("returned", len(results)))

		resp := searchSectionsResponse{
			Query:   query,
			Results: results,
			Count:   len(results),
			Total:   total,
		}

		return marshalResponse(ctx, logger, resp)
	}
}
