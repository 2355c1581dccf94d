package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/docslicer/docslicer/internal/buildinfo"
	"github.com/docslicer/docslicer/internal/sections"
)

// InfoTool exposes runtime information about the server and the loaded guide.
//
//nolint:gochecknoglobals // Shared tool definition registered at startup.
var InfoTool = mcp.NewTool(
	"info",
	mcp.WithDescription("Get details about the docslicer server and the currently loaded guide."),
)

// InfoResponse is the response to the info tool.
type InfoResponse struct {
	// Version is the version of the docslicer server.
	Version string `json:"version"`

	// Guide is the title of the loaded guide.
	Guide string `json:"guide"`

	// Description is the loaded guide's description, if any.
	Description string `json:"description,omitempty"`

	// Sections is the number of sections in the loaded guide.
	Sections int `json:"sections"`
}

// RegisterInfoTool registers the info tool with the MCP server.
func RegisterInfoTool(s *server.MCPServer, finder *sections.Finder) {
	s.AddTool(InfoTool, newInfoHandlerFunc(finder))
}

// newInfoHandlerFunc returns an MCP tool handler bound to a finder.
func newInfoHandlerFunc(
	finder *sections.Finder,
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		response := InfoResponse{
			Version:     buildinfo.Version,
			Guide:       finder.Title(),
			Description: finder.Description(),
			Sections:    finder.Count(),
		}

		jsonResponse, err := json.Marshal(response)
		if err != nil {
			//nolint:nilerr // Error is reported via the MCP error result.
			return mcp.NewToolResultError("Failed to marshal info response; reason: " + err.Error()), nil
		}

		return mcp.NewToolResultText(string(jsonResponse)), nil
	}
}
