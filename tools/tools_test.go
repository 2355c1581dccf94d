package tools

import (
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"

	"github.com/docslicer/docslicer/internal/sections"
)

func sampleSections() []sections.Section {
	return []sections.Section{
		{Slug: "getting-started", Title: "Getting Started", Order: 0, Content: "## Getting Started\nInstall the tool."},
		{Slug: "daily-use", Title: "Daily Use", Order: 1, Content: "## Daily Use\nRun it every morning."},
		{Slug: "troubleshooting", Title: "Troubleshooting", Order: 2, Content: "## Troubleshooting\nCheck the logs."},
	}
}

func newTestFinder(secs []sections.Section) *sections.Finder {
	doc := &sections.Document{
		Title:       "Sample Guide",
		Description: "A guide used in tests.",
		Sections:    append([]sections.Section(nil), secs...),
	}
	return sections.NewFinder(sections.BuildIndex(doc))
}

func newCallRequest(args map[string]any) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = args
	return request
}

func decodeResult(t *testing.T, result *mcp.CallToolResult, v any) {
	t.Helper()

	require.False(t, result.IsError)
	require.Len(t, result.Content, 1)

	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok)
	require.NoError(t, json.Unmarshal([]byte(text.Text), v))
}
