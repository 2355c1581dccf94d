// Package docslicer provides embedded resources for the docslicer MCP server.
package docslicer

import (
	"embed"
)

// Resources contains embedded resource files such as authoring guidance.
//
//go:embed resources/**
var Resources embed.FS
