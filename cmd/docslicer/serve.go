package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	docslicer "github.com/docslicer/docslicer"
	"github.com/docslicer/docslicer/internal/buildinfo"
	"github.com/docslicer/docslicer/internal/exploder"
	"github.com/docslicer/docslicer/internal/helpers"
	"github.com/docslicer/docslicer/internal/logging"
	"github.com/docslicer/docslicer/internal/sections"
	"github.com/docslicer/docslicer/tools"
)

// Server instructions are a good opportunity to give the agent a high-level overview of the tools
// and resources that will be made available. However, it should be kept as brief as possible, as
// to not waste conversation tokens.
const instructions = `
Use the provided tools for browsing the loaded guide: list_sections for the ordered
section map, get_section for full section content, search_sections to locate topics,
and check_document to review the guide's health.
Use the provided resources for understanding how the guide's source document is structured.
List the resources at least once before trying to access one of them.
`

const authoringResourceURI = "docs://docslicer/authoring"

//nolint:gochecknoglobals // Allows test override for stdio server.
var serveStdio = server.ServeStdio

func newServeCommand() *cobra.Command {
	var (
		out          string
		transport    string
		addr         string
		ssePath      string
		messagesPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve an exploded guide over MCP",
		Long: "Serve the exploded guide in the output directory over the Model Context\n" +
			"Protocol, exposing section listing, retrieval, search, and document checks.",
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return serve(serveOptions{
				out:          out,
				transport:    transport,
				addr:         addr,
				ssePath:      ssePath,
				messagesPath: messagesPath,
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", defaultOutput, "Exploded guide directory (from docslicer explode)")
	cmd.Flags().StringVar(&transport, "transport", "stdio", "Transport mode: stdio or http")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "HTTP address to listen on")
	cmd.Flags().StringVar(&ssePath, "sse-path", "/sse", "Path for SSE endpoint")
	cmd.Flags().StringVar(&messagesPath, "messages-path", "/messages", "Path for message posting")

	return cmd
}

type serveOptions struct {
	out          string
	transport    string
	addr         string
	ssePath      string
	messagesPath string
}

func serve(opts serveOptions) error {
	logger := logging.Default()

	logger.Info("Starting docslicer MCP server",
		slog.String("version", buildinfo.Version),
		slog.String("commit", buildinfo.Commit),
		slog.String("built_at", buildinfo.Date),
		slog.Bool("resource_capabilities", true),
	)

	indexPath := filepath.Join(opts.out, exploder.SectionsFileName)
	logger.Info("Loading sections index",
		slog.String("path", indexPath),
		slog.String("path_type", helpers.GetPathType(indexPath)))

	index, err := sections.LoadJSONFile(indexPath)
	if err != nil {
		return fmt.Errorf("failed to load sections index from %s (run `docslicer explode` first): %w", indexPath, err)
	}
	finder := sections.NewFinder(index)

	logger.Info("Loaded sections index",
		slog.String("guide", finder.Title()),
		slog.Int("section_count", finder.Count()))

	s := server.NewMCPServer(
		"docslicer",
		buildinfo.Version,
		server.WithResourceCapabilities(true, true),
		server.WithLogging(),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	// Register tools
	tools.RegisterInfoTool(s, finder)
	tools.RegisterListSectionsTool(s, finder)
	tools.RegisterGetSectionTool(s, finder)
	tools.RegisterSearchSectionsTool(s, finder)
	tools.RegisterCheckDocumentTool(s, finder)

	// Register resources
	registerAuthoringResource(s)

	if opts.transport == "http" {
		// Construct BaseURL from the address
		baseURL := "http://localhost:8080" // Default fallback
		if opts.addr != "" {
			if opts.addr[0] == ':' {
				baseURL = "http://localhost" + opts.addr
			} else {
				baseURL = "http://" + opts.addr
			}
		}

		sseServer := server.NewSSEServer(s,
			server.WithBaseURL(baseURL),
			server.WithSSEEndpoint(opts.ssePath),
			server.WithMessageEndpoint(opts.messagesPath),
		)
		mux := http.NewServeMux()
		mux.Handle(opts.ssePath, sseServer)
		mux.Handle(opts.messagesPath, sseServer)

		logger.Info("Starting MCP server on HTTP",
			slog.String("addr", opts.addr),
			slog.String("sse_path", opts.ssePath),
			slog.String("messages_path", opts.messagesPath),
			slog.String("base_url", baseURL),
		)

		if err := http.ListenAndServe(opts.addr, mux); err != nil {
			logger.Error("Server error", slog.String("error", err.Error()))
			return fmt.Errorf("MCP server exited with error: %w", err)
		}
		return nil
	}

	logger.Info("Starting MCP server on stdio")
	if err := serveStdio(s); err != nil {
		logger.Error("Server error", slog.String("error", err.Error()))
		return fmt.Errorf("MCP server exited with error: %w", err)
	}

	return nil
}

func registerAuthoringResource(s *server.MCPServer) {
	authoringResource := mcp.NewResource(
		authoringResourceURI,
		"Guide authoring rules",
		mcp.WithResourceDescription("Describes how source documents are structured for splitting."),
		mcp.WithMIMEType("text/markdown"),
	)

	s.AddResource(authoringResource, func(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		content, err := docslicer.Resources.ReadFile("resources/AUTHORING.md")
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded authoring resource: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      authoringResourceURI,
				MIMEType: "text/markdown",
				Text:     string(content),
			},
		}, nil
	})
}
