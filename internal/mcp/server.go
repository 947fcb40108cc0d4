// Package mcp exposes read-only ginit context over an MCP stdio server,
// so agents can check the init preconditions before running commands.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	mmcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

func ServeStdio(ctx context.Context, in io.Reader, out io.Writer, version string) error {
	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	srv := mcpserver.NewMCPServer(
		"ginit-mcp",
		trimmedVersion,
		mcpserver.WithInstructions("Use get_workspace_context to check authentication and workspace state before suggesting `ginit auth` or `ginit init`."),
		mcpserver.WithResourceCapabilities(false, false),
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
	)

	registerResources(srv)
	registerTools(srv)

	stdio := mcpserver.NewStdioServer(srv)
	return stdio.Listen(ctx, in, out)
}

func registerResources(srv *mcpserver.MCPServer) {
	srv.AddResource(
		mmcp.NewResource(
			"ginit://state/context",
			"Current ginit Context",
			mmcp.WithResourceDescription("JSON snapshot of the working directory and authentication state"),
			mmcp.WithMIMEType("application/json"),
		),
		func(ctx context.Context, request mmcp.ReadResourceRequest) ([]mmcp.ResourceContents, error) {
			return readResource(strings.TrimSpace(request.Params.URI))
		},
	)

	srv.AddResource(
		mmcp.NewResource(
			"ginit://guide/workflow",
			"ginit Workflow Guide",
			mmcp.WithResourceDescription("How to take a directory from untouched to initialized, remoted, and pushed"),
			mmcp.WithMIMEType("text/markdown"),
		),
		func(ctx context.Context, request mmcp.ReadResourceRequest) ([]mmcp.ResourceContents, error) {
			return readResource(strings.TrimSpace(request.Params.URI))
		},
	)
}

func readResource(uri string) ([]mmcp.ResourceContents, error) {
	switch uri {
	case "ginit://state/context":
		snapshot, err := BuildContextSnapshot(".", true)
		if err != nil {
			return nil, err
		}
		data, err := json.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode context: %w", err)
		}
		return []mmcp.ResourceContents{
			mmcp.TextResourceContents{URI: uri, MIMEType: "application/json", Text: string(data)},
		}, nil

	case "ginit://guide/workflow":
		return []mmcp.ResourceContents{
			mmcp.TextResourceContents{URI: uri, MIMEType: "text/markdown", Text: workflowGuide()},
		}, nil

	default:
		return nil, fmt.Errorf("unknown resource uri")
	}
}

func registerTools(srv *mcpserver.MCPServer) {
	srv.AddTool(
		mmcp.NewTool(
			"get_workspace_context",
			mmcp.WithDescription("Return the current directory's init preconditions: authentication, git metadata, files, default repository name"),
			mmcp.WithBoolean(
				"include_entries",
				mmcp.Description("When true, include the list of ignorable directory entries"),
			),
		),
		func(ctx context.Context, request mmcp.CallToolRequest) (*mmcp.CallToolResult, error) {
			includeEntries := request.GetBool("include_entries", false)

			snapshot, err := BuildContextSnapshot(".", includeEntries)
			if err != nil {
				return nil, err
			}

			data, err := json.MarshalIndent(snapshot, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to encode context: %w", err)
			}

			return mmcp.NewToolResultStructured(snapshot, string(data)), nil
		},
	)
}

func workflowGuide() string {
	return `# ginit workflow

1. Run ` + "`ginit auth`" + ` once to store a GitHub token.
2. From the project directory, run ` + "`ginit init`" + ` (or bare ` + "`ginit`" + `).
   - ` + "`-i`" + ` prompts for name, description, visibility, and optional
     README/.gitignore scaffolding.
   - ` + "`-f`" + ` initializes an empty directory without prompting.
3. ginit creates the remote repository first, then runs git init, add,
   commit, remote add, and push. A failure after the remote exists is
   reported without rollback; remove the remote manually if unwanted.

Preconditions checked before any side effect: a stored token, no existing
.git directory, and a non-empty directory unless interactive or forced.
`
}
