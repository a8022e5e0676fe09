package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"pagetools/internal/application/port/output"
	"pagetools/internal/domain/entity"
)

const serverVersion = "1.0.0"

// New builds an MCP server exposing one tool per extracted page action. Tool
// handlers execute the action against the live browser session, so the
// browser must outlive the server.
func New(artifacts *entity.RunArtifacts, browser output.BrowserPort, log output.LoggerPort) *server.MCPServer {
	srv := server.NewMCPServer("pagetools", serverVersion,
		server.WithToolCapabilities(false),
	)

	for i, tool := range artifacts.Tools.Tools {
		action := artifacts.Actions[i]
		srv.AddTool(buildTool(tool, action), makeHandler(action, tool, browser, log))
	}

	registerListTool(srv, artifacts)

	log.Info("mcp server ready", "tools", len(artifacts.Tools.Tools))
	return srv
}

// Serve runs the server over stdio until the client disconnects.
func Serve(srv *server.MCPServer) error {
	if err := server.ServeStdio(srv); err != nil {
		return fmt.Errorf("mcp stdio: %w", err)
	}
	return nil
}

func buildTool(tool entity.Tool, action entity.Action) mcp.Tool {
	selectorDesc := tool.InputSchema.Properties["selector"].Description

	opts := []mcp.ToolOption{
		mcp.WithDescription(tool.Description),
		mcp.WithString("selector",
			mcp.Required(),
			mcp.Description(selectorDesc),
			mcp.DefaultString(action.Selector),
		),
	}

	// Execution-only extras: the published schema keeps just the selector.
	switch action.Type {
	case entity.ActionInput:
		opts = append(opts, mcp.WithString("text",
			mcp.Description("Text to type into the field"),
		))
	case entity.ActionSelect:
		opts = append(opts, mcp.WithString("value",
			mcp.Description("Visible text of the option to pick"),
		))
	}

	return mcp.NewTool(tool.Name, opts...)
}

func makeHandler(action entity.Action, tool entity.Tool, browser output.BrowserPort, log output.LoggerPort) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.Params.Arguments

		selector, _ := args["selector"].(string)
		if selector == "" {
			selector = action.Selector
		}

		log.Info("mcp tool invoked", "tool", tool.Name, "selector", selector)

		var err error
		switch action.Type {
		case entity.ActionButton, entity.ActionLink:
			err = browser.Click(ctx, selector)
		case entity.ActionInput:
			text, _ := args["text"].(string)
			err = browser.Fill(ctx, selector, text)
		case entity.ActionSelect:
			value, _ := args["value"].(string)
			err = browser.SelectOption(ctx, selector, value)
		default:
			err = fmt.Errorf("unsupported action type %q", action.Type)
		}
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		result, _ := json.Marshal(map[string]string{
			"status":   "ok",
			"action":   string(action.Type),
			"selector": selector,
			"url":      browser.CurrentURL(),
		})
		return mcp.NewToolResultText(string(result)), nil
	}
}

// registerListTool exposes the full descriptor set as a tool of its own so a
// client can fetch the generated JSON without touching the page.
func registerListTool(srv *server.MCPServer, artifacts *entity.RunArtifacts) {
	listTool := mcp.NewTool("list_page_tools",
		mcp.WithDescription("Returns the JSON descriptors of every tool generated for the page"),
	)
	srv.AddTool(listTool, func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		data, err := json.MarshalIndent(artifacts.Tools, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	})
}
