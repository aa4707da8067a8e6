package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/perttu/prefstore/internal/settings"
)

// NewMCPServer creates an MCP server exposing the settings store as tools,
// so agent tooling can inspect and tweak the live configuration.
func NewMCPServer(svc settings.Service) *server.MCPServer {
	s := server.NewMCPServer(
		"prefstore",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions("prefstore — persisted game settings: list, read, and change typed settings."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("list_settings",
			mcp.WithDescription("List every known setting with its current effective value."),
		),
		mcpListSettings(svc),
	)

	s.AddTool(
		mcp.NewTool("get_setting",
			mcp.WithDescription("Read one setting's current effective value."),
			mcp.WithString("name", mcp.Description("Setting name (e.g. musicvolume)"), mcp.Required()),
		),
		mcpGetSetting(svc),
	)

	s.AddTool(
		mcp.NewTool("set_setting",
			mcp.WithDescription("Change a setting. The value is parsed according to the setting's declared type."),
			mcp.WithString("name", mcp.Description("Setting name"), mcp.Required()),
			mcp.WithString("value", mcp.Description("New value (e.g. true, 120, 0.35)"), mcp.Required()),
		),
		mcpSetSetting(svc),
	)

	s.AddTool(
		mcp.NewTool("reset_settings",
			mcp.WithDescription("Reset every setting to its default value."),
		),
		mcpResetSettings(svc),
	)

	return s
}

func mcpListSettings(svc settings.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		data, err := json.MarshalIndent(svc.Effective(), "", "  ")
		if err != nil {
			return mcpError(fmt.Sprintf("serializing settings: %v", err)), nil
		}
		return mcpText(string(data)), nil
	}
}

func mcpGetSetting(svc settings.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := req.RequireString("name")
		if err != nil {
			return mcpError("name is required"), nil
		}

		kind, ok := settings.TypeOf(name)
		if !ok {
			return mcpError(fmt.Sprintf("unknown setting %q; valid names: %s", name, strings.Join(settings.Names(), ", "))), nil
		}

		var value any
		switch kind {
		case settings.KindBool:
			value = svc.GetBool(name)
		case settings.KindInt:
			value = svc.GetInt(name)
		case settings.KindFloat:
			value = svc.GetFloat(name)
		}
		return mcpText(fmt.Sprintf("%s = %v (%s)", name, value, kind)), nil
	}
}

func mcpSetSetting(svc settings.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := req.RequireString("name")
		if err != nil {
			return mcpError("name is required"), nil
		}
		raw, err := req.RequireString("value")
		if err != nil {
			return mcpError("value is required"), nil
		}

		kind, ok := settings.TypeOf(name)
		if !ok {
			return mcpError(fmt.Sprintf("unknown setting %q; valid names: %s", name, strings.Join(settings.Names(), ", "))), nil
		}

		switch kind {
		case settings.KindBool:
			v, err := strconv.ParseBool(raw)
			if err != nil {
				return mcpError(fmt.Sprintf("%s expects a boolean, got %q", name, raw)), nil
			}
			svc.SetBool(name, v)
		case settings.KindInt:
			v, err := strconv.Atoi(raw)
			if err != nil {
				return mcpError(fmt.Sprintf("%s expects an integer, got %q", name, raw)), nil
			}
			svc.SetInt(name, v)
		case settings.KindFloat:
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return mcpError(fmt.Sprintf("%s expects a number, got %q", name, raw)), nil
			}
			svc.SetFloat(name, v)
		}

		svc.Save()
		return mcpText(fmt.Sprintf("set %s = %s", name, raw)), nil
	}
}

func mcpResetSettings(svc settings.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc.ResetToDefaults()
		svc.Save()
		return mcpText("all settings reset to defaults"), nil
	}
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
