// Package mcptools exposes crop recommendations as MCP tools.
//
// Each tool is a struct holding its dependencies, with Definition returning
// the schema and Handle serving calls. Domain failures come back as tool
// error results, never as protocol errors.
package mcptools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/h809829-coder/agrosmart/pkg/apperr"
)

// intArg reads an integer argument; JSON numbers arrive as float64.
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func errorResult(prefix string, err error) *mcp.CallToolResult {
	_, msg := apperr.Resolve(err)
	return mcp.NewToolResultError(fmt.Sprintf("%s: %s", prefix, msg))
}
