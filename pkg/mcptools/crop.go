package mcptools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/h809829-coder/agrosmart/pkg/crop/repository"
)

type CropTool struct{ crops repository.CropRepository }

func NewCropTool(crops repository.CropRepository) *CropTool { return &CropTool{crops: crops} }

func (t *CropTool) Definition() mcp.Tool {
	return mcp.NewTool("crop_details",
		mcp.WithDescription("Look up a crop profile by exact name, e.g. \"Moong Dal\"."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Crop name, case-sensitive")),
	)
}

func (t *CropTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := strings.TrimSpace(req.GetString("name", ""))
	if name == "" {
		return mcp.NewToolResultError("'name' is required"), nil
	}
	c, err := t.crops.FindByName(ctx, name)
	if err != nil {
		return errorResult("lookup failed", err), nil
	}
	if c == nil {
		return mcp.NewToolResultError("crop not found: " + name), nil
	}
	return jsonResult(c)
}
