package mcptools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/h809829-coder/agrosmart/pkg/recommend/service"
)

type HistoryTool struct{ svc service.RecommendService }

func NewHistoryTool(svc service.RecommendService) *HistoryTool { return &HistoryTool{svc: svc} }

func (t *HistoryTool) Definition() mcp.Tool {
	return mcp.NewTool("recommendation_history",
		mcp.WithDescription("List the most recent crop recommendations, newest first."),
		mcp.WithNumber("limit", mcp.Description("Max records (default: 10, max: 100)")),
	)
}

func (t *HistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	recs, err := t.svc.History(ctx, intArg(req, "limit", 10))
	if err != nil {
		return errorResult("history failed", err), nil
	}
	if len(recs) == 0 {
		return mcp.NewToolResultText("No recommendations recorded yet."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d recent recommendations:\n\n", len(recs))
	for i, r := range recs {
		fmt.Fprintf(&b, "[%d] %s  %s  (%s soil, %s, water %s, budget %s)  at %s\n",
			i+1, r.Timestamp.UTC().Format(time.RFC3339), r.RecommendedCrop,
			r.SoilType, r.Season, r.WaterAvailability, r.Budget, orDash(r.Location))
	}
	return mcp.NewToolResultText(b.String()), nil
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
