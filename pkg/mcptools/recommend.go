package mcptools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/h809829-coder/agrosmart/entities"
	"github.com/h809829-coder/agrosmart/pkg/recommend/service"
)

type RecommendTool struct{ svc service.RecommendService }

func NewRecommendTool(svc service.RecommendService) *RecommendTool { return &RecommendTool{svc: svc} }

func (t *RecommendTool) Definition() mcp.Tool {
	return mcp.NewTool("recommend_crop",
		mcp.WithDescription("Recommend a crop for a field from its soil type, season, water availability and budget. "+
			"Returns fertilizer, irrigation and expected yield guidance. Every catalog match is recorded in history."),
		mcp.WithString("location", mcp.Description("Free-text field location")),
		mcp.WithString("soil_type", mcp.Required(), mcp.Description("Soil type, e.g. Clay, Loamy, Black, Red, Sandy")),
		mcp.WithString("season", mcp.Required(), mcp.Description("Season, e.g. Kharif, Rabi, Zaid")),
		mcp.WithString("water_availability", mcp.Description("Low, Medium or High")),
		mcp.WithString("budget", mcp.Description("Low, Medium or High")),
	)
}

type recommendOut struct {
	Recommendation entities.CropProfile `json:"recommendation"`
	Match          service.MatchTier    `json:"match"`
	Logged         bool                 `json:"logged"`
}

func (t *RecommendTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	q := service.Query{
		Location:          req.GetString("location", ""),
		SoilType:          req.GetString("soil_type", ""),
		Season:            req.GetString("season", ""),
		WaterAvailability: req.GetString("water_availability", ""),
		Budget:            req.GetString("budget", ""),
	}
	// values go to the resolver as given; blanks only fail the required check
	if strings.TrimSpace(q.SoilType) == "" || strings.TrimSpace(q.Season) == "" {
		return mcp.NewToolResultError("'soil_type' and 'season' are required"), nil
	}

	res, err := t.svc.Resolve(ctx, q)
	if err != nil {
		return errorResult("recommendation failed", err), nil
	}
	return jsonResult(recommendOut{Recommendation: res.Crop, Match: res.Tier, Logged: res.Logged})
}
