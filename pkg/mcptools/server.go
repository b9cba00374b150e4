package mcptools

import (
	"github.com/mark3labs/mcp-go/server"

	croprepo "github.com/h809829-coder/agrosmart/pkg/crop/repository"
	"github.com/h809829-coder/agrosmart/pkg/recommend/service"
)

const instructions = "AgroSmart recommends crops for Indian farm conditions. " +
	"Call recommend_crop with soil type and season (plus water availability and budget when known), " +
	"crop_details for a named crop, and recommendation_history to review past recommendations."

func New(version string, svc service.RecommendService, crops croprepo.CropRepository) *server.MCPServer {
	s := server.NewMCPServer(
		"agrosmart",
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	recommend := NewRecommendTool(svc)
	s.AddTool(recommend.Definition(), recommend.Handle)

	history := NewHistoryTool(svc)
	s.AddTool(history.Definition(), history.Handle)

	crop := NewCropTool(crops)
	s.AddTool(crop.Definition(), crop.Handle)

	return s
}
