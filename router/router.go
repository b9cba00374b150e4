package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	authCtrl "github.com/h809829-coder/agrosmart/pkg/auth/controller"
	chatCtrl "github.com/h809829-coder/agrosmart/pkg/chat/controller"
	cropCtrl "github.com/h809829-coder/agrosmart/pkg/crop/controller"
	kbCtrl "github.com/h809829-coder/agrosmart/pkg/kb/controller"
	"github.com/h809829-coder/agrosmart/pkg/middleware"
	recCtrl "github.com/h809829-coder/agrosmart/pkg/recommend/controller"
	"github.com/h809829-coder/agrosmart/pkg/validation"
	weatherCtrl "github.com/h809829-coder/agrosmart/pkg/weather/controller"
)

type Handlers struct {
	Crop      cropCtrl.CropController
	Recommend recCtrl.RecommendController
	Weather   weatherCtrl.WeatherController
	Chat      chatCtrl.ChatController
	KB        kbCtrl.KBController
	Auth      authCtrl.AuthController
	Health    interface{ Health(echo.Context) error }

	// RequireSession guards routes that need a signed-in user.
	RequireSession echo.MiddlewareFunc
}

type Options struct {
	CORSOrigins []string
	// StaticDir, when set, serves a built frontend at /.
	StaticDir string
}

// New builds the echo instance. Every API route is mounted at the root and
// again under /api.
func New(h Handlers, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validation.New()
	e.HTTPErrorHandler = httpErrorHandler

	e.Use(echoMiddleware.RequestID())
	e.Use(middleware.RequestContext())
	e.Use(middleware.AccessLog())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.BodyLimit("2M"))
	if len(opts.CORSOrigins) > 0 {
		e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
			AllowOrigins:     opts.CORSOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
			AllowCredentials: true,
		}))
	}

	for _, prefix := range []string{"", "/api"} {
		register(e.Group(prefix), h)
	}

	if opts.StaticDir != "" {
		e.Static("/", opts.StaticDir)
	}
	return e
}

func register(g *echo.Group, h Handlers) {
	auth := h.RequireSession

	g.GET("/health", h.Health.Health)

	g.POST("/recommend", h.Recommend.Recommend)
	g.GET("/history", h.Recommend.History)
	g.GET("/history/export", h.Recommend.Export, auth)

	g.GET("/crops", h.Crop.List)
	g.GET("/crop/:name", h.Crop.Get)

	g.GET("/weather", h.Weather.Current)
	g.POST("/chat", h.Chat.Chat, auth)

	g.POST("/auth/register", h.Auth.Register)
	g.POST("/auth/login", h.Auth.Login)
	g.POST("/auth/logout", h.Auth.Logout, auth)
	g.GET("/auth/me", h.Auth.Me, auth)

	g.POST("/kb/ingest", h.KB.IngestText, auth)
	g.POST("/kb/ingest/url", h.KB.IngestURL, auth)
	g.GET("/kb/search", h.KB.Search)
	g.GET("/kb/docs", h.KB.ListDocs)
}
