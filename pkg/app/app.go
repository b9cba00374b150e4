// Package app assembles repositories, services and handlers from config.
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/h809829-coder/agrosmart/config"
	"github.com/h809829-coder/agrosmart/pkg/ai"
	authCtrlImp "github.com/h809829-coder/agrosmart/pkg/auth/controllerImp"
	authRepoImp "github.com/h809829-coder/agrosmart/pkg/auth/repositoryImp"
	authSvcImp "github.com/h809829-coder/agrosmart/pkg/auth/serviceImp"
	chatCtrlImp "github.com/h809829-coder/agrosmart/pkg/chat/controllerImp"
	chatSvcImp "github.com/h809829-coder/agrosmart/pkg/chat/serviceImp"
	cropCtrlImp "github.com/h809829-coder/agrosmart/pkg/crop/controllerImp"
	croprepo "github.com/h809829-coder/agrosmart/pkg/crop/repository"
	cropRepoImp "github.com/h809829-coder/agrosmart/pkg/crop/repositoryImp"
	"github.com/h809829-coder/agrosmart/pkg/health"
	healthCtrlImp "github.com/h809829-coder/agrosmart/pkg/health/controllerImp"
	kbCtrlImp "github.com/h809829-coder/agrosmart/pkg/kb/controllerImp"
	kbRepoImp "github.com/h809829-coder/agrosmart/pkg/kb/repositoryImp"
	kbSvcImp "github.com/h809829-coder/agrosmart/pkg/kb/serviceImp"
	"github.com/h809829-coder/agrosmart/pkg/logger"
	"github.com/h809829-coder/agrosmart/pkg/middleware"
	recCtrlImp "github.com/h809829-coder/agrosmart/pkg/recommend/controllerImp"
	recRepoImp "github.com/h809829-coder/agrosmart/pkg/recommend/repositoryImp"
	recSvcImp "github.com/h809829-coder/agrosmart/pkg/recommend/serviceImp"
	"github.com/h809829-coder/agrosmart/pkg/weather"
	weatherCtrlImp "github.com/h809829-coder/agrosmart/pkg/weather/controllerImp"
	"github.com/h809829-coder/agrosmart/router"
)

// Core is what every entry point needs: the catalog and the resolver.
type Core struct {
	Crops     croprepo.CropRepository
	Recommend *recSvcImp.RecommendSvc
}

// NewCore seeds the catalog and builds the resolver over db.
func NewCore(ctx context.Context, db *gorm.DB) (*Core, int, error) {
	crops := cropRepoImp.New(db)
	n, err := crops.SeedIfEmpty(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("seed catalog: %w", err)
	}
	return &Core{Crops: crops, Recommend: recSvcImp.New(crops, recRepoImp.New(db))}, n, nil
}

type options struct {
	llm      ai.Client
	weather  weather.Provider
	kbClient *http.Client
	authOpts []authSvcImp.Option
}

type Option func(*options)

func WithLLM(c ai.Client) Option             { return func(o *options) { o.llm = c } }
func WithWeather(p weather.Provider) Option  { return func(o *options) { o.weather = p } }
func WithKBHTTPClient(c *http.Client) Option { return func(o *options) { o.kbClient = c } }
func WithAuthOptions(a ...authSvcImp.Option) Option {
	return func(o *options) { o.authOpts = append(o.authOpts, a...) }
}

// NewHTTP wires the full HTTP surface on top of core.
func NewHTTP(ctx context.Context, cfg config.AppConfig, db *gorm.DB, core *Core, opts ...Option) (*echo.Echo, error) {
	var o options
	for _, fn := range opts {
		fn(&o)
	}

	llm := o.llm
	if llm == nil {
		var err error
		if llm, err = NewLLM(ctx, cfg); err != nil {
			return nil, err
		}
	}
	wp := o.weather
	if wp == nil {
		wp = NewWeatherProvider(cfg)
	}
	logger.Infof(ctx, "providers: llm=%s weather=%T", llm.Name(), wp)

	authSvc, err := authSvcImp.New(authRepoImp.New(db), cfg.AuthSecret, cfg.SessionTTL, o.authOpts...)
	if err != nil {
		return nil, err
	}

	var kbOpts []kbSvcImp.Option
	if o.kbClient != nil {
		kbOpts = append(kbOpts, kbSvcImp.WithHTTPClient(o.kbClient))
	}
	kbSvc := kbSvcImp.New(kbRepoImp.New(db), cfg.KBAllowedDomains, cfg.KBMaxBytesPerPage, kbOpts...)

	checker := health.NewChecker().Register("database", health.Database(db))

	return router.New(router.Handlers{
		Crop:           cropCtrlImp.New(core.Crops),
		Recommend:      recCtrlImp.New(core.Recommend),
		Weather:        weatherCtrlImp.New(weather.NewService(wp)),
		Chat:           chatCtrlImp.New(chatSvcImp.New(llm, kbSvc)),
		KB:             kbCtrlImp.New(kbSvc),
		Auth:           authCtrlImp.New(authSvc, cfg.SecureCookies),
		Health:         healthCtrlImp.New(checker),
		RequireSession: middleware.Session(authSvc),
	}, router.Options{CORSOrigins: cfg.CORSOrigins, StaticDir: cfg.StaticDir}), nil
}

// NewLLM picks Gemini, then an OpenAI-compatible endpoint, then the mock.
func NewLLM(ctx context.Context, cfg config.AppConfig) (ai.Client, error) {
	switch {
	case cfg.GeminiAPIKey != "":
		return ai.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, "")
	case cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "":
		return ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel), nil
	default:
		return ai.NewMock(), nil
	}
}

func NewWeatherProvider(cfg config.AppConfig) weather.Provider {
	if cfg.OpenWeatherKey == "" {
		return weather.NewMock()
	}
	return weather.NewOpenWeather(cfg.OpenWeatherEndpoint, cfg.OpenWeatherKey)
}
