package app

import (
	"fmt"
	"strings"

	"skillmatch/internal/config"
	"skillmatch/internal/delivery/http/handler"
	"skillmatch/internal/delivery/http/middleware"
	"skillmatch/internal/delivery/http/routes"
	v1 "skillmatch/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// multipartOverhead leaves room for form fields next to the resume file.
const multipartOverhead = 1 << 20

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:   c.Config.App.AppName,
		BodyLimit: bodyLimit(c.Config.Upload.MaxBytes),
	})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	var pinger handler.CachePinger
	if c.Cache != nil {
		pinger = c.Cache
	}

	registry := routes.NewRegistry(handler.NewHealthHandler(pinger), v1.Handlers{
		Match:             handler.NewMatchHandler(c.Matching),
		JobRecommendation: handler.NewJobRecommendationHandler(c.JobRecommendation),
		Roadmap:           handler.NewRoadmapHandler(c.Roadmap),
	})
	registry.Register(app)
}

func bodyLimit(maxUpload int64) int {
	if maxUpload <= 0 {
		return 0
	}
	return int(maxUpload) + multipartOverhead
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
