package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	categoriesPath = "/categories"
	loginPath      = "/login"
	addNewsPath    = "/add-news-full"
	newsPath       = "/news"
	healthPath     = "/health"

	defaultFrontendDir = "frontend"
)

// RegisterRoutes builds the echo instance with API routes, health check and
// static frontend serving.
func (h *NewsHandler) RegisterRoutes(frontendDir string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(h.loggingMiddleware)

	e.GET(categoriesPath, h.Categories)
	e.POST(loginPath, h.Login)
	e.POST(addNewsPath, h.AddNews)
	e.GET(newsPath, h.NewsByCategory)
	e.GET(healthPath, h.handleHealth)

	if frontendDir == "" {
		frontendDir = defaultFrontendDir
	}
	e.Static("/", frontendDir)

	return e
}

func (h *NewsHandler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *NewsHandler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		h.log.Info("HTTP request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.Request().RemoteAddr,
		)

		return nil
	}
}
