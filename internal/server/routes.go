package server

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"

	"github.com/nfrund/pagetitle/internal/handlers"
	"github.com/nfrund/pagetitle/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() error {
	pages, err := do.Invoke[*handlers.PageHandler](s.injector)
	if err != nil {
		return fmt.Errorf("build page handler: %w", err)
	}
	rateLimiter := middleware.RateLimiter(5, 10)

	s.E.GET("/", pages.HomeGet)
	s.E.GET("/about", pages.AboutGet)
	s.E.GET("/news", pages.NewsGet)

	s.E.GET("/api/title", handlers.TitleGet, rateLimiter)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	return nil
}
