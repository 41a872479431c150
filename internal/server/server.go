package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"

	"github.com/nfrund/pagetitle/internal/config"
	"github.com/nfrund/pagetitle/internal/handlers"
	"github.com/nfrund/pagetitle/internal/i18n"
	"github.com/nfrund/pagetitle/internal/middleware"
	"github.com/nfrund/pagetitle/internal/rendering"
	"github.com/nfrund/pagetitle/internal/view"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E          *echo.Echo
	Cfg        config.Provider
	translator *i18n.Translator
	watcher    *i18n.Watcher
	injector   do.Injector
}

// New creates a new Server instance with all routes registered.
func New(cfg config.Provider) (*Server, error) {
	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.Provide(injector, provideTranslator)
	do.Provide(injector, provideRenderer)
	do.Provide(injector, providePageHandler)

	translator, err := do.Invoke[*i18n.Translator](injector)
	if err != nil {
		return nil, fmt.Errorf("load message catalog: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger)
	e.Use(requestLogger())

	// Configure and use session middleware
	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 365, // 1 year
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	e.Use(middleware.Locale(translator))
	e.Use(middleware.Title(translator, cfg.GetAppName()))

	s := &Server{
		E:          e,
		Cfg:        cfg,
		translator: translator,
		injector:   injector,
	}
	if cfg.GetHotReload() {
		s.watcher = i18n.NewWatcher(afero.NewOsFs(), cfg.GetLocalesDir(), cfg.GetDefaultLang(), translator)
	}

	if err := s.RegisterRoutes(); err != nil {
		return nil, err
	}
	return s, nil
}

// Translator is a getter for the server's translator, useful for testing.
func (s *Server) Translator() *i18n.Translator {
	return s.translator
}

func provideTranslator(i do.Injector) (*i18n.Translator, error) {
	cfg := do.MustInvoke[config.Provider](i)

	var (
		catalog *i18n.Catalog
		err     error
	)
	if dir := cfg.GetLocalesDir(); dir != "" {
		catalog, err = i18n.Load(afero.NewOsFs(), dir, cfg.GetDefaultLang())
	} else {
		catalog, err = i18n.LoadEmbedded(cfg.GetDefaultLang())
	}
	if err != nil {
		return nil, err
	}
	slog.Info("Message catalog loaded", "dir", cfg.GetLocalesDir(), "languages", len(catalog.Languages()))
	return i18n.NewTranslator(catalog), nil
}

func provideRenderer(i do.Injector) (*rendering.UniversalRenderer, error) {
	translator := do.MustInvoke[*i18n.Translator](i)
	nav := []view.NavLink{
		{Href: "/", Label: "Home"},
		{Href: "/about", Label: "About"},
		{Href: "/news", Label: "News"},
	}
	langs := func() []string {
		tags := translator.Catalog().Languages()
		out := make([]string, len(tags))
		for i, tag := range tags {
			out[i] = tag.String()
		}
		return out
	}
	return rendering.NewUniversalRenderer(nav, langs), nil
}

func providePageHandler(i do.Injector) (*handlers.PageHandler, error) {
	renderer := do.MustInvoke[*rendering.UniversalRenderer](i)
	translator := do.MustInvoke[*i18n.Translator](i)
	return handlers.NewPageHandler(renderer, translator), nil
}

// requestLogger logs one line per request through the request-scoped logger.
func requestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			middleware.FromContext(c.Request().Context()).Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.Round(time.Microsecond).String(),
			)
			return nil
		},
	})
}
