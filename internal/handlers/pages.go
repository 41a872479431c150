package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/pagetitle/internal/middleware"
	"github.com/nfrund/pagetitle/internal/rendering"
	"github.com/nfrund/pagetitle/internal/title"
	"github.com/nfrund/pagetitle/internal/view"
)

// Translator looks up display text for a key in the given languages.
type Translator interface {
	Translate(key string, langs ...string) string
}

// PageHandler renders the HTML pages. Each page sets its own title on the
// request's composer; the layout reads the composed result.
type PageHandler struct {
	renderer   rendering.Renderer
	translator Translator
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(renderer rendering.Renderer, translator Translator) *PageHandler {
	return &PageHandler{renderer: renderer, translator: translator}
}

// HomeGet renders the home page. It sets no title, so the document title is
// the postfix alone.
func (h *PageHandler) HomeGet(c echo.Context) error {
	heading := h.t(c, "Home")
	return h.renderer.RenderPage(c, http.StatusOK,
		view.Page(c.Request().Context(), heading, "Pick a page to see its title in the browser tab."))
}

// AboutGet renders the about page.
func (h *PageHandler) AboutGet(c echo.Context) error {
	return h.titled(c, "About", "This application composes page titles from a page name and the application name.")
}

// NewsGet renders the news page.
func (h *PageHandler) NewsGet(c echo.Context) error {
	return h.titled(c, "News", "No news is good news.")
}

func (h *PageHandler) titled(c echo.Context, key, body string) error {
	composer, ok := title.FromContext(c.Request().Context())
	if !ok {
		return rendering.ErrNoComposer
	}
	heading := h.t(c, key)
	composer.SetTitle(heading)

	middleware.FromContext(c.Request().Context()).Debug("Page title set", "page", key, "title", composer.Title())
	return h.renderer.RenderPage(c, http.StatusOK, view.Page(c.Request().Context(), heading, body))
}

func (h *PageHandler) t(c echo.Context, key string) string {
	if tag, ok := middleware.LanguageFromContext(c.Request().Context()); ok {
		return h.translator.Translate(key, tag.String())
	}
	return h.translator.Translate(key)
}
