package rendering

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"maragu.dev/gomponents"

	"github.com/nfrund/pagetitle/internal/middleware"
	"github.com/nfrund/pagetitle/internal/title"
	"github.com/nfrund/pagetitle/internal/view"
)

// ErrNoComposer is returned by RenderPage when the request carries no
// title.Composer, i.e. the Title middleware is not installed.
var ErrNoComposer = errors.New("no title composer in request context")

// Renderer defines the contract for rendering templ and gomponents content.
type Renderer interface {
	// RenderComponent renders a component to a slice of bytes. Useful for HTMX fragments.
	RenderComponent(ctx context.Context, component any) ([]byte, error)

	// RenderPage wraps content in the base layout, titled with the request's
	// composed title, and writes it as the response.
	RenderPage(c echo.Context, status int, content any) error
}

// UniversalRenderer is the concrete implementation that handles rendering for multiple component types.
type UniversalRenderer struct {
	nav   []view.NavLink
	langs func() []string
}

// NewUniversalRenderer creates a renderer whose layout shows nav and one
// switch link per language returned by langs.
func NewUniversalRenderer(nav []view.NavLink, langs func() []string) *UniversalRenderer {
	return &UniversalRenderer{nav: nav, langs: langs}
}

var _ echo.Renderer = (*UniversalRenderer)(nil)

// render is the core logic that inspects the component type and calls the appropriate render method.
func (r *UniversalRenderer) render(ctx context.Context, component any, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case gomponents.Node:
		return c.Render(w)
	default:
		return fmt.Errorf("unsupported component type: %T. Component must be templ.Component or gomponents.Node", component)
	}
}

// RenderComponent implements the Renderer interface.
func (r *UniversalRenderer) RenderComponent(ctx context.Context, component any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("failed to render component to bytes: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage implements the Renderer interface for full HTTP responses.
func (r *UniversalRenderer) RenderPage(c echo.Context, status int, content any) error {
	ctx := c.Request().Context()
	page, err := r.page(ctx, content)
	if err != nil {
		return err
	}

	// Buffer first so a failed render can still produce an error response.
	body, err := r.RenderComponent(ctx, page)
	if err != nil {
		middleware.FromContext(ctx).Error("Failed to render page", "error", err)
		return err
	}
	return c.HTMLBlob(status, body)
}

func (r *UniversalRenderer) page(ctx context.Context, content any) (gomponents.Node, error) {
	composer, ok := title.FromContext(ctx)
	if !ok {
		return nil, ErrNoComposer
	}

	var node gomponents.Node
	switch c := content.(type) {
	case templ.Component:
		node = view.AdaptTemplToGomponent(ctx, c)
	case gomponents.Node:
		node = c
	default:
		return nil, fmt.Errorf("unsupported component type: %T. Component must be templ.Component or gomponents.Node", content)
	}

	props := view.LayoutProps{
		Title: composer.Title(),
		Nav:   r.nav,
	}
	if tag, ok := middleware.LanguageFromContext(ctx); ok {
		props.Lang = tag.String()
	}
	if r.langs != nil {
		for _, lang := range r.langs() {
			props.Langs = append(props.Langs, view.NavLink{
				Href:  "?" + middleware.LangParam + "=" + lang,
				Label: lang,
			})
		}
	}
	return view.Base(props, node), nil
}

// Render implements the echo.Renderer interface for use with c.Render(status, name, component).
// The component is passed as data; name is ignored.
func (r *UniversalRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return r.render(c.Request().Context(), data, w)
}
