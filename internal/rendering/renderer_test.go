package rendering

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	cmp "maragu.dev/gomponents"

	"github.com/nfrund/pagetitle/internal/middleware"
	"github.com/nfrund/pagetitle/internal/title"
	"github.com/nfrund/pagetitle/internal/view"
)

func newContext(ctx context.Context) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRenderPage(t *testing.T) {
	r := NewUniversalRenderer(
		[]view.NavLink{{Href: "/", Label: "Home"}},
		func() []string { return []string{"en", "de"} },
	)

	composer := title.NewComposer(title.Static("Google"))
	composer.SetTitle("News")
	ctx := title.WithComposer(context.Background(), composer)
	ctx = middleware.WithLanguage(ctx, language.German)
	c, rec := newContext(ctx)

	require.NoError(t, r.RenderPage(c, http.StatusOK, cmp.Text("page body")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	body := rec.Body.String()
	assert.Contains(t, body, "<title>News - Google</title>")
	assert.Contains(t, body, `<html lang="de">`)
	assert.Contains(t, body, `<a href="?lang=de">de</a>`)
	assert.Contains(t, body, "page body")
}

func TestRenderPage_TemplContent(t *testing.T) {
	r := NewUniversalRenderer(nil, nil)
	ctx := title.WithComposer(context.Background(), title.NewComposer(title.Static("Super Application")))
	c, rec := newContext(ctx)

	require.NoError(t, r.RenderPage(c, http.StatusCreated, view.Heading("Hello")))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "<title>Super Application</title>")
	assert.Contains(t, rec.Body.String(), "Hello</h1>")
}

func TestRenderPage_Errors(t *testing.T) {
	r := NewUniversalRenderer(nil, nil)

	c, _ := newContext(context.Background())
	assert.ErrorIs(t, r.RenderPage(c, http.StatusOK, cmp.Text("x")), ErrNoComposer)

	ctx := title.WithComposer(context.Background(), title.NewComposer(title.Static("App")))
	c, _ = newContext(ctx)
	assert.Error(t, r.RenderPage(c, http.StatusOK, 42))
}

func TestRenderComponent(t *testing.T) {
	r := NewUniversalRenderer(nil, nil)

	out, err := r.RenderComponent(context.Background(), cmp.Text("fragment"))
	require.NoError(t, err)
	assert.Equal(t, "fragment", string(out))

	out, err = r.RenderComponent(context.Background(), view.Heading("T"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "T</h1>")

	_, err = r.RenderComponent(context.Background(), "not a component")
	assert.Error(t, err)
}

func TestRender_EchoRenderer(t *testing.T) {
	r := NewUniversalRenderer(nil, nil)
	e := echo.New()
	e.Renderer = r
	e.GET("/", func(c echo.Context) error {
		return c.Render(http.StatusOK, "", cmp.Text("via echo"))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "via echo", rec.Body.String())
}
