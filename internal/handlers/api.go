package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/pagetitle/internal/middleware"
	"github.com/nfrund/pagetitle/internal/rendering"
	"github.com/nfrund/pagetitle/internal/title"
)

// TitleGet composes the title for the title query parameter and returns it
// as JSON. It requires the Validator installed on the Echo instance.
func TitleGet(c echo.Context) error {
	var req TitleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Code: "bad_request", Message: err.Error()})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Code: "invalid_lang", Message: err.Error()})
	}

	ctx := c.Request().Context()
	composer, ok := title.FromContext(ctx)
	if !ok {
		return rendering.ErrNoComposer
	}
	composer.SetTitle(req.Title)

	resp := TitleResponse{
		Title: composer.Title(),
		Page:  composer.Raw(),
	}
	if tag, ok := middleware.LanguageFromContext(ctx); ok {
		resp.Lang = tag.String()
	}
	return c.JSON(http.StatusOK, resp)
}
