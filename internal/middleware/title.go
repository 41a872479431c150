package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/nfrund/pagetitle/internal/title"
)

// ResolverSource builds a title.Resolver for a language preference list.
type ResolverSource interface {
	Resolver(langs ...string) title.Resolver
}

// Title installs a fresh title.Composer in every request context. The
// postfix is resolved in the language chosen by Locale and falls back to
// fallback when the lookup comes back empty.
func Title(src ResolverSource, fallback string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var langs []string
			if tag, ok := LanguageFromContext(c.Request().Context()); ok {
				langs = append(langs, tag.String())
			}

			composer := title.NewComposer(title.WithFallback(src.Resolver(langs...), fallback))
			ctx := title.WithComposer(c.Request().Context(), composer)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
