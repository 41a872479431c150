package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LocaleSessionName is the session holding the user's language choice.
	LocaleSessionName = "locale-session"

	sessionLangKey = "lang"
)

// LanguageMatcher picks the best supported language for a preference list.
type LanguageMatcher interface {
	Match(prefs ...string) language.Tag
}

// Locale resolves the request language from the lang query parameter, then
// the session, then Accept-Language. An explicit lang parameter is saved in
// the session when a session store is installed.
func Locale(m LanguageMatcher) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tag := resolveLanguage(c, m)

			c.Response().Header().Set("Content-Language", tag.String())
			ctx := WithLanguage(c.Request().Context(), tag)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func resolveLanguage(c echo.Context, m LanguageMatcher) language.Tag {
	logger := FromContext(c.Request().Context())

	if lang := strings.TrimSpace(c.QueryParam(LangParam)); lang != "" {
		tag := m.Match(lang)
		if sess, err := session.Get(LocaleSessionName, c); err == nil {
			sess.Values[sessionLangKey] = tag.String()
			if err := sess.Save(c.Request(), c.Response()); err != nil {
				logger.Warn("Failed to persist language choice", "lang", tag.String(), "error", err)
			}
		}
		return tag
	}

	if sess, err := session.Get(LocaleSessionName, c); err == nil {
		if lang, ok := sess.Values[sessionLangKey].(string); ok && lang != "" {
			return m.Match(lang)
		}
	}

	return m.Match(c.Request().Header.Get("Accept-Language"))
}

// WithLanguage returns a copy of ctx carrying the request language.
func WithLanguage(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, languageKey, tag)
}

// LanguageFromContext returns the language set by Locale.
func LanguageFromContext(ctx context.Context) (language.Tag, bool) {
	tag, ok := ctx.Value(languageKey).(language.Tag)
	return tag, ok
}
