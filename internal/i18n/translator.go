package i18n

import (
	"sync/atomic"

	"golang.org/x/text/language"

	"github.com/nfrund/pagetitle/internal/title"
)

// Translator holds the active Catalog and lets it be swapped at runtime.
// It is safe for concurrent use.
type Translator struct {
	current atomic.Pointer[Catalog]
}

// NewTranslator creates a Translator serving c.
func NewTranslator(c *Catalog) *Translator {
	t := &Translator{}
	t.current.Store(c)
	return t
}

// Catalog returns the active catalog.
func (t *Translator) Catalog() *Catalog {
	return t.current.Load()
}

// Swap replaces the active catalog.
func (t *Translator) Swap(c *Catalog) {
	t.current.Store(c)
}

// Match delegates to the active catalog.
func (t *Translator) Match(prefs ...string) language.Tag {
	return t.Catalog().Match(prefs...)
}

// Translate delegates to the active catalog.
func (t *Translator) Translate(key string, langs ...string) string {
	return t.Catalog().Translate(key, langs...)
}

// Resolver returns a title.Resolver that always reads the catalog active at
// resolution time.
func (t *Translator) Resolver(langs ...string) title.Resolver {
	return title.ResolverFunc(func(key string) string {
		return t.Catalog().Translate(key, langs...)
	})
}
