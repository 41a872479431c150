// Package i18n provides the message catalogs behind page titles.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/afero"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/nfrund/pagetitle/internal/title"
)

// ErrNoMessages is returned when a catalog directory holds no message files.
var ErrNoMessages = errors.New("no message files found")

//go:embed locales/*
var embeddedLocales embed.FS

const embeddedDir = "locales"

// Catalog is a loaded, read-only set of translations.
type Catalog struct {
	bundle      *i18n.Bundle
	defaultLang language.Tag
	languages   []language.Tag
	matcher     language.Matcher
}

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded(defaultLang language.Tag) (*Catalog, error) {
	return Load(afero.FromIOFS{FS: embeddedLocales}, embeddedDir, defaultLang)
}

// Load reads every TOML or YAML message file in dir. File names follow the
// go-i18n convention "<name>.<lang>.<ext>" or "<lang>.<ext>".
func Load(fs afero.Fs, dir string, defaultLang language.Tag) (*Catalog, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("read catalog dir %s: %w", dir, err)
	}

	bundle := i18n.NewBundle(defaultLang)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yml", yaml.Unmarshal)

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !isMessageFile(entry.Name()) {
			continue
		}
		p := path.Join(dir, entry.Name())
		data, err := afero.ReadFile(fs, p)
		if err != nil {
			return nil, fmt.Errorf("read message file %s: %w", p, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, p); err != nil {
			return nil, fmt.Errorf("parse message file %s: %w", p, err)
		}
		loaded++
	}
	if loaded == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoMessages)
	}

	languages := orderLanguages(defaultLang, bundle.LanguageTags())
	slog.Debug("Loaded message catalog", "dir", dir, "files", loaded, "languages", len(languages))

	return &Catalog{
		bundle:      bundle,
		defaultLang: defaultLang,
		languages:   languages,
		matcher:     language.NewMatcher(languages),
	}, nil
}

func isMessageFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".toml", ".yaml", ".yml":
		return true
	}
	return false
}

// orderLanguages puts the default language first, as language.NewMatcher
// falls back to the first supported tag.
func orderLanguages(defaultLang language.Tag, tags []language.Tag) []language.Tag {
	out := []language.Tag{defaultLang}
	rest := make([]language.Tag, 0, len(tags))
	for _, tag := range tags {
		if tag != defaultLang {
			rest = append(rest, tag)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].String() < rest[j].String() })
	return append(out, rest...)
}

// DefaultLanguage returns the language used when no preference matches.
func (c *Catalog) DefaultLanguage() language.Tag {
	return c.defaultLang
}

// Languages returns the supported languages, default first.
func (c *Catalog) Languages() []language.Tag {
	out := make([]language.Tag, len(c.languages))
	copy(out, c.languages)
	return out
}

// Match returns the supported language that best fits prefs. Each pref may
// be a single tag or an Accept-Language header value. Unparseable prefs are
// ignored.
func (c *Catalog) Match(prefs ...string) language.Tag {
	var tags []language.Tag
	for _, pref := range prefs {
		parsed, _, err := language.ParseAcceptLanguage(pref)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	if len(tags) == 0 {
		return c.defaultLang
	}
	_, index, confidence := c.matcher.Match(tags...)
	if confidence == language.No {
		return c.defaultLang
	}
	return c.languages[index]
}

// Translate returns the message for key in the first available language of
// langs. A key with no message translates to itself.
func (c *Catalog) Translate(key string, langs ...string) string {
	return translate(i18n.NewLocalizer(c.bundle, langs...), key)
}

// Resolver returns a title.Resolver bound to the language preference list.
func (c *Catalog) Resolver(langs ...string) title.Resolver {
	localizer := i18n.NewLocalizer(c.bundle, langs...)
	return title.ResolverFunc(func(key string) string {
		return translate(localizer, key)
	})
}

func translate(localizer *i18n.Localizer, key string) string {
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      key,
		DefaultMessage: &i18n.Message{ID: key, Other: key},
	})
	if err != nil {
		return key
	}
	return msg
}
