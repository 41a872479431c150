package i18n_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/nfrund/pagetitle/internal/i18n"
	"github.com/nfrund/pagetitle/internal/title"
)

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func memCatalog(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "locales/messages.en.toml", `"Super Application" = "Super Application"
"News" = "News"
`)
	writeFile(t, fs, "locales/messages.es.yaml", "Super Application: Súper Aplicación\nNews: Noticias\n")
	writeFile(t, fs, "locales/README.md", "not a catalog")
	return fs
}

func TestLoad(t *testing.T) {
	c, err := i18n.Load(memCatalog(t), "locales", language.English)
	require.NoError(t, err)

	assert.Equal(t, language.English, c.DefaultLanguage())
	assert.Equal(t, []language.Tag{language.English, language.Spanish}, c.Languages())
}

func TestLoad_EmptyDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("locales", 0o755))
	writeFile(t, fs, "locales/notes.txt", "nothing here")

	_, err := i18n.Load(fs, "locales", language.English)
	assert.ErrorIs(t, err, i18n.ErrNoMessages)
}

func TestLoad_MissingDir(t *testing.T) {
	_, err := i18n.Load(afero.NewMemMapFs(), "nope", language.English)
	assert.Error(t, err)
}

func TestLoad_InvalidFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "locales/messages.en.toml", `"Super Application" = `)

	_, err := i18n.Load(fs, "locales", language.English)
	assert.Error(t, err)
}

func TestCatalog_Translate(t *testing.T) {
	c, err := i18n.Load(memCatalog(t), "locales", language.English)
	require.NoError(t, err)

	assert.Equal(t, "Noticias", c.Translate("News", "es"))
	assert.Equal(t, "News", c.Translate("News", "en"))
	assert.Equal(t, "Súper Aplicación", c.Translate(title.PostfixKey, "es-MX", "en"))
	// Keys without a message translate to themselves.
	assert.Equal(t, "Unknown Key", c.Translate("Unknown Key", "es"))
}

func TestCatalog_Match(t *testing.T) {
	c, err := i18n.Load(memCatalog(t), "locales", language.English)
	require.NoError(t, err)

	tests := []struct {
		name  string
		prefs []string
		want  language.Tag
	}{
		{name: "no prefs", want: language.English},
		{name: "exact", prefs: []string{"es"}, want: language.Spanish},
		{name: "regional variant", prefs: []string{"es-AR"}, want: language.Spanish},
		{name: "accept-language header", prefs: []string{"fr-FR,es;q=0.8,en;q=0.5"}, want: language.Spanish},
		{name: "unsupported", prefs: []string{"ja"}, want: language.English},
		{name: "garbage", prefs: []string{"!!!"}, want: language.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Match(tt.prefs...))
		})
	}
}

func TestCatalog_ResolverComposesTitles(t *testing.T) {
	c, err := i18n.Load(memCatalog(t), "locales", language.English)
	require.NoError(t, err)

	composer := title.NewComposer(c.Resolver("es"))
	assert.Equal(t, "Súper Aplicación", composer.Title())

	composer.SetTitle(c.Translate("News", "es"))
	assert.Equal(t, "Noticias - Súper Aplicación", composer.Title())
}

func TestLoadEmbedded(t *testing.T) {
	c, err := i18n.LoadEmbedded(language.English)
	require.NoError(t, err)

	assert.Contains(t, c.Languages(), language.German)
	assert.Contains(t, c.Languages(), language.BrazilianPortuguese)
	assert.Equal(t, "Super Application", c.Translate(title.PostfixKey, "en"))
	assert.Equal(t, "Super Anwendung", c.Translate(title.PostfixKey, "de"))
	assert.Equal(t, "Nachrichten - Super Anwendung", title.Compose(c.Translate("News", "de"), c.Translate(title.PostfixKey, "de")))
}
