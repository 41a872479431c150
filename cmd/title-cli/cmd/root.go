package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/nfrund/pagetitle/internal/i18n"
)

// options shared by every subcommand.
type options struct {
	localesDir  string
	defaultLang string
	fs          afero.Fs
}

// NewRootCmd builds the title-cli command tree. fs is used to read
// catalogs given with --locales.
func NewRootCmd(fs afero.Fs) *cobra.Command {
	opts := &options{fs: fs}

	rootCmd := &cobra.Command{
		Use:   "title-cli",
		Short: "Page title CLI tool",
		Long: `title-cli composes page titles the same way the web server does.

Available commands:
  compose      Compose a page title with the translated application name
  languages    List the languages available in the message catalog
  version      Print the version number

Use "title-cli [command] --help" for more information about a specific command.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.localesDir, "locales", "", "directory of message files (default: built-in catalogs)")
	rootCmd.PersistentFlags().StringVar(&opts.defaultLang, "default-lang", "en", "language used when no preference matches")

	rootCmd.AddCommand(newComposeCmd(opts), newLanguagesCmd(opts), newVersionCmd())
	return rootCmd
}

// Execute executes the root command
func Execute() {
	if err := NewRootCmd(afero.NewOsFs()).Execute(); err != nil {
		os.Exit(1)
	}
}

func (o *options) catalog() (*i18n.Catalog, error) {
	tag, err := language.Parse(o.defaultLang)
	if err != nil {
		return nil, fmt.Errorf("invalid --default-lang %q: %w", o.defaultLang, err)
	}
	if o.localesDir == "" {
		return i18n.LoadEmbedded(tag)
	}
	return i18n.Load(o.fs, o.localesDir, tag)
}
