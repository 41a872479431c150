package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nfrund/pagetitle/internal/title"
)

func newComposeCmd(opts *options) *cobra.Command {
	var (
		langs     []string
		fallback  string
		translate bool
	)

	composeCmd := &cobra.Command{
		Use:   "compose [title]",
		Short: "Compose a page title",
		Long: `Compose prints "<title> - <application name>", or the application name
alone when no title is given. The application name is resolved from the
message catalog in the requested language.`,
		Example: `  title-cli compose News
  title-cli compose News --lang de --translate`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := opts.catalog()
			if err != nil {
				return err
			}

			resolver := catalog.Resolver(langs...)
			if fallback != "" {
				resolver = title.WithFallback(resolver, fallback)
			}
			composer := title.NewComposer(resolver)

			if len(args) == 1 {
				page := args[0]
				if translate {
					page = catalog.Translate(page, langs...)
				}
				composer.SetTitle(page)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), composer.Title())
			return err
		},
	}

	composeCmd.Flags().StringSliceVarP(&langs, "lang", "l", nil, "preferred languages, most preferred first")
	composeCmd.Flags().StringVar(&fallback, "fallback", "", "application name to use when the catalog yields an empty one")
	composeCmd.Flags().BoolVarP(&translate, "translate", "t", false, "translate the title through the catalog as well")
	return composeCmd
}
