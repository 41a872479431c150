package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nfrund/pagetitle/internal/title"
)

func newLanguagesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List catalog languages and their application names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := opts.catalog()
			if err != nil {
				return err
			}
			for _, tag := range catalog.Languages() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", tag, catalog.Translate(title.PostfixKey, tag.String())); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
