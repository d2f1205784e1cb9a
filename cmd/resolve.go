package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/urnpubid/urn"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <urn>",
	Short: "Print the resolver link for a URN",
	Long: `Print the nbn-resolving.org link for a URN. No request is made and the
identifier is not validated.

Example:
  urnpubid resolve urn:nbn:de:101-abc.42`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), urn.ResolvingURL(args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
