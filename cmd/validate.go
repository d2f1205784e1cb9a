package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/urnpubid/urn"
)

var validateQuiet bool

var validateCmd = &cobra.Command{
	Use:   "validate <urn>...",
	Short: "Check that identifiers are syntactically URNs",
	Long: `Check that each argument starts with "urn:" and has a second segment.

This is a syntax check only; it does not contact the resolver.

Examples:
  urnpubid validate urn:nbn:de:101-abc.42
  urnpubid validate --quiet urn:nbn:de:101-abc.42 nbn:de:101`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVarP(&validateQuiet, "quiet", "q", false, "Only report failures through the exit status")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	ok := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed).SprintFunc()
	out := cmd.OutOrStdout()

	invalid := 0
	for _, id := range args {
		if urn.Validate(id) {
			if !validateQuiet {
				fmt.Fprintf(out, "%s  %s\n", ok("valid  "), id)
			}
			continue
		}
		invalid++
		if !validateQuiet {
			fmt.Fprintf(out, "%s  %s\n", bad("invalid"), id)
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d identifiers are not valid URNs", invalid, len(args))
	}
	return nil
}
