package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/urnpubid/settings"
)

var (
	settingsPressID          int64
	settingsPrefix           string
	settingsSuffix           string
	settingsMonographPattern string
	settingsFormatPattern    string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change the URN settings of a press",
	Long: `Show or change the URN prefix and suffix settings of a press.

The suffix strategy is "default" (press path, monograph id and format id
joined by dots) or "pattern". Patterns may use %p (press path, lower-cased),
%m (monograph id) and %f (publication format id).

Examples:
  urnpubid settings show --press 1
  urnpubid settings set --press 1 --prefix urn:nbn:de:101-
  urnpubid settings set --press 1 --suffix pattern \
    --monograph-pattern '%p-%m' --format-pattern '%p-%m-%f'`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the settings of a press",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change the settings of a press",
	RunE:  runSettingsSet,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)

	settingsCmd.PersistentFlags().Int64Var(&settingsPressID, "press", 0, "Press id")
	_ = settingsCmd.MarkPersistentFlagRequired("press")

	settingsSetCmd.Flags().StringVar(&settingsPrefix, "prefix", "", "URN prefix (e.g., urn:nbn:de:101-)")
	settingsSetCmd.Flags().StringVar(&settingsSuffix, "suffix", "", "Suffix strategy: default or pattern")
	settingsSetCmd.Flags().StringVar(&settingsMonographPattern, "monograph-pattern", "", "Suffix pattern for monographs")
	settingsSetCmd.Flags().StringVar(&settingsFormatPattern, "format-pattern", "", "Suffix pattern for publication formats")
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	s, err := repository().Load(settingsPressID)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	form := settings.NewForm(repository(), settingsPressID)
	if err := form.InitData(); err != nil {
		return err
	}

	var in settings.Input
	flags := cmd.Flags()
	if flags.Changed("prefix") {
		in.Prefix = &settingsPrefix
	}
	if flags.Changed("suffix") {
		in.Suffix = &settingsSuffix
	}
	if flags.Changed("monograph-pattern") {
		in.MonographPattern = &settingsMonographPattern
	}
	if flags.Changed("format-pattern") {
		in.PublicationFormatPattern = &settingsFormatPattern
	}
	form.ReadInput(in)

	if err := form.Execute(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "URN settings updated for press %d\n", settingsPressID)
	return nil
}
