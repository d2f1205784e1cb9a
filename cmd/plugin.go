package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/urnpubid/format"
	"github.com/lehigh-university-libraries/urnpubid/urn"
)

var pluginPressID int64

var enableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Enable URN assignment for a press",
	RunE: func(cmd *cobra.Command, args []string) error {
		return setEnabled(cmd, true)
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disable URN assignment for a press",
	RunE: func(cmd *cobra.Command, args []string) error {
		return setEnabled(cmd, false)
	},
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show plugin and identifier information",
	RunE:  runInfo,
}

func init() {
	for _, c := range []*cobra.Command{enableCmd, disableCmd} {
		c.Flags().Int64Var(&pluginPressID, "press", 0, "Press id")
		_ = c.MarkFlagRequired("press")
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(infoCmd)
}

func setEnabled(cmd *cobra.Command, enabled bool) error {
	repo := repository()
	s, err := repo.Load(pluginPressID)
	if err != nil {
		return err
	}
	s.Enabled = enabled
	if err := repo.Save(s); err != nil {
		return err
	}

	state := "disabled"
	if enabled {
		state = "enabled"
	}
	slog.Info("plugin state changed", "plugin", urn.PluginName, "press", pluginPressID, "state", state)
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s for press %d\n", urn.PluginName, state, pluginPressID)
	return nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Plugin:       %s\n", urn.PluginName)
	fmt.Fprintf(out, "Identifier:   %s (%s)\n", urn.PubIDFullName, urn.PubIDDisplayType)
	fmt.Fprintf(out, "Type:         %s\n", urn.PubIDType)
	fmt.Fprintf(out, "Form fields:  %s\n", strings.Join(urn.FormFieldNames(), ", "))
	fmt.Fprintf(out, "Stored as:    %s\n", strings.Join(urn.DAOFieldNames(), ", "))
	fmt.Fprintf(out, "Resolver:     %s\n", urn.ResolverBaseURL)
	fmt.Fprintf(out, "Formats:      %s\n", strings.Join(format.List(), ", "))
	fmt.Fprintf(out, "Config dir:   %s\n", appConfig.ConfigDir)
	fmt.Fprintf(out, "Object store: %s\n", appConfig.StorePath())
	return nil
}
