package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/urnpubid/publication"
	"github.com/lehigh-university-libraries/urnpubid/settings"
)

var (
	pressAddID   int64
	pressAddPath string
	pressAddName string
)

var pressCmd = &cobra.Command{
	Use:   "press",
	Short: "Manage presses",
	Long: `Register, list and remove the presses URNs are assigned for.

Examples:
  urnpubid press add --id 1 --path ABC --name "Academic Books Co."
  urnpubid press list
  urnpubid press delete 1`,
}

var pressAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a press",
	RunE:  runPressAdd,
}

var pressListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered presses",
	RunE:  runPressList,
}

var pressDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a press and its settings",
	Args:  cobra.ExactArgs(1),
	RunE:  runPressDelete,
}

func init() {
	rootCmd.AddCommand(pressCmd)
	pressCmd.AddCommand(pressAddCmd)
	pressCmd.AddCommand(pressListCmd)
	pressCmd.AddCommand(pressDeleteCmd)

	pressAddCmd.Flags().Int64Var(&pressAddID, "id", 0, "Press id")
	pressAddCmd.Flags().StringVar(&pressAddPath, "path", "", "Press path (used by %p)")
	pressAddCmd.Flags().StringVar(&pressAddName, "name", "", "Press name")
	_ = pressAddCmd.MarkFlagRequired("id")
	_ = pressAddCmd.MarkFlagRequired("path")
}

func runPressAdd(cmd *cobra.Command, args []string) error {
	repo := repository()
	if repo.Exists(pressAddID) {
		return fmt.Errorf("press %d already exists", pressAddID)
	}

	s := &settings.PressSettings{
		Press: publication.Press{ID: pressAddID, Path: pressAddPath, Name: pressAddName},
	}
	if err := repo.Save(s); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Press %d (%s) registered\n", pressAddID, pressAddPath)
	return nil
}

func runPressList(cmd *cobra.Command, args []string) error {
	repo := repository()
	ids, err := repo.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(ids) == 0 {
		fmt.Fprintln(out, "No presses found.")
		fmt.Fprintln(out, "\nRegister one with:")
		fmt.Fprintln(out, "  urnpubid press add --id <id> --path <path>")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPATH\tENABLED\tPREFIX\tSUFFIX")
	fmt.Fprintln(w, "--\t----\t-------\t------\t------")

	for _, id := range ids {
		s, err := repo.Load(id)
		if err != nil {
			fmt.Fprintf(w, "%d\t?\t?\terror loading\t\n", id)
			continue
		}
		suffix := s.Suffix
		if suffix == "" {
			suffix = "default"
		}
		fmt.Fprintf(w, "%d\t%s\t%t\t%s\t%s\n", id, s.Press.Path, s.Enabled, s.Prefix, suffix)
	}
	return w.Flush()
}

func runPressDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid press id %q: %w", args[0], err)
	}
	if err := repository().Delete(id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Press %d deleted\n", id)
	return nil
}
