package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/openworkbench/themed/internal/models"
	"github.com/openworkbench/themed/internal/registry"
)

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.AddCommand(listThemesCmd)
	listCmd.AddCommand(listIconsCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered contributions",
	Long:  "List the color themes and file-icon sets contributed by installed extensions.",
}

var listThemesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List color themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _, settings, err := buildRegistry()
		if err != nil {
			return err
		}
		defer settings.Close()

		active, _ := settings.Get(commandContext(cmd), registry.SettingColorTheme, "")
		return writeContributions(reg.ColorThemes(), active)
	},
}

var listIconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "List file-icon sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _, settings, err := buildRegistry()
		if err != nil {
			return err
		}
		defer settings.Close()

		active, _ := settings.Get(commandContext(cmd), registry.SettingIconSet, "")
		return writeContributions(reg.FileIconSets(), active)
	},
}

func writeContributions(contribs []models.ThemeContribution, activeID string) error {
	rows := make([][]string, 0, len(contribs))
	for _, contrib := range contribs {
		rows = append(rows, []string{
			contrib.ID,
			contrib.Label,
			contrib.ExtensionID,
			formatYesNo(contrib.ID == activeID),
		})
	}
	return writeTable(os.Stdout, []string{"ID", "LABEL", "EXTENSION", "ACTIVE"}, rows)
}
