package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/openworkbench/themed/internal/tui"
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the interactive theme picker",
	Long:  "Launch a terminal UI that lists registered color themes and activates the selected one.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !hasTTY() {
			return errors.New("the theme picker requires an interactive terminal")
		}

		reg, _, settings, err := buildRegistry()
		if err != nil {
			return err
		}
		defer settings.Close()

		if err := reg.RestoreSelection(commandContext(cmd)); err != nil {
			return err
		}
		return tui.Run(reg)
	},
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
