package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var applyIcons bool

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().BoolVar(&applyIcons, "icons", false, "apply a file-icon set instead of a color theme")
}

var applyCmd = &cobra.Command{
	Use:   "apply <id>",
	Short: "Activate a theme or icon set",
	Long:  "Activate the contribution with the given id, compile its stylesheet and persist the selection.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		reg, _, settings, err := buildRegistry()
		if err != nil {
			return err
		}
		defer settings.Close()

		ctx := commandContext(cmd)
		var applied bool
		if applyIcons {
			applied, err = reg.SetFileIconSet(ctx, id)
		} else {
			applied, err = reg.SetColorTheme(ctx, id, false)
		}
		if err != nil {
			return err
		}
		if !applied {
			return fmt.Errorf("no contribution matches %q and no default is configured", id)
		}
		return nil
	},
}
