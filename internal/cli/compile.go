package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openworkbench/themed/internal/models"
	"github.com/openworkbench/themed/internal/stylesheet"
	"github.com/openworkbench/themed/internal/themedoc"
)

var (
	compileIcons   bool
	compileThemeID string
)

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().BoolVar(&compileIcons, "icons", false, "treat the document as a file-icon set")
	compileCmd.Flags().StringVar(&compileThemeID, "theme-id", "", "override the generated theme id")
}

var compileCmd = &cobra.Command{
	Use:   "compile <document>",
	Short: "Compile a theme document to CSS",
	Long:  "Compile a color theme or file-icon document to CSS rules on stdout.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		id := compileThemeID
		if id == "" {
			id = defaultThemeID(path, compileIcons)
		}

		rules, err := compileDocument(path, id, compileIcons)
		if err != nil {
			return err
		}
		for _, rule := range rules {
			fmt.Println(rule)
		}
		return nil
	},
}

func compileDocument(path, id string, icons bool) ([]string, error) {
	if icons {
		doc, err := themedoc.LoadFileIcons(path)
		if err != nil {
			return nil, err
		}
		return stylesheet.CompileFileIcons(id, path, doc), nil
	}

	doc, err := themedoc.LoadColorTheme(path)
	if err != nil {
		return nil, err
	}
	return stylesheet.CompileColorTheme(id, doc), nil
}

func defaultThemeID(path string, icons bool) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	selector := stylesheet.ToCSSSelector(stem)
	if icons {
		return selector
	}
	return models.VariantDark + " " + selector
}
