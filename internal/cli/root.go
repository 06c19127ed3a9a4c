// Package cli implements the themed command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/openworkbench/themed/internal/config"
	"github.com/openworkbench/themed/internal/extensions"
	"github.com/openworkbench/themed/internal/logging"
	"github.com/openworkbench/themed/internal/registry"
	"github.com/openworkbench/themed/internal/store"
)

var (
	configPath string
	logLevel   string

	source *config.Source
)

var rootCmd = &cobra.Command{
	Use:   "themed",
	Short: "Theme and file-icon service",
	Long:  "themed compiles editor color themes and file-icon sets to CSS and serves the active selection.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		source, err = config.Load(configPath)
		if err != nil {
			return err
		}

		level := logLevel
		if level == "" {
			level = source.Config().LogLevel
		}
		logging.Setup(os.Stderr, level)
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// GetConfig returns the loaded configuration.
func GetConfig() config.Config {
	if source == nil {
		return config.Default()
	}
	return source.Config()
}

// buildRegistry assembles the registry from the configured data and
// extensions directories: sqlite-backed settings, a file sink for the
// compiled stylesheets, and every contribution found on disk.
func buildRegistry(opts ...registry.Option) (*registry.Service, *registry.FileSink, *store.Store, error) {
	cfg := GetConfig()

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, nil, nil, fmt.Errorf("create data dir: %w", err)
	}
	settings, err := store.Open(filepath.Join(cfg.DataDir, "themed.db"))
	if err != nil {
		return nil, nil, nil, err
	}

	sink, err := registry.NewFileSink(filepath.Join(cfg.DataDir, "styles"))
	if err != nil {
		settings.Close()
		return nil, nil, nil, err
	}

	opts = append([]registry.Option{
		registry.WithDefaultColorTheme(cfg.DefaultColorTheme),
		registry.WithDefaultIconSet(cfg.Icons.DefaultSet),
		registry.WithUsageReporter(registry.NewLogReporter()),
	}, opts...)

	reg, err := registry.New(settings, sink, opts...)
	if err != nil {
		settings.Close()
		return nil, nil, nil, err
	}

	if err := registerContributions(reg, cfg.ExtensionsDir); err != nil {
		settings.Close()
		return nil, nil, nil, err
	}
	return reg, sink, settings, nil
}

func registerContributions(reg *registry.Service, dir string) error {
	collector := extensions.NewLogCollector()
	exts, err := extensions.ScanDir(dir, collector)
	if err != nil {
		return fmt.Errorf("scan extensions: %w", err)
	}
	for _, ext := range exts {
		for _, contrib := range ext.ColorThemes(collector) {
			reg.RegisterColorTheme(contrib)
		}
		for _, contrib := range ext.FileIconSets(collector) {
			reg.RegisterFileIconSet(contrib)
		}
	}
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
