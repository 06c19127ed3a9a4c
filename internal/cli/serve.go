package cli

import (
	"context"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/openworkbench/themed/internal/broadcast"
	"github.com/openworkbench/themed/internal/logging"
	"github.com/openworkbench/themed/internal/registry"
	"github.com/openworkbench/themed/internal/server"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the theme service",
	Long:  "Serve the compiled stylesheets, the contribution list and the activation broadcast endpoint over HTTP.",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.Component("serve")
		cfg := GetConfig()

		hub := broadcast.NewHub()
		reg, sink, settings, err := buildRegistry(registry.WithBroadcaster(hub))
		if err != nil {
			return err
		}
		defer settings.Close()

		if err := reg.RestoreSelection(commandContext(cmd)); err != nil {
			logger.Warn().Err(err).Msg("restore persisted selection")
		}

		source.OnIconSetChange(func(iconSet string) {
			if _, err := reg.SetFileIconSet(context.Background(), iconSet); err != nil {
				logger.Warn().Err(err).Str("iconSet", iconSet).Msg("apply icon set from config")
			}
		})

		srv := &http.Server{
			Addr:              cfg.ListenAddr,
			Handler:           server.New(reg, sink, hub).Routes(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		logger.Info().Str("addr", cfg.ListenAddr).Msg("listening")
		return srv.ListenAndServe()
	},
}
