package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nearfal08/nexus/internal/config"
	"github.com/nearfal08/nexus/internal/logging"
	"github.com/nearfal08/nexus/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve <pagefile>",
	Short: "Preview a page file with live reload",
	Long: `Serve starts a local preview server for a page file. The page is
recomposed on every request and connected browsers reload automatically when
the file changes.

Examples:
  nexus serve page.yml
  nexus serve page.yml --port 3000`,
	Args: cobra.ExactArgs(1),
	RunE: runServe,
}

var (
	servePort int
	serveHost string
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to serve on (overrides config)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind (overrides config)")
	AddFlagValidation(serveCmd, "port", ValidatePort)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}
	if serveHost != "" {
		cfg.Server.Host = serveHost
	}

	logger := logging.NewLogger(&logging.LoggerConfig{
		Level: logging.ParseLevel(viper.GetString("log-level")),
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("🚀 Previewing %s at http://%s:%d\n", args[0], cfg.Server.Host, cfg.Server.Port)

	srv := server.New(cfg, logger, args[0])
	if err := srv.Start(ctx); err != nil && err != context.Canceled {
		return fmt.Errorf("preview server: %w", err)
	}
	return nil
}
