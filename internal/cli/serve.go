package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/emiliopalmerini/folio/internal/adapters/otel"
	"github.com/emiliopalmerini/folio/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	Long: `Start the portfolio web server.

Pending migrations are applied before listening.

Examples:
  folio serve              # Start on FOLIO_PORT (default 8080)
  folio serve --port 3000  # Start on port 3000`,
	RunE: runServe,
}

var servePort int

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides FOLIO_PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := NewAppContext(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer app.Close()

	metrics, err := otel.NewRenderMetrics(ctx, cfg.OTEL)
	if err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}
	defer func() {
		if err := metrics.Close(context.Background()); err != nil {
			logger.Warn("failed to flush metrics", zap.Error(err))
		}
	}()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("shutting down")
		cancel()
	}()

	port := cfg.Port
	if servePort != 0 {
		port = servePort
	}
	server := web.NewServer(port, serverOptions(), logger, metrics, app.ActivityRepo, app.ProjectRepo)
	return server.Start(ctx)
}

func serverOptions() web.Options {
	return web.Options{
		Title:           cfg.Title,
		Locale:          cfg.Locale,
		WeekStart:       cfg.Weekday(),
		ShutdownTimeout: cfg.ShutdownTimeout,
	}
}
