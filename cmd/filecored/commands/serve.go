package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/marmos91/filecore/internal/config"
	"github.com/marmos91/filecore/internal/logger"
	"github.com/marmos91/filecore/pkg/engine"
	"github.com/marmos91/filecore/pkg/httpapi"
	"github.com/marmos91/filecore/pkg/localfs"
	"github.com/marmos91/filecore/pkg/metrics"
	"github.com/marmos91/filecore/pkg/watch"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the filecore engine and its HTTP debug/metrics surface",
	Long: `Serve loads configuration, builds the local-disk FsProvider, and runs
the Navigator/Scanner actor mesh until it receives SIGINT or SIGTERM.

Use --config to specify a custom configuration file, or it will use the
default location at $XDG_CONFIG_HOME/filecore/config.yaml.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("filecored starting", "version", Version, "commit", Commit)
	logger.Info("configuration loaded", "source", getConfigSource(GetConfigFile()))

	provider, err := localfs.New(localfs.Config{Root: cfg.Filesystem.Root})
	if err != nil {
		return fmt.Errorf("failed to initialize filesystem provider: %w", err)
	}
	logger.Info("filesystem provider ready", "root", cfg.Filesystem.Root)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	eng := engine.New(provider, engine.Config{
		CommandBuffer: cfg.Engine.CommandBuffer,
		EventBuffer:   cfg.Engine.EventBuffer,
		SessionBuffer: cfg.Engine.SessionBuffer,
		HistoryLimit:  cfg.Engine.HistoryLimit,
	}, m)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go eng.Run(ctx)

	if cfg.Filesystem.Watch {
		w, err := watch.New(provider.Root(), eng)
		if err != nil {
			return fmt.Errorf("failed to start filesystem watcher: %w", err)
		}
		go w.Run(ctx)
		logger.Info("filesystem watcher active", "root", provider.Root())
	}

	var httpServer *http.Server
	httpDone := make(chan error, 1)
	if cfg.Server.Enabled {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
			Handler: httpapi.NewRouter(eng, reg),
		}
		go func() {
			logger.Info("http debug/metrics surface listening", "port", cfg.Server.Port)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				httpDone <- err
				return
			}
			httpDone <- nil
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("filecored is running, press Ctrl+C to stop")

	select {
	case <-sigChan:
		signal.Stop(sigChan)
		logger.Info("shutdown signal received, initiating graceful shutdown")
	case err := <-httpDone:
		signal.Stop(sigChan)
		if err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
	}

	cancel()

	if httpServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown error", "error", err)
		}
	}

	logger.Info("filecored stopped")
	return nil
}

func getConfigSource(configFile string) string {
	if configFile != "" {
		return configFile
	}
	return config.GetDefaultConfigPath() + " (or defaults)"
}
