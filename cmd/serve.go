package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vlivernoche/portfolio/internal/analytics"
	"github.com/vlivernoche/portfolio/internal/config"
	"github.com/vlivernoche/portfolio/internal/i18n"
	"github.com/vlivernoche/portfolio/internal/logging"
	"github.com/vlivernoche/portfolio/internal/server"
)

const pruneInterval = time.Hour

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	Long: `Serves the index page pre-translated for the visitor's language,
the CV as a download at /cv, and every other path from the static
directory.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort > 0 {
		cfg.Server.Port = servePort
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer logger.Sync()

	gin.SetMode(cfg.Server.Mode)

	table, err := i18n.Load()
	if err != nil {
		return fmt.Errorf("loading translations: %w", err)
	}
	if err := table.MissingError(); err != nil {
		logger.Warn("translation table is incomplete", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		store   *analytics.Store
		tracker *analytics.Tracker
	)
	if cfg.Analytics.Enabled {
		store, err = analytics.Open(cfg.Analytics.DSN)
		if err != nil {
			return err
		}
		defer store.Close()
		tracker = analytics.NewTracker(store, logger, cfg.Analytics.QueueSize)
		go store.Retain(ctx, logger, cfg.Analytics.Retention, pruneInterval)
	}

	srv, err := server.New(serverConfig(cfg), table, logger, tracker)
	if err != nil {
		return err
	}
	if err := srv.Pages().Warm(ctx); err != nil {
		return fmt.Errorf("rendering pages: %w", err)
	}

	runErr := srv.Run(ctx, cfg.Addr(), cfg.Server.ShutdownTimeout)

	if tracker != nil {
		tracker.Close()
		logSummary(logger, store)
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return nil
}

func serverConfig(cfg *config.Config) server.Config {
	return server.Config{
		StaticDir:  cfg.Server.StaticDir,
		Index:      cfg.Server.Index,
		CVPath:     cfg.Server.CVPath,
		CVFilename: cfg.Server.CVFilename,
	}
}

func logSummary(logger *zap.Logger, store *analytics.Store) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	sum, err := store.Summary(ctx, time.Now())
	if err != nil {
		logger.Warn("reading visit summary", zap.Error(err))
		return
	}
	logger.Info("visit summary",
		zap.Int64("total", sum.TotalVisits),
		zap.Int64("unique", sum.UniqueVisitors),
		zap.Int64("page_views", sum.PageViews),
		zap.Int64("downloads", sum.Downloads),
		zap.Int64("today", sum.VisitsToday),
	)
}
