package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/spf13/cobra"

	"github.com/charangentem-coder/rental-price-predictor/internal/config"
	"github.com/charangentem-coder/rental-price-predictor/internal/handler"
	"github.com/charangentem-coder/rental-price-predictor/internal/router"
	"github.com/charangentem-coder/rental-price-predictor/internal/storage"
	"github.com/charangentem-coder/rental-price-predictor/pkg/logger"
	"github.com/charangentem-coder/rental-price-predictor/pkg/pipeline"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "rentpredict-server",
	Short: "Serve rental price predictions over HTTP",
	Long: `Loads the trained pipeline artifact and serves a form-based UI plus
a small JSON API for rent predictions. If no artifact exists the server
still starts and instructs the user to run training.`,
	Run: runServer,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runServer(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := logger.Setup(logger.Options{
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		AddSource: cfg.Log.AddSource,
	}); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	hlog.SetLogger(logger.NewHertzAdapter(slog.Default()))

	slog.Info("server starting", "addr", cfg.Addr())

	// The pipeline is loaded once and shared read-only across requests.
	// A missing artifact is not fatal: the UI serves the "train first"
	// guidance instead.
	pipe, err := pipeline.Load(cfg.Model.ArtifactPath)
	switch {
	case err == nil:
		slog.Info("model artifact loaded",
			"path", cfg.Model.ArtifactPath,
			"trained_at", pipe.TrainedAt,
			"r2", pipe.Metrics.R2,
		)
	case errors.Is(err, pipeline.ErrNotTrained):
		slog.Warn("no trained model artifact, predictions disabled until training runs", "path", cfg.Model.ArtifactPath)
		pipe = nil
	default:
		slog.Error("failed to load model artifact", "error", err)
		os.Exit(1)
	}

	history, err := storage.Open(cfg.Database)
	if err != nil {
		slog.Warn("prediction history unavailable", "error", err)
		history = nil
	} else {
		slog.Info("prediction history store ready", "driver", cfg.Database.Driver)
	}

	predictHandler := handler.NewPredictHandler(pipe, history, slog.Default())
	metricsHandler := handler.NewMetricsHandler(pipe)
	historyHandler := handler.NewHistoryHandler(history, slog.Default())
	healthHandler := handler.NewHealthHandler(pipe != nil, history)

	h := server.Default(
		server.WithHostPorts(cfg.Addr()),
		server.WithReadTimeout(cfg.Server.ReadTimeout),
		server.WithWriteTimeout(cfg.Server.WriteTimeout),
		server.WithMaxRequestBodySize(cfg.Server.MaxRequestBodySize*1024*1024),
	)
	h.LoadHTMLGlob(cfg.Server.TemplateGlob)

	router.Setup(h, predictHandler, metricsHandler, historyHandler, healthHandler)

	go func() {
		if err := h.Run(); err != nil {
			slog.Error("server run failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := h.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped gracefully")
}
