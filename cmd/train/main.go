package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/charangentem-coder/rental-price-predictor/internal/config"
	"github.com/charangentem-coder/rental-price-predictor/internal/trainer"
	"github.com/charangentem-coder/rental-price-predictor/pkg/logger"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "rentpredict-train",
	Short: "Train the rental price prediction model",
	Long: `Trains a random forest regressor on the rental listings dataset,
evaluates it on a held-out split and persists the fitted pipeline
together with its evaluation metrics.`,
	Run: runTraining,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runTraining(cmd *cobra.Command, args []string) {
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

	slog.Info("training run starting", "dataset", cfg.Training.DatasetPath)

	pipe, err := trainer.New(cfg, slog.Default()).Run()
	if err != nil {
		slog.Error("training run failed", "error", err)
		os.Exit(1)
	}

	slog.Info("training run completed",
		"artifact", cfg.Model.ArtifactPath,
		"mae", pipe.Metrics.MAE,
		"rmse", pipe.Metrics.RMSE,
		"r2", pipe.Metrics.R2,
	)
}
