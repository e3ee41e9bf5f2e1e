package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the application configuration shared by both binaries.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Model    ModelConfig    `mapstructure:"model"`
	Training TrainingConfig `mapstructure:"training"`
	Database DatabaseConfig `mapstructure:"database"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host               string        `mapstructure:"host"`
	Port               int           `mapstructure:"port"`
	ReadTimeout        time.Duration `mapstructure:"read_timeout"`
	WriteTimeout       time.Duration `mapstructure:"write_timeout"`
	MaxRequestBodySize int           `mapstructure:"max_request_body_size"` // MB
	TemplateGlob       string        `mapstructure:"template_glob"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level     string `mapstructure:"level"`
	Format    string `mapstructure:"format"`
	AddSource bool   `mapstructure:"add_source"`
}

// ModelConfig locates the persisted pipeline artifact and its metrics file.
type ModelConfig struct {
	ArtifactPath string `mapstructure:"artifact_path"`
	MetricsPath  string `mapstructure:"metrics_path"`
}

// TrainingConfig holds the dataset location, the split and the forest
// hyperparameters. Hyperparameters are configuration, not structure; the
// defaults mirror the deployed model.
type TrainingConfig struct {
	DatasetPath     string  `mapstructure:"dataset_path"`
	TestRatio       float64 `mapstructure:"test_ratio"`
	Seed            int64   `mapstructure:"seed"`
	NEstimators     int     `mapstructure:"n_estimators"`
	MaxDepth        int     `mapstructure:"max_depth"`
	MinSamplesSplit int     `mapstructure:"min_samples_split"`
	MinSamplesLeaf  int     `mapstructure:"min_samples_leaf"`
	MaxFeatures     int     `mapstructure:"max_features"`
	PlotPath        string  `mapstructure:"plot_path"`
}

// DatabaseConfig configures the prediction history store.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // sqlite or postgres
	DSN    string `mapstructure:"dsn"`
}

// Load reads the config file, applies RENT_-prefixed environment overrides
// and validates the result. A .env file in the working directory is loaded
// first if present.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.SetEnvPrefix("RENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine, the defaults describe a working setup.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.max_request_body_size", 4)
	v.SetDefault("server.template_glob", "web/templates/*.html")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.add_source", false)

	v.SetDefault("model.artifact_path", "data/model.gob")
	v.SetDefault("model.metrics_path", "data/model_metrics.txt")

	v.SetDefault("training.dataset_path", "data/estate_rent_dataset.csv")
	v.SetDefault("training.test_ratio", 0.2)
	v.SetDefault("training.seed", 42)
	v.SetDefault("training.n_estimators", 100)
	v.SetDefault("training.max_depth", 20)
	v.SetDefault("training.min_samples_split", 5)
	v.SetDefault("training.min_samples_leaf", 2)
	v.SetDefault("training.max_features", 0)
	v.SetDefault("training.plot_path", "data/predictions.png")

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "data/history.db")
}

// Validate rejects configurations the binaries cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("invalid log format: %s, must be 'json' or 'text'", c.Log.Format)
	}
	if c.Model.ArtifactPath == "" {
		return fmt.Errorf("model.artifact_path is required")
	}
	if c.Training.TestRatio <= 0 || c.Training.TestRatio >= 1 {
		return fmt.Errorf("training.test_ratio must be in (0, 1), got %g", c.Training.TestRatio)
	}
	if c.Training.NEstimators <= 0 {
		return fmt.Errorf("training.n_estimators must be positive, got %d", c.Training.NEstimators)
	}
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("invalid database driver: %s, must be 'sqlite' or 'postgres'", c.Database.Driver)
	}
	return nil
}

// Addr returns the host:port the server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
