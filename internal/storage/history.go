// Package storage keeps a record of served predictions. History is a
// convenience surface; failures here are logged by callers and never block
// a prediction.
package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/charangentem-coder/rental-price-predictor/internal/config"
	"github.com/charangentem-coder/rental-price-predictor/pkg/dataset"
)

// Prediction is one served prediction with the inputs that produced it.
type Prediction struct {
	ID            string `gorm:"primaryKey;size:36"`
	CreatedAt     time.Time
	City          string
	Location      string
	BHK           int
	SizeSqft      float64
	Bathrooms     int
	Floor         int
	TotalFloors   int
	Furnishing    string
	PropertyAge   float64
	Parking       int
	PredictedRent float64
}

// HistoryStore persists and lists predictions.
type HistoryStore struct {
	db *gorm.DB
}

// Open connects to the configured database and migrates the schema.
func Open(cfg config.DatabaseConfig) (*HistoryStore, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		dialector = sqlite.Open(cfg.DSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("storage: open %s database: %w", cfg.Driver, err)
	}
	if err := db.AutoMigrate(&Prediction{}); err != nil {
		return nil, fmt.Errorf("storage: migrate: %w", err)
	}
	return &HistoryStore{db: db}, nil
}

// Record stores one prediction and returns its id.
func (s *HistoryStore) Record(l dataset.Listing, predictedRent float64) (string, error) {
	p := Prediction{
		ID:            uuid.New().String(),
		CreatedAt:     time.Now(),
		City:          l.City,
		Location:      l.Location,
		BHK:           l.BHK,
		SizeSqft:      l.SizeSqft,
		Bathrooms:     l.Bathrooms,
		Floor:         l.Floor,
		TotalFloors:   l.TotalFloors,
		Furnishing:    l.Furnishing,
		PropertyAge:   l.PropertyAge,
		Parking:       l.Parking,
		PredictedRent: predictedRent,
	}
	if err := s.db.Create(&p).Error; err != nil {
		return "", fmt.Errorf("storage: record prediction: %w", err)
	}
	return p.ID, nil
}

// Recent returns the latest predictions, newest first.
func (s *HistoryStore) Recent(limit int) ([]Prediction, error) {
	var out []Prediction
	err := s.db.Order("created_at desc").Limit(limit).Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("storage: list predictions: %w", err)
	}
	return out, nil
}

// Ping checks the underlying connection, used by the readiness probe.
func (s *HistoryStore) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
