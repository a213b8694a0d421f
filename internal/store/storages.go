package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/smart-plant-guard/internal/config"
	"github.com/MKhiriev/smart-plant-guard/internal/logger"
)

// Storages groups all repositories into a single value that can be passed
// to the service layer.
type Storages struct {
	UserRepository        UserRepository
	SpeciesRepository     SpeciesRepository
	ObservationRepository ObservationRepository
	SensorRepository      SensorRepository
	AIResultRepository    AIResultRepository

	db *DB
}

// NewStorages connects to the configured database, applies pending
// migrations and constructs every repository on the same connection.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	db, err := NewDB(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewStoragesFromDB(db, logger), nil
}

// NewStoragesFromDB builds the repositories over an already connected db.
func NewStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:        NewUserRepository(db, logger),
		SpeciesRepository:     NewSpeciesRepository(db, logger),
		ObservationRepository: NewObservationRepository(db, logger),
		SensorRepository:      NewSensorRepository(db, logger),
		AIResultRepository:    NewAIResultRepository(db, logger),
		db:                    db,
	}
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
