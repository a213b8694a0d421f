package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/smart-plant-guard/internal/logger"
	"github.com/MKhiriev/smart-plant-guard/models"
)

type speciesRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSpeciesRepository(db *DB, logger *logger.Logger) SpeciesRepository {
	logger.Debug().Msg("creating species repository")
	return &speciesRepository{db: db, logger: logger}
}

// CreateSpecies inserts species. Sealing the payload is the caller's job;
// the row is stored exactly as given.
func (r *speciesRepository) CreateSpecies(ctx context.Context, species models.Species) (models.Species, error) {
	log := logger.FromContext(ctx)

	if species.CreatedAt.IsZero() {
		species.CreatedAt = createdNow()
	}

	query, args, err := buildCreateSpeciesQuery(r.db.builder, species)
	if err != nil {
		return models.Species{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&species.ID); err != nil {
		log.Err(err).Str("func", "*speciesRepository.CreateSpecies").Msg("error inserting species")
		return models.Species{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Info().Str("func", "*speciesRepository.CreateSpecies").
		Int64("species_id", species.ID).
		Bool("endangered", species.IsEndangered).
		Msg("species created")
	return species, nil
}

func (r *speciesRepository) GetSpecies(ctx context.Context, id int64) (models.Species, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSpeciesQuery(r.db.builder, id)
	if err != nil {
		return models.Species{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var species models.Species
	err = r.db.withRetry(ctx, "*speciesRepository.GetSpecies", func() error {
		var scanErr error
		species, scanErr = scanSpecies(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Species{}, ErrNotFound
	case err != nil:
		log.Err(err).Str("func", "*speciesRepository.GetSpecies").Int64("species_id", id).Msg("error getting species")
		return models.Species{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return species, nil
}

func (r *speciesRepository) ListSpecies(ctx context.Context, nonEndangeredOnly bool) ([]models.Species, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSpeciesQuery(r.db.builder, nonEndangeredOnly)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var species []models.Species
	err = r.db.withRetry(ctx, "*speciesRepository.ListSpecies", func() error {
		var queryErr error
		species, queryErr = queryAll(ctx, r.db, query, args, scanSpecies)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", "*speciesRepository.ListSpecies").Msg("error listing species")
		return nil, err
	}

	return species, nil
}
