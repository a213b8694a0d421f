package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/smart-plant-guard/internal/logger"
	"github.com/MKhiriev/smart-plant-guard/models"
)

type observationRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewObservationRepository(db *DB, logger *logger.Logger) ObservationRepository {
	logger.Debug().Msg("creating observation repository")
	return &observationRepository{db: db, logger: logger}
}

func (r *observationRepository) CreateObservation(ctx context.Context, observation models.Observation) (models.Observation, error) {
	log := logger.FromContext(ctx)

	if observation.CreatedAt.IsZero() {
		observation.CreatedAt = createdNow()
	}

	query, args, err := buildCreateObservationQuery(r.db.builder, observation)
	if err != nil {
		return models.Observation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		if r.db.isForeignKeyViolation(err) {
			log.Warn().Str("func", "*observationRepository.CreateObservation").
				Int64("species_id", observation.SpeciesID).
				Msg("species or observer does not exist")
			return models.Observation{}, ErrReferenceNotFound
		}
		log.Err(err).Str("func", "*observationRepository.CreateObservation").Msg("error inserting observation")
		return models.Observation{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err = row.Scan(&observation.ID); err != nil {
		if r.db.isForeignKeyViolation(err) {
			return models.Observation{}, ErrReferenceNotFound
		}
		return models.Observation{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return observation, nil
}

func (r *observationRepository) GetObservation(ctx context.Context, id int64) (models.Observation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetObservationQuery(r.db.builder, id)
	if err != nil {
		return models.Observation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var observation models.Observation
	err = r.db.withRetry(ctx, "*observationRepository.GetObservation", func() error {
		var scanErr error
		observation, scanErr = scanObservation(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Observation{}, ErrNotFound
	case err != nil:
		log.Err(err).Str("func", "*observationRepository.GetObservation").Int64("observation_id", id).Msg("error getting observation")
		return models.Observation{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return observation, nil
}

func (r *observationRepository) ListObservations(ctx context.Context) ([]models.Observation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListObservationsQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var observations []models.Observation
	err = r.db.withRetry(ctx, "*observationRepository.ListObservations", func() error {
		var queryErr error
		observations, queryErr = queryAll(ctx, r.db, query, args, scanObservation)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", "*observationRepository.ListObservations").Msg("error listing observations")
		return nil, err
	}

	return observations, nil
}
