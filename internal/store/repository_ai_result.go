package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/smart-plant-guard/internal/logger"
	"github.com/MKhiriev/smart-plant-guard/models"
)

type aiResultRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewAIResultRepository(db *DB, logger *logger.Logger) AIResultRepository {
	logger.Debug().Msg("creating ai result repository")
	return &aiResultRepository{db: db, logger: logger}
}

func (r *aiResultRepository) ListAIResults(ctx context.Context) ([]models.AIResult, error) {
	query, args, err := buildListAIResultsQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.list(ctx, "*aiResultRepository.ListAIResults", query, args)
}

func (r *aiResultRepository) ListAIResultsByObservation(ctx context.Context, observationID int64) ([]models.AIResult, error) {
	query, args, err := buildListAIResultsByObservationQuery(r.db.builder, observationID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.list(ctx, "*aiResultRepository.ListAIResultsByObservation", query, args)
}

func (r *aiResultRepository) GetAIResult(ctx context.Context, id int64) (models.AIResult, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAIResultQuery(r.db.builder, id)
	if err != nil {
		return models.AIResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result models.AIResult
	err = r.db.withRetry(ctx, "*aiResultRepository.GetAIResult", func() error {
		var scanErr error
		result, scanErr = scanAIResult(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.AIResult{}, ErrNotFound
	case err != nil:
		log.Err(err).Str("func", "*aiResultRepository.GetAIResult").Int64("ai_result_id", id).Msg("error getting ai result")
		return models.AIResult{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return result, nil
}

func (r *aiResultRepository) list(ctx context.Context, op, query string, args []any) ([]models.AIResult, error) {
	var results []models.AIResult
	err := r.db.withRetry(ctx, op, func() error {
		var queryErr error
		results, queryErr = queryAll(ctx, r.db, query, args, scanAIResult)
		return queryErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", op).Msg("error listing ai results")
		return nil, err
	}
	return results, nil
}
