package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/smart-plant-guard/internal/logger"
)

var aiResultRowColumns = []string{
	"id", "observation_id", "species_id", "confidence_score", "rank", "ai_payload", "created_at", "observer_id", "observed_at",
}

func TestAIResultRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAIResultRepository(db, logger.Nop())
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM ai_results ar LEFT JOIN plant_observations po ON po.id = ar.observation_id ORDER BY ar.created_at DESC, ar.rank, ar.id`).
		WillReturnRows(sqlmock.NewRows(aiResultRowColumns).
			AddRow(1, 7, 3, 0.93, 1, nil, now, 2, now).
			AddRow(2, 8, nil, nil, nil, "bundle", now, nil, nil))

	results, err := repo.ListAIResults(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.NotNil(t, results[0].Rank)
	assert.Equal(t, int64(1), *results[0].Rank)
	require.NotNil(t, results[0].ObserverID)
	assert.Equal(t, int64(2), *results[0].ObserverID)

	assert.Nil(t, results[1].ObserverID)
	assert.Nil(t, results[1].ObservedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAIResultRepository_ListByObservation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAIResultRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT (.+) FROM ai_results ar (.+) WHERE ar.observation_id = \$1 ORDER BY ar.rank, ar.id`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(aiResultRowColumns))

	results, err := repo.ListAIResultsByObservation(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, results)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAIResultRepository_Get(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAIResultRepository(db, logger.Nop())
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM ai_results ar (.+) WHERE ar.id = \$1 LIMIT 1`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(aiResultRowColumns).AddRow(5, 7, 3, 0.5, 2, nil, now, 2, now))

	result, err := repo.GetAIResult(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(7), result.ObservationID)

	mock.ExpectQuery(`SELECT (.+) FROM ai_results`).WillReturnError(sql.ErrNoRows)
	_, err = repo.GetAIResult(context.Background(), 6)
	assert.ErrorIs(t, err, ErrNotFound)
}
