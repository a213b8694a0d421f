package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/smart-plant-guard/internal/logger"
	"github.com/MKhiriev/smart-plant-guard/models"
)

var observationRowColumns = []string{
	"id", "species_id", "observer_id", "observed_at", "latitude", "longitude", "notes", "location_payload", "created_at",
}

func TestObservationRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewObservationRepository(db, logger.Nop())
	at := time.Date(2026, 4, 2, 8, 30, 0, 0, time.UTC)
	payload := "sealed"

	mock.ExpectQuery("INSERT INTO plant_observations").
		WithArgs(int64(1), int64(2), at, nil, nil, nil, payload, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	got, err := repo.CreateObservation(context.Background(), models.Observation{
		SpeciesID: 1, ObserverID: 2, ObservedAt: at, LocationPayload: &payload,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestObservationRepository_CreateUnknownSpecies(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewObservationRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO plant_observations").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateObservation(context.Background(), models.Observation{SpeciesID: 404, ObserverID: 1})
	assert.ErrorIs(t, err, ErrReferenceNotFound)
}

func TestObservationRepository_GetAndList(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewObservationRepository(db, logger.Nop())
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM plant_observations WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(observationRowColumns).
			AddRow(5, 1, 2, now, 1.5, 103.8, "legacy notes", nil, now))

	got, err := repo.GetObservation(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, got.Latitude)
	assert.InDelta(t, 1.5, *got.Latitude, 1e-9)
	assert.Equal(t, "legacy notes", *got.Notes)
	assert.Nil(t, got.LocationPayload)

	mock.ExpectQuery(`SELECT (.+) FROM plant_observations WHERE id = \$1`).
		WillReturnError(sql.ErrNoRows)
	_, err = repo.GetObservation(context.Background(), 6)
	assert.ErrorIs(t, err, ErrNotFound)

	mock.ExpectQuery(`SELECT (.+) FROM plant_observations ORDER BY observed_at DESC, id DESC`).
		WillReturnRows(sqlmock.NewRows(observationRowColumns).
			AddRow(7, 1, 2, now, nil, nil, nil, "sealed", now).
			AddRow(5, 1, 2, now, 1.5, 103.8, "legacy notes", nil, now))

	list, err := repo.ListObservations(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(7), list[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
