package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/smart-plant-guard/internal/logger"
	"github.com/MKhiriev/smart-plant-guard/models"
)

type sensorRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSensorRepository(db *DB, logger *logger.Logger) SensorRepository {
	logger.Debug().Msg("creating sensor repository")
	return &sensorRepository{db: db, logger: logger}
}

func (r *sensorRepository) ListDevices(ctx context.Context) ([]models.SensorDevice, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListDevicesQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var devices []models.SensorDevice
	err = r.db.withRetry(ctx, "*sensorRepository.ListDevices", func() error {
		var queryErr error
		devices, queryErr = queryAll(ctx, r.db, query, args, scanDevice)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", "*sensorRepository.ListDevices").Msg("error listing sensor devices")
		return nil, err
	}

	return devices, nil
}

func (r *sensorRepository) GetDevice(ctx context.Context, id int64) (models.SensorDevice, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetDeviceQuery(r.db.builder, id)
	if err != nil {
		return models.SensorDevice{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var device models.SensorDevice
	err = r.db.withRetry(ctx, "*sensorRepository.GetDevice", func() error {
		var scanErr error
		device, scanErr = scanDevice(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.SensorDevice{}, ErrNotFound
	case err != nil:
		log.Err(err).Str("func", "*sensorRepository.GetDevice").Int64("device_id", id).Msg("error getting sensor device")
		return models.SensorDevice{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return device, nil
}

// ListReadings returns nothing without querying when deviceIDs is empty.
func (r *sensorRepository) ListReadings(ctx context.Context, deviceIDs []int64) ([]models.SensorReading, error) {
	if len(deviceIDs) == 0 {
		return []models.SensorReading{}, nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildListReadingsQuery(r.db.builder, deviceIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var readings []models.SensorReading
	err = r.db.withRetry(ctx, "*sensorRepository.ListReadings", func() error {
		var queryErr error
		readings, queryErr = queryAll(ctx, r.db, query, args, scanReading)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", "*sensorRepository.ListReadings").Int("devices", len(deviceIDs)).Msg("error listing sensor readings")
		return nil, err
	}

	return readings, nil
}
