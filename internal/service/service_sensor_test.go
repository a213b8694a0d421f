package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/smart-plant-guard/internal/crypto"
	"github.com/MKhiriev/smart-plant-guard/internal/logger"
	"github.com/MKhiriev/smart-plant-guard/internal/mock"
	"github.com/MKhiriev/smart-plant-guard/internal/store"
	"github.com/MKhiriev/smart-plant-guard/models"
)

func newSensorFixture(t *testing.T) (SensorService, *mock.MockSensorRepository, crypto.FieldCipher) {
	t.Helper()
	repo := mock.NewMockSensorRepository(gomock.NewController(t))
	cipher := newTestCipher(t)
	return NewSensorService(repo, cipher, logger.Nop()), repo, cipher
}

func TestSensor_ListDevicesProjectsPayloadAndLegacyColumns(t *testing.T) {
	svc, repo, cipher := newSensorFixture(t)
	created := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	readAt := time.Date(2026, 4, 2, 6, 0, 0, 0, time.UTC)

	devicePayload := sealed(t, cipher, `{"node_id":"node-7","device_name":"Ridge","species_id":4,`+
		`"location_latitude":1.5,"location_longitude":110.25,"is_active":true}`)
	readingPayload := sealed(t, cipher, `{"temperature":22.5,"reading_status":"alert","alert_generated":true,`+
		`"reading_timestamp":"2026-04-02T07:30:00Z"}`)

	legacyName := "Valley"
	legacyActive := false
	legacyTemp := 19.0

	repo.EXPECT().ListDevices(gomock.Any()).Return([]models.SensorDevice{
		{ID: 1, Payload: &devicePayload, CreatedAt: created},
		{ID: 2, DeviceName: &legacyName, IsActive: &legacyActive, CreatedAt: created},
	}, nil)
	repo.EXPECT().ListReadings(gomock.Any(), []int64{1, 2}).Return([]models.SensorReading{
		{ID: 10, DeviceID: 1, Temperature: &legacyTemp, RecordedAt: readAt, Payload: &readingPayload},
		{ID: 11, DeviceID: 1, Temperature: &legacyTemp, RecordedAt: readAt},
		{ID: 12, DeviceID: 99, RecordedAt: readAt},
	}, nil)

	views, err := svc.ListDevices(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)

	d := views[0]
	assert.Equal(t, "node-7", *d.NodeID)
	assert.Equal(t, "Ridge", *d.Name)
	assert.Equal(t, int64(4), *d.SpeciesID)
	assert.Equal(t, &models.Location{Lat: 1.5, Lng: 110.25}, d.Location)
	assert.True(t, d.IsActive)
	require.Len(t, d.Readings, 2)

	sealedReading := d.Readings[0]
	assert.InDelta(t, 22.5, *sealedReading.Temperature, 1e-9, "payload wins over the legacy column")
	assert.Equal(t, "alert", *sealedReading.Status)
	assert.True(t, *sealedReading.AlertGenerated)
	assert.Equal(t, time.Date(2026, 4, 2, 7, 30, 0, 0, time.UTC), sealedReading.RecordedAt.UTC())
	assert.Nil(t, sealedReading.Humidity)
	assert.Nil(t, sealedReading.Location)

	plainReading := d.Readings[1]
	assert.InDelta(t, 19.0, *plainReading.Temperature, 1e-9)
	assert.Equal(t, readAt, plainReading.RecordedAt)

	legacy := views[1]
	assert.Equal(t, "Valley", *legacy.Name)
	assert.False(t, legacy.IsActive)
	assert.Nil(t, legacy.NodeID)
	assert.Nil(t, legacy.Location)
	assert.NotNil(t, legacy.Readings)
	assert.Empty(t, legacy.Readings)
}

func TestSensor_UndecryptablePayloadFallsBack(t *testing.T) {
	svc, repo, _ := newSensorFixture(t)
	foreign := sealed(t, newTestCipher(t), `{"device_name":"secret"}`)
	name := "legacy"

	repo.EXPECT().GetDevice(gomock.Any(), int64(5)).
		Return(models.SensorDevice{ID: 5, DeviceName: &name, Payload: &foreign}, nil)
	repo.EXPECT().ListReadings(gomock.Any(), []int64{5}).Return(nil, nil)

	view, err := svc.GetDevice(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "legacy", *view.Name)
	assert.Empty(t, view.Readings)
}

func TestSensor_GetDeviceErrors(t *testing.T) {
	svc, repo, _ := newSensorFixture(t)

	repo.EXPECT().GetDevice(gomock.Any(), int64(1)).Return(models.SensorDevice{}, store.ErrNotFound)
	_, err := svc.GetDevice(context.Background(), 1)
	assert.ErrorIs(t, err, store.ErrNotFound)

	readingsErr := errors.New("db down")
	repo.EXPECT().GetDevice(gomock.Any(), int64(2)).Return(models.SensorDevice{ID: 2}, nil)
	repo.EXPECT().ListReadings(gomock.Any(), []int64{2}).Return(nil, readingsErr)
	_, err = svc.GetDevice(context.Background(), 2)
	assert.ErrorIs(t, err, readingsErr)
}

func TestSensor_ListDevicesError(t *testing.T) {
	svc, repo, _ := newSensorFixture(t)
	repo.EXPECT().ListDevices(gomock.Any()).Return(nil, errors.New("db down"))

	_, err := svc.ListDevices(context.Background())
	assert.Error(t, err)
}
