package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/smart-plant-guard/internal/crypto"
	"github.com/MKhiriev/smart-plant-guard/internal/logger"
	"github.com/MKhiriev/smart-plant-guard/internal/payload"
	"github.com/MKhiriev/smart-plant-guard/internal/store"
	"github.com/MKhiriev/smart-plant-guard/models"
)

type sensorService struct {
	sensorRepository store.SensorRepository
	cipher           crypto.FieldCipher

	logger *logger.Logger
}

func NewSensorService(sensorRepository store.SensorRepository, cipher crypto.FieldCipher, logger *logger.Logger) SensorService {
	return &sensorService{
		sensorRepository: sensorRepository,
		cipher:           cipher,
		logger:           logger,
	}
}

func (s *sensorService) ListDevices(ctx context.Context) ([]models.SensorDeviceView, error) {
	devices, err := s.sensorRepository.ListDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing sensor devices failed: %w", err)
	}
	return s.withReadings(ctx, devices)
}

func (s *sensorService) GetDevice(ctx context.Context, id int64) (models.SensorDeviceView, error) {
	device, err := s.sensorRepository.GetDevice(ctx, id)
	if err != nil {
		return models.SensorDeviceView{}, fmt.Errorf("sensor device search failed: %w", err)
	}
	views, err := s.withReadings(ctx, []models.SensorDevice{device})
	if err != nil {
		return models.SensorDeviceView{}, err
	}
	return views[0], nil
}

// withReadings loads the readings of all devices in one query and attaches
// them in repository order.
func (s *sensorService) withReadings(ctx context.Context, devices []models.SensorDevice) ([]models.SensorDeviceView, error) {
	ids := make([]int64, 0, len(devices))
	views := make([]models.SensorDeviceView, 0, len(devices))
	index := make(map[int64]int, len(devices))
	for i, d := range devices {
		ids = append(ids, d.ID)
		views = append(views, s.deviceView(d))
		index[d.ID] = i
	}

	readings, err := s.sensorRepository.ListReadings(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("listing sensor readings failed: %w", err)
	}
	for _, r := range readings {
		i, ok := index[r.DeviceID]
		if !ok {
			continue
		}
		views[i].Readings = append(views[i].Readings, s.readingView(r))
	}
	return views, nil
}

func (s *sensorService) deviceView(d models.SensorDevice) models.SensorDeviceView {
	decrypted := payload.Open(deref(d.Payload), s.cipher)

	plain := make(map[string]any, len(deviceFields))
	setPtr(plain, fieldNodeID, d.NodeID)
	setPtr(plain, fieldDeviceName, d.DeviceName)
	setPtr(plain, fieldSpeciesID, d.SpeciesID)
	setPtr(plain, fieldLatitude, d.Latitude)
	setPtr(plain, fieldLongitude, d.Longitude)
	setPtr(plain, fieldIsActive, d.IsActive)

	fields := payload.Project(decrypted, plain, deviceFields)

	active := boolPtr(fields, fieldIsActive)
	return models.SensorDeviceView{
		ID:        d.ID,
		NodeID:    stringField(fields, fieldNodeID),
		Name:      stringField(fields, fieldDeviceName),
		SpeciesID: intPtr(fields, fieldSpeciesID),
		Location:  locationOf(fields, fieldLatitude, fieldLongitude),
		IsActive:  active != nil && *active,
		CreatedAt: d.CreatedAt,
		Readings:  []models.SensorReadingView{},
	}
}

func (s *sensorService) readingView(r models.SensorReading) models.SensorReadingView {
	decrypted := payload.Open(deref(r.Payload), s.cipher)

	plain := make(map[string]any, len(readingFields))
	setPtr(plain, fieldTemperature, r.Temperature)
	setPtr(plain, fieldHumidity, r.Humidity)
	setPtr(plain, fieldSoilMoisture, r.SoilMoisture)
	setPtr(plain, fieldMotionDetected, r.MotionDetected)
	setPtr(plain, fieldReadingStatus, r.Status)
	setPtr(plain, fieldAlertGenerated, r.AlertGenerated)
	setPtr(plain, fieldLatitude, r.Latitude)
	setPtr(plain, fieldLongitude, r.Longitude)
	plain[fieldRecordedAt] = r.RecordedAt

	fields := payload.Project(decrypted, plain, readingFields)

	recordedAt, ok := timeField(fields, fieldRecordedAt)
	if !ok {
		recordedAt = r.RecordedAt
	}
	return models.SensorReadingView{
		ID:             r.ID,
		DeviceID:       r.DeviceID,
		Temperature:    floatPtr(fields, fieldTemperature),
		Humidity:       floatPtr(fields, fieldHumidity),
		SoilMoisture:   floatPtr(fields, fieldSoilMoisture),
		MotionDetected: boolPtr(fields, fieldMotionDetected),
		Status:         stringField(fields, fieldReadingStatus),
		AlertGenerated: boolPtr(fields, fieldAlertGenerated),
		Location:       locationOf(fields, fieldLatitude, fieldLongitude),
		RecordedAt:     recordedAt,
	}
}
