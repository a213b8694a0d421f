package service

import (
	"github.com/MKhiriev/smart-plant-guard/internal/config"
	"github.com/MKhiriev/smart-plant-guard/internal/crypto"
	"github.com/MKhiriev/smart-plant-guard/internal/logger"
	"github.com/MKhiriev/smart-plant-guard/internal/store"
	"github.com/MKhiriev/smart-plant-guard/internal/validators"
	"github.com/MKhiriev/smart-plant-guard/models"
)

type Services struct {
	AuthService        AuthService
	AdminService       AdminService
	SpeciesService     SpeciesService
	ObservationService ObservationService
	SensorService      SensorService
	AIResultService    AIResultService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, cipher crypto.FieldCipher, challenger Challenger,
	cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator()

	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, cipher, challenger, validator, cfg.App, logger),
		AdminService:       NewAdminService(storages.UserRepository, cipher, logger),
		SpeciesService:     NewSpeciesService(storages.SpeciesRepository, cipher, validator, logger),
		ObservationService: NewObservationService(storages.ObservationRepository, cipher, validator, logger),
		SensorService:      NewSensorService(storages.SensorRepository, cipher, logger),
		AIResultService:    NewAIResultService(storages.AIResultRepository, cipher, logger),
		AppInfoService:     appInfoService,
	}, nil
}
