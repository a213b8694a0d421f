package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/smart-plant-guard/internal/crypto"
	"github.com/MKhiriev/smart-plant-guard/internal/logger"
	"github.com/MKhiriev/smart-plant-guard/internal/payload"
	"github.com/MKhiriev/smart-plant-guard/internal/store"
	"github.com/MKhiriev/smart-plant-guard/internal/validators"
	"github.com/MKhiriev/smart-plant-guard/models"
)

type observationService struct {
	observationRepository store.ObservationRepository
	cipher                crypto.FieldCipher
	validator             validators.Validator
	now                   func() time.Time

	logger *logger.Logger
}

func NewObservationService(observationRepository store.ObservationRepository, cipher crypto.FieldCipher,
	validator validators.Validator, logger *logger.Logger) ObservationService {
	return &observationService{
		observationRepository: observationRepository,
		cipher:                cipher,
		validator:             validator,
		now:                   time.Now,
		logger:                logger,
	}
}

// Record seals location and notes together as {"lat","lng","notes"} and
// leaves the plaintext columns NULL. A missing observed_at means now.
func (s *observationService) Record(ctx context.Context, observerID int64, req models.RecordObservationRequest) (models.ObservationView, error) {
	log := logger.FromContext(ctx).With().Str("func", "observationService.Record").Logger()

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.ObservationView{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	observation := models.Observation{
		SpeciesID:  req.SpeciesID,
		ObserverID: observerID,
		ObservedAt: s.now().UTC(),
	}
	if req.ObservedAt != nil {
		observation.ObservedAt = req.ObservedAt.UTC()
	}

	protected := make(map[string]any, len(observationFields))
	if req.Location != nil {
		protected[fieldLat] = req.Location.Lat
		protected[fieldLng] = req.Location.Lng
	}
	setPtr(protected, fieldNotes, req.Notes)

	bundle, err := payload.Seal(protected, s.cipher)
	if err != nil {
		log.Err(err).Msg("observation payload sealing failed")
		return models.ObservationView{}, err
	}
	if bundle != "" {
		observation.LocationPayload = &bundle
	}

	created, err := s.observationRepository.CreateObservation(ctx, observation)
	if err != nil {
		log.Err(err).Int64("species_id", req.SpeciesID).Msg("observation creation failed")
		return models.ObservationView{}, fmt.Errorf("observation creation failed: %w", err)
	}

	log.Info().Int64("observation_id", created.ID).Int64("observer_id", observerID).Msg("observation recorded")
	return s.fullView(created), nil
}

func (s *observationService) GetFull(ctx context.Context, id int64) (models.ObservationView, error) {
	o, err := s.observationRepository.GetObservation(ctx, id)
	if err != nil {
		return models.ObservationView{}, fmt.Errorf("observation search failed: %w", err)
	}
	return s.fullView(o), nil
}

func (s *observationService) ListFull(ctx context.Context) ([]models.ObservationView, error) {
	return s.list(ctx, s.fullView)
}

func (s *observationService) GetPublic(ctx context.Context, id int64) (models.ObservationView, error) {
	o, err := s.observationRepository.GetObservation(ctx, id)
	if err != nil {
		return models.ObservationView{}, fmt.Errorf("observation search failed: %w", err)
	}
	return publicObservationView(o), nil
}

func (s *observationService) ListPublic(ctx context.Context) ([]models.ObservationView, error) {
	return s.list(ctx, publicObservationView)
}

func (s *observationService) list(ctx context.Context, view func(models.Observation) models.ObservationView) ([]models.ObservationView, error) {
	list, err := s.observationRepository.ListObservations(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing observations failed: %w", err)
	}
	views := make([]models.ObservationView, 0, len(list))
	for _, o := range list {
		views = append(views, view(o))
	}
	return views, nil
}

func (s *observationService) fullView(o models.Observation) models.ObservationView {
	decrypted := payload.Open(deref(o.LocationPayload), s.cipher)

	plain := make(map[string]any, len(observationFields))
	setPtr(plain, fieldLat, o.Latitude)
	setPtr(plain, fieldLng, o.Longitude)
	setPtr(plain, fieldNotes, o.Notes)

	fields := payload.Project(decrypted, plain, observationFields)

	view := publicObservationView(o)
	view.ObserverID = o.ObserverID
	view.Notes = stringField(fields, fieldNotes)

	view.Location = locationOf(fields, fieldLat, fieldLng)
	return view
}

// publicObservationView omits the observer, the location and the notes.
func publicObservationView(o models.Observation) models.ObservationView {
	return models.ObservationView{
		ID:         o.ID,
		SpeciesID:  o.SpeciesID,
		ObservedAt: o.ObservedAt,
	}
}
