package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/smart-plant-guard/internal/crypto"
	"github.com/MKhiriev/smart-plant-guard/internal/logger"
	"github.com/MKhiriev/smart-plant-guard/internal/payload"
	"github.com/MKhiriev/smart-plant-guard/internal/store"
	"github.com/MKhiriev/smart-plant-guard/internal/validators"
	"github.com/MKhiriev/smart-plant-guard/models"
)

type speciesService struct {
	speciesRepository store.SpeciesRepository
	cipher            crypto.FieldCipher
	validator         validators.Validator

	logger *logger.Logger
}

func NewSpeciesService(speciesRepository store.SpeciesRepository, cipher crypto.FieldCipher,
	validator validators.Validator, logger *logger.Logger) SpeciesService {
	return &speciesService{
		speciesRepository: speciesRepository,
		cipher:            cipher,
		validator:         validator,
		logger:            logger,
	}
}

// Create stores a species. For endangered species description and image
// are sealed into the payload and the plaintext columns stay NULL.
func (s *speciesService) Create(ctx context.Context, req models.CreateSpeciesRequest) (models.SpeciesView, error) {
	log := logger.FromContext(ctx).With().Str("func", "speciesService.Create").Logger()

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.SpeciesView{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	species := models.Species{
		CommonName:     strings.TrimSpace(req.CommonName),
		ScientificName: strings.TrimSpace(req.ScientificName),
		IsEndangered:   req.IsEndangered,
	}

	if req.IsEndangered {
		protected := make(map[string]any, len(speciesFields))
		setPtr(protected, fieldDescription, req.Description)
		setPtr(protected, fieldImageURL, req.ImageURL)

		bundle, err := payload.Seal(protected, s.cipher)
		if err != nil {
			log.Err(err).Msg("species payload sealing failed")
			return models.SpeciesView{}, err
		}
		if bundle != "" {
			species.Payload = &bundle
		}
	} else {
		species.Description = req.Description
		species.ImageURL = req.ImageURL
	}

	created, err := s.speciesRepository.CreateSpecies(ctx, species)
	if err != nil {
		log.Err(err).Msg("species creation failed")
		return models.SpeciesView{}, fmt.Errorf("species creation failed: %w", err)
	}

	log.Info().Int64("species_id", created.ID).Bool("endangered", created.IsEndangered).Msg("species created")
	return s.fullView(created), nil
}

func (s *speciesService) GetFull(ctx context.Context, id int64) (models.SpeciesView, error) {
	species, err := s.speciesRepository.GetSpecies(ctx, id)
	if err != nil {
		return models.SpeciesView{}, fmt.Errorf("species search failed: %w", err)
	}
	return s.fullView(species), nil
}

func (s *speciesService) ListFull(ctx context.Context) ([]models.SpeciesView, error) {
	list, err := s.speciesRepository.ListSpecies(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("listing species failed: %w", err)
	}
	views := make([]models.SpeciesView, 0, len(list))
	for _, sp := range list {
		views = append(views, s.fullView(sp))
	}
	return views, nil
}

// GetPublic hides endangered species behind store.ErrNotFound.
func (s *speciesService) GetPublic(ctx context.Context, id int64) (models.SpeciesView, error) {
	species, err := s.speciesRepository.GetSpecies(ctx, id)
	if err != nil {
		return models.SpeciesView{}, fmt.Errorf("species search failed: %w", err)
	}
	if species.IsEndangered {
		return models.SpeciesView{}, fmt.Errorf("species search failed: %w", store.ErrNotFound)
	}
	return publicSpeciesView(species), nil
}

func (s *speciesService) ListPublic(ctx context.Context) ([]models.SpeciesView, error) {
	list, err := s.speciesRepository.ListSpecies(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("listing species failed: %w", err)
	}
	views := make([]models.SpeciesView, 0, len(list))
	for _, sp := range list {
		if sp.IsEndangered {
			continue
		}
		views = append(views, publicSpeciesView(sp))
	}
	return views, nil
}

func (s *speciesService) fullView(sp models.Species) models.SpeciesView {
	decrypted := payload.Open(deref(sp.Payload), s.cipher)

	plain := make(map[string]any, len(speciesFields))
	setPtr(plain, fieldDescription, sp.Description)
	setPtr(plain, fieldImageURL, sp.ImageURL)

	fields := payload.Project(decrypted, plain, speciesFields)

	view := speciesView(sp)
	view.Description = stringField(fields, fieldDescription)
	view.ImageURL = stringField(fields, fieldImageURL)
	view.HasEncryptedPayload = sp.Payload != nil
	return view
}

// publicSpeciesView never touches the payload.
func publicSpeciesView(sp models.Species) models.SpeciesView {
	view := speciesView(sp)
	view.Description = sp.Description
	view.ImageURL = sp.ImageURL
	return view
}

func speciesView(sp models.Species) models.SpeciesView {
	return models.SpeciesView{
		ID:             sp.ID,
		CommonName:     sp.CommonName,
		ScientificName: sp.ScientificName,
		IsEndangered:   sp.IsEndangered,
		CreatedAt:      sp.CreatedAt,
	}
}
