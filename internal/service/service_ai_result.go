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

type aiResultService struct {
	aiResultRepository store.AIResultRepository
	cipher             crypto.FieldCipher

	logger *logger.Logger
}

func NewAIResultService(aiResultRepository store.AIResultRepository, cipher crypto.FieldCipher, logger *logger.Logger) AIResultService {
	return &aiResultService{
		aiResultRepository: aiResultRepository,
		cipher:             cipher,
		logger:             logger,
	}
}

func (s *aiResultService) List(ctx context.Context) ([]models.AIResultView, error) {
	results, err := s.aiResultRepository.ListAIResults(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing ai results failed: %w", err)
	}
	return s.views(results), nil
}

func (s *aiResultService) Get(ctx context.Context, id int64) (models.AIResultView, error) {
	result, err := s.aiResultRepository.GetAIResult(ctx, id)
	if err != nil {
		return models.AIResultView{}, fmt.Errorf("ai result search failed: %w", err)
	}
	return s.view(result), nil
}

func (s *aiResultService) ListByObservation(ctx context.Context, observationID int64) ([]models.AIResultView, error) {
	results, err := s.aiResultRepository.ListAIResultsByObservation(ctx, observationID)
	if err != nil {
		return nil, fmt.Errorf("listing ai results of observation failed: %w", err)
	}
	return s.views(results), nil
}

func (s *aiResultService) views(results []models.AIResult) []models.AIResultView {
	views := make([]models.AIResultView, 0, len(results))
	for _, r := range results {
		views = append(views, s.view(r))
	}
	return views
}

func (s *aiResultService) view(r models.AIResult) models.AIResultView {
	decrypted := payload.Open(deref(r.Payload), s.cipher)

	plain := make(map[string]any, len(aiResultFields))
	setPtr(plain, fieldSpeciesID, r.SpeciesID)
	setPtr(plain, fieldConfidence, r.ConfidenceScore)
	setPtr(plain, fieldRank, r.Rank)

	fields := payload.Project(decrypted, plain, aiResultFields)

	view := models.AIResultView{
		ID:              r.ID,
		ObservationID:   r.ObservationID,
		SpeciesID:       intPtr(fields, fieldSpeciesID),
		ConfidenceScore: floatPtr(fields, fieldConfidence),
		Rank:            intPtr(fields, fieldRank),
		CreatedAt:       r.CreatedAt,
	}
	if r.ObserverID != nil && r.ObservedAt != nil {
		view.Observation = &models.AIResultObservation{
			ID:         r.ObservationID,
			ObserverID: *r.ObserverID,
			ObservedAt: *r.ObservedAt,
		}
	}
	return view
}
