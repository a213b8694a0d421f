package http

import (
	"net/http"

	"github.com/MKhiriev/smart-plant-guard/internal/utils"
	"github.com/MKhiriev/smart-plant-guard/models"
)

func (h *Handler) listAIResults(w http.ResponseWriter, r *http.Request) {
	writeList(w, r, h.services.AIResultService.List)
}

func (h *Handler) getAIResult(w http.ResponseWriter, r *http.Request) {
	writeByID(w, r, h.services.AIResultService.Get)
}

// listAIResultsByObservation answers an unknown observation with an empty
// list.
func (h *Handler) listAIResultsByObservation(w http.ResponseWriter, r *http.Request) {
	observationID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	items, err := h.services.AIResultService.ListByObservation(r.Context(), observationID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []models.AIResultView{}
	}
	utils.WriteJSON(w, map[string][]models.AIResultView{"items": items}, http.StatusOK)
}
