package http

import (
	"net/http"

	"github.com/MKhiriev/smart-plant-guard/internal/utils"
	"github.com/MKhiriev/smart-plant-guard/models"
)

// recordObservation attributes the observation to the caller; an observer
// id in the body is not accepted.
func (h *Handler) recordObservation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.RecordObservationRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	session, _ := utils.GetSessionFromContext(ctx)
	view, err := h.services.ObservationService.Record(ctx, session.UserID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, view, http.StatusCreated)
}

func (h *Handler) listObservationsFull(w http.ResponseWriter, r *http.Request) {
	writeList(w, r, h.services.ObservationService.ListFull)
}

func (h *Handler) getObservationFull(w http.ResponseWriter, r *http.Request) {
	writeByID(w, r, h.services.ObservationService.GetFull)
}

func (h *Handler) listObservationsPublic(w http.ResponseWriter, r *http.Request) {
	writeList(w, r, h.services.ObservationService.ListPublic)
}

func (h *Handler) getObservationPublic(w http.ResponseWriter, r *http.Request) {
	writeByID(w, r, h.services.ObservationService.GetPublic)
}
