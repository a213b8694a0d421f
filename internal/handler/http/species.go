package http

import (
	"net/http"

	"github.com/MKhiriev/smart-plant-guard/internal/utils"
	"github.com/MKhiriev/smart-plant-guard/models"
)

func (h *Handler) createSpecies(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSpeciesRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	view, err := h.services.SpeciesService.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, view, http.StatusCreated)
}

func (h *Handler) listSpeciesFull(w http.ResponseWriter, r *http.Request) {
	writeList(w, r, h.services.SpeciesService.ListFull)
}

func (h *Handler) getSpeciesFull(w http.ResponseWriter, r *http.Request) {
	writeByID(w, r, h.services.SpeciesService.GetFull)
}

func (h *Handler) listSpeciesPublic(w http.ResponseWriter, r *http.Request) {
	writeList(w, r, h.services.SpeciesService.ListPublic)
}

func (h *Handler) getSpeciesPublic(w http.ResponseWriter, r *http.Request) {
	writeByID(w, r, h.services.SpeciesService.GetPublic)
}
