package http

import "net/http"

func (h *Handler) listSensors(w http.ResponseWriter, r *http.Request) {
	writeList(w, r, h.services.SensorService.ListDevices)
}

func (h *Handler) getSensor(w http.ResponseWriter, r *http.Request) {
	writeByID(w, r, h.services.SensorService.GetDevice)
}
