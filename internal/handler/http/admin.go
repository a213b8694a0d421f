package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/smart-plant-guard/internal/service"
	"github.com/MKhiriev/smart-plant-guard/internal/utils"
	"github.com/MKhiriev/smart-plant-guard/models"
)

func (h *Handler) listRoles(w http.ResponseWriter, r *http.Request) {
	roles := h.services.AdminService.ListRoles(r.Context())
	utils.WriteJSON(w, map[string][]models.RoleView{"items": roles}, http.StatusOK)
}

// listUsers accepts ?page=&size=&email=&role=&active=. Unparsable numbers
// fall back to the service defaults; a malformed active flag is a 400.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("size"))

	query := models.UserListQuery{
		Page:  page,
		Size:  size,
		Email: q.Get("email"),
		Role:  q.Get("role"),
	}
	if raw := q.Get("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %q", ErrInvalidActiveFilter, raw))
			return
		}
		query.Active = &active
	}

	result, err := h.services.AdminService.ListUsers(r.Context(), query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	writeByID(w, r, h.services.AdminService.GetUser)
}

func (h *Handler) setUserActive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.SetActiveRequest
	if err = utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err = h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	profile, err := h.services.AdminService.SetActive(ctx, id, *req.Active)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) setUserRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.SetRoleRequest
	if err = utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err = h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	profile, err := h.services.AdminService.SetRole(ctx, id, req.Role)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}
