package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/smart-plant-guard/internal/utils"
)

// writeList answers with {"items": [...]}.
func writeList[T any](w http.ResponseWriter, r *http.Request, list func(context.Context) ([]T, error)) {
	items, err := list(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []T{}
	}
	utils.WriteJSON(w, map[string][]T{"items": items}, http.StatusOK)
}

func writeByID[T any](w http.ResponseWriter, r *http.Request, get func(context.Context, int64) (T, error)) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	item, err := get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, item, http.StatusOK)
}
