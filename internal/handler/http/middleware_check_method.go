// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/smart-plant-guard/internal/utils"
)

// notFound is registered both as the router's NotFound and MethodNotAllowed
// handler. A path that exists under a different method answers 404 with
// the JSON error body instead of chi's default 405, so probing with wrong
// methods does not reveal which routes exist.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
