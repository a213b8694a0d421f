package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/smart-plant-guard/internal/logger"
	"github.com/MKhiriev/smart-plant-guard/internal/mfa"
	"github.com/MKhiriev/smart-plant-guard/internal/rbac"
	"github.com/MKhiriev/smart-plant-guard/internal/service"
	"github.com/MKhiriev/smart-plant-guard/internal/store"
	"github.com/MKhiriev/smart-plant-guard/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidID:                       http.StatusBadRequest,
	ErrInvalidActiveFilter:             http.StatusBadRequest,
	utils.ErrInvalidBody:               http.StatusBadRequest,
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrAccountDeactivated:      http.StatusForbidden,
	service.ErrEmailUnavailable:        http.StatusInternalServerError,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	mfa.ErrUnauthorized:      http.StatusUnauthorized,
	mfa.ErrChallengeNotFound: http.StatusUnauthorized,
	mfa.ErrChallengeExpired:  http.StatusUnauthorized,
	mfa.ErrIncorrectCode:     http.StatusUnauthorized,
	mfa.ErrDeliveryFailed:    http.StatusBadGateway,

	rbac.ErrForbidden:         http.StatusForbidden,
	rbac.ErrUnknownRole:       http.StatusBadRequest,
	rbac.ErrUnmappedTableView: http.StatusInternalServerError,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrNotFound:           http.StatusNotFound,
	store.ErrReferenceNotFound:  http.StatusUnprocessableEntity,
}

// codeErrors all answer with msgInvalidCode.
var codeErrors = []error{mfa.ErrChallengeNotFound, mfa.ErrChallengeExpired, mfa.ErrIncorrectCode}

// statusFromError returns the HTTP status of err and the sentinel it matched,
// or 500 and nil.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// messageFromError chooses the client-facing message. Server errors never
// expose their cause; validation errors keep their detail.
func messageFromError(err error, status int, target error) string {
	for _, codeErr := range codeErrors {
		if errors.Is(err, codeErr) {
			return msgInvalidCode
		}
	}
	switch {
	case status >= http.StatusInternalServerError:
		return http.StatusText(status)
	case status == http.StatusBadRequest:
		return err.Error()
	case target != nil:
		return target.Error()
	}
	return http.StatusText(status)
}

// writeError maps err onto a status and writes {"error": message}.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, target := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, messageFromError(err, status, target), status)
}
