package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/smart-plant-guard/internal/mfa"
	"github.com/MKhiriev/smart-plant-guard/internal/rbac"
	"github.com/MKhiriev/smart-plant-guard/internal/service"
	"github.com/MKhiriev/smart-plant-guard/internal/store"
)

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, _ = w.Write([]byte("hello"))
	w.WriteHeader(http.StatusTeapot)
	_, _ = w.Write([]byte(" world"))

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 11, w.size)
	assert.Same(t, rec, w.Unwrap())
}

func TestResponseWriter_ExplicitStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusNoContent)

	assert.Equal(t, http.StatusNoContent, w.status)
	assert.Zero(t, w.size)
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: errors.Join(service.ErrInvalidDataProvided, errors.New("x")), want: http.StatusBadRequest},
		{err: service.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{err: mfa.ErrUnauthorized, want: http.StatusUnauthorized},
		{err: rbac.ErrForbidden, want: http.StatusForbidden},
		{err: service.ErrAccountDeactivated, want: http.StatusForbidden},
		{err: store.ErrNotFound, want: http.StatusNotFound},
		{err: store.ErrEmailAlreadyExists, want: http.StatusConflict},
		{err: store.ErrReferenceNotFound, want: http.StatusUnprocessableEntity},
		{err: mfa.ErrDeliveryFailed, want: http.StatusBadGateway},
		{err: rbac.ErrUnmappedTableView, want: http.StatusInternalServerError},
		{err: errors.New("anything else"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			got, _ := statusFromError(tt.err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMessageFromError(t *testing.T) {
	wrapped := errors.Join(store.ErrExecutingQuery, errors.New(`pq: relation "users" does not exist`))
	status, target := statusFromError(wrapped)
	assert.Equal(t, "Internal Server Error", messageFromError(wrapped, status, target))

	notFound := errors.Join(store.ErrNoUserWasFound, errors.New("id=12"))
	status, target = statusFromError(notFound)
	assert.Equal(t, store.ErrNoUserWasFound.Error(), messageFromError(notFound, status, target))

	expired := errors.Join(mfa.ErrChallengeExpired, errors.New("issued 11m ago"))
	status, target = statusFromError(expired)
	assert.Equal(t, msgInvalidCode, messageFromError(expired, status, target))
}
