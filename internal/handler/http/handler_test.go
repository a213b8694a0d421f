// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/smart-plant-guard/internal/logger"
	"github.com/MKhiriev/smart-plant-guard/internal/mock"
	"github.com/MKhiriev/smart-plant-guard/internal/rbac"
	"github.com/MKhiriev/smart-plant-guard/internal/service"
	"github.com/MKhiriev/smart-plant-guard/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testAPI struct {
	router       http.Handler
	auth         *mock.MockAuthService
	admin        *mock.MockAdminService
	species      *mock.MockSpeciesService
	observations *mock.MockObservationService
	sensors      *mock.MockSensorService
	aiResults    *mock.MockAIResultService
	appInfo      *mock.MockAppInfoService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	ctrl := gomock.NewController(t)

	api := &testAPI{
		auth:         mock.NewMockAuthService(ctrl),
		admin:        mock.NewMockAdminService(ctrl),
		species:      mock.NewMockSpeciesService(ctrl),
		observations: mock.NewMockObservationService(ctrl),
		sensors:      mock.NewMockSensorService(ctrl),
		aiResults:    mock.NewMockAIResultService(ctrl),
		appInfo:      mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:        api.auth,
		AdminService:       api.admin,
		SpeciesService:     api.species,
		ObservationService: api.observations,
		SensorService:      api.sensors,
		AIResultService:    api.aiResults,
		AppInfoService:     api.appInfo,
	}
	api.router = NewHandler(services, 0, logger.Nop()).Init()
	return api
}

// as makes the token "tok-<role>" resolve to session, with the users row
// reporting active and the session's role.
func (a *testAPI) as(session models.Session, active bool) string {
	token := "tok-" + session.Role.String()
	a.auth.EXPECT().ParseToken(gomock.Any(), token).Return(session, nil).AnyTimes()
	a.auth.EXPECT().AccountStatus(gomock.Any(), session.UserID).
		Return(models.AccountStatus{Active: active, Role: session.Role}, nil).AnyTimes()
	return token
}

func (a *testAPI) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := newRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return serve(a, req)
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[models.ErrorResponse](t, rec).Error
}

var (
	adminVerified      = models.Session{UserID: 1, Role: rbac.RoleAdmin, MFAVerified: true}
	adminPending       = models.Session{UserID: 1, Role: rbac.RoleAdmin}
	researcherVerified = models.Session{UserID: 2, Role: rbac.RoleResearcher, MFAVerified: true}
	publicUser         = models.Session{UserID: 3, Role: rbac.RolePublic}
)

func newRequest(method, path, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	return httptest.NewRequest(method, path, reader)
}

func serve(api *testAPI, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)
	return rec
}
