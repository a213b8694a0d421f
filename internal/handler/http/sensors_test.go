package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/smart-plant-guard/internal/store"
	"github.com/MKhiriev/smart-plant-guard/models"
)

func TestSensorAndAIRoutes_Gates(t *testing.T) {
	paths := []string{"/api/sensors", "/api/ai-results", "/api/ai-results/observation/7"}

	tests := []struct {
		name       string
		session    models.Session
		wantStatus int
	}{
		{name: "verified researcher", session: researcherVerified, wantStatus: http.StatusOK},
		{name: "verified admin", session: adminVerified, wantStatus: http.StatusOK},
		{name: "admin awaiting code", session: adminPending, wantStatus: http.StatusUnauthorized},
		{name: "public", session: publicUser, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		for _, path := range paths {
			t.Run(tt.name+" "+path, func(t *testing.T) {
				api := newTestAPI(t)
				token := api.as(tt.session, true)
				if tt.wantStatus == http.StatusOK {
					api.sensors.EXPECT().ListDevices(gomock.Any()).Return(nil, nil).MaxTimes(1)
					api.aiResults.EXPECT().List(gomock.Any()).Return(nil, nil).MaxTimes(1)
					api.aiResults.EXPECT().ListByObservation(gomock.Any(), int64(7)).Return(nil, nil).MaxTimes(1)
				}

				rec := api.do(t, http.MethodGet, path, token, "")
				assert.Equal(t, tt.wantStatus, rec.Code)
				if tt.wantStatus == http.StatusOK {
					assert.JSONEq(t, `{"items":[]}`, rec.Body.String())
				}
			})
		}
	}
}

func TestSensorRoutes_NoAnonymousAccess(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/sensors/1", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetSensor(t *testing.T) {
	api := newTestAPI(t)
	token := api.as(researcherVerified, true)
	name := "Ridge"
	temp := 21.5

	api.sensors.EXPECT().GetDevice(gomock.Any(), int64(3)).Return(models.SensorDeviceView{
		ID:       3,
		Name:     &name,
		IsActive: true,
		Readings: []models.SensorReadingView{{ID: 9, DeviceID: 3, Temperature: &temp}},
	}, nil)
	api.sensors.EXPECT().GetDevice(gomock.Any(), int64(4)).Return(models.SensorDeviceView{}, store.ErrNotFound)

	rec := api.do(t, http.MethodGet, "/api/sensors/3", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	device := decodeBody[models.SensorDeviceView](t, rec)
	assert.Equal(t, "Ridge", *device.Name)
	require.Len(t, device.Readings, 1)
	assert.InDelta(t, 21.5, *device.Readings[0].Temperature, 1e-9)

	rec = api.do(t, http.MethodGet, "/api/sensors/4", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(t, http.MethodGet, "/api/sensors/abc", token, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAIResult(t *testing.T) {
	api := newTestAPI(t)
	token := api.as(adminVerified, true)
	rank := int64(1)

	api.aiResults.EXPECT().Get(gomock.Any(), int64(5)).
		Return(models.AIResultView{ID: 5, ObservationID: 7, Rank: &rank}, nil)
	api.aiResults.EXPECT().Get(gomock.Any(), int64(6)).
		Return(models.AIResultView{}, store.ErrNotFound)

	rec := api.do(t, http.MethodGet, "/api/ai-results/5", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	result := decodeBody[models.AIResultView](t, rec)
	assert.Equal(t, int64(7), result.ObservationID)
	assert.Equal(t, int64(1), *result.Rank)

	rec = api.do(t, http.MethodGet, "/api/ai-results/6", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(t, http.MethodGet, "/api/ai-results/observation/0", token, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
