package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
	"github.com/shenikar/emergency_dispatch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockEmergencyService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockEmergencyService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:        []string{"test-api-key"},
		DecisionWindow: 30 * time.Second,
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func apiKeyHeader() map[string]string {
	return map[string]string{"X-API-Key": "test-api-key"}
}

func TestCreateEmergency_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	emergencyID := uuid.New()
	reqBody := CreateEmergencyRequest{
		Type:        "MEDICAL",
		Latitude:    55.75,
		Longitude:   37.61,
		VictimName:  "Иван Петров",
		VictimPhone: "+79001234567",
		Address:     "ул. Ленина, д. 1",
	}
	now := time.Now()
	expectedEmergency := &models.Emergency{
		ID:                        emergencyID,
		Type:                      reqBody.Type,
		Latitude:                  reqBody.Latitude,
		Longitude:                 reqBody.Longitude,
		VictimName:                reqBody.VictimName,
		VictimPhone:               reqBody.VictimPhone,
		Address:                   reqBody.Address,
		Status:                    models.StatusPendingOwnership,
		EmergencyFor:              models.ForUnset,
		ContactNotificationStatus: models.NotificationNotSent,
		CreatedAt:                 now,
		DecisionDeadline:          now.Add(30 * time.Second),
	}

	mockService.EXPECT().
		CreateEmergency(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, em *models.Emergency) error {
			*em = *expectedEmergency // Обновляем переданный вызов
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/emergencies", bytes.NewBuffer(bodyBytes), apiKeyHeader())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp EmergencyResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, emergencyID, resp.ID)
	assert.Equal(t, string(models.StatusPendingOwnership), resp.Status)
}

func TestCreateEmergency_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateEmergency(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/emergencies", bytes.NewBufferString(`{"type": "MEDICAL"`), apiKeyHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateEmergency_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CreateEmergencyRequest{ // Отсутствует Type
		Latitude:  55.75,
		Longitude: 37.61,
	}

	mockService.EXPECT().CreateEmergency(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/emergencies", bytes.NewBuffer(bodyBytes), apiKeyHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClaimEmergency_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	emergencyID := uuid.New()
	claimed := &models.Emergency{
		ID:           emergencyID,
		Type:         "MEDICAL",
		Status:       models.StatusClaimed,
		EmergencyFor: models.ForOther,
	}

	mockService.EXPECT().
		Claim(gomock.Any(), emergencyID, models.ForOther, "user-42").
		Return(claimed, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(ClaimEmergencyRequest{EmergencyFor: "OTHER"})
	w := makeRequest(router, "POST", "/api/v1/emergencies/"+emergencyID.String()+"/claim",
		bytes.NewBuffer(bodyBytes), apiKeyHeader(), map[string]string{"X-User-ID": "user-42"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp EmergencyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(models.StatusClaimed), resp.Status)
	assert.Equal(t, string(models.ForOther), resp.EmergencyFor)
}

func TestClaimEmergency_StaleReturnsConflict(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	emergencyID := uuid.New()

	mockService.EXPECT().
		Claim(gomock.Any(), emergencyID, models.ForSelf, "user-42").
		Return(nil, service.ErrStaleDecision).
		Times(1)

	bodyBytes, _ := json.Marshal(ClaimEmergencyRequest{EmergencyFor: "SELF"})
	w := makeRequest(router, "POST", "/api/v1/emergencies/"+emergencyID.String()+"/claim",
		bytes.NewBuffer(bodyBytes), apiKeyHeader(), map[string]string{"X-User-ID": "user-42"})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already left pending ownership")
}

func TestClaimEmergency_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	emergencyID := uuid.New()

	mockService.EXPECT().
		Claim(gomock.Any(), emergencyID, models.ForSelf, "user-42").
		Return(nil, fmt.Errorf("service: %w", service.ErrEmergencyNotFound)).
		Times(1)

	bodyBytes, _ := json.Marshal(ClaimEmergencyRequest{EmergencyFor: "SELF"})
	w := makeRequest(router, "POST", "/api/v1/emergencies/"+emergencyID.String()+"/claim",
		bytes.NewBuffer(bodyBytes), apiKeyHeader(), map[string]string{"X-User-ID": "user-42"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClaimEmergency_MissingUserID(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	emergencyID := uuid.New()

	mockService.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(ClaimEmergencyRequest{EmergencyFor: "SELF"})
	w := makeRequest(router, "POST", "/api/v1/emergencies/"+emergencyID.String()+"/claim",
		bytes.NewBuffer(bodyBytes), apiKeyHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "X-User-ID")
}

func TestClaimEmergency_InvalidEmergencyFor(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	emergencyID := uuid.New()

	mockService.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(ClaimEmergencyRequest{EmergencyFor: "UNSET"})
	w := makeRequest(router, "POST", "/api/v1/emergencies/"+emergencyID.String()+"/claim",
		bytes.NewBuffer(bodyBytes), apiKeyHeader(), map[string]string{"X-User-ID": "user-42"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetEmergency_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	emergencyID := uuid.New()
	expected := &models.Emergency{
		ID:     emergencyID,
		Type:   "FIRE",
		Status: models.StatusPendingOwnership,
	}

	mockService.EXPECT().GetEmergency(gomock.Any(), emergencyID).Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/emergencies/"+emergencyID.String(), nil, apiKeyHeader())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp EmergencyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, emergencyID, resp.ID)
}

func TestGetEmergency_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	emergencyID := uuid.New()

	mockService.EXPECT().
		GetEmergency(gomock.Any(), emergencyID).
		Return(nil, fmt.Errorf("service: %w", service.ErrEmergencyNotFound)).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/emergencies/"+emergencyID.String(), nil, apiKeyHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFindNearby_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	nearby := []*models.NearbyEmergency{
		{ID: uuid.New(), Type: "MEDICAL", DistanceKm: 0.5, VictimDisplayName: "Иван"},
		{ID: uuid.New(), Type: "FIRE", DistanceKm: 2.0, VictimDisplayName: models.AnonymousVictimName},
	}

	mockService.EXPECT().
		FindNearby(gomock.Any(), 55.75, 37.61, 5.0, nil).
		Return(nearby, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/emergencies/nearby?lat=55.75&lon=37.61&radius_km=5.0", nil, apiKeyHeader())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []NearbyEmergencyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, 0.5, resp[0].DistanceKm)
	assert.Equal(t, "Иван", resp[0].VictimDisplayName)
}

func TestFindNearby_WithExcludeID(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	excludeID := uuid.New()

	mockService.EXPECT().
		FindNearby(gomock.Any(), 55.75, 37.61, 5.0, gomock.Any()).
		DoAndReturn(func(_ context.Context, lat, lon, radiusKm float64, excluded *uuid.UUID) ([]*models.NearbyEmergency, error) {
			require.NotNil(t, excluded)
			assert.Equal(t, excludeID, *excluded)
			return []*models.NearbyEmergency{}, nil
		}).Times(1)

	url := "/api/v1/emergencies/nearby?lat=55.75&lon=37.61&radius_km=5.0&exclude_id=" + excludeID.String()
	w := makeRequest(router, "GET", url, nil, apiKeyHeader())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFindNearby_InvalidLat(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().FindNearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/emergencies/nearby?lat=abc&lon=37.61&radius_km=5.0", nil, apiKeyHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid lat parameter")
}

func TestGetTimeline_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	emergencyID := uuid.New()
	events := []*models.AssignmentEvent{
		{ID: 1, EmergencyID: emergencyID, Type: models.EventDefaulted, Description: "No ownership decision within the window, defaulted to SELF", OccurredAt: time.Now()},
	}

	mockService.EXPECT().ListTimeline(gomock.Any(), emergencyID).Return(events, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/emergencies/"+emergencyID.String()+"/timeline", nil, apiKeyHeader())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []TimelineEventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "DEFAULTED", resp[0].Type)
}

func TestEmergencies_MissingAPIKey(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateEmergency(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(CreateEmergencyRequest{Type: "MEDICAL", Latitude: 55.75, Longitude: 37.61})
	w := makeRequest(router, "POST", "/api/v1/emergencies", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
