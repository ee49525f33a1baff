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
	"github.com/shenikar/flood_response_system/internal/config"
	"github.com/shenikar/flood_response_system/internal/models"
	"github.com/shenikar/flood_response_system/internal/service"
	"github.com/shenikar/flood_response_system/internal/service/mocks"
	"github.com/shenikar/flood_response_system/internal/session"
	session_mocks "github.com/shenikar/flood_response_system/internal/session/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	auth      *mocks.MockAuthService
	zones     *mocks.MockZoneService
	facility  *mocks.MockFacilityService
	personnel *mocks.MockPersonnelService
	vehicles  *mocks.MockVehicleService
	supplies  *mocks.MockSupplyService
	actions   *mocks.MockResponseActionService
	dashboard *mocks.MockDashboardService
	sessions  *session_mocks.MockStore
}

// newTestRouter создает роутер с мокированными сервисами и без сервиса оповещений
func newTestRouter(t *testing.T) (*testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &testMocks{
		auth:      mocks.NewMockAuthService(ctrl),
		zones:     mocks.NewMockZoneService(ctrl),
		facility:  mocks.NewMockFacilityService(ctrl),
		personnel: mocks.NewMockPersonnelService(ctrl),
		vehicles:  mocks.NewMockVehicleService(ctrl),
		supplies:  mocks.NewMockSupplyService(ctrl),
		actions:   mocks.NewMockResponseActionService(ctrl),
		dashboard: mocks.NewMockDashboardService(ctrl),
		sessions:  session_mocks.NewMockStore(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		SessionTTL: 12 * time.Hour,
	}

	handler := NewHandler(Services{
		Auth:      m.auth,
		Zones:     m.zones,
		Facility:  m.facility,
		Personnel: m.personnel,
		Vehicles:  m.vehicles,
		Supplies:  m.supplies,
		Actions:   m.actions,
		Dashboard: m.dashboard,
	}, m.sessions, nil, nil, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.RegisterRoutes(router)

	return m, router
}

// asRole настраивает хранилище сессий на валидный токен с заданной ролью
func asRole(m *testMocks, role string) string {
	token := "token-" + role
	m.sessions.EXPECT().
		Get(gomock.Any(), token).
		Return(&session.Session{Username: role, Role: role}, nil).
		AnyTimes()
	return token
}

// makeRequest выполняет запрос, опционально с cookie сессии
func makeRequest(router *gin.Engine, method, url string, body io.Reader, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLogin_Success(t *testing.T) {
	m, router := newTestRouter(t)

	m.auth.EXPECT().
		Login(gomock.Any(), "command", "secret").
		Return(&session.Session{Username: "command", Role: service.RoleCommand}, "new-token", nil)

	body := bytes.NewBufferString(`{"username":"command","password":"secret"}`)
	w := makeRequest(router, "POST", "/login", body, "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "command", resp.User.Username)
	assert.Equal(t, service.RoleCommand, resp.User.Role)
	assert.Contains(t, w.Header().Get("Set-Cookie"), sessionCookieName+"=new-token")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	m, router := newTestRouter(t)

	m.auth.EXPECT().
		Login(gomock.Any(), "admin", "wrong").
		Return(nil, "", service.ErrInvalidCredentials)

	body := bytes.NewBufferString(`{"username":"admin","password":"wrong"}`)
	w := makeRequest(router, "POST", "/login", body, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid username or password")
}

func TestLogin_MissingFields(t *testing.T) {
	_, router := newTestRouter(t)

	body := bytes.NewBufferString(`{"username":"admin"}`)
	w := makeRequest(router, "POST", "/login", body, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogout(t *testing.T) {
	m, router := newTestRouter(t)

	m.auth.EXPECT().Logout(gomock.Any(), "token-admin").Return(nil)

	w := makeRequest(router, "POST", "/logout", nil, "token-admin")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestLogout_WithoutSession(t *testing.T) {
	m, router := newTestRouter(t)

	m.auth.EXPECT().Logout(gomock.Any(), "").Return(nil)

	w := makeRequest(router, "POST", "/logout", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthStatus_Unauthenticated(t *testing.T) {
	_, router := newTestRouter(t)

	w := makeRequest(router, "GET", "/api/auth/status", nil, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)
}

func TestAuthStatus_Authenticated(t *testing.T) {
	m, router := newTestRouter(t)
	token := asRole(m, service.RoleField)

	w := makeRequest(router, "GET", "/api/auth/status", nil, token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":true`)
	assert.Contains(t, w.Body.String(), `"role":"field"`)
}

func TestAuthStatus_ExpiredSession(t *testing.T) {
	m, router := newTestRouter(t)

	m.sessions.EXPECT().
		Get(gomock.Any(), "stale-token").
		Return(nil, session.ErrSessionNotFound)

	w := makeRequest(router, "GET", "/api/auth/status", nil, "stale-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserProfile(t *testing.T) {
	m, router := newTestRouter(t)
	token := asRole(m, service.RoleAdmin)

	w := makeRequest(router, "GET", "/api/user/profile", nil, token)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "admin", resp.Username)
	assert.Equal(t, service.RoleAdmin, resp.Role)
}

// Матрица доступа: без сессии везде 401, роль вне списка дает 403
func TestRouteAccessMatrix(t *testing.T) {
	tests := []struct {
		name   string
		method string
		url    string
		role   string // пустая строка - запрос без сессии
		want   int
	}{
		{"no session facilities", "GET", "/api/facilities", "", http.StatusUnauthorized},
		{"no session dashboard", "GET", "/api/dashboard/summary", "", http.StatusUnauthorized},
		{"no session personnel write", "POST", "/api/personnel", "", http.StatusUnauthorized},
		{"field cannot view zones", "GET", "/api/high-risk-zones", service.RoleField, http.StatusForbidden},
		{"field cannot view facility resources", "GET", "/api/facilities/1/resources", service.RoleField, http.StatusForbidden},
		{"field cannot create personnel", "POST", "/api/personnel", service.RoleField, http.StatusForbidden},
		{"field cannot delete vehicle", "DELETE", "/api/vehicles/1", service.RoleField, http.StatusForbidden},
		{"field cannot view rainfall", "GET", "/api/rainfall", service.RoleField, http.StatusForbidden},
		{"field cannot delete response action", "DELETE", "/api/response-actions/1", service.RoleField, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, router := newTestRouter(t)
			token := ""
			if tt.role != "" {
				token = asRole(m, tt.role)
			}

			w := makeRequest(router, tt.method, tt.url, nil, token)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestListFacilities(t *testing.T) {
	m, router := newTestRouter(t)
	token := asRole(m, service.RoleField)

	m.facility.EXPECT().
		ListFacilities(gomock.Any(), "").
		Return([]*models.EmergencyFacility{
			{ID: 1, Name: "Central Shelter", Type: "shelter"},
			{ID: 2, Name: "North Depot", Type: "depot"},
		}, nil)

	w := makeRequest(router, "GET", "/api/facilities", nil, token)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp FacilitiesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Facilities, 2)
	assert.Equal(t, "Central Shelter", resp.Facilities[0].Name)
}

func TestListFacilities_TypeFilter(t *testing.T) {
	m, router := newTestRouter(t)
	token := asRole(m, service.RoleCommand)

	m.facility.EXPECT().
		ListFacilities(gomock.Any(), "shelter").
		Return([]*models.EmergencyFacility{}, nil)

	w := makeRequest(router, "GET", "/api/facilities?type=shelter", nil, token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":0`)
}

func TestFacilityResources_NotFound(t *testing.T) {
	m, router := newTestRouter(t)
	token := asRole(m, service.RoleCommand)

	m.facility.EXPECT().
		FacilityResources(gomock.Any(), int64(42)).
		Return(nil, models.ErrNotFound)

	w := makeRequest(router, "GET", "/api/facilities/42/resources", nil, token)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Facility not found")
}

func TestListZones(t *testing.T) {
	m, router := newTestRouter(t)
	token := asRole(m, service.RoleAdmin)

	m.zones.EXPECT().
		ListZones(gomock.Any()).
		Return([]*models.FloodRiskZone{{ID: 1, ZoneName: "Adyar Basin", RiskLevel: "high"}}, nil)

	w := makeRequest(router, "GET", "/api/high-risk-zones", nil, token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Adyar Basin")
}

func TestCreatePersonnel_Success(t *testing.T) {
	m, router := newTestRouter(t)
	token := asRole(m, service.RoleCommand)

	m.personnel.EXPECT().
		CreatePersonnel(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Personnel) error {
			p.ID = 7
			p.Status = "available"
			p.LastUpdated = time.Now()
			return nil
		})

	body := bytes.NewBufferString(`{"name":"A. Kumar","role":"medic","skills":"first aid"}`)
	w := makeRequest(router, "POST", "/api/personnel", body, token)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp models.Personnel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "A. Kumar", resp.Name)
	assert.Equal(t, "available", resp.Status)
}

func TestCreatePersonnel_ValidationError(t *testing.T) {
	m, router := newTestRouter(t)
	token := asRole(m, service.RoleCommand)

	// Роль обязательна
	body := bytes.NewBufferString(`{"name":"A. Kumar"}`)
	w := makeRequest(router, "POST", "/api/personnel", body, token)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdatePersonnel_NotFound(t *testing.T) {
	m, router := newTestRouter(t)
	token := asRole(m, service.RoleAdmin)

	m.personnel.EXPECT().
		UpdatePersonnel(gomock.Any(), int64(99), gomock.Any()).
		Return(nil, models.ErrNotFound)

	body := bytes.NewBufferString(`{"status":"deployed"}`)
	w := makeRequest(router, "PATCH", "/api/personnel/99", body, token)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Personnel not found")
}

func TestUpdateVehicle_Success(t *testing.T) {
	m, router := newTestRouter(t)
	token := asRole(m, service.RoleCommand)

	m.vehicles.EXPECT().
		UpdateVehicle(gomock.Any(), int64(3), gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64, patch *models.VehiclePatch) (*models.Vehicle, error) {
			require.NotNil(t, patch.Status)
			assert.Equal(t, "maintenance", *patch.Status)
			return &models.Vehicle{ID: 3, VehicleType: "boat", Status: "maintenance"}, nil
		})

	body := bytes.NewBufferString(`{"status":"maintenance"}`)
	w := makeRequest(router, "PUT", "/api/vehicles/3", body, token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"maintenance"`)
}

func TestCreateVehicle_DuplicatePlate(t *testing.T) {
	m, router := newTestRouter(t)
	token := asRole(m, service.RoleCommand)

	m.vehicles.EXPECT().
		CreateVehicle(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("service: could not create vehicle: %w", models.ErrDuplicate))

	body := bytes.NewBufferString(`{"vehicle_type":"boat","license_plate":"TN-01-1234"}`)
	w := makeRequest(router, "POST", "/api/vehicles", body, token)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "License plate already exists")
}

func TestUpdateVehicle_DuplicatePlate(t *testing.T) {
	m, router := newTestRouter(t)
	token := asRole(m, service.RoleCommand)

	m.vehicles.EXPECT().
		UpdateVehicle(gomock.Any(), int64(3), gomock.Any()).
		Return(nil, fmt.Errorf("service: could not update vehicle: %w", models.ErrDuplicate))

	body := bytes.NewBufferString(`{"license_plate":"TN-01-1234"}`)
	w := makeRequest(router, "PUT", "/api/vehicles/3", body, token)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "License plate already exists")
}

func TestDeleteVehicle_Success(t *testing.T) {
	m, router := newTestRouter(t)
	token := asRole(m, service.RoleAdmin)

	m.vehicles.EXPECT().DeleteVehicle(gomock.Any(), int64(5)).Return(nil)

	w := makeRequest(router, "DELETE", "/api/vehicles/5", nil, token)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp DeleteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "Vehicle deleted successfully", resp.Status)
}

func TestDeleteSupplyItem_NotFound(t *testing.T) {
	m, router := newTestRouter(t)
	token := asRole(m, service.RoleCommand)

	m.supplies.EXPECT().DeleteSupplyItem(gomock.Any(), int64(8)).Return(models.ErrNotFound)

	w := makeRequest(router, "DELETE", "/api/supply_items/8", nil, token)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateSupplyItem_Success(t *testing.T) {
	m, router := newTestRouter(t)
	token := asRole(m, service.RoleCommand)

	m.supplies.EXPECT().
		CreateSupplyItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item *models.SupplyItem) error {
			assert.Equal(t, "Drinking Water", item.ItemName)
			assert.Equal(t, int64(500), item.QuantityCurrent)
			item.ID = 11
			return nil
		})

	body := bytes.NewBufferString(`{"item_name":"Drinking Water","quantity_current":500,"quantity_capacity":1000,"unit":"liters","facility_id":1}`)
	w := makeRequest(router, "POST", "/api/supply_items", body, token)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateSupplyItem_MissingRequiredFields(t *testing.T) {
	m, router := newTestRouter(t)
	token := asRole(m, service.RoleAdmin)

	body := bytes.NewBufferString(`{"item_name":"Drinking Water"}`)
	w := makeRequest(router, "POST", "/api/supply_items", body, token)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateResponseAction_FieldRoleAllowed(t *testing.T) {
	m, router := newTestRouter(t)
	token := asRole(m, service.RoleField)

	m.actions.EXPECT().
		UpdateResponseAction(gomock.Any(), int64(2), gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64, patch *models.ResponseActionPatch) (*models.ResponseAction, error) {
			require.NotNil(t, patch.Status)
			assert.Equal(t, "completed", *patch.Status)
			return &models.ResponseAction{ID: 2, Title: "Sandbag the riverbank", Status: "completed"}, nil
		})

	body := bytes.NewBufferString(`{"status":"completed"}`)
	w := makeRequest(router, "PATCH", "/api/response-actions/2", body, token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"completed"`)
}

func TestCreateResponseAction_InvalidStatus(t *testing.T) {
	m, router := newTestRouter(t)
	token := asRole(m, service.RoleCommand)

	body := bytes.NewBufferString(`{"title":"Deploy pumps","status":"bogus"}`)
	w := makeRequest(router, "POST", "/api/response-actions", body, token)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDashboardSummary(t *testing.T) {
	m, router := newTestRouter(t)
	token := asRole(m, service.RoleField)

	m.dashboard.EXPECT().
		Summary(gomock.Any()).
		Return(&models.DashboardSummary{
			Supplies: []models.SummaryRow{{Name: "Drinking Water", Current: 30, Total: 100, Unit: "units", Status: "low", Percentage: 30}},
			Shelters: []models.SummaryRow{{Name: "Evacuation Centers", Status: "adequate", Percentage: 100}},
		}, nil)

	w := makeRequest(router, "GET", "/api/dashboard/summary", nil, token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Drinking Water")
	assert.Contains(t, w.Body.String(), "Evacuation Centers")
}

func TestGetRainfall_ServiceNotInitialized(t *testing.T) {
	m, router := newTestRouter(t)
	token := asRole(m, service.RoleCommand)

	w := makeRequest(router, "GET", "/api/rainfall", nil, token)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Alert service not initialized")
}

func TestStreamAlerts_FeedUnavailable(t *testing.T) {
	m, router := newTestRouter(t)
	token := asRole(m, service.RoleField)

	w := makeRequest(router, "GET", "/api/alerts/stream", nil, token)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, router := newTestRouter(t)

	w := makeRequest(router, "GET", "/api/system/health", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestInvalidID(t *testing.T) {
	m, router := newTestRouter(t)
	token := asRole(m, service.RoleAdmin)

	w := makeRequest(router, "DELETE", "/api/personnel/abc", nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
