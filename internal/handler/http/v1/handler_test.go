package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/crisis_coordination_system/internal/broadcast"
	"github.com/shenikar/crisis_coordination_system/internal/config"
	"github.com/shenikar/crisis_coordination_system/internal/models"
	"github.com/shenikar/crisis_coordination_system/internal/repository"
	"github.com/shenikar/crisis_coordination_system/internal/service"
	"github.com/shenikar/crisis_coordination_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockCoordinationService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockCoordinationService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{WSSendBuffer: 32}
	hub := broadcast.NewHub(logger)

	handler := NewHandler(mockService, hub, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateIncident_Handler_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{
		Title:    "Flood Emergency",
		Location: "Downtown",
		Type:     "flood",
	}
	expected := &models.IncidentWithUsers{
		Incident: models.Incident{ID: "inc-1", Title: "Flood Emergency", Status: "active", Priority: "medium"},
	}

	mockService.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		Return(expected, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp models.IncidentWithUsers
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "inc-1", resp.ID)
	assert.Equal(t, "Flood Emergency", resp.Title)
}

func TestCreateIncident_Handler_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBufferString(`{"title": "test"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateIncident_Handler_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{ // Отсутствует Title
		Location: "Downtown",
		Type:     "flood",
	}

	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Title' failed on the 'required' tag")
}

func TestGetIncident_Handler_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	notFound := fmt.Errorf("service: could not get incident: %w", repository.ErrNotFound)

	mockService.EXPECT().GetIncident(gomock.Any(), "missing").Return(nil, notFound).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestGetIncident_Handler_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	serviceError := errors.New("database error")

	mockService.EXPECT().GetIncident(gomock.Any(), "inc-1").Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/inc-1", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestListIncidents_Handler_Filters(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expected := []*models.IncidentWithUsers{
		{Incident: models.Incident{ID: "inc-1", Title: "Flood", Status: "active"}},
	}

	mockService.EXPECT().ListIncidents(gomock.Any(), "active", "high").Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents?status=active&priority=high", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []*models.IncidentWithUsers
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 1)
}

func TestUpdateIncident_Handler_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := UpdateIncidentRequest{}
	status := "resolved"
	reqBody.Status = &status
	expected := &models.IncidentWithUsers{
		Incident: models.Incident{ID: "inc-1", Status: "resolved"},
	}

	mockService.EXPECT().
		UpdateIncident(gomock.Any(), "inc-1", gomock.Any()).
		Return(expected, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PATCH", "/api/v1/incidents/inc-1", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.IncidentWithUsers
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "resolved", resp.Status)
}

func TestUpdateResource_Handler_InvariantViolation(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	available := 100
	reqBody := UpdateResourceRequest{Available: &available}

	mockService.EXPECT().
		UpdateResource(gomock.Any(), "res-1", gomock.Any()).
		Return(nil, service.ErrInvalidResourceQuantity).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PATCH", "/api/v1/resources/res-1", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "available quantity must be between 0 and total quantity")
}

func TestCreateResource_Handler_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CreateResourceRequest{
		Name:      "Water",
		Type:      "water",
		Quantity:  10,
		Available: 10,
		Location:  "Depot",
		Status:    "available",
	}
	expected := &models.ResourceWithIncident{
		Resource: models.Resource{ID: "res-1", Name: "Water", Quantity: 10, Available: 10, Status: "available"},
	}

	mockService.EXPECT().CreateResource(gomock.Any(), gomock.Any()).Return(expected, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/resources", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp models.ResourceWithIncident
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "res-1", resp.ID)
	assert.Equal(t, 10, resp.Available)
}

func TestCreateUser_Handler_Conflict(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CreateUserRequest{
		Username: "admin",
		Password: "password123",
		Name:     "Coordinator",
	}

	mockService.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, service.ErrUsernameTaken).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/users", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "username is already taken")
}

func TestListMessages_Handler_PassesQueryParams(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expected := []*models.MessageWithUser{
		{Message: models.Message{ID: "msg-1", Content: "Shelter open"}},
	}

	mockService.EXPECT().ListMessages(gomock.Any(), "inc-1", 5).Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/messages?incident_id=inc-1&limit=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []*models.MessageWithUser
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 1)
}

func TestCreateAssignment_Handler_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CreateAssignmentRequest{ // Отсутствуют volunteer_id и incident_id
		Role: "rescue",
	}

	mockService.EXPECT().CreateAssignment(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/volunteer-assignments", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'VolunteerID' failed on the 'required' tag")
}

func TestGetDashboardStats_Handler_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expected := &models.DashboardStats{
		ActiveIncidents:    2,
		ActiveVolunteers:   5,
		ResourcesAllocated: 40,
		ResolvedToday:      1,
	}

	mockService.EXPECT().GetDashboardStats(gomock.Any()).Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/dashboard/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	// Ключи статистики в camelCase
	assert.Contains(t, w.Body.String(), `"activeIncidents":2`)
	assert.Contains(t, w.Body.String(), `"resourcesAllocated":40`)
}

func TestHealthCheck_Handler_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
