package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/AdityaDcode/FarmVista/internal/middleware"
	"github.com/AdityaDcode/FarmVista/internal/model"
	"github.com/AdityaDcode/FarmVista/internal/service"
)

// mockFarmService returns canned results and records the last input
type mockFarmService struct {
	farm      *model.Farm
	farms     []model.Farm
	err       error
	lastInput service.FarmInput
}

func (m *mockFarmService) Create(ctx context.Context, userID string, input service.FarmInput) (*model.Farm, error) {
	m.lastInput = input
	if m.err != nil {
		return nil, m.err
	}
	return m.farm, nil
}

func (m *mockFarmService) ListByUser(ctx context.Context, userID string) ([]model.Farm, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.farms, nil
}

func (m *mockFarmService) Get(ctx context.Context, id, userID string) (*model.Farm, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.farm, nil
}

func (m *mockFarmService) Update(ctx context.Context, id, userID string, input service.FarmInput) (*model.Farm, error) {
	m.lastInput = input
	if m.err != nil {
		return nil, m.err
	}
	return m.farm, nil
}

func (m *mockFarmService) Delete(ctx context.Context, id, userID string) error {
	return m.err
}

func newFarmRouter(svc service.FarmService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := discardLogger()
	ctrl := NewFarmController(svc, logger)

	router := gin.New()
	group := router.Group("/api/farms", middleware.Auth(testSecret, logger))
	group.POST("", ctrl.AddFarm)
	group.GET("", ctrl.GetUserFarms)
	group.GET("/:id", ctrl.GetFarmByID)
	group.PUT("/:id", ctrl.UpdateFarm)
	group.DELETE("/:id", ctrl.DeleteFarm)
	return router
}

func sampleFarm() *model.Farm {
	return &model.Farm{
		ID:       "F1",
		UserID:   "U1",
		FarmName: "Riverside Paddy",
		Location: model.Location{
			Latitude:  12.9,
			Longitude: 77.6,
			City:      "Bengaluru",
		},
		SoilType:  "Alluvial Soil",
		Crop:      "Rice",
		CropStage: model.StageFlowering,
		AreaSqM:   5000,
	}
}

const validFarmBody = `{
	"farmName": "Riverside Paddy",
	"location": {"latitude": 12.9, "longitude": 77.6, "city": "Bengaluru"},
	"soilType": "Alluvial Soil",
	"crop": "Rice",
	"cropStage": "Flowering",
	"areaSqMeters": 5000
}`

func TestAddFarm_Created(t *testing.T) {
	svc := &mockFarmService{farm: sampleFarm()}
	router := newFarmRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/farms", validFarmBody, "U1"))

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["message"] != "Farm added successfully" {
		t.Errorf("Expected success message, got %v", body["message"])
	}
	farm, ok := body["farm"].(map[string]any)
	if !ok {
		t.Fatalf("Expected farm object, got %v", body["farm"])
	}
	if farm["farmName"] != "Riverside Paddy" || farm["areaSqMeters"] != float64(5000) {
		t.Errorf("Expected farm fields in response, got %v", farm)
	}

	if svc.lastInput.Latitude == nil || *svc.lastInput.Latitude != 12.9 {
		t.Errorf("Expected nested location to reach the service, got %+v", svc.lastInput)
	}
	if svc.lastInput.City != "Bengaluru" {
		t.Errorf("Expected city to reach the service, got %q", svc.lastInput.City)
	}
}

func TestAddFarm_MalformedBody(t *testing.T) {
	router := newFarmRouter(&mockFarmService{farm: sampleFarm()})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/farms", `{"farmName": `, "U1"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Invalid request body" {
		t.Errorf("Expected invalid body error, got %v", body["error"])
	}
}

func TestAddFarm_ValidationRejected(t *testing.T) {
	validationErr := fmt.Errorf("%w: area must be a positive number of square meters", service.ErrInvalidFarm)
	router := newFarmRouter(&mockFarmService{err: validationErr})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/farms", validFarmBody, "U1"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["message"] != validationErr.Error() {
		t.Errorf("Expected validation detail in message, got %v", body["message"])
	}
}

func TestGetUserFarms_ReturnsArray(t *testing.T) {
	router := newFarmRouter(&mockFarmService{farms: []model.Farm{*sampleFarm()}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/farms", "", "U1"))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var got []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("Expected a JSON array, got %q", w.Body.String())
	}
	if len(got) != 1 || got[0]["id"] != "F1" {
		t.Errorf("Expected the user's farms, got %v", got)
	}
	location, ok := got[0]["location"].(map[string]any)
	if !ok || location["latitude"] != 12.9 {
		t.Errorf("Expected nested location object, got %v", got[0]["location"])
	}
}

func TestGetFarmByID_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", service.ErrFarmNotFound, http.StatusNotFound},
		{"not owner", service.ErrNotFarmOwner, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newFarmRouter(&mockFarmService{err: tt.err})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/farms/F1", "", "U1"))
			if w.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestUpdateFarm_OK(t *testing.T) {
	updated := sampleFarm()
	updated.Crop = "Wheat"
	router := newFarmRouter(&mockFarmService{farm: updated})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodPut, "/api/farms/F1", validFarmBody, "U1"))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["message"] != "Farm updated successfully" {
		t.Errorf("Expected update message, got %v", body["message"])
	}
	farm, ok := body["farm"].(map[string]any)
	if !ok || farm["crop"] != "Wheat" {
		t.Errorf("Expected updated farm in response, got %v", body["farm"])
	}
}

func TestDeleteFarm_OK(t *testing.T) {
	router := newFarmRouter(&mockFarmService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodDelete, "/api/farms/F1", "", "U1"))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["message"] != "Farm deleted successfully" {
		t.Errorf("Expected delete message, got %v", body["message"])
	}
}

func TestFarmRoutes_Unauthorized(t *testing.T) {
	router := newFarmRouter(&mockFarmService{farms: []model.Farm{*sampleFarm()}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/farms", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without a token, got %d", w.Code)
	}
}
