package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cropai/internal/domain"
	"cropai/internal/handler"
	"cropai/internal/service"
	"cropai/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newProfileHandler() (*handler.ProfileHandler, *mocks.MockProfileService) {
	mockSvc := new(mocks.MockProfileService)
	h := handler.NewProfileHandler(mockSvc)
	return h, mockSvc
}

// --- Onboard ---

func TestProfileHandler_Onboard_Success(t *testing.T) {
	h, mockSvc := newProfileHandler()

	expected := &domain.FarmProfile{
		Name:   "Amina",
		Role:   domain.RoleFarmer,
		Farmer: &domain.FarmerDetails{Crops: []string{"maize"}},
	}

	mockSvc.On("Onboard", mock.Anything, mock.MatchedBy(func(input service.ProfileInput) bool {
		return input.Name == "Amina" && input.Role == domain.RoleFarmer
	})).Return(expected, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"name":   "Amina",
		"role":   "farmer",
		"farmer": map[string]interface{}{"crops": []string{"maize"}, "surface_ha": 1.5},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/profile", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Onboard(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestProfileHandler_Onboard_MissingFields(t *testing.T) {
	h, _ := newProfileHandler()

	body, _ := json.Marshal(map[string]string{
		"name": "Amina",
		// missing role
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/profile", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Onboard(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileHandler_Onboard_AlreadyExists(t *testing.T) {
	h, mockSvc := newProfileHandler()

	mockSvc.On("Onboard", mock.Anything, mock.AnythingOfType("service.ProfileInput")).
		Return(nil, domain.ErrProfileExists)

	body, _ := json.Marshal(map[string]string{"name": "Amina", "role": "farmer"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/profile", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Onboard(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Get ---

func TestProfileHandler_Get_Success(t *testing.T) {
	h, mockSvc := newProfileHandler()

	mockSvc.On("Get", mock.Anything).Return(&domain.FarmProfile{
		Name: "Amina", Role: domain.RoleFarmer, Farmer: &domain.FarmerDetails{},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/profile", http.NoBody)

	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProfileHandler_Get_OnboardingRequired(t *testing.T) {
	h, mockSvc := newProfileHandler()

	mockSvc.On("Get", mock.Anything).Return(nil, domain.ErrProfileNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/profile", http.NoBody)

	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "ONBOARDING_REQUIRED", resp.Error.Code)
}

// --- Update ---

func TestProfileHandler_Update_Success(t *testing.T) {
	h, mockSvc := newProfileHandler()

	expected := &domain.FarmProfile{
		Name: "Amina W.", Role: domain.RoleFarmer, Farmer: &domain.FarmerDetails{},
	}
	mockSvc.On("Update", mock.Anything, mock.AnythingOfType("service.ProfileInput")).
		Return(expected, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"name":   "Amina W.",
		"role":   "farmer",
		"farmer": map[string]interface{}{},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPut, "/api/v1/profile", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

// --- Logout ---

func TestProfileHandler_Logout_Success(t *testing.T) {
	h, mockSvc := newProfileHandler()

	mockSvc.On("Logout", mock.Anything).Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/profile/logout", http.NoBody)

	h.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}
