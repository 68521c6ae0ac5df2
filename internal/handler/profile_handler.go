package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cropai/internal/domain"
	"cropai/internal/service"
)

// ProfileHandler handles farm profile endpoints.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// profileRequest is the JSON body for onboarding and profile updates.
type profileRequest struct {
	Name       string                    `json:"name" binding:"required"`
	Role       string                    `json:"role" binding:"required"`
	Language   string                    `json:"language"`
	Location   *domain.GeoPoint          `json:"location"`
	Farmer     *domain.FarmerDetails     `json:"farmer"`
	Technician *domain.TechnicianDetails `json:"technician"`
	Supplier   *domain.SupplierDetails   `json:"supplier"`
}

func (r *profileRequest) toInput() service.ProfileInput {
	return service.ProfileInput{
		Name:       r.Name,
		Role:       domain.Role(r.Role),
		Language:   r.Language,
		Location:   r.Location,
		Farmer:     r.Farmer,
		Technician: r.Technician,
		Supplier:   r.Supplier,
	}
}

// Onboard handles POST /api/v1/profile
// @Summary Create the farm profile
// @Description Onboard with a role (farmer, technician, supplier) and the matching detail fields
// @Tags profile
// @Accept json
// @Produce json
// @Success 201 {object} APIResponse "Profile created"
// @Failure 400 {object} APIResponse "Invalid role or mismatched details"
// @Failure 409 {object} APIResponse "Profile already exists"
// @Router /profile [post]
func (h *ProfileHandler) Onboard(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	profile, err := h.profileService.Onboard(c.Request.Context(), req.toInput())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, profile)
}

// Get handles GET /api/v1/profile
// @Summary Get the farm profile
// @Produce json
// @Success 200 {object} APIResponse "Profile"
// @Failure 404 {object} APIResponse "Onboarding required"
// @Router /profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileService.Get(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, profile)
}

// Update handles PUT /api/v1/profile
// @Summary Update the farm profile
// @Accept json
// @Produce json
// @Success 200 {object} APIResponse "Updated profile"
// @Failure 404 {object} APIResponse "Onboarding required"
// @Router /profile [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), req.toInput())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, profile)
}

// Logout handles POST /api/v1/profile/logout
// @Summary Log out
// @Description Wipes the profile and all persisted record collections
// @Produce json
// @Success 200 {object} APIResponse "Collections wiped"
// @Router /profile/logout [post]
func (h *ProfileHandler) Logout(c *gin.Context) {
	if err := h.profileService.Logout(c.Request.Context()); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "logged out"})
}
