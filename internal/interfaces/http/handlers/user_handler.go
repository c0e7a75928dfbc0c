package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bizfundraiser.backend/internal/domain/entities"
	domainerrors "bizfundraiser.backend/internal/domain/errors"
	"bizfundraiser.backend/internal/interfaces/http/middleware"
	"bizfundraiser.backend/internal/interfaces/http/response"
	"bizfundraiser.backend/internal/usecases"
)

// UserHandler handles profile and KYC endpoints
type UserHandler struct {
	profileUsecase *usecases.ProfileUsecase
}

// NewUserHandler creates a new user handler
func NewUserHandler(profileUsecase *usecases.ProfileUsecase) *UserHandler {
	return &UserHandler{
		profileUsecase: profileUsecase,
	}
}

// GetProfile returns the caller's profile projection
// GET /api/v1/users/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	profile, err := h.profileUsecase.GetProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// UpdateProfile applies a partial update of the generic profile fields
// PUT /api/v1/users/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUsecase.UpdateProfile(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// UpdateBusinessProfile applies a partial update including business fields.
// The role gate lives in the usecase; any authenticated user may call.
// PUT /api/v1/users/business-profile
func (h *UserHandler) UpdateBusinessProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.UpdateBusinessProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUsecase.UpdateBusinessProfile(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// CompleteKYC validates the role-dependent required fields and sets the flag
// POST /api/v1/users/complete-kyc
func (h *UserHandler) CompleteKYC(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	profile, err := h.profileUsecase.CompleteKYC(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// ListUsers returns the non-sensitive projection of all users (admin only)
// GET /api/v1/users/all
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.profileUsecase.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, users)
}
