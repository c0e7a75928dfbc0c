package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bizfundraiser.backend/internal/domain/entities"
	domainerrors "bizfundraiser.backend/internal/domain/errors"
	"bizfundraiser.backend/internal/interfaces/http/middleware"
	"bizfundraiser.backend/internal/interfaces/http/response"
	"bizfundraiser.backend/internal/usecases"
	"bizfundraiser.backend/pkg/redis"
)

const sessionTTL = 24 * time.Hour

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase  *usecases.AuthUsecase
	sessionStore *redis.SessionStore
}

// NewAuthHandler creates a new auth handler. sessionStore may be nil when
// Redis-backed sessions are disabled.
func NewAuthHandler(authUsecase *usecases.AuthUsecase, sessionStore *redis.SessionStore) *AuthHandler {
	return &AuthHandler{
		authUsecase:  authUsecase,
		sessionStore: sessionStore,
	}
}

// Register handles user registration
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.RegisterInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	authResponse, err := h.authUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		if err == domainerrors.ErrAlreadyExists {
			response.Error(c, domainerrors.Conflict("Email already registered"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, authResponse)
}

// Login handles user login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	authResponse, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	if input.UseSession && h.sessionStore != nil {
		sessionID := uuid.New().String()
		err := h.sessionStore.CreateSession(c.Request.Context(), sessionID, &redis.SessionData{
			AccessToken:  authResponse.AccessToken,
			RefreshToken: authResponse.RefreshToken,
		}, sessionTTL)
		if err != nil {
			response.Error(c, domainerrors.InternalError(err))
			return
		}
		authResponse.SessionID = sessionID
	}

	response.Success(c, http.StatusOK, authResponse)
}

// Refresh handles token refresh
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Refresh token is required"))
		return
	}

	authResponse, err := h.authUsecase.Refresh(c.Request.Context(), input.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, authResponse)
}

// Me returns the current authenticated user
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	profile, err := h.authUsecase.Me(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// Logout deletes the caller's Redis session, when one was issued
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionId"`
	}
	_ = c.ShouldBindJSON(&input)

	if input.SessionID != "" && h.sessionStore != nil {
		if err := h.sessionStore.DeleteSession(c.Request.Context(), input.SessionID); err != nil {
			response.Error(c, domainerrors.InternalError(err))
			return
		}
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}

// ChangePassword verifies the current password and stores a new one
// POST /api/v1/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authUsecase.ChangePassword(c.Request.Context(), userID, &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Password changed"})
}
