package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "bizfundraiser.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// SuccessWithMeta sends a paged listing with its pagination metadata
func SuccessWithMeta(c *gin.Context, status int, data interface{}, meta interface{}) {
	c.JSON(status, gin.H{
		"data": data,
		"meta": meta,
	})
}

// Error sends an error response. Bare domain sentinels from the repository
// layer are mapped to their HTTP shape here.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = appErrorFromSentinel(err)
	}

	body := gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Fields) > 0 {
		body["fields"] = appErr.Fields
	}
	c.JSON(appErr.Status, body)
}

// ErrorWithStatus sends an error response with a specific status and message
func ErrorWithStatus(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}

func appErrorFromSentinel(err error) *domainerrors.AppError {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("Resource not found")
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.Conflict("Resource already exists")
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeInvalidCredentials, "Invalid email or password", err)
	case errors.Is(err, domainerrors.ErrTokenExpired):
		return domainerrors.Unauthorized("Token expired")
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return domainerrors.Unauthorized("Unauthorized")
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.Forbidden("Forbidden")
	case errors.Is(err, domainerrors.ErrInsufficientFunds):
		return domainerrors.InsufficientFunds("Insufficient wallet balance")
	case errors.Is(err, domainerrors.ErrInvalidInput), errors.Is(err, domainerrors.ErrBadRequest):
		return domainerrors.BadRequest(err.Error())
	default:
		return domainerrors.InternalError(err)
	}
}
