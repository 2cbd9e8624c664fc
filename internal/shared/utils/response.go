package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopfloor-inc/shopfloor/internal/shared/errors"
)

// MessageResponse is the body of operations that return a confirmation
// instead of an entity.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorBody is the body of every non-validation error.
type ErrorBody struct {
	Error string `json:"error"`
}

// SuccessResponse writes data as the bare response body.
func SuccessResponse(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

// CreatedResponse sends a created response
func CreatedResponse(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// MessageSuccessResponse sends {"message": message} with status 200.
func MessageSuccessResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// ErrorResponse sends an error response with custom status code and message
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

// ErrorResponseWithError sends an error response based on error type.
// Field validation errors are written as {"field": ["message", ...]}.
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		// For non-AppError, do not expose internal error details to prevent information leakage
		ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
		return
	}

	if appErr.Type == errors.ErrorTypeValidation && len(appErr.Fields) > 0 {
		c.JSON(appErr.Code, appErr.Fields)
		return
	}

	if appErr.Type == errors.ErrorTypeInternal {
		ErrorResponse(c, appErr.Code, "Internal server error occurred")
		return
	}

	ErrorResponse(c, appErr.Code, appErr.Message)
}
