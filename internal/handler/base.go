package handler

import (
	"errors"
	"net/http"

	"tyzox-be/internal/apperror"
	"tyzox-be/internal/handler/dto"
	"tyzox-be/internal/logger"
	"tyzox-be/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// BaseHandler holds the response helpers shared by every handler.
type BaseHandler struct{}

func getRequestID(c *gin.Context) string {
	if id := c.GetString(logger.RequestIDHeader); id != "" {
		return id
	}
	if c.Request != nil {
		if id := logger.RequestIDFrom(c.Request.Context()); id != "" {
			return id
		}
		return c.GetHeader(logger.RequestIDHeader)
	}
	return ""
}

func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func (h *BaseHandler) Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, dto.NewErrorResponse(code, message, getRequestID(c)))
}

func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, message)
}

func (h *BaseHandler) ValidationError(c *gin.Context, details []dto.ValidationDetail) {
	c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(
		"Request validation failed",
		getRequestID(c),
		details,
	))
}

// HandleError maps application errors to their status code. Anything
// unclassified is logged and answered with a generic 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	err = apperror.Normalize(err)

	var appErr *apperror.Error
	if errors.As(err, &appErr) && appErr.Kind != apperror.KindInternal {
		code := dto.CodeForKind(appErr.Kind)
		h.Error(c, dto.GetHTTPStatus(code), code, appErr.Message)
		return
	}

	logger.FromCtx(c.Request.Context()).Error("unhandled error",
		zap.String("layer", "handler"),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, "An unexpected error occurred")
}

// bindJSON decodes the body into obj and answers 400 itself on failure.
func (h *BaseHandler) bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			h.ValidationError(c, FormatValidationErrors(verrs))
			return false
		}
		h.BadRequest(c, "invalid request body")
		return false
	}
	return true
}

// pathID parses a positive numeric path parameter and answers 400 itself on failure.
func (h *BaseHandler) pathID(c *gin.Context, name string) (int64, bool) {
	id, ok := utils.ParseID(c.Param(name))
	if !ok {
		h.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

// currentUser returns the authenticated user id put in the request context
// by the auth middleware.
func (h *BaseHandler) currentUser(c *gin.Context) (uint, bool) {
	id, ok := utils.GetUserIDFromContext(c.Request.Context())
	if !ok {
		h.Unauthorized(c, "authentication required")
		return 0, false
	}
	return id, true
}
