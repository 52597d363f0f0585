package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/personal_finance_api/internal/apperrors"
	"github.com/SscSPs/personal_finance_api/internal/dto"
	"github.com/SscSPs/personal_finance_api/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError maps a service error onto the response envelope.
// Anything not recognised is logged and answered with a generic 500.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var valErr *apperrors.ValidationError
	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &valErr):
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Validation failed", valErr.Fields...))
	case errors.As(err, &appErr):
		if appErr.Code >= http.StatusInternalServerError {
			logger.Error(appErr.Message, slog.String("error", err.Error()))
		} else {
			logger.Warn(appErr.Message, slog.String("error", err.Error()))
		}
		c.JSON(appErr.Code, dto.Fail(appErr.Message))
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Invalid input", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid input"))
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.Fail("Resource not found"))
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.Fail("Resource already exists"))
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.Fail("Forbidden"))
	default:
		logger.Error("Unhandled error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("Internal server error"))
	}
}

// respondBindError reports a body or query that could not be bound.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, dto.Fail("Validation failed", fieldErrors(verrs)...))
		return
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		c.JSON(http.StatusBadRequest, dto.Fail("Validation failed",
			apperrors.FieldError{Field: typeErr.Field, Message: "has the wrong type"}))
		return
	}
	c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondBindError(c, err)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		respondBindError(c, err)
		return false
	}
	return true
}

// utcNow is the handler clock; calendar days are always taken in UTC.
func utcNow() time.Time { return time.Now().UTC() }

// requireUserID reads the id placed on the context by AuthMiddleware.
func requireUserID(c *gin.Context) (int64, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return 0, false
	}
	return userID, true
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid path parameter",
			apperrors.FieldError{Field: name, Message: "must be a positive integer"}))
		return 0, false
	}
	return id, true
}
