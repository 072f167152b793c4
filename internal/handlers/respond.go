package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"clinic-backend/internal/middleware"
	"clinic-backend/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps store errors onto HTTP status codes.
func respondError(c *gin.Context, log *zap.Logger, err error, notFound string) {
	var cv *store.ConstraintViolation
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case errors.As(err, &cv):
		c.JSON(http.StatusConflict, gin.H{"error": conflictMessage(cv), "details": cv.Error()})
	default:
		_ = c.Error(err)
		log.Error("request failed",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func conflictMessage(cv *store.ConstraintViolation) string {
	switch cv.Kind {
	case store.ConstraintUnique:
		return "A record with the same unique value already exists"
	case store.ConstraintNotNull:
		return "A required field is missing"
	default:
		return "The record violates a storage constraint"
	}
}

func badRequest(c *gin.Context, msg string, err error) {
	body := gin.H{"error": msg}
	if err != nil {
		body["details"] = err.Error()
	}
	c.JSON(http.StatusBadRequest, body)
}

// parseID reads a numeric path parameter, answering 400 when it is malformed.
func parseID(c *gin.Context, param, label string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + label + " ID format"})
		return 0, false
	}
	return uint(id), true
}
