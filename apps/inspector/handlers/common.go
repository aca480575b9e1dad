package handlers

import (
	"github.com/cyphera/settlement-engine/libs/go/logger"
	"github.com/cyphera/settlement-engine/libs/go/middleware"
	"github.com/cyphera/settlement-engine/libs/go/types/api/responses"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CommonServices holds common dependencies used across handlers
type CommonServices struct {
	logger *zap.Logger
}

// NewCommonServices creates a new instance of CommonServices
func NewCommonServices(log *zap.Logger) *CommonServices {
	if log == nil {
		log = logger.Log
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &CommonServices{logger: log}
}

// ErrorResponse represents a standard error response
type ErrorResponse = responses.ErrorResponse

// sendError is a helper function that combines logging and error response.
// It logs the error with the given message and sends a JSON error response.
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := middleware.GetCorrelationID(c)

	if logger.Log != nil {
		logger.Error(message,
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.String("correlation_id", correlationID),
		)
	}

	c.JSON(statusCode, ErrorResponse{
		Error:         message,
		CorrelationID: correlationID,
	})
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}
