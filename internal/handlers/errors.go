package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dailywell/backend/internal/apierror"
	"github.com/dailywell/backend/internal/logger"
	"github.com/dailywell/backend/internal/service"
)

// writeServiceError maps a service error to a problem response. Anything
// unexpected is logged with the request id and reported as a bare 500.
func writeServiceError(c *gin.Context, err error, resource string) {
	requestID := apierror.GetRequestID(c)

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Please check your input and try again"))
	case errors.Is(err, service.ErrNotFound):
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, resource, c.Param("date")))
	default:
		logger.Ctx(c.Request.Context()).Error("request failed",
			logger.String("resource", resource),
			logger.String("path", c.FullPath()),
			logger.Err(err),
		)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
	}
}

// bindJSON binds the request body and writes a problem response on
// failure
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		apierror.WriteProblem(c, apierror.FromBindError(apierror.GetRequestID(c), err))
		return false
	}
	return true
}
