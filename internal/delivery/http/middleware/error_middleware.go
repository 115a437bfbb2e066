package middleware

import (
	"errors"
	"net/http"

	"go-concurso-backend/internal/delivery/http/response"
	"go-concurso-backend/internal/domain"
	"go-concurso-backend/pkg/apperror"
	"go-concurso-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		requestID := c.GetString(string(domain.KeyRequestID))

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Error("request failed",
					"request_id", requestID,
					"kind", appErr.Kind,
					"error", appErr.Err,
				)
			}
			var details interface{}
			if len(appErr.Details) > 0 {
				details = appErr.Details
			}
			response.Error(c, appErr.Code, appErr.Message, details)
			return
		}

		// Internal details stay in the log
		logger.Log.Error("unhandled error", "request_id", requestID, "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
