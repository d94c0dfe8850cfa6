package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/dippingsauce/backend/internal/apperr"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler turns the last error a handler attached with c.Error into
// a JSON error response, and recovers panics as 500s. Internal causes are
// logged and never sent to the client.
func ErrorHandler(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("request_id", c.GetString(RequestIDKey)),
					zap.Stack("stack"),
				)
				WriteError(c, apperr.Internal(fmt.Errorf("panic: %v", r)))
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		appErr := apperr.From(c.Errors.Last().Err)
		if appErr.Code == apperr.CodeInternal {
			log.Error("internal error",
				zap.Error(appErr.Cause),
				zap.String("request_id", c.GetString(RequestIDKey)),
				zap.String("path", c.Request.URL.Path),
			)
		}
		WriteError(c, appErr)
	}
}

// WriteError writes appErr as a JSON body and aborts the chain
func WriteError(c *gin.Context, appErr *apperr.AppError) {
	if appErr.Code == apperr.CodeUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}
	c.AbortWithStatusJSON(appErr.StatusCode(), ErrorResponse{Error: appErr.Message})
}
