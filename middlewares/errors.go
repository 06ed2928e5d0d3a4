// Package middlewares holds the single exception boundary every
// request passes through. Handlers report failures with c.Error and
// abort; the boundary classifies them against the apperrors taxonomy
// and writes one uniform ErrorResponse. Nothing below gin ever writes
// an error body itself.
package middlewares

import (
	"errors"
	"log"
	"net/http"
	"time"

	"inventoryapi/apperrors"
	"inventoryapi/models"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

// Errors returns the exception-handling middleware. Raw error detail
// is only echoed back when env is not "production".
func Errors(env string) gin.HandlerFunc {
	development := env != "production"

	return func(c *gin.Context) {
		requestId := uuid.Must(uuid.NewV4()).String()
		c.Set("request_id", requestId)

		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic recovered: %v | path: %s", r, c.Request.URL.Path)
				writeError(c, errors.New("unhandled panic"), requestId, development)
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		writeError(c, c.Errors.Last().Err, requestId, development)
	}
}

func writeError(c *gin.Context, err error, requestId string, development bool) {
	resp := models.ErrorResponse{
		Timestamp: time.Now().UTC(),
		Path:      c.Request.URL.Path,
		RequestId: requestId,
	}

	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		resp.StatusCode = appErr.Status()
		resp.ErrorCode = appErr.Code()
		resp.Message = appErr.Message
		resp.ValidationErrors = appErr.ValidationErrors
	} else {
		resp.StatusCode = http.StatusInternalServerError
		resp.ErrorCode = "INTERNAL_SERVER_ERROR"
		resp.Message = "An unexpected error occurred. Please try again later."
	}

	if development {
		resp.Details = err.Error()
	}

	logError(c, err, resp)

	c.JSON(resp.StatusCode, resp)
	c.Abort()
}

func logError(c *gin.Context, err error, resp models.ErrorResponse) {
	prefix := "info:"
	switch {
	case resp.StatusCode >= 500:
		prefix = "error:"
	case resp.StatusCode >= 400:
		prefix = "warning:"
	}

	log.Println(prefix, err.Error(), "| path:", c.Request.URL.Path, "| method:", c.Request.Method, "| request_id:", resp.RequestId)
}
