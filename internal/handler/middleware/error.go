package middleware

import (
	"log/slog"
	"net/http"

	"billboard-booking/internal/handler/httperr"
	"billboard-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const maxStackLines = 20

// ErrorHandler logs server-side failures with their stack and writes the last
// public error's envelope when a handler recorded an error without writing a
// body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, err := range c.Errors {
			if resp, ok := err.Meta.(httperr.Response); ok && resp.Status >= http.StatusInternalServerError {
				slog.ErrorContext(c.Request.Context(), "request failed",
					"code", resp.Error.Code,
					"error", err.Err.Error(),
					"stack", errs.ExtractStackLines(err.Err, maxStackLines))
			}
		}

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError,
			httperr.NewResponse(http.StatusInternalServerError, httperr.CodeInternal, "Internal server error", nil))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				err := errs.Newf("panic: %v", rec)
				slog.ErrorContext(c.Request.Context(), "recovered from panic",
					"error", err.Error(),
					"path", c.Request.URL.Path,
					"request_id", RequestID(c),
					"stack", errs.ExtractStackLines(err, maxStackLines))

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.NewResponse(http.StatusInternalServerError, httperr.CodeInternal, "Internal server error", nil))
			}
		}()
		c.Next()
	}
}
