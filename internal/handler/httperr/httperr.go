package httperr

import (
	"github.com/gin-gonic/gin"
)

// Machine-readable error codes. Clients branch on these, never on Message.
const (
	CodeInvalidRequest       = "invalid_request"
	CodeValidation           = "validation_failed"
	CodeNotFound             = "not_found"
	CodeInvalidTransition    = "invalid_transition"
	CodeAvailabilityPending  = "availability_pending"
	CodeAvailabilityConflict = "availability_conflict"
	CodeSystemUnavailable    = "system_unavailable"
	CodePersistence          = "persistence_failed"
	CodeInternal             = "internal_error"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, code, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Code = code
	resp.Error.Message = msg
	return resp
}

// AbortWithError rejects a malformed request. The original error is kept on
// the gin context for the logging middleware.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	AbortWithCode(c, status, CodeInvalidRequest, err, msg, detail)
}

func AbortWithCode(c *gin.Context, status int, code string, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithCode: err cannot be nil")
	}

	resp := NewResponse(status, code, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
