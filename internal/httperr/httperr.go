package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// WriteError maps a business error onto the matching HTTP status; anything
// else becomes a 500 with the given fallback code.
func WriteError(c *gin.Context, err error, fallbackCode string) {
	var be BusinessError
	if errors.As(err, &be) {
		switch be.Kind {
		case KindNotFound:
			NotFound(c, be.Code, "Resource not found.")
		case KindConflict:
			Conflict(c, be.Code, "Slot not available.")
		default:
			BadRequest(c, be.Code, "Invalid request.")
		}
		return
	}
	Internal(c, fallbackCode, "Internal error.")
}
