package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success writes a success envelope with status 200.
func Success(c *gin.Context, env *Envelope) {
	WithStatusCode(c, http.StatusOK, env)
}

// WithStatusCode writes an envelope with a custom status code.
func WithStatusCode(c *gin.Context, status int, env *Envelope) {
	c.JSON(status, env)
}

// Failure writes a failure envelope with the given status code.
func Failure(c *gin.Context, status int, message string) {
	c.JSON(status, Fail(message))
}

// BadRequest writes a failure envelope with status 400.
func BadRequest(c *gin.Context, message string) {
	Failure(c, http.StatusBadRequest, message)
}

// NotFound writes a failure envelope with status 404.
func NotFound(c *gin.Context, message string) {
	Failure(c, http.StatusNotFound, message)
}

// InternalServer writes a failure envelope with status 500.
func InternalServer(c *gin.Context, message string) {
	Failure(c, http.StatusInternalServerError, message)
}
