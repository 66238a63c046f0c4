package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the flat error body every endpoint returns. Violations is only
// populated for residence validation failures.
type Response struct {
	Status     int      `json:"-"`
	Error      string   `json:"error"`
	Violations []string `json:"violations,omitempty"`
}

// AbortWithError records the original error on the context for the logging
// and error middleware, then writes the flat body.
func AbortWithError(c *gin.Context, status int, err error, msg string, violations ...string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg, Violations: violations}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
