// Package httputil holds the error envelope shared by the API handlers and
// the middleware chain, so dashboards see one failure shape everywhere.
package httputil

import "github.com/gin-gonic/gin"

// RespondError writes the `{code, message, request_id}` error envelope and
// aborts the handler chain. The request ID comes from the request ID
// middleware when present; callers outside the chain get the envelope
// without one.
func RespondError(c *gin.Context, status int, code, message string) {
	var requestID string
	if rid, exists := c.Get("request_id"); exists {
		if s, ok := rid.(string); ok {
			requestID = s
		}
	}

	resp := map[string]string{
		"code":    code,
		"message": message,
	}

	if requestID != "" {
		resp["request_id"] = requestID
	}

	c.AbortWithStatusJSON(status, resp)
}
