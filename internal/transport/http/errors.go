package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	codeInvalidRequestBody = "invalid_request_body"
	codeNotFound           = "not_found"
	codeMethodNotAllowed   = "method_not_allowed"
	codeUpstreamFailure    = "upstream_failure"
	codeUpstreamTimeout    = "upstream_timeout"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: msg, Code: code})
}

func notFound(c *gin.Context) {
	writeError(c, http.StatusNotFound, codeNotFound, "route not found")
}

func methodNotAllowed(c *gin.Context) {
	writeError(c, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
}
