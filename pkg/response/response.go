// Package response provides the JSON envelope shared by all HTTP handlers.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Code classifies the outcome of a request for API clients.
type Code string

const (
	// CodeOk means the request succeeded.
	CodeOk Code = "Ok"
	// CodeUserError means the request was rejected because of its input.
	CodeUserError Code = "UserError"
	// CodeServerError means the request failed on the server side.
	CodeServerError Code = "ServerError"
)

// Simple is the {message, code} body returned by every endpoint.
type Simple struct {
	Message string `json:"message"`
	Code    Code   `json:"code"`
}

// OK sends a 200 response with CodeOk.
func OK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Simple{Message: message, Code: CodeOk})
}

// UserError sends a 400 response with CodeUserError.
func UserError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Simple{Message: message, Code: CodeUserError})
}

// NotFound sends a 404 response with CodeUserError.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Simple{Message: message, Code: CodeUserError})
}

// Unauthorized sends a 401 response with CodeUserError.
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, Simple{Message: message, Code: CodeUserError})
}

// ServerError sends a 500 response with CodeServerError.
func ServerError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, Simple{Message: message, Code: CodeServerError})
}
