package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorDetail is the standard error body
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// Success sends a 200 response with the given body
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 created response
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Error sends an error response with a human-readable detail string
func Error(c *gin.Context, statusCode int, detail string) {
	c.JSON(statusCode, ErrorDetail{Detail: detail})
}

// BadRequest sends a 400 error response
func BadRequest(c *gin.Context, detail string) {
	Error(c, http.StatusBadRequest, detail)
}

// Unauthorized sends a 401 error response
func Unauthorized(c *gin.Context, detail string) {
	Error(c, http.StatusUnauthorized, detail)
}

// NotFound sends a 404 error response
func NotFound(c *gin.Context, detail string) {
	Error(c, http.StatusNotFound, detail)
}

// InternalError sends a 500 error response
func InternalError(c *gin.Context, detail string) {
	Error(c, http.StatusInternalServerError, detail)
}
