// Package response writes the service's JSON envelopes.
package response

import (
	"errors"
	"net/http"

	"github.com/Kilat-Pet-Delivery/service-walking/internal/domain"
	"github.com/gin-gonic/gin"
)

// StatusClientClosedRequest is returned when the caller abandoned the request.
const StatusClientClosedRequest = 499

// Success writes a 200 response.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// Created writes a 201 response.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

// BadRequest writes a 400 response.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": message})
}

// NotFound writes a 404 response.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"success": false, "error": message})
}

// Error maps a domain error to its HTTP status and writes it.
func Error(c *gin.Context, err error) {
	status := StatusFor(err)
	message := err.Error()
	switch status {
	case http.StatusInternalServerError:
		message = "internal server error"
	case http.StatusServiceUnavailable:
		message = "storage temporarily unavailable"
	case StatusClientClosedRequest:
		message = "request canceled"
	}
	_ = c.Error(err)
	c.JSON(status, gin.H{"success": false, "error": message})
}

// StatusFor returns the HTTP status for err.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidIdentifier),
		errors.Is(err, domain.ErrInvalidOwnerReference),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrCanceled):
		return StatusClientClosedRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateKey):
		return http.StatusConflict
	case errors.Is(err, domain.ErrStorageUnavailable),
		errors.Is(err, domain.ErrQueryFailed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
