package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Kilat-Pet-Delivery/service-walking/internal/application"
	"github.com/Kilat-Pet-Delivery/service-walking/internal/platform/response"
)

// WalkingHandler handles HTTP requests for owners, dogs and bookings.
type WalkingHandler struct {
	service *application.WalkingService
}

// NewWalkingHandler creates a new WalkingHandler.
func NewWalkingHandler(service *application.WalkingService) *WalkingHandler {
	return &WalkingHandler{service: service}
}

// RegisterRoutes registers all walking routes on the given router group.
func (h *WalkingHandler) RegisterRoutes(r *gin.RouterGroup) {
	v1 := r.Group("/api/v1")
	{
		v1.POST("/owners", h.CreateOwner)
		v1.POST("/dogs", h.CreateDog)
		v1.POST("/bookings", h.CreateBooking)
		v1.GET("/bookings/active", h.ListActiveBookings)
		v1.POST("/bookings/:id/cancel", h.CancelBooking)
	}
}

// CreateOwner handles POST /api/v1/owners.
func (h *WalkingHandler) CreateOwner(c *gin.Context) {
	var req application.CreateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateOwner(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// CreateDog handles POST /api/v1/dogs.
func (h *WalkingHandler) CreateDog(c *gin.Context) {
	var req application.CreateDogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateDog(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// CreateBooking handles POST /api/v1/bookings.
func (h *WalkingHandler) CreateBooking(c *gin.Context) {
	var req application.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// CancelBooking handles POST /api/v1/bookings/:id/cancel. A cancellation
// that matches no booking is answered with 404.
func (h *WalkingHandler) CancelBooking(c *gin.Context) {
	id := c.Param("id")
	result, err := h.service.CancelBooking(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	if result.MatchedCount == 0 {
		response.NotFound(c, "booking not found: "+id)
		return
	}

	response.Success(c, result)
}

// ListActiveBookings handles GET /api/v1/bookings/active.
func (h *WalkingHandler) ListActiveBookings(c *gin.Context) {
	result, err := h.service.ListActiveBookings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
