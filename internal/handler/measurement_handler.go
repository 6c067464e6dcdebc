package handler

import (
	"errors"
	"strconv"

	"github.com/bmi-tracker/internal/middleware"
	"github.com/bmi-tracker/internal/repository"
	"github.com/bmi-tracker/internal/service"
	"github.com/bmi-tracker/pkg/response"
	"github.com/gin-gonic/gin"
)

// MeasurementHandler handles measurement API requests
type MeasurementHandler struct {
	measurementService *service.MeasurementService
}

// NewMeasurementHandler creates a new MeasurementHandler
func NewMeasurementHandler(measurementService *service.MeasurementService) *MeasurementHandler {
	return &MeasurementHandler{
		measurementService: measurementService,
	}
}

// CreateMeasurement handles measurement creation
// POST /measurements/
func (h *MeasurementHandler) CreateMeasurement(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req service.CreateMeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	measurement, err := h.measurementService.CreateMeasurement(user.ID, &req)
	if err != nil {
		response.InternalError(c, "failed to create measurement")
		return
	}

	response.Success(c, measurement)
}

// ListMeasurements handles listing the user's measurements
// GET /measurements/
func (h *MeasurementHandler) ListMeasurements(c *gin.Context) {
	user := middleware.CurrentUser(c)

	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	measurements, err := h.measurementService.ListMeasurements(user.ID, skip, limit)
	if err != nil {
		response.InternalError(c, "failed to list measurements")
		return
	}

	response.Success(c, measurements)
}

// GetMeasurement handles getting one of the user's measurements
// GET /measurements/:id
func (h *MeasurementHandler) GetMeasurement(c *gin.Context) {
	user := middleware.CurrentUser(c)

	measurementID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid measurement id")
		return
	}

	measurement, err := h.measurementService.GetMeasurement(user.ID, uint(measurementID))
	if err != nil {
		if errors.Is(err, repository.ErrMeasurementNotFound) {
			response.NotFound(c, "measurement not found")
			return
		}
		response.InternalError(c, "failed to get measurement")
		return
	}

	response.Success(c, measurement)
}

// UpdateMeasurement handles updating one of the user's measurements
// PUT /measurements/:id
func (h *MeasurementHandler) UpdateMeasurement(c *gin.Context) {
	user := middleware.CurrentUser(c)

	measurementID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid measurement id")
		return
	}

	var req service.UpdateMeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	measurement, err := h.measurementService.UpdateMeasurement(user.ID, uint(measurementID), &req)
	if err != nil {
		if errors.Is(err, repository.ErrMeasurementNotFound) {
			response.NotFound(c, "measurement not found")
			return
		}
		response.InternalError(c, "failed to update measurement")
		return
	}

	response.Success(c, measurement)
}

// DeleteMeasurement handles deleting one of the user's measurements
// DELETE /measurements/:id
func (h *MeasurementHandler) DeleteMeasurement(c *gin.Context) {
	user := middleware.CurrentUser(c)

	measurementID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid measurement id")
		return
	}

	measurement, err := h.measurementService.DeleteMeasurement(user.ID, uint(measurementID))
	if err != nil {
		if errors.Is(err, repository.ErrMeasurementNotFound) {
			response.NotFound(c, "measurement not found")
			return
		}
		response.InternalError(c, "failed to delete measurement")
		return
	}

	response.Success(c, measurement)
}

// RegisterRoutes registers measurement routes
func (h *MeasurementHandler) RegisterRoutes(r gin.IRouter, authMiddleware gin.HandlerFunc) {
	measurements := r.Group("/measurements", authMiddleware)
	{
		measurements.POST("/", h.CreateMeasurement)
		measurements.GET("/", h.ListMeasurements)
		measurements.GET("/:id", h.GetMeasurement)
		measurements.PUT("/:id", h.UpdateMeasurement)
		measurements.DELETE("/:id", h.DeleteMeasurement)
	}
}
