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

// BMIHandler handles BMI API requests
type BMIHandler struct {
	bmiService *service.BMIService
}

// NewBMIHandler creates a new BMIHandler
func NewBMIHandler(bmiService *service.BMIService) *BMIHandler {
	return &BMIHandler{
		bmiService: bmiService,
	}
}

// Calculate handles BMI calculation. The result is classified against
// the category table and a measurement row is persisted for the user.
// POST /bmi/calculate
func (h *BMIHandler) Calculate(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req service.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.bmiService.Calculate(user.ID, &req)
	if err != nil {
		response.InternalError(c, "failed to calculate bmi")
		return
	}

	response.Success(c, result)
}

// CreateCategory handles BMI category creation
// POST /bmi/categories
func (h *BMIHandler) CreateCategory(c *gin.Context) {
	var req service.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	category, err := h.bmiService.CreateCategory(&req)
	if err != nil {
		response.InternalError(c, "failed to create category")
		return
	}

	response.Success(c, category)
}

// GetCategory handles getting a BMI category by ID
// GET /bmi/categories/:id
func (h *BMIHandler) GetCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	category, err := h.bmiService.GetCategory(uint(categoryID))
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			response.NotFound(c, "bmi category not found")
			return
		}
		response.InternalError(c, "failed to get category")
		return
	}

	response.Success(c, category)
}

// RegisterRoutes registers bmi routes. Category reads are public,
// calculation and category creation require authentication.
func (h *BMIHandler) RegisterRoutes(r gin.IRouter, authMiddleware gin.HandlerFunc) {
	bmi := r.Group("/bmi")
	{
		bmi.POST("/calculate", authMiddleware, h.Calculate)
		bmi.POST("/categories", authMiddleware, h.CreateCategory)
		bmi.GET("/categories/:id", h.GetCategory)
	}
}
