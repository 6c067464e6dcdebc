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

// UserHandler handles user API requests
type UserHandler struct {
	authService *service.AuthService
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(authService *service.AuthService, userService *service.UserService) *UserHandler {
	return &UserHandler{
		authService: authService,
		userService: userService,
	}
}

// CreateUser handles user registration
// POST /users/
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			response.BadRequest(c, "a user with this username already exists")
			return
		}
		if errors.Is(err, service.ErrEmailTaken) {
			response.BadRequest(c, "a user with this email already exists")
			return
		}
		response.InternalError(c, "failed to register user")
		return
	}

	response.Success(c, user)
}

// ListUsers handles listing users
// GET /users/
func (h *UserHandler) ListUsers(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	users, err := h.userService.ListUsers(skip, limit)
	if err != nil {
		response.InternalError(c, "failed to list users")
		return
	}

	response.Success(c, users)
}

// GetCurrentUser handles getting the authenticated user
// GET /users/me
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	response.Success(c, middleware.CurrentUser(c))
}

// GetUser handles getting a user by ID
// GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	user, err := h.userService.GetUserByID(uint(userID))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, "failed to get user")
		return
	}

	response.Success(c, user)
}

// UpdateUser handles updating a user
// PUT /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.UpdateUser(uint(userID), &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			response.NotFound(c, "user not found")
		case errors.Is(err, service.ErrUsernameTaken):
			response.BadRequest(c, "a user with this username already exists")
		case errors.Is(err, service.ErrEmailTaken):
			response.BadRequest(c, "a user with this email already exists")
		default:
			response.InternalError(c, "failed to update user")
		}
		return
	}

	response.Success(c, user)
}

// DeleteUser handles deleting a user
// DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	user, err := h.userService.DeleteUser(uint(userID))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, "failed to delete user")
		return
	}

	response.Success(c, user)
}

// RegisterRoutes registers user routes
func (h *UserHandler) RegisterRoutes(r gin.IRouter, authMiddleware gin.HandlerFunc) {
	users := r.Group("/users")
	{
		users.POST("/", h.CreateUser)
		users.GET("/", authMiddleware, h.ListUsers)
		users.GET("/me", authMiddleware, h.GetCurrentUser)
		users.GET("/:id", authMiddleware, h.GetUser)
		users.PUT("/:id", authMiddleware, h.UpdateUser)
		users.DELETE("/:id", authMiddleware, h.DeleteUser)
	}
}
