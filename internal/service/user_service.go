package service

import (
	"github.com/bmi-tracker/internal/models"
	"github.com/bmi-tracker/internal/repository"
	"github.com/bmi-tracker/pkg/crypto"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// UserService handles user operations beyond registration
type UserService struct {
	userRepo        *repository.UserRepository
	measurementRepo *repository.MeasurementRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo *repository.UserRepository, measurementRepo *repository.MeasurementRepository) *UserService {
	return &UserService{
		userRepo:        userRepo,
		measurementRepo: measurementRepo,
	}
}

// UpdateUserRequest is an explicit patch: only set fields are applied
type UpdateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=50"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6,max=100"`
}

// ListUsers retrieves users with offset/limit
func (s *UserService) ListUsers(skip, limit int) ([]models.User, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}
	return s.userRepo.List(skip, limit)
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// UpdateUser applies a partial update to a user, field by field
func (s *UserService) UpdateUser(id uint, req *UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		exists, err := s.userRepo.ExistsByUsername(*req.Username, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrUsernameTaken
		}
		user.Username = *req.Username
	}

	if req.Email != nil {
		exists, err := s.userRepo.ExistsByEmail(*req.Email, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailTaken
		}
		user.Email = *req.Email
	}

	if req.Password != nil {
		hash, err := crypto.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes a user and all measurements owned by it
func (s *UserService) DeleteUser(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	// Measurements reference the user row, remove them first
	if err := s.measurementRepo.DeleteByUserID(id); err != nil {
		return nil, err
	}

	if err := s.userRepo.Delete(id); err != nil {
		return nil, err
	}

	return user, nil
}
