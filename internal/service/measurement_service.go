package service

import (
	"time"

	"github.com/bmi-tracker/internal/models"
	"github.com/bmi-tracker/internal/repository"
)

// MeasurementService handles owner-scoped measurement operations
type MeasurementService struct {
	measurementRepo *repository.MeasurementRepository
}

// NewMeasurementService creates a new MeasurementService
func NewMeasurementService(measurementRepo *repository.MeasurementRepository) *MeasurementService {
	return &MeasurementService{
		measurementRepo: measurementRepo,
	}
}

// CreateMeasurementRequest represents the create measurement request
type CreateMeasurementRequest struct {
	Weight float64 `json:"weight" binding:"required,gt=0"`
	Height float64 `json:"height" binding:"required,gt=0"`
	Notes  string  `json:"notes"`
}

// UpdateMeasurementRequest is an explicit patch: only set fields are applied
type UpdateMeasurementRequest struct {
	Weight *float64 `json:"weight" binding:"omitempty,gt=0"`
	Height *float64 `json:"height" binding:"omitempty,gt=0"`
	Notes  *string  `json:"notes"`
}

// CreateMeasurement creates a measurement for the user
func (s *MeasurementService) CreateMeasurement(userID uint, req *CreateMeasurementRequest) (*models.Measurement, error) {
	measurement := &models.Measurement{
		UserID:     userID,
		Weight:     req.Weight,
		Height:     req.Height,
		MeasuredAt: time.Now(),
		Notes:      req.Notes,
	}

	if err := s.measurementRepo.Create(measurement); err != nil {
		return nil, err
	}

	return measurement, nil
}

// ListMeasurements retrieves the user's measurements with offset/limit
func (s *MeasurementService) ListMeasurements(userID uint, skip, limit int) ([]models.Measurement, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}
	return s.measurementRepo.GetByUserID(userID, skip, limit)
}

// GetMeasurement retrieves one of the user's measurements
func (s *MeasurementService) GetMeasurement(userID, id uint) (*models.Measurement, error) {
	return s.measurementRepo.GetByIDAndUserID(id, userID)
}

// UpdateMeasurement applies a partial update to one of the user's measurements
func (s *MeasurementService) UpdateMeasurement(userID, id uint, req *UpdateMeasurementRequest) (*models.Measurement, error) {
	measurement, err := s.measurementRepo.GetByIDAndUserID(id, userID)
	if err != nil {
		return nil, err
	}

	if req.Weight != nil {
		measurement.Weight = *req.Weight
	}
	if req.Height != nil {
		measurement.Height = *req.Height
	}
	if req.Notes != nil {
		measurement.Notes = *req.Notes
	}

	if err := s.measurementRepo.Update(measurement); err != nil {
		return nil, err
	}

	return measurement, nil
}

// DeleteMeasurement removes one of the user's measurements
func (s *MeasurementService) DeleteMeasurement(userID, id uint) (*models.Measurement, error) {
	measurement, err := s.measurementRepo.GetByIDAndUserID(id, userID)
	if err != nil {
		return nil, err
	}

	if err := s.measurementRepo.Delete(id, userID); err != nil {
		return nil, err
	}

	return measurement, nil
}
