package repository

import (
	"errors"

	"github.com/bmi-tracker/internal/models"
	"gorm.io/gorm"
)

var (
	ErrMeasurementNotFound = errors.New("measurement not found")
)

// MeasurementRepository handles measurement data access.
// Every read and write is scoped by the owning user ID, so a
// measurement owned by another user is indistinguishable from a
// nonexistent one.
type MeasurementRepository struct {
	db *gorm.DB
}

// NewMeasurementRepository creates a new MeasurementRepository
func NewMeasurementRepository(db *gorm.DB) *MeasurementRepository {
	return &MeasurementRepository{db: db}
}

// Create creates a new measurement
func (r *MeasurementRepository) Create(measurement *models.Measurement) error {
	return r.db.Create(measurement).Error
}

// GetByIDAndUserID retrieves a measurement by ID scoped to its owner
func (r *MeasurementRepository) GetByIDAndUserID(id, userID uint) (*models.Measurement, error) {
	var measurement models.Measurement
	result := r.db.Where("id = ? AND user_id = ?", id, userID).First(&measurement)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrMeasurementNotFound
		}
		return nil, result.Error
	}
	return &measurement, nil
}

// GetByUserID retrieves measurements for a user with offset/limit
func (r *MeasurementRepository) GetByUserID(userID uint, offset, limit int) ([]models.Measurement, error) {
	var measurements []models.Measurement
	result := r.db.Where("user_id = ?", userID).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&measurements)
	if result.Error != nil {
		return nil, result.Error
	}
	return measurements, nil
}

// Update updates a measurement
func (r *MeasurementRepository) Update(measurement *models.Measurement) error {
	return r.db.Save(measurement).Error
}

// Delete removes a measurement row scoped to its owner
func (r *MeasurementRepository) Delete(id, userID uint) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Measurement{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMeasurementNotFound
	}
	return nil
}

// DeleteByUserID removes all measurement rows for a user
func (r *MeasurementRepository) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Measurement{}).Error
}

// CountByUserID counts measurements for a user
func (r *MeasurementRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Measurement{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
