package repository

import (
	"errors"

	"github.com/bmi-tracker/internal/models"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("bmi category not found")
)

// CategoryRepository handles BMI category data access
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create creates a new category
func (r *CategoryRepository) Create(category *models.BMICategory) error {
	return r.db.Create(category).Error
}

// CreateBatch creates multiple categories in one statement
func (r *CategoryRepository) CreateBatch(categories []models.BMICategory) error {
	return r.db.Create(&categories).Error
}

// GetByID retrieves a category by ID
func (r *CategoryRepository) GetByID(id uint) (*models.BMICategory, error) {
	var category models.BMICategory
	result := r.db.First(&category, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return &category, nil
}

// List retrieves all categories ordered by lower bound
func (r *CategoryRepository) List() ([]models.BMICategory, error) {
	var categories []models.BMICategory
	result := r.db.Order("min_value").Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}

// Count counts all categories
func (r *CategoryRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.BMICategory{}).Count(&count).Error
	return count, err
}
