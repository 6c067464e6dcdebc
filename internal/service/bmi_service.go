package service

import (
	"errors"
	"math"
	"time"

	"github.com/bmi-tracker/internal/models"
	"github.com/bmi-tracker/internal/repository"
)

var (
	ErrNoCategories = errors.New("no bmi categories configured")
)

// CategoryStore abstracts category access so the service works
// against either the plain repository or the Redis-cached decorator.
type CategoryStore interface {
	Create(category *models.BMICategory) error
	CreateBatch(categories []models.BMICategory) error
	GetByID(id uint) (*models.BMICategory, error)
	List() ([]models.BMICategory, error)
	Count() (int64, error)
}

// BMIService computes and classifies body-mass-index values
type BMIService struct {
	categories      CategoryStore
	measurementRepo *repository.MeasurementRepository
}

// NewBMIService creates a new BMIService
func NewBMIService(categories CategoryStore, measurementRepo *repository.MeasurementRepository) *BMIService {
	return &BMIService{
		categories:      categories,
		measurementRepo: measurementRepo,
	}
}

// CalculateRequest represents the BMI calculation request
type CalculateRequest struct {
	Weight float64 `json:"weight" binding:"required,gt=0"` // kilograms
	Height float64 `json:"height" binding:"required,gt=0"` // centimeters
}

// BMIResult represents the classification result
type BMIResult struct {
	BMI             float64 `json:"bmi"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	Recommendations string  `json:"recommendations"`
}

// CreateCategoryRequest represents the create category request
type CreateCategoryRequest struct {
	Name            string  `json:"name" binding:"required"`
	MinValue        float64 `json:"min_value"`
	MaxValue        float64 `json:"max_value" binding:"required"`
	Description     string  `json:"description"`
	Recommendations string  `json:"recommendations"`
}

// CalculateBMI computes the body-mass index from weight in kilograms
// and height in centimeters. Pure function, no validation: the caller
// decides what inputs to allow.
func CalculateBMI(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	return weightKg / (heightM * heightM)
}

// ClassifyBMI selects the category whose half-open range [min, max)
// contains bmi. When no range matches, the category with the largest
// upper bound is returned, so values at or above the top bound still
// classify. Returns nil only for an empty category set.
func ClassifyBMI(bmi float64, categories []models.BMICategory) *models.BMICategory {
	for i := range categories {
		if categories[i].MinValue <= bmi && bmi < categories[i].MaxValue {
			return &categories[i]
		}
	}

	var fallback *models.BMICategory
	for i := range categories {
		if fallback == nil || categories[i].MaxValue > fallback.MaxValue {
			fallback = &categories[i]
		}
	}
	return fallback
}

// Calculate computes the BMI for the user, classifies it and persists
// a measurement row. The unrounded value is used for range matching;
// the returned value is rounded to two decimal places.
func (s *BMIService) Calculate(userID uint, req *CalculateRequest) (*BMIResult, error) {
	bmi := CalculateBMI(req.Weight, req.Height)

	categories, err := s.categories.List()
	if err != nil {
		return nil, err
	}

	category := ClassifyBMI(bmi, categories)
	if category == nil {
		return nil, ErrNoCategories
	}

	measurement := &models.Measurement{
		UserID:     userID,
		Weight:     req.Weight,
		Height:     req.Height,
		MeasuredAt: time.Now(),
	}
	if err := s.measurementRepo.Create(measurement); err != nil {
		return nil, err
	}

	return &BMIResult{
		BMI:             math.Round(bmi*100) / 100,
		Category:        category.Name,
		Description:     category.Description,
		Recommendations: category.Recommendations,
	}, nil
}

// CreateCategory creates a new BMI category
func (s *BMIService) CreateCategory(req *CreateCategoryRequest) (*models.BMICategory, error) {
	category := &models.BMICategory{
		Name:            req.Name,
		MinValue:        req.MinValue,
		MaxValue:        req.MaxValue,
		Description:     req.Description,
		Recommendations: req.Recommendations,
	}

	if err := s.categories.Create(category); err != nil {
		return nil, err
	}

	return category, nil
}

// GetCategory retrieves a BMI category by ID
func (s *BMIService) GetCategory(id uint) (*models.BMICategory, error) {
	return s.categories.GetByID(id)
}

// SeedDefaultCategories inserts the four standard WHO bands. Idempotent:
// skipped entirely if any category row already exists. The obese band is
// open at the top; MaxFloat64 stands in for infinity because encoding/json
// cannot represent +Inf, and the classifier falls back to the largest
// upper bound for anything beyond it.
func (s *BMIService) SeedDefaultCategories() error {
	count, err := s.categories.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []models.BMICategory{
		{
			Name:            "Underweight",
			MinValue:        0,
			MaxValue:        18.5,
			Description:     "Your weight is below normal",
			Recommendations: "Consider increasing calorie and protein intake. Consult a doctor.",
		},
		{
			Name:            "Normal weight",
			MinValue:        18.5,
			MaxValue:        25,
			Description:     "Your weight is normal",
			Recommendations: "Keep up your current lifestyle and diet.",
		},
		{
			Name:            "Overweight",
			MinValue:        25,
			MaxValue:        30,
			Description:     "You are overweight",
			Recommendations: "Consider reducing calorie intake and increasing physical activity.",
		},
		{
			Name:            "Obese",
			MinValue:        30,
			MaxValue:        math.MaxFloat64,
			Description:     "You are obese",
			Recommendations: "Strongly consider seeing a doctor to develop a weight loss plan.",
		},
	}

	return s.categories.CreateBatch(defaults)
}
