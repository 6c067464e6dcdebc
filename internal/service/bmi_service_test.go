package service

import (
	"math"
	"testing"

	"github.com/bmi-tracker/internal/models"
	"github.com/bmi-tracker/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestBMIService(t *testing.T) (*BMIService, *repository.MeasurementRepository, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	measurementRepo := repository.NewMeasurementRepository(db)
	svc := NewBMIService(repository.NewCategoryRepository(db), measurementRepo)
	return svc, measurementRepo, db
}

func TestCalculateBMI(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		height float64
		want   float64
	}{
		{name: "normal", weight: 70.0, height: 175.0, want: 70.0 / (1.75 * 1.75)},
		{name: "underweight", weight: 45.0, height: 180.0, want: 45.0 / (1.80 * 1.80)},
		{name: "obese", weight: 120.0, height: 170.0, want: 120.0 / (1.70 * 1.70)},
		{name: "tall and light", weight: 60.0, height: 200.0, want: 60.0 / (2.0 * 2.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateBMI(tt.weight, tt.height)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestClassifyBMI(t *testing.T) {
	categories := []models.BMICategory{
		{Name: "Underweight", MinValue: 0, MaxValue: 18.5},
		{Name: "Normal weight", MinValue: 18.5, MaxValue: 25},
		{Name: "Overweight", MinValue: 25, MaxValue: 30},
		{Name: "Obese", MinValue: 30, MaxValue: 40},
	}

	tests := []struct {
		name string
		bmi  float64
		want string
	}{
		{name: "well inside a band", bmi: 22.86, want: "Normal weight"},
		{name: "lower bound is inclusive", bmi: 18.5, want: "Normal weight"},
		{name: "upper bound is exclusive", bmi: 25.0, want: "Overweight"},
		{name: "just below an upper bound", bmi: 24.999, want: "Normal weight"},
		{name: "zero", bmi: 0, want: "Underweight"},
		{name: "above all bounds falls back to largest max", bmi: 55.0, want: "Obese"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category := ClassifyBMI(tt.bmi, categories)
			require.NotNil(t, category)
			assert.Equal(t, tt.want, category.Name)
		})
	}

	t.Run("empty category set", func(t *testing.T) {
		assert.Nil(t, ClassifyBMI(22.86, nil))
	})
}

func TestBMIService_SeedDefaultCategories(t *testing.T) {
	svc, _, db := newTestBMIService(t)

	require.NoError(t, svc.SeedDefaultCategories())

	var count int64
	require.NoError(t, db.Model(&models.BMICategory{}).Count(&count).Error)
	assert.Equal(t, int64(4), count)

	// Idempotent: a second run does not duplicate rows
	require.NoError(t, svc.SeedDefaultCategories())
	require.NoError(t, db.Model(&models.BMICategory{}).Count(&count).Error)
	assert.Equal(t, int64(4), count)
}

func TestBMIService_SeedSkippedWhenCategoriesExist(t *testing.T) {
	svc, _, db := newTestBMIService(t)

	custom := &models.BMICategory{Name: "Custom", MinValue: 0, MaxValue: math.MaxFloat64}
	require.NoError(t, db.Create(custom).Error)

	require.NoError(t, svc.SeedDefaultCategories())

	var count int64
	require.NoError(t, db.Model(&models.BMICategory{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "seeding skipped when any row exists")
}

func TestBMIService_Calculate(t *testing.T) {
	t.Run("classifies and persists a measurement", func(t *testing.T) {
		svc, measurementRepo, _ := newTestBMIService(t)
		require.NoError(t, svc.SeedDefaultCategories())

		result, err := svc.Calculate(1, &CalculateRequest{Weight: 70.0, Height: 175.0})

		require.NoError(t, err)
		assert.Equal(t, 22.86, result.BMI, "bmi rounded to two decimals")
		assert.Equal(t, "Normal weight", result.Category)
		assert.NotEmpty(t, result.Description)
		assert.NotEmpty(t, result.Recommendations)

		// A measurement row was persisted for the user
		measurements, err := measurementRepo.GetByUserID(1, 0, 100)
		require.NoError(t, err)
		require.Len(t, measurements, 1)
		assert.Equal(t, 70.0, measurements[0].Weight)
		assert.Equal(t, 175.0, measurements[0].Height)
		assert.False(t, measurements[0].MeasuredAt.IsZero())
	})

	t.Run("very high bmi lands in the top band", func(t *testing.T) {
		svc, _, _ := newTestBMIService(t)
		require.NoError(t, svc.SeedDefaultCategories())

		result, err := svc.Calculate(1, &CalculateRequest{Weight: 250.0, Height: 150.0})

		require.NoError(t, err)
		assert.Equal(t, "Obese", result.Category)
	})

	t.Run("no categories configured", func(t *testing.T) {
		svc, measurementRepo, _ := newTestBMIService(t)

		_, err := svc.Calculate(1, &CalculateRequest{Weight: 70.0, Height: 175.0})

		assert.ErrorIs(t, err, ErrNoCategories)

		// Nothing persisted on failure
		count, err := measurementRepo.CountByUserID(1)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestBMIService_Categories(t *testing.T) {
	svc, _, _ := newTestBMIService(t)

	category, err := svc.CreateCategory(&CreateCategoryRequest{
		Name:            "Severely obese",
		MinValue:        40,
		MaxValue:        100,
		Description:     "Far above normal",
		Recommendations: "See a doctor",
	})
	require.NoError(t, err)
	assert.NotZero(t, category.ID)

	found, err := svc.GetCategory(category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Severely obese", found.Name)

	_, err = svc.GetCategory(999)
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}
