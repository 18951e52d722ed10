package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sarthakyadav7225/hms-WeCare/internal/delivery/dto"
)

func TestWellnessService_BMI(t *testing.T) {
	svc := NewWellnessService()

	tests := []struct {
		name     string
		weightKG float64
		heightCM float64
		wantBMI  float64
		category string
	}{
		{name: "underweight", weightKG: 45, heightCM: 170, wantBMI: 15.57, category: "Underweight"},
		{name: "normal weight", weightKG: 70, heightCM: 175, wantBMI: 22.86, category: "Normal Weight"},
		{name: "overweight", weightKG: 80, heightCM: 170, wantBMI: 27.68, category: "Overweight"},
		{name: "obese", weightKG: 100, heightCM: 170, wantBMI: 34.6, category: "Obese"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := svc.BMI(&dto.BMIRequest{WeightKG: tt.weightKG, HeightCM: tt.heightCM})

			assert.InDelta(t, tt.wantBMI, result.BMI, 1e-9)
			assert.Equal(t, tt.category, result.Category)
			assert.NotEmpty(t, result.Recommendation)
		})
	}
}

func TestWellnessService_Calories(t *testing.T) {
	svc := NewWellnessService()

	t.Run("male moderate activity", func(t *testing.T) {
		result, err := svc.Calories(&dto.CalorieRequest{
			Age:           30,
			Gender:        "Male",
			WeightKG:      70,
			HeightCM:      175,
			ActivityLevel: "Moderate",
		})

		assert.NoError(t, err)
		assert.Equal(t, float64(1696), result.BMR)
		assert.Equal(t, float64(2628), result.TDEE)
		assert.Equal(t, float64(2128), result.LoseWeight)
		assert.Equal(t, float64(2628), result.Maintain)
		assert.Equal(t, float64(3128), result.GainWeight)
		assert.Equal(t, 1.55, result.ActivityFactor)
	})

	t.Run("female sedentary", func(t *testing.T) {
		result, err := svc.Calories(&dto.CalorieRequest{
			Age:           25,
			Gender:        "Female",
			WeightKG:      60,
			HeightCM:      165,
			ActivityLevel: "Sedentary",
		})

		assert.NoError(t, err)
		assert.Equal(t, float64(1405), result.BMR)
		assert.Equal(t, float64(1686), result.TDEE)
	})

	t.Run("unknown activity level", func(t *testing.T) {
		result, err := svc.Calories(&dto.CalorieRequest{
			Age:           30,
			Gender:        "Male",
			WeightKG:      70,
			HeightCM:      175,
			ActivityLevel: "Couch Potato",
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrUnknownActivityLevel)
	})
}

func TestWellnessService_WaterIntake(t *testing.T) {
	svc := NewWellnessService()

	t.Run("sedentary", func(t *testing.T) {
		result, err := svc.WaterIntake(&dto.WaterIntakeRequest{WeightKG: 70, ActivityLevel: "Sedentary"})

		assert.NoError(t, err)
		assert.InDelta(t, 2.31, result.Liters, 1e-9)
		assert.Equal(t, float64(10), result.Cups)
	})

	t.Run("high activity scales intake", func(t *testing.T) {
		result, err := svc.WaterIntake(&dto.WaterIntakeRequest{WeightKG: 80, ActivityLevel: "High Activity"})

		assert.NoError(t, err)
		assert.InDelta(t, 3.96, result.Liters, 1e-9)
		assert.Equal(t, float64(17), result.Cups)
	})

	t.Run("unknown activity level", func(t *testing.T) {
		result, err := svc.WaterIntake(&dto.WaterIntakeRequest{WeightKG: 70, ActivityLevel: "Marathon"})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrUnknownActivityLevel)
	})
}
