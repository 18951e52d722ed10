package service

import (
	"errors"
	"math"

	"github.com/sarthakyadav7225/hms-WeCare/internal/delivery/dto"
)

var ErrUnknownActivityLevel = errors.New("unknown activity level")

// calorieActivityFactors are the TDEE multipliers applied to BMR.
var calorieActivityFactors = map[string]float64{
	"Sedentary":        1.2,
	"Light":            1.375,
	"Moderate":         1.55,
	"Very Active":      1.725,
	"Extremely Active": 1.9,
}

// waterActivityFactors scale the base weight-derived water intake.
var waterActivityFactors = map[string]float64{
	"Sedentary":     1.0,
	"Moderate":      1.2,
	"High Activity": 1.5,
}

const litersToCups = 4.22675

// WellnessService implements the health calculators: BMI with category,
// Harris-Benedict BMR with TDEE, and daily water intake. Pure arithmetic,
// nothing persisted.
type WellnessService interface {
	BMI(req *dto.BMIRequest) *dto.BMIResponse
	Calories(req *dto.CalorieRequest) (*dto.CalorieResponse, error)
	WaterIntake(req *dto.WaterIntakeRequest) (*dto.WaterIntakeResponse, error)
}

type wellnessService struct{}

func NewWellnessService() WellnessService {
	return &wellnessService{}
}

func (s *wellnessService) BMI(req *dto.BMIRequest) *dto.BMIResponse {
	heightM := req.HeightCM / 100
	bmi := req.WeightKG / (heightM * heightM)

	var category, recommendation string
	switch {
	case bmi < 18.5:
		category = "Underweight"
		recommendation = "Consult doctor for nutrition advice"
	case bmi < 25:
		category = "Normal Weight"
		recommendation = "Maintain your healthy lifestyle"
	case bmi < 30:
		category = "Overweight"
		recommendation = "Increase exercise and reduce calorie intake"
	default:
		category = "Obese"
		recommendation = "Consult healthcare provider immediately"
	}

	return &dto.BMIResponse{
		BMI:            round2(bmi),
		Category:       category,
		Recommendation: recommendation,
	}
}

func (s *wellnessService) Calories(req *dto.CalorieRequest) (*dto.CalorieResponse, error) {
	factor, ok := calorieActivityFactors[req.ActivityLevel]
	if !ok {
		return nil, ErrUnknownActivityLevel
	}

	// Harris-Benedict equations.
	var bmr float64
	if req.Gender == "Male" {
		bmr = 88.362 + (13.397 * req.WeightKG) + (4.799 * req.HeightCM) - (5.677 * float64(req.Age))
	} else {
		bmr = 447.593 + (9.247 * req.WeightKG) + (3.098 * req.HeightCM) - (4.330 * float64(req.Age))
	}

	tdee := bmr * factor

	return &dto.CalorieResponse{
		BMR:            math.Round(bmr),
		TDEE:           math.Round(tdee),
		LoseWeight:     math.Round(tdee - 500),
		Maintain:       math.Round(tdee),
		GainWeight:     math.Round(tdee + 500),
		ActivityFactor: factor,
	}, nil
}

func (s *wellnessService) WaterIntake(req *dto.WaterIntakeRequest) (*dto.WaterIntakeResponse, error) {
	factor, ok := waterActivityFactors[req.ActivityLevel]
	if !ok {
		return nil, ErrUnknownActivityLevel
	}

	liters := req.WeightKG * 0.033 * factor

	return &dto.WaterIntakeResponse{
		Liters: round2(liters),
		Cups:   math.Round(liters * litersToCups),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
