package dto

type BMIRequest struct {
	WeightKG float64 `json:"weight_kg" validate:"required,gte=1,lte=500"`
	HeightCM float64 `json:"height_cm" validate:"required,gte=50,lte=300"`
}

type BMIResponse struct {
	BMI            float64 `json:"bmi"`
	Category       string  `json:"category"`
	Recommendation string  `json:"recommendation"`
}

type CalorieRequest struct {
	Age           int     `json:"age" validate:"required,gte=1,lte=120"`
	Gender        string  `json:"gender" validate:"required,oneof=Male Female"`
	WeightKG      float64 `json:"weight_kg" validate:"required,gte=1,lte=500"`
	HeightCM      float64 `json:"height_cm" validate:"required,gte=50,lte=300"`
	ActivityLevel string  `json:"activity_level" validate:"required"`
}

type CalorieResponse struct {
	BMR            float64 `json:"bmr"`
	TDEE           float64 `json:"tdee"`
	LoseWeight     float64 `json:"lose_weight"`
	Maintain       float64 `json:"maintain"`
	GainWeight     float64 `json:"gain_weight"`
	ActivityFactor float64 `json:"activity_factor"`
}

type WaterIntakeRequest struct {
	WeightKG      float64 `json:"weight_kg" validate:"required,gte=1,lte=500"`
	ActivityLevel string  `json:"activity_level" validate:"required"`
}

type WaterIntakeResponse struct {
	Liters float64 `json:"liters"`
	Cups   float64 `json:"cups"`
}
