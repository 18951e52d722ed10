package service

import (
	"sort"
	"strings"

	"github.com/sarthakyadav7225/hms-WeCare/internal/delivery/dto"
)

const maxConditionMatches = 5

const diagnosisDisclaimer = "This is a demo tool for educational purposes only and is not a substitute for professional medical diagnosis. Always consult a licensed healthcare provider."

// symptomConditions maps symptom keywords to the conditions they suggest.
// Static lookup data, matched by substring against the free-text input.
var symptomConditions = map[string][]string{
	"fever":               {"Cold", "Flu", "Typhoid", "Malaria", "COVID-19"},
	"cough":               {"Cold", "Flu", "Bronchitis", "Asthma", "COVID-19"},
	"headache":            {"Migraine", "Tension Headache", "Cold", "Flu"},
	"body pain":           {"Flu", "COVID-19", "Muscle Strain", "Arthritis"},
	"runny nose":          {"Cold", "Allergy", "Flu", "Sinusitis"},
	"sore throat":         {"Cold", "Flu", "Strep Throat", "Pharyngitis"},
	"fatigue":             {"Anemia", "Thyroid", "Depression", "Chronic Fatigue"},
	"shortness of breath": {"Asthma", "Pneumonia", "Anxiety", "Heart Disease"},
	"nausea":              {"Food Poisoning", "Gastritis", "Pregnancy", "Migraine"},
	"dizziness":           {"Vertigo", "Low Blood Pressure", "Anemia", "Dehydration"},
}

var conditionRecommendations = map[string][]string{
	"Cold":        {"Rest", "Hydration", "Vitamin C", "Gargle with salt water"},
	"Flu":         {"Rest", "Fluids", "Pain reliever", "Consult doctor if severe"},
	"Migraine":    {"Rest in dark room", "Pain medication", "Avoid triggers", "Hydration"},
	"Fever":       {"Paracetamol", "Cold compress", "Hydration", "Monitor temperature"},
	"Asthma":      {"Inhaler", "Avoid triggers", "Exercise regularly", "Consult specialist"},
	"COVID-19":    {"Self-isolate", "Get tested", "Monitor symptoms", "Seek medical help if worsens"},
	"Bronchitis":  {"Rest", "Cough syrup", "Humidifier", "See doctor if persistent"},
	"Sore Throat": {"Throat lozenges", "Warm water gargle", "Honey tea", "Avoid smoking"},
}

// DiagnosisService matches a free-text symptom description against the
// static symptom tables. It never stores anything.
type DiagnosisService interface {
	Analyze(req *dto.AnalyzeSymptomsRequest) *dto.AnalyzeSymptomsResponse
}

type diagnosisService struct{}

func NewDiagnosisService() DiagnosisService {
	return &diagnosisService{}
}

func (s *diagnosisService) Analyze(req *dto.AnalyzeSymptomsRequest) *dto.AnalyzeSymptomsResponse {
	symptomsLower := strings.ToLower(req.Symptoms)

	matched := map[string]bool{}
	for keyword, conditions := range symptomConditions {
		if strings.Contains(symptomsLower, keyword) {
			for _, condition := range conditions {
				matched[condition] = true
			}
		}
	}

	names := make([]string, 0, len(matched))
	for name := range matched {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) > maxConditionMatches {
		names = names[:maxConditionMatches]
	}

	conditions := make([]dto.ConditionMatch, 0, len(names))
	for _, name := range names {
		conditions = append(conditions, dto.ConditionMatch{
			Condition:       name,
			Recommendations: conditionRecommendations[name],
		})
	}

	advice := "Consult a doctor if symptoms persist"
	if req.Severity == "Severe" || req.Severity == "Very Severe" {
		advice = "Seek immediate medical attention"
	}
	if len(conditions) == 0 {
		advice = "No specific conditions matched; please provide more detailed symptoms"
	}

	return &dto.AnalyzeSymptomsResponse{
		Matched:    len(conditions) > 0,
		Conditions: conditions,
		Severity:   req.Severity,
		Duration:   req.Duration,
		Advice:     advice,
		Disclaimer: diagnosisDisclaimer,
	}
}
