package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sarthakyadav7225/hms-WeCare/internal/delivery/dto"
)

func conditionNames(matches []dto.ConditionMatch) []string {
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m.Condition)
	}
	return names
}

func TestDiagnosisService_Analyze_SingleKeyword(t *testing.T) {
	svc := NewDiagnosisService()

	result := svc.Analyze(&dto.AnalyzeSymptomsRequest{
		Symptoms: "I have a fever since yesterday",
		Severity: "Mild",
		Duration: "1 day",
	})

	assert.True(t, result.Matched)
	assert.Equal(t, []string{"COVID-19", "Cold", "Flu", "Malaria", "Typhoid"}, conditionNames(result.Conditions))
	assert.Equal(t, "Consult a doctor if symptoms persist", result.Advice)
	assert.Equal(t, "Mild", result.Severity)
	assert.Equal(t, "1 day", result.Duration)
	assert.NotEmpty(t, result.Disclaimer)
}

func TestDiagnosisService_Analyze_MultipleKeywordsCapped(t *testing.T) {
	svc := NewDiagnosisService()

	// fever and cough together suggest seven distinct conditions; results
	// are deduplicated, sorted, and capped at five.
	result := svc.Analyze(&dto.AnalyzeSymptomsRequest{
		Symptoms: "fever and cough",
		Severity: "Moderate",
	})

	assert.True(t, result.Matched)
	assert.Len(t, result.Conditions, 5)
	assert.Equal(t, []string{"Asthma", "Bronchitis", "COVID-19", "Cold", "Flu"}, conditionNames(result.Conditions))
}

func TestDiagnosisService_Analyze_CaseInsensitive(t *testing.T) {
	svc := NewDiagnosisService()

	result := svc.Analyze(&dto.AnalyzeSymptomsRequest{
		Symptoms: "FEVER and Runny Nose",
		Severity: "Mild",
	})

	assert.True(t, result.Matched)
	assert.Contains(t, conditionNames(result.Conditions), "Cold")
}

func TestDiagnosisService_Analyze_SevereAdvice(t *testing.T) {
	svc := NewDiagnosisService()

	for _, severity := range []string{"Severe", "Very Severe"} {
		result := svc.Analyze(&dto.AnalyzeSymptomsRequest{
			Symptoms: "shortness of breath",
			Severity: severity,
		})

		assert.Equal(t, "Seek immediate medical attention", result.Advice)
	}
}

func TestDiagnosisService_Analyze_NoMatch(t *testing.T) {
	svc := NewDiagnosisService()

	result := svc.Analyze(&dto.AnalyzeSymptomsRequest{
		Symptoms: "glowing green skin",
		Severity: "Mild",
	})

	assert.False(t, result.Matched)
	assert.Empty(t, result.Conditions)
	assert.Equal(t, "No specific conditions matched; please provide more detailed symptoms", result.Advice)
}

func TestDiagnosisService_Analyze_RecommendationsAttached(t *testing.T) {
	svc := NewDiagnosisService()

	result := svc.Analyze(&dto.AnalyzeSymptomsRequest{
		Symptoms: "runny nose",
		Severity: "Mild",
	})

	var cold *dto.ConditionMatch
	for i := range result.Conditions {
		if result.Conditions[i].Condition == "Cold" {
			cold = &result.Conditions[i]
		}
	}
	assert.NotNil(t, cold)
	assert.Contains(t, cold.Recommendations, "Rest")
}
