package utils

import (
	"diagnosis-service/internal/pkg/dto/requests"
	"strings"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	if input == nil {
		return nil
	}
	sanitizedArray := make([]string, len(input))
	for i, v := range input {
		sanitizedArray[i] = strings.TrimSpace(v)
	}
	return sanitizedArray
}

// SanitizePredictDiseaseRequest trims each symptom without dropping entries,
// so the supplied count seen by validation is unchanged.
func SanitizePredictDiseaseRequest(input *requests.PredictDisease) {
	input.Symptoms = cleanWhiteSpaceFromEachStringOfAnArray(input.Symptoms)
}
