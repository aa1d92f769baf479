package patients

import (
	"math"
	"mediconnect-portal/internal/app/models"
	"strings"
)

// CompletionPercent is the rounded share of required profile fields that
// hold a non-blank value.
func CompletionPercent(demographics *models.PatientDemographics) int {
	if demographics == nil {
		return 0
	}

	fields := demographics.RequiredFields()
	filled := 0
	for _, value := range fields {
		if strings.TrimSpace(value) != "" {
			filled++
		}
	}
	return int(math.Round(float64(filled) / float64(len(fields)) * 100))
}
