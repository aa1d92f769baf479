package patients

import (
	"mediconnect-portal/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fullDemographics() *models.PatientDemographics {
	return &models.PatientDemographics{
		FirstName:          "Asha",
		LastName:           "Rao",
		DateOfBirth:        "1990-02-14",
		Gender:             "Female",
		ContactNumber:      "+911234567890",
		EmailAddress:       "asha@example.com",
		Address:            "12 Lake Road",
		HeightCM:           "165",
		WeightKG:           "60",
		BloodGroup:         "O+",
		Allergies:          "None",
		ExistingConditions: "None",
		CurrentMedications: "None",
		EmergencyContact:   models.EmergencyContact{ContactName: "Ravi", Relation: "Brother", Phone: "+919876543210"},
	}
}

func TestCompletionPercent(t *testing.T) {
	t.Run("Complete Profile", func(t *testing.T) {
		assert.Equal(t, 100, CompletionPercent(fullDemographics()))
	})

	t.Run("Blank Values Do Not Count", func(t *testing.T) {
		demographics := fullDemographics()
		demographics.Address = "   "
		demographics.EmergencyContact.Phone = ""
		// 14 of 16
		assert.Equal(t, 88, CompletionPercent(demographics))
	})

	t.Run("Optional Fields Are Ignored", func(t *testing.T) {
		demographics := &models.PatientDemographics{FirstName: "Asha", AnyDisability: "None", Insurance: models.Insurance{InsuranceDetails: "Policy 7"}}
		assert.Equal(t, 6, CompletionPercent(demographics))
	})

	t.Run("No Profile", func(t *testing.T) {
		assert.Zero(t, CompletionPercent(nil))
	})
}
