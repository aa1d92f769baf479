package requests

import "mime/multipart"

type EmergencyContact struct {
	ContactName string `json:"contact_name"`
	Relation    string `json:"relation"`
	Phone       string `json:"phone"`
}

type Insurance struct {
	InsuranceDetails string `json:"insurance_details"`
}

type UpsertPatient struct {
	FirstName          string           `json:"first_name" validate:"required"`
	LastName           string           `json:"last_name" validate:"required"`
	DateOfBirth        string           `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender             string           `json:"gender" validate:"required"`
	ContactNumber      string           `json:"contact_number" validate:"required"`
	EmailAddress       string           `json:"email_address" validate:"required,email"`
	Address            string           `json:"address"`
	HeightCM           string           `json:"height_cm"`
	WeightKG           string           `json:"weight_kg"`
	AnyDisability      string           `json:"any_disability"`
	Allergies          string           `json:"allergies"`
	ExistingConditions string           `json:"existing_conditions"`
	CurrentMedications string           `json:"current_medications"`
	BloodGroup         string           `json:"blood_group"`
	EmergencyContact   EmergencyContact `json:"emergency_contact"`
	Insurance          Insurance        `json:"insurance"`

	// Files to attach as medical_records parts of the multipart upload.
	Files []*multipart.FileHeader `json:"-"`
}
