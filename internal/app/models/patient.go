package models

type EmergencyContact struct {
	ContactName string `json:"contact_name"`
	Relation    string `json:"relation"`
	Phone       string `json:"phone"`
}

type Insurance struct {
	InsuranceDetails string `json:"insurance_details"`
}

type PatientDemographics struct {
	PatientID          string           `json:"patient_id,omitempty"`
	FirstName          string           `json:"first_name"`
	LastName           string           `json:"last_name"`
	DateOfBirth        string           `json:"date_of_birth"`
	Gender             string           `json:"gender"`
	ContactNumber      string           `json:"contact_number"`
	EmailAddress       string           `json:"email_address"`
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
	MedicalRecords     []MedicalRecord  `json:"medical_records"`
}

// RequiredFields lists the values counted by the profile completion meter.
func (p PatientDemographics) RequiredFields() []string {
	return []string{
		p.FirstName,
		p.LastName,
		p.DateOfBirth,
		p.Gender,
		p.ContactNumber,
		p.EmailAddress,
		p.Address,
		p.HeightCM,
		p.WeightKG,
		p.BloodGroup,
		p.Allergies,
		p.ExistingConditions,
		p.CurrentMedications,
		p.EmergencyContact.ContactName,
		p.EmergencyContact.Relation,
		p.EmergencyContact.Phone,
	}
}
