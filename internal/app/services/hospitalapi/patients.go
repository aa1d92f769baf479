package hospitalapi

import (
	"bytes"
	"context"
	"io"
	"mediconnect-portal/internal/app/contracts"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/dto/requests"
	"mediconnect-portal/internal/pkg/exceptions"
	"mime/multipart"
	"net/url"
)

type patientClient struct {
	Transport *Transport
}

func NewPatientClient(transport *Transport) contracts.PatientClient {
	return &patientClient{Transport: transport}
}

// FindByEmail returns nil when the patient has not filled a profile yet.
func (c *patientClient) FindByEmail(ctx context.Context, session *models.Session, email string) (*models.PatientDemographics, error) {
	var result []models.PatientDemographics
	query := url.Values{}
	query.Set("email_address", email)
	err := c.Transport.doJSON(ctx, session, constvars.MethodGet, "/patients/?"+query.Encode(), nil, constvars.ResourcePatients, constvars.ErrClientFetchPatient, &result)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, nil
	}
	return &result[0], nil
}

func (c *patientClient) Upsert(ctx context.Context, session *models.Session, request *requests.UpsertPatient) (*models.PatientDemographics, error) {
	body, contentType, err := buildPatientForm(request)
	if err != nil {
		return nil, err
	}

	result := new(models.PatientDemographics)
	err = c.Transport.do(ctx, session, call{
		method:         constvars.MethodPost,
		path:           "/patients/",
		body:           body,
		contentType:    contentType,
		resource:       constvars.ResourcePatients,
		clientFallback: constvars.ErrClientSavePatient,
	}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func buildPatientForm(request *requests.UpsertPatient) (io.Reader, string, error) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	fields := [][2]string{
		{"first_name", request.FirstName},
		{"last_name", request.LastName},
		{"date_of_birth", request.DateOfBirth},
		{"gender", request.Gender},
		{"contact_number", request.ContactNumber},
		{"email_address", request.EmailAddress},
		{"height_cm", request.HeightCM},
		{"address", request.Address},
		{"weight_kg", request.WeightKG},
		{"any_disability", request.AnyDisability},
		{"allergies", request.Allergies},
		{"existing_conditions", request.ExistingConditions},
		{"current_medications", request.CurrentMedications},
		{"blood_group", request.BloodGroup},
		{"emergency_contact_name", request.EmergencyContact.ContactName},
		{"emergency_relation", request.EmergencyContact.Relation},
		{"emergency_phone", request.EmergencyContact.Phone},
		{"insurance_details", request.Insurance.InsuranceDetails},
	}
	for _, field := range fields {
		err := writer.WriteField(field[0], field[1])
		if err != nil {
			return nil, "", exceptions.ErrCannotParseMultipartForm(err)
		}
	}

	for _, fileHeader := range request.Files {
		err := copyFilePart(writer, fileHeader)
		if err != nil {
			return nil, "", exceptions.ErrCannotParseMultipartForm(err)
		}
	}

	err := writer.Close()
	if err != nil {
		return nil, "", exceptions.ErrCannotParseMultipartForm(err)
	}
	return body, writer.FormDataContentType(), nil
}

func copyFilePart(writer *multipart.Writer, fileHeader *multipart.FileHeader) error {
	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	part, err := writer.CreateFormFile("medical_records", fileHeader.Filename)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, file)
	return err
}
