package controllers

import (
	"context"
	"mediconnect-portal/internal/app/services/core/patients"
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/dto/requests"
	"mediconnect-portal/internal/pkg/exceptions"
	"mediconnect-portal/internal/pkg/utils"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase patients.PatientUsecase
}

func NewPatientController(logger *zap.Logger, patientUsecase patients.PatientUsecase) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
	}
}

func (ctrl *PatientController) GetProfile(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(ctrl.Log, w, r, "PatientController.GetProfile")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.ControllerTimeout)
	defer cancel()

	view, err := ctrl.PatientUsecase.GetProfile(ctx, session)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, view)
}

// SaveProfile accepts either a JSON body or a multipart form carrying
// medical_records files.
func (ctrl *PatientController) SaveProfile(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(ctrl.Log, w, r, "PatientController.SaveProfile")
	if !ok {
		return
	}

	request, err := bindUpsertPatient(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.ControllerTimeout)
	defer cancel()

	view, err := ctrl.PatientUsecase.SaveProfile(ctx, session, request)
	if err != nil {
		ctrl.Log.Error("PatientController.SaveProfile error from usecase",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponsePatientProfileSaved, view)
}

func bindUpsertPatient(r *http.Request) (*requests.UpsertPatient, error) {
	request := new(requests.UpsertPatient)
	if !strings.HasPrefix(r.Header.Get(constvars.HeaderContentType), constvars.MIMEMultipartForm) {
		err := json.NewDecoder(r.Body).Decode(request)
		if err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		return request, nil
	}

	err := r.ParseMultipartForm(constvars.MaxMultipartFormMemory)
	if err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	form := r.MultipartForm.Value
	value := func(key string) string {
		if values := form[key]; len(values) > 0 {
			return strings.TrimSpace(values[0])
		}
		return ""
	}

	request.FirstName = value("first_name")
	request.LastName = value("last_name")
	request.DateOfBirth = value("date_of_birth")
	request.Gender = value("gender")
	request.ContactNumber = value("contact_number")
	request.EmailAddress = value("email_address")
	request.Address = value("address")
	request.HeightCM = value("height_cm")
	request.WeightKG = value("weight_kg")
	request.AnyDisability = value("any_disability")
	request.Allergies = value("allergies")
	request.ExistingConditions = value("existing_conditions")
	request.CurrentMedications = value("current_medications")
	request.BloodGroup = value("blood_group")
	request.EmergencyContact = requests.EmergencyContact{
		ContactName: value("emergency_contact_name"),
		Relation:    value("emergency_relation"),
		Phone:       value("emergency_phone"),
	}
	request.Insurance = requests.Insurance{InsuranceDetails: value("insurance_details")}
	request.Files = r.MultipartForm.File[constvars.FormFieldMedicalRecord]
	return request, nil
}
