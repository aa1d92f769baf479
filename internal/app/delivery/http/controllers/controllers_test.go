package controllers

import (
	"bytes"
	"context"
	"errors"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/app/services/core/appointments"
	"mediconnect-portal/internal/app/services/core/directory"
	"mediconnect-portal/internal/app/services/core/patients"
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/dto/requests"
	"mediconnect-portal/internal/pkg/dto/responses"
	"mediconnect-portal/internal/pkg/exceptions"
	"mediconnect-portal/internal/pkg/utils"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func withSession(session *models.Session) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(utils.ContextWithSession(r.Context(), session)))
		})
	}
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	body := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestAuthController(t *testing.T) {
	authUsecase := new(MockAuthUsecase)
	ctrl := NewAuthController(zap.NewNop(), authUsecase)

	t.Run("Login Sets Session Cookie", func(t *testing.T) {
		expiresAt := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
		authUsecase.On("Login", mock.Anything, &requests.Login{Email: "jane@example.com", Password: "secret"}).
			Return(&responses.PortalLogin{SessionID: "S-1", Role: constvars.RolePatient, Dashboard: "/patient", ExpiresAt: expiresAt}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":" Jane@Example.com ","password":"secret"}`))
		rr := httptest.NewRecorder()
		ctrl.Login(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, constvars.CookieSessionID, cookies[0].Name)
		assert.Equal(t, "S-1", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, constvars.ResponseLoggedIn, decodeBody(t, rr)["message"])
	})

	t.Run("Login Malformed Body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{`))
		rr := httptest.NewRecorder()
		ctrl.Login(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Login Missing Password", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"jane@example.com"}`))
		rr := httptest.NewRecorder()
		ctrl.Login(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Logout Without Session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		rr := httptest.NewRecorder()
		ctrl.Logout(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Logout Clears Cookie", func(t *testing.T) {
		session := &models.Session{SessionID: "S-1", Role: constvars.RolePatient}
		authUsecase.On("Logout", mock.Anything, "S-1").Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		req = req.WithContext(utils.ContextWithSession(req.Context(), session))
		rr := httptest.NewRecorder()
		ctrl.Logout(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "", cookies[0].Value)
		assert.True(t, cookies[0].MaxAge < 0)
	})

	authUsecase.AssertExpectations(t)
}

func TestAppointmentController(t *testing.T) {
	receptionist := &models.Session{SessionID: "S-REC", Role: constvars.RoleReceptionist}
	patient := &models.Session{SessionID: "S-PAT", Role: constvars.RolePatient, UserID: "PAT-1"}

	t.Run("Approve Returns Updated Board", func(t *testing.T) {
		appointmentUsecase := new(MockAppointmentUsecase)
		ctrl := NewAppointmentController(zap.NewNop(), appointmentUsecase)
		router := chi.NewRouter()
		router.With(withSession(receptionist)).Put("/appointments/{appointmentId}/status", ctrl.UpdateStatus)

		result := &appointments.StatusActionResult{
			Update: models.StatusUpdate{AppointmentID: "A1", Status: constvars.AppointmentStatusApproved},
			Board:  appointments.BoardView{Total: 1},
		}
		appointmentUsecase.On("UpdateStatus", mock.Anything, receptionist, "A1", constvars.AppointmentActionApprove).Return(result, nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/appointments/A1/status", strings.NewReader(`{"action":"approve"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, constvars.ResponseAppointmentApproved, decodeBody(t, rr)["message"])
		appointmentUsecase.AssertExpectations(t)
	})

	t.Run("Reject Uses Reject Message", func(t *testing.T) {
		appointmentUsecase := new(MockAppointmentUsecase)
		ctrl := NewAppointmentController(zap.NewNop(), appointmentUsecase)
		router := chi.NewRouter()
		router.With(withSession(receptionist)).Put("/appointments/{appointmentId}/status", ctrl.UpdateStatus)

		appointmentUsecase.On("UpdateStatus", mock.Anything, receptionist, "A2", constvars.AppointmentActionReject).
			Return(&appointments.StatusActionResult{}, nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/appointments/A2/status", strings.NewReader(`{"action":"reject"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, constvars.ResponseAppointmentRejected, decodeBody(t, rr)["message"])
	})

	t.Run("Upstream Failure Propagates Status", func(t *testing.T) {
		appointmentUsecase := new(MockAppointmentUsecase)
		ctrl := NewAppointmentController(zap.NewNop(), appointmentUsecase)
		router := chi.NewRouter()
		router.With(withSession(receptionist)).Put("/appointments/{appointmentId}/status", ctrl.UpdateStatus)

		appointmentUsecase.On("UpdateStatus", mock.Anything, receptionist, "A3", constvars.AppointmentActionApprove).
			Return(nil, exceptions.ErrServerProcess(errors.New("boom"))).Once()

		req := httptest.NewRequest(http.MethodPut, "/appointments/A3/status", strings.NewReader(`{"action":"approve"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("Deadline Maps To Gateway Timeout", func(t *testing.T) {
		appointmentUsecase := new(MockAppointmentUsecase)
		ctrl := NewAppointmentController(zap.NewNop(), appointmentUsecase)
		router := chi.NewRouter()
		router.With(withSession(patient)).Get("/appointments/upcoming", ctrl.UpcomingAppointments)

		appointmentUsecase.On("GetUpcomingAppointments", mock.Anything, patient).Return(nil, context.DeadlineExceeded).Once()

		req := httptest.NewRequest(http.MethodGet, "/appointments/upcoming", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
	})

	t.Run("Cancel Returns Remaining List", func(t *testing.T) {
		appointmentUsecase := new(MockAppointmentUsecase)
		ctrl := NewAppointmentController(zap.NewNop(), appointmentUsecase)
		router := chi.NewRouter()
		router.With(withSession(patient)).Delete("/appointments/{appointmentId}", ctrl.CancelAppointment)

		remaining := []models.Appointment{{AppointmentID: "A2", Status: constvars.AppointmentStatusPending}}
		appointmentUsecase.On("CancelAppointment", mock.Anything, patient, "A1").Return(remaining, nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/appointments/A1", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		body := decodeBody(t, rr)
		assert.Equal(t, constvars.ResponseAppointmentCancelled, body["message"])
		assert.Len(t, body["data"], 1)
	})
}

func TestPatientControllerSaveProfile(t *testing.T) {
	session := &models.Session{SessionID: "S-PAT", Role: constvars.RolePatient, Email: "jane@example.com"}

	t.Run("Multipart With Medical Records", func(t *testing.T) {
		patientUsecase := new(MockPatientUsecase)
		ctrl := NewPatientController(zap.NewNop(), patientUsecase)

		body := new(bytes.Buffer)
		writer := multipart.NewWriter(body)
		require.NoError(t, writer.WriteField("first_name", "Jane"))
		require.NoError(t, writer.WriteField("emergency_contact_name", "John"))
		require.NoError(t, writer.WriteField("insurance_details", "ACME-42"))
		part, err := writer.CreateFormFile(constvars.FormFieldMedicalRecord, "xray.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("png"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		patientUsecase.On("SaveProfile", mock.Anything, session, mock.MatchedBy(func(request *requests.UpsertPatient) bool {
			return request.FirstName == "Jane" &&
				request.EmergencyContact.ContactName == "John" &&
				request.Insurance.InsuranceDetails == "ACME-42" &&
				len(request.Files) == 1 && request.Files[0].Filename == "xray.png"
		})).Return(&patients.ProfileView{CompletionPercent: 19, IsProfileFilled: true}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/patients/me", body)
		req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())
		req = req.WithContext(utils.ContextWithSession(req.Context(), session))
		rr := httptest.NewRecorder()
		ctrl.SaveProfile(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, constvars.ResponsePatientProfileSaved, decodeBody(t, rr)["message"])
		patientUsecase.AssertExpectations(t)
	})

	t.Run("JSON Body", func(t *testing.T) {
		patientUsecase := new(MockPatientUsecase)
		ctrl := NewPatientController(zap.NewNop(), patientUsecase)

		patientUsecase.On("SaveProfile", mock.Anything, session, mock.MatchedBy(func(request *requests.UpsertPatient) bool {
			return request.LastName == "Doe" && request.EmergencyContact.Phone == "555"
		})).Return(&patients.ProfileView{}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/patients/me",
			strings.NewReader(`{"last_name":"Doe","emergency_contact":{"phone":"555"}}`))
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		req = req.WithContext(utils.ContextWithSession(req.Context(), session))
		rr := httptest.NewRecorder()
		ctrl.SaveProfile(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		patientUsecase.AssertExpectations(t)
	})

	t.Run("Validation Error From Usecase", func(t *testing.T) {
		patientUsecase := new(MockPatientUsecase)
		ctrl := NewPatientController(zap.NewNop(), patientUsecase)

		patientUsecase.On("SaveProfile", mock.Anything, session, mock.Anything).
			Return(nil, exceptions.ErrInputValidation(errors.New("first_name is required"))).Once()

		req := httptest.NewRequest(http.MethodPost, "/patients/me", strings.NewReader(`{}`))
		req = req.WithContext(utils.ContextWithSession(req.Context(), session))
		rr := httptest.NewRecorder()
		ctrl.SaveProfile(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDirectoryControllerListDoctors(t *testing.T) {
	session := &models.Session{SessionID: "S-PAT", Role: constvars.RolePatient}
	directoryUsecase := new(MockDirectoryUsecase)
	ctrl := NewDirectoryController(zap.NewNop(), directoryUsecase)

	page := &directory.Page[models.Doctor]{
		Items:    []models.Doctor{{Name: "Dr. Adams", Specialization: "Cardiology"}},
		Total:    3,
		Page:     2,
		PageSize: 1,
	}
	directoryUsecase.On("ListDoctors", mock.Anything, session, &requests.DirectoryQuery{
		Search:     "card",
		HospitalID: "HSP-1",
		Pagination: requests.Pagination{Page: 2, PageSize: 1},
	}).Return(page, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/doctors?search=card&hospital_id=HSP-1&page=2&page_size=1", nil)
	req = req.WithContext(utils.ContextWithSession(req.Context(), session))
	rr := httptest.NewRecorder()
	ctrl.ListDoctors(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	pagination, ok := body["pagination"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 3, pagination["total"])
	assert.Len(t, body["data"], 1)
	directoryUsecase.AssertExpectations(t)
}
