package controllers

import (
	"context"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/app/services/core/appointments"
	"mediconnect-portal/internal/app/services/core/directory"
	"mediconnect-portal/internal/app/services/core/patients"
	"mediconnect-portal/internal/pkg/dto/requests"
	"mediconnect-portal/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.PortalLogin, error) {
	args := m.Called(ctx, request)
	login, _ := args.Get(0).(*responses.PortalLogin)
	return login, args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *MockAuthUsecase) ResolveSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) GetReceptionistBoard(ctx context.Context, session *models.Session) (*appointments.Board, error) {
	args := m.Called(ctx, session)
	board, _ := args.Get(0).(*appointments.Board)
	return board, args.Error(1)
}

func (m *MockAppointmentUsecase) ApplyStatusAction(ctx context.Context, session *models.Session, board *appointments.Board, appointmentID, action string) (*models.StatusUpdate, error) {
	args := m.Called(ctx, session, board, appointmentID, action)
	update, _ := args.Get(0).(*models.StatusUpdate)
	return update, args.Error(1)
}

func (m *MockAppointmentUsecase) UpdateStatus(ctx context.Context, session *models.Session, appointmentID, action string) (*appointments.StatusActionResult, error) {
	args := m.Called(ctx, session, appointmentID, action)
	result, _ := args.Get(0).(*appointments.StatusActionResult)
	return result, args.Error(1)
}

func (m *MockAppointmentUsecase) GetUpcomingAppointments(ctx context.Context, session *models.Session) ([]models.Appointment, error) {
	args := m.Called(ctx, session)
	list, _ := args.Get(0).([]models.Appointment)
	return list, args.Error(1)
}

func (m *MockAppointmentUsecase) GetPastAppointments(ctx context.Context, session *models.Session) ([]models.Appointment, error) {
	args := m.Called(ctx, session)
	list, _ := args.Get(0).([]models.Appointment)
	return list, args.Error(1)
}

func (m *MockAppointmentUsecase) CancelAppointment(ctx context.Context, session *models.Session, appointmentID string) ([]models.Appointment, error) {
	args := m.Called(ctx, session, appointmentID)
	list, _ := args.Get(0).([]models.Appointment)
	return list, args.Error(1)
}

type MockPatientUsecase struct {
	mock.Mock
}

func (m *MockPatientUsecase) GetProfile(ctx context.Context, session *models.Session) (*patients.ProfileView, error) {
	args := m.Called(ctx, session)
	view, _ := args.Get(0).(*patients.ProfileView)
	return view, args.Error(1)
}

func (m *MockPatientUsecase) SaveProfile(ctx context.Context, session *models.Session, request *requests.UpsertPatient) (*patients.ProfileView, error) {
	args := m.Called(ctx, session, request)
	view, _ := args.Get(0).(*patients.ProfileView)
	return view, args.Error(1)
}

type MockDirectoryUsecase struct {
	mock.Mock
}

func (m *MockDirectoryUsecase) ListDoctors(ctx context.Context, session *models.Session, query *requests.DirectoryQuery) (*directory.Page[models.Doctor], error) {
	args := m.Called(ctx, session, query)
	page, _ := args.Get(0).(*directory.Page[models.Doctor])
	return page, args.Error(1)
}

func (m *MockDirectoryUsecase) ListHospitals(ctx context.Context, session *models.Session, query *requests.DirectoryQuery) (*directory.Page[models.Hospital], error) {
	args := m.Called(ctx, session, query)
	page, _ := args.Get(0).(*directory.Page[models.Hospital])
	return page, args.Error(1)
}
