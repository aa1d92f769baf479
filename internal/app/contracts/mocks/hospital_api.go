package mocks

import (
	"context"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/dto/requests"
	"mediconnect-portal/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type AuthClient struct {
	mock.Mock
}

func (m *AuthClient) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, request)
	login, _ := args.Get(0).(*responses.Login)
	return login, args.Error(1)
}

func (m *AuthClient) GetUserID(ctx context.Context, session *models.Session, email string) (string, error) {
	args := m.Called(ctx, session, email)
	return args.String(0), args.Error(1)
}

func (m *AuthClient) FindAllUsers(ctx context.Context, session *models.Session) ([]models.User, error) {
	args := m.Called(ctx, session)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

type ScheduleClient struct {
	mock.Mock
}

func (m *ScheduleClient) FindByDoctorID(ctx context.Context, session *models.Session, doctorID string) ([]models.ScheduleConfig, error) {
	args := m.Called(ctx, session, doctorID)
	schedules, _ := args.Get(0).([]models.ScheduleConfig)
	return schedules, args.Error(1)
}

func (m *ScheduleClient) CheckDoctor(ctx context.Context, session *models.Session, userID string) (bool, error) {
	args := m.Called(ctx, session, userID)
	return args.Bool(0), args.Error(1)
}

func (m *ScheduleClient) Create(ctx context.Context, session *models.Session, request *requests.CreateSchedule) error {
	args := m.Called(ctx, session, request)
	return args.Error(0)
}

type SlotClient struct {
	mock.Mock
}

func (m *SlotClient) FindByDoctorAndDate(ctx context.Context, session *models.Session, doctorID, date string) ([]responses.Slot, error) {
	args := m.Called(ctx, session, doctorID, date)
	slots, _ := args.Get(0).([]responses.Slot)
	return slots, args.Error(1)
}

type AppointmentClient struct {
	mock.Mock
}

func (m *AppointmentClient) Book(ctx context.Context, session *models.Session, doctorID string, request *requests.BookAppointment) (*responses.BookingConfirmation, error) {
	args := m.Called(ctx, session, doctorID, request)
	confirmation, _ := args.Get(0).(*responses.BookingConfirmation)
	return confirmation, args.Error(1)
}

func (m *AppointmentClient) UpdateStatus(ctx context.Context, session *models.Session, appointmentID, action string) (*responses.StatusUpdate, error) {
	args := m.Called(ctx, session, appointmentID, action)
	update, _ := args.Get(0).(*responses.StatusUpdate)
	return update, args.Error(1)
}

func (m *AppointmentClient) FindByDoctorID(ctx context.Context, session *models.Session, doctorID string) ([]models.Appointment, error) {
	args := m.Called(ctx, session, doctorID)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *AppointmentClient) FindByReceptionistEmail(ctx context.Context, session *models.Session, email string) ([]models.Appointment, error) {
	args := m.Called(ctx, session, email)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *AppointmentClient) FindUpcomingByPatientID(ctx context.Context, session *models.Session, patientID string) ([]models.Appointment, error) {
	args := m.Called(ctx, session, patientID)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *AppointmentClient) FindAllByPatientID(ctx context.Context, session *models.Session, patientID string) ([]models.Appointment, error) {
	args := m.Called(ctx, session, patientID)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *AppointmentClient) CancelByPatient(ctx context.Context, session *models.Session, appointmentID string) error {
	args := m.Called(ctx, session, appointmentID)
	return args.Error(0)
}

func (m *AppointmentClient) FindAll(ctx context.Context, session *models.Session) ([]models.Appointment, error) {
	args := m.Called(ctx, session)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

type PatientClient struct {
	mock.Mock
}

func (m *PatientClient) FindByEmail(ctx context.Context, session *models.Session, email string) (*models.PatientDemographics, error) {
	args := m.Called(ctx, session, email)
	patient, _ := args.Get(0).(*models.PatientDemographics)
	return patient, args.Error(1)
}

func (m *PatientClient) Upsert(ctx context.Context, session *models.Session, request *requests.UpsertPatient) (*models.PatientDemographics, error) {
	args := m.Called(ctx, session, request)
	patient, _ := args.Get(0).(*models.PatientDemographics)
	return patient, args.Error(1)
}

type DirectoryClient struct {
	mock.Mock
}

func (m *DirectoryClient) FindDoctors(ctx context.Context, session *models.Session, hospitalID string) ([]models.Doctor, error) {
	args := m.Called(ctx, session, hospitalID)
	doctors, _ := args.Get(0).([]models.Doctor)
	return doctors, args.Error(1)
}

func (m *DirectoryClient) FindHospitals(ctx context.Context, session *models.Session) ([]models.Hospital, error) {
	args := m.Called(ctx, session)
	hospitals, _ := args.Get(0).([]models.Hospital)
	return hospitals, args.Error(1)
}

type AdminClient struct {
	mock.Mock
}

func (m *AdminClient) CreateDoctor(ctx context.Context, session *models.Session, request *requests.CreateDoctor) error {
	return m.Called(ctx, session, request).Error(0)
}

func (m *AdminClient) CreateHospital(ctx context.Context, session *models.Session, request *requests.CreateHospital) error {
	return m.Called(ctx, session, request).Error(0)
}

func (m *AdminClient) CreateReceptionist(ctx context.Context, session *models.Session, request *requests.CreateReceptionist) error {
	return m.Called(ctx, session, request).Error(0)
}
