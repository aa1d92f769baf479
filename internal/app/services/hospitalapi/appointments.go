package hospitalapi

import (
	"context"
	"fmt"
	"mediconnect-portal/internal/app/contracts"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/dto/requests"
	"mediconnect-portal/internal/pkg/dto/responses"
	"net/url"
)

type appointmentClient struct {
	Transport *Transport
}

func NewAppointmentClient(transport *Transport) contracts.AppointmentClient {
	return &appointmentClient{Transport: transport}
}

type appointmentsEnvelope struct {
	Appointments []models.Appointment `json:"appointments"`
}

func (c *appointmentClient) Book(ctx context.Context, session *models.Session, doctorID string, request *requests.BookAppointment) (*responses.BookingConfirmation, error) {
	result := new(responses.BookingConfirmation)
	path := fmt.Sprintf("/appointments/%s/book", url.PathEscape(doctorID))
	err := c.Transport.doJSON(ctx, session, constvars.MethodPost, path, request, constvars.ResourceAppointments, constvars.ErrClientBookingFailed, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *appointmentClient) UpdateStatus(ctx context.Context, session *models.Session, appointmentID, action string) (*responses.StatusUpdate, error) {
	result := new(responses.StatusUpdate)
	path := fmt.Sprintf("/appointments/%s/status", url.PathEscape(appointmentID))
	payload := requests.StatusAction{Action: action}
	err := c.Transport.doJSON(ctx, session, constvars.MethodPost, path, payload, constvars.ResourceAppointments, constvars.ErrClientUpdateAppointmentStatus, result)
	if err != nil {
		return nil, err
	}
	if result.AppointmentID == "" {
		result.AppointmentID = appointmentID
	}
	return result, nil
}

// FindByDoctorID reads the doctor listing, which is a bare array rather than an envelope.
func (c *appointmentClient) FindByDoctorID(ctx context.Context, session *models.Session, doctorID string) ([]models.Appointment, error) {
	var result []models.Appointment
	err := c.Transport.doJSON(ctx, session, constvars.MethodGet, "/appointments/"+url.PathEscape(doctorID), nil, constvars.ResourceAppointments, constvars.ErrClientFetchAppointments, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *appointmentClient) FindByReceptionistEmail(ctx context.Context, session *models.Session, email string) ([]models.Appointment, error) {
	path := fmt.Sprintf("/doctors/receptionist/%s/appointments", url.PathEscape(email))
	return c.findEnvelope(ctx, session, path)
}

func (c *appointmentClient) FindUpcomingByPatientID(ctx context.Context, session *models.Session, patientID string) ([]models.Appointment, error) {
	return c.findEnvelope(ctx, session, "/appointments/patients/"+url.PathEscape(patientID))
}

func (c *appointmentClient) FindAllByPatientID(ctx context.Context, session *models.Session, patientID string) ([]models.Appointment, error) {
	return c.findEnvelope(ctx, session, "/appointments/all/patients/"+url.PathEscape(patientID))
}

func (c *appointmentClient) FindAll(ctx context.Context, session *models.Session) ([]models.Appointment, error) {
	return c.findEnvelope(ctx, session, "/appointments/ball/appointments")
}

func (c *appointmentClient) CancelByPatient(ctx context.Context, session *models.Session, appointmentID string) error {
	path := "/appointments/patients/cancel/" + url.PathEscape(appointmentID)
	return c.Transport.doJSON(ctx, session, constvars.MethodDelete, path, nil, constvars.ResourceAppointments, constvars.ErrClientCancelAppointment, nil)
}

func (c *appointmentClient) findEnvelope(ctx context.Context, session *models.Session, path string) ([]models.Appointment, error) {
	var result appointmentsEnvelope
	err := c.Transport.doJSON(ctx, session, constvars.MethodGet, path, nil, constvars.ResourceAppointments, constvars.ErrClientFetchAppointments, &result)
	if err != nil {
		return nil, err
	}
	if result.Appointments == nil {
		return []models.Appointment{}, nil
	}
	return result.Appointments, nil
}
