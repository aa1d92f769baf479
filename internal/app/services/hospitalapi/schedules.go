package hospitalapi

import (
	"context"
	"mediconnect-portal/internal/app/contracts"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/dto/requests"
	"mediconnect-portal/internal/pkg/dto/responses"
	"net/url"
)

type scheduleClient struct {
	Transport *Transport
}

func NewScheduleClient(transport *Transport) contracts.ScheduleClient {
	return &scheduleClient{Transport: transport}
}

func (c *scheduleClient) FindByDoctorID(ctx context.Context, session *models.Session, doctorID string) ([]models.ScheduleConfig, error) {
	var result []models.ScheduleConfig
	err := c.Transport.doJSON(ctx, session, constvars.MethodGet, "/schedules/"+url.PathEscape(doctorID), nil, constvars.ResourceSchedules, constvars.ErrClientFetchSchedules, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *scheduleClient) CheckDoctor(ctx context.Context, session *models.Session, userID string) (bool, error) {
	var result responses.DoctorExists
	err := c.Transport.doJSON(ctx, session, constvars.MethodGet, "/schedules/check-doctor/"+url.PathEscape(userID), nil, constvars.ResourceSchedules, constvars.ErrClientFetchSchedules, &result)
	if err != nil {
		return false, err
	}
	return result.Exists, nil
}

func (c *scheduleClient) Create(ctx context.Context, session *models.Session, request *requests.CreateSchedule) error {
	return c.Transport.doJSON(ctx, session, constvars.MethodPost, "/schedules/", request, constvars.ResourceSchedules, constvars.ErrClientSaveSchedule, nil)
}
