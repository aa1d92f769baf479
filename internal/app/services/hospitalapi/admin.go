package hospitalapi

import (
	"context"
	"mediconnect-portal/internal/app/contracts"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/dto/requests"
)

type adminClient struct {
	Transport *Transport
}

func NewAdminClient(transport *Transport) contracts.AdminClient {
	return &adminClient{Transport: transport}
}

func (c *adminClient) CreateDoctor(ctx context.Context, session *models.Session, request *requests.CreateDoctor) error {
	return c.Transport.doJSON(ctx, session, constvars.MethodPost, "/admin/doctors", request, constvars.ResourceAdmin, constvars.ErrClientCreateDoctor, nil)
}

func (c *adminClient) CreateHospital(ctx context.Context, session *models.Session, request *requests.CreateHospital) error {
	return c.Transport.doJSON(ctx, session, constvars.MethodPost, "/admin/hospitals", request, constvars.ResourceAdmin, constvars.ErrClientCreateHospital, nil)
}

func (c *adminClient) CreateReceptionist(ctx context.Context, session *models.Session, request *requests.CreateReceptionist) error {
	return c.Transport.doJSON(ctx, session, constvars.MethodPost, "/admin/receptionists", request, constvars.ResourceAdmin, constvars.ErrClientCreateReceptionist, nil)
}
