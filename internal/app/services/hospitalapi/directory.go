package hospitalapi

import (
	"context"
	"mediconnect-portal/internal/app/contracts"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/constvars"
	"net/url"
)

type directoryClient struct {
	Transport *Transport
}

func NewDirectoryClient(transport *Transport) contracts.DirectoryClient {
	return &directoryClient{Transport: transport}
}

// FindDoctors lists every doctor, or only one hospital's when hospitalID is set.
func (c *directoryClient) FindDoctors(ctx context.Context, session *models.Session, hospitalID string) ([]models.Doctor, error) {
	path := "/doctors/"
	if hospitalID != "" {
		path = "/doctors/hospital/" + url.PathEscape(hospitalID)
	}

	var result []models.Doctor
	err := c.Transport.doJSON(ctx, session, constvars.MethodGet, path, nil, constvars.ResourceDoctors, constvars.ErrClientCannotProcessRequest, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *directoryClient) FindHospitals(ctx context.Context, session *models.Session) ([]models.Hospital, error) {
	var result []models.Hospital
	err := c.Transport.doJSON(ctx, session, constvars.MethodGet, "/hospital/", nil, constvars.ResourceHospitals, constvars.ErrClientCannotProcessRequest, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
