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

type authClient struct {
	Transport *Transport
}

func NewAuthClient(transport *Transport) contracts.AuthClient {
	return &authClient{Transport: transport}
}

func (c *authClient) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	result := new(responses.Login)
	err := c.Transport.doJSON(ctx, nil, constvars.MethodPost, "/api/auth/login", request, constvars.ResourceAuth, constvars.ErrClientLoginFailed, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *authClient) GetUserID(ctx context.Context, session *models.Session, email string) (string, error) {
	var result responses.UserID
	err := c.Transport.doJSON(ctx, session, constvars.MethodGet, "/api/auth/get-id/"+url.PathEscape(email), nil, constvars.ResourceAuth, constvars.ErrClientCannotProcessRequest, &result)
	if err != nil {
		return "", err
	}
	return result.ID, nil
}

func (c *authClient) FindAllUsers(ctx context.Context, session *models.Session) ([]models.User, error) {
	var result struct {
		Users []models.User `json:"users"`
	}
	err := c.Transport.doJSON(ctx, session, constvars.MethodGet, "/api/auth/all/users", nil, constvars.ResourceUsers, constvars.ErrClientCannotProcessRequest, &result)
	if err != nil {
		return nil, err
	}
	return result.Users, nil
}
