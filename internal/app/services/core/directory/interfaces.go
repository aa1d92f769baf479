package directory

import (
	"context"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/dto/requests"
)

type DirectoryUsecase interface {
	ListDoctors(ctx context.Context, session *models.Session, query *requests.DirectoryQuery) (*Page[models.Doctor], error)
	ListHospitals(ctx context.Context, session *models.Session, query *requests.DirectoryQuery) (*Page[models.Hospital], error)
}

// Page is one page of a filtered, name-sorted listing. Total counts every
// match, not just the returned items.
type Page[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}
