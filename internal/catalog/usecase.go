package catalog

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-site-service/internal/catalog/dto"
)

var ErrTypeNotFound = errors.New("business type not found")

// UseCase exposes the business type registry read-only.
type UseCase interface {
	ListCategories(ctx context.Context) ([]dto.CategoryView, error)
	GetBusinessType(ctx context.Context, id string) (*dto.BusinessTypeDetail, error)
	SearchTypes(ctx context.Context, query string) ([]dto.TypeView, error)
	ListFeatures(ctx context.Context) (*dto.FeatureCatalog, error)
}
