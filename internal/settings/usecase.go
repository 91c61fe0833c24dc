package settings

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-site-service/internal/model"
	"github.com/fekuna/omnipos-site-service/internal/settings/dto"
)

var (
	ErrTenantRequired  = errors.New("tenant id is required")
	ErrUnknownFeature  = errors.New("unknown feature key")
	ErrInvalidDocument = errors.New("settings document must be a JSON object")
)

type UseCase interface {
	GetSettings(ctx context.Context, tenantID string) (*model.RuntimeSettings, error)
	UpdateSettings(ctx context.Context, input *dto.UpdateSettingsInput) (*model.RuntimeSettings, error)
	SetFeature(ctx context.Context, input *dto.SetFeatureInput) (*model.RuntimeSettings, error)
	ResetFeatures(ctx context.Context, tenantID string) (*model.RuntimeSettings, error)
	ChangeBusinessType(ctx context.Context, input *dto.ChangeBusinessTypeInput) (*model.RuntimeSettings, error)
	InvalidateCache(ctx context.Context, tenantID string) error
}
