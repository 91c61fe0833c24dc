package usecase

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-site-service/internal/businesstype"
	"github.com/fekuna/omnipos-site-service/internal/catalog"
	"github.com/fekuna/omnipos-site-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-site-service/pkg/logger"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type catalogUseCase struct {
	logger logger.ZapLogger
}

func NewCatalogUseCase(log logger.ZapLogger) catalog.UseCase {
	return &catalogUseCase{logger: log}
}

func (uc *catalogUseCase) ListCategories(_ context.Context) ([]dto.CategoryView, error) {
	return lo.Map(businesstype.Categories(), func(c businesstype.CategoryInfo, _ int) dto.CategoryView {
		return dto.CategoryView{
			ID:    c.ID,
			Label: c.Label,
			Icon:  c.Icon,
			Types: lo.Map(c.Types, func(t businesstype.BusinessType, _ int) businesstype.TypeInfo {
				return t.Info()
			}),
		}
	}), nil
}

// GetBusinessType accepts current ids and the retired legacy ids. Anything
// else is ErrTypeNotFound rather than silently becoming custom.
func (uc *catalogUseCase) GetBusinessType(_ context.Context, id string) (*dto.BusinessTypeDetail, error) {
	detail := &dto.BusinessTypeDetail{}

	t := businesstype.BusinessType(id)
	if !businesstype.IsValid(t) {
		if !businesstype.IsLegacyBusinessType(id) {
			return nil, fmt.Errorf("%w: %q", catalog.ErrTypeNotFound, id)
		}
		t = businesstype.MigrateBusinessType(id)
		detail.MigratedFrom = id
		uc.logger.Debug("legacy business type requested", zap.String("id", id), zap.String("resolved", t.String()))
	}

	category, _ := businesstype.LookupCategory(businesstype.CategoryOf(t).String())
	detail.Info = t.Info()
	detail.Category = category
	detail.FeatureDefaults = businesstype.GetFeatureDefaults(t)
	detail.ContentPreset = businesstype.GetContentPreset(t)
	return detail, nil
}

func (uc *catalogUseCase) SearchTypes(_ context.Context, query string) ([]dto.TypeView, error) {
	return lo.Map(businesstype.SearchTypes(query), func(info businesstype.TypeInfo, _ int) dto.TypeView {
		return dto.TypeView{
			TypeInfo: info,
			Legacy:   lo.Contains(businesstype.LegacyBusinessTypes, info.ID.String()),
		}
	}), nil
}

func (uc *catalogUseCase) ListFeatures(_ context.Context) (*dto.FeatureCatalog, error) {
	return &dto.FeatureCatalog{
		Features: businesstype.AllFeatureMetadata(),
		Groups:   businesstype.FeatureGroups(),
	}, nil
}
