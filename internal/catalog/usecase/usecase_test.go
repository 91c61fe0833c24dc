package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-site-service/internal/businesstype"
	"github.com/fekuna/omnipos-site-service/internal/catalog"
	"github.com/fekuna/omnipos-site-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCategories_CoversEveryType(t *testing.T) {
	uc := NewCatalogUseCase(logger.NewNop())

	cats, err := uc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, len(businesstype.AllCategories()))

	total := 0
	for _, c := range cats {
		for _, info := range c.Types {
			assert.Equal(t, c.ID, info.Category, "type %s listed under %s", info.ID, c.ID)
		}
		total += len(c.Types)
	}
	assert.Equal(t, len(businesstype.AllTypes()), total)
}

func TestGetBusinessType(t *testing.T) {
	uc := NewCatalogUseCase(logger.NewNop())

	got, err := uc.GetBusinessType(context.Background(), "electrician")
	require.NoError(t, err)

	assert.Equal(t, businesstype.Electrician, got.Info.ID)
	assert.Equal(t, businesstype.HomeServices, got.Category.ID)
	assert.Equal(t, businesstype.GetFeatureDefaults(businesstype.Electrician), got.FeatureDefaults)
	assert.Equal(t, businesstype.GetContentPreset(businesstype.Electrician), got.ContentPreset)
	assert.Empty(t, got.MigratedFrom)
}

func TestGetBusinessType_LegacyID(t *testing.T) {
	uc := NewCatalogUseCase(logger.NewNop())

	got, err := uc.GetBusinessType(context.Background(), "contractor")
	require.NoError(t, err)
	assert.Equal(t, businesstype.Plumber, got.Info.ID)
	assert.Equal(t, "contractor", got.MigratedFrom)
}

func TestGetBusinessType_Unknown(t *testing.T) {
	uc := NewCatalogUseCase(logger.NewNop())

	_, err := uc.GetBusinessType(context.Background(), "spaceship")
	assert.ErrorIs(t, err, catalog.ErrTypeNotFound)
}

func TestSearchTypes(t *testing.T) {
	uc := NewCatalogUseCase(logger.NewNop())

	got, err := uc.SearchTypes(context.Background(), "salon")
	require.NoError(t, err)
	require.NotEmpty(t, got)

	byID := map[businesstype.BusinessType]bool{}
	for _, v := range got {
		byID[v.ID] = v.Legacy
	}
	assert.Contains(t, byID, businesstype.Salon)
	assert.True(t, byID[businesstype.Salon])
	assert.False(t, byID[businesstype.NailSalon])
}

func TestListFeatures(t *testing.T) {
	uc := NewCatalogUseCase(logger.NewNop())

	got, err := uc.ListFeatures(context.Background())
	require.NoError(t, err)
	assert.Len(t, got.Features, len(businesstype.AllFeatureKeys()))

	grouped := 0
	for _, g := range got.Groups {
		grouped += len(g.Keys)
	}
	assert.Equal(t, len(got.Features), grouped)
}
