package settings

import (
	"testing"

	"github.com/fekuna/omnipos-site-service/internal/businesstype"
	"github.com/fekuna/omnipos-site-service/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestLifecycle_MigratedModifiedReset(t *testing.T) {
	// Unmigrated -> Migrated
	s := Resolve(model.PartialSettings{}, map[string]any{"businessType": "contractor"})
	assert.Equal(t, businesstype.Plumber, s.BusinessType)
	assert.False(t, s.FeaturesModified)
	migrated := s

	// Migrated -> Modified
	s = SetFeature(s, businesstype.FeatureMenuSystem, true)
	assert.True(t, s.FeaturesModified)
	assert.Equal(t, []businesstype.FeatureKey{businesstype.FeatureMenuSystem}, FeatureBadges(s))

	// Flipping it back is no longer a modification.
	s = SetFeature(s, businesstype.FeatureMenuSystem, false)
	assert.False(t, s.FeaturesModified)

	// Modified -> Migrated via reset
	s = SetFeature(s, businesstype.FeatureLicenseBadges, false)
	s = ResetFeatures(s)
	assert.Equal(t, migrated.EnabledFeatures, s.EnabledFeatures)
	assert.False(t, s.FeaturesModified)
	assert.Empty(t, FeatureBadges(s))
}

func TestChangeBusinessType(t *testing.T) {
	s := Resolve(model.PartialSettings{}, map[string]any{
		"businessType": "salon",
		"hero":         map[string]any{"heading": "My Own Heading"},
	})
	s = SetFeature(s, businesstype.FeatureMenuSystem, true)

	kept := ChangeBusinessType(s, businesstype.Roofer, false)
	assert.Equal(t, businesstype.Roofer, kept.BusinessType)
	assert.Equal(t, businesstype.GetFeatureDefaults(businesstype.Roofer), kept.EnabledFeatures)
	assert.False(t, kept.FeaturesModified)
	assert.Equal(t, "My Own Heading", kept.Hero.Heading)

	applied := ChangeBusinessType(s, businesstype.Roofer, true)
	preset := businesstype.GetContentPreset(businesstype.Roofer)
	assert.Equal(t, preset.HeroHeading, applied.Hero.Heading)
	assert.Equal(t, preset.ProcessSteps, applied.ProcessSteps)
	assert.True(t, applied.EmergencyBanner.Enabled)

	assert.Equal(t, businesstype.Custom, ChangeBusinessType(s, "hovercraft", false).BusinessType)
	assert.Equal(t, businesstype.Consultant, ChangeBusinessType(s, "professional", false).BusinessType)
}
