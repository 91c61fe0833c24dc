package settings

import (
	"github.com/fekuna/omnipos-site-service/internal/businesstype"
	"github.com/fekuna/omnipos-site-service/internal/model"
)

// ResetFeatures restores the canonical flags of the current business type.
func ResetFeatures(s model.RuntimeSettings) model.RuntimeSettings {
	s.EnabledFeatures = businesstype.GetFeatureDefaults(s.BusinessType)
	s.FeaturesModified = false
	return s
}

// SetFeature switches one flag and re-derives FeaturesModified.
func SetFeature(s model.RuntimeSettings, key businesstype.FeatureKey, on bool) model.RuntimeSettings {
	s.EnabledFeatures = s.EnabledFeatures.Set(key, on)
	s.FeaturesModified = businesstype.HasModifiedFeatures(s.BusinessType, s.EnabledFeatures)
	return s
}

// ChangeBusinessType moves s to bt with that type's default flags. With
// applyContent the marketing copy is replaced by the preset of bt as well.
func ChangeBusinessType(s model.RuntimeSettings, bt businesstype.BusinessType, applyContent bool) model.RuntimeSettings {
	bt = businesstype.MigrateBusinessType(string(bt))
	s.BusinessType = bt
	s = ResetFeatures(s)
	if !applyContent {
		return s
	}

	preset := businesstype.GetContentPreset(bt)
	s.Hero.Heading = preset.HeroHeading
	s.Hero.Accent = preset.HeroAccent
	s.Hero.CTAText = preset.HeroCTA
	s.TrustBadges = preset.TrustBadges
	s.ProcessSteps = preset.ProcessSteps
	s.WhyChooseUs = preset.WhyChooseUs
	s.EmergencyBanner = preset.EmergencyBanner
	return s
}

// FeatureBadges returns the flags that differ from the type defaults, for the
// "modified" markers in the admin feature list.
func FeatureBadges(s model.RuntimeSettings) []businesstype.FeatureKey {
	return businesstype.GetModifiedFeatures(s.BusinessType, s.EnabledFeatures)
}
