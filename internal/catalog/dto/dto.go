package dto

import "github.com/fekuna/omnipos-site-service/internal/businesstype"

type TypeView struct {
	businesstype.TypeInfo `yaml:",inline"`
	// Legacy marks ids that were already valid before the catalog grew.
	Legacy bool `json:"legacy,omitempty" yaml:"legacy,omitempty"`
}

type CategoryView struct {
	ID    businesstype.BusinessCategory `json:"id" yaml:"id"`
	Label string                        `json:"label" yaml:"label"`
	Icon  string                        `json:"icon" yaml:"icon"`
	Types []businesstype.TypeInfo       `json:"types" yaml:"types"`
}

// BusinessTypeDetail is everything a site builder needs to seed a new site
// of one business type.
type BusinessTypeDetail struct {
	Info            businesstype.TypeInfo        `json:"info" yaml:"info"`
	Category        businesstype.CategoryInfo    `json:"category" yaml:"category"`
	FeatureDefaults businesstype.EnabledFeatures `json:"featureDefaults" yaml:"featureDefaults"`
	ContentPreset   businesstype.ContentPreset   `json:"contentPreset" yaml:"contentPreset"`
	// MigratedFrom is set when the request named a retired id.
	MigratedFrom string `json:"migratedFrom,omitempty" yaml:"migratedFrom,omitempty"`
}

type FeatureCatalog struct {
	Features []businesstype.FeatureMetadata `json:"features" yaml:"features"`
	Groups   []businesstype.FeatureGroup    `json:"groups" yaml:"groups"`
}
