package businesstype

import "github.com/samber/lo"

type FeatureGroupID string

const (
	GroupEngagement FeatureGroupID = "engagement"
	GroupSales      FeatureGroupID = "sales"
	GroupShowcase   FeatureGroupID = "showcase"
	GroupTrust      FeatureGroupID = "trust"
)

type FeatureMetadata struct {
	Key           FeatureKey     `json:"key" yaml:"key"`
	Label         string         `json:"label" yaml:"label"`
	Description   string         `json:"description" yaml:"description"`
	Icon          string         `json:"icon" yaml:"icon"`
	ProOnly       bool           `json:"proOnly" yaml:"proOnly"`
	AdminNavLabel string         `json:"adminNavLabel,omitempty" yaml:"adminNavLabel,omitempty"`
	Group         FeatureGroupID `json:"group" yaml:"group"`
}

type FeatureGroup struct {
	ID    FeatureGroupID `json:"id" yaml:"id"`
	Label string         `json:"label" yaml:"label"`
	Keys  []FeatureKey   `json:"keys" yaml:"keys"`
}

var featureMetadata = []FeatureMetadata{
	{FeatureMenuSystem, "Menu", "Publish a food or drink menu with categories and prices", "book-open", false, "Menu", GroupShowcase},
	{FeatureBookingSystem, "Online Booking", "Let customers book appointments from the site", "calendar", true, "Bookings", GroupSales},
	{FeaturePortfolioGallery, "Portfolio Gallery", "Showcase photos of past work", "image", false, "Gallery", GroupShowcase},
	{FeatureQuoteRequests, "Quote Requests", "Collect quote requests with project details", "file-text", false, "Quotes", GroupSales},
	{FeatureTestimonials, "Testimonials", "Display customer reviews", "message-square", false, "Testimonials", GroupEngagement},
	{FeatureTeamMembers, "Team Members", "Introduce your staff", "users", false, "Team", GroupEngagement},
	{FeatureFAQSection, "FAQ", "Answer common questions", "help-circle", false, "FAQ", GroupEngagement},
	{FeatureEmergencyServices, "Emergency Services", "Show a 24/7 emergency banner with a call button", "siren", false, "", GroupTrust},
	{FeatureServiceAreaMap, "Service Area Map", "Show the cities and radius you serve", "map", false, "Service Areas", GroupTrust},
	{FeaturePricingDisplay, "Pricing", "Publish a price list", "tag", false, "", GroupSales},
	{FeatureBeforeAfterGallery, "Before & After", "Compare results side by side", "columns", true, "Before & After", GroupShowcase},
	{FeatureServicePackages, "Service Packages", "Bundle services into packages", "package", true, "Packages", GroupSales},
	{FeatureLicenseBadges, "License Badges", "Display license numbers and certifications", "award", false, "", GroupTrust},
	{FeatureInsuranceBadges, "Insurance Badges", "Display insurance and bonding details", "shield-check", false, "", GroupTrust},
}

var featureGroups = []FeatureGroup{
	{GroupEngagement, "Engagement", nil},
	{GroupSales, "Sales & Booking", nil},
	{GroupShowcase, "Showcase", nil},
	{GroupTrust, "Trust & Coverage", nil},
}

var featureMetaIndex = lo.Associate(featureMetadata, func(m FeatureMetadata) (FeatureKey, FeatureMetadata) {
	return m.Key, m
})

func init() {
	grouped := lo.GroupBy(featureMetadata, func(m FeatureMetadata) FeatureGroupID {
		return m.Group
	})
	for i := range featureGroups {
		featureGroups[i].Keys = lo.Map(grouped[featureGroups[i].ID], func(m FeatureMetadata, _ int) FeatureKey {
			return m.Key
		})
	}
}

// LookupFeature returns the metadata for key.
func LookupFeature(key FeatureKey) (FeatureMetadata, bool) {
	m, ok := featureMetaIndex[key]
	return m, ok
}

// AllFeatureMetadata returns metadata for every flag in canonical order.
func AllFeatureMetadata() []FeatureMetadata {
	return lo.Map(AllFeatureKeys(), func(key FeatureKey, _ int) FeatureMetadata {
		return featureMetaIndex[key]
	})
}

// FeatureGroups returns the groups in display order.
func FeatureGroups() []FeatureGroup {
	return lo.Map(featureGroups, func(g FeatureGroup, _ int) FeatureGroup {
		g.Keys = append([]FeatureKey(nil), g.Keys...)
		return g
	})
}

// NavItem is an admin sidebar entry contributed by an enabled feature.
type NavItem struct {
	Key   FeatureKey `json:"key"`
	Label string     `json:"label"`
	Icon  string     `json:"icon"`
}

// AdminNav lists the admin sections for the enabled features that have a
// nav label. Pro-only features are left out unless pro is set.
func AdminNav(features EnabledFeatures, pro bool) []NavItem {
	var items []NavItem
	for _, key := range features.Enabled() {
		m := featureMetaIndex[key]
		if m.AdminNavLabel == "" || (m.ProOnly && !pro) {
			continue
		}
		items = append(items, NavItem{Key: key, Label: m.AdminNavLabel, Icon: m.Icon})
	}
	return items
}
