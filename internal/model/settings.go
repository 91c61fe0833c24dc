package model

import (
	"encoding/json"

	"github.com/fekuna/omnipos-site-service/internal/businesstype"
	"github.com/jmoiron/sqlx/types"
)

// RuntimeSettings is the fully populated document a tenant site renders
// from. Top-level keys this service does not know about are kept in Extra
// and written back out unchanged.
type RuntimeSettings struct {
	BusinessName     string                       `json:"businessName"`
	Tagline          string                       `json:"tagline"`
	BusinessType     businesstype.BusinessType    `json:"businessType"`
	EnabledFeatures  businesstype.EnabledFeatures `json:"enabledFeatures"`
	FeaturesModified bool                         `json:"featuresModified"`
	Hero             HeroSettings                 `json:"hero"`
	Theme            ThemeSettings                `json:"theme"`
	Contact          ContactSettings              `json:"contact"`
	Booking          BookingSettings              `json:"booking"`
	TrustBadges      []businesstype.TrustBadge    `json:"trustBadges"`
	ProcessSteps     []businesstype.ProcessStep   `json:"processSteps"`
	WhyChooseUs      businesstype.WhyChooseUs     `json:"whyChooseUs"`
	EmergencyBanner  businesstype.EmergencyBanner `json:"emergencyBanner"`
	SocialLinks      map[string]string            `json:"socialLinks"`
	Extra            map[string]any               `json:"-"`
}

type HeroSettings struct {
	Heading    string `json:"heading"`
	Accent     string `json:"accent"`
	Subheading string `json:"subheading"`
	CTAText    string `json:"ctaText"`
	CTALink    string `json:"ctaLink"`
	ImageURL   string `json:"imageUrl"`
}

type ThemeSettings struct {
	PrimaryColor string `json:"primaryColor"`
	AccentColor  string `json:"accentColor"`
	FontFamily   string `json:"fontFamily"`
	DarkMode     bool   `json:"darkMode"`
}

type ContactSettings struct {
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	Address            string `json:"address"`
	ServiceArea        string `json:"serviceArea"`
	ServiceRadiusMiles int    `json:"serviceRadiusMiles"`
}

type BookingSettings struct {
	Provider       string `json:"provider"`
	EmbedURL       string `json:"embedUrl"`
	LeadTimeHours  int    `json:"leadTimeHours"`
	InstantConfirm bool   `json:"instantConfirm"`
}

func (s RuntimeSettings) MarshalJSON() ([]byte, error) {
	type plain RuntimeSettings
	known, err := json.Marshal(plain(s))
	if err != nil || len(s.Extra) == 0 {
		return known, err
	}

	var merged map[string]any
	if err := json.Unmarshal(known, &merged); err != nil {
		return nil, err
	}
	for k, v := range s.Extra {
		if _, taken := merged[k]; !taken {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// ToDocument returns s as a JSON-shaped map, Extra keys included.
func (s RuntimeSettings) ToDocument() (map[string]any, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// PartialSettings carries environment-derived base defaults. A nil field
// means the deployment did not set it.
type PartialSettings struct {
	BusinessName *string
	Tagline      *string
	BusinessType *string

	HeroHeading    *string
	HeroAccent     *string
	HeroSubheading *string
	HeroCTAText    *string
	HeroCTALink    *string
	HeroImageURL   *string

	PrimaryColor *string
	AccentColor  *string
	FontFamily   *string
	DarkMode     *bool

	Phone              *string
	Email              *string
	Address            *string
	ServiceArea        *string
	ServiceRadiusMiles *int

	BookingProvider       *string
	BookingEmbedURL       *string
	BookingLeadTimeHours  *int
	BookingInstantConfirm *bool

	SocialLinks map[string]string
}

// SettingsRecord is the persisted row of a tenant's settings document.
type SettingsRecord struct {
	BaseModel
	TenantID     string         `db:"tenant_id" json:"tenant_id"`
	BusinessType string         `db:"business_type" json:"business_type"`
	Document     types.JSONText `db:"document" json:"document"`
}
