package businesstype

import (
	"github.com/samber/lo"
	"github.com/spf13/cast"
)

// FeatureKey names one of the fourteen feature flags. Values are the JSON
// keys used in persisted settings documents.
type FeatureKey string

const (
	FeatureMenuSystem         FeatureKey = "menuSystem"
	FeatureBookingSystem      FeatureKey = "bookingSystem"
	FeaturePortfolioGallery   FeatureKey = "portfolioGallery"
	FeatureQuoteRequests      FeatureKey = "quoteRequests"
	FeatureTestimonials       FeatureKey = "testimonials"
	FeatureTeamMembers        FeatureKey = "teamMembers"
	FeatureFAQSection         FeatureKey = "faqSection"
	FeatureEmergencyServices  FeatureKey = "emergencyServices"
	FeatureServiceAreaMap     FeatureKey = "serviceAreaMap"
	FeaturePricingDisplay     FeatureKey = "pricingDisplay"
	FeatureBeforeAfterGallery FeatureKey = "beforeAfterGallery"
	FeatureServicePackages    FeatureKey = "servicePackages"
	FeatureLicenseBadges      FeatureKey = "licenseBadges"
	FeatureInsuranceBadges    FeatureKey = "insuranceBadges"
)

// LegacyFeatureKeys are the seven flags of the original settings schema.
var LegacyFeatureKeys = []FeatureKey{
	FeatureMenuSystem,
	FeatureBookingSystem,
	FeaturePortfolioGallery,
	FeatureQuoteRequests,
	FeatureTestimonials,
	FeatureTeamMembers,
	FeatureFAQSection,
}

// AddedFeatureKeys are the seven flags that legacy documents lack.
var AddedFeatureKeys = []FeatureKey{
	FeatureEmergencyServices,
	FeatureServiceAreaMap,
	FeaturePricingDisplay,
	FeatureBeforeAfterGallery,
	FeatureServicePackages,
	FeatureLicenseBadges,
	FeatureInsuranceBadges,
}

// AllFeatureKeys returns the fourteen keys in canonical order.
func AllFeatureKeys() []FeatureKey {
	return append(append([]FeatureKey(nil), LegacyFeatureKeys...), AddedFeatureKeys...)
}

// IsFeatureKey reports whether key names one of the fourteen flags.
func IsFeatureKey(key string) bool {
	return lo.Contains(AllFeatureKeys(), FeatureKey(key))
}

// EnabledFeatures is the complete flag set of a tenant site. Being a struct,
// it always carries all fourteen flags.
type EnabledFeatures struct {
	MenuSystem         bool `json:"menuSystem" yaml:"menuSystem"`
	BookingSystem      bool `json:"bookingSystem" yaml:"bookingSystem"`
	PortfolioGallery   bool `json:"portfolioGallery" yaml:"portfolioGallery"`
	QuoteRequests      bool `json:"quoteRequests" yaml:"quoteRequests"`
	Testimonials       bool `json:"testimonials" yaml:"testimonials"`
	TeamMembers        bool `json:"teamMembers" yaml:"teamMembers"`
	FAQSection         bool `json:"faqSection" yaml:"faqSection"`
	EmergencyServices  bool `json:"emergencyServices" yaml:"emergencyServices"`
	ServiceAreaMap     bool `json:"serviceAreaMap" yaml:"serviceAreaMap"`
	PricingDisplay     bool `json:"pricingDisplay" yaml:"pricingDisplay"`
	BeforeAfterGallery bool `json:"beforeAfterGallery" yaml:"beforeAfterGallery"`
	ServicePackages    bool `json:"servicePackages" yaml:"servicePackages"`
	LicenseBadges      bool `json:"licenseBadges" yaml:"licenseBadges"`
	InsuranceBadges    bool `json:"insuranceBadges" yaml:"insuranceBadges"`
}

// Get returns the flag named by key. Unknown keys read as false.
func (f EnabledFeatures) Get(key FeatureKey) bool {
	switch key {
	case FeatureMenuSystem:
		return f.MenuSystem
	case FeatureBookingSystem:
		return f.BookingSystem
	case FeaturePortfolioGallery:
		return f.PortfolioGallery
	case FeatureQuoteRequests:
		return f.QuoteRequests
	case FeatureTestimonials:
		return f.Testimonials
	case FeatureTeamMembers:
		return f.TeamMembers
	case FeatureFAQSection:
		return f.FAQSection
	case FeatureEmergencyServices:
		return f.EmergencyServices
	case FeatureServiceAreaMap:
		return f.ServiceAreaMap
	case FeaturePricingDisplay:
		return f.PricingDisplay
	case FeatureBeforeAfterGallery:
		return f.BeforeAfterGallery
	case FeatureServicePackages:
		return f.ServicePackages
	case FeatureLicenseBadges:
		return f.LicenseBadges
	case FeatureInsuranceBadges:
		return f.InsuranceBadges
	}
	return false
}

// Set returns a copy of f with the flag named by key set to on. Unknown keys
// leave f unchanged.
func (f EnabledFeatures) Set(key FeatureKey, on bool) EnabledFeatures {
	switch key {
	case FeatureMenuSystem:
		f.MenuSystem = on
	case FeatureBookingSystem:
		f.BookingSystem = on
	case FeaturePortfolioGallery:
		f.PortfolioGallery = on
	case FeatureQuoteRequests:
		f.QuoteRequests = on
	case FeatureTestimonials:
		f.Testimonials = on
	case FeatureTeamMembers:
		f.TeamMembers = on
	case FeatureFAQSection:
		f.FAQSection = on
	case FeatureEmergencyServices:
		f.EmergencyServices = on
	case FeatureServiceAreaMap:
		f.ServiceAreaMap = on
	case FeaturePricingDisplay:
		f.PricingDisplay = on
	case FeatureBeforeAfterGallery:
		f.BeforeAfterGallery = on
	case FeatureServicePackages:
		f.ServicePackages = on
	case FeatureLicenseBadges:
		f.LicenseBadges = on
	case FeatureInsuranceBadges:
		f.InsuranceBadges = on
	}
	return f
}

// ToMap returns the flags as a JSON-shaped document with all fourteen keys.
func (f EnabledFeatures) ToMap() map[string]any {
	out := make(map[string]any, 14)
	for _, key := range AllFeatureKeys() {
		out[string(key)] = f.Get(key)
	}
	return out
}

// Enabled returns the keys that are on, in canonical order.
func (f EnabledFeatures) Enabled() []FeatureKey {
	return lo.Filter(AllFeatureKeys(), func(key FeatureKey, _ int) bool {
		return f.Get(key)
	})
}

// FeaturesFromMap reads a full-shape features document. Keys that are
// missing, null or not coercible to a boolean take their value from
// fallback.
func FeaturesFromMap(doc map[string]any, fallback EnabledFeatures) EnabledFeatures {
	out := fallback
	for _, key := range AllFeatureKeys() {
		raw, ok := doc[string(key)]
		if !ok || raw == nil {
			continue
		}
		v, err := cast.ToBoolE(raw)
		if err != nil {
			continue
		}
		out = out.Set(key, v)
	}
	return out
}

// GetFeatureDefaults returns the canonical flag set for t. Unregistered
// values get the custom defaults.
func GetFeatureDefaults(t BusinessType) EnabledFeatures {
	if f, ok := featureDefaults(t); ok {
		return f
	}
	f, _ := featureDefaults(Custom)
	return f
}

// featureDefaults holds one case per registered type; ok is false only for
// values outside the registry.
func featureDefaults(t BusinessType) (EnabledFeatures, bool) {
	switch t {
	case Restaurant:
		return EnabledFeatures{
			MenuSystem:       true,
			BookingSystem:    true,
			PortfolioGallery: true,
			Testimonials:     true,
			TeamMembers:      true,
			FAQSection:       true,
		}, true
	case Cafe, Bakery, Bar, Brewery:
		return EnabledFeatures{
			MenuSystem:       true,
			PortfolioGallery: true,
			Testimonials:     true,
			FAQSection:       true,
		}, true
	case FoodTruck:
		return EnabledFeatures{
			MenuSystem:       true,
			PortfolioGallery: true,
			Testimonials:     true,
			FAQSection:       true,
			ServiceAreaMap:   true,
		}, true
	case Catering:
		return EnabledFeatures{
			MenuSystem:       true,
			BookingSystem:    true,
			PortfolioGallery: true,
			QuoteRequests:    true,
			Testimonials:     true,
			TeamMembers:      true,
			FAQSection:       true,
			PricingDisplay:   true,
			ServicePackages:  true,
		}, true

	case Salon, Barbershop, NailSalon, Spa:
		return EnabledFeatures{
			BookingSystem:    true,
			PortfolioGallery: true,
			Testimonials:     true,
			TeamMembers:      true,
			FAQSection:       true,
			PricingDisplay:   true,
			ServicePackages:  true,
		}, true
	case Massage, Esthetician:
		return EnabledFeatures{
			BookingSystem:   true,
			Testimonials:    true,
			TeamMembers:     true,
			FAQSection:      true,
			PricingDisplay:  true,
			ServicePackages: true,
			LicenseBadges:   true,
		}, true
	case Tattoo:
		return EnabledFeatures{
			BookingSystem:    true,
			PortfolioGallery: true,
			Testimonials:     true,
			TeamMembers:      true,
			FAQSection:       true,
			LicenseBadges:    true,
		}, true

	case Plumber, Electrician, HVAC:
		return EnabledFeatures{
			BookingSystem:     true,
			QuoteRequests:     true,
			Testimonials:      true,
			TeamMembers:       true,
			FAQSection:        true,
			EmergencyServices: true,
			ServiceAreaMap:    true,
			LicenseBadges:     true,
			InsuranceBadges:   true,
		}, true
	case Roofer:
		return EnabledFeatures{
			PortfolioGallery:   true,
			QuoteRequests:      true,
			Testimonials:       true,
			FAQSection:         true,
			EmergencyServices:  true,
			ServiceAreaMap:     true,
			BeforeAfterGallery: true,
			LicenseBadges:      true,
			InsuranceBadges:    true,
		}, true
	case PestControl:
		return EnabledFeatures{
			BookingSystem:   true,
			QuoteRequests:   true,
			Testimonials:    true,
			FAQSection:      true,
			ServiceAreaMap:  true,
			ServicePackages: true,
			LicenseBadges:   true,
			InsuranceBadges: true,
		}, true
	case Landscaper, Painter:
		return EnabledFeatures{
			PortfolioGallery:   true,
			QuoteRequests:      true,
			Testimonials:       true,
			FAQSection:         true,
			ServiceAreaMap:     true,
			BeforeAfterGallery: true,
			InsuranceBadges:    true,
		}, true
	case Cleaning, Handyman:
		return EnabledFeatures{
			BookingSystem:   true,
			QuoteRequests:   true,
			Testimonials:    true,
			FAQSection:      true,
			ServiceAreaMap:  true,
			PricingDisplay:  true,
			ServicePackages: true,
			InsuranceBadges: true,
		}, true

	case GeneralContractor, Remodeler, Flooring:
		return EnabledFeatures{
			PortfolioGallery:   true,
			QuoteRequests:      true,
			Testimonials:       true,
			TeamMembers:        true,
			FAQSection:         true,
			ServiceAreaMap:     true,
			BeforeAfterGallery: true,
			LicenseBadges:      true,
			InsuranceBadges:    true,
		}, true
	case PoolService:
		return EnabledFeatures{
			BookingSystem:      true,
			QuoteRequests:      true,
			Testimonials:       true,
			FAQSection:         true,
			ServiceAreaMap:     true,
			BeforeAfterGallery: true,
			ServicePackages:    true,
			InsuranceBadges:    true,
		}, true
	case Moving:
		return EnabledFeatures{
			QuoteRequests:   true,
			Testimonials:    true,
			FAQSection:      true,
			ServiceAreaMap:  true,
			PricingDisplay:  true,
			ServicePackages: true,
			LicenseBadges:   true,
			InsuranceBadges: true,
		}, true

	case Consultant, MarketingAgency:
		return EnabledFeatures{
			BookingSystem:    true,
			PortfolioGallery: true,
			QuoteRequests:    true,
			Testimonials:     true,
			TeamMembers:      true,
			FAQSection:       true,
			ServicePackages:  true,
		}, true
	case Accountant, Lawyer, FinancialAdvisor, InsuranceAgent:
		return EnabledFeatures{
			BookingSystem: true,
			Testimonials:  true,
			TeamMembers:   true,
			FAQSection:    true,
			LicenseBadges: true,
		}, true
	case RealEstate:
		return EnabledFeatures{
			PortfolioGallery: true,
			Testimonials:     true,
			TeamMembers:      true,
			FAQSection:       true,
			ServiceAreaMap:   true,
			LicenseBadges:    true,
		}, true

	case Dentist, Chiropractor, PhysicalTherapy, Optometrist:
		return EnabledFeatures{
			BookingSystem:   true,
			Testimonials:    true,
			TeamMembers:     true,
			FAQSection:      true,
			LicenseBadges:   true,
			InsuranceBadges: true,
		}, true
	case Veterinarian:
		return EnabledFeatures{
			BookingSystem:     true,
			Testimonials:      true,
			TeamMembers:       true,
			FAQSection:        true,
			EmergencyServices: true,
			LicenseBadges:     true,
		}, true

	case Gym, YogaStudio:
		return EnabledFeatures{
			BookingSystem:   true,
			Testimonials:    true,
			TeamMembers:     true,
			FAQSection:      true,
			PricingDisplay:  true,
			ServicePackages: true,
		}, true
	case MartialArts, DanceStudio:
		return EnabledFeatures{
			BookingSystem:    true,
			PortfolioGallery: true,
			Testimonials:     true,
			TeamMembers:      true,
			FAQSection:       true,
			PricingDisplay:   true,
			ServicePackages:  true,
		}, true
	case PersonalTrainer:
		return EnabledFeatures{
			BookingSystem:      true,
			Testimonials:       true,
			FAQSection:         true,
			PricingDisplay:     true,
			BeforeAfterGallery: true,
			ServicePackages:    true,
			LicenseBadges:      true,
		}, true

	case AutoRepair:
		return EnabledFeatures{
			BookingSystem:   true,
			QuoteRequests:   true,
			Testimonials:    true,
			TeamMembers:     true,
			FAQSection:      true,
			PricingDisplay:  true,
			LicenseBadges:   true,
			InsuranceBadges: true,
		}, true
	case AutoDetailing:
		return EnabledFeatures{
			BookingSystem:      true,
			PortfolioGallery:   true,
			Testimonials:       true,
			FAQSection:         true,
			ServiceAreaMap:     true,
			PricingDisplay:     true,
			BeforeAfterGallery: true,
			ServicePackages:    true,
		}, true
	case CarWash:
		return EnabledFeatures{
			BookingSystem:      true,
			PortfolioGallery:   true,
			Testimonials:       true,
			FAQSection:         true,
			PricingDisplay:     true,
			BeforeAfterGallery: true,
			ServicePackages:    true,
		}, true
	case Towing:
		return EnabledFeatures{
			Testimonials:      true,
			FAQSection:        true,
			EmergencyServices: true,
			ServiceAreaMap:    true,
			PricingDisplay:    true,
			LicenseBadges:     true,
			InsuranceBadges:   true,
		}, true

	case Photographer, Videographer:
		return EnabledFeatures{
			BookingSystem:    true,
			PortfolioGallery: true,
			QuoteRequests:    true,
			Testimonials:     true,
			FAQSection:       true,
			PricingDisplay:   true,
			ServicePackages:  true,
		}, true
	case EventPlanner:
		return EnabledFeatures{
			BookingSystem:    true,
			PortfolioGallery: true,
			QuoteRequests:    true,
			Testimonials:     true,
			TeamMembers:      true,
			FAQSection:       true,
			ServicePackages:  true,
		}, true
	case DJ:
		return EnabledFeatures{
			BookingSystem:    true,
			PortfolioGallery: true,
			QuoteRequests:    true,
			Testimonials:     true,
			FAQSection:       true,
			ServiceAreaMap:   true,
			ServicePackages:  true,
		}, true
	case Florist:
		return EnabledFeatures{
			PortfolioGallery: true,
			QuoteRequests:    true,
			Testimonials:     true,
			FAQSection:       true,
			ServiceAreaMap:   true,
			PricingDisplay:   true,
		}, true

	case PetGrooming:
		return EnabledFeatures{
			BookingSystem:      true,
			PortfolioGallery:   true,
			Testimonials:       true,
			TeamMembers:        true,
			FAQSection:         true,
			PricingDisplay:     true,
			BeforeAfterGallery: true,
			ServicePackages:    true,
		}, true
	case Tutoring:
		return EnabledFeatures{
			BookingSystem:   true,
			Testimonials:    true,
			TeamMembers:     true,
			FAQSection:      true,
			PricingDisplay:  true,
			ServicePackages: true,
		}, true
	case Custom:
		// Unclassified businesses get nearly everything; menu and emergency
		// banner only make sense for specific industries.
		return EnabledFeatures{
			BookingSystem:      true,
			PortfolioGallery:   true,
			QuoteRequests:      true,
			Testimonials:       true,
			TeamMembers:        true,
			FAQSection:         true,
			ServiceAreaMap:     true,
			PricingDisplay:     true,
			BeforeAfterGallery: true,
			ServicePackages:    true,
			LicenseBadges:      true,
			InsuranceBadges:    true,
		}, true
	}
	return EnabledFeatures{}, false
}
