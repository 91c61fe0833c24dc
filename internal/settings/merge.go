package settings

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/fekuna/omnipos-site-service/internal/businesstype"
	"github.com/fekuna/omnipos-site-service/internal/model"
	"github.com/spf13/cast"
)

// policy decides when a persisted value replaces the default.
type policy int

const (
	// replaceUnlessNullish keeps the default when the key is missing or
	// null. Used for strings, objects and arrays.
	replaceUnlessNullish policy = iota
	// replaceUnlessMissing keeps the default only when the key is missing.
	// Used for booleans and numbers, so a stored false or 0 always wins and
	// a stored null reads as the zero value.
	replaceUnlessMissing
)

type mergeRule struct {
	path   string
	policy policy
	// set stores raw into s. It returns false when raw cannot be coerced,
	// in which case the default stays.
	set func(s *model.RuntimeSettings, raw any) bool
}

func stringRule(path string, field func(s *model.RuntimeSettings) *string) mergeRule {
	return mergeRule{path: path, policy: replaceUnlessNullish, set: func(s *model.RuntimeSettings, raw any) bool {
		v, err := cast.ToStringE(raw)
		if err != nil {
			return false
		}
		*field(s) = v
		return true
	}}
}

func boolRule(path string, field func(s *model.RuntimeSettings) *bool) mergeRule {
	return mergeRule{path: path, policy: replaceUnlessMissing, set: func(s *model.RuntimeSettings, raw any) bool {
		v, err := cast.ToBoolE(raw)
		if err != nil {
			return false
		}
		*field(s) = v
		return true
	}}
}

func intRule(path string, field func(s *model.RuntimeSettings) *int) mergeRule {
	return mergeRule{path: path, policy: replaceUnlessMissing, set: func(s *model.RuntimeSettings, raw any) bool {
		v, ok := toInt(raw)
		if !ok {
			return false
		}
		*field(s) = v
		return true
	}}
}

// toInt accepts whole numbers only. Strings are read in base 10 so a
// leading zero is not taken as octal.
func toInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case nil:
		return 0, true
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		if v < math.MinInt || v > math.MaxInt {
			return 0, false
		}
		return int(v), true
	case float32:
		return floatToInt(float64(v))
	case float64:
		return floatToInt(v)
	case json.Number:
		n, err := strconv.Atoi(v.String())
		return n, err == nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int, bool) {
	// float64(math.MaxInt) rounds up to 2^63, which does not fit.
	if math.Trunc(f) != f || f < math.MinInt || f >= math.MaxInt {
		return 0, false
	}
	return int(f), true
}

// jsonRule decodes objects and arrays through encoding/json so nested
// shapes are validated field by field.
func jsonRule[T any](path string, field func(s *model.RuntimeSettings) *T) mergeRule {
	return mergeRule{path: path, policy: replaceUnlessNullish, set: func(s *model.RuntimeSettings, raw any) bool {
		data, err := json.Marshal(raw)
		if err != nil {
			return false
		}
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return false
		}
		*field(s) = v
		return true
	}}
}

// mergeRules is the per-field merge contract for everything except
// businessType, enabledFeatures and featuresModified, which Resolve handles
// itself.
var mergeRules = []mergeRule{
	stringRule("businessName", func(s *model.RuntimeSettings) *string { return &s.BusinessName }),
	stringRule("tagline", func(s *model.RuntimeSettings) *string { return &s.Tagline }),

	stringRule("hero.heading", func(s *model.RuntimeSettings) *string { return &s.Hero.Heading }),
	stringRule("hero.accent", func(s *model.RuntimeSettings) *string { return &s.Hero.Accent }),
	stringRule("hero.subheading", func(s *model.RuntimeSettings) *string { return &s.Hero.Subheading }),
	stringRule("hero.ctaText", func(s *model.RuntimeSettings) *string { return &s.Hero.CTAText }),
	stringRule("hero.ctaLink", func(s *model.RuntimeSettings) *string { return &s.Hero.CTALink }),
	stringRule("hero.imageUrl", func(s *model.RuntimeSettings) *string { return &s.Hero.ImageURL }),

	stringRule("theme.primaryColor", func(s *model.RuntimeSettings) *string { return &s.Theme.PrimaryColor }),
	stringRule("theme.accentColor", func(s *model.RuntimeSettings) *string { return &s.Theme.AccentColor }),
	stringRule("theme.fontFamily", func(s *model.RuntimeSettings) *string { return &s.Theme.FontFamily }),
	boolRule("theme.darkMode", func(s *model.RuntimeSettings) *bool { return &s.Theme.DarkMode }),

	stringRule("contact.phone", func(s *model.RuntimeSettings) *string { return &s.Contact.Phone }),
	stringRule("contact.email", func(s *model.RuntimeSettings) *string { return &s.Contact.Email }),
	stringRule("contact.address", func(s *model.RuntimeSettings) *string { return &s.Contact.Address }),
	stringRule("contact.serviceArea", func(s *model.RuntimeSettings) *string { return &s.Contact.ServiceArea }),
	intRule("contact.serviceRadiusMiles", func(s *model.RuntimeSettings) *int { return &s.Contact.ServiceRadiusMiles }),

	stringRule("booking.provider", func(s *model.RuntimeSettings) *string { return &s.Booking.Provider }),
	stringRule("booking.embedUrl", func(s *model.RuntimeSettings) *string { return &s.Booking.EmbedURL }),
	intRule("booking.leadTimeHours", func(s *model.RuntimeSettings) *int { return &s.Booking.LeadTimeHours }),
	boolRule("booking.instantConfirm", func(s *model.RuntimeSettings) *bool { return &s.Booking.InstantConfirm }),

	jsonRule("trustBadges", func(s *model.RuntimeSettings) *[]businesstype.TrustBadge { return &s.TrustBadges }),
	jsonRule("processSteps", func(s *model.RuntimeSettings) *[]businesstype.ProcessStep { return &s.ProcessSteps }),

	stringRule("whyChooseUs.title", func(s *model.RuntimeSettings) *string { return &s.WhyChooseUs.Title }),
	stringRule("whyChooseUs.heading", func(s *model.RuntimeSettings) *string { return &s.WhyChooseUs.Heading }),
	stringRule("whyChooseUs.text", func(s *model.RuntimeSettings) *string { return &s.WhyChooseUs.Text }),

	stringRule("emergencyBanner.text", func(s *model.RuntimeSettings) *string { return &s.EmergencyBanner.Text }),
	boolRule("emergencyBanner.enabled", func(s *model.RuntimeSettings) *bool { return &s.EmergencyBanner.Enabled }),

	jsonRule("socialLinks", func(s *model.RuntimeSettings) *map[string]string { return &s.SocialLinks }),
}

const (
	keyBusinessType     = "businessType"
	keyEnabledFeatures  = "enabledFeatures"
	keyFeaturesModified = "featuresModified"
)

// knownTopLevel lists the top-level keys owned by RuntimeSettings; anything
// else in a persisted document is carried through in Extra.
var knownTopLevel = func() map[string]bool {
	known := map[string]bool{
		keyBusinessType:     true,
		keyEnabledFeatures:  true,
		keyFeaturesModified: true,
	}
	for _, r := range mergeRules {
		top, _, _ := strings.Cut(r.path, ".")
		known[top] = true
	}
	return known
}()

// Resolve builds the complete settings document for a tenant from the
// deployment defaults in base and the stored document persisted. persisted
// may be nil, a decoded JSON object, raw JSON bytes, or a legacy-shaped
// document; it is never rejected.
func Resolve(base model.PartialSettings, persisted any) model.RuntimeSettings {
	doc := toDocument(persisted)

	bt := resolveBusinessType(base, doc)
	features := resolveFeatures(bt, doc)

	s := baseline(base, bt)
	s.EnabledFeatures = features

	for _, r := range mergeRules {
		raw, present := lookup(doc, r.path)
		if !present {
			continue
		}
		if raw == nil && r.policy == replaceUnlessNullish {
			continue
		}
		r.set(&s, raw)
	}

	// A stored true is sticky. A stored false cannot hide features that
	// actually differ from the business type defaults.
	s.FeaturesModified = businesstype.HasModifiedFeatures(bt, features)
	if raw, ok := doc[keyFeaturesModified]; ok && raw != nil {
		if v, err := cast.ToBoolE(raw); err == nil && v {
			s.FeaturesModified = true
		}
	}

	for k, v := range doc {
		if !knownTopLevel[k] {
			if s.Extra == nil {
				s.Extra = make(map[string]any)
			}
			s.Extra[k] = v
		}
	}
	return s
}

func resolveBusinessType(base model.PartialSettings, doc map[string]any) businesstype.BusinessType {
	if raw, ok := doc[keyBusinessType]; ok && raw != nil {
		if id, err := cast.ToStringE(raw); err == nil && id != "" {
			return businesstype.MigrateBusinessType(id)
		}
	}
	if base.BusinessType != nil {
		return businesstype.MigrateBusinessType(*base.BusinessType)
	}
	return businesstype.Custom
}

func resolveFeatures(bt businesstype.BusinessType, doc map[string]any) businesstype.EnabledFeatures {
	defaults := businesstype.GetFeatureDefaults(bt)
	stored, ok := doc[keyEnabledFeatures].(map[string]any)
	if !ok {
		return defaults
	}
	if businesstype.IsLegacyFeatureShape(stored) {
		return businesstype.MigrateLegacyFeatures(stored)
	}
	return businesstype.FeaturesFromMap(stored, defaults)
}

// baseline is the document before persisted values are applied: deployment
// defaults where set, otherwise the content preset of bt.
func baseline(base model.PartialSettings, bt businesstype.BusinessType) model.RuntimeSettings {
	preset := businesstype.GetContentPreset(bt)

	s := model.RuntimeSettings{
		BusinessName: deref(base.BusinessName, ""),
		Tagline:      deref(base.Tagline, ""),
		BusinessType: bt,
		Hero: model.HeroSettings{
			Heading:    deref(base.HeroHeading, preset.HeroHeading),
			Accent:     deref(base.HeroAccent, preset.HeroAccent),
			Subheading: deref(base.HeroSubheading, ""),
			CTAText:    deref(base.HeroCTAText, preset.HeroCTA),
			CTALink:    deref(base.HeroCTALink, "#contact"),
			ImageURL:   deref(base.HeroImageURL, ""),
		},
		Theme: model.ThemeSettings{
			PrimaryColor: deref(base.PrimaryColor, "#1e40af"),
			AccentColor:  deref(base.AccentColor, "#f59e0b"),
			FontFamily:   deref(base.FontFamily, "Inter"),
			DarkMode:     deref(base.DarkMode, false),
		},
		Contact: model.ContactSettings{
			Phone:              deref(base.Phone, ""),
			Email:              deref(base.Email, ""),
			Address:            deref(base.Address, ""),
			ServiceArea:        deref(base.ServiceArea, ""),
			ServiceRadiusMiles: deref(base.ServiceRadiusMiles, 25),
		},
		Booking: model.BookingSettings{
			Provider:       deref(base.BookingProvider, ""),
			EmbedURL:       deref(base.BookingEmbedURL, ""),
			LeadTimeHours:  deref(base.BookingLeadTimeHours, 24),
			InstantConfirm: deref(base.BookingInstantConfirm, false),
		},
		TrustBadges:     preset.TrustBadges,
		ProcessSteps:    preset.ProcessSteps,
		WhyChooseUs:     preset.WhyChooseUs,
		EmergencyBanner: preset.EmergencyBanner,
		SocialLinks:     map[string]string{},
	}
	for k, v := range base.SocialLinks {
		s.SocialLinks[k] = v
	}
	return s
}

func deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

// toDocument normalizes the persisted input into a JSON object. Anything
// that is not an object reads as an empty document.
func toDocument(persisted any) map[string]any {
	switch v := persisted.(type) {
	case map[string]any:
		return v
	case []byte:
		return decodeDocument(v)
	case json.RawMessage:
		return decodeDocument(v)
	case string:
		return decodeDocument([]byte(v))
	case model.RuntimeSettings:
		if doc, err := v.ToDocument(); err == nil {
			return doc
		}
	}
	return map[string]any{}
}

func decodeDocument(data []byte) map[string]any {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil || doc == nil {
		return map[string]any{}
	}
	return doc
}

// lookup walks a dotted path. A null or non-object parent makes the leaf
// absent.
func lookup(doc map[string]any, path string) (any, bool) {
	cur := doc
	parts := strings.Split(path, ".")
	for i, part := range parts {
		v, ok := cur[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return v, true
		}
		next, ok := v.(map[string]any)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return nil, false
}
