package businesstype

import "github.com/samber/lo"

// legacyTypeRenames maps identifiers of the original seven-type schema that
// no longer exist. The remaining legacy ids (restaurant, catering, salon,
// cleaning, custom) are still current and pass through unchanged.
var legacyTypeRenames = map[string]BusinessType{
	"contractor":   Plumber,
	"professional": Consultant,
}

// LegacyBusinessTypes are the identifiers the original schema allowed.
var LegacyBusinessTypes = []string{
	"restaurant",
	"catering",
	"contractor",
	"salon",
	"professional",
	"cleaning",
	"custom",
}

// IsLegacyBusinessType reports whether id is a legacy identifier that is not
// also a current business type.
func IsLegacyBusinessType(id string) bool {
	_, renamed := legacyTypeRenames[id]
	return renamed && !IsValid(BusinessType(id))
}

// MigrateBusinessType maps any identifier to a current business type.
// Renamed legacy ids are translated, current ids pass through and anything
// else, the empty string included, becomes Custom.
func MigrateBusinessType(legacyID string) BusinessType {
	if IsValid(BusinessType(legacyID)) {
		return BusinessType(legacyID)
	}
	if t, ok := legacyTypeRenames[legacyID]; ok {
		return t
	}
	return Custom
}

// IsLegacyFeatureShape reports whether doc lacks any of the flags added
// after the legacy schema. Only key presence is checked, never values.
func IsLegacyFeatureShape(doc map[string]any) bool {
	return lo.SomeBy(AddedFeatureKeys, func(key FeatureKey) bool {
		_, ok := doc[string(key)]
		return !ok
	})
}

// MigrateLegacyFeatures builds a full flag set from a legacy features
// document. The seven legacy keys are copied when they hold a boolean; every
// other flag, and any legacy key that is missing or not boolean, is false.
// Keys outside the legacy set are ignored, so running the migration on its
// own output yields the same legacy values and leaves the new flags false.
func MigrateLegacyFeatures(legacy map[string]any) EnabledFeatures {
	var out EnabledFeatures
	for _, key := range LegacyFeatureKeys {
		if v, ok := legacy[string(key)].(bool); ok {
			out = out.Set(key, v)
		}
	}
	return out
}
