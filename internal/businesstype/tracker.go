package businesstype

import "github.com/samber/lo"

// HasModifiedFeatures reports whether candidate differs from the defaults of
// t in at least one flag.
func HasModifiedFeatures(t BusinessType, candidate EnabledFeatures) bool {
	defaults := GetFeatureDefaults(t)
	for _, key := range AllFeatureKeys() {
		if defaults.Get(key) != candidate.Get(key) {
			return true
		}
	}
	return false
}

// GetModifiedFeatures returns the flags where candidate differs from the
// defaults of t, in canonical order.
func GetModifiedFeatures(t BusinessType, candidate EnabledFeatures) []FeatureKey {
	defaults := GetFeatureDefaults(t)
	return lo.Filter(AllFeatureKeys(), func(key FeatureKey, _ int) bool {
		return defaults.Get(key) != candidate.Get(key)
	})
}
