package businesstype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasModifiedFeatures_IdentityLaw(t *testing.T) {
	for _, id := range AllTypes() {
		assert.False(t, HasModifiedFeatures(id, GetFeatureDefaults(id)), "type %q", id)
		assert.Empty(t, GetModifiedFeatures(id, GetFeatureDefaults(id)), "type %q", id)
	}
}

func TestHasModifiedFeatures_SensitivityLaw(t *testing.T) {
	for _, id := range AllTypes() {
		defaults := GetFeatureDefaults(id)
		for _, key := range AllFeatureKeys() {
			flipped := defaults.Set(key, !defaults.Get(key))
			assert.True(t, HasModifiedFeatures(id, flipped), "type %q key %q", id, key)
			assert.Equal(t, []FeatureKey{key}, GetModifiedFeatures(id, flipped), "type %q key %q", id, key)
		}
	}
}

func TestGetModifiedFeatures_CanonicalOrder(t *testing.T) {
	defaults := GetFeatureDefaults(Plumber)
	candidate := defaults.
		Set(FeatureInsuranceBadges, !defaults.InsuranceBadges).
		Set(FeatureMenuSystem, !defaults.MenuSystem)

	assert.Equal(t,
		[]FeatureKey{FeatureMenuSystem, FeatureInsuranceBadges},
		GetModifiedFeatures(Plumber, candidate),
	)
}

func TestHasModifiedFeatures_ComparesAgainstGivenType(t *testing.T) {
	salon := GetFeatureDefaults(Salon)
	assert.True(t, HasModifiedFeatures(Plumber, salon))
	assert.False(t, HasModifiedFeatures(Salon, salon))
}
