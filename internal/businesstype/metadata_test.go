package businesstype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureMetadata_CoversEveryKey(t *testing.T) {
	meta := AllFeatureMetadata()
	require.Len(t, meta, 14)
	for i, key := range AllFeatureKeys() {
		assert.Equal(t, key, meta[i].Key)
		assert.NotEmpty(t, meta[i].Label, "key %q", key)
		assert.NotEmpty(t, meta[i].Icon, "key %q", key)
	}
}

func TestFeatureGroups_PartitionKeys(t *testing.T) {
	owner := map[FeatureKey]FeatureGroupID{}
	for _, g := range FeatureGroups() {
		require.NotEmpty(t, g.Keys, "group %q", g.ID)
		for _, key := range g.Keys {
			prev, dup := owner[key]
			require.False(t, dup, "key %q in %q and %q", key, prev, g.ID)
			owner[key] = g.ID
		}
	}
	assert.Len(t, owner, 14)
	for _, key := range AllFeatureKeys() {
		m, ok := LookupFeature(key)
		require.True(t, ok)
		assert.Equal(t, m.Group, owner[key])
	}
}

func TestAdminNav(t *testing.T) {
	features := EnabledFeatures{
		BookingSystem:     true,
		Testimonials:      true,
		EmergencyServices: true,
		ServicePackages:   true,
	}

	free := AdminNav(features, false)
	keys := make([]FeatureKey, 0, len(free))
	for _, item := range free {
		keys = append(keys, item.Key)
	}
	assert.Equal(t, []FeatureKey{FeatureTestimonials}, keys, "pro-only and label-less features are hidden")

	pro := AdminNav(features, true)
	require.Len(t, pro, 3)
	assert.Equal(t, "Bookings", pro[0].Label)
	assert.Equal(t, FeatureServicePackages, pro[2].Key)

	assert.Empty(t, AdminNav(EnabledFeatures{}, true))
}
