package businesstype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func legacyFixture() map[string]any {
	return map[string]any{
		"menuSystem":       true,
		"bookingSystem":    false,
		"portfolioGallery": true,
		"quoteRequests":    false,
		"testimonials":     true,
		"teamMembers":      false,
		"faqSection":       true,
	}
}

func TestMigrateBusinessType(t *testing.T) {
	tests := []struct {
		in   string
		want BusinessType
	}{
		{"contractor", Plumber},
		{"professional", Consultant},
		{"salon", Salon},
		{"restaurant", Restaurant},
		{"catering", Catering},
		{"cleaning", Cleaning},
		{"custom", Custom},
		{"hvac", HVAC},
		{"unknown_type", Custom},
		{"", Custom},
		{"SALON", Custom},
		{"\x00\xff", Custom},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, MigrateBusinessType(tt.in))
		})
	}
}

func TestMigrateBusinessType_AlwaysValid(t *testing.T) {
	inputs := append([]string{"", " ", "null", "undefined", "contractor "}, LegacyBusinessTypes...)
	for _, id := range AllTypes() {
		inputs = append(inputs, string(id))
	}
	for _, in := range inputs {
		assert.True(t, IsValid(MigrateBusinessType(in)), "input %q", in)
	}
}

func TestIsLegacyBusinessType(t *testing.T) {
	assert.True(t, IsLegacyBusinessType("contractor"))
	assert.True(t, IsLegacyBusinessType("professional"))
	assert.False(t, IsLegacyBusinessType("salon"), "salon is still current")
	assert.False(t, IsLegacyBusinessType("plumber"))
	assert.False(t, IsLegacyBusinessType("whatever"))
}

func TestMigrateLegacyFeatures_LiteralShape(t *testing.T) {
	got := MigrateLegacyFeatures(legacyFixture())

	want := EnabledFeatures{
		MenuSystem:       true,
		PortfolioGallery: true,
		Testimonials:     true,
		FAQSection:       true,
	}
	assert.Equal(t, want, got)

	doc := got.ToMap()
	require.Len(t, doc, 14)
	for _, key := range AddedFeatureKeys {
		assert.Equal(t, false, doc[string(key)], "key %q", key)
	}
}

func TestMigrateLegacyFeatures_MissingAndExtraKeys(t *testing.T) {
	got := MigrateLegacyFeatures(map[string]any{
		"bookingSystem":     true,
		"emergencyServices": true,
		"shoppingCart":      true,
		"faqSection":        "yes",
	})
	assert.Equal(t, EnabledFeatures{BookingSystem: true}, got)

	assert.Equal(t, EnabledFeatures{}, MigrateLegacyFeatures(nil))
	assert.Equal(t, EnabledFeatures{}, MigrateLegacyFeatures(map[string]any{}))
}

func TestMigrateLegacyFeatures_Idempotent(t *testing.T) {
	once := MigrateLegacyFeatures(legacyFixture())
	twice := MigrateLegacyFeatures(once.ToMap())

	assert.Equal(t, once, twice)
	for _, key := range LegacyFeatureKeys {
		assert.Equal(t, legacyFixture()[string(key)], twice.Get(key), "key %q", key)
	}
	for _, key := range AddedFeatureKeys {
		assert.False(t, twice.Get(key), "key %q", key)
	}
}

func TestIsLegacyFeatureShape(t *testing.T) {
	assert.True(t, IsLegacyFeatureShape(legacyFixture()))
	assert.True(t, IsLegacyFeatureShape(map[string]any{}))

	full := GetFeatureDefaults(Custom).ToMap()
	assert.False(t, IsLegacyFeatureShape(full))

	// Key presence is what counts, not the value.
	full["insuranceBadges"] = nil
	assert.False(t, IsLegacyFeatureShape(full))

	delete(full, "insuranceBadges")
	assert.True(t, IsLegacyFeatureShape(full))
}
