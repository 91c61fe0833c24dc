package businesstype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_NoDuplicateTypes(t *testing.T) {
	seen := map[BusinessType]bool{}
	for _, id := range AllTypes() {
		assert.False(t, seen[id], "duplicate type %q", id)
		seen[id] = true
	}
	assert.Len(t, seen, len(typeInfos))
	assert.True(t, seen[Custom], "custom must be registered")
}

func TestRegistry_CategoriesPartitionTypes(t *testing.T) {
	owner := map[BusinessType]BusinessCategory{}
	for _, c := range Categories() {
		for _, id := range c.Types {
			prev, dup := owner[id]
			require.False(t, dup, "type %q listed in %q and %q", id, prev, c.ID)
			owner[id] = c.ID
		}
	}

	all := AllTypes()
	require.Len(t, owner, len(all))
	for _, id := range all {
		assert.Equal(t, CategoryOf(id), owner[id], "category of %q", id)
	}
}

func TestRegistry_TenCategoriesAllPopulated(t *testing.T) {
	cats := AllCategories()
	require.Len(t, cats, 10)
	for _, c := range cats {
		assert.NotEmpty(t, TypesInCategory(c), "category %q has no types", c)
	}
}

func TestLookupType(t *testing.T) {
	info, ok := LookupType("plumber")
	require.True(t, ok)
	assert.Equal(t, Plumber, info.ID)
	assert.Equal(t, HomeServices, info.Category)
	assert.NotEmpty(t, info.Label)
	assert.NotEmpty(t, info.ShortLabel)
	assert.NotEmpty(t, info.Icon)

	_, ok = LookupType("contractor")
	assert.False(t, ok, "legacy id is not a current type")

	_, ok = LookupType("")
	assert.False(t, ok)
}

func TestCategoryOf_UnknownIsOther(t *testing.T) {
	assert.Equal(t, Other, CategoryOf("spaceship_dealer"))
	assert.Equal(t, Other, CategoryOf(Custom))
	assert.Equal(t, FoodBeverage, CategoryOf(Restaurant))
}

func TestTypesInCategory(t *testing.T) {
	food := TypesInCategory(FoodBeverage)
	assert.Equal(t, []BusinessType{Restaurant, Cafe, Bakery, Catering, FoodTruck, Bar, Brewery}, food)

	assert.Nil(t, TypesInCategory("nope"))

	// Callers get a copy.
	food[0] = Custom
	assert.Equal(t, Restaurant, TypesInCategory(FoodBeverage)[0])
}

func TestLookupCategory(t *testing.T) {
	c, ok := LookupCategory("home_services")
	require.True(t, ok)
	assert.Equal(t, "Home Services", c.Label)
	assert.Contains(t, c.Types, HVAC)

	_, ok = LookupCategory("")
	assert.False(t, ok)
}

func TestBusinessTypeInfo_FallsBackToCustom(t *testing.T) {
	assert.Equal(t, Custom, BusinessType("garbage").Info().ID)
	assert.Equal(t, "Hair Salon", Salon.Info().Label)
}

func TestSearchTypes(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  BusinessType
	}{
		{name: "by id", query: "hvac", want: HVAC},
		{name: "by label ignoring case", query: "BARBER", want: Barbershop},
		{name: "by description", query: "roadside", want: Towing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchTypes(tt.query)
			ids := make([]BusinessType, 0, len(got))
			for _, info := range got {
				ids = append(ids, info.ID)
			}
			assert.Contains(t, ids, tt.want)
		})
	}

	assert.Len(t, SearchTypes("  "), len(AllTypes()))
	assert.Empty(t, SearchTypes("zzzz-no-match"))
}
