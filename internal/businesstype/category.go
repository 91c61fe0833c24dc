package businesstype

import "github.com/samber/lo"

// BusinessCategory groups related business types for content fallback and
// for organizing the admin type picker.
type BusinessCategory string

const (
	FoodBeverage         BusinessCategory = "food_beverage"
	BeautyWellness       BusinessCategory = "beauty_wellness"
	HomeServices         BusinessCategory = "home_services"
	TradesConstruction   BusinessCategory = "trades_construction"
	ProfessionalServices BusinessCategory = "professional_services"
	HealthMedical        BusinessCategory = "health_medical"
	FitnessRecreation    BusinessCategory = "fitness_recreation"
	Automotive           BusinessCategory = "automotive"
	EventsCreative       BusinessCategory = "events_creative"
	Other                BusinessCategory = "other"
)

type CategoryInfo struct {
	ID    BusinessCategory `json:"id" yaml:"id"`
	Label string           `json:"label" yaml:"label"`
	Icon  string           `json:"icon" yaml:"icon"`
	Types []BusinessType   `json:"types" yaml:"types"`
}

var categoryInfos = []CategoryInfo{
	{FoodBeverage, "Food & Beverage", "utensils", nil},
	{BeautyWellness, "Beauty & Wellness", "sparkles", nil},
	{HomeServices, "Home Services", "home", nil},
	{TradesConstruction, "Trades & Construction", "hard-hat", nil},
	{ProfessionalServices, "Professional Services", "briefcase", nil},
	{HealthMedical, "Health & Medical", "heart-pulse", nil},
	{FitnessRecreation, "Fitness & Recreation", "dumbbell", nil},
	{Automotive, "Automotive", "car", nil},
	{EventsCreative, "Events & Creative", "camera", nil},
	{Other, "Other", "star", nil},
}

// categoryIndex is built from the type registry so a type can only ever
// belong to the category its TypeInfo names.
var categoryIndex = buildCategoryIndex()

func buildCategoryIndex() map[BusinessCategory]CategoryInfo {
	grouped := lo.GroupBy(typeInfos, func(info TypeInfo) BusinessCategory {
		return info.Category
	})
	index := make(map[BusinessCategory]CategoryInfo, len(categoryInfos))
	for i := range categoryInfos {
		c := categoryInfos[i]
		c.Types = lo.Map(grouped[c.ID], func(info TypeInfo, _ int) BusinessType {
			return info.ID
		})
		categoryInfos[i] = c
		index[c.ID] = c
	}
	return index
}

// LookupCategory returns the category record for id.
func LookupCategory(id string) (CategoryInfo, bool) {
	c, ok := categoryIndex[BusinessCategory(id)]
	if !ok {
		return CategoryInfo{}, false
	}
	return cloneCategory(c), true
}

// CategoryOf returns the category of t. Unknown types belong to Other.
func CategoryOf(t BusinessType) BusinessCategory {
	if info, ok := typeIndex[t]; ok {
		return info.Category
	}
	return Other
}

// TypesInCategory returns the ordered types of c, or nil for an unknown
// category.
func TypesInCategory(c BusinessCategory) []BusinessType {
	info, ok := categoryIndex[c]
	if !ok {
		return nil
	}
	return append([]BusinessType(nil), info.Types...)
}

// Categories returns every category, with types, in display order.
func Categories() []CategoryInfo {
	return lo.Map(categoryInfos, func(c CategoryInfo, _ int) CategoryInfo {
		return cloneCategory(c)
	})
}

// AllCategories returns the category ids in display order.
func AllCategories() []BusinessCategory {
	return lo.Map(categoryInfos, func(c CategoryInfo, _ int) BusinessCategory {
		return c.ID
	})
}

func (c BusinessCategory) String() string { return string(c) }

func cloneCategory(c CategoryInfo) CategoryInfo {
	c.Types = append([]BusinessType(nil), c.Types...)
	return c
}
