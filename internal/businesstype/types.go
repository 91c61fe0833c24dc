// Package businesstype is the catalog of business types and the feature and
// content defaults derived from them, plus the migration of legacy settings
// documents into the current flag schema.
package businesstype

import (
	"strings"

	"github.com/samber/lo"
)

// BusinessType identifies a tenant's industry. The set is closed: every
// value below has an entry in typeInfos and exactly one category.
type BusinessType string

const (
	// food_beverage
	Restaurant BusinessType = "restaurant"
	Cafe       BusinessType = "cafe"
	Bakery     BusinessType = "bakery"
	Catering   BusinessType = "catering"
	FoodTruck  BusinessType = "food_truck"
	Bar        BusinessType = "bar"
	Brewery    BusinessType = "brewery"

	// beauty_wellness
	Salon       BusinessType = "salon"
	Barbershop  BusinessType = "barbershop"
	Spa         BusinessType = "spa"
	NailSalon   BusinessType = "nail_salon"
	Massage     BusinessType = "massage"
	Tattoo      BusinessType = "tattoo"
	Esthetician BusinessType = "esthetician"

	// home_services
	Plumber     BusinessType = "plumber"
	Electrician BusinessType = "electrician"
	HVAC        BusinessType = "hvac"
	Roofer      BusinessType = "roofer"
	Landscaper  BusinessType = "landscaper"
	Cleaning    BusinessType = "cleaning"
	PestControl BusinessType = "pest_control"
	Handyman    BusinessType = "handyman"
	Painter     BusinessType = "painter"

	// trades_construction
	GeneralContractor BusinessType = "general_contractor"
	Remodeler         BusinessType = "remodeler"
	Flooring          BusinessType = "flooring"
	PoolService       BusinessType = "pool_service"
	Moving            BusinessType = "moving"

	// professional_services
	Consultant       BusinessType = "consultant"
	Accountant       BusinessType = "accountant"
	Lawyer           BusinessType = "lawyer"
	RealEstate       BusinessType = "real_estate"
	InsuranceAgent   BusinessType = "insurance_agent"
	MarketingAgency  BusinessType = "marketing_agency"
	FinancialAdvisor BusinessType = "financial_advisor"

	// health_medical
	Dentist         BusinessType = "dentist"
	Chiropractor    BusinessType = "chiropractor"
	PhysicalTherapy BusinessType = "physical_therapy"
	Veterinarian    BusinessType = "veterinarian"
	Optometrist     BusinessType = "optometrist"

	// fitness_recreation
	Gym             BusinessType = "gym"
	PersonalTrainer BusinessType = "personal_trainer"
	YogaStudio      BusinessType = "yoga_studio"
	MartialArts     BusinessType = "martial_arts"
	DanceStudio     BusinessType = "dance_studio"

	// automotive
	AutoRepair    BusinessType = "auto_repair"
	AutoDetailing BusinessType = "auto_detailing"
	Towing        BusinessType = "towing"
	CarWash       BusinessType = "car_wash"

	// events_creative
	Photographer BusinessType = "photographer"
	Videographer BusinessType = "videographer"
	EventPlanner BusinessType = "event_planner"
	DJ           BusinessType = "dj"
	Florist      BusinessType = "florist"

	// other
	PetGrooming BusinessType = "pet_grooming"
	Tutoring    BusinessType = "tutoring"
	Custom      BusinessType = "custom"
)

// TypeInfo is the display record for a business type.
type TypeInfo struct {
	ID          BusinessType     `json:"id" yaml:"id"`
	Label       string           `json:"label" yaml:"label"`
	ShortLabel  string           `json:"shortLabel" yaml:"shortLabel"`
	Icon        string           `json:"icon" yaml:"icon"`
	Description string           `json:"description" yaml:"description"`
	Category    BusinessCategory `json:"category" yaml:"category"`
}

var typeInfos = []TypeInfo{
	{Restaurant, "Restaurant", "Restaurant", "utensils", "Dine-in or takeout restaurant with a menu", FoodBeverage},
	{Cafe, "Cafe / Coffee Shop", "Cafe", "coffee", "Coffee shop, tea house or casual cafe", FoodBeverage},
	{Bakery, "Bakery", "Bakery", "croissant", "Bakery, pastry shop or dessert maker", FoodBeverage},
	{Catering, "Catering Service", "Catering", "chef-hat", "Event and corporate catering", FoodBeverage},
	{FoodTruck, "Food Truck", "Food Truck", "truck", "Mobile food vendor", FoodBeverage},
	{Bar, "Bar / Lounge", "Bar", "wine", "Bar, pub or cocktail lounge", FoodBeverage},
	{Brewery, "Brewery / Winery", "Brewery", "beer", "Craft brewery, winery or distillery taproom", FoodBeverage},

	{Salon, "Hair Salon", "Salon", "scissors", "Hair cutting, coloring and styling", BeautyWellness},
	{Barbershop, "Barbershop", "Barber", "scissors", "Men's grooming and haircuts", BeautyWellness},
	{Spa, "Day Spa", "Spa", "flower", "Spa treatments and relaxation services", BeautyWellness},
	{NailSalon, "Nail Salon", "Nails", "hand", "Manicures, pedicures and nail art", BeautyWellness},
	{Massage, "Massage Therapy", "Massage", "hand-heart", "Licensed massage and bodywork", BeautyWellness},
	{Tattoo, "Tattoo & Piercing", "Tattoo", "pen-tool", "Tattoo studio and body piercing", BeautyWellness},
	{Esthetician, "Esthetician / Skincare", "Skincare", "sparkles", "Facials, skincare and lash services", BeautyWellness},

	{Plumber, "Plumbing", "Plumber", "wrench", "Residential and commercial plumbing", HomeServices},
	{Electrician, "Electrical", "Electrician", "zap", "Licensed electrical contractor", HomeServices},
	{HVAC, "Heating & Air Conditioning", "HVAC", "thermometer", "HVAC installation, repair and maintenance", HomeServices},
	{Roofer, "Roofing", "Roofer", "home", "Roof repair, replacement and inspection", HomeServices},
	{Landscaper, "Landscaping & Lawn Care", "Landscaping", "trees", "Lawn care, landscaping and hardscaping", HomeServices},
	{Cleaning, "Cleaning Service", "Cleaning", "sparkles", "Residential and commercial cleaning", HomeServices},
	{PestControl, "Pest Control", "Pest Control", "bug", "Pest and wildlife control", HomeServices},
	{Handyman, "Handyman", "Handyman", "hammer", "General home repairs and odd jobs", HomeServices},
	{Painter, "Painting", "Painter", "paintbrush", "Interior and exterior painting", HomeServices},

	{GeneralContractor, "General Contractor", "Contractor", "hard-hat", "New construction and major projects", TradesConstruction},
	{Remodeler, "Remodeling", "Remodeler", "layout", "Kitchen, bath and whole-home remodeling", TradesConstruction},
	{Flooring, "Flooring", "Flooring", "grid", "Flooring installation and refinishing", TradesConstruction},
	{PoolService, "Pool & Spa Service", "Pool", "waves", "Pool cleaning, repair and installation", TradesConstruction},
	{Moving, "Moving Company", "Movers", "package", "Local and long-distance moving", TradesConstruction},

	{Consultant, "Consulting", "Consultant", "briefcase", "Business or independent consulting", ProfessionalServices},
	{Accountant, "Accounting & Tax", "Accountant", "calculator", "Bookkeeping, accounting and tax preparation", ProfessionalServices},
	{Lawyer, "Law Firm", "Lawyer", "scale", "Legal services and attorneys", ProfessionalServices},
	{RealEstate, "Real Estate", "Real Estate", "building", "Real estate agent or brokerage", ProfessionalServices},
	{InsuranceAgent, "Insurance Agency", "Insurance", "shield", "Insurance agent or brokerage", ProfessionalServices},
	{MarketingAgency, "Marketing Agency", "Marketing", "megaphone", "Marketing, design and advertising agency", ProfessionalServices},
	{FinancialAdvisor, "Financial Advisor", "Financial", "trending-up", "Financial planning and wealth management", ProfessionalServices},

	{Dentist, "Dental Practice", "Dentist", "smile", "General and cosmetic dentistry", HealthMedical},
	{Chiropractor, "Chiropractic", "Chiropractor", "activity", "Chiropractic care and adjustments", HealthMedical},
	{PhysicalTherapy, "Physical Therapy", "Physical Therapy", "heart-pulse", "Rehabilitation and physical therapy", HealthMedical},
	{Veterinarian, "Veterinary Clinic", "Vet", "paw-print", "Animal hospital and veterinary care", HealthMedical},
	{Optometrist, "Optometry", "Optometrist", "eye", "Eye exams, glasses and contacts", HealthMedical},

	{Gym, "Gym / Fitness Center", "Gym", "dumbbell", "Gym or fitness center with memberships", FitnessRecreation},
	{PersonalTrainer, "Personal Trainer", "Trainer", "user-check", "One-on-one and small group training", FitnessRecreation},
	{YogaStudio, "Yoga / Pilates Studio", "Yoga", "sun", "Yoga, pilates and mindfulness classes", FitnessRecreation},
	{MartialArts, "Martial Arts", "Martial Arts", "swords", "Martial arts and self-defense school", FitnessRecreation},
	{DanceStudio, "Dance Studio", "Dance", "music", "Dance classes and performance training", FitnessRecreation},

	{AutoRepair, "Auto Repair", "Auto Repair", "car", "Mechanical and collision repair", Automotive},
	{AutoDetailing, "Auto Detailing", "Detailing", "spray-can", "Interior and exterior vehicle detailing", Automotive},
	{Towing, "Towing & Roadside", "Towing", "truck", "Towing and roadside assistance", Automotive},
	{CarWash, "Car Wash", "Car Wash", "droplets", "Full-service or self-service car wash", Automotive},

	{Photographer, "Photography", "Photographer", "camera", "Portrait, wedding and event photography", EventsCreative},
	{Videographer, "Videography", "Videographer", "video", "Video production and editing", EventsCreative},
	{EventPlanner, "Event Planning", "Events", "calendar", "Wedding and event planning", EventsCreative},
	{DJ, "DJ & Entertainment", "DJ", "disc", "DJ and live entertainment services", EventsCreative},
	{Florist, "Florist", "Florist", "flower-2", "Floral design and arrangements", EventsCreative},

	{PetGrooming, "Pet Grooming", "Grooming", "paw-print", "Pet grooming and boarding", Other},
	{Tutoring, "Tutoring & Lessons", "Tutoring", "graduation-cap", "Tutoring, lessons and coaching", Other},
	{Custom, "Other / Custom", "Custom", "star", "Any business not listed above", Other},
}

var typeIndex = lo.Associate(typeInfos, func(info TypeInfo) (BusinessType, TypeInfo) {
	return info.ID, info
})

// LookupType returns the info record for id.
func LookupType(id string) (TypeInfo, bool) {
	info, ok := typeIndex[BusinessType(id)]
	return info, ok
}

// IsValid reports whether t is a registered business type.
func IsValid(t BusinessType) bool {
	_, ok := typeIndex[t]
	return ok
}

// Info returns the info record for t, or the custom record if t is unknown.
func (t BusinessType) Info() TypeInfo {
	if info, ok := typeIndex[t]; ok {
		return info
	}
	return typeIndex[Custom]
}

func (t BusinessType) String() string { return string(t) }

// AllTypes returns every registered type in registry order.
func AllTypes() []BusinessType {
	return lo.Map(typeInfos, func(info TypeInfo, _ int) BusinessType {
		return info.ID
	})
}

// AllTypeInfos returns a copy of the registry.
func AllTypeInfos() []TypeInfo {
	out := make([]TypeInfo, len(typeInfos))
	copy(out, typeInfos)
	return out
}

// SearchTypes returns the types whose id, label or description contains
// query, ignoring case. An empty query matches everything.
func SearchTypes(query string) []TypeInfo {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return AllTypeInfos()
	}
	return lo.Filter(typeInfos, func(info TypeInfo, _ int) bool {
		return strings.Contains(string(info.ID), q) ||
			strings.Contains(strings.ToLower(info.Label), q) ||
			strings.Contains(strings.ToLower(info.Description), q)
	})
}
