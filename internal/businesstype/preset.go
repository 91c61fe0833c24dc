package businesstype

type TrustBadge struct {
	Text string `json:"text" yaml:"text"`
	Icon string `json:"icon" yaml:"icon"`
}

type ProcessStep struct {
	Number      int    `json:"number" yaml:"number"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon"`
}

type WhyChooseUs struct {
	Title   string `json:"title" yaml:"title"`
	Heading string `json:"heading" yaml:"heading"`
	Text    string `json:"text" yaml:"text"`
}

type EmergencyBanner struct {
	Text    string `json:"text" yaml:"text"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
}

// ContentPreset is the default marketing copy applied when a tenant picks
// or changes its business type.
type ContentPreset struct {
	HeroHeading     string          `json:"heroHeading" yaml:"heroHeading"`
	HeroAccent      string          `json:"heroAccent" yaml:"heroAccent"`
	HeroCTA         string          `json:"heroCta" yaml:"heroCta"`
	TrustBadges     []TrustBadge    `json:"trustBadges" yaml:"trustBadges"`
	ProcessSteps    []ProcessStep   `json:"processSteps" yaml:"processSteps"`
	WhyChooseUs     WhyChooseUs     `json:"whyChooseUs" yaml:"whyChooseUs"`
	EmergencyBanner EmergencyBanner `json:"emergencyBanner" yaml:"emergencyBanner"`
}

// Clone returns a deep copy of p.
func (p ContentPreset) Clone() ContentPreset {
	p.TrustBadges = append([]TrustBadge(nil), p.TrustBadges...)
	p.ProcessSteps = append([]ProcessStep(nil), p.ProcessSteps...)
	return p
}

// GetContentPreset resolves t to its category preset, falling back to the
// preset of the other category.
func GetContentPreset(t BusinessType) ContentPreset {
	return ContentPresetForCategory(CategoryOf(t))
}

// ContentPresetForCategory returns the preset registered for c, or the other
// preset when c has none.
func ContentPresetForCategory(c BusinessCategory) ContentPreset {
	if p, ok := contentPresets[c]; ok {
		return p.Clone()
	}
	return contentPresets[Other].Clone()
}

func steps(items ...ProcessStep) []ProcessStep {
	for i := range items {
		items[i].Number = i + 1
	}
	return items
}

var contentPresets = map[BusinessCategory]ContentPreset{
	FoodBeverage: {
		HeroHeading: "Fresh Food,",
		HeroAccent:  "Made With Care",
		HeroCTA:     "View Our Menu",
		TrustBadges: []TrustBadge{
			{Text: "Locally Sourced", Icon: "leaf"},
			{Text: "Family Owned", Icon: "heart"},
			{Text: "5-Star Reviews", Icon: "star"},
		},
		ProcessSteps: steps(
			ProcessStep{Title: "Browse the Menu", Description: "See what's cooking today.", Icon: "book-open"},
			ProcessStep{Title: "Order or Reserve", Description: "Order ahead or book a table.", Icon: "calendar"},
			ProcessStep{Title: "Enjoy", Description: "Dine in, pick up or have it delivered.", Icon: "utensils"},
		),
		WhyChooseUs: WhyChooseUs{
			Title:   "Why Choose Us",
			Heading: "Flavor You Can Taste",
			Text:    "Every dish is prepared from scratch with ingredients we would serve our own family.",
		},
		EmergencyBanner: EmergencyBanner{Text: "Now taking holiday catering orders", Enabled: false},
	},
	BeautyWellness: {
		HeroHeading: "Look Good,",
		HeroAccent:  "Feel Better",
		HeroCTA:     "Book an Appointment",
		TrustBadges: []TrustBadge{
			{Text: "Licensed Professionals", Icon: "award"},
			{Text: "Premium Products", Icon: "sparkles"},
			{Text: "Easy Online Booking", Icon: "calendar"},
		},
		ProcessSteps: steps(
			ProcessStep{Title: "Choose a Service", Description: "Pick the treatment that suits you.", Icon: "list"},
			ProcessStep{Title: "Book Your Time", Description: "Reserve a slot with your favorite stylist.", Icon: "calendar"},
			ProcessStep{Title: "Relax", Description: "Sit back while we take care of the rest.", Icon: "smile"},
		),
		WhyChooseUs: WhyChooseUs{
			Title:   "Why Choose Us",
			Heading: "Care in Every Detail",
			Text:    "Our team keeps up with the latest techniques so every visit leaves you looking your best.",
		},
		EmergencyBanner: EmergencyBanner{Text: "Last-minute openings available today", Enabled: false},
	},
	HomeServices: {
		HeroHeading: "Fast, Reliable",
		HeroAccent:  "Home Service",
		HeroCTA:     "Get a Free Quote",
		TrustBadges: []TrustBadge{
			{Text: "Licensed & Insured", Icon: "shield-check"},
			{Text: "Upfront Pricing", Icon: "tag"},
			{Text: "Satisfaction Guaranteed", Icon: "thumbs-up"},
			{Text: "Same-Day Service", Icon: "clock"},
		},
		ProcessSteps: steps(
			ProcessStep{Title: "Call or Book Online", Description: "Tell us what's going on.", Icon: "phone"},
			ProcessStep{Title: "Get a Clear Quote", Description: "No surprises, no hidden fees.", Icon: "file-text"},
			ProcessStep{Title: "We Fix It Right", Description: "Work done by trained technicians.", Icon: "wrench"},
			ProcessStep{Title: "Enjoy Peace of Mind", Description: "Backed by our workmanship guarantee.", Icon: "check-circle"},
		),
		WhyChooseUs: WhyChooseUs{
			Title:   "Why Choose Us",
			Heading: "Local Experts You Can Trust",
			Text:    "We show up on time, explain the options and leave your home cleaner than we found it.",
		},
		EmergencyBanner: EmergencyBanner{Text: "24/7 Emergency Service Available - Call Now", Enabled: true},
	},
	TradesConstruction: {
		HeroHeading: "Built Right,",
		HeroAccent:  "Built to Last",
		HeroCTA:     "Request an Estimate",
		TrustBadges: []TrustBadge{
			{Text: "Licensed & Bonded", Icon: "award"},
			{Text: "Fully Insured", Icon: "shield-check"},
			{Text: "Free Estimates", Icon: "file-text"},
		},
		ProcessSteps: steps(
			ProcessStep{Title: "Consultation", Description: "We visit the site and listen to your goals.", Icon: "message-circle"},
			ProcessStep{Title: "Detailed Estimate", Description: "A written scope and timeline.", Icon: "clipboard"},
			ProcessStep{Title: "Construction", Description: "Quality work with regular updates.", Icon: "hammer"},
			ProcessStep{Title: "Final Walkthrough", Description: "We finish when you're satisfied.", Icon: "check-circle"},
		),
		WhyChooseUs: WhyChooseUs{
			Title:   "Why Choose Us",
			Heading: "Craftsmanship Without Shortcuts",
			Text:    "From permits to cleanup we manage the whole project so you don't have to.",
		},
		EmergencyBanner: EmergencyBanner{Text: "Storm damage? We offer emergency repairs", Enabled: false},
	},
	ProfessionalServices: {
		HeroHeading: "Expert Guidance,",
		HeroAccent:  "Real Results",
		HeroCTA:     "Schedule a Consultation",
		TrustBadges: []TrustBadge{
			{Text: "Certified Experts", Icon: "award"},
			{Text: "Confidential", Icon: "lock"},
			{Text: "Proven Track Record", Icon: "trending-up"},
		},
		ProcessSteps: steps(
			ProcessStep{Title: "Free Consultation", Description: "Discuss your situation with an expert.", Icon: "message-circle"},
			ProcessStep{Title: "Tailored Plan", Description: "A strategy built around your goals.", Icon: "clipboard"},
			ProcessStep{Title: "Ongoing Support", Description: "We stay with you every step.", Icon: "users"},
		),
		WhyChooseUs: WhyChooseUs{
			Title:   "Why Choose Us",
			Heading: "Advice You Can Act On",
			Text:    "Clear answers, honest recommendations and a team that returns your calls.",
		},
		EmergencyBanner: EmergencyBanner{Text: "Now accepting new clients", Enabled: false},
	},
	HealthMedical: {
		HeroHeading: "Compassionate Care",
		HeroAccent:  "Close to Home",
		HeroCTA:     "Book a Visit",
		TrustBadges: []TrustBadge{
			{Text: "Board Certified", Icon: "award"},
			{Text: "Most Insurance Accepted", Icon: "shield-check"},
			{Text: "New Patients Welcome", Icon: "user-plus"},
		},
		ProcessSteps: steps(
			ProcessStep{Title: "Request an Appointment", Description: "Online or by phone.", Icon: "calendar"},
			ProcessStep{Title: "Meet Your Provider", Description: "A thorough, unhurried visit.", Icon: "stethoscope"},
			ProcessStep{Title: "Personal Treatment Plan", Description: "Care designed around you.", Icon: "clipboard"},
		),
		WhyChooseUs: WhyChooseUs{
			Title:   "Why Choose Us",
			Heading: "Your Health Comes First",
			Text:    "Modern equipment, experienced providers and a front desk that treats you like family.",
		},
		EmergencyBanner: EmergencyBanner{Text: "Urgent appointments available - call us", Enabled: false},
	},
	FitnessRecreation: {
		HeroHeading: "Stronger Every",
		HeroAccent:  "Single Day",
		HeroCTA:     "Start Your Free Trial",
		TrustBadges: []TrustBadge{
			{Text: "Certified Coaches", Icon: "award"},
			{Text: "All Levels Welcome", Icon: "users"},
			{Text: "Flexible Memberships", Icon: "calendar"},
		},
		ProcessSteps: steps(
			ProcessStep{Title: "Try a Class", Description: "Your first session is on us.", Icon: "ticket"},
			ProcessStep{Title: "Pick a Plan", Description: "Memberships that fit your schedule.", Icon: "list"},
			ProcessStep{Title: "Reach Your Goals", Description: "Coaching that keeps you on track.", Icon: "target"},
		),
		WhyChooseUs: WhyChooseUs{
			Title:   "Why Choose Us",
			Heading: "A Community That Shows Up",
			Text:    "Small classes, real coaching and people who notice when you miss a day.",
		},
		EmergencyBanner: EmergencyBanner{Text: "New member special this month", Enabled: false},
	},
	Automotive: {
		HeroHeading: "Honest Auto Care",
		HeroAccent:  "Done Right",
		HeroCTA:     "Schedule Service",
		TrustBadges: []TrustBadge{
			{Text: "ASE Certified", Icon: "award"},
			{Text: "Warranty on Work", Icon: "shield-check"},
			{Text: "Transparent Pricing", Icon: "tag"},
		},
		ProcessSteps: steps(
			ProcessStep{Title: "Book a Time", Description: "Pick a slot that works for you.", Icon: "calendar"},
			ProcessStep{Title: "Inspection", Description: "We diagnose and explain before we fix.", Icon: "search"},
			ProcessStep{Title: "Back on the Road", Description: "Quality repairs, fast turnaround.", Icon: "car"},
		),
		WhyChooseUs: WhyChooseUs{
			Title:   "Why Choose Us",
			Heading: "Mechanics You Can Trust",
			Text:    "We only recommend the work your vehicle needs and we stand behind every repair.",
		},
		EmergencyBanner: EmergencyBanner{Text: "24/7 Roadside Assistance - Call Now", Enabled: true},
	},
	EventsCreative: {
		HeroHeading: "Moments Worth",
		HeroAccent:  "Remembering",
		HeroCTA:     "Check Availability",
		TrustBadges: []TrustBadge{
			{Text: "Award Winning", Icon: "award"},
			{Text: "Hundreds of Events", Icon: "calendar"},
			{Text: "Custom Packages", Icon: "package"},
		},
		ProcessSteps: steps(
			ProcessStep{Title: "Tell Us Your Vision", Description: "Share your date and ideas.", Icon: "message-circle"},
			ProcessStep{Title: "Plan Together", Description: "We tailor every detail.", Icon: "clipboard"},
			ProcessStep{Title: "Celebrate", Description: "Enjoy the day, we handle the rest.", Icon: "party-popper"},
		),
		WhyChooseUs: WhyChooseUs{
			Title:   "Why Choose Us",
			Heading: "Creative Work, Zero Stress",
			Text:    "A portfolio you can see and a process that keeps your day on schedule.",
		},
		EmergencyBanner: EmergencyBanner{Text: "Limited dates left this season", Enabled: false},
	},
	Other: {
		HeroHeading: "Quality Service",
		HeroAccent:  "You Can Count On",
		HeroCTA:     "Contact Us",
		TrustBadges: []TrustBadge{
			{Text: "Trusted Locally", Icon: "map-pin"},
			{Text: "Satisfaction Guaranteed", Icon: "thumbs-up"},
			{Text: "Friendly Team", Icon: "users"},
		},
		ProcessSteps: steps(
			ProcessStep{Title: "Get in Touch", Description: "Call, email or send a message.", Icon: "phone"},
			ProcessStep{Title: "We Listen", Description: "Tell us exactly what you need.", Icon: "message-circle"},
			ProcessStep{Title: "We Deliver", Description: "Work done right the first time.", Icon: "check-circle"},
		),
		WhyChooseUs: WhyChooseUs{
			Title:   "Why Choose Us",
			Heading: "Service That Puts You First",
			Text:    "We are a local business that earns every customer through honest work and fair prices.",
		},
		EmergencyBanner: EmergencyBanner{Text: "Call us today", Enabled: false},
	},
}
