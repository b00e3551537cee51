package domain

// TravelRecord is the top-level payload produced by the research stage and
// consumed by the guide assembler. Any subset of its fields may be populated;
// the assembler skips whatever is missing.
type TravelRecord struct {
	Summary     string           `json:"summary,omitempty"`
	Hotels      *HotelCatalog    `json:"hotels,omitempty"`
	Restaurants *DiningCatalog   `json:"restaurants,omitempty"`
	Activities  *ActivityCatalog `json:"activities,omitempty"`
}

// Empty reports whether no optional field is populated at all.
func (r TravelRecord) Empty() bool {
	return r.Summary == "" && r.Hotels == nil && r.Restaurants == nil && r.Activities == nil
}

// HotelCatalog groups hotels by price tier. Tier membership is assigned
// upstream; slice order is preserved in the rendered guide.
type HotelCatalog struct {
	Budget        []Hotel `json:"budget_hotels,omitempty"`
	MidRange      []Hotel `json:"midrange_hotels,omitempty"`
	Luxury        []Hotel `json:"luxury_hotels,omitempty"`
	LocationNotes string  `json:"location_notes,omitempty"`
}

// Hotel fields are opaque display strings; prices are never parsed.
type Hotel struct {
	Name          string `json:"name"`
	Tier          string `json:"price_range,omitempty"`
	PricePerNight string `json:"price_per_night,omitempty"`
	Description   string `json:"description,omitempty"`
	Location      string `json:"location,omitempty"`
}

type DiningCatalog struct {
	LocalSpecialties  []string     `json:"local_specialties,omitempty"`
	Budget            []Restaurant `json:"budget_dining,omitempty"`
	MidRange          []Restaurant `json:"midrange_dining,omitempty"`
	FineDining        []Restaurant `json:"fine_dining,omitempty"`
	UniqueExperiences []string     `json:"unique_experiences,omitempty"`
}

type Restaurant struct {
	Name            string `json:"name"`
	Cuisine         string `json:"cuisine_type,omitempty"`
	Tier            string `json:"price_range,omitempty"`
	PricePerPerson  string `json:"price_per_person,omitempty"`
	SignatureDishes string `json:"signature_dishes,omitempty"`
	LocationNotes   string `json:"location_notes,omitempty"`
}

type ActivityCatalog struct {
	MustSee       []Activity `json:"must_see_attractions,omitempty"`
	Cultural      []Activity `json:"cultural_experiences,omitempty"`
	Outdoor       []Activity `json:"outdoor_activities,omitempty"`
	Entertainment []Activity `json:"entertainment_nightlife,omitempty"`
	Local         []Activity `json:"local_experiences,omitempty"`
	PracticalTips string     `json:"practical_tips,omitempty"`
}

type Activity struct {
	Name          string `json:"name"`
	Category      string `json:"category,omitempty"`
	Description   string `json:"description,omitempty"`
	CostRange     string `json:"cost_range,omitempty"`
	PracticalInfo string `json:"practical_info,omitempty"`
}

// GuideEntry is one row of the guide generation log.
type GuideEntry struct {
	ID          int64  `json:"id"`
	Destination string `json:"destination"`
	Path        string `json:"path"`
	GeneratedAt string `json:"generated_at"`
}
