package guide

import (
	"strings"
	"testing"
	"time"

	"github.com/Mr-Neutr0n/travel-agent-ai/internal/domain"
)

var testTime = time.Date(2025, time.March, 14, 15, 4, 0, 0, time.UTC)

func texts(story []block, r role) []string {
	var out []string
	for _, b := range story {
		if b.kind == blockParagraph && b.role == r {
			out = append(out, b.text)
		}
	}
	return out
}

func containsText(story []block, s string) bool {
	for _, b := range story {
		if strings.Contains(b.text, s) {
			return true
		}
	}
	return false
}

func TestBuildStory_EmptyRecord(t *testing.T) {
	story := buildStory("Nowhere", domain.TravelRecord{}, testTime)

	if got := texts(story, roleTitle); len(got) != 1 || got[0] != "Travel Guide to Nowhere" {
		t.Fatalf("title blocks: %v", got)
	}
	if got := texts(story, roleFooter); len(got) != 1 {
		t.Fatalf("footer blocks: %v", got)
	}
	if got := texts(story, roleSection); len(got) != 0 {
		t.Fatalf("expected no section headings, got %v", got)
	}
	// exactly two page breaks: after the title block and before the footer
	breaks := 0
	for _, b := range story {
		if b.kind == blockPageBreak {
			breaks++
		}
	}
	if breaks != 2 {
		t.Fatalf("page breaks = %d, want 2", breaks)
	}
}

func TestBuildStory_SummaryOnly(t *testing.T) {
	rec := domain.TravelRecord{Summary: "Short trip."}
	story := buildStory("Oslo", rec, testTime)

	sections := texts(story, roleSection)
	if len(sections) != 1 || sections[0] != "Executive Summary" {
		t.Fatalf("sections = %v", sections)
	}
	bodies := texts(story, roleBody)
	found := false
	for _, b := range bodies {
		if b == "Short trip." {
			found = true
		}
	}
	if !found {
		t.Fatalf("summary paragraph missing from %v", bodies)
	}
	for _, s := range []string{"Accommodation Recommendations", "Dining Recommendations", "Activities & Attractions"} {
		if containsText(story, s) {
			t.Fatalf("unexpected heading %q in summary-only story", s)
		}
	}
}

func TestBuildStory_SingleSection(t *testing.T) {
	rec := domain.TravelRecord{
		Hotels: &domain.HotelCatalog{
			Budget: []domain.Hotel{{Name: "Budget Stay", PricePerNight: "$50", Location: "Center", Description: "Clean."}},
		},
	}
	story := buildStory("Lima", rec, testTime)

	sections := texts(story, roleSection)
	if len(sections) != 1 || sections[0] != "Accommodation Recommendations" {
		t.Fatalf("sections = %v", sections)
	}
	if containsText(story, "Dining") || containsText(story, "Attractions") {
		t.Fatalf("traces of absent sections present")
	}
}

func TestBuildStory_TierOrderFixed(t *testing.T) {
	rec := domain.TravelRecord{
		Hotels: &domain.HotelCatalog{
			Luxury:   []domain.Hotel{{Name: "Palace"}},
			Budget:   []domain.Hotel{{Name: "Hostel A"}, {Name: "Hostel B"}},
			MidRange: []domain.Hotel{{Name: "Boutique"}},
		},
	}
	story := buildStory("Rome", rec, testTime)

	var order []string
	for _, b := range story {
		if b.role == roleItemHeader {
			order = append(order, b.text)
		}
	}
	want := []string{"Hostel A", "Hostel B", "Boutique", "Palace"}
	if len(order) != len(want) {
		t.Fatalf("item order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("item order = %v, want %v", order, want)
		}
	}
}

func TestBuildStory_EmptyTierSkipsHeading(t *testing.T) {
	rec := domain.TravelRecord{
		Hotels: &domain.HotelCatalog{
			Budget: []domain.Hotel{},
			Luxury: []domain.Hotel{{Name: "Palace"}},
		},
	}
	story := buildStory("Rome", rec, testTime)

	subs := texts(story, roleSubsection)
	for _, s := range subs {
		if strings.HasPrefix(s, "Budget") || strings.HasPrefix(s, "Mid-Range") {
			t.Fatalf("empty tier rendered a heading: %v", subs)
		}
	}
	if len(subs) != 1 || !strings.HasPrefix(subs[0], "Luxury") {
		t.Fatalf("subsections = %v", subs)
	}
}

func TestBuildStory_FixedShapeItem(t *testing.T) {
	rec := domain.TravelRecord{
		Hotels: &domain.HotelCatalog{
			Budget: []domain.Hotel{{Name: "Bare Bones Inn", PricePerNight: "$40", Location: "Edge of town", Description: ""}},
		},
	}
	story := buildStory("Riga", rec, testTime)

	// name header plus exactly three body lines, with the empty description
	// present as an empty paragraph rather than omitted
	var after []block
	for i, b := range story {
		if b.role == roleItemHeader && b.text == "Bare Bones Inn" {
			after = story[i+1:]
			break
		}
	}
	if len(after) < 3 {
		t.Fatalf("truncated item layout")
	}
	if after[0].text != "Price Range: $40" || after[1].text != "Location: Edge of town" || after[2].text != "" {
		t.Fatalf("item lines = %q, %q, %q", after[0].text, after[1].text, after[2].text)
	}
}

func TestBuildStory_DiningLayout(t *testing.T) {
	rec := domain.TravelRecord{
		Restaurants: &domain.DiningCatalog{
			LocalSpecialties: []string{"Stew", "Cheese"},
			FineDining: []domain.Restaurant{{
				Name: "Chef's Table", Cuisine: "Fusion", PricePerPerson: "$80-120",
				SignatureDishes: "Tasting menu", LocationNotes: "Upscale district",
			}},
			UniqueExperiences: []string{"Cooking class"},
		},
	}
	story := buildStory("Lyon", rec, testTime)

	subs := texts(story, roleSubsection)
	want := []string{"Local Specialties & Must-Try Dishes", "Fine Dining ($60+/person)", "Unique Dining Experiences"}
	if len(subs) != len(want) {
		t.Fatalf("subsections = %v", subs)
	}
	for i := range want {
		if subs[i] != want[i] {
			t.Fatalf("subsections = %v, want %v", subs, want)
		}
	}

	var bullets []string
	for _, b := range story {
		if b.kind == blockBullet {
			bullets = append(bullets, b.text)
		}
	}
	if len(bullets) != 3 {
		t.Fatalf("bullets = %v", bullets)
	}
	if headers := texts(story, roleItemHeader); len(headers) != 1 || headers[0] != "Chef's Table - Fusion" {
		t.Fatalf("headers = %v", headers)
	}
}

func TestBuildStory_ActivityCategoryOrder(t *testing.T) {
	rec := domain.TravelRecord{
		Activities: &domain.ActivityCatalog{
			Local:         []domain.Activity{{Name: "Market Tour", Category: "Local"}},
			MustSee:       []domain.Activity{{Name: "Cathedral", Category: "Attraction"}},
			Entertainment: []domain.Activity{{Name: "Music Venue", Category: "Entertainment"}},
			PracticalTips: "Buy a city pass.",
		},
	}
	story := buildStory("Porto", rec, testTime)

	subs := texts(story, roleSubsection)
	want := []string{"Must-See Attractions", "Entertainment & Nightlife", "Local Experiences", "Practical Tips"}
	if len(subs) != len(want) {
		t.Fatalf("subsections = %v", subs)
	}
	for i := range want {
		if subs[i] != want[i] {
			t.Fatalf("subsections = %v, want %v", subs, want)
		}
	}
}

func TestBuildStory_TimestampFormats(t *testing.T) {
	story := buildStory("Kyoto", domain.TravelRecord{}, testTime)
	if !containsText(story, "Generated on March 14, 2025") {
		t.Fatalf("long date missing from title block")
	}
	if !containsText(story, "March 14, 2025 at 3:04 PM") {
		t.Fatalf("date+time missing from footer")
	}
}
