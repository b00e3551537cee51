package research

import (
	"context"
	"fmt"
	"strings"

	"github.com/Mr-Neutr0n/travel-agent-ai/internal/domain"
)

// DemoSource is the built-in fallback used when no research service is
// configured or the upstream yields nothing. Payloads use the same wire
// shape as the real service so they flow through the same mappers, and the
// output is deterministic for a given destination.
type DemoSource struct{}

func NewDemoSource() *DemoSource { return &DemoSource{} }

// cityFlavor customizes the generic demo payloads for a handful of known
// cities so the sample guides read less like boilerplate.
type cityFlavor struct {
	landmark    string
	landmarkTip string
	specialties []any
}

var cityFlavors = map[string]cityFlavor{
	"paris": {
		landmark:    "Eiffel Tower",
		landmarkTip: "Book summit tickets online weeks ahead; go at sunset",
		specialties: []any{
			"Fresh croissants from a neighborhood boulangerie",
			"Steak frites in a classic bistro",
			"Macarons from a famous patisserie",
		},
	},
	"tokyo": {
		landmark:    "Senso-ji Temple",
		landmarkTip: "Arrive before 8am to beat the crowds at Kaminarimon gate",
		specialties: []any{
			"Fresh sushi at Tsukiji Outer Market",
			"Ramen from a late-night counter shop",
			"Wagashi sweets with matcha",
		},
	},
	"rome": {
		landmark:    "Colosseum",
		landmarkTip: "Combined ticket includes the Forum; skip-the-line is worth it",
		specialties: []any{
			"Cacio e pepe in Trastevere",
			"Supplì from a street-food counter",
			"Gelato from an artisanal gelateria",
		},
	},
}

// flavorFor matches on the city part of the destination, so "Paris, France"
// and "paris" both get the Paris overlay.
func flavorFor(destination string) (cityFlavor, bool) {
	city := destination
	if i := strings.IndexByte(city, ','); i >= 0 {
		city = city[:i]
	}
	f, ok := cityFlavors[strings.ToLower(strings.TrimSpace(city))]
	return f, ok
}

func (DemoSource) Hotels(ctx context.Context, destination string) (map[string]any, error) {
	return map[string]any{
		"budget_hotels": []any{
			map[string]any{
				"name":            "Budget Stay Central",
				"price_range":     "Budget",
				"price_per_night": "$50-80/night",
				"description":     "Clean, modern hostel in the heart of the city with shared and private rooms. Free WiFi and breakfast included.",
				"location":        "City Center, walking distance to main attractions",
			},
			map[string]any{
				"name":            "Backpacker's Paradise",
				"price_range":     "Budget",
				"price_per_night": "$40-70/night",
				"description":     "Popular hostel with social atmosphere, kitchen facilities, and organized tours.",
				"location":        "Historic District, near public transportation",
			},
		},
		"midrange_hotels": []any{
			map[string]any{
				"name":            "Boutique Hotel Charm",
				"price_range":     "Mid-range",
				"price_per_night": "$120-180/night",
				"description":     "Stylish boutique hotel with locally-inspired decor, rooftop terrace, and excellent service.",
				"location":        "Trendy neighborhood with restaurants and cafes",
			},
		},
		"luxury_hotels": []any{
			map[string]any{
				"name":            "Grand Palace Hotel",
				"price_range":     "Luxury",
				"price_per_night": "$300-500/night",
				"description":     "Historic luxury hotel with spa, fine dining, concierge service, and panoramic city views.",
				"location":        "Premium location overlooking the main square",
			},
		},
		"location_notes": "The city center offers the best access to attractions. The historic district has character but can be noisy.",
	}, nil
}

func (DemoSource) Dining(ctx context.Context, destination string) (map[string]any, error) {
	specialties := []any{
		"Traditional Local Stew - hearty dish with local vegetables and meat",
		"Street Food Markets - authentic snacks and quick bites",
		"Regional Cheese Platter - selection of local artisanal cheeses",
	}
	if f, ok := flavorFor(destination); ok {
		specialties = f.specialties
	}
	return map[string]any{
		"local_specialties": specialties,
		"budget_dining": []any{
			map[string]any{
				"name":             "Local Bites Cafe",
				"cuisine_type":     "Local/Traditional",
				"price_range":      "Budget",
				"price_per_person": "$8-15",
				"signature_dishes": "Traditional stew, homemade bread, local coffee",
				"location_notes":   "Cozy family-run cafe in residential area",
			},
		},
		"midrange_dining": []any{
			map[string]any{
				"name":             "Farm to Table Restaurant",
				"cuisine_type":     "Modern Local",
				"price_range":      "Mid-range",
				"price_per_person": "$25-40",
				"signature_dishes": "Seasonal vegetables, locally-sourced meat, craft cocktails",
				"location_notes":   "Trendy area with outdoor seating",
			},
		},
		"fine_dining": []any{
			map[string]any{
				"name":             "Chef's Table Experience",
				"cuisine_type":     "Fine Dining/Fusion",
				"price_range":      "Fine Dining",
				"price_per_person": "$80-120",
				"signature_dishes": "Tasting menu, wine pairings, molecular gastronomy",
				"location_notes":   "Upscale district, reservations required",
			},
		},
		"unique_experiences": []any{
			"Cooking class with local chef",
			"Food tour of historic markets",
			"Wine tasting at local vineyard",
		},
	}, nil
}

func (DemoSource) Activities(ctx context.Context, destination string) (map[string]any, error) {
	headliner := map[string]any{
		"name":           "Historic Cathedral",
		"category":       "Attraction",
		"description":    "Stunning 12th-century cathedral with guided tours and climbing tower",
		"cost_range":     "$10-15 entrance",
		"practical_info": "Open 9am-6pm, tours every hour, 200 steps to tower",
	}
	if f, ok := flavorFor(destination); ok {
		headliner = map[string]any{
			"name":           f.landmark,
			"category":       "Attraction",
			"description":    "The city's signature landmark and an essential first stop",
			"cost_range":     "$15-30 entrance",
			"practical_info": f.landmarkTip,
		}
	}
	return map[string]any{
		"must_see_attractions": []any{
			headliner,
			map[string]any{
				"name":           "National Museum",
				"category":       "Attraction",
				"description":    "World-class collection of local art and historical artifacts",
				"cost_range":     "$12 entrance, free on Sundays",
				"practical_info": "Closed Mondays, audio guide included",
			},
		},
		"cultural_experiences": []any{
			map[string]any{
				"name":           "Traditional Craft Workshop",
				"category":       "Cultural",
				"description":    "Learn traditional pottery or weaving from local artisans",
				"cost_range":     "$30-50 per session",
				"practical_info": "Book 24 hours in advance, 2-hour sessions",
			},
		},
		"outdoor_activities": []any{
			map[string]any{
				"name":           "City Park Walking Trail",
				"category":       "Outdoor",
				"description":    "Scenic 3-mile trail through the largest city park with lake views",
				"cost_range":     "Free",
				"practical_info": "Best in morning or evening, bike rentals available",
			},
		},
		"entertainment_nightlife": []any{
			map[string]any{
				"name":           "Local Music Venue",
				"category":       "Entertainment",
				"description":    "Intimate venue featuring local and touring musicians",
				"cost_range":     "$15-25 cover charge",
				"practical_info": "Shows start at 9pm, advance tickets recommended",
			},
		},
		"local_experiences": []any{
			map[string]any{
				"name":           "Morning Market Tour",
				"category":       "Local",
				"description":    "Guided tour of the bustling morning market with tastings",
				"cost_range":     "$20 per person",
				"practical_info": "Starts 7am, includes breakfast, bring comfortable shoes",
			},
		},
		"practical_tips": "Many attractions offer city passes for discounts. Public transport is efficient and affordable. Summer is peak season with longer hours but larger crowds.",
	}, nil
}

// Summary composes highlights from whatever the record contains, so a
// partially populated record still gets a coherent overview.
func (DemoSource) Summary(ctx context.Context, destination string, rec domain.TravelRecord) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Trip highlights for %s.", destination)

	if h := rec.Hotels; h != nil {
		if pick := firstHotel(h.Budget, h.MidRange, h.Luxury); pick != nil {
			fmt.Fprintf(&b, " Stay: %s (%s).", pick.Name, pick.PricePerNight)
		}
	}
	if d := rec.Restaurants; d != nil {
		if pick := firstRestaurant(d.Budget, d.MidRange, d.FineDining); pick != nil {
			fmt.Fprintf(&b, " Eat: %s, known for %s.", pick.Name, pick.SignatureDishes)
		}
		if len(d.LocalSpecialties) > 0 {
			fmt.Fprintf(&b, " Must-try: %s.", d.LocalSpecialties[0])
		}
	}
	if a := rec.Activities; a != nil {
		if pick := firstActivity(a.MustSee, a.Cultural, a.Local, a.Outdoor, a.Entertainment); pick != nil {
			fmt.Fprintf(&b, " Do not miss: %s (%s).", pick.Name, pick.CostRange)
		}
	}
	b.WriteString(" This overview was assembled in demo mode; configure a research API key for live recommendations.")
	return b.String(), nil
}

func firstHotel(tiers ...[]domain.Hotel) *domain.Hotel {
	for _, t := range tiers {
		if len(t) > 0 {
			return &t[0]
		}
	}
	return nil
}

func firstRestaurant(tiers ...[]domain.Restaurant) *domain.Restaurant {
	for _, t := range tiers {
		if len(t) > 0 {
			return &t[0]
		}
	}
	return nil
}

func firstActivity(cats ...[]domain.Activity) *domain.Activity {
	for _, c := range cats {
		if len(c) > 0 {
			return &c[0]
		}
	}
	return nil
}
