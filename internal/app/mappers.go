package app

import (
	"strings"

	"github.com/Mr-Neutr0n/travel-agent-ai/internal/domain"
)

/********** alias registries (single source of truth) **********/

// Upstream research payloads are loose JSON objects whose field names drift
// between service versions. Each registry lists the accepted spellings per
// logical field; the first non-empty match wins. Values are copied through
// verbatim: prices, costs and dates stay opaque display text.

var hotelAliases = map[string][]string{
	"name":        {"name", "hotel_name", "title"},
	"tier":        {"price_range", "tier", "category"},
	"price":       {"price_per_night", "price", "nightly_rate", "rate"},
	"description": {"description", "summary", "details", "about"},
	"location":    {"location", "neighborhood", "area", "location_notes", "address"},
}

var restaurantAliases = map[string][]string{
	"name":     {"name", "restaurant_name", "title"},
	"cuisine":  {"cuisine_type", "cuisine", "food_type"},
	"tier":     {"price_range", "tier", "category"},
	"price":    {"price_per_person", "price", "average_price"},
	"dishes":   {"signature_dishes", "dishes", "specialties", "must_try"},
	"location": {"location_notes", "location", "neighborhood", "atmosphere"},
}

var activityAliases = map[string][]string{
	"name":        {"name", "activity_name", "attraction", "title"},
	"category":    {"category", "type", "kind"},
	"description": {"description", "summary", "details"},
	"cost":        {"cost_range", "cost", "price", "price_range"},
	"practical":   {"practical_info", "practical", "tips", "info"},
}

var hotelTierKeys = map[string][]string{
	"budget":   {"budget_hotels", "budget"},
	"midrange": {"midrange_hotels", "mid_range_hotels", "midrange"},
	"luxury":   {"luxury_hotels", "luxury"},
}

var diningTierKeys = map[string][]string{
	"budget":   {"budget_dining", "budget_restaurants", "budget"},
	"midrange": {"midrange_dining", "mid_range_dining", "midrange"},
	"fine":     {"fine_dining", "fine"},
}

var activityCategoryKeys = map[string][]string{
	"must_see":      {"must_see_attractions", "must_see", "attractions"},
	"cultural":      {"cultural_experiences", "cultural"},
	"outdoor":       {"outdoor_activities", "outdoor"},
	"entertainment": {"entertainment_nightlife", "entertainment", "nightlife"},
	"local":         {"local_experiences", "local"},
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupStr returns string at path or "".
func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// firstAlias: first non-empty string for a named alias set.
func firstAlias(m map[string]any, aliases map[string][]string, key string) string {
	for _, p := range aliases[key] {
		if s := lookupStr(m, p); s != "" {
			return s
		}
	}
	return ""
}

// firstSliceMaps: first []any of objects found at any of the paths.
func firstSliceMaps(m map[string]any, paths ...string) []map[string]any {
	for _, k := range paths {
		raw, ok := lookupAny(m, k).([]any)
		if !ok {
			continue
		}
		out := make([]map[string]any, 0, len(raw))
		for _, it := range raw {
			if obj, ok := it.(map[string]any); ok {
				out = append(out, obj)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

// firstSliceStrings: accept []any with either strings or {name/text} objects.
func firstSliceStrings(m map[string]any, paths ...string) []string {
	for _, k := range paths {
		raw, ok := lookupAny(m, k).([]any)
		if !ok {
			continue
		}
		out := make([]string, 0, len(raw))
		for _, it := range raw {
			switch t := it.(type) {
			case string:
				if t != "" {
					out = append(out, t)
				}
			case map[string]any:
				if n, ok := t["name"].(string); ok && n != "" {
					out = append(out, n)
					continue
				}
				if n, ok := t["text"].(string); ok && n != "" {
					out = append(out, n)
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

/********** catalog mappers **********/

func mapHotel(m map[string]any) domain.Hotel {
	return domain.Hotel{
		Name:          firstAlias(m, hotelAliases, "name"),
		Tier:          firstAlias(m, hotelAliases, "tier"),
		PricePerNight: firstAlias(m, hotelAliases, "price"),
		Description:   firstAlias(m, hotelAliases, "description"),
		Location:      firstAlias(m, hotelAliases, "location"),
	}
}

func mapHotels(in []map[string]any) []domain.Hotel {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.Hotel, 0, len(in))
	for _, m := range in {
		if h := mapHotel(m); h.Name != "" {
			out = append(out, h)
		}
	}
	return out
}

// mapHotelCatalog returns nil when the payload carries no usable hotel data
// at all, so the guide section is skipped rather than rendered empty.
func mapHotelCatalog(p map[string]any) *domain.HotelCatalog {
	if p == nil {
		return nil
	}
	c := domain.HotelCatalog{
		Budget:        mapHotels(firstSliceMaps(p, hotelTierKeys["budget"]...)),
		MidRange:      mapHotels(firstSliceMaps(p, hotelTierKeys["midrange"]...)),
		Luxury:        mapHotels(firstSliceMaps(p, hotelTierKeys["luxury"]...)),
		LocationNotes: lookupStr(p, "location_notes"),
	}
	if len(c.Budget) == 0 && len(c.MidRange) == 0 && len(c.Luxury) == 0 && c.LocationNotes == "" {
		return nil
	}
	return &c
}

func mapRestaurant(m map[string]any) domain.Restaurant {
	return domain.Restaurant{
		Name:            firstAlias(m, restaurantAliases, "name"),
		Cuisine:         firstAlias(m, restaurantAliases, "cuisine"),
		Tier:            firstAlias(m, restaurantAliases, "tier"),
		PricePerPerson:  firstAlias(m, restaurantAliases, "price"),
		SignatureDishes: firstAlias(m, restaurantAliases, "dishes"),
		LocationNotes:   firstAlias(m, restaurantAliases, "location"),
	}
}

func mapRestaurants(in []map[string]any) []domain.Restaurant {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.Restaurant, 0, len(in))
	for _, m := range in {
		if r := mapRestaurant(m); r.Name != "" {
			out = append(out, r)
		}
	}
	return out
}

func mapDiningCatalog(p map[string]any) *domain.DiningCatalog {
	if p == nil {
		return nil
	}
	c := domain.DiningCatalog{
		LocalSpecialties:  firstSliceStrings(p, "local_specialties", "specialties"),
		Budget:            mapRestaurants(firstSliceMaps(p, diningTierKeys["budget"]...)),
		MidRange:          mapRestaurants(firstSliceMaps(p, diningTierKeys["midrange"]...)),
		FineDining:        mapRestaurants(firstSliceMaps(p, diningTierKeys["fine"]...)),
		UniqueExperiences: firstSliceStrings(p, "unique_experiences", "experiences"),
	}
	if len(c.LocalSpecialties) == 0 && len(c.Budget) == 0 && len(c.MidRange) == 0 &&
		len(c.FineDining) == 0 && len(c.UniqueExperiences) == 0 {
		return nil
	}
	return &c
}

func mapActivity(m map[string]any) domain.Activity {
	return domain.Activity{
		Name:          firstAlias(m, activityAliases, "name"),
		Category:      firstAlias(m, activityAliases, "category"),
		Description:   firstAlias(m, activityAliases, "description"),
		CostRange:     firstAlias(m, activityAliases, "cost"),
		PracticalInfo: firstAlias(m, activityAliases, "practical"),
	}
}

func mapActivities(in []map[string]any) []domain.Activity {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.Activity, 0, len(in))
	for _, m := range in {
		if a := mapActivity(m); a.Name != "" {
			out = append(out, a)
		}
	}
	return out
}

func mapActivityCatalog(p map[string]any) *domain.ActivityCatalog {
	if p == nil {
		return nil
	}
	c := domain.ActivityCatalog{
		MustSee:       mapActivities(firstSliceMaps(p, activityCategoryKeys["must_see"]...)),
		Cultural:      mapActivities(firstSliceMaps(p, activityCategoryKeys["cultural"]...)),
		Outdoor:       mapActivities(firstSliceMaps(p, activityCategoryKeys["outdoor"]...)),
		Entertainment: mapActivities(firstSliceMaps(p, activityCategoryKeys["entertainment"]...)),
		Local:         mapActivities(firstSliceMaps(p, activityCategoryKeys["local"]...)),
		PracticalTips: lookupStr(p, "practical_tips"),
	}
	if len(c.MustSee) == 0 && len(c.Cultural) == 0 && len(c.Outdoor) == 0 &&
		len(c.Entertainment) == 0 && len(c.Local) == 0 && c.PracticalTips == "" {
		return nil
	}
	return &c
}
