package guide

import (
	"fmt"
	"time"

	"github.com/Mr-Neutr0n/travel-agent-ai/internal/domain"
)

// The story is the intermediate document model: an ordered list of blocks
// built deterministically from the record, then handed to the PDF renderer.
// Keeping the build step pure makes section order and skip rules testable
// without decoding PDF output.

type blockKind int

const (
	blockParagraph blockKind = iota
	blockBullet
	blockPageBreak
	blockSpacer
)

type role int

const (
	roleTitle role = iota
	roleSubtitle
	roleSection
	roleSubsection
	roleItemHeader
	roleBody
	roleBullet
	roleFooter
)

type block struct {
	kind blockKind
	role role
	text string
	gap  float64 // spacer height, mm
}

func paragraph(r role, text string) block { return block{kind: blockParagraph, role: r, text: text} }
func bullet(text string) block            { return block{kind: blockBullet, role: roleBullet, text: text} }
func pageBreak() block                    { return block{kind: blockPageBreak} }
func spacer(mm float64) block             { return block{kind: blockSpacer, gap: mm} }

const titleDescription = "This comprehensive travel guide has been created by our travel " +
	"planning system to help you make the most of your visit. Inside you'll find carefully " +
	"curated recommendations for accommodations, dining, and activities, all organized by " +
	"price range and category to suit your preferences and budget."

// buildStory assembles the full document in strict order. Every step is a
// no-op when its input is absent or empty; only the title block and footer
// are unconditional.
func buildStory(destination string, rec domain.TravelRecord, now time.Time) []block {
	var story []block
	story = append(story, titleBlocks(destination, now)...)
	story = append(story, pageBreak())
	story = append(story, summaryBlocks(rec.Summary)...)
	story = append(story, hotelBlocks(rec.Hotels)...)
	story = append(story, diningBlocks(rec.Restaurants)...)
	story = append(story, activityBlocks(rec.Activities)...)
	story = append(story, footerBlocks(destination, now)...)
	return story
}

func titleBlocks(destination string, now time.Time) []block {
	return []block{
		paragraph(roleTitle, "Travel Guide to "+destination),
		spacer(18),
		paragraph(roleSubtitle, "Your AI-Powered Travel Companion"),
		spacer(11),
		paragraph(roleBody, "Generated on "+now.Format("January 2, 2006")),
		spacer(35),
		paragraph(roleBody, titleDescription),
	}
}

func summaryBlocks(summary string) []block {
	if summary == "" {
		return nil
	}
	return []block{
		paragraph(roleSection, "Executive Summary"),
		paragraph(roleBody, summary),
		spacer(7),
	}
}

func hotelBlocks(c *domain.HotelCatalog) []block {
	if c == nil {
		return nil
	}
	story := []block{paragraph(roleSection, "Accommodation Recommendations")}
	if c.LocationNotes != "" {
		story = append(story,
			paragraph(roleSubsection, "Best Areas to Stay"),
			paragraph(roleBody, c.LocationNotes),
			spacer(5),
		)
	}
	story = append(story, hotelTier("Budget Hotels (Under $100/night)", c.Budget)...)
	story = append(story, hotelTier("Mid-Range Hotels ($100-250/night)", c.MidRange)...)
	story = append(story, hotelTier("Luxury Hotels ($250+/night)", c.Luxury)...)
	return story
}

func hotelTier(title string, hotels []domain.Hotel) []block {
	if len(hotels) == 0 {
		return nil
	}
	story := []block{paragraph(roleSubsection, title)}
	for _, h := range hotels {
		// Fixed-shape layout: all four lines render even when the source
		// text is empty.
		story = append(story,
			paragraph(roleItemHeader, h.Name),
			paragraph(roleBody, "Price Range: "+h.PricePerNight),
			paragraph(roleBody, "Location: "+h.Location),
			paragraph(roleBody, h.Description),
			spacer(3.5),
		)
	}
	story = append(story, spacer(5))
	return story
}

func diningBlocks(c *domain.DiningCatalog) []block {
	if c == nil {
		return nil
	}
	story := []block{paragraph(roleSection, "Dining Recommendations")}
	if len(c.LocalSpecialties) > 0 {
		story = append(story, paragraph(roleSubsection, "Local Specialties & Must-Try Dishes"))
		for _, s := range c.LocalSpecialties {
			story = append(story, bullet(s))
		}
		story = append(story, spacer(5))
	}
	story = append(story, restaurantTier("Budget Dining (Under $25/person)", c.Budget)...)
	story = append(story, restaurantTier("Mid-Range Dining ($25-60/person)", c.MidRange)...)
	story = append(story, restaurantTier("Fine Dining ($60+/person)", c.FineDining)...)
	if len(c.UniqueExperiences) > 0 {
		story = append(story, paragraph(roleSubsection, "Unique Dining Experiences"))
		for _, e := range c.UniqueExperiences {
			story = append(story, bullet(e))
		}
		story = append(story, spacer(5))
	}
	return story
}

func restaurantTier(title string, restaurants []domain.Restaurant) []block {
	if len(restaurants) == 0 {
		return nil
	}
	story := []block{paragraph(roleSubsection, title)}
	for _, r := range restaurants {
		header := r.Name
		if r.Cuisine != "" {
			header = r.Name + " - " + r.Cuisine
		}
		story = append(story,
			paragraph(roleItemHeader, header),
			paragraph(roleBody, "Price Range: "+r.PricePerPerson),
			paragraph(roleBody, "Signature Dishes: "+r.SignatureDishes),
			paragraph(roleBody, "Location: "+r.LocationNotes),
			spacer(3.5),
		)
	}
	story = append(story, spacer(5))
	return story
}

func activityBlocks(c *domain.ActivityCatalog) []block {
	if c == nil {
		return nil
	}
	story := []block{paragraph(roleSection, "Activities & Attractions")}
	story = append(story, activityCategory("Must-See Attractions", c.MustSee)...)
	story = append(story, activityCategory("Cultural Experiences", c.Cultural)...)
	story = append(story, activityCategory("Outdoor Activities", c.Outdoor)...)
	story = append(story, activityCategory("Entertainment & Nightlife", c.Entertainment)...)
	story = append(story, activityCategory("Local Experiences", c.Local)...)
	if c.PracticalTips != "" {
		story = append(story,
			paragraph(roleSubsection, "Practical Tips"),
			paragraph(roleBody, c.PracticalTips),
			spacer(5),
		)
	}
	return story
}

func activityCategory(title string, activities []domain.Activity) []block {
	if len(activities) == 0 {
		return nil
	}
	story := []block{paragraph(roleSubsection, title)}
	for _, a := range activities {
		header := a.Name
		if a.Category != "" {
			header = a.Name + " - " + a.Category
		}
		story = append(story,
			paragraph(roleItemHeader, header),
			paragraph(roleBody, "Cost: "+a.CostRange),
			paragraph(roleBody, a.Description),
			paragraph(roleBody, "Practical Info: "+a.PracticalInfo),
			spacer(3.5),
		)
	}
	story = append(story, spacer(5))
	return story
}

func footerBlocks(destination string, now time.Time) []block {
	text := fmt.Sprintf(
		"This travel guide was generated by Travel Agent AI on %s.\n"+
			"Information is subject to change. Please verify details before making reservations.\n"+
			"Have an amazing trip to %s!",
		now.Format("January 2, 2006 at 3:04 PM"), destination)
	return []block{
		pageBreak(),
		spacer(70),
		paragraph(roleFooter, text),
	}
}
