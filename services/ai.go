package services

import (
	"fmt"
	"strings"

	"golftrip-server/models"
	"golftrip-server/storage"
)

// The AI layer answers from fixed templates. The original external
// text-completion integration was never wired through these paths; callers
// get the canned message the rest of the product was built against.

// GenerateSearchInsight returns the insight sentence attached to search
// results for signed-in users.
func GenerateSearchInsight(query string, resultCount int) string {
	return fmt.Sprintf(
		"Found %d destinations matching your search. Based on your preferences, I recommend checking out the top-rated options for the best value.",
		resultCount)
}

// ChatReply produces a canned concierge-style answer for the travel chat.
func ChatReply(message string, profile *models.UserProfile) string {
	messageLower := strings.ToLower(message)

	switch {
	case strings.Contains(messageLower, "budget") || strings.Contains(messageLower, "cheap"):
		if profile != nil && profile.BudgetMax > 0 {
			return fmt.Sprintf(
				"With a budget around %d SEK per person there are solid options in Spain, Portugal and Turkey. Try filtering by price to narrow it down.",
				profile.BudgetMax)
		}
		return "Portugal and Turkey offer the best value golf packages right now. Try filtering by price to narrow it down."
	case strings.Contains(messageLower, "links"):
		return "For classic links golf, Scotland and Ireland are hard to beat. St Andrews and the Highlands are perennial favourites."
	case strings.Contains(messageLower, "winter") || strings.Contains(messageLower, "sun"):
		return "For winter sun, look at southern Spain, Morocco, Dubai or South Africa - all play well from November through February."
	default:
		return "I can help you find golf destinations by country, budget or course style. What matters most for your next trip?"
	}
}

// RecommendDestinations returns up to limit published destinations matching
// the profile's preferred countries and budget band, featured first.
func RecommendDestinations(profile *models.UserProfile, limit int) ([]models.Destination, error) {
	if limit <= 0 {
		limit = 5
	}

	q := storage.DB.Model(&models.Destination{}).Where("published = ?", true)

	if profile != nil {
		if countries := profile.PreferredCountryList(); len(countries) > 0 {
			q = q.Where("country IN ?", countries)
		}
		if profile.BudgetMax > 0 {
			q = q.Where("price_from <= ?", profile.BudgetMax)
		}
	}

	var destinations []models.Destination
	err := q.Order("featured DESC").Order("created_at DESC").Limit(limit).Find(&destinations).Error
	return destinations, err
}
