package services

import (
	"math"
	"sort"
	"strings"

	"golftrip-server/models"
	"golftrip-server/storage"

	"golang.org/x/exp/slices"
)

// searchFetchCap bounds how many candidate rows the ranker pulls from
// storage; sorting and pagination happen in memory after that.
const searchFetchCap = 1000

var SortOptions = map[string]string{
	"relevance":   "Most Relevant",
	"price_asc":   "Price: Low to High",
	"price_desc":  "Price: High to Low",
	"name_asc":    "Name: A to Z",
	"rating_desc": "Highest Rated",
	"newest":      "Newest First",
}

type SearchRequest struct {
	UserID        uint
	Query         string
	Countries     []string
	PriceMin      *int
	PriceMax      *int
	Amenities     []string
	Accommodation []string
	FeaturedOnly  bool
	SortBy        string
	Page          int
	Limit         int
}

type SearchResult struct {
	Destinations   []models.Destination   `json:"destinations"`
	TotalCount     int                    `json:"total_count"`
	Page           int                    `json:"page"`
	TotalPages     int                    `json:"total_pages"`
	FiltersApplied map[string]interface{} `json:"filters_applied"`
	AIInsights     string                 `json:"ai_insights,omitempty"`
	Suggestions    []string               `json:"search_suggestions"`
}

// SearchDestinations filters and orders destinations for a query. The
// storage query narrows the candidate set; scoring, secondary filters,
// sorting and pagination are in-memory single passes.
func SearchDestinations(req SearchRequest, profile *models.UserProfile) (*SearchResult, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 {
		req.Limit = 20
	}

	q := storage.DB.Model(&models.Destination{}).Where("published = ?", true)

	if query := strings.TrimSpace(req.Query); query != "" {
		pattern := "%" + query + "%"
		q = q.Where("name ILIKE ? OR short_desc ILIKE ? OR long_desc ILIKE ?", pattern, pattern, pattern)
	}

	if len(req.Countries) > 0 {
		q = q.Where("country IN ?", req.Countries)
	}

	// Either bound of the destination's price range falling inside the
	// requested band counts as a match.
	if req.PriceMin != nil || req.PriceMax != nil {
		min, max := 0, math.MaxInt32
		if req.PriceMin != nil {
			min = *req.PriceMin
		}
		if req.PriceMax != nil {
			max = *req.PriceMax
		}
		q = q.Where("(price_from BETWEEN ? AND ?) OR (price_to BETWEEN ? AND ?)", min, max, min, max)
	}

	if req.FeaturedOnly {
		q = q.Where("featured = ?", true)
	}

	var destinations []models.Destination
	if err := q.Limit(searchFetchCap).Find(&destinations).Error; err != nil {
		return nil, err
	}

	destinations = ApplyPostFilters(destinations, req)
	ScoreDestinations(destinations, req, profile)
	SortDestinations(destinations, req.SortBy)

	totalCount := len(destinations)
	totalPages := int(math.Ceil(float64(totalCount) / float64(req.Limit)))
	pageItems := Paginate(destinations, req.Page, req.Limit)

	return &SearchResult{
		Destinations:   pageItems,
		TotalCount:     totalCount,
		Page:           req.Page,
		TotalPages:     totalPages,
		FiltersApplied: appliedFilters(req),
		AIInsights:     searchInsight(req, totalCount),
		Suggestions:    SearchSuggestions(req.Query),
	}, nil
}

// searchInsight is attached for signed-in users searching with a query. A
// travel profile is not required, only an authenticated account.
func searchInsight(req SearchRequest, totalCount int) string {
	if req.UserID == 0 || strings.TrimSpace(req.Query) == "" {
		return ""
	}
	return GenerateSearchInsight(req.Query, totalCount)
}

// ApplyPostFilters runs the keyword filters the storage query cannot express
// cheaply: amenity containment and accommodation keyword containment against
// the long description.
func ApplyPostFilters(destinations []models.Destination, req SearchRequest) []models.Destination {
	filtered := destinations

	if len(req.Amenities) > 0 {
		kept := filtered[:0]
		for _, dest := range filtered {
			haystack := strings.ToLower(dest.Amenities)
			for _, amenity := range req.Amenities {
				if strings.Contains(haystack, strings.ToLower(amenity)) {
					kept = append(kept, dest)
					break
				}
			}
		}
		filtered = kept
	}

	if len(req.Accommodation) > 0 {
		kept := filtered[:0]
		for _, dest := range filtered {
			haystack := strings.ToLower(dest.LongDesc)
			for _, acc := range req.Accommodation {
				if strings.Contains(haystack, strings.ToLower(acc)) {
					kept = append(kept, dest)
					break
				}
			}
		}
		filtered = kept
	}

	return filtered
}

// ScoreDestinations computes the additive relevance score in place.
func ScoreDestinations(destinations []models.Destination, req SearchRequest, profile *models.UserProfile) {
	queryLower := strings.ToLower(strings.TrimSpace(req.Query))
	queryWords := strings.Fields(queryLower)

	for i := range destinations {
		dest := &destinations[i]
		score := 0

		if queryLower != "" {
			textContent := strings.ToLower(dest.Name + " " + dest.ShortDesc + " " + dest.LongDesc)
			for _, word := range queryWords {
				if strings.Contains(textContent, word) {
					score += 10
				}
			}
			if strings.Contains(strings.ToLower(dest.Name), queryLower) {
				score += 50
			}
		}

		if profile != nil {
			if slices.Contains(profile.PreferredCountryList(), dest.Country) {
				score += 30
			}

			avgPrice := (dest.PriceFrom + dest.PriceTo) / 2
			if avgPrice >= profile.BudgetMin && avgPrice <= profile.BudgetMax {
				score += 20
			}

			if profile.PlayingLevel != "" && slices.Contains(dest.HighlightList(), profile.PlayingLevel) {
				score += 15
			}
		}

		if dest.Featured {
			score += 25
		}
		if len(dest.ImageList()) > 3 {
			score += 5
		}
		if len(dest.PackageList()) > 0 {
			score += 10
		}

		dest.RelevanceScore = score
	}
}

// SortDestinations orders results by the requested key. An unknown key (and
// rating_desc, which has no rating data behind it yet) leaves the order
// unchanged.
func SortDestinations(destinations []models.Destination, sortBy string) {
	switch sortBy {
	case "relevance", "":
		sort.SliceStable(destinations, func(i, j int) bool {
			return destinations[i].RelevanceScore > destinations[j].RelevanceScore
		})
	case "price_asc":
		sort.SliceStable(destinations, func(i, j int) bool {
			return destinations[i].PriceFrom < destinations[j].PriceFrom
		})
	case "price_desc":
		sort.SliceStable(destinations, func(i, j int) bool {
			return destinations[i].PriceTo > destinations[j].PriceTo
		})
	case "name_asc":
		sort.SliceStable(destinations, func(i, j int) bool {
			return destinations[i].Name < destinations[j].Name
		})
	case "newest":
		sort.SliceStable(destinations, func(i, j int) bool {
			return destinations[i].CreatedAt.After(destinations[j].CreatedAt)
		})
	}
}

// Paginate slices one page out of the sorted result set.
func Paginate(destinations []models.Destination, page, limit int) []models.Destination {
	start := (page - 1) * limit
	if start >= len(destinations) {
		return []models.Destination{}
	}
	end := start + limit
	if end > len(destinations) {
		end = len(destinations)
	}
	return destinations[start:end]
}

func appliedFilters(req SearchRequest) map[string]interface{} {
	applied := map[string]interface{}{}

	if req.Query != "" {
		applied["search_query"] = req.Query
	}
	if len(req.Countries) > 0 {
		applied["countries"] = req.Countries
	}
	if req.PriceMin != nil || req.PriceMax != nil {
		priceRange := map[string]interface{}{}
		if req.PriceMin != nil {
			priceRange["min"] = *req.PriceMin
		}
		if req.PriceMax != nil {
			priceRange["max"] = *req.PriceMax
		}
		applied["price_range"] = priceRange
	}
	if len(req.Amenities) > 0 {
		applied["amenities"] = req.Amenities
	}
	if req.FeaturedOnly {
		applied["featured_only"] = true
	}

	return applied
}

// SearchSuggestions produces follow-up query strings from fixed heuristics.
func SearchSuggestions(query string) []string {
	if strings.TrimSpace(query) == "" {
		return []string{
			"luxury golf resorts",
			"links courses Scotland",
			"Spain golf packages",
			"championship golf courses",
			"golf with spa",
		}
	}

	queryLower := strings.ToLower(query)
	var suggestions []string

	switch {
	case strings.Contains(queryLower, "spain"):
		suggestions = []string{"Spain Costa del Sol", "Spain Mallorca golf", "Spain luxury resorts"}
	case strings.Contains(queryLower, "scotland"):
		suggestions = []string{"Scotland St Andrews", "Scotland links courses", "Scotland Highlands golf"}
	case strings.Contains(queryLower, "luxury"):
		suggestions = []string{"luxury golf spa resorts", "5-star golf hotels", "premium golf packages"}
	default:
		suggestions = []string{
			query + " packages",
			query + " luxury",
			query + " all-inclusive",
		}
	}

	if len(suggestions) > 5 {
		suggestions = suggestions[:5]
	}
	return suggestions
}
