package services

import (
	"encoding/json"
	"testing"
	"time"

	"golftrip-server/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func destinationNamed(name string, opts func(*models.Destination)) models.Destination {
	dest := models.Destination{
		Name:      name,
		Country:   "Spain",
		PriceFrom: 5000,
		PriceTo:   10000,
	}
	if opts != nil {
		opts(&dest)
	}
	return dest
}

func TestScoreDestinationsExactNameOutranksWordMatch(t *testing.T) {
	destinations := []models.Destination{
		destinationNamed("Highland Golf Retreat", func(d *models.Destination) {
			d.ShortDesc = "links golf in the mountains"
		}),
		destinationNamed("Links Paradise", func(d *models.Destination) {
			d.ShortDesc = "the finest links golf"
		}),
	}

	ScoreDestinations(destinations, SearchRequest{Query: "links"}, nil)

	if destinations[1].RelevanceScore <= destinations[0].RelevanceScore {
		t.Errorf("expected name substring match to outrank description match: %d vs %d",
			destinations[1].RelevanceScore, destinations[0].RelevanceScore)
	}
}

func TestScoreDestinationsProfileBonuses(t *testing.T) {
	highlights, _ := json.Marshal([]string{"Advanced", "Links golf"})

	destinations := []models.Destination{
		destinationNamed("Plain", nil),
		destinationNamed("Matching", func(d *models.Destination) {
			d.Country = "Scotland"
			d.Highlights = datatypes.JSON(highlights)
		}),
	}

	countries, _ := json.Marshal([]string{"Scotland"})
	profile := &models.UserProfile{
		BudgetMin:          0,
		BudgetMax:          20000,
		PreferredCountries: datatypes.JSON(countries),
		PlayingLevel:       "Advanced",
	}

	ScoreDestinations(destinations, SearchRequest{}, profile)

	// Both get the budget bonus; the second adds country and playing level
	diff := destinations[1].RelevanceScore - destinations[0].RelevanceScore
	if diff != 30+15 {
		t.Errorf("expected 45 point preference gap, got %d", diff)
	}
}

func TestScoreDestinationsFeaturedAndContent(t *testing.T) {
	images, _ := json.Marshal([]string{"a.jpg", "b.jpg", "c.jpg", "d.jpg"})
	packages, _ := json.Marshal([]models.PackageOffer{{Name: "Week", Nights: 7}})

	destinations := []models.Destination{
		destinationNamed("Rich", func(d *models.Destination) {
			d.Featured = true
			d.Images = string(images)
			d.Packages = datatypes.JSON(packages)
		}),
	}

	ScoreDestinations(destinations, SearchRequest{}, nil)

	if destinations[0].RelevanceScore != 25+5+10 {
		t.Errorf("expected score 40 from featured, images and packages, got %d", destinations[0].RelevanceScore)
	}
}

func TestSortDestinationsPriceAsc(t *testing.T) {
	destinations := []models.Destination{
		destinationNamed("C", func(d *models.Destination) { d.PriceFrom = 9000 }),
		destinationNamed("A", func(d *models.Destination) { d.PriceFrom = 3000 }),
		destinationNamed("B", func(d *models.Destination) { d.PriceFrom = 6000 }),
	}

	SortDestinations(destinations, "price_asc")

	for i := 1; i < len(destinations); i++ {
		if destinations[i].PriceFrom < destinations[i-1].PriceFrom {
			t.Fatalf("expected non-decreasing prices, got %d before %d",
				destinations[i-1].PriceFrom, destinations[i].PriceFrom)
		}
	}
}

func TestSortDestinationsPriceDesc(t *testing.T) {
	destinations := []models.Destination{
		destinationNamed("A", func(d *models.Destination) { d.PriceTo = 3000 }),
		destinationNamed("C", func(d *models.Destination) { d.PriceTo = 9000 }),
	}

	SortDestinations(destinations, "price_desc")

	if destinations[0].PriceTo != 9000 {
		t.Errorf("expected highest price_to first, got %d", destinations[0].PriceTo)
	}
}

func TestSortDestinationsNameAsc(t *testing.T) {
	destinations := []models.Destination{
		destinationNamed("Zebra Links", nil),
		destinationNamed("Alpine Golf", nil),
	}

	SortDestinations(destinations, "name_asc")

	if destinations[0].Name != "Alpine Golf" {
		t.Errorf("expected alphabetical order, got %q first", destinations[0].Name)
	}
}

func TestSortDestinationsNewest(t *testing.T) {
	old := destinationNamed("Old", nil)
	old.Model = gorm.Model{CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	recent := destinationNamed("Recent", nil)
	recent.Model = gorm.Model{CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}

	destinations := []models.Destination{old, recent}
	SortDestinations(destinations, "newest")

	if destinations[0].Name != "Recent" {
		t.Errorf("expected newest first, got %q", destinations[0].Name)
	}
}

func TestSortDestinationsUnknownKeyKeepsOrder(t *testing.T) {
	destinations := []models.Destination{
		destinationNamed("First", nil),
		destinationNamed("Second", nil),
	}

	SortDestinations(destinations, "rating_desc")

	if destinations[0].Name != "First" || destinations[1].Name != "Second" {
		t.Errorf("expected order unchanged for rating_desc")
	}
}

func TestPaginateConcatenation(t *testing.T) {
	var destinations []models.Destination
	for i := 0; i < 25; i++ {
		destinations = append(destinations, destinationNamed(string(rune('A'+i)), nil))
	}

	var collected []models.Destination
	for page := 1; ; page++ {
		items := Paginate(destinations, page, 10)
		if len(items) == 0 {
			break
		}
		collected = append(collected, items...)
	}

	if len(collected) != len(destinations) {
		t.Fatalf("expected %d items across pages, got %d", len(destinations), len(collected))
	}
	for i := range destinations {
		if collected[i].Name != destinations[i].Name {
			t.Fatalf("page concatenation reordered item %d", i)
		}
	}
}

func TestPaginateBeyondEnd(t *testing.T) {
	destinations := []models.Destination{destinationNamed("Only", nil)}

	if items := Paginate(destinations, 5, 10); len(items) != 0 {
		t.Errorf("expected empty page past the end, got %d items", len(items))
	}
}

func TestApplyPostFiltersAmenities(t *testing.T) {
	spa, _ := json.Marshal([]string{"Spa", "Pool"})
	golf, _ := json.Marshal([]string{"Driving Range"})

	destinations := []models.Destination{
		destinationNamed("With Spa", func(d *models.Destination) { d.Amenities = string(spa) }),
		destinationNamed("No Spa", func(d *models.Destination) { d.Amenities = string(golf) }),
	}

	filtered := ApplyPostFilters(destinations, SearchRequest{Amenities: []string{"spa"}})

	if len(filtered) != 1 || filtered[0].Name != "With Spa" {
		t.Errorf("expected only the spa destination, got %v", filtered)
	}
}

func TestApplyPostFiltersAccommodation(t *testing.T) {
	destinations := []models.Destination{
		destinationNamed("Lux", func(d *models.Destination) {
			d.LongDesc = "Luxury accommodation with spa and pool"
		}),
		destinationNamed("Basic", func(d *models.Destination) {
			d.LongDesc = "Simple rooms close to the course"
		}),
	}

	filtered := ApplyPostFilters(destinations, SearchRequest{Accommodation: []string{"luxury"}})

	if len(filtered) != 1 || filtered[0].Name != "Lux" {
		t.Errorf("expected only the luxury destination, got %v", filtered)
	}
}

func TestSearchSuggestions(t *testing.T) {
	if got := SearchSuggestions(""); len(got) != 5 {
		t.Errorf("expected 5 default suggestions, got %d", len(got))
	}

	spain := SearchSuggestions("golf in Spain")
	if len(spain) == 0 || spain[0] != "Spain Costa del Sol" {
		t.Errorf("expected Spain suggestions, got %v", spain)
	}

	generic := SearchSuggestions("portugal")
	if len(generic) != 3 || generic[0] != "portugal packages" {
		t.Errorf("expected derived suggestions, got %v", generic)
	}
}

func TestSearchInsightRequiresSignedInUserAndQuery(t *testing.T) {
	withUser := SearchRequest{UserID: 7, Query: "links golf"}
	if got := searchInsight(withUser, 3); got == "" {
		t.Error("expected an insight for a signed-in user with a query")
	}

	anonymous := SearchRequest{Query: "links golf"}
	if got := searchInsight(anonymous, 3); got != "" {
		t.Errorf("expected no insight for anonymous search, got %q", got)
	}

	noQuery := SearchRequest{UserID: 7}
	if got := searchInsight(noQuery, 3); got != "" {
		t.Errorf("expected no insight without a query, got %q", got)
	}

	blankQuery := SearchRequest{UserID: 7, Query: "   "}
	if got := searchInsight(blankQuery, 3); got != "" {
		t.Errorf("expected no insight for a blank query, got %q", got)
	}
}
