package routes

import (
	"golftrip-server/models"
	"golftrip-server/services"
	"golftrip-server/storage"
	"golftrip-server/utils"

	"github.com/kataras/iris/v12"
)

type SearchDestinationsInput struct {
	Query         string   `json:"query" validate:"omitempty,max=256"`
	Countries     []string `json:"countries" validate:"omitempty,max=20,dive,max=80"`
	PriceMin      *int     `json:"price_min" validate:"omitempty,min=0"`
	PriceMax      *int     `json:"price_max" validate:"omitempty,min=0"`
	Amenities     []string `json:"amenities" validate:"omitempty,max=20,dive,max=80"`
	Accommodation []string `json:"accommodation" validate:"omitempty,max=10,dive,max=80"`
	FeaturedOnly  bool     `json:"featured_only"`
	SortBy        string   `json:"sort_by" validate:"omitempty,oneof=relevance price_asc price_desc name_asc rating_desc newest"`
	Page          int      `json:"page" validate:"omitempty,min=1"`
	Limit         int      `json:"limit" validate:"omitempty,min=1,max=100"`
}

// SearchDestinations runs a filtered, ranked destination search. Anonymous
// requests work; a logged-in user's profile adds preference scoring.
func SearchDestinations(ctx iris.Context) {
	var input SearchDestinationsInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.PriceMin != nil && input.PriceMax != nil && *input.PriceMax < *input.PriceMin {
		utils.CreateError(iris.StatusBadRequest, "Validation Error",
			"price_max must be greater than or equal to price_min", ctx)
		return
	}

	var requesterID uint
	var profile *models.UserProfile
	if userID, ok := ctx.Values().Get("userID").(uint); ok {
		requesterID = userID
		var loaded models.UserProfile
		query := storage.DB.Where("user_id = ?", userID).Limit(1).Find(&loaded)
		if query.Error == nil && query.RowsAffected > 0 {
			profile = &loaded
		}
	}

	result, err := services.SearchDestinations(services.SearchRequest{
		UserID:        requesterID,
		Query:         input.Query,
		Countries:     input.Countries,
		PriceMin:      input.PriceMin,
		PriceMax:      input.PriceMax,
		Amenities:     input.Amenities,
		Accommodation: input.Accommodation,
		FeaturedOnly:  input.FeaturedOnly,
		SortBy:        input.SortBy,
		Page:          input.Page,
		Limit:         input.Limit,
	}, profile)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(result)
}

// GetSearchFilters returns the filter vocabulary the client renders: known
// countries with counts, price range bounds and the sort options.
func GetSearchFilters(ctx iris.Context) {
	type countryCount struct {
		Country string `json:"country"`
		Count   int    `json:"count"`
	}

	var countries []countryCount
	if err := storage.DB.Model(&models.Destination{}).
		Select("country, COUNT(*) AS count").
		Where("published = ?", true).
		Group("country").Order("count DESC").
		Scan(&countries).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	type priceBounds struct {
		Min int `json:"min"`
		Max int `json:"max"`
	}

	var bounds priceBounds
	if err := storage.DB.Model(&models.Destination{}).
		Select("COALESCE(MIN(price_from), 0) AS min, COALESCE(MAX(price_to), 0) AS max").
		Where("published = ?", true).
		Scan(&bounds).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"countries":    countries,
		"price_range":  bounds,
		"sort_options": services.SortOptions,
		"amenities": []string{
			"Spa", "Pool", "Restaurant", "Driving Range", "Pro Shop",
			"Golf Academy", "Fitness Center", "Beach Access",
		},
	})
}

// GetPopularSearches returns curated starter queries for the empty search box.
func GetPopularSearches(ctx iris.Context) {
	ctx.JSON(iris.Map{
		"popular_searches": services.SearchSuggestions(""),
	})
}
