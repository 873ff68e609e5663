package routes

import (
	"encoding/json"

	"golftrip-server/models"
	"golftrip-server/storage"
	"golftrip-server/utils"

	"github.com/kataras/iris/v12"
)

type UpdateProfileInput struct {
	BudgetMin               *int     `json:"budgetMin" validate:"omitempty,min=0"`
	BudgetMax               *int     `json:"budgetMax" validate:"omitempty,min=0"`
	PreferredCountries      []string `json:"preferredCountries"`
	PlayingLevel            string   `json:"playingLevel" validate:"omitempty,oneof=Beginner Intermediate Advanced Professional"`
	AccommodationPreference string   `json:"accommodationPreference" validate:"omitempty,max=20"`
	TripDurationDays        *int     `json:"tripDurationDays" validate:"omitempty,min=1,max=60"`
	GroupSize               *int     `json:"groupSize" validate:"omitempty,min=1,max=64"`
	Handicap                *int     `json:"handicap" validate:"omitempty,min=-10,max=54"`
	PreferredTravelMonths   []string `json:"preferredTravelMonths"`
	DietaryRequirements     string   `json:"dietaryRequirements" validate:"omitempty,max=512"`
	SpecialRequests         string   `json:"specialRequests" validate:"omitempty,max=2048"`
}

func GetUserProfile(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var profile models.UserProfile
	query := storage.DB.Where("user_id = ?", userID).Limit(1).Find(&profile)
	if query.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if query.RowsAffected == 0 {
		// An empty profile with defaults, not an error
		profile = models.UserProfile{UserID: userID}
		if err := storage.DB.Create(&profile).Error; err != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
	}

	ctx.JSON(&profile)
}

func UpdateUserProfile(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var input UpdateProfileInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.BudgetMin != nil && input.BudgetMax != nil && *input.BudgetMax < *input.BudgetMin {
		utils.CreateError(iris.StatusBadRequest, "Validation Error",
			"budgetMax must be greater than or equal to budgetMin", ctx)
		return
	}

	var profile models.UserProfile
	query := storage.DB.Where("user_id = ?", userID).Limit(1).Find(&profile)
	if query.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if query.RowsAffected == 0 {
		profile = models.UserProfile{UserID: userID}
	}

	if input.BudgetMin != nil {
		profile.BudgetMin = *input.BudgetMin
	}
	if input.BudgetMax != nil {
		profile.BudgetMax = *input.BudgetMax
	}
	if input.PreferredCountries != nil {
		marshalled, _ := json.Marshal(input.PreferredCountries)
		profile.PreferredCountries = marshalled
	}
	if input.PlayingLevel != "" {
		profile.PlayingLevel = input.PlayingLevel
	}
	if input.AccommodationPreference != "" {
		profile.AccommodationPreference = input.AccommodationPreference
	}
	if input.TripDurationDays != nil {
		profile.TripDurationDays = input.TripDurationDays
	}
	if input.GroupSize != nil {
		profile.GroupSize = input.GroupSize
	}
	if input.Handicap != nil {
		profile.Handicap = input.Handicap
	}
	if input.PreferredTravelMonths != nil {
		marshalled, _ := json.Marshal(input.PreferredTravelMonths)
		profile.PreferredTravelMonths = marshalled
	}
	if input.DietaryRequirements != "" {
		profile.DietaryRequirements = input.DietaryRequirements
	}
	if input.SpecialRequests != "" {
		profile.SpecialRequests = input.SpecialRequests
	}

	profile.Tier = profileTier(&profile)

	if err := storage.DB.Save(&profile).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, models.AuditDataUpdate, "user_profile", profile.ID, nil, nil, "Consent")

	ctx.JSON(&profile)
}

// profileTier scores completeness 0-3. Tier gates nothing today but the
// client surfaces it as a progress indicator.
func profileTier(p *models.UserProfile) int {
	filled := 0
	if p.BudgetMax > 0 && p.BudgetMax != 50000 {
		filled++
	}
	if len(p.PreferredCountryList()) > 0 {
		filled++
	}
	if p.Handicap != nil {
		filled++
	}
	if p.TripDurationDays != nil {
		filled++
	}
	if p.GroupSize != nil {
		filled++
	}
	if p.DietaryRequirements != "" || p.SpecialRequests != "" {
		filled++
	}

	switch {
	case filled >= 5:
		return 3
	case filled >= 3:
		return 2
	case filled >= 1:
		return 1
	}
	return 0
}
