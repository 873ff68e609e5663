package routes

import (
	"golftrip-server/models"
	"golftrip-server/services"
	"golftrip-server/storage"
	"golftrip-server/utils"

	"github.com/kataras/iris/v12"
)

type ChatInput struct {
	Message string `json:"message" validate:"required,max=2048"`
}

// Chat answers a concierge question. Signed-in users get answers shaped by
// their travel profile.
func Chat(ctx iris.Context) {
	var input ChatInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	profile := profileForRequest(ctx)

	ctx.JSON(iris.Map{
		"reply": services.ChatReply(input.Message, profile),
	})
}

// GetRecommendations returns destinations picked for the signed-in user.
func GetRecommendations(ctx iris.Context) {
	limit := ctx.URLParamIntDefault("limit", 5)
	if limit < 1 || limit > 20 {
		limit = 5
	}

	profile := profileForRequest(ctx)

	destinations, err := services.RecommendDestinations(profile, limit)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"recommendations": destinations})
}

func profileForRequest(ctx iris.Context) *models.UserProfile {
	userID, ok := ctx.Values().Get("userID").(uint)
	if !ok {
		return nil
	}

	var profile models.UserProfile
	query := storage.DB.Where("user_id = ?", userID).Limit(1).Find(&profile)
	if query.Error != nil || query.RowsAffected == 0 {
		return nil
	}
	return &profile
}
