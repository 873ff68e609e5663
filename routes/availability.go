package routes

import (
	"errors"
	"time"

	"golftrip-server/services"
	"golftrip-server/utils"

	"github.com/kataras/iris/v12"
)

// GetAvailability returns the tee sheet for one destination and date.
// The date comes in as ?date=YYYY-MM-DD and defaults to tomorrow.
func GetAvailability(ctx iris.Context) {
	destinationID, paramErr := ctx.Params().GetUint("id")
	if paramErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid destination id.", ctx)
		return
	}

	date := time.Now().AddDate(0, 0, 1)
	if raw := ctx.URLParam("date"); raw != "" {
		parsed, parseErr := time.Parse("2006-01-02", raw)
		if parseErr != nil {
			utils.CreateError(iris.StatusBadRequest, "Bad Request",
				"date must be formatted YYYY-MM-DD.", ctx)
			return
		}
		date = parsed
	}

	availability, err := services.CheckAvailability(destinationID, date)
	if err != nil {
		if errors.Is(err, services.ErrDestinationNotFound) {
			utils.CreateNotFound(ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(availability)
}
