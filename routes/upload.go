package routes

import (
	"golftrip-server/models"
	"golftrip-server/storage"
	"golftrip-server/utils"

	"github.com/kataras/iris/v12"
)

type UploadImageInput struct {
	Image string `json:"image" validate:"required"`
}

// UploadImage accepts a base64-encoded image and returns the stored URL.
func UploadImage(ctx iris.Context) {
	var input UploadImageInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	publicID := utils.GenerateShortToken(16)
	result := storage.UploadBase64Image(input.Image, publicID)

	if result["url"] == "" {
		utils.CreateError(iris.StatusBadGateway, "Upload Error",
			"The image could not be stored.", ctx)
		return
	}

	utils.Audit(ctx, models.AuditFileUpload, "media", 0, nil,
		iris.Map{"url": result["url"]}, "Legitimate interest")

	ctx.JSON(result)
}

type DeleteImageInput struct {
	URL string `json:"url" validate:"required,url"`
}

func DeleteImage(ctx iris.Context) {
	var input DeleteImageInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !storage.DeleteImage(input.URL) {
		utils.CreateError(iris.StatusBadGateway, "Upload Error",
			"The image could not be deleted.", ctx)
		return
	}

	utils.Audit(ctx, models.AuditFileDelete, "media", 0,
		iris.Map{"url": input.URL}, nil, "Legitimate interest")

	ctx.JSON(iris.Map{"deleted": true})
}
