package routes

import (
	"encoding/json"

	"golftrip-server/models"
	"golftrip-server/storage"
	"golftrip-server/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/datatypes"
)

type SiteSettingInput struct {
	Value json.RawMessage `json:"value" validate:"required"`
}

func GetSiteSetting(ctx iris.Context) {
	key := ctx.Params().Get("key")

	var setting models.SiteSetting
	query := storage.DB.Where("key = ?", key).Limit(1).Find(&setting)
	if query.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if query.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(&setting)
}

// UpdateSiteSetting upserts the value stored under a key.
func UpdateSiteSetting(ctx iris.Context) {
	key := ctx.Params().Get("key")

	var input SiteSettingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var setting models.SiteSetting
	query := storage.DB.Where("key = ?", key).Limit(1).Find(&setting)
	if query.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	setting.Key = key
	setting.Value = datatypes.JSON(input.Value)

	var saveErr error
	if query.RowsAffected == 0 {
		saveErr = storage.DB.Create(&setting).Error
	} else {
		saveErr = storage.DB.Save(&setting).Error
	}
	if saveErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, models.AuditDataUpdate, "site_setting", setting.ID, nil,
		iris.Map{"key": key}, "Legitimate interest")

	ctx.JSON(&setting)
}
