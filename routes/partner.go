package routes

import (
	"golftrip-server/models"
	"golftrip-server/storage"
	"golftrip-server/utils"

	"github.com/kataras/iris/v12"
)

type PartnerInput struct {
	Name        string `json:"name" validate:"required,max=160"`
	Type        string `json:"type" validate:"required,max=60"`
	Logo        string `json:"logo" validate:"required,url"`
	Description string `json:"description" validate:"omitempty,max=2048"`
	URL         string `json:"url" validate:"omitempty,url"`
	Order       int    `json:"order"`
	Active      *bool  `json:"active"`
}

// GetPartners lists partner logos in display order, optionally narrowed by
// ?type=. Inactive partners are only included when ?active=false asks.
func GetPartners(ctx iris.Context) {
	query := storage.DB.Order("sort_order ASC")
	if ctx.URLParamDefault("active", "true") == "true" {
		query = query.Where("active = ?", true)
	}
	if partnerType := ctx.URLParam("type"); partnerType != "" {
		query = query.Where("type = ?", partnerType)
	}

	partners := []models.Partner{}
	if err := query.Find(&partners).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(partners)
}

func CreatePartner(ctx iris.Context) {
	var input PartnerInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	partner := partnerFromInput(input)

	if err := storage.DB.Create(&partner).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, models.AuditDataCreate, "partner", partner.ID, nil,
		iris.Map{"name": partner.Name}, "Legitimate interest")

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(&partner)
}

func UpdatePartner(ctx iris.Context) {
	id, paramErr := ctx.Params().GetUint("id")
	if paramErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid partner id.", ctx)
		return
	}

	var partner models.Partner
	query := storage.DB.Where("id = ?", id).Limit(1).Find(&partner)
	if query.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if query.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	var input PartnerInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	updated := partnerFromInput(input)
	updated.ID = partner.ID
	updated.CreatedAt = partner.CreatedAt

	if err := storage.DB.Save(&updated).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, models.AuditDataUpdate, "partner", updated.ID, nil,
		iris.Map{"name": updated.Name}, "Legitimate interest")

	ctx.JSON(&updated)
}

func DeletePartner(ctx iris.Context) {
	id, paramErr := ctx.Params().GetUint("id")
	if paramErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid partner id.", ctx)
		return
	}

	var partner models.Partner
	query := storage.DB.Where("id = ?", id).Limit(1).Find(&partner)
	if query.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if query.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	if err := storage.DB.Delete(&partner).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, models.AuditDataDelete, "partner", partner.ID,
		iris.Map{"name": partner.Name}, nil, "Legitimate interest")

	ctx.JSON(iris.Map{"deleted": true})
}

func partnerFromInput(input PartnerInput) models.Partner {
	partner := models.Partner{
		Name:        input.Name,
		Type:        input.Type,
		Logo:        input.Logo,
		Description: input.Description,
		URL:         input.URL,
		Order:       input.Order,
		Active:      true,
	}
	if input.Active != nil {
		partner.Active = *input.Active
	}
	return partner
}
