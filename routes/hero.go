package routes

import (
	"golftrip-server/models"
	"golftrip-server/storage"
	"golftrip-server/utils"

	"github.com/kataras/iris/v12"
)

type HeroSlideInput struct {
	Title         string `json:"title" validate:"required,max=160"`
	Subtitle      string `json:"subtitle" validate:"required,max=300"`
	Kicker        string `json:"kicker" validate:"omitempty,max=120"`
	Image         string `json:"image" validate:"required,url"`
	DestinationID *uint  `json:"destinationID"`
	CTAText       string `json:"ctaText" validate:"omitempty,max=60"`
	CTAURL        string `json:"ctaURL" validate:"omitempty,max=300"`
	Order         int    `json:"order"`
	Active        *bool  `json:"active"`
}

// GetHeroSlides lists carousel slides in display order. Hidden slides are
// only included when ?active=false asks for them.
func GetHeroSlides(ctx iris.Context) {
	query := storage.DB.Order("sort_order ASC")
	if ctx.URLParamDefault("active", "true") == "true" {
		query = query.Where("active = ?", true)
	}

	slides := []models.HeroSlide{}
	if err := query.Find(&slides).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(slides)
}

func CreateHeroSlide(ctx iris.Context) {
	var input HeroSlideInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	slide := heroSlideFromInput(input)

	if err := storage.DB.Create(&slide).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, models.AuditDataCreate, "hero_slide", slide.ID, nil,
		iris.Map{"title": slide.Title}, "Legitimate interest")

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(&slide)
}

func UpdateHeroSlide(ctx iris.Context) {
	id, paramErr := ctx.Params().GetUint("id")
	if paramErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid slide id.", ctx)
		return
	}

	var slide models.HeroSlide
	query := storage.DB.Where("id = ?", id).Limit(1).Find(&slide)
	if query.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if query.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	var input HeroSlideInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	updated := heroSlideFromInput(input)
	updated.ID = slide.ID
	updated.CreatedAt = slide.CreatedAt

	if err := storage.DB.Save(&updated).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, models.AuditDataUpdate, "hero_slide", updated.ID, nil,
		iris.Map{"title": updated.Title}, "Legitimate interest")

	ctx.JSON(&updated)
}

func DeleteHeroSlide(ctx iris.Context) {
	id, paramErr := ctx.Params().GetUint("id")
	if paramErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid slide id.", ctx)
		return
	}

	var slide models.HeroSlide
	query := storage.DB.Where("id = ?", id).Limit(1).Find(&slide)
	if query.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if query.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	if err := storage.DB.Delete(&slide).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, models.AuditDataDelete, "hero_slide", slide.ID,
		iris.Map{"title": slide.Title}, nil, "Legitimate interest")

	ctx.JSON(iris.Map{"deleted": true})
}

func heroSlideFromInput(input HeroSlideInput) models.HeroSlide {
	slide := models.HeroSlide{
		Title:         input.Title,
		Subtitle:      input.Subtitle,
		Kicker:        input.Kicker,
		Image:         input.Image,
		DestinationID: input.DestinationID,
		CTAText:       input.CTAText,
		CTAURL:        input.CTAURL,
		Order:         input.Order,
		Active:        true,
	}
	if slide.CTAText == "" {
		slide.CTAText = "Start Inquiry"
	}
	if slide.CTAURL == "" {
		slide.CTAURL = "/contact"
	}
	if input.Active != nil {
		slide.Active = *input.Active
	}
	return slide
}
