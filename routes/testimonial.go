package routes

import (
	"golftrip-server/models"
	"golftrip-server/storage"
	"golftrip-server/utils"

	"github.com/kataras/iris/v12"
)

type TestimonialInput struct {
	Name          string `json:"name" validate:"required,max=120"`
	Rating        int    `json:"rating" validate:"required,min=1,max=5"`
	Content       string `json:"content" validate:"required,max=4096"`
	DestinationID *uint  `json:"destinationID"`
	TripDate      string `json:"tripDate" validate:"omitempty,max=40"`
	Published     *bool  `json:"published"`
}

// GetTestimonials lists guest reviews, newest first. Unpublished reviews are
// only included when ?published=false asks for them.
func GetTestimonials(ctx iris.Context) {
	query := storage.DB.Order("created_at DESC")
	if ctx.URLParamDefault("published", "true") == "true" {
		query = query.Where("published = ?", true)
	}

	testimonials := []models.Testimonial{}
	if err := query.Find(&testimonials).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(testimonials)
}

func CreateTestimonial(ctx iris.Context) {
	var input TestimonialInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	testimonial := testimonialFromInput(input)

	if err := storage.DB.Create(&testimonial).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, models.AuditDataCreate, "testimonial", testimonial.ID, nil,
		iris.Map{"name": testimonial.Name}, "Legitimate interest")

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(&testimonial)
}

func UpdateTestimonial(ctx iris.Context) {
	id, paramErr := ctx.Params().GetUint("id")
	if paramErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid testimonial id.", ctx)
		return
	}

	var testimonial models.Testimonial
	query := storage.DB.Where("id = ?", id).Limit(1).Find(&testimonial)
	if query.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if query.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	var input TestimonialInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	updated := testimonialFromInput(input)
	updated.ID = testimonial.ID
	updated.CreatedAt = testimonial.CreatedAt

	if err := storage.DB.Save(&updated).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, models.AuditDataUpdate, "testimonial", updated.ID, nil,
		iris.Map{"name": updated.Name}, "Legitimate interest")

	ctx.JSON(&updated)
}

func DeleteTestimonial(ctx iris.Context) {
	id, paramErr := ctx.Params().GetUint("id")
	if paramErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid testimonial id.", ctx)
		return
	}

	var testimonial models.Testimonial
	query := storage.DB.Where("id = ?", id).Limit(1).Find(&testimonial)
	if query.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if query.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	if err := storage.DB.Delete(&testimonial).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, models.AuditDataDelete, "testimonial", testimonial.ID,
		iris.Map{"name": testimonial.Name}, nil, "Legitimate interest")

	ctx.JSON(iris.Map{"deleted": true})
}

func testimonialFromInput(input TestimonialInput) models.Testimonial {
	testimonial := models.Testimonial{
		Name:          input.Name,
		Rating:        input.Rating,
		Content:       input.Content,
		DestinationID: input.DestinationID,
		TripDate:      input.TripDate,
		Published:     true,
	}
	if input.Published != nil {
		testimonial.Published = *input.Published
	}
	return testimonial
}
