package routes

import (
	"encoding/json"
	"strings"

	"golftrip-server/models"
	"golftrip-server/storage"
	"golftrip-server/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/datatypes"
)

type DestinationInput struct {
	Name      string  `json:"name" validate:"required,max=160"`
	Country   string  `json:"country" validate:"required,max=80"`
	Region    string  `json:"region" validate:"omitempty,max=120"`
	ShortDesc string  `json:"short_desc" validate:"omitempty,max=1024"`
	LongDesc  string  `json:"long_desc"`
	PriceFrom int     `json:"price_from" validate:"min=0"`
	PriceTo   int     `json:"price_to" validate:"min=0"`
	Currency  string  `json:"currency" validate:"omitempty,max=8"`
	Lat       float32 `json:"lat" validate:"omitempty,latitude"`
	Lng       float32 `json:"lng" validate:"omitempty,longitude"`

	Images     []string              `json:"images"`
	Amenities  []string              `json:"amenities"`
	Highlights []string              `json:"highlights"`
	Courses    []models.Course       `json:"courses"`
	Packages   []models.PackageOffer `json:"packages"`

	Featured bool `json:"featured"`
}

// GetDestinations lists published destinations, optionally filtered by
// country and featured flag. Admin listing with drafts lives under /admin.
func GetDestinations(ctx iris.Context) {
	query := storage.DB.Where("published = ?", true)

	if country := ctx.URLParam("country"); country != "" {
		query = query.Where("country = ?", country)
	}
	if ctx.URLParamExists("featured") {
		query = query.Where("featured = ?", ctx.URLParamBoolDefault("featured", false))
	}

	page := ctx.URLParamIntDefault("page", 1)
	limit := ctx.URLParamIntDefault("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := query.Model(&models.Destination{}).Count(&total).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	destinations := []models.Destination{}
	if err := query.Order("featured DESC, name ASC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&destinations).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.JSONPage(ctx, destinations, page, limit, total)
}

func GetDestinationBySlug(ctx iris.Context) {
	slug := ctx.Params().Get("slug")

	var destination models.Destination
	query := storage.DB.Where("slug = ? AND published = ?", slug, true).Limit(1).Find(&destination)
	if query.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if query.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(&destination)
}

func GetDestinationByID(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var destination models.Destination
	query := storage.DB.Where("id = ?", id).Limit(1).Find(&destination)
	if query.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if query.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(&destination)
}

func CreateDestination(ctx iris.Context) {
	var input DestinationInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.PriceTo > 0 && input.PriceTo < input.PriceFrom {
		utils.CreateError(iris.StatusBadRequest, "Validation Error",
			"price_to must be greater than or equal to price_from", ctx)
		return
	}

	slug := slugify(input.Name)
	var existing models.Destination
	slugQuery := storage.DB.Where("slug = ?", slug).Limit(1).Find(&existing)
	if slugQuery.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if slugQuery.RowsAffected > 0 {
		utils.CreateError(iris.StatusConflict, "Conflict",
			"A destination with this name already exists.", ctx)
		return
	}

	destination := destinationFromInput(&input, slug)

	if err := storage.DB.Create(destination).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, models.AuditDataCreate, "destination", destination.ID, nil,
		iris.Map{"name": destination.Name, "slug": destination.Slug}, "Legitimate interest")

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(destination)
}

func UpdateDestination(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var destination models.Destination
	query := storage.DB.Where("id = ?", id).Limit(1).Find(&destination)
	if query.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if query.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	var input DestinationInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	before, _ := json.Marshal(iris.Map{
		"name": destination.Name, "price_from": destination.PriceFrom, "price_to": destination.PriceTo,
	})

	updated := destinationFromInput(&input, destination.Slug)
	updated.ID = destination.ID
	updated.CreatedAt = destination.CreatedAt
	updated.Published = destination.Published

	if err := storage.DB.Save(updated).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, models.AuditDataUpdate, "destination", destination.ID,
		json.RawMessage(before), iris.Map{"name": updated.Name}, "Legitimate interest")

	ctx.JSON(updated)
}

type PublishDestinationInput struct {
	Published *bool `json:"published" validate:"required"`
}

// SetDestinationPublished toggles a destination in or out of the public
// catalogue without touching its content.
func SetDestinationPublished(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var destination models.Destination
	query := storage.DB.Where("id = ?", id).Limit(1).Find(&destination)
	if query.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if query.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	var input PublishDestinationInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	destination.Published = input.Published
	if err := storage.DB.Save(&destination).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, models.AuditDataUpdate, "destination", destination.ID, nil,
		iris.Map{"published": *input.Published}, "Legitimate interest")

	ctx.JSON(&destination)
}

func DeleteDestination(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var destination models.Destination
	query := storage.DB.Where("id = ?", id).Limit(1).Find(&destination)
	if query.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if query.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	if err := storage.DB.Delete(&destination).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, models.AuditDataDelete, "destination", destination.ID,
		iris.Map{"name": destination.Name}, nil, "Legitimate interest")

	ctx.JSON(iris.Map{"deleted": true})
}

func destinationFromInput(input *DestinationInput, slug string) *models.Destination {
	images, _ := json.Marshal(orEmpty(input.Images))
	amenities, _ := json.Marshal(orEmpty(input.Amenities))
	highlights, _ := json.Marshal(orEmpty(input.Highlights))
	courses, _ := json.Marshal(input.Courses)
	packages, _ := json.Marshal(input.Packages)

	currency := input.Currency
	if currency == "" {
		currency = "SEK"
	}

	return &models.Destination{
		Name:       input.Name,
		Slug:       slug,
		Country:    input.Country,
		Region:     input.Region,
		ShortDesc:  input.ShortDesc,
		LongDesc:   input.LongDesc,
		PriceFrom:  input.PriceFrom,
		PriceTo:    input.PriceTo,
		Currency:   currency,
		Lat:        input.Lat,
		Lng:        input.Lng,
		Images:     string(images),
		Amenities:  string(amenities),
		Highlights: datatypes.JSON(highlights),
		Courses:    datatypes.JSON(courses),
		Packages:   datatypes.JSON(packages),
		Featured:   input.Featured,
	}
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	lastDash := true
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
