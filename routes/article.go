package routes

import (
	"encoding/json"
	"time"

	"golftrip-server/models"
	"golftrip-server/storage"
	"golftrip-server/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/datatypes"
)

type ArticleInput struct {
	Title          string `json:"title" validate:"required,max=160"`
	Content        string `json:"content" validate:"required"`
	Excerpt        string `json:"excerpt" validate:"omitempty,max=1024"`
	Category       string `json:"category" validate:"omitempty,max=60"`
	Author         string `json:"author" validate:"omitempty,max=120"`
	Image          string `json:"image" validate:"omitempty,url"`
	DestinationIDs []uint `json:"destinationIDs"`
	Published      *bool  `json:"published"`
}

func GetArticles(ctx iris.Context) {
	query := storage.DB.Where("published = ?", true)

	if category := ctx.URLParam("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	page := ctx.URLParamIntDefault("page", 1)
	limit := ctx.URLParamIntDefault("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	var total int64
	if err := query.Model(&models.Article{}).Count(&total).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	articles := []models.Article{}
	if err := query.Order("publish_date DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&articles).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.JSONPage(ctx, articles, page, limit, total)
}

func GetArticleBySlug(ctx iris.Context) {
	slug := ctx.Params().Get("slug")

	var article models.Article
	query := storage.DB.Where("slug = ? AND published = ?", slug, true).Limit(1).Find(&article)
	if query.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if query.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(&article)
}

func CreateArticle(ctx iris.Context) {
	var input ArticleInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	slug := slugify(input.Title)
	var existing models.Article
	slugQuery := storage.DB.Where("slug = ?", slug).Limit(1).Find(&existing)
	if slugQuery.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if slugQuery.RowsAffected > 0 {
		utils.CreateError(iris.StatusConflict, "Conflict",
			"An article with this title already exists.", ctx)
		return
	}

	destinationIDs, _ := json.Marshal(input.DestinationIDs)
	published := true
	if input.Published != nil {
		published = *input.Published
	}

	article := models.Article{
		Title:          input.Title,
		Slug:           slug,
		Content:        input.Content,
		Excerpt:        input.Excerpt,
		Category:       input.Category,
		Author:         input.Author,
		Image:          input.Image,
		DestinationIDs: datatypes.JSON(destinationIDs),
		Published:      published,
		PublishDate:    time.Now(),
	}

	if err := storage.DB.Create(&article).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, models.AuditDataCreate, "article", article.ID, nil,
		iris.Map{"title": article.Title}, "Legitimate interest")

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(&article)
}

func UpdateArticle(ctx iris.Context) {
	id, paramErr := ctx.Params().GetUint("id")
	if paramErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid article id.", ctx)
		return
	}

	var article models.Article
	query := storage.DB.Where("id = ?", id).Limit(1).Find(&article)
	if query.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if query.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	var input ArticleInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	destinationIDs, _ := json.Marshal(input.DestinationIDs)

	article.Title = input.Title
	article.Content = input.Content
	article.Excerpt = input.Excerpt
	article.Category = input.Category
	article.Author = input.Author
	article.Image = input.Image
	article.DestinationIDs = datatypes.JSON(destinationIDs)
	if input.Published != nil {
		article.Published = *input.Published
	}

	if err := storage.DB.Save(&article).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, models.AuditDataUpdate, "article", article.ID, nil,
		iris.Map{"title": article.Title}, "Legitimate interest")

	ctx.JSON(&article)
}

func DeleteArticle(ctx iris.Context) {
	id, paramErr := ctx.Params().GetUint("id")
	if paramErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid article id.", ctx)
		return
	}

	var article models.Article
	query := storage.DB.Where("id = ?", id).Limit(1).Find(&article)
	if query.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if query.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	if err := storage.DB.Delete(&article).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, models.AuditDataDelete, "article", article.ID,
		iris.Map{"title": article.Title}, nil, "Legitimate interest")

	ctx.JSON(iris.Map{"deleted": true})
}
