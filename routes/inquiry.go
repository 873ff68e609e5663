package routes

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"golftrip-server/models"
	"golftrip-server/storage"
	"golftrip-server/utils"

	"github.com/kataras/iris/v12"
)

type CreateInquiryInput struct {
	Name          string `json:"name" validate:"required,max=256"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"omitempty,max=32"`
	DestinationID *uint  `json:"destinationID"`
	Message       string `json:"message" validate:"required,max=4096"`
}

// CreateInquiry records a contact request from the public site. No auth
// required; the rate limiter on the party keeps abuse down.
func CreateInquiry(ctx iris.Context) {
	var input CreateInquiryInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.Phone != "" && !utils.ValidatePhoneNumber(input.Phone) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error",
			"phone is not a valid phone number.", ctx)
		return
	}

	if input.DestinationID != nil {
		var destination models.Destination
		query := storage.DB.Where("id = ?", *input.DestinationID).Limit(1).Find(&destination)
		if query.Error != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
		if query.RowsAffected == 0 {
			utils.CreateNotFound(ctx)
			return
		}
	}

	inquiry := models.Inquiry{
		Name:          input.Name,
		Email:         input.Email,
		Phone:         utils.NormalizePhoneNumber(input.Phone),
		DestinationID: input.DestinationID,
		Message:       input.Message,
		Status:        models.InquiryStatusNew,
	}

	if err := storage.DB.Create(&inquiry).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(&inquiry)
}

// GetInquiries lists inquiries for the back office, optionally by status.
func GetInquiries(ctx iris.Context) {
	query := storage.DB.Model(&models.Inquiry{})

	if status := ctx.URLParam("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	page := ctx.URLParamIntDefault("page", 1)
	limit := ctx.URLParamIntDefault("limit", 25)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 25
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	inquiries := []models.Inquiry{}
	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&inquiries).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.JSONPage(ctx, inquiries, page, limit, total)
}

type UpdateInquiryStatusInput struct {
	Status string `json:"status" validate:"required,oneof=new in_progress closed"`
}

func UpdateInquiryStatus(ctx iris.Context) {
	id, paramErr := ctx.Params().GetUint("id")
	if paramErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid inquiry id.", ctx)
		return
	}

	var input UpdateInquiryStatusInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var inquiry models.Inquiry
	query := storage.DB.Where("id = ?", id).Limit(1).Find(&inquiry)
	if query.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if query.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	inquiry.Status = input.Status
	if err := storage.DB.Save(&inquiry).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, models.AuditDataUpdate, "inquiry", inquiry.ID, nil,
		iris.Map{"status": inquiry.Status}, "Legitimate interest")

	ctx.JSON(&inquiry)
}

// ExportInquiriesCSV streams all inquiries as a CSV download.
func ExportInquiriesCSV(ctx iris.Context) {
	var inquiries []models.Inquiry
	if err := storage.DB.Order("created_at DESC").Find(&inquiries).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="inquiries.csv"`)
	ctx.ContentType("text/csv")

	writer := csv.NewWriter(ctx.ResponseWriter())
	writer.Write([]string{"id", "created_at", "name", "email", "phone", "destination_id", "status", "message"})

	for _, inquiry := range inquiries {
		destinationID := ""
		if inquiry.DestinationID != nil {
			destinationID = strconv.FormatUint(uint64(*inquiry.DestinationID), 10)
		}
		writer.Write([]string{
			fmt.Sprintf("%d", inquiry.ID),
			inquiry.CreatedAt.Format("2006-01-02 15:04:05"),
			inquiry.Name,
			inquiry.Email,
			inquiry.Phone,
			destinationID,
			inquiry.Status,
			inquiry.Message,
		})
	}
	writer.Flush()

	utils.Audit(ctx, models.AuditDataExport, "inquiry", 0, nil,
		iris.Map{"count": len(inquiries)}, "Legitimate interest")
}
