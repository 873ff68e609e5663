package routes

import (
	"golftrip-server/models"
	"golftrip-server/storage"
	"golftrip-server/utils"

	"github.com/kataras/iris/v12"
)

type RecordConsentInput struct {
	ConsentType string `json:"consentType" validate:"required,oneof=marketing analytics cookies data_processing"`
	Granted     *bool  `json:"granted" validate:"required"`
}

// RecordConsent appends a consent decision. History is append-only;
// withdrawal is a new row, never an update.
func RecordConsent(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var input RecordConsentInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	record := models.ConsentRecord{
		UserID:      userID,
		ConsentType: input.ConsentType,
		Granted:     *input.Granted,
		IPAddress:   utils.ClientIP(ctx),
		UserAgent:   ctx.GetHeader("User-Agent"),
	}

	if err := storage.DB.Create(&record).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	action := models.AuditConsentGiven
	if !record.Granted {
		action = models.AuditConsentWithdrawn
	}
	utils.Audit(ctx, action, "consent", record.ID, nil,
		iris.Map{"type": record.ConsentType, "granted": record.Granted}, "Consent")

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(&record)
}

// GetConsentStatus returns the latest decision per consent type.
func GetConsentStatus(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var records []models.ConsentRecord
	if err := storage.DB.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	latest := map[string]bool{}
	for _, record := range records {
		latest[record.ConsentType] = record.Granted
	}

	ctx.JSON(iris.Map{"consents": latest})
}

// RequestDataExport queues an export of everything stored about the user.
// A background worker assembles the bundle.
func RequestDataExport(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var user models.User
	if err := storage.DB.First(&user, userID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	var pending int64
	storage.DB.Model(&models.DataExportRequest{}).
		Where("user_id = ? AND status IN ?", userID,
			[]string{models.GDPRRequestPending, models.GDPRRequestProcessing}).
		Count(&pending)
	if pending > 0 {
		utils.CreateError(iris.StatusConflict, "Conflict",
			"An export request is already in progress.", ctx)
		return
	}

	request := models.DataExportRequest{
		UserID: userID,
		Email:  user.Email,
		Status: models.GDPRRequestPending,
	}
	if err := storage.DB.Create(&request).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, models.AuditGDPRDataRequest, "data_export_request", request.ID,
		nil, nil, "Legal obligation")

	ctx.StatusCode(iris.StatusAccepted)
	ctx.JSON(&request)
}

// GetDataExport returns the completed bundle once the worker has built it.
func GetDataExport(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)
	requestID, paramErr := ctx.Params().GetUint("id")
	if paramErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid request id.", ctx)
		return
	}

	var request models.DataExportRequest
	query := storage.DB.Where("id = ? AND user_id = ?", requestID, userID).Limit(1).Find(&request)
	if query.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if query.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	if request.Status != models.GDPRRequestCompleted {
		ctx.JSON(iris.Map{"status": request.Status})
		return
	}

	utils.Audit(ctx, models.AuditDataExport, "data_export_request", request.ID,
		nil, nil, "Legal obligation")

	ctx.ContentType("application/json")
	ctx.WriteString(request.ExportJSON)
}

type RequestDeletionInput struct {
	Reason string `json:"reason" validate:"omitempty,max=1024"`
}

// RequestDataDeletion queues erasure of the account. Bookings are
// anonymized rather than removed so financial records stay intact.
func RequestDataDeletion(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var input RequestDeletionInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var user models.User
	if err := storage.DB.First(&user, userID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	var pending int64
	storage.DB.Model(&models.DataDeletionRequest{}).
		Where("user_id = ? AND status IN ?", userID,
			[]string{models.GDPRRequestPending, models.GDPRRequestProcessing}).
		Count(&pending)
	if pending > 0 {
		utils.CreateError(iris.StatusConflict, "Conflict",
			"A deletion request is already in progress.", ctx)
		return
	}

	request := models.DataDeletionRequest{
		UserID: userID,
		Email:  user.Email,
		Reason: input.Reason,
		Status: models.GDPRRequestPending,
	}
	if err := storage.DB.Create(&request).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, models.AuditGDPRDeleteRequest, "data_deletion_request", request.ID,
		nil, nil, "Legal obligation")

	ctx.StatusCode(iris.StatusAccepted)
	ctx.JSON(&request)
}
