package routes

import (
	"net/http"
	"strings"

	"golftrip-server/models"
	"golftrip-server/storage"
	"golftrip-server/utils"

	"github.com/kataras/iris/v12"
)

// ListUsers - GET /admin/users?role=&q=&page=&per_page=
func AdminListUsers(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	var users []models.User
	q := strings.TrimSpace(ctx.URLParamDefault("q", ""))
	role := strings.TrimSpace(ctx.URLParamDefault("role", ""))

	query := storage.DB.Model(&models.User{})
	if role != "" {
		query = query.Where("role = ?", role)
	}
	if q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("lower(first_name) LIKE ? OR lower(last_name) LIKE ? OR lower(email) LIKE ?", like, like, like)
	}

	var total int64
	query.Count(&total)
	query = query.Offset((page - 1) * perPage).Limit(perPage)
	if err := query.Find(&users).Error; err != nil {
		ctx.StatusCode(http.StatusInternalServerError)
		ctx.JSON(iris.Map{"error": "server_error", "message": err.Error()})
		return
	}

	utils.JSONPage(ctx, users, page, perPage, total)
}

// Change role - PATCH /admin/users/:id/role
func AdminChangeUserRole(ctx iris.Context) {
	// Middleware enforces super admin. Here perform change.
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"error": "invalid_id"})
		return
	}

	var body struct {
		Role string `json:"role"`
	}
	if err := ctx.ReadJSON(&body); err != nil {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"error": "invalid_role"})
		return
	}
	switch body.Role {
	case "user", "admin", "super_admin":
	default:
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"error": "invalid_role"})
		return
	}

	var user models.User
	if err := storage.DB.First(&user, id).Error; err != nil {
		ctx.StopWithJSON(http.StatusNotFound, iris.Map{"error": "not_found"})
		return
	}

	before := user.Role
	user.Role = body.Role
	if err := storage.DB.Save(&user).Error; err != nil {
		ctx.StopWithJSON(http.StatusInternalServerError, iris.Map{"error": "server_error"})
		return
	}

	utils.Audit(ctx, models.AuditDataUpdate, "user", user.ID,
		iris.Map{"role": before}, iris.Map{"role": user.Role}, "Legitimate interest")

	ctx.JSON(iris.Map{"data": user})
}

// Deactivate - PATCH /admin/users/:id/deactivate
func AdminDeactivateUser(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"error": "invalid_id"})
		return
	}

	var user models.User
	if err := storage.DB.First(&user, id).Error; err != nil {
		ctx.StopWithJSON(http.StatusNotFound, iris.Map{"error": "not_found"})
		return
	}

	inactive := false
	user.IsActive = &inactive
	if err := storage.DB.Save(&user).Error; err != nil {
		ctx.StopWithJSON(http.StatusInternalServerError, iris.Map{"error": "server_error"})
		return
	}

	utils.Audit(ctx, models.AuditDataUpdate, "user", user.ID, nil,
		iris.Map{"isActive": false}, "Legitimate interest")

	ctx.JSON(iris.Map{"data": user})
}

// ListBookings - GET /admin/bookings?status=&email=&page=&per_page=
func AdminListBookings(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	query := storage.DB.Model(&models.Booking{})
	if status := ctx.URLParam("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if email := ctx.URLParam("email"); email != "" {
		query = query.Where("customer_email = ?", strings.ToLower(email))
	}

	var total int64
	query.Count(&total)

	var bookings []models.Booking
	if err := query.Preload("Items").Order("created_at DESC").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&bookings).Error; err != nil {
		ctx.StatusCode(http.StatusInternalServerError)
		ctx.JSON(iris.Map{"error": "server_error", "message": err.Error()})
		return
	}

	utils.JSONPage(ctx, bookings, page, perPage, total)
}

// Update booking status - PATCH /admin/bookings/:id/status
func AdminUpdateBookingStatus(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"error": "invalid_id"})
		return
	}

	var body struct {
		Status     string `json:"status"`
		AdminNotes string `json:"adminNotes"`
	}
	if err := ctx.ReadJSON(&body); err != nil {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"error": "invalid_body"})
		return
	}
	switch body.Status {
	case models.BookingStatusPending, models.BookingStatusConfirmed,
		models.BookingStatusCancelled, models.BookingStatusCompleted,
		models.BookingStatusNoShow:
	default:
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"error": "invalid_status"})
		return
	}

	var booking models.Booking
	if err := storage.DB.First(&booking, id).Error; err != nil {
		ctx.StopWithJSON(http.StatusNotFound, iris.Map{"error": "not_found"})
		return
	}

	before := booking.Status
	booking.Status = body.Status
	if body.AdminNotes != "" {
		booking.AdminNotes = body.AdminNotes
	}
	if err := storage.DB.Save(&booking).Error; err != nil {
		ctx.StopWithJSON(http.StatusInternalServerError, iris.Map{"error": "server_error"})
		return
	}

	utils.Audit(ctx, models.AuditDataUpdate, "booking", booking.ID,
		iris.Map{"status": before}, iris.Map{"status": booking.Status}, "Legitimate interest")

	ctx.JSON(iris.Map{"data": booking})
}

// Stats - GET /admin/stats
func AdminStats(ctx iris.Context) {
	var userCount, destinationCount, bookingCount, inquiryCount int64
	storage.DB.Model(&models.User{}).Count(&userCount)
	storage.DB.Model(&models.Destination{}).Where("published = ?", true).Count(&destinationCount)
	storage.DB.Model(&models.Booking{}).Count(&bookingCount)
	storage.DB.Model(&models.Inquiry{}).Where("status = ?", models.InquiryStatusNew).Count(&inquiryCount)

	type revenueRow struct {
		Total    int64
		Currency string
	}
	var revenue revenueRow
	storage.DB.Model(&models.Booking{}).
		Select("COALESCE(SUM(total_amount), 0) AS total, MAX(currency) AS currency").
		Where("payment_status = ?", models.PaymentStatusCaptured).
		Scan(&revenue)

	var statusCounts []struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}
	storage.DB.Model(&models.Booking{}).
		Select("status, COUNT(*) AS count").
		Group("status").Scan(&statusCounts)

	utils.Audit(ctx, models.AuditAdminAccess, "stats", 0, nil, nil, "Legitimate interest")

	ctx.JSON(iris.Map{
		"users":            userCount,
		"destinations":     destinationCount,
		"bookings":         bookingCount,
		"openInquiries":    inquiryCount,
		"revenue":          revenue.Total,
		"revenueCurrency":  revenue.Currency,
		"bookingsByStatus": statusCounts,
	})
}

// Activity - GET /admin/activity?page=&per_page=
func AdminActivity(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 50)
	if perPage <= 0 || perPage > 200 {
		perPage = 50
	}

	query := storage.DB.Model(&models.AuditLog{})
	if action := ctx.URLParam("action"); action != "" {
		query = query.Where("action = ?", action)
	}

	var total int64
	query.Count(&total)

	var logs []models.AuditLog
	if err := query.Order("created_at DESC").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&logs).Error; err != nil {
		ctx.StatusCode(http.StatusInternalServerError)
		ctx.JSON(iris.Map{"error": "server_error", "message": err.Error()})
		return
	}

	utils.JSONPage(ctx, logs, page, perPage, total)
}

// ListDestinations - GET /admin/destinations (drafts included)
func AdminListDestinations(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	query := storage.DB.Model(&models.Destination{})
	if ctx.URLParamExists("published") {
		query = query.Where("published = ?", ctx.URLParamBoolDefault("published", true))
	}

	var total int64
	query.Count(&total)

	var destinations []models.Destination
	if err := query.Order("created_at DESC").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&destinations).Error; err != nil {
		ctx.StatusCode(http.StatusInternalServerError)
		ctx.JSON(iris.Map{"error": "server_error", "message": err.Error()})
		return
	}

	utils.JSONPage(ctx, destinations, page, perPage, total)
}
