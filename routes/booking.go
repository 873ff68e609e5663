package routes

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"golftrip-server/models"
	"golftrip-server/services"
	"golftrip-server/storage"
	"golftrip-server/utils"

	"github.com/google/uuid"
	"github.com/kataras/iris/v12"
	"gorm.io/datatypes"
)

type BookingItemInput struct {
	DestinationID   uint                `json:"destinationID" validate:"required"`
	BookingType     string              `json:"bookingType" validate:"omitempty,oneof=round package lesson tournament"`
	Date            string              `json:"date" validate:"required,datetime=2006-01-02"`
	Time            string              `json:"time" validate:"required,datetime=15:04:05"`
	Players         []models.PlayerInfo `json:"players" validate:"required,min=1,max=4,dive"`
	PackageID       string              `json:"packageID" validate:"omitempty,max=64"`
	SpecialRequests string              `json:"specialRequests" validate:"omitempty,max=2048"`
}

type CreateBookingInput struct {
	CustomerName    string             `json:"customerName" validate:"required,max=256"`
	CustomerEmail   string             `json:"customerEmail" validate:"required,email"`
	CustomerPhone   string             `json:"customerPhone" validate:"omitempty,max=32"`
	CustomerCountry string             `json:"customerCountry" validate:"omitempty,max=80"`
	Items           []BookingItemInput `json:"items" validate:"required,min=1,max=10,dive"`
	PaymentMethod   string             `json:"paymentMethod" validate:"omitempty,oneof=stripe invoice"`
}

// CreateBooking reserves tee times for a guest or a logged-in user. Each item
// is validated against the live tee sheet; the requested time must appear in
// the remaining slots with enough capacity for the party.
func CreateBooking(ctx iris.Context) {
	var input CreateBookingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.CustomerPhone != "" && !utils.ValidatePhoneNumber(input.CustomerPhone) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error",
			"customerPhone is not a valid phone number.", ctx)
		return
	}

	var userID *uint
	if id, ok := ctx.Values().Get("userID").(uint); ok {
		userID = &id
	}

	items := make([]models.BookingItem, 0, len(input.Items))
	totalAmount := 0
	currency := "SEK"

	for _, itemInput := range input.Items {
		playDate, _ := time.Parse("2006-01-02", itemInput.Date)

		availability, availErr := services.CheckAvailability(itemInput.DestinationID, playDate)
		if availErr != nil {
			if errors.Is(availErr, services.ErrDestinationNotFound) {
				utils.CreateNotFound(ctx)
				return
			}
			utils.CreateInternalServerError(ctx)
			return
		}

		slot := findSlot(availability.AvailableSlots, itemInput.Time)
		if slot == nil {
			utils.CreateError(iris.StatusConflict, "Slot Unavailable",
				"The requested tee time is no longer available.", ctx)
			return
		}
		if slot.AvailableSlots < len(itemInput.Players) {
			utils.CreateError(iris.StatusConflict, "Slot Unavailable",
				"Not enough capacity left at the requested tee time.", ctx)
			return
		}

		players, _ := json.Marshal(itemInput.Players)
		itemTotal := slot.PricePerPlayer * len(itemInput.Players)
		totalAmount += itemTotal
		currency = slot.Currency

		bookingType := itemInput.BookingType
		if bookingType == "" {
			bookingType = models.BookingTypeRound
		}

		items = append(items, models.BookingItem{
			DestinationID:   itemInput.DestinationID,
			DestinationName: availability.DestinationName,
			BookingType:     bookingType,
			PlayDate:        itemInput.Date,
			TeeTime:         itemInput.Time,
			Players:         datatypes.JSON(players),
			CourseName:      slot.CourseName,
			PackageID:       itemInput.PackageID,
			PricePerPlayer:  slot.PricePerPlayer,
			TotalPrice:      itemTotal,
			Currency:        slot.Currency,
			SpecialRequests: itemInput.SpecialRequests,
		})
	}

	customerCountry := input.CustomerCountry
	if customerCountry == "" {
		customerCountry = "Sweden"
	}
	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "stripe"
	}

	booking := models.Booking{
		BookingReference: GenerateBookingReference(),
		UserID:           userID,
		CustomerName:     input.CustomerName,
		CustomerEmail:    strings.ToLower(input.CustomerEmail),
		CustomerPhone:    utils.NormalizePhoneNumber(input.CustomerPhone),
		CustomerCountry:  customerCountry,
		Items:            items,
		TotalAmount:      totalAmount,
		Currency:         currency,
		Status:           models.BookingStatusPending,
		PaymentStatus:    models.PaymentStatusPending,
		PaymentMethod:    paymentMethod,
	}

	if err := storage.DB.Create(&booking).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, models.AuditDataCreate, "booking", booking.ID, nil,
		iris.Map{"reference": booking.BookingReference, "total": booking.TotalAmount},
		"Contract performance")

	go services.NewNotificationService().SendBookingConfirmation(&booking)

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(&booking)
}

func GetBookingByReference(ctx iris.Context) {
	reference := strings.ToUpper(ctx.Params().Get("reference"))

	var booking models.Booking
	query := storage.DB.Preload("Items").
		Where("booking_reference = ?", reference).Limit(1).Find(&booking)
	if query.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if query.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	// Guest lookups must also know the customer email
	if userID, ok := ctx.Values().Get("userID").(uint); ok && booking.UserID != nil && *booking.UserID == userID {
		ctx.JSON(&booking)
		return
	}

	email := strings.ToLower(ctx.URLParam("email"))
	if email == "" || email != booking.CustomerEmail {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(&booking)
}

func GetUserBookings(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	query := storage.DB.Preload("Items").Where("user_id = ?", userID)
	if status := ctx.URLParam("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	bookings := []models.Booking{}
	if err := query.Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(bookings)
}

func GetUserBooking(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)
	bookingID, paramErr := ctx.Params().GetUint("id")
	if paramErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid booking id.", ctx)
		return
	}

	var booking models.Booking
	query := storage.DB.Preload("Items").
		Where("id = ? AND user_id = ?", bookingID, userID).Limit(1).Find(&booking)
	if query.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if query.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(&booking)
}

type CancelBookingInput struct {
	Reason string `json:"reason" validate:"omitempty,max=1024"`
}

// CancelBooking cancels a pending or confirmed booking. A captured payment
// is refunded through the payment routes, not here.
func CancelBooking(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)
	bookingID, paramErr := ctx.Params().GetUint("id")
	if paramErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid booking id.", ctx)
		return
	}

	var input CancelBookingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var booking models.Booking
	query := storage.DB.Preload("Items").
		Where("id = ? AND user_id = ?", bookingID, userID).Limit(1).Find(&booking)
	if query.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if query.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	if booking.Status != models.BookingStatusPending && booking.Status != models.BookingStatusConfirmed {
		utils.CreateError(iris.StatusConflict, "Conflict",
			"Only pending or confirmed bookings can be cancelled.", ctx)
		return
	}

	now := time.Now()
	booking.Status = models.BookingStatusCancelled
	booking.CancellationReason = input.Reason
	booking.CancelledAt = &now

	if err := storage.DB.Save(&booking).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, models.AuditDataUpdate, "booking", booking.ID, nil,
		iris.Map{"status": booking.Status}, "Contract performance")

	go services.NewNotificationService().SendBookingCancellation(&booking, input.Reason)

	ctx.JSON(&booking)
}

// GenerateBookingReference produces a "GG" prefixed 8 hex character code.
func GenerateBookingReference() string {
	id := uuid.New()
	return "GG" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
}

func findSlot(slots []services.TimeSlot, teeTime string) *services.TimeSlot {
	for i := range slots {
		if slots[i].Time == teeTime {
			return &slots[i]
		}
	}
	return nil
}
