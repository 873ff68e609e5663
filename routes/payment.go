package routes

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"golftrip-server/models"
	"golftrip-server/services"
	"golftrip-server/storage"
	"golftrip-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/refund"
	"github.com/stripe/stripe-go/v82/webhook"
)

// InitializeStripe sets the API key for the process.
func InitializeStripe() {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		log.Println("STRIPE_SECRET_KEY not set, payment routes will fail")
	}
}

type CreateCheckoutSessionInput struct {
	BookingReference string `json:"bookingReference" validate:"required,max=16"`
	CustomerEmail    string `json:"customerEmail" validate:"required,email"`
}

// CreateCheckoutSession opens a Stripe checkout session for a pending
// booking and records the transaction.
func CreateCheckoutSession(ctx iris.Context) {
	var input CreateCheckoutSessionInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var booking models.Booking
	query := storage.DB.
		Where("booking_reference = ? AND customer_email = ?",
			strings.ToUpper(input.BookingReference), strings.ToLower(input.CustomerEmail)).
		Limit(1).Find(&booking)
	if query.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if query.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	if booking.PaymentStatus == models.PaymentStatusCaptured {
		utils.CreateError(iris.StatusConflict, "Conflict", "Booking is already paid.", ctx)
		return
	}
	if booking.Status == models.BookingStatusCancelled {
		utils.CreateError(iris.StatusConflict, "Conflict", "Booking is cancelled.", ctx)
		return
	}

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(strings.ToLower(booking.Currency)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Golf trip booking " + booking.BookingReference),
					},
					// Stripe amounts are in the minor unit
					UnitAmount: stripe.Int64(int64(booking.TotalAmount) * 100),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(frontendURL + "/bookings/" + booking.BookingReference + "/confirmed?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:         stripe.String(frontendURL + "/bookings/" + booking.BookingReference + "/payment-failed"),
		CustomerEmail:     stripe.String(booking.CustomerEmail),
		ClientReferenceID: stripe.String(booking.BookingReference),
	}

	sess, sessErr := session.New(params)
	if sessErr != nil {
		log.Printf("stripe checkout session failed: %v", sessErr)
		utils.CreateError(iris.StatusBadGateway, "Payment Error",
			"Could not start the payment session.", ctx)
		return
	}

	booking.PaymentSessionID = sess.ID
	storage.DB.Save(&booking)

	storage.DB.Create(&models.PaymentTransaction{
		BookingID:     booking.ID,
		SessionID:     sess.ID,
		Amount:        booking.TotalAmount,
		Currency:      booking.Currency,
		Status:        models.TransactionInitiated,
		CustomerEmail: booking.CustomerEmail,
	})

	ctx.JSON(iris.Map{
		"sessionID":   sess.ID,
		"checkoutURL": sess.URL,
	})
}

// GetPaymentStatus reports the stored payment state for a booking.
func GetPaymentStatus(ctx iris.Context) {
	reference := strings.ToUpper(ctx.Params().Get("reference"))

	var booking models.Booking
	query := storage.DB.Where("booking_reference = ?", reference).Limit(1).Find(&booking)
	if query.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if query.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"bookingReference": booking.BookingReference,
		"status":           booking.Status,
		"paymentStatus":    booking.PaymentStatus,
		"totalAmount":      booking.TotalAmount,
		"currency":         booking.Currency,
	})
}

// StripeWebhook consumes checkout lifecycle events. Signature verification
// uses STRIPE_WEBHOOK_SECRET; unverifiable payloads are rejected.
func StripeWebhook(ctx iris.Context) {
	payload, readErr := io.ReadAll(io.LimitReader(ctx.Request().Body, 65536))
	if readErr != nil {
		ctx.StatusCode(iris.StatusServiceUnavailable)
		return
	}

	event, err := webhook.ConstructEvent(payload, ctx.GetHeader("Stripe-Signature"),
		os.Getenv("STRIPE_WEBHOOK_SECRET"))
	if err != nil {
		log.Printf("webhook signature verification failed: %v", err)
		ctx.StatusCode(iris.StatusBadRequest)
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			log.Printf("webhook payload parse failed: %v", err)
			ctx.StatusCode(iris.StatusBadRequest)
			return
		}
		handleCheckoutCompleted(&sess)
	case "checkout.session.expired":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err == nil {
			storage.DB.Model(&models.PaymentTransaction{}).
				Where("session_id = ?", sess.ID).
				Update("status", models.TransactionFailed)
		}
	default:
		log.Printf("unhandled stripe event type: %s", event.Type)
	}

	ctx.StatusCode(iris.StatusOK)
}

func handleCheckoutCompleted(sess *stripe.CheckoutSession) {
	var booking models.Booking
	query := storage.DB.Where("payment_session_id = ?", sess.ID).Limit(1).Find(&booking)
	if query.Error != nil || query.RowsAffected == 0 {
		log.Printf("no booking for completed session %s", sess.ID)
		return
	}

	now := time.Now()
	booking.Status = models.BookingStatusConfirmed
	booking.PaymentStatus = models.PaymentStatusCaptured
	booking.ConfirmedAt = &now
	if sess.PaymentIntent != nil {
		booking.PaymentIntentID = sess.PaymentIntent.ID
	}
	storage.DB.Save(&booking)

	updates := map[string]interface{}{
		"status":        models.TransactionPaid,
		"stripe_status": string(sess.Status),
	}
	if sess.PaymentIntent != nil {
		updates["payment_intent_id"] = sess.PaymentIntent.ID
	}
	storage.DB.Model(&models.PaymentTransaction{}).
		Where("session_id = ?", sess.ID).Updates(updates)

	go services.NewNotificationService().SendBookingConfirmation(&booking)
}

type RefundBookingInput struct {
	Reason string `json:"reason" validate:"omitempty,max=1024"`
}

// RefundBooking issues a full Stripe refund for a captured payment. Admin
// only; the route party enforces the role.
func RefundBooking(ctx iris.Context) {
	bookingID, paramErr := ctx.Params().GetUint("id")
	if paramErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid booking id.", ctx)
		return
	}

	var input RefundBookingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var booking models.Booking
	query := storage.DB.Where("id = ?", bookingID).Limit(1).Find(&booking)
	if query.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if query.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	if booking.PaymentStatus != models.PaymentStatusCaptured {
		utils.CreateError(iris.StatusConflict, "Conflict",
			"Only captured payments can be refunded.", ctx)
		return
	}
	if booking.PaymentIntentID == "" {
		utils.CreateError(iris.StatusConflict, "Conflict",
			"Booking has no payment intent on file.", ctx)
		return
	}

	_, refundErr := refund.New(&stripe.RefundParams{
		PaymentIntent: stripe.String(booking.PaymentIntentID),
	})
	if refundErr != nil {
		log.Printf("stripe refund failed for booking %d: %v", booking.ID, refundErr)
		utils.CreateError(iris.StatusBadGateway, "Payment Error",
			"The refund could not be processed.", ctx)
		return
	}

	now := time.Now()
	booking.Status = models.BookingStatusCancelled
	booking.PaymentStatus = models.PaymentStatusRefunded
	booking.CancellationReason = input.Reason
	booking.CancelledAt = &now
	storage.DB.Save(&booking)

	storage.DB.Model(&models.PaymentTransaction{}).
		Where("booking_id = ? AND status = ?", booking.ID, models.TransactionPaid).
		Update("status", models.TransactionRefunded)

	utils.Audit(ctx, models.AuditDataUpdate, "booking", booking.ID, nil,
		iris.Map{"paymentStatus": booking.PaymentStatus, "reason": input.Reason},
		"Contract performance")

	go services.NewNotificationService().SendBookingCancellation(&booking, input.Reason)

	ctx.JSON(iris.Map{
		"refunded":         true,
		"bookingReference": booking.BookingReference,
		"amount":           fmt.Sprintf("%d %s", booking.TotalAmount, booking.Currency),
	})
}
