package services

import (
	"fmt"
	"log"
	"os"

	"golftrip-server/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// NotificationService sends transactional booking email via SendGrid.
type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func sendEmail(toEmail, toName, subject, plainText string) error {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		log.Println("SENDGRID_API_KEY not set, email not sent")
		return fmt.Errorf("SENDGRID_API_KEY not configured")
	}

	fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if fromEmail == "" {
		log.Println("SENDGRID_FROM_EMAIL not set, email not sent")
		return fmt.Errorf("SENDGRID_FROM_EMAIL not configured")
	}

	fromName := os.Getenv("SENDGRID_FROM_NAME")
	if fromName == "" {
		fromName = "GolfTrip"
	}

	from := mail.NewEmail(fromName, fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, "")

	client := sendgrid.NewSendClient(apiKey)
	response, err := client.Send(message)
	if err != nil {
		log.Printf("sendgrid send to %s failed: %v", toEmail, err)
		return err
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		log.Printf("sendgrid returned status %d for %s: %s", response.StatusCode, toEmail, response.Body)
		return fmt.Errorf("sendgrid status %d", response.StatusCode)
	}
	return nil
}

// SendBookingConfirmation mails the customer their booking summary.
func (ns *NotificationService) SendBookingConfirmation(booking *models.Booking) {
	subject := fmt.Sprintf("Your golf booking %s is confirmed", booking.BookingReference)

	body := fmt.Sprintf("Hi %s,\n\nYour booking is confirmed.\n\nReference: %s\nTotal: %d %s\n\nTee times:\n",
		booking.CustomerName, booking.BookingReference, booking.TotalAmount, booking.Currency)
	for _, item := range booking.Items {
		body += fmt.Sprintf("  %s - %s %s (%d players)\n",
			item.DestinationName, item.PlayDate, item.TeeTime, item.PlayerCount())
	}
	body += "\nSee you on the first tee!\nGolfTrip"

	if err := sendEmail(booking.CustomerEmail, booking.CustomerName, subject, body); err != nil {
		log.Printf("booking confirmation email for %s not sent: %v", booking.BookingReference, err)
	}
}

// SendBookingCancellation mails the customer a cancellation notice.
func (ns *NotificationService) SendBookingCancellation(booking *models.Booking, reason string) {
	subject := fmt.Sprintf("Your golf booking %s has been cancelled", booking.BookingReference)
	body := fmt.Sprintf("Hi %s,\n\nYour booking %s has been cancelled.\nReason: %s\n\nIf you already paid, your refund is on its way.\n\nGolfTrip",
		booking.CustomerName, booking.BookingReference, reason)

	if err := sendEmail(booking.CustomerEmail, booking.CustomerName, subject, body); err != nil {
		log.Printf("booking cancellation email for %s not sent: %v", booking.BookingReference, err)
	}
}

// SendPasswordResetEmail mails a short-lived reset link.
func (ns *NotificationService) SendPasswordResetEmail(user *models.User, token string) {
	frontend := os.Getenv("FRONTEND_URL")
	if frontend == "" {
		frontend = "http://localhost:3000"
	}
	subject := "Reset your GolfTrip password"
	body := fmt.Sprintf("Hi %s,\n\nUse the link below to reset your password. It expires in 10 minutes.\n\n%s/resetpassword?token=%s\n\nGolfTrip",
		user.FirstName, frontend, token)

	if err := sendEmail(user.Email, user.FirstName, subject, body); err != nil {
		log.Printf("password reset email for user %d not sent: %v", user.ID, err)
	}
}
