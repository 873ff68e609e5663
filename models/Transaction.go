package models

import (
	"gorm.io/gorm"
)

const (
	TransactionInitiated = "initiated"
	TransactionPending   = "pending"
	TransactionPaid      = "paid"
	TransactionFailed    = "failed"
	TransactionRefunded  = "refunded"
)

// PaymentTransaction mirrors one Stripe checkout session for a booking.
type PaymentTransaction struct {
	gorm.Model
	BookingID       uint   `json:"bookingID" gorm:"index"`
	SessionID       string `json:"sessionID" gorm:"uniqueIndex;size:128"`
	PaymentIntentID string `json:"paymentIntentID" gorm:"size:128"`
	Amount          int    `json:"amount"`
	Currency        string `json:"currency" gorm:"size:8;default:'SEK'"`
	Status          string `json:"status" gorm:"size:20;default:'initiated';index"`
	StripeStatus    string `json:"stripeStatus" gorm:"size:40"`
	CustomerEmail   string `json:"customerEmail"`
}
