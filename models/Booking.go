package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
	BookingStatusNoShow    = "no_show"
)

const (
	PaymentStatusPending    = "pending"
	PaymentStatusAuthorized = "authorized"
	PaymentStatusCaptured   = "captured"
	PaymentStatusCancelled  = "cancelled"
	PaymentStatusRefunded   = "refunded"
	PaymentStatusFailed     = "failed"
)

const (
	BookingTypeRound      = "round"
	BookingTypePackage    = "package"
	BookingTypeLesson     = "lesson"
	BookingTypeTournament = "tournament"
)

type Booking struct {
	gorm.Model
	BookingReference string `json:"bookingReference" gorm:"uniqueIndex;size:16"`
	UserID           *uint  `json:"userID" gorm:"index"` // nil for guest bookings

	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail" gorm:"index"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerCountry string `json:"customerCountry" gorm:"size:80;default:'Sweden'"`

	Items       []BookingItem `json:"items"`
	TotalAmount int           `json:"totalAmount"`
	Currency    string        `json:"currency" gorm:"size:8;default:'SEK'"`

	Status        string `json:"status" gorm:"size:20;default:'pending';index"`
	PaymentStatus string `json:"paymentStatus" gorm:"size:20;default:'pending';index"`

	PaymentMethod    string `json:"paymentMethod" gorm:"size:20"` // stripe, invoice
	PaymentSessionID string `json:"paymentSessionID" gorm:"size:128;index"`
	PaymentIntentID  string `json:"paymentIntentID" gorm:"size:128"`

	Source             string `json:"source" gorm:"size:20;default:'website'"`
	CancellationReason string `json:"cancellationReason" gorm:"type:text"`
	AdminNotes         string `json:"adminNotes" gorm:"type:text"`

	ConfirmedAt *time.Time `json:"confirmedAt"`
	CancelledAt *time.Time `json:"cancelledAt"`
}

// BookingItem is one tee time (or package entry) inside a booking. PlayDate
// and TeeTime are stored as plain strings ("2006-01-02" and "15:04:05") and
// matched against generated slots by exact string equality.
type BookingItem struct {
	gorm.Model
	BookingID       uint   `json:"bookingID" gorm:"index"`
	DestinationID   uint   `json:"destinationID" gorm:"index"`
	DestinationName string `json:"destinationName"`
	BookingType     string `json:"bookingType" gorm:"size:20;default:'round'"`

	PlayDate      string `json:"date" gorm:"size:10;index"`
	TeeTime       string `json:"time" gorm:"size:8"`
	DurationHours int    `json:"durationHours" gorm:"default:4"`

	Players         datatypes.JSON `json:"players" gorm:"type:jsonb"`
	CourseName      string         `json:"courseName"`
	PackageID       string         `json:"packageID" gorm:"size:64"`
	PricePerPlayer  int            `json:"pricePerPlayer"`
	TotalPrice      int            `json:"totalPrice"`
	Currency        string         `json:"currency" gorm:"size:8;default:'SEK'"`
	SpecialRequests string         `json:"specialRequests" gorm:"type:text"`
	EquipmentRental datatypes.JSON `json:"equipmentRental" gorm:"type:jsonb"`
}

type PlayerInfo struct {
	Name                string `json:"name"`
	Email               string `json:"email,omitempty"`
	Phone               string `json:"phone,omitempty"`
	Handicap            *int   `json:"handicap,omitempty"`
	SpecialRequirements string `json:"specialRequirements,omitempty"`
}

// PlayerList returns the decoded players for an item.
func (bi *BookingItem) PlayerList() []PlayerInfo {
	var players []PlayerInfo
	if bi.Players != nil {
		json.Unmarshal(bi.Players, &players)
	}
	return players
}

func (bi *BookingItem) PlayerCount() int {
	return len(bi.PlayerList())
}
