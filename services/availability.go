package services

import (
	"errors"
	"fmt"
	"golftrip-server/models"
	"golftrip-server/storage"
	"time"

	"gorm.io/gorm"
)

// Tee sheet parameters. Standard course hours are 07:00-18:00 with tee times
// every 15 minutes and a foursome per slot.
const (
	teeSheetStartHour  = 7
	teeSheetEndHour    = 18
	slotIntervalMin    = 15
	slotCapacity       = 4
	slotTimeLayout     = "15:04:05"
	playDateLayout     = "2006-01-02"
	defaultBasePrice   = 500
	defaultCourseLabel = "Golf Course"
)

var ErrDestinationNotFound = errors.New("destination not found")

// TimeSlot is an ephemeral, computed value; slots are regenerated on every
// availability request and never persisted.
type TimeSlot struct {
	DestinationID     uint     `json:"destination_id"`
	Date              string   `json:"date"`
	Time              string   `json:"time"`
	AvailableSlots    int      `json:"available_slots"`
	TotalSlots        int      `json:"total_slots"`
	PricePerPlayer    int      `json:"price_per_player"`
	Currency          string   `json:"currency"`
	CourseName        string   `json:"course_name"`
	SpecialConditions []string `json:"special_conditions"`
}

// BookedSlot is the per-time-of-day player count already reserved.
type BookedSlot struct {
	Time    string
	Players int
}

type AvailabilityResponse struct {
	DestinationID   uint              `json:"destination_id"`
	DestinationName string            `json:"destination_name"`
	Date            string            `json:"date"`
	AvailableSlots  []TimeSlot        `json:"available_slots"`
	WeatherInfo     map[string]string `json:"weather_info"`
	SpecialOffers   []string          `json:"special_offers"`
}

// priceRule scales the base price when its predicate holds. Rules are applied
// in order and compound multiplicatively, so the stacking order is auditable.
type priceRule struct {
	name       string
	applies    func(hour int, date time.Time) bool
	multiplier float64
}

var pricingRules = []priceRule{
	{
		name:       "peak",
		applies:    func(hour int, _ time.Time) bool { return hour >= 10 && hour <= 15 },
		multiplier: 1.3,
	},
	{
		name:       "off_peak",
		applies:    func(hour int, _ time.Time) bool { return hour < 9 || hour > 16 },
		multiplier: 0.8,
	},
	{
		name: "weekend",
		applies: func(_ int, date time.Time) bool {
			wd := date.Weekday()
			return wd == time.Saturday || wd == time.Sunday
		},
		multiplier: 1.2,
	},
}

// SlotMultiplier returns the compound price multiplier for a tee time.
func SlotMultiplier(hour int, date time.Time) float64 {
	multiplier := 1.0
	for _, rule := range pricingRules {
		if rule.applies(hour, date) {
			multiplier *= rule.multiplier
		}
	}
	return multiplier
}

// GenerateSlots enumerates the full tee sheet for one destination and date,
// before any existing bookings are subtracted.
func GenerateSlots(destination *models.Destination, date time.Time) []TimeSlot {
	basePrice := destination.PriceFrom
	if basePrice == 0 {
		basePrice = defaultBasePrice
	}

	courseName := defaultCourseLabel
	if courses := destination.CourseList(); len(courses) > 0 && courses[0].CourseName != "" {
		courseName = courses[0].CourseName
	}

	currency := destination.Currency
	if currency == "" {
		currency = "SEK"
	}

	var slots []TimeSlot
	current := time.Date(date.Year(), date.Month(), date.Day(), teeSheetStartHour, 0, 0, 0, date.Location())
	end := time.Date(date.Year(), date.Month(), date.Day(), teeSheetEndHour, 0, 0, 0, date.Location())

	for current.Before(end) {
		price := int(float64(basePrice) * SlotMultiplier(current.Hour(), date))

		slots = append(slots, TimeSlot{
			DestinationID:     destination.ID,
			Date:              date.Format(playDateLayout),
			Time:              current.Format(slotTimeLayout),
			AvailableSlots:    slotCapacity,
			TotalSlots:        slotCapacity,
			PricePerPlayer:    price,
			Currency:          currency,
			CourseName:        courseName,
			SpecialConditions: slotConditions(current.Hour(), date),
		})

		current = current.Add(slotIntervalMin * time.Minute)
	}

	return slots
}

// ApplyBookings subtracts already-booked player counts from the generated
// slots and drops slots left with zero capacity. Matching is by exact string
// equality on the slot time; a booking recorded in a different time format
// will not reduce availability.
func ApplyBookings(slots []TimeSlot, booked []BookedSlot) []TimeSlot {
	bookedByTime := map[string]int{}
	for _, b := range booked {
		bookedByTime[b.Time] += b.Players
	}

	updated := make([]TimeSlot, 0, len(slots))
	for _, slot := range slots {
		remaining := slot.TotalSlots - bookedByTime[slot.Time]
		if remaining < 0 {
			remaining = 0
		}
		slot.AvailableSlots = remaining
		if slot.AvailableSlots > 0 {
			updated = append(updated, slot)
		}
	}
	return updated
}

func slotConditions(hour int, date time.Time) []string {
	conditions := []string{}

	if hour < 8 {
		conditions = append(conditions, "Early morning - dew on course")
	}
	if hour >= 10 && hour <= 15 {
		conditions = append(conditions, "Peak hours - premium pricing")
	}
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		conditions = append(conditions, "Weekend rates apply")
	}

	return conditions
}

// WeatherForecast is a hard-coded stub; a real forecast provider was never
// wired up.
func WeatherForecast(date time.Time) map[string]string {
	return map[string]string{
		"temperature":   "18°C",
		"condition":     "Partly cloudy",
		"wind":          "Light breeze",
		"precipitation": "10%",
		"visibility":    "Good",
	}
}

// SpecialOffers returns static seasonal offer text for a date.
func SpecialOffers(date time.Time) []string {
	offers := []string{}

	if wd := date.Weekday(); wd != time.Saturday && wd != time.Sunday {
		offers = append(offers, "Weekday Special: 15% off for bookings before 10 AM")
	}

	offers = append(offers, "Group Discount: Book 4+ players and save 10%")

	switch date.Month() {
	case time.November, time.December, time.January, time.February:
		offers = append(offers, "Winter Golf: Special rates for brave players")
	}

	return offers
}

// CheckAvailability produces the bookable schedule for one destination on
// one date. Storage errors propagate unwrapped; a missing destination is
// ErrDestinationNotFound.
func CheckAvailability(destinationID uint, date time.Time) (*AvailabilityResponse, error) {
	var destination models.Destination
	if err := storage.DB.First(&destination, destinationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrDestinationNotFound, destinationID)
		}
		return nil, err
	}

	slots := GenerateSlots(&destination, date)

	booked, err := bookedSlotsFor(destinationID, date)
	if err != nil {
		return nil, err
	}

	return &AvailabilityResponse{
		DestinationID:   destination.ID,
		DestinationName: destination.Name,
		Date:            date.Format(playDateLayout),
		AvailableSlots:  ApplyBookings(slots, booked),
		WeatherInfo:     WeatherForecast(date),
		SpecialOffers:   SpecialOffers(date),
	}, nil
}

// bookedSlotsFor sums reserved player counts per tee time across pending and
// confirmed bookings for the destination and date.
func bookedSlotsFor(destinationID uint, date time.Time) ([]BookedSlot, error) {
	var items []models.BookingItem
	err := storage.DB.
		Joins("JOIN bookings ON bookings.id = booking_items.booking_id AND bookings.deleted_at IS NULL").
		Where("booking_items.destination_id = ? AND booking_items.play_date = ? AND bookings.status IN ?",
			destinationID, date.Format(playDateLayout),
			[]string{models.BookingStatusPending, models.BookingStatusConfirmed}).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	booked := make([]BookedSlot, 0, len(items))
	for _, item := range items {
		booked = append(booked, BookedSlot{Time: item.TeeTime, Players: item.PlayerCount()})
	}
	return booked, nil
}
