package services

import (
	"testing"
	"time"

	"golftrip-server/models"
)

// Tuesday 2025-06-10 and Saturday 2025-06-14 anchor the weekday/weekend cases.
var (
	testWeekday = time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	testWeekend = time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC)
)

func testDestination(basePrice int) *models.Destination {
	return &models.Destination{
		Name:      "Test Resort",
		Country:   "Spain",
		PriceFrom: basePrice,
		Currency:  "SEK",
	}
}

func TestGenerateSlotsCount(t *testing.T) {
	slots := GenerateSlots(testDestination(500), testWeekday)

	// 07:00 through 17:45 at 15 minute intervals
	if len(slots) != 44 {
		t.Fatalf("expected 44 slots, got %d", len(slots))
	}
	if slots[0].Time != "07:00:00" {
		t.Errorf("expected first slot 07:00:00, got %s", slots[0].Time)
	}
	if last := slots[len(slots)-1].Time; last != "17:45:00" {
		t.Errorf("expected last slot 17:45:00, got %s", last)
	}
	for _, slot := range slots {
		if slot.TotalSlots != 4 || slot.AvailableSlots != 4 {
			t.Fatalf("expected capacity 4 at %s, got %d/%d", slot.Time, slot.AvailableSlots, slot.TotalSlots)
		}
	}
}

func TestSlotMultiplierPeakAndOffPeak(t *testing.T) {
	peak := SlotMultiplier(12, testWeekday)
	offPeak := SlotMultiplier(8, testWeekday)
	neutral := SlotMultiplier(9, testWeekday)

	if peak != 1.3 {
		t.Errorf("expected peak multiplier 1.3, got %v", peak)
	}
	if offPeak != 0.8 {
		t.Errorf("expected off-peak multiplier 0.8, got %v", offPeak)
	}
	if neutral != 1.0 {
		t.Errorf("expected neutral multiplier 1.0, got %v", neutral)
	}
	if !(peak > neutral && neutral > offPeak) {
		t.Errorf("expected peak > neutral > off-peak, got %v %v %v", peak, offPeak, neutral)
	}
}

func TestSlotMultiplierWeekendCompounds(t *testing.T) {
	// Weekend peak: 1.3 * 1.2
	got := SlotMultiplier(12, testWeekend)
	want := 1.3 * 1.2
	if got != want {
		t.Errorf("expected compounded multiplier %v, got %v", want, got)
	}

	// Weekend off-peak: 0.8 * 1.2
	got = SlotMultiplier(7, testWeekend)
	want = 0.8 * 1.2
	if got != want {
		t.Errorf("expected compounded multiplier %v, got %v", want, got)
	}
}

func TestGenerateSlotsPricing(t *testing.T) {
	slots := GenerateSlots(testDestination(500), testWeekday)

	prices := map[string]int{}
	for _, slot := range slots {
		prices[slot.Time] = slot.PricePerPlayer
	}

	// Tuesday 11:00 is peak: 500 * 1.3 truncated
	if prices["11:00:00"] != 650 {
		t.Errorf("expected peak price 650, got %d", prices["11:00:00"])
	}
	// Tuesday 07:00 is off-peak: 500 * 0.8
	if prices["07:00:00"] != 400 {
		t.Errorf("expected off-peak price 400, got %d", prices["07:00:00"])
	}
	// Tuesday 09:30 has no rule
	if prices["09:30:00"] != 500 {
		t.Errorf("expected base price 500, got %d", prices["09:30:00"])
	}
}

func TestGenerateSlotsDefaultBasePrice(t *testing.T) {
	slots := GenerateSlots(testDestination(0), testWeekday)
	for _, slot := range slots {
		if slot.Time == "09:30:00" && slot.PricePerPlayer != 500 {
			t.Errorf("expected default base price 500, got %d", slot.PricePerPlayer)
		}
	}
}

func TestApplyBookingsSubtractsAndClamps(t *testing.T) {
	slots := GenerateSlots(testDestination(500), testWeekday)

	booked := []BookedSlot{
		{Time: "10:00:00", Players: 2},
		{Time: "10:00:00", Players: 1},
		{Time: "11:00:00", Players: 9}, // over capacity, must clamp and drop
	}

	updated := ApplyBookings(slots, booked)

	byTime := map[string]TimeSlot{}
	for _, slot := range updated {
		byTime[slot.Time] = slot
	}

	if slot, ok := byTime["10:00:00"]; !ok || slot.AvailableSlots != 1 {
		t.Errorf("expected 1 remaining at 10:00:00, got %+v", slot)
	}
	if _, ok := byTime["11:00:00"]; ok {
		t.Errorf("expected fully booked 11:00:00 to be dropped")
	}
	if slot, ok := byTime["07:00:00"]; !ok || slot.AvailableSlots != 4 {
		t.Errorf("expected untouched slot to keep full capacity, got %+v", slot)
	}
	if len(updated) != len(slots)-1 {
		t.Errorf("expected exactly one slot dropped, got %d of %d", len(updated), len(slots))
	}
}

func TestApplyBookingsFormatMismatchDoesNotSubtract(t *testing.T) {
	slots := GenerateSlots(testDestination(500), testWeekday)

	// "10:00" without seconds does not match the generated "10:00:00"
	updated := ApplyBookings(slots, []BookedSlot{{Time: "10:00", Players: 4}})

	for _, slot := range updated {
		if slot.Time == "10:00:00" && slot.AvailableSlots != 4 {
			t.Errorf("expected mismatched time format to leave capacity at 4, got %d", slot.AvailableSlots)
		}
	}
	if len(updated) != len(slots) {
		t.Errorf("expected no slots dropped, got %d of %d", len(updated), len(slots))
	}
}

func TestSlotConditions(t *testing.T) {
	early := slotConditions(7, testWeekday)
	if len(early) != 1 || early[0] != "Early morning - dew on course" {
		t.Errorf("unexpected early conditions: %v", early)
	}

	weekendPeak := slotConditions(12, testWeekend)
	if len(weekendPeak) != 2 {
		t.Errorf("expected peak and weekend conditions, got %v", weekendPeak)
	}

	neutral := slotConditions(9, testWeekday)
	if len(neutral) != 0 {
		t.Errorf("expected no conditions at 09:00 weekday, got %v", neutral)
	}
}

func TestSpecialOffers(t *testing.T) {
	weekday := SpecialOffers(testWeekday)
	if weekday[0] != "Weekday Special: 15% off for bookings before 10 AM" {
		t.Errorf("expected weekday special first, got %v", weekday)
	}

	weekend := SpecialOffers(testWeekend)
	for _, offer := range weekend {
		if offer == "Weekday Special: 15% off for bookings before 10 AM" {
			t.Errorf("weekday special should not appear on a Saturday")
		}
	}

	winter := SpecialOffers(time.Date(2025, time.December, 10, 0, 0, 0, 0, time.UTC))
	found := false
	for _, offer := range winter {
		if offer == "Winter Golf: Special rates for brave players" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected winter offer in December, got %v", winter)
	}
}
