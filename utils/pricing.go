package utils

import (
	"math"
	"time"
)

// Nights returns the number of chargeable nights between check-in and
// check-out: ceil of the raw difference in days, floored at 1. A fractional
// day (late check-in / early check-out) still counts as a full night, and the
// result is never 0 or negative.
func Nights(checkIn, checkOut time.Time) int {
	n := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if n < 1 {
		return 1
	}
	return n
}

// RoomTotal is the stay cost of a single room.
func RoomTotal(pricePerNight float64, nights int) float64 {
	return pricePerNight * float64(nights)
}

// SuggestedDeposit rounds totalAmount * percentage / 100.
func SuggestedDeposit(totalAmount, percentage float64) float64 {
	return math.Round(totalAmount * percentage / 100)
}

// RemainingNights counts the nights left on a checked-in stay as of now.
// now is injected so callers stay deterministic and testable.
func RemainingNights(checkOut, now time.Time) int {
	return Nights(now, checkOut)
}

// PriceDifference is the reconciliation amount when a stay moves between
// rooms with different nightly rates: positive means an additional charge,
// negative a refund.
func PriceDifference(oldRate, newRate float64, remainingNights int) float64 {
	return (newRate - oldRate) * float64(remainingNights)
}

// PriceDifferenceLabel is the guest-facing sentence for a transfer price
// adjustment. Empty when the rates are equal, in which case no adjustment
// panel is shown.
func PriceDifferenceLabel(diff float64) string {
	switch {
	case diff > 0:
		return "Khách cần thanh toán thêm do phòng mới có giá cao hơn."
	case diff < 0:
		return "Khách được hoàn tiền do phòng mới có giá thấp hơn."
	default:
		return ""
	}
}

// MidnightOf truncates t to 00:00 in its own location. Booking dates are
// normalized with this at the service boundary so date-keyed grouping and
// nights math never see a time component.
func MidnightOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
