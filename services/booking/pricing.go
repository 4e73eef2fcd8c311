package booking

import "math"

// flexibleDiscountRate is the share of the hourly rate refunded for flexible minutes.
const flexibleDiscountRate = 0.5

// CalculatePrice computes the price of the interval [start, end) in minutes of day.
// When the booking is flexible, min(flexibilityRange, duration) minutes are billed
// at half rate. The result is rounded to the nearest whole currency unit; a
// non-positive duration costs nothing.
func CalculatePrice(start, end int, pricePerHour float64, isFlexible bool, flexibilityRange int) float64 {
	duration := end - start
	if duration <= 0 {
		return 0
	}

	price := float64(duration) / 60 * pricePerHour

	if isFlexible && flexibilityRange > 0 {
		flexibleMinutes := min(flexibilityRange, duration)
		price -= flexibleDiscountRate * float64(flexibleMinutes) / 60 * pricePerHour
	}

	return math.Round(price)
}
