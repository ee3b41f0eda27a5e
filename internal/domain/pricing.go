package domain

import "github.com/shopspring/decimal"

// PricingQuote is the priced offer for a lesson (or a lesson package).
// It is ephemeral: the accepted quote's amounts are copied onto the Booking.
// All amounts are rounded to 2 decimal places.
type PricingQuote struct {
	HourlyRate      decimal.Decimal `json:"hourly_rate"`
	LessonType      LessonType      `json:"lesson_type"`
	DurationMinutes int             `json:"duration_minutes"`
	PackageQuantity int             `json:"package_quantity"`

	// PerLessonPrice is the seat price for one lesson after the group
	// discount, before the package discount.
	PerLessonPrice  decimal.Decimal `json:"per_lesson_price"`
	PackageDiscount decimal.Decimal `json:"package_discount"`

	Subtotal         decimal.Decimal `json:"subtotal"`
	TaxAmount        decimal.Decimal `json:"tax_amount"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	Total            decimal.Decimal `json:"total"`
	TeacherEarnings  decimal.Decimal `json:"teacher_earnings"`
}
