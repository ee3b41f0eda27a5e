package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending       BookingStatus = "pending"
	BookingStatusConfirmed     BookingStatus = "confirmed"
	BookingStatusCompleted     BookingStatus = "completed"
	BookingStatusCancelled     BookingStatus = "cancelled"
	BookingStatusRescheduled   BookingStatus = "rescheduled"
	BookingStatusAutoCompleted BookingStatus = "auto_completed"
)

var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

// Terminal reports whether no further transition is allowed from s.
func (s BookingStatus) Terminal() bool {
	switch s {
	case BookingStatusCompleted, BookingStatusCancelled, BookingStatusAutoCompleted:
		return true
	}
	return false
}

type LessonType string

const (
	LessonTypeIndividual LessonType = "individual"
	LessonTypeGroup      LessonType = "group"
	LessonTypeTrial      LessonType = "trial"
)

func (t LessonType) Valid() bool {
	switch t {
	case LessonTypeIndividual, LessonTypeGroup, LessonTypeTrial:
		return true
	}
	return false
}

var AllowedDurations = []int{15, 30, 45, 60, 90, 120}

func DurationAllowed(minutes int) bool {
	for _, d := range AllowedDurations {
		if d == minutes {
			return true
		}
	}
	return false
}

type Booking struct {
	ID              string        `json:"id"`
	StudentID       string        `json:"student_id"`
	TeacherID       string        `json:"teacher_id"`
	LessonType      LessonType    `json:"lesson_type"`
	DurationMinutes int           `json:"duration_minutes"`
	ScheduledStart  time.Time     `json:"scheduled_start"`
	ScheduledEnd    time.Time     `json:"scheduled_end"`
	Status          BookingStatus `json:"status"`
	RescheduleCount int           `json:"reschedule_count"`

	// Monetary snapshot taken from the quote at creation.
	// BasePrice is the discounted subtotal: TotalPrice = BasePrice + TaxAmount,
	// TeacherEarnings = BasePrice - CommissionAmount.
	BasePrice        decimal.Decimal `json:"base_price"`
	TaxAmount        decimal.Decimal `json:"tax_amount"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	TeacherEarnings  decimal.Decimal `json:"teacher_earnings"`

	Notes     string    `json:"notes,omitempty"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateBookingInput struct {
	StudentID      string
	TeacherID      string
	Quote          PricingQuote
	ScheduledStart time.Time
	Notes          string
}
