package policy

import (
	"time"

	"github.com/ostrv1/LessonDesk/internal/domain"
	"github.com/shopspring/decimal"
)

// Rules holds the temporal policy thresholds. Injected alongside the pricing
// config so deployments and tests can override them.
type Rules struct {
	RescheduleNoticeHours int
	MaxReschedules        int
	FullRefundHours       int
	HalfRefundHours       int
	AutoCompleteGrace     time.Duration
	LateThreshold         time.Duration
	MaxTeacherAbsences    int
}

func DefaultRules() Rules {
	return Rules{
		RescheduleNoticeHours: 72,
		MaxReschedules:        1,
		FullRefundHours:       48,
		HalfRefundHours:       24,
		AutoCompleteGrace:     48 * time.Hour,
		LateThreshold:         15 * time.Minute,
		MaxTeacherAbsences:    3,
	}
}

var two = decimal.NewFromInt(2)

// Evaluator answers reschedule/cancellation questions for a booking. It is
// stateless: the caller supplies the booking and the current time.
type Evaluator struct {
	rules Rules
}

func NewEvaluator(rules Rules) *Evaluator {
	return &Evaluator{rules: rules}
}

func (e *Evaluator) Rules() Rules {
	return e.rules
}

// CanReschedule returns nil when the booking may be moved, or a
// RescheduleDeniedError with the blocking reason.
func (e *Evaluator) CanReschedule(b *domain.Booking, now time.Time) error {
	switch b.Status {
	case domain.BookingStatusPending, domain.BookingStatusConfirmed:
	default:
		return &domain.RescheduleDeniedError{Reason: domain.RescheduleInvalidStatus}
	}
	if b.RescheduleCount >= e.rules.MaxReschedules {
		return &domain.RescheduleDeniedError{Reason: domain.RescheduleLimitReached}
	}
	if hoursUntil(b.ScheduledStart, now) < e.rules.RescheduleNoticeHours {
		return &domain.RescheduleDeniedError{Reason: domain.RescheduleInsufficientNotice}
	}
	return nil
}

// CancellationRefund returns the refund owed for a cancellation at now:
// full price with >= 48h notice, half with >= 24h, nothing below that.
func (e *Evaluator) CancellationRefund(b *domain.Booking, now time.Time) decimal.Decimal {
	h := hoursUntil(b.ScheduledStart, now)
	switch {
	case h >= e.rules.FullRefundHours:
		return b.TotalPrice
	case h >= e.rules.HalfRefundHours:
		return b.TotalPrice.Div(two).Round(2)
	default:
		return decimal.Zero
	}
}

// TeacherNoShowRefund always refunds the full price, regardless of timing.
func (e *Evaluator) TeacherNoShowRefund(b *domain.Booking) decimal.Decimal {
	return b.TotalPrice
}

// AutoCompleteCutoff returns the scheduled-end watermark: confirmed bookings
// that ended at or before it are forced to auto_completed.
func (e *Evaluator) AutoCompleteCutoff(now time.Time) time.Time {
	return now.Add(-e.rules.AutoCompleteGrace)
}

// hoursUntil floors to whole hours: 47h59m of notice counts as 47, not 48.
// Negative once start has passed (truncation toward zero is fine: any value
// below the lowest threshold yields the same tier).
func hoursUntil(start, now time.Time) int {
	return int(start.Sub(now) / time.Hour)
}
