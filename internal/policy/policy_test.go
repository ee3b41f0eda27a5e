package policy

import (
	"testing"
	"time"

	"github.com/ostrv1/LessonDesk/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testBooking(start time.Time) *domain.Booking {
	return &domain.Booking{
		ID:             "b1",
		Status:         domain.BookingStatusConfirmed,
		ScheduledStart: start,
		ScheduledEnd:   start.Add(time.Hour),
		TotalPrice:     decimal.RequireFromString("33.00"),
	}
}

func TestEvaluator_CanReschedule(t *testing.T) {
	e := NewEvaluator(DefaultRules())

	b := testBooking(baseTime.Add(100 * time.Hour))
	assert.NoError(t, e.CanReschedule(b, baseTime))

	// Exactly at the notice boundary.
	b = testBooking(baseTime.Add(72 * time.Hour))
	assert.NoError(t, e.CanReschedule(b, baseTime))
}

func TestEvaluator_CanReschedule_InsufficientNotice(t *testing.T) {
	e := NewEvaluator(DefaultRules())

	// 71h59m rounds down to 71 whole hours.
	b := testBooking(baseTime.Add(72*time.Hour - time.Minute))
	err := e.CanReschedule(b, baseTime)

	require.Error(t, err)
	var denied *domain.RescheduleDeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, domain.RescheduleInsufficientNotice, denied.Reason)
}

func TestEvaluator_CanReschedule_LimitReached(t *testing.T) {
	e := NewEvaluator(DefaultRules())

	b := testBooking(baseTime.Add(100 * time.Hour))
	b.RescheduleCount = 1

	err := e.CanReschedule(b, baseTime)

	require.Error(t, err)
	var denied *domain.RescheduleDeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, domain.RescheduleLimitReached, denied.Reason)
}

func TestEvaluator_CanReschedule_InvalidStatus(t *testing.T) {
	e := NewEvaluator(DefaultRules())

	for _, status := range []domain.BookingStatus{
		domain.BookingStatusCompleted,
		domain.BookingStatusCancelled,
		domain.BookingStatusAutoCompleted,
	} {
		b := testBooking(baseTime.Add(100 * time.Hour))
		b.Status = status

		err := e.CanReschedule(b, baseTime)

		require.Error(t, err, "status %s", status)
		var denied *domain.RescheduleDeniedError
		require.ErrorAs(t, err, &denied)
		assert.Equal(t, domain.RescheduleInvalidStatus, denied.Reason)
	}
}

func TestEvaluator_CannotOutrunLimitWithNotice(t *testing.T) {
	e := NewEvaluator(DefaultRules())

	// Plenty of notice does not help once the cap is hit.
	b := testBooking(baseTime.Add(1000 * time.Hour))
	b.RescheduleCount = 1

	err := e.CanReschedule(b, baseTime)

	var denied *domain.RescheduleDeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, domain.RescheduleLimitReached, denied.Reason)
}

func TestEvaluator_CancellationRefund_Tiers(t *testing.T) {
	e := NewEvaluator(DefaultRules())

	tests := []struct {
		name   string
		until  time.Duration
		refund string
	}{
		{"well ahead full refund", 100 * time.Hour, "33.00"},
		{"exactly 48h full refund", 48 * time.Hour, "33.00"},
		{"just under 48h half refund", 48*time.Hour - time.Second, "16.50"},
		{"exactly 24h half refund", 24 * time.Hour, "16.50"},
		{"just under 24h no refund", 24*time.Hour - time.Second, "0"},
		{"one hour before no refund", time.Hour, "0"},
		{"after start no refund", -time.Hour, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testBooking(baseTime.Add(tt.until))
			refund := e.CancellationRefund(b, baseTime)
			assert.True(t, decimal.RequireFromString(tt.refund).Equal(refund),
				"want %s, got %s", tt.refund, refund.String())
		})
	}
}

func TestEvaluator_CancellationRefund_HalfRounding(t *testing.T) {
	e := NewEvaluator(DefaultRules())

	b := testBooking(baseTime.Add(30 * time.Hour))
	b.TotalPrice = decimal.RequireFromString("33.33")

	refund := e.CancellationRefund(b, baseTime)

	// 16.665 rounds half-up to 16.67.
	assert.True(t, decimal.RequireFromString("16.67").Equal(refund), "got %s", refund.String())
}

func TestEvaluator_TeacherNoShowRefund(t *testing.T) {
	e := NewEvaluator(DefaultRules())

	// Full refund even when the lesson already started.
	b := testBooking(baseTime.Add(-30 * time.Minute))
	refund := e.TeacherNoShowRefund(b)

	assert.True(t, b.TotalPrice.Equal(refund))
}

func TestEvaluator_AutoCompleteCutoff(t *testing.T) {
	e := NewEvaluator(DefaultRules())

	cutoff := e.AutoCompleteCutoff(baseTime)

	assert.Equal(t, baseTime.Add(-48*time.Hour), cutoff)
}
