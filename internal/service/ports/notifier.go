package ports

import (
	"context"

	"github.com/ostrv1/LessonDesk/internal/domain"
	"github.com/shopspring/decimal"
)

type BookingNotifier interface {
	NotifyBookingConfirmed(ctx context.Context, b *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, b *domain.Booking, refund decimal.Decimal)
	NotifyTeacherSuspensionTriggered(ctx context.Context, teacherID string, absences int)
}
