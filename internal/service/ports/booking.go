package ports

import (
	"context"
	"time"

	"github.com/ostrv1/LessonDesk/internal/domain"
)

// BookingRepo persists bookings. Every mutation is version-guarded: it must
// apply only when the stored version equals the supplied one, bump the
// version, and return domain.ErrConflict on a stale version.
type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Confirm(ctx context.Context, id string, version int64) error
	Reschedule(ctx context.Context, id string, version int64, newStart, newEnd time.Time) error
	Cancel(ctx context.Context, id string, version int64) error
	Complete(ctx context.Context, id string, version int64) error
	SweepAutoComplete(ctx context.Context, endedBefore time.Time) ([]string, error)
	ListByStudent(ctx context.Context, studentID string) ([]*domain.Booking, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]*domain.Booking, error)
}
