package ports

import (
	"context"

	"github.com/ostrv1/LessonDesk/internal/domain"
)

// AttendanceRepo stores one record per (booking, participant). Upserts on the
// same key are serialized by the storage layer.
type AttendanceRepo interface {
	Upsert(ctx context.Context, rec *domain.AttendanceRecord) error
	Get(ctx context.Context, bookingID, participantID string) (*domain.AttendanceRecord, error)
	ListByBooking(ctx context.Context, bookingID string) ([]*domain.AttendanceRecord, error)
}
