package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ostrv1/LessonDesk/internal/domain"
	"github.com/ostrv1/LessonDesk/internal/policy"
	"github.com/ostrv1/LessonDesk/internal/service/ports"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

// BookingService owns the booking status lifecycle:
//
//	pending -> confirmed -> {completed, cancelled, auto_completed}
//
// A reschedule is applied atomically as confirmed -> confirmed with new times,
// so the transient rescheduled state is never observable. All transitions go
// through version-guarded repository updates; a concurrent writer makes the
// loser fail with domain.ErrConflict.
type BookingService struct {
	bookingRepo    ports.BookingRepo
	attendanceRepo ports.AttendanceRepo
	policy         *policy.Evaluator
	notifier       ports.BookingNotifier
	logger         logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	attendanceRepo ports.AttendanceRepo,
	policy *policy.Evaluator,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:    bookingRepo,
		attendanceRepo: attendanceRepo,
		policy:         policy,
		notifier:       notifier,
		logger:         logger,
	}
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput, now time.Time) (*domain.Booking, error) {
	if input.StudentID == "" || input.TeacherID == "" {
		return nil, fmt.Errorf("%w: student and teacher ids are required", domain.ErrInvalidParameter)
	}
	if input.StudentID == input.TeacherID {
		return nil, fmt.Errorf("%w: student and teacher must differ", domain.ErrInvalidParameter)
	}
	if !domain.DurationAllowed(input.Quote.DurationMinutes) {
		return nil, fmt.Errorf("%w: duration %d minutes is not offered", domain.ErrInvalidParameter, input.Quote.DurationMinutes)
	}
	if !input.ScheduledStart.After(now) {
		return nil, fmt.Errorf("%w: scheduled start must be in the future", domain.ErrInvalidParameter)
	}

	booking := &domain.Booking{
		ID:               uuid.New().String(),
		StudentID:        input.StudentID,
		TeacherID:        input.TeacherID,
		LessonType:       input.Quote.LessonType,
		DurationMinutes:  input.Quote.DurationMinutes,
		ScheduledStart:   input.ScheduledStart.UTC(),
		ScheduledEnd:     input.ScheduledStart.UTC().Add(time.Duration(input.Quote.DurationMinutes) * time.Minute),
		Status:           domain.BookingStatusPending,
		BasePrice:        input.Quote.Subtotal,
		TaxAmount:        input.Quote.TaxAmount,
		CommissionAmount: input.Quote.CommissionAmount,
		TotalPrice:       input.Quote.Total,
		TeacherEarnings:  input.Quote.TeacherEarnings,
		Notes:            input.Notes,
		Version:          1,
		CreatedAt:        now.UTC(),
		UpdatedAt:        now.UTC(),
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("student_id", booking.StudentID),
		logger.String("teacher_id", booking.TeacherID),
		logger.String("total_price", booking.TotalPrice.String()),
	)

	return booking, nil
}

// ConfirmPayment moves a pending booking to confirmed once the payment
// subsystem reports a capture.
func (s *BookingService) ConfirmPayment(ctx context.Context, bookingID, paymentRef string) (*domain.Booking, error) {
	if paymentRef == "" {
		return nil, fmt.Errorf("%w: missing payment reference", domain.ErrPaymentRequired)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.Status != domain.BookingStatusPending {
		return nil, fmt.Errorf("%w: cannot confirm payment from %s", domain.ErrInvalidTransition, booking.Status)
	}

	if err = s.bookingRepo.Confirm(ctx, bookingID, booking.Version); err != nil {
		return nil, fmt.Errorf("confirm booking: %w", err)
	}
	booking.Status = domain.BookingStatusConfirmed
	booking.Version++

	s.logger.Info("booking confirmed",
		logger.String("booking_id", bookingID),
		logger.String("payment_ref", paymentRef),
	)

	go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), booking)

	return booking, nil
}

// Reschedule moves the booking to a new start, guarded by the notice window
// and the per-booking reschedule cap.
func (s *BookingService) Reschedule(ctx context.Context, bookingID string, newStart time.Time, reason string, now time.Time) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if err = s.policy.CanReschedule(booking, now); err != nil {
		return nil, err
	}
	if !newStart.After(now) {
		return nil, fmt.Errorf("%w: new start must be in the future", domain.ErrInvalidParameter)
	}

	newStart = newStart.UTC()
	newEnd := newStart.Add(time.Duration(booking.DurationMinutes) * time.Minute)

	if err = s.bookingRepo.Reschedule(ctx, bookingID, booking.Version, newStart, newEnd); err != nil {
		return nil, fmt.Errorf("reschedule booking: %w", err)
	}
	booking.ScheduledStart = newStart
	booking.ScheduledEnd = newEnd
	booking.RescheduleCount++
	booking.Version++

	s.logger.Info("booking rescheduled",
		logger.String("booking_id", bookingID),
		logger.String("new_start", newStart.Format(time.RFC3339)),
		logger.String("reason", reason),
		logger.Int("reschedule_count", booking.RescheduleCount),
	)

	return booking, nil
}

// Cancel cancels a pending or confirmed booking before its scheduled end.
// The refund is computed by policy and returned as a side output; it never
// blocks the cancellation itself.
func (s *BookingService) Cancel(ctx context.Context, bookingID, reason string, now time.Time) (*domain.Booking, decimal.Decimal, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("get booking: %w", err)
	}

	switch booking.Status {
	case domain.BookingStatusPending, domain.BookingStatusConfirmed:
	default:
		return nil, decimal.Zero, fmt.Errorf("%w: cannot cancel from %s", domain.ErrInvalidTransition, booking.Status)
	}
	if !now.Before(booking.ScheduledEnd) {
		return nil, decimal.Zero, fmt.Errorf("%w: lesson has already ended", domain.ErrInvalidTransition)
	}

	refund := s.policy.CancellationRefund(booking, now)

	if err = s.bookingRepo.Cancel(ctx, bookingID, booking.Version); err != nil {
		return nil, decimal.Zero, fmt.Errorf("cancel booking: %w", err)
	}
	booking.Status = domain.BookingStatusCancelled
	booking.Version++

	s.logger.Info("booking cancelled",
		logger.String("booking_id", bookingID),
		logger.String("reason", reason),
		logger.String("refund", refund.String()),
	)

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), booking, refund)

	return booking, refund, nil
}

// CancelTeacherNoShow cancels a started lesson with a full refund when the
// attendance records confirm the teacher never showed up while the student
// did (or the teacher reported the absence themselves).
func (s *BookingService) CancelTeacherNoShow(ctx context.Context, bookingID string, now time.Time) (*domain.Booking, decimal.Decimal, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("get booking: %w", err)
	}

	if booking.Status != domain.BookingStatusConfirmed {
		return nil, decimal.Zero, fmt.Errorf("%w: cannot resolve no-show from %s", domain.ErrInvalidTransition, booking.Status)
	}
	if now.Before(booking.ScheduledStart) {
		return nil, decimal.Zero, fmt.Errorf("%w: lesson has not started yet", domain.ErrTooEarly)
	}

	confirmed, err := s.teacherNoShowConfirmed(ctx, booking)
	if err != nil {
		return nil, decimal.Zero, err
	}
	if !confirmed {
		return nil, decimal.Zero, fmt.Errorf("%w: attendance does not confirm a teacher no-show", domain.ErrInvalidTransition)
	}

	refund := s.policy.TeacherNoShowRefund(booking)

	if err = s.bookingRepo.Cancel(ctx, bookingID, booking.Version); err != nil {
		return nil, decimal.Zero, fmt.Errorf("cancel booking: %w", err)
	}
	booking.Status = domain.BookingStatusCancelled
	booking.Version++

	s.logger.Info("booking cancelled for teacher no-show",
		logger.String("booking_id", bookingID),
		logger.String("teacher_id", booking.TeacherID),
		logger.String("refund", refund.String()),
	)

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), booking, refund)

	return booking, refund, nil
}

func (s *BookingService) teacherNoShowConfirmed(ctx context.Context, booking *domain.Booking) (bool, error) {
	records, err := s.attendanceRepo.ListByBooking(ctx, booking.ID)
	if err != nil {
		return false, fmt.Errorf("list attendance: %w", err)
	}

	var teacherAbsent, teacherReported, studentPresent bool
	for _, rec := range records {
		switch rec.Role {
		case domain.RoleTeacher:
			teacherAbsent = rec.Status == domain.AttendanceAbsent
			teacherReported = rec.ReportedAbsence
		case domain.RoleStudent:
			studentPresent = rec.JoinTime != nil
		}
	}

	return teacherAbsent && (studentPresent || teacherReported), nil
}

// MarkComplete finishes a confirmed lesson after its scheduled end. Invoked
// by the teacher or, for stuck bookings, indirectly via the auto-completion
// sweep.
func (s *BookingService) MarkComplete(ctx context.Context, bookingID string, now time.Time) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.Status != domain.BookingStatusConfirmed {
		return nil, fmt.Errorf("%w: cannot complete from %s", domain.ErrInvalidTransition, booking.Status)
	}
	if now.Before(booking.ScheduledEnd) {
		return nil, fmt.Errorf("%w: scheduled end is %s", domain.ErrTooEarly, booking.ScheduledEnd.Format(time.RFC3339))
	}

	if err = s.bookingRepo.Complete(ctx, bookingID, booking.Version); err != nil {
		return nil, fmt.Errorf("complete booking: %w", err)
	}
	booking.Status = domain.BookingStatusCompleted
	booking.Version++

	s.logger.Info("booking completed",
		logger.String("booking_id", bookingID),
	)

	return booking, nil
}

// SweepAutoCompletion force-completes confirmed bookings whose scheduled end
// plus the grace period has passed. Best effort and idempotent: bookings that
// lost a concurrent race are picked up by the next sweep.
func (s *BookingService) SweepAutoCompletion(ctx context.Context, now time.Time) ([]string, error) {
	ids, err := s.bookingRepo.SweepAutoComplete(ctx, s.policy.AutoCompleteCutoff(now))
	if err != nil {
		return nil, fmt.Errorf("sweep auto completion: %w", err)
	}

	if len(ids) > 0 {
		s.logger.Info("bookings auto-completed",
			logger.Int("count", len(ids)),
		)
	}

	return ids, nil
}

func (s *BookingService) Get(ctx context.Context, bookingID string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, bookingID)
}

func (s *BookingService) ListByStudent(ctx context.Context, studentID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByStudent(ctx, studentID)
}

func (s *BookingService) ListByTeacher(ctx context.Context, teacherID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByTeacher(ctx, teacherID)
}
