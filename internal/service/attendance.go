package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ostrv1/LessonDesk/internal/domain"
	"github.com/ostrv1/LessonDesk/internal/policy"
	"github.com/ostrv1/LessonDesk/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// AttendanceService records join/leave/absence events per participant and
// keeps the per-teacher absence counter. It never suspends a teacher itself:
// crossing the absence threshold only emits a notification for the
// user-management system.
type AttendanceService struct {
	attendanceRepo ports.AttendanceRepo
	bookingRepo    ports.BookingRepo
	teacherRepo    ports.TeacherRepo
	rules          policy.Rules
	notifier       ports.BookingNotifier
	logger         logger.Logger
}

func NewAttendanceService(
	attendanceRepo ports.AttendanceRepo,
	bookingRepo ports.BookingRepo,
	teacherRepo ports.TeacherRepo,
	rules policy.Rules,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		bookingRepo:    bookingRepo,
		teacherRepo:    teacherRepo,
		rules:          rules,
		notifier:       notifier,
		logger:         logger,
	}
}

// MarkJoin records the participant's first join. Joining more than the late
// threshold after the scheduled start marks them late with floored minutes.
// Repeated joins are idempotent.
func (s *AttendanceService) MarkJoin(ctx context.Context, bookingID, participantID string, now time.Time) (*domain.AttendanceRecord, error) {
	booking, rec, err := s.load(ctx, bookingID, participantID)
	if err != nil {
		return nil, err
	}

	if rec.JoinTime != nil {
		return rec, nil
	}

	join := now.UTC()
	rec.JoinTime = &join
	late := now.Sub(booking.ScheduledStart)
	if late > s.rules.LateThreshold {
		rec.Status = domain.AttendanceLate
		rec.LateMinutes = int(late / time.Minute)
	} else {
		rec.Status = domain.AttendancePresent
	}
	rec.UpdatedAt = now.UTC()

	if err = s.attendanceRepo.Upsert(ctx, rec); err != nil {
		return nil, fmt.Errorf("save attendance: %w", err)
	}

	s.logger.Info("participant joined",
		logger.String("booking_id", bookingID),
		logger.String("participant_id", participantID),
		logger.String("status", string(rec.Status)),
		logger.Int("late_minutes", rec.LateMinutes),
	)

	return rec, nil
}

// MarkLeave records the participant leaving. Leaving before the scheduled end
// demotes present/late to early_leave; leaving at or after the end keeps the
// status as is.
func (s *AttendanceService) MarkLeave(ctx context.Context, bookingID, participantID string, now time.Time) (*domain.AttendanceRecord, error) {
	booking, rec, err := s.load(ctx, bookingID, participantID)
	if err != nil {
		return nil, err
	}

	if rec.JoinTime == nil {
		return nil, fmt.Errorf("%w: participant has not joined", domain.ErrInvalidParameter)
	}

	leave := now.UTC()
	rec.LeaveTime = &leave
	if now.Before(booking.ScheduledEnd) {
		switch rec.Status {
		case domain.AttendancePresent, domain.AttendanceLate:
			rec.Status = domain.AttendanceEarlyLeave
		}
	}
	rec.UpdatedAt = now.UTC()

	if err = s.attendanceRepo.Upsert(ctx, rec); err != nil {
		return nil, fmt.Errorf("save attendance: %w", err)
	}

	s.logger.Info("participant left",
		logger.String("booking_id", bookingID),
		logger.String("participant_id", participantID),
		logger.String("status", string(rec.Status)),
	)

	return rec, nil
}

// ReportAbsence marks the participant absent with a reason. Teacher absences
// bump the per-teacher counter; reaching the threshold signals suspension to
// the external user-management collaborator. Repeated reports of the same
// absence are idempotent: one missed lesson counts once.
func (s *AttendanceService) ReportAbsence(ctx context.Context, bookingID, participantID, reason string, now time.Time) (*domain.AttendanceRecord, error) {
	booking, rec, err := s.load(ctx, bookingID, participantID)
	if err != nil {
		return nil, err
	}

	if rec.Status == domain.AttendanceAbsent && rec.ReportedAbsence {
		return rec, nil
	}

	rec.Status = domain.AttendanceAbsent
	rec.ReportedAbsence = true
	rec.AbsenceReason = reason
	rec.UpdatedAt = now.UTC()

	if err = s.attendanceRepo.Upsert(ctx, rec); err != nil {
		return nil, fmt.Errorf("save attendance: %w", err)
	}

	s.logger.Info("absence reported",
		logger.String("booking_id", bookingID),
		logger.String("participant_id", participantID),
		logger.String("role", string(rec.Role)),
		logger.String("reason", reason),
	)

	if rec.Role == domain.RoleTeacher {
		count, err := s.teacherRepo.IncrementAbsences(ctx, booking.TeacherID)
		if err != nil {
			// The absence itself is recorded; a lost counter bump must not
			// fail the report.
			s.logger.Error("count teacher absence failed",
				logger.String("teacher_id", booking.TeacherID),
				logger.String("error", err.Error()),
			)
			return rec, nil
		}
		if count >= s.rules.MaxTeacherAbsences {
			s.logger.Warn("teacher absence threshold reached",
				logger.String("teacher_id", booking.TeacherID),
				logger.Int("absences", count),
			)
			go s.notifier.NotifyTeacherSuspensionTriggered(context.WithoutCancel(ctx), booking.TeacherID, count)
		}
	}

	return rec, nil
}

func (s *AttendanceService) ListByBooking(ctx context.Context, bookingID string) ([]*domain.AttendanceRecord, error) {
	return s.attendanceRepo.ListByBooking(ctx, bookingID)
}

// BothPresent reports whether both participants joined the lesson.
func (s *AttendanceService) BothPresent(ctx context.Context, bookingID string) (bool, error) {
	records, err := s.attendanceRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		return false, fmt.Errorf("list attendance: %w", err)
	}

	var teacherJoined, studentJoined bool
	for _, rec := range records {
		if rec.JoinTime == nil {
			continue
		}
		switch rec.Role {
		case domain.RoleTeacher:
			teacherJoined = true
		case domain.RoleStudent:
			studentJoined = true
		}
	}
	return teacherJoined && studentJoined, nil
}

// AnyAbsent reports whether either participant is marked absent.
func (s *AttendanceService) AnyAbsent(ctx context.Context, bookingID string) (bool, error) {
	records, err := s.attendanceRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		return false, fmt.Errorf("list attendance: %w", err)
	}

	for _, rec := range records {
		if rec.Status == domain.AttendanceAbsent {
			return true, nil
		}
	}
	return false, nil
}

// load resolves the booking, validates the participant and returns the
// existing record or a fresh expected one. Records of terminal bookings are
// frozen.
func (s *AttendanceService) load(ctx context.Context, bookingID, participantID string) (*domain.Booking, *domain.AttendanceRecord, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, nil, fmt.Errorf("get booking: %w", err)
	}

	var role domain.ParticipantRole
	switch participantID {
	case booking.TeacherID:
		role = domain.RoleTeacher
	case booking.StudentID:
		role = domain.RoleStudent
	default:
		return nil, nil, fmt.Errorf("%w: participant %s does not belong to booking %s", domain.ErrInvalidParameter, participantID, bookingID)
	}

	if booking.Status.Terminal() {
		return nil, nil, fmt.Errorf("%w: booking is %s", domain.ErrInvalidTransition, booking.Status)
	}

	rec, err := s.attendanceRepo.Get(ctx, bookingID, participantID)
	if err != nil {
		if errors.Is(err, domain.ErrAttendanceNotFound) {
			return booking, &domain.AttendanceRecord{
				BookingID:     bookingID,
				ParticipantID: participantID,
				Role:          role,
				Status:        domain.AttendanceExpected,
			}, nil
		}
		return nil, nil, fmt.Errorf("get attendance: %w", err)
	}

	return booking, rec, nil
}
