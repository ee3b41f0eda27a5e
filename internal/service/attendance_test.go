package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ostrv1/LessonDesk/internal/domain"
	"github.com/ostrv1/LessonDesk/internal/policy"
	"github.com/ostrv1/LessonDesk/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type attendanceFixture struct {
	attendanceRepo *mocks.MockAttendanceRepo
	bookingRepo    *mocks.MockBookingRepo
	teacherRepo    *mocks.MockTeacherRepo
	notifier       *mocks.MockBookingNotifier
	svc            *AttendanceService
}

func newAttendanceFixture(t *testing.T) *attendanceFixture {
	t.Helper()
	attendanceRepo := mocks.NewMockAttendanceRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	teacherRepo := mocks.NewMockTeacherRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	return &attendanceFixture{
		attendanceRepo: attendanceRepo,
		bookingRepo:    bookingRepo,
		teacherRepo:    teacherRepo,
		notifier:       notifier,
		svc:            NewAttendanceService(attendanceRepo, bookingRepo, teacherRepo, policy.DefaultRules(), notifier, log),
	}
}

func TestAttendanceService_MarkJoin_OnTime(t *testing.T) {
	f := newAttendanceFixture(t)

	booking := confirmedBooking(testNow)
	now := testNow.Add(5 * time.Minute)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, booking.ID).Return(booking, nil)
	f.attendanceRepo.EXPECT().Get(mock.Anything, booking.ID, booking.StudentID).Return(nil, domain.ErrAttendanceNotFound)
	f.attendanceRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)

	rec, err := f.svc.MarkJoin(context.Background(), booking.ID, booking.StudentID, now)

	require.NoError(t, err)
	assert.Equal(t, domain.AttendancePresent, rec.Status)
	assert.Equal(t, domain.RoleStudent, rec.Role)
	assert.Equal(t, 0, rec.LateMinutes)
	require.NotNil(t, rec.JoinTime)
	assert.Equal(t, now, *rec.JoinTime)
}

func TestAttendanceService_MarkJoin_Late(t *testing.T) {
	f := newAttendanceFixture(t)

	booking := confirmedBooking(testNow)
	now := testNow.Add(22*time.Minute + 40*time.Second)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, booking.ID).Return(booking, nil)
	f.attendanceRepo.EXPECT().Get(mock.Anything, booking.ID, booking.TeacherID).Return(nil, domain.ErrAttendanceNotFound)
	f.attendanceRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)

	rec, err := f.svc.MarkJoin(context.Background(), booking.ID, booking.TeacherID, now)

	require.NoError(t, err)
	assert.Equal(t, domain.AttendanceLate, rec.Status)
	assert.Equal(t, domain.RoleTeacher, rec.Role)
	assert.Equal(t, 22, rec.LateMinutes) // floored
}

func TestAttendanceService_MarkJoin_AtThreshold(t *testing.T) {
	f := newAttendanceFixture(t)

	booking := confirmedBooking(testNow)
	now := testNow.Add(15 * time.Minute) // exactly the threshold is still on time

	f.bookingRepo.EXPECT().GetByID(mock.Anything, booking.ID).Return(booking, nil)
	f.attendanceRepo.EXPECT().Get(mock.Anything, booking.ID, booking.StudentID).Return(nil, domain.ErrAttendanceNotFound)
	f.attendanceRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)

	rec, err := f.svc.MarkJoin(context.Background(), booking.ID, booking.StudentID, now)

	require.NoError(t, err)
	assert.Equal(t, domain.AttendancePresent, rec.Status)
}

func TestAttendanceService_MarkJoin_Idempotent(t *testing.T) {
	f := newAttendanceFixture(t)

	booking := confirmedBooking(testNow)
	join := testNow.Add(2 * time.Minute)
	existing := &domain.AttendanceRecord{
		BookingID:     booking.ID,
		ParticipantID: booking.StudentID,
		Role:          domain.RoleStudent,
		Status:        domain.AttendancePresent,
		JoinTime:      &join,
	}

	f.bookingRepo.EXPECT().GetByID(mock.Anything, booking.ID).Return(booking, nil)
	f.attendanceRepo.EXPECT().Get(mock.Anything, booking.ID, booking.StudentID).Return(existing, nil)

	rec, err := f.svc.MarkJoin(context.Background(), booking.ID, booking.StudentID, testNow.Add(20*time.Minute))

	require.NoError(t, err)
	assert.Equal(t, domain.AttendancePresent, rec.Status)
	assert.Equal(t, join, *rec.JoinTime)
}

func TestAttendanceService_MarkJoin_UnknownParticipant(t *testing.T) {
	f := newAttendanceFixture(t)

	booking := confirmedBooking(testNow)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, booking.ID).Return(booking, nil)

	_, err := f.svc.MarkJoin(context.Background(), booking.ID, uuid.New().String(), testNow)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestAttendanceService_MarkJoin_TerminalBooking(t *testing.T) {
	f := newAttendanceFixture(t)

	booking := confirmedBooking(testNow)
	booking.Status = domain.BookingStatusCancelled

	f.bookingRepo.EXPECT().GetByID(mock.Anything, booking.ID).Return(booking, nil)

	_, err := f.svc.MarkJoin(context.Background(), booking.ID, booking.StudentID, testNow)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestAttendanceService_MarkLeave_Early(t *testing.T) {
	f := newAttendanceFixture(t)

	booking := confirmedBooking(testNow)
	join := testNow.Add(2 * time.Minute)
	existing := &domain.AttendanceRecord{
		BookingID:     booking.ID,
		ParticipantID: booking.StudentID,
		Role:          domain.RoleStudent,
		Status:        domain.AttendancePresent,
		JoinTime:      &join,
	}

	f.bookingRepo.EXPECT().GetByID(mock.Anything, booking.ID).Return(booking, nil)
	f.attendanceRepo.EXPECT().Get(mock.Anything, booking.ID, booking.StudentID).Return(existing, nil)
	f.attendanceRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)

	rec, err := f.svc.MarkLeave(context.Background(), booking.ID, booking.StudentID, testNow.Add(40*time.Minute))

	require.NoError(t, err)
	assert.Equal(t, domain.AttendanceEarlyLeave, rec.Status)
	require.NotNil(t, rec.LeaveTime)
}

func TestAttendanceService_MarkLeave_AfterEnd(t *testing.T) {
	f := newAttendanceFixture(t)

	booking := confirmedBooking(testNow)
	join := testNow.Add(2 * time.Minute)
	existing := &domain.AttendanceRecord{
		BookingID:     booking.ID,
		ParticipantID: booking.TeacherID,
		Role:          domain.RoleTeacher,
		Status:        domain.AttendancePresent,
		JoinTime:      &join,
	}

	f.bookingRepo.EXPECT().GetByID(mock.Anything, booking.ID).Return(booking, nil)
	f.attendanceRepo.EXPECT().Get(mock.Anything, booking.ID, booking.TeacherID).Return(existing, nil)
	f.attendanceRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)

	rec, err := f.svc.MarkLeave(context.Background(), booking.ID, booking.TeacherID, testNow.Add(65*time.Minute))

	require.NoError(t, err)
	assert.Equal(t, domain.AttendancePresent, rec.Status)
}

func TestAttendanceService_MarkLeave_WithoutJoin(t *testing.T) {
	f := newAttendanceFixture(t)

	booking := confirmedBooking(testNow)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, booking.ID).Return(booking, nil)
	f.attendanceRepo.EXPECT().Get(mock.Anything, booking.ID, booking.StudentID).Return(nil, domain.ErrAttendanceNotFound)

	_, err := f.svc.MarkLeave(context.Background(), booking.ID, booking.StudentID, testNow.Add(30*time.Minute))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestAttendanceService_ReportAbsence_Student(t *testing.T) {
	f := newAttendanceFixture(t)

	booking := confirmedBooking(testNow)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, booking.ID).Return(booking, nil)
	f.attendanceRepo.EXPECT().Get(mock.Anything, booking.ID, booking.StudentID).Return(nil, domain.ErrAttendanceNotFound)
	f.attendanceRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)

	rec, err := f.svc.ReportAbsence(context.Background(), booking.ID, booking.StudentID, "sick", testNow)

	require.NoError(t, err)
	assert.Equal(t, domain.AttendanceAbsent, rec.Status)
	assert.True(t, rec.ReportedAbsence)
	assert.Equal(t, "sick", rec.AbsenceReason)
}

func TestAttendanceService_ReportAbsence_TeacherBelowThreshold(t *testing.T) {
	f := newAttendanceFixture(t)

	booking := confirmedBooking(testNow)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, booking.ID).Return(booking, nil)
	f.attendanceRepo.EXPECT().Get(mock.Anything, booking.ID, booking.TeacherID).Return(nil, domain.ErrAttendanceNotFound)
	f.attendanceRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)
	f.teacherRepo.EXPECT().IncrementAbsences(mock.Anything, booking.TeacherID).Return(1, nil)

	rec, err := f.svc.ReportAbsence(context.Background(), booking.ID, booking.TeacherID, "emergency", testNow)

	require.NoError(t, err)
	assert.Equal(t, domain.RoleTeacher, rec.Role)
}

func TestAttendanceService_ReportAbsence_TeacherSuspensionTriggered(t *testing.T) {
	f := newAttendanceFixture(t)

	booking := confirmedBooking(testNow)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, booking.ID).Return(booking, nil)
	f.attendanceRepo.EXPECT().Get(mock.Anything, booking.ID, booking.TeacherID).Return(nil, domain.ErrAttendanceNotFound)
	f.attendanceRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)
	f.teacherRepo.EXPECT().IncrementAbsences(mock.Anything, booking.TeacherID).Return(3, nil)
	f.notifier.EXPECT().NotifyTeacherSuspensionTriggered(mock.Anything, booking.TeacherID, 3).Return()

	_, err := f.svc.ReportAbsence(context.Background(), booking.ID, booking.TeacherID, "no show", testNow)

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestAttendanceService_ReportAbsence_RepeatedReportCountsOnce(t *testing.T) {
	f := newAttendanceFixture(t)

	booking := confirmedBooking(testNow)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, booking.ID).Return(booking, nil).Times(2)
	f.attendanceRepo.EXPECT().Get(mock.Anything, booking.ID, booking.TeacherID).Return(nil, domain.ErrAttendanceNotFound).Once()
	f.attendanceRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil).Once()
	f.teacherRepo.EXPECT().IncrementAbsences(mock.Anything, booking.TeacherID).Return(1, nil).Once()

	first, err := f.svc.ReportAbsence(context.Background(), booking.ID, booking.TeacherID, "no show", testNow)
	require.NoError(t, err)

	// The second report finds the absence already recorded and must not
	// upsert or bump the counter again.
	f.attendanceRepo.EXPECT().Get(mock.Anything, booking.ID, booking.TeacherID).Return(first, nil).Once()

	second, err := f.svc.ReportAbsence(context.Background(), booking.ID, booking.TeacherID, "no show", testNow.Add(time.Minute))

	require.NoError(t, err)
	assert.Equal(t, domain.AttendanceAbsent, second.Status)
	f.teacherRepo.AssertNumberOfCalls(t, "IncrementAbsences", 1)
}

func TestAttendanceService_ReportAbsence_CounterFailureKeepsRecord(t *testing.T) {
	f := newAttendanceFixture(t)

	booking := confirmedBooking(testNow)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, booking.ID).Return(booking, nil)
	f.attendanceRepo.EXPECT().Get(mock.Anything, booking.ID, booking.TeacherID).Return(nil, domain.ErrAttendanceNotFound)
	f.attendanceRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)
	f.teacherRepo.EXPECT().IncrementAbsences(mock.Anything, booking.TeacherID).Return(0, errors.New("db error"))

	rec, err := f.svc.ReportAbsence(context.Background(), booking.ID, booking.TeacherID, "no show", testNow)

	require.NoError(t, err)
	assert.Equal(t, domain.AttendanceAbsent, rec.Status)
	assert.True(t, rec.ReportedAbsence)
}

func TestAttendanceService_BothPresent(t *testing.T) {
	f := newAttendanceFixture(t)

	join := testNow.Add(time.Minute)
	records := []*domain.AttendanceRecord{
		{Role: domain.RoleTeacher, Status: domain.AttendancePresent, JoinTime: &join},
		{Role: domain.RoleStudent, Status: domain.AttendanceLate, JoinTime: &join},
	}

	f.attendanceRepo.EXPECT().ListByBooking(mock.Anything, "b1").Return(records, nil)

	both, err := f.svc.BothPresent(context.Background(), "b1")

	require.NoError(t, err)
	assert.True(t, both)
}

func TestAttendanceService_AnyAbsent(t *testing.T) {
	f := newAttendanceFixture(t)

	records := []*domain.AttendanceRecord{
		{Role: domain.RoleTeacher, Status: domain.AttendanceAbsent},
	}

	f.attendanceRepo.EXPECT().ListByBooking(mock.Anything, "b1").Return(records, nil)

	absent, err := f.svc.AnyAbsent(context.Background(), "b1")

	require.NoError(t, err)
	assert.True(t, absent)
}
