package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ostrv1/LessonDesk/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const attendanceColumns = `booking_id, participant_id, role, status,
	join_time, leave_time, late_minutes, reported_absence, absence_reason, updated_at`

type AttendanceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAttendanceRepo(db *dbpg.DB) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Upsert writes the record keyed by (booking_id, participant_id). Concurrent
// writes to the same key are serialized by the row lock; the two participants
// touch disjoint keys.
func (r *AttendanceRepository) Upsert(ctx context.Context, rec *domain.AttendanceRecord) error {
	query := `INSERT INTO attendance_records (` + attendanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (booking_id, participant_id) DO UPDATE
		SET status = EXCLUDED.status,
		    join_time = EXCLUDED.join_time,
		    leave_time = EXCLUDED.leave_time,
		    late_minutes = EXCLUDED.late_minutes,
		    reported_absence = EXCLUDED.reported_absence,
		    absence_reason = EXCLUDED.absence_reason,
		    updated_at = EXCLUDED.updated_at`
	_, err := r.db.Master.ExecContext(ctx, query,
		rec.BookingID, rec.ParticipantID, rec.Role, rec.Status,
		rec.JoinTime, rec.LeaveTime, rec.LateMinutes,
		rec.ReportedAbsence, rec.AbsenceReason, rec.UpdatedAt,
	)
	if err != nil {
		return dbErr("upsert attendance", err)
	}

	return nil
}

func (r *AttendanceRepository) Get(ctx context.Context, bookingID, participantID string) (*domain.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance_records
		WHERE booking_id = $1 AND participant_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, bookingID, participantID)
	if err != nil {
		return nil, dbErr("get attendance", err)
	}

	rec, err := scanAttendance(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("scan attendance: %w", err)
	}

	return rec, nil
}

func (r *AttendanceRepository) ListByBooking(ctx context.Context, bookingID string) ([]*domain.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance_records
		WHERE booking_id = $1 ORDER BY role`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, dbErr("list attendance", err)
	}
	defer rows.Close()

	var res []*domain.AttendanceRecord
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		res = append(res, rec)
	}

	return res, rows.Err()
}

func scanAttendance(row rowScanner) (*domain.AttendanceRecord, error) {
	var rec domain.AttendanceRecord
	err := row.Scan(
		&rec.BookingID, &rec.ParticipantID, &rec.Role, &rec.Status,
		&rec.JoinTime, &rec.LeaveTime, &rec.LateMinutes,
		&rec.ReportedAbsence, &rec.AbsenceReason, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
