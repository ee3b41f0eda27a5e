package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/ostrv1/LessonDesk/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, student_id, teacher_id, lesson_type, duration_minutes,
	scheduled_start, scheduled_end, status, reschedule_count,
	base_price, tax_amount, commission_amount, total_price, teacher_earnings,
	notes, version, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the booking after checking the teacher's calendar for an
// overlapping active booking. The check and the insert are serialized per
// teacher with an advisory xact lock so two concurrent requests cannot both
// pass the overlap check.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return dbErr("begin tx", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, b.TeacherID); err != nil {
		return dbErr("lock teacher calendar", err)
	}

	overlapQuery := `SELECT COUNT(*) FROM bookings
		WHERE teacher_id = $1
		  AND status = ANY($2)
		  AND scheduled_start < $4
		  AND scheduled_end > $3`
	var overlapping int
	if err = tx.QueryRowContext(
		ctx, overlapQuery, b.TeacherID,
		pq.Array(domain.ActiveStatuses), b.ScheduledStart, b.ScheduledEnd,
	).Scan(&overlapping); err != nil {
		return dbErr("check teacher availability", err)
	}

	if overlapping > 0 {
		return domain.ErrTeacherUnavailable
	}

	query := `INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err = tx.ExecContext(ctx, query,
		b.ID, b.StudentID, b.TeacherID, b.LessonType, b.DurationMinutes,
		b.ScheduledStart, b.ScheduledEnd, b.Status, b.RescheduleCount,
		b.BasePrice, b.TaxAmount, b.CommissionAmount, b.TotalPrice, b.TeacherEarnings,
		b.Notes, b.Version, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrTeacherUnavailable
		}
		return dbErr("insert booking", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, dbErr("get booking", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) Confirm(ctx context.Context, id string, version int64) error {
	query := `UPDATE bookings
		SET status = $3, version = version + 1, updated_at = now()
		WHERE id = $1 AND version = $2 AND status = $4`
	res, err := r.db.Master.ExecContext(ctx, query,
		id, version, domain.BookingStatusConfirmed, domain.BookingStatusPending,
	)
	if err != nil {
		return dbErr("confirm booking", err)
	}

	return r.checkApplied(ctx, res, id, version, domain.BookingStatusPending)
}

func (r *BookingRepository) Reschedule(ctx context.Context, id string, version int64, newStart, newEnd time.Time) error {
	query := `UPDATE bookings
		SET scheduled_start = $3, scheduled_end = $4,
		    reschedule_count = reschedule_count + 1,
		    version = version + 1, updated_at = now()
		WHERE id = $1 AND version = $2 AND status = ANY($5)`
	res, err := r.db.Master.ExecContext(ctx, query,
		id, version, newStart, newEnd, pq.Array(domain.ActiveStatuses),
	)
	if err != nil {
		return dbErr("reschedule booking", err)
	}

	return r.checkApplied(ctx, res, id, version, domain.ActiveStatuses...)
}

func (r *BookingRepository) Cancel(ctx context.Context, id string, version int64) error {
	query := `UPDATE bookings
		SET status = $3, version = version + 1, updated_at = now()
		WHERE id = $1 AND version = $2 AND status = ANY($4)`
	res, err := r.db.Master.ExecContext(ctx, query,
		id, version, domain.BookingStatusCancelled, pq.Array(domain.ActiveStatuses),
	)
	if err != nil {
		return dbErr("cancel booking", err)
	}

	return r.checkApplied(ctx, res, id, version, domain.ActiveStatuses...)
}

func (r *BookingRepository) Complete(ctx context.Context, id string, version int64) error {
	query := `UPDATE bookings
		SET status = $3, version = version + 1, updated_at = now()
		WHERE id = $1 AND version = $2 AND status = $4`
	res, err := r.db.Master.ExecContext(ctx, query,
		id, version, domain.BookingStatusCompleted, domain.BookingStatusConfirmed,
	)
	if err != nil {
		return dbErr("complete booking", err)
	}

	return r.checkApplied(ctx, res, id, version, domain.BookingStatusConfirmed)
}

// SweepAutoComplete force-completes the confirmed bookings that ended at or
// before the watermark. One statement, so concurrent user transitions either
// land before it or make the row no longer match; losing is fine.
func (r *BookingRepository) SweepAutoComplete(ctx context.Context, endedBefore time.Time) ([]string, error) {
	query := `UPDATE bookings
		SET status = $2, version = version + 1, updated_at = now()
		WHERE status = $1 AND scheduled_end <= $3
		RETURNING id`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusConfirmed, domain.BookingStatusAutoCompleted, endedBefore,
	)
	if err != nil {
		return nil, dbErr("sweep auto complete", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *BookingRepository) ListByStudent(ctx context.Context, studentID string) ([]*domain.Booking, error) {
	return r.list(ctx, `SELECT `+bookingColumns+` FROM bookings
		WHERE student_id = $1 ORDER BY scheduled_start DESC`, studentID)
}

func (r *BookingRepository) ListByTeacher(ctx context.Context, teacherID string) ([]*domain.Booking, error) {
	return r.list(ctx, `SELECT `+bookingColumns+` FROM bookings
		WHERE teacher_id = $1 ORDER BY scheduled_start DESC`, teacherID)
}

func (r *BookingRepository) list(ctx context.Context, query string, arg any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, dbErr("list bookings", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// checkApplied explains a zero-rows-affected update: missing row, stale
// version, or a status the transition does not start from.
func (r *BookingRepository) checkApplied(ctx context.Context, res sql.Result, id string, version int64, allowed ...domain.BookingStatus) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected > 0 {
		return nil
	}

	var status string
	var current int64
	checkQuery := `SELECT status, version FROM bookings WHERE id = $1`
	if err = r.db.Master.QueryRowContext(ctx, checkQuery, id).Scan(&status, &current); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return dbErr("check booking", err)
	}

	if current != version {
		return domain.ErrConflict
	}
	for _, s := range allowed {
		if status == string(s) {
			// Version and status both matched yet nothing was updated:
			// a writer slipped in between the UPDATE and this check.
			return domain.ErrConflict
		}
	}
	return fmt.Errorf("%w: booking is %s", domain.ErrInvalidTransition, status)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID, &b.StudentID, &b.TeacherID, &b.LessonType, &b.DurationMinutes,
		&b.ScheduledStart, &b.ScheduledEnd, &b.Status, &b.RescheduleCount,
		&b.BasePrice, &b.TaxAmount, &b.CommissionAmount, &b.TotalPrice, &b.TeacherEarnings,
		&b.Notes, &b.Version, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
