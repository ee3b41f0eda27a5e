package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type TeacherRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTeacherRepo(db *dbpg.DB) *TeacherRepository {
	return &TeacherRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// IncrementAbsences bumps the teacher's absence counter atomically and
// returns the new total.
func (r *TeacherRepository) IncrementAbsences(ctx context.Context, teacherID string) (int, error) {
	query := `INSERT INTO teacher_absences (teacher_id, absences, updated_at)
		VALUES ($1, 1, now())
		ON CONFLICT (teacher_id) DO UPDATE
		SET absences = teacher_absences.absences + 1, updated_at = now()
		RETURNING absences`

	var count int
	if err := r.db.Master.QueryRowContext(ctx, query, teacherID).Scan(&count); err != nil {
		return 0, dbErr("increment absences", err)
	}

	return count, nil
}

func (r *TeacherRepository) Absences(ctx context.Context, teacherID string) (int, error) {
	query := `SELECT absences FROM teacher_absences WHERE teacher_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, teacherID)
	if err != nil {
		return 0, dbErr("get absences", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("scan absences: %w", err)
	}

	return count, nil
}
