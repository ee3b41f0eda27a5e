package ports

import "context"

// TeacherRepo keeps per-teacher absence counters. Suspension itself is owned
// by the user-management system; the core only counts and signals.
type TeacherRepo interface {
	IncrementAbsences(ctx context.Context, teacherID string) (int, error)
	Absences(ctx context.Context, teacherID string) (int, error)
}
