package repository

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/lib/pq"
	"github.com/ostrv1/LessonDesk/internal/domain"
)

// dbErr wraps a failed database call. Connection-level failures that survive
// the retry strategy are classified as ErrStorageUnavailable so the HTTP
// layer can answer 503 instead of a generic 500.
func dbErr(op string, err error) error {
	if storageUnavailable(err) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrStorageUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func storageUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	// Class 08 is the postgres connection-exception class.
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code.Class() == "08"
}
