package repository

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/lib/pq"
	"github.com/ostrv1/LessonDesk/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDBErr_ClassifiesConnectionFailures(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"bad conn", driver.ErrBadConn},
		{"wrapped bad conn", fmt.Errorf("query: %w", driver.ErrBadConn)},
		{"net error", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}},
		{"pg connection exception", &pq.Error{Code: "08006"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := dbErr("get booking", tc.err)
			assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
		})
	}
}

func TestDBErr_KeepsOtherErrors(t *testing.T) {
	cause := errors.New("syntax error at or near")

	err := dbErr("get booking", cause)

	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestDBErr_KeepsConstraintViolations(t *testing.T) {
	cause := &pq.Error{Code: "23505"}

	err := dbErr("insert booking", cause)

	assert.NotErrorIs(t, err, domain.ErrStorageUnavailable)
	var pgErr *pq.Error
	assert.ErrorAs(t, err, &pgErr)
}
