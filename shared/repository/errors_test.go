package repository

import (
	"errors"
	"net/http"
	"testing"

	"resort/shared/constant"
	"resort/shared/failure"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "unique violation",
			err:      &pq.Error{Code: constant.PqErrorCodeUniqueViolation},
			wantCode: http.StatusConflict,
			wantMsg:  "hotel already exists",
		},
		{
			name:     "foreign key violation",
			err:      &pq.Error{Code: constant.PqErrorCodeFkViolation},
			wantCode: http.StatusBadRequest,
			wantMsg:  "hotel references a record that does not exist",
		},
		{
			name:     "check violation",
			err:      &pq.Error{Code: constant.PqErrorCodeCheckViolation, Constraint: "bookings_target"},
			wantCode: http.StatusBadRequest,
			wantMsg:  "hotel is invalid (bookings_target)",
		},
		{
			name:     "other postgres error",
			err:      &pq.Error{Code: "42P01", Message: "undefined table"},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:     "plain error",
			err:      errors.New("connection reset"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := translateError("hotel", tt.err)

			assert.Equal(t, tt.wantCode, failure.GetCode(err))

			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}

func TestTranslateDeleteError(t *testing.T) {
	err := translateDeleteError("room", &pq.Error{Code: constant.PqErrorCodeFkViolation})
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	assert.Equal(t, "room is still in use", err.Error())

	plain := errors.New("timeout")
	assert.Same(t, plain, translateDeleteError("room", plain))
}
