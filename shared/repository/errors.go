package repository

import (
	"errors"
	"fmt"

	"resort/shared/constant"
	"resort/shared/failure"

	"github.com/lib/pq"
)

var errReorderMismatch = errors.New("reorder mismatch")

// translateError turns constraint violations into client failures.
func translateError(entity string, err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch string(pqErr.Code) {
	case constant.PqErrorCodeUniqueViolation:
		return failure.Conflict(fmt.Sprintf("%s already exists", entity))
	case constant.PqErrorCodeFkViolation:
		return failure.BadRequestFromString(fmt.Sprintf("%s references a record that does not exist", entity))
	case constant.PqErrorCodeCheckViolation:
		return failure.BadRequestFromString(fmt.Sprintf("%s is invalid (%s)", entity, pqErr.Constraint))
	default:
		return err
	}
}

// translateDeleteError reports a row that is still referenced as a conflict.
func translateDeleteError(entity string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeFkViolation {
		return failure.Conflict(fmt.Sprintf("%s is still in use", entity))
	}

	return err
}
