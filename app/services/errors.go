package services

import (
	"errors"

	"github.com/lib/pq"
)

// Service errors map onto HTTP statuses in the route handlers: not found is
// 404, conflict 409, forbidden 403, validation 400.
type NotFoundError struct{ Message string }

func (e *NotFoundError) Error() string { return e.Message }

type ConflictError struct{ Message string }

func (e *ConflictError) Error() string { return e.Message }

type ForbiddenError struct{ Message string }

func (e *ForbiddenError) Error() string { return e.Message }

type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }

// HTTPStatus translates a service error into a status code; anything
// unrecognized is a 500.
func HTTPStatus(err error) int {
	var nf *NotFoundError
	var cf *ConflictError
	var fb *ForbiddenError
	var vl *ValidationError
	switch {
	case errors.As(err, &nf):
		return 404
	case errors.As(err, &cf):
		return 409
	case errors.As(err, &fb):
		return 403
	case errors.As(err, &vl):
		return 400
	default:
		return 500
	}
}

// Postgres error class codes worth mapping to user-facing conflicts.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation
}

func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgForeignKeyViolation
}
