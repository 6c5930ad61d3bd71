package pgstore

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrInUse    = errors.New("record is referenced by other records")
)

// NonFieldErrors is reported for constraints that do not belong to a field
// the client submitted.
const NonFieldErrors = "non_field_errors"

// ConstraintError is a database constraint violation traced back to the
// field that caused it.
type ConstraintError struct {
	Field      string
	Reason     string
	Constraint string
}

func (e *ConstraintError) Error() string {
	return e.Field + " " + e.Reason
}

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeInvalidText         = "22P02"
)

func (t *Table[T, P]) mapError(err error, op string, deleting bool) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return &ConstraintError{Field: t.fieldFor(pgErr.ConstraintName), Reason: "already exists", Constraint: pgErr.ConstraintName}
		case codeForeignKeyViolation:
			if deleting {
				return ErrInUse
			}
			return &ConstraintError{Field: t.fieldFor(pgErr.ConstraintName), Reason: "does not exist", Constraint: pgErr.ConstraintName}
		case codeInvalidText:
			if deleting {
				return ErrNotFound
			}
		}
	}
	return errors.Wrapf(err, "%s %s", op, t.Name)
}

func (t *Table[T, P]) fieldFor(constraint string) string {
	if field, ok := t.Constraints[constraint]; ok {
		return field
	}
	return NonFieldErrors
}
