package store

import (
	"errors"

	"catalog-app/internal/media"

	"github.com/charmbracelet/log"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// The error taxonomy every store operation resolves to. Anything that is not
// one of these surfaces as an *InternalError with the cause logged, never
// exposed.
var (
	ErrNotFound           = errors.New("not found")
	ErrNoFieldsToUpdate   = errors.New("no fields to update")
	ErrForeignKeyNotFound = errors.New("referenced entity not found")
	ErrDeleteForbidden    = errors.New("delete forbidden")
)

// DuplicateEntryError reports a unique-constraint violation with enough
// detail for the caller to tell which value collided.
type DuplicateEntryError struct {
	Detail string
}

func (e *DuplicateEntryError) Error() string {
	if e.Detail == "" {
		return "duplicate entry"
	}
	return "duplicate entry: " + e.Detail
}

// InternalError wraps an unclassified backend failure. Its message is opaque
// on purpose; the wrapped cause is for logs only.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string { return "internal failure" }
func (e *InternalError) Unwrap() error { return e.Err }

// classify maps a backend error to the taxonomy. It runs immediately after a
// failed statement, before the transaction rollback is decided, and is
// idempotent for errors that are already classified.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if classified(err) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	// postgres reports constraint violations with SQLSTATE codes and a
	// detail line naming the offending column/value
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			detail := pgErr.Detail
			if detail == "" {
				detail = pgErr.ConstraintName
			}
			return &DuplicateEntryError{Detail: detail}
		case "23503":
			return ErrForeignKeyNotFound
		}
	}

	// translated errors from other dialects (sqlite in tests)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &DuplicateEntryError{Detail: err.Error()}
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrForeignKeyNotFound
	}

	log.Error("unclassified backend error", "err", err)
	return &InternalError{Err: err}
}

func classified(err error) bool {
	var dup *DuplicateEntryError
	var internal *InternalError
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrNoFieldsToUpdate) ||
		errors.Is(err, ErrForeignKeyNotFound) ||
		errors.Is(err, ErrDeleteForbidden) ||
		errors.Is(err, media.ErrInvalidFormat) ||
		errors.As(err, &dup) ||
		errors.As(err, &internal)
}
