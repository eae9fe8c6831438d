package pgsql

import (
	"errors"

	"github.com/SscSPs/library_management_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgCheckViolation       = "23514"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// Constraint names from migrations/.
const (
	constraintActiveTransaction = "one_active_transaction_per_copy"
	constraintUsername          = "users_username_key"
	constraintBarcode           = "book_copies_barcode_key"
	constraintISBN              = "books_isbn_key"
	constraintBooksAuthor       = "fk_books_author"
	constraintCopyBorrower      = "copy_status_borrower_constraint"
)

// mapPgError turns constraint and concurrency failures into application
// errors. Anything else becomes a 500 carrying msg.
func mapPgError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return apperrors.NewAppError(500, msg, err)
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		switch pgErr.ConstraintName {
		case constraintActiveTransaction:
			return apperrors.NewRuleViolation(apperrors.ErrBookNotAvailable, "Book copy is not available for borrowing")
		case constraintUsername:
			return apperrors.NewConflictError("username already exists")
		case constraintBarcode:
			return apperrors.NewConflictError("A copy with this barcode already exists")
		case constraintISBN:
			return apperrors.NewConflictError("A book with this ISBN already exists")
		}
		return apperrors.NewConflictError("resource already exists")
	case pgForeignKeyViolation:
		if pgErr.ConstraintName == constraintBooksAuthor {
			return apperrors.NewConflictError("Cannot delete author with existing books")
		}
		return apperrors.NewConflictError("operation conflicts with a referenced record")
	case pgCheckViolation:
		if pgErr.ConstraintName == constraintCopyBorrower {
			return apperrors.NewAppError(500, "copy status and borrower out of step", err)
		}
		return apperrors.NewValidationFailedError("value violates constraint " + pgErr.ConstraintName)
	case pgSerializationFailure, pgDeadlockDetected:
		return apperrors.NewConflictError("Concurrent update detected, please retry")
	}
	return apperrors.NewAppError(500, msg, err)
}
