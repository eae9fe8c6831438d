package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/library_management_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// LibraryPolicy holds the borrowing rules stored in the single library_config row.
type LibraryPolicy struct {
	MaxBorrowDaysWithoutFine int             `json:"maxBorrowDaysWithoutFine" db:"max_borrow_days_without_fine"`
	FinePerDay               decimal.Decimal `json:"finePerDay" db:"fine_per_day"`
	MaxBooksPerMember        int             `json:"maxBooksPerMember" db:"max_books_per_member"`
	LastUpdatedAt            time.Time       `json:"lastUpdatedAt" db:"last_updated_at"`
	LastUpdatedBy            *string         `json:"lastUpdatedBy,omitempty" db:"last_updated_by"`
}

// Upper bounds keep the grace period inside time.Duration and every fine inside fine NUMERIC(7,2).
const MaxGraceDays = 36500

var (
	MaxFinePerDay = decimal.RequireFromString("100.00")
	MaxFine       = decimal.RequireFromString("99999.99")
)

// DefaultLibraryPolicy is used to seed the config row on first start.
func DefaultLibraryPolicy() LibraryPolicy {
	return LibraryPolicy{
		MaxBorrowDaysWithoutFine: 14,
		FinePerDay:               decimal.RequireFromString("1.00"),
		MaxBooksPerMember:        3,
	}
}

// Validate checks the bounds enforced by the database as well.
func (p LibraryPolicy) Validate() error {
	if p.MaxBorrowDaysWithoutFine < 0 {
		return apperrors.NewValidationFailedError("max_borrow_days_without_fine must not be negative")
	}
	if p.MaxBorrowDaysWithoutFine > MaxGraceDays {
		return apperrors.NewValidationFailedError(fmt.Sprintf("max_borrow_days_without_fine must be at most %d", MaxGraceDays))
	}
	if p.FinePerDay.IsNegative() {
		return apperrors.NewValidationFailedError("fine_per_day must not be negative")
	}
	if p.FinePerDay.GreaterThan(MaxFinePerDay) {
		return apperrors.NewValidationFailedError("fine_per_day must be at most " + MaxFinePerDay.StringFixed(2))
	}
	if !p.FinePerDay.Equal(p.FinePerDay.Round(2)) {
		return apperrors.NewValidationFailedError("fine_per_day supports at most 2 decimal places")
	}
	if p.MaxBooksPerMember < 1 {
		return apperrors.NewValidationFailedError("max_books_per_member must be at least 1")
	}
	return nil
}

// GracePeriod is the loan length after which fines accrue.
func (p LibraryPolicy) GracePeriod() time.Duration {
	return time.Duration(p.MaxBorrowDaysWithoutFine) * 24 * time.Hour
}

// OverdueCutoff is the creation time before which an open transaction is overdue at now.
func (p LibraryPolicy) OverdueCutoff(now time.Time) time.Time {
	return now.Add(-p.GracePeriod())
}

// ComputeFine charges whole overdue days only: partial days never accrue.
// The result is capped at MaxFine.
func (p LibraryPolicy) ComputeFine(daysBorrowed int) decimal.Decimal {
	overdueDays := daysBorrowed - p.MaxBorrowDaysWithoutFine
	if overdueDays <= 0 {
		return decimal.Zero
	}
	fine := decimal.NewFromInt(int64(overdueDays)).Mul(p.FinePerDay).Round(2)
	if fine.GreaterThan(MaxFine) {
		return MaxFine
	}
	return fine
}
