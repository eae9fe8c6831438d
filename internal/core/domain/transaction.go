package domain

import (
	"time"

	"github.com/SscSPs/library_management_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

// Transaction is one loan of a BookCopy to a member. It is open while ReturnedAt is nil.
type Transaction struct {
	TransactionID string           `json:"transactionID" db:"transaction_id"`
	BookCopyID    string           `json:"bookCopyID" db:"book_copy_id"`
	BorrowedBy    string           `json:"borrowedBy" db:"borrowed_by"`
	IssuedBy      *string          `json:"issuedBy,omitempty" db:"issued_by"`
	CreatedAt     time.Time        `json:"createdAt" db:"created_at"`
	ReturnedAt    *time.Time       `json:"returnedAt,omitempty" db:"returned_at"`
	Fine          *decimal.Decimal `json:"fine,omitempty" db:"fine"`
	FineCollected bool             `json:"fineCollected" db:"fine_collected"`

	// Read-model fields joined from the copy and book.
	Barcode   string `json:"barcode" db:"barcode"`
	BookID    string `json:"bookID" db:"book_id"`
	BookTitle string `json:"bookTitle" db:"book_title"`
}

// ReturnResult describes a processed return.
type ReturnResult struct {
	TransactionID string          `json:"transactionID"`
	Fine          decimal.Decimal `json:"fine"`
	DaysBorrowed  int             `json:"daysBorrowed"`
	ReturnedAt    time.Time       `json:"returnedAt"`
	IsOverdue     bool            `json:"isOverdue"`
}

func (t Transaction) IsActive() bool {
	return t.ReturnedAt == nil
}

// DaysBorrowed counts whole days elapsed since the loan started.
func (t Transaction) DaysBorrowed(now time.Time) int {
	elapsed := now.Sub(t.CreatedAt)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / day)
}

func (t Transaction) DueDate(p LibraryPolicy) time.Time {
	return t.CreatedAt.Add(p.GracePeriod())
}

// IsOverdue is false for returned loans.
func (t Transaction) IsOverdue(now time.Time, p LibraryPolicy) bool {
	if !t.IsActive() {
		return false
	}
	return now.After(t.DueDate(p))
}

// Return closes the loan at now and records the fine.
func (t *Transaction) Return(now time.Time, p LibraryPolicy) (*ReturnResult, error) {
	if !t.IsActive() {
		return nil, apperrors.NewRuleViolation(apperrors.ErrBookAlreadyReturned, "Book already returned")
	}
	days := t.DaysBorrowed(now)
	fine := p.ComputeFine(days)

	t.ReturnedAt = &now
	t.Fine = &fine

	return &ReturnResult{
		TransactionID: t.TransactionID,
		Fine:          fine,
		DaysBorrowed:  days,
		ReturnedAt:    now,
		IsOverdue:     fine.IsPositive(),
	}, nil
}

// CollectFine flags a positive fine as paid. Collecting twice is a no-op.
func (t *Transaction) CollectFine() error {
	if t.Fine == nil || !t.Fine.IsPositive() {
		return apperrors.NewRuleViolation(apperrors.ErrNoFineToCollect, "No fine associated with this transaction")
	}
	t.FineCollected = true
	return nil
}
