package domain

import (
	"github.com/SscSPs/library_management_app/internal/apperrors"
)

// CopyStatus is the lifecycle state of a physical copy.
type CopyStatus string

const (
	CopyAvailable   CopyStatus = "available"
	CopyBorrowed    CopyStatus = "borrowed"
	CopyLost        CopyStatus = "lost"
	CopyMaintenance CopyStatus = "maintenance"
)

// IsValid reports whether s is a known copy status.
func (s CopyStatus) IsValid() bool {
	switch s {
	case CopyAvailable, CopyBorrowed, CopyLost, CopyMaintenance:
		return true
	}
	return false
}

// BookCopy is a physical, barcoded copy of a Book.
// Invariant: Status == CopyBorrowed exactly when BorrowedBy is set.
type BookCopy struct {
	CopyID     string     `json:"copyID" db:"copy_id"`
	BookID     string     `json:"bookID" db:"book_id"`
	Barcode    string     `json:"barcode" db:"barcode"`
	Status     CopyStatus `json:"status" db:"status"`
	BorrowedBy *string    `json:"borrowedBy,omitempty" db:"borrowed_by"`
	AuditFields
}

// CheckIssuable fails unless the copy is on the shelf.
func (c BookCopy) CheckIssuable() error {
	if c.Status != CopyAvailable {
		return apperrors.NewRuleViolation(apperrors.ErrBookNotAvailable, "Book copy is not available for borrowing")
	}
	return nil
}

// Issue hands the copy to memberID.
func (c *BookCopy) Issue(memberID string) {
	c.Status = CopyBorrowed
	c.BorrowedBy = &memberID
}

// Release puts a borrowed copy back on the shelf. A copy reported lost while
// on loan stays lost.
func (c *BookCopy) Release() {
	if c.Status == CopyLost {
		return
	}
	c.Status = CopyAvailable
	c.BorrowedBy = nil
}

// MarkMaintenance takes the copy off the shelf. hasActiveTransaction is only
// consulted for lost copies.
func (c *BookCopy) MarkMaintenance(hasActiveTransaction bool) error {
	switch c.Status {
	case CopyBorrowed:
		return apperrors.NewRuleViolation(apperrors.ErrBookNotAvailable, "Cannot mark borrowed copy as maintenance")
	case CopyLost:
		if hasActiveTransaction {
			return apperrors.NewRuleViolation(apperrors.ErrInvalidCopyTransition, "Lost copy still has an open transaction; process the return first")
		}
	}
	c.Status = CopyMaintenance
	c.BorrowedBy = nil
	return nil
}

// MarkAvailable returns the copy to the shelf. Borrowed copies only come back
// through a processed return.
func (c *BookCopy) MarkAvailable(hasActiveTransaction bool) error {
	switch c.Status {
	case CopyBorrowed:
		return apperrors.NewRuleViolation(apperrors.ErrInvalidCopyTransition, "Borrowed copy can only be made available by processing its return")
	case CopyLost:
		if hasActiveTransaction {
			return apperrors.NewRuleViolation(apperrors.ErrInvalidCopyTransition, "Lost copy still has an open transaction; process the return first")
		}
	}
	c.Status = CopyAvailable
	c.BorrowedBy = nil
	return nil
}

// MarkLost records the copy as lost. Any open transaction on it stays open.
func (c *BookCopy) MarkLost() error {
	if c.Status == CopyLost {
		return apperrors.NewRuleViolation(apperrors.ErrInvalidCopyTransition, "Book copy is already marked as lost")
	}
	c.Status = CopyLost
	c.BorrowedBy = nil
	return nil
}

// CheckInvariant verifies the status/borrower pairing.
func (c BookCopy) CheckInvariant() error {
	if !c.Status.IsValid() {
		return apperrors.NewValidationFailedError("unknown copy status " + string(c.Status))
	}
	if (c.Status == CopyBorrowed) != (c.BorrowedBy != nil) {
		return apperrors.NewValidationFailedError("copy " + c.Barcode + " has inconsistent status and borrower")
	}
	return nil
}

// CopyWithLoan is a copy together with its open transaction, if any.
type CopyWithLoan struct {
	BookCopy
	ActiveTransaction *Transaction `json:"activeTransaction,omitempty"`
}
