package dto

import (
	"time"

	"github.com/SscSPs/library_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateLibraryConfigRequest patches the borrowing policy. Omitted fields keep their value.
type UpdateLibraryConfigRequest struct {
	MaxBorrowDaysWithoutFine *int             `json:"max_borrow_days_without_fine" binding:"omitempty,min=0,max=36500"`
	FinePerDay               *decimal.Decimal `json:"fine_per_day"`
	MaxBooksPerMember        *int             `json:"max_books_per_member" binding:"omitempty,min=1"`
}

// Apply returns current with the requested fields replaced.
func (r UpdateLibraryConfigRequest) Apply(current domain.LibraryPolicy) domain.LibraryPolicy {
	next := current
	if r.MaxBorrowDaysWithoutFine != nil {
		next.MaxBorrowDaysWithoutFine = *r.MaxBorrowDaysWithoutFine
	}
	if r.FinePerDay != nil {
		next.FinePerDay = *r.FinePerDay
	}
	if r.MaxBooksPerMember != nil {
		next.MaxBooksPerMember = *r.MaxBooksPerMember
	}
	return next
}

type LibraryConfigResponse struct {
	MaxBorrowDaysWithoutFine int       `json:"max_borrow_days_without_fine"`
	FinePerDay               string    `json:"fine_per_day"`
	MaxBooksPerMember        int       `json:"max_books_per_member"`
	LastUpdatedAt            time.Time `json:"last_updated_at"`
	LastUpdatedBy            *string   `json:"last_updated_by,omitempty"`
}

func ToLibraryConfigResponse(p domain.LibraryPolicy) LibraryConfigResponse {
	return LibraryConfigResponse{
		MaxBorrowDaysWithoutFine: p.MaxBorrowDaysWithoutFine,
		FinePerDay:               p.FinePerDay.StringFixed(2),
		MaxBooksPerMember:        p.MaxBooksPerMember,
		LastUpdatedAt:            p.LastUpdatedAt,
		LastUpdatedBy:            p.LastUpdatedBy,
	}
}
