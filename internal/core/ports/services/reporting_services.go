package services

import (
	"context"

	"github.com/SscSPs/library_management_app/internal/core/domain"
)

// ReportingService defines the borrowing statistics. Librarian only.
type ReportingService interface {
	// Overview counts copies by status, open and overdue transactions, and members.
	Overview(ctx context.Context, callerID string) (*domain.LibraryOverview, error)

	// PopularBooks ranks the most borrowed titles.
	PopularBooks(ctx context.Context, limit int, callerID string) ([]domain.PopularBook, error)
}
