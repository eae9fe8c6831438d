package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/library_management_app/internal/core/domain"
)

// ReportingRepository defines read-only aggregate queries over the catalog and ledger
type ReportingRepository interface {
	// GetOverview counts copies by status, open and overdue transactions, and members.
	GetOverview(ctx context.Context, overdueCutoff time.Time) (*domain.LibraryOverview, error)

	// GetPopularBooks ranks books by number of transactions, most borrowed first.
	GetPopularBooks(ctx context.Context, limit int) ([]domain.PopularBook, error)
}
