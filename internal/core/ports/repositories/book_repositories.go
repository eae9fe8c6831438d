package repositories

import (
	"context"

	"github.com/SscSPs/library_management_app/internal/core/domain"
)

// BookFilter narrows book listings. Archived books are excluded unless IncludeArchived is set.
type BookFilter struct {
	AuthorID        *string
	IncludeArchived bool
	Limit           int
	Offset          int
}

// CopyFilter narrows copy listings.
type CopyFilter struct {
	BookID *string
	Status *domain.CopyStatus
	Limit  int
	Offset int
}

// BookReader defines read operations for catalog titles
type BookReader interface {
	FindBookByID(ctx context.Context, bookID string) (*domain.Book, error)
	FindBooks(ctx context.Context, filter BookFilter) ([]domain.Book, error)
}

// BookWriter defines write operations for catalog titles
type BookWriter interface {
	SaveBook(ctx context.Context, book domain.Book) error
	UpdateBook(ctx context.Context, book domain.Book) error
	SetBookArchived(ctx context.Context, bookID string, archived bool, updatedBy string) error
}

// BookRepositoryFacade combines all book-related repository interfaces
type BookRepositoryFacade interface {
	BookReader
	BookWriter
}

// BookCopyReader defines read operations for physical copies
type BookCopyReader interface {
	FindCopyByID(ctx context.Context, copyID string) (*domain.BookCopy, error)
	FindCopyByBarcode(ctx context.Context, barcode string) (*domain.BookCopy, error)
	FindCopies(ctx context.Context, filter CopyFilter) ([]domain.BookCopy, error)

	// FindCopiesWithLoansByBook lists every copy of a book joined with its open transaction.
	FindCopiesWithLoansByBook(ctx context.Context, bookID string) ([]domain.CopyWithLoan, error)
}

// BookCopyWriter defines write operations for physical copies. Status changes
// go through BorrowingRepository so they are made under a row lock.
type BookCopyWriter interface {
	// SaveCopy persists a new copy. A taken barcode is reported as a conflict.
	SaveCopy(ctx context.Context, copy domain.BookCopy) error
}

// BookCopyRepositoryFacade combines all copy-related repository interfaces
type BookCopyRepositoryFacade interface {
	BookCopyReader
	BookCopyWriter
}
