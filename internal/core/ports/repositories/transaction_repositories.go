package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/library_management_app/internal/core/domain"
)

// TransactionFilter narrows transaction listings.
type TransactionFilter struct {
	MemberID      *string
	ActiveOnly    bool
	FineCollected *bool
	// OverdueBefore restricts to open transactions created before the cutoff.
	OverdueBefore *time.Time
	Limit         int
	NextToken     *string
}

// TransactionReader defines read operations on the transaction ledger
type TransactionReader interface {
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns a page ordered newest first and a token for the next page.
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, *string, error)

	// FindOverdueTransactions returns open transactions created before cutoff, oldest first.
	FindOverdueTransactions(ctx context.Context, cutoff time.Time) ([]domain.Transaction, error)
}

// TransactionRepositoryFacade combines all ledger read interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
}

// BorrowingTxStore is the view of the store available inside one atomic unit.
// The ForUpdate lookups hold a row lock until the unit ends.
type BorrowingTxStore interface {
	FindUserByIDForUpdate(ctx context.Context, userID string) (*domain.User, error)
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	FindCopyByBarcodeForUpdate(ctx context.Context, barcode string) (*domain.BookCopy, error)
	FindCopyByIDForUpdate(ctx context.Context, copyID string) (*domain.BookCopy, error)
	FindBookByID(ctx context.Context, bookID string) (*domain.Book, error)

	// CountBorrowedCopies counts copies in status borrowed held by memberID.
	CountBorrowedCopies(ctx context.Context, memberID string) (int, error)
	HasActiveTransactionForBook(ctx context.Context, memberID string, bookID string) (bool, error)
	HasActiveTransactionForCopy(ctx context.Context, copyID string) (bool, error)

	// FindTransactionByID reads without locking. Returns lock the copy before
	// the transaction, so they look the transaction up first.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	FindTransactionByIDForUpdate(ctx context.Context, transactionID string) (*domain.Transaction, error)
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	// UpdateTransaction writes returned_at, fine and fine_collected.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateCopyStatus writes status and borrowed_by.
	UpdateCopyStatus(ctx context.Context, copy domain.BookCopy, updatedBy string) error
}

// BorrowingRepository runs fn as one atomic unit. Any error returned by fn, or
// cancellation of ctx, rolls back every write fn made.
type BorrowingRepository interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, store BorrowingTxStore) error) error
}
