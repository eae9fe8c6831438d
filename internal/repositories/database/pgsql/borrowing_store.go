package pgsql

import (
	"context"

	"github.com/SscSPs/library_management_app/internal/apperrors"
	"github.com/SscSPs/library_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/library_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxBorrowingRepository runs borrowing units of work inside one pgx.Tx.
type PgxBorrowingRepository struct {
	BaseRepository
}

func newPgxBorrowingRepository(pool *pgxpool.Pool) *PgxBorrowingRepository {
	return &PgxBorrowingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BorrowingRepository = (*PgxBorrowingRepository)(nil)

func (r *PgxBorrowingRepository) WithinTx(ctx context.Context, fn func(ctx context.Context, store portsrepo.BorrowingTxStore) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(ctx, &pgxBorrowingTx{tx: tx})
	})
}

// pgxBorrowingTx is the store view bound to one open transaction.
type pgxBorrowingTx struct {
	tx pgx.Tx
}

var _ portsrepo.BorrowingTxStore = (*pgxBorrowingTx)(nil)

func (s *pgxBorrowingTx) FindUserByIDForUpdate(ctx context.Context, userID string) (*domain.User, error) {
	return findUserByID(ctx, s.tx, userID, true)
}

func (s *pgxBorrowingTx) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return findUserByID(ctx, s.tx, userID, false)
}

func (s *pgxBorrowingTx) FindCopyByBarcodeForUpdate(ctx context.Context, barcode string) (*domain.BookCopy, error) {
	copies, err := getCopies(ctx, s.tx, `WHERE c.barcode = $1 FOR UPDATE`, barcode)
	if err != nil {
		return nil, err
	}
	return collectOne(copies, "book copy")
}

func (s *pgxBorrowingTx) FindCopyByIDForUpdate(ctx context.Context, copyID string) (*domain.BookCopy, error) {
	copies, err := getCopies(ctx, s.tx, `WHERE c.copy_id = $1 FOR UPDATE`, copyID)
	if err != nil {
		return nil, err
	}
	return collectOne(copies, "book copy")
}

func (s *pgxBorrowingTx) FindBookByID(ctx context.Context, bookID string) (*domain.Book, error) {
	return findBookByID(ctx, s.tx, bookID)
}

func (s *pgxBorrowingTx) CountBorrowedCopies(ctx context.Context, memberID string) (int, error) {
	return countBorrowedCopies(ctx, s.tx, memberID)
}

func (s *pgxBorrowingTx) HasActiveTransactionForBook(ctx context.Context, memberID string, bookID string) (bool, error) {
	var exists bool
	err := s.tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM transactions t
			JOIN book_copies c ON c.copy_id = t.book_copy_id
			WHERE t.borrowed_by = $1 AND c.book_id = $2 AND t.returned_at IS NULL
		);
	`, memberID, bookID).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to check open transactions for book", err)
	}
	return exists, nil
}

func (s *pgxBorrowingTx) HasActiveTransactionForCopy(ctx context.Context, copyID string) (bool, error) {
	var exists bool
	err := s.tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM transactions
			WHERE book_copy_id = $1 AND returned_at IS NULL
		);
	`, copyID).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to check open transactions for copy", err)
	}
	return exists, nil
}

func (s *pgxBorrowingTx) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return findTransactionByID(ctx, s.tx, transactionID, false)
}

func (s *pgxBorrowingTx) FindTransactionByIDForUpdate(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return findTransactionByID(ctx, s.tx, transactionID, true)
}

func (s *pgxBorrowingTx) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (
			transaction_id, book_copy_id, borrowed_by, issued_by,
			created_at, returned_at, fine, fine_collected
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := s.tx.Exec(ctx, query,
		txn.TransactionID,
		txn.BookCopyID,
		txn.BorrowedBy,
		txn.IssuedBy,
		txn.CreatedAt,
		txn.ReturnedAt,
		txn.Fine,
		txn.FineCollected,
	)
	if err != nil {
		return mapPgError(err, "failed to save transaction "+txn.TransactionID)
	}
	return nil
}

func (s *pgxBorrowingTx) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		UPDATE transactions
		SET returned_at = $2, fine = $3, fine_collected = $4
		WHERE transaction_id = $1;
	`
	cmdTag, err := s.tx.Exec(ctx, query,
		txn.TransactionID,
		txn.ReturnedAt,
		txn.Fine,
		txn.FineCollected,
	)
	if err != nil {
		return mapPgError(err, "failed to update transaction "+txn.TransactionID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction")
	}
	return nil
}

func (s *pgxBorrowingTx) UpdateCopyStatus(ctx context.Context, bookCopy domain.BookCopy, updatedBy string) error {
	if err := bookCopy.CheckInvariant(); err != nil {
		return apperrors.NewAppError(500, "refusing to write inconsistent copy", err)
	}
	query := `
		UPDATE book_copies
		SET status = $2, borrowed_by = $3, last_updated_at = NOW(), last_updated_by = $4
		WHERE copy_id = $1;
	`
	cmdTag, err := s.tx.Exec(ctx, query,
		bookCopy.CopyID,
		bookCopy.Status,
		bookCopy.BorrowedBy,
		updatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to update copy "+bookCopy.CopyID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("book copy")
	}
	return nil
}
