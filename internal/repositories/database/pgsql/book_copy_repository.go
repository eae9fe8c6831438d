package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/library_management_app/internal/apperrors"
	"github.com/SscSPs/library_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/library_management_app/internal/core/ports/repositories"
	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBookCopyRepository struct {
	BaseRepository
}

func newPgxBookCopyRepository(pool *pgxpool.Pool) *PgxBookCopyRepository {
	return &PgxBookCopyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BookCopyRepositoryFacade = (*PgxBookCopyRepository)(nil)

const copySelectQuery = `
SELECT
	c.copy_id, c.book_id, c.barcode, c.status, c.borrowed_by,
	c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
FROM book_copies c
`

func getCopies(ctx context.Context, q querier, filterQuery string, args ...any) ([]domain.BookCopy, error) {
	rows, err := q.Query(ctx, copySelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query book copies", err)
	}
	copies, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.BookCopy])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect book copy rows", err)
	}
	return copies, nil
}

func (r *PgxBookCopyRepository) FindCopyByID(ctx context.Context, copyID string) (*domain.BookCopy, error) {
	copies, err := getCopies(ctx, r.Pool, `WHERE c.copy_id = $1`, copyID)
	if err != nil {
		return nil, err
	}
	return collectOne(copies, "book copy")
}

func (r *PgxBookCopyRepository) FindCopyByBarcode(ctx context.Context, barcode string) (*domain.BookCopy, error) {
	copies, err := getCopies(ctx, r.Pool, `WHERE c.barcode = $1`, barcode)
	if err != nil {
		return nil, err
	}
	return collectOne(copies, "book copy")
}

func (r *PgxBookCopyRepository) FindCopies(ctx context.Context, filter portsrepo.CopyFilter) ([]domain.BookCopy, error) {
	ds := dialect.From("book_copies").
		Select("copy_id", "book_id", "barcode", "status", "borrowed_by",
			"created_at", "created_by", "last_updated_at", "last_updated_by").
		Order(goqu.C("barcode").Asc())
	if filter.BookID != nil {
		ds = ds.Where(goqu.C("book_id").Eq(*filter.BookID))
	}
	if filter.Status != nil {
		ds = ds.Where(goqu.C("status").Eq(string(*filter.Status)))
	}

	query, args, err := selectSQL(paginate(ds, filter.Limit, filter.Offset))
	if err != nil {
		return nil, err
	}
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query book copies", err)
	}
	copies, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.BookCopy])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect book copy rows", err)
	}
	return copies, nil
}

// copyLoanRow is a copy joined with its open transaction, if any.
type copyLoanRow struct {
	domain.BookCopy
	BookTitle     string     `db:"book_title"`
	TransactionID *string    `db:"transaction_id"`
	LoanMemberID  *string    `db:"loan_member_id"`
	IssuedBy      *string    `db:"issued_by"`
	LoanCreatedAt *time.Time `db:"loan_created_at"`
}

func (row copyLoanRow) toDomain() domain.CopyWithLoan {
	entry := domain.CopyWithLoan{BookCopy: row.BookCopy}
	if row.TransactionID == nil {
		return entry
	}
	entry.ActiveTransaction = &domain.Transaction{
		TransactionID: *row.TransactionID,
		BookCopyID:    row.CopyID,
		BorrowedBy:    *row.LoanMemberID,
		IssuedBy:      row.IssuedBy,
		CreatedAt:     *row.LoanCreatedAt,
		Barcode:       row.Barcode,
		BookID:        row.BookID,
		BookTitle:     row.BookTitle,
	}
	return entry
}

func (r *PgxBookCopyRepository) FindCopiesWithLoansByBook(ctx context.Context, bookID string) ([]domain.CopyWithLoan, error) {
	query := `
		SELECT
			c.copy_id, c.book_id, c.barcode, c.status, c.borrowed_by,
			c.created_at, c.created_by, c.last_updated_at, c.last_updated_by,
			b.title AS book_title,
			t.transaction_id, t.borrowed_by AS loan_member_id, t.issued_by,
			t.created_at AS loan_created_at
		FROM book_copies c
		JOIN books b ON b.book_id = c.book_id
		LEFT JOIN transactions t ON t.book_copy_id = c.copy_id AND t.returned_at IS NULL
		WHERE c.book_id = $1
		ORDER BY c.barcode;
	`
	rows, err := r.Pool.Query(ctx, query, bookID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query copies with loans", err)
	}
	loanRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[copyLoanRow])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect copy rows", err)
	}

	result := make([]domain.CopyWithLoan, len(loanRows))
	for i, row := range loanRows {
		result[i] = row.toDomain()
	}
	return result, nil
}

func (r *PgxBookCopyRepository) SaveCopy(ctx context.Context, bookCopy domain.BookCopy) error {
	query := `
		INSERT INTO book_copies (
			copy_id, book_id, barcode, status, borrowed_by,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		bookCopy.CopyID,
		bookCopy.BookID,
		bookCopy.Barcode,
		bookCopy.Status,
		bookCopy.BorrowedBy,
		bookCopy.CreatedAt,
		bookCopy.CreatedBy,
		bookCopy.LastUpdatedAt,
		bookCopy.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to save book copy "+bookCopy.Barcode)
	}
	return nil
}

// countBorrowedCopies counts copies currently in status borrowed held by memberID.
func countBorrowedCopies(ctx context.Context, q querier, memberID string) (int, error) {
	var count int
	err := q.QueryRow(ctx, `
		SELECT COUNT(*) FROM book_copies
		WHERE borrowed_by = $1 AND status = 'borrowed';
	`, memberID).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count borrowed copies", err)
	}
	return count, nil
}
