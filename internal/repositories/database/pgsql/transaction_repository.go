package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/library_management_app/internal/apperrors"
	"github.com/SscSPs/library_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/library_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/library_management_app/internal/utils/pagination"
	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	defaultTransactionPageSize = 20
	maxTransactionPageSize     = 100
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// transactionSelect joins the copy and title shown with every transaction.
func transactionSelect() *goqu.SelectDataset {
	return dialect.From(goqu.T("transactions").As("t")).
		Join(goqu.T("book_copies").As("c"), goqu.On(goqu.I("c.copy_id").Eq(goqu.I("t.book_copy_id")))).
		Join(goqu.T("books").As("b"), goqu.On(goqu.I("b.book_id").Eq(goqu.I("c.book_id")))).
		Select(
			goqu.I("t.transaction_id"),
			goqu.I("t.book_copy_id"),
			goqu.I("t.borrowed_by"),
			goqu.I("t.issued_by"),
			goqu.I("t.created_at"),
			goqu.I("t.returned_at"),
			goqu.I("t.fine"),
			goqu.I("t.fine_collected"),
			goqu.I("c.barcode"),
			goqu.I("c.book_id"),
			goqu.I("b.title").As("book_title"),
		)
}

func queryTransactions(ctx context.Context, q querier, ds *goqu.SelectDataset, suffix string) ([]domain.Transaction, error) {
	query, args, err := selectSQL(ds)
	if err != nil {
		return nil, err
	}
	rows, err := q.Query(ctx, query+suffix, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	txns, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Transaction])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect transaction rows", err)
	}
	return txns, nil
}

// findTransactionByID reads one transaction. With lock set only the
// transaction row is locked; the joined copy is locked separately by callers.
func findTransactionByID(ctx context.Context, q querier, transactionID string, lock bool) (*domain.Transaction, error) {
	suffix := ""
	if lock {
		suffix = " FOR UPDATE OF t"
	}
	txns, err := queryTransactions(ctx, q, transactionSelect().Where(goqu.I("t.transaction_id").Eq(transactionID)), suffix)
	if err != nil {
		return nil, err
	}
	return collectOne(txns, "transaction")
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return findTransactionByID(ctx, r.Pool, transactionID, false)
}

// ListTransactions pages newest first on (created_at, transaction_id). One
// extra row is read to decide whether a next token is due.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, *string, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultTransactionPageSize
	}
	if limit > maxTransactionPageSize {
		limit = maxTransactionPageSize
	}

	ds := transactionSelect().
		Order(goqu.I("t.created_at").Desc(), goqu.I("t.transaction_id").Desc()).
		Limit(uint(limit + 1))

	if filter.MemberID != nil {
		ds = ds.Where(goqu.I("t.borrowed_by").Eq(*filter.MemberID))
	}
	if filter.ActiveOnly {
		ds = ds.Where(goqu.I("t.returned_at").IsNull())
	}
	if filter.FineCollected != nil {
		ds = ds.Where(goqu.I("t.fine_collected").Eq(*filter.FineCollected))
	}
	if filter.OverdueBefore != nil {
		ds = ds.Where(
			goqu.I("t.returned_at").IsNull(),
			goqu.I("t.created_at").Lt(*filter.OverdueBefore),
		)
	}
	if filter.NextToken != nil && *filter.NextToken != "" {
		cursor, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationFailedError("invalid next_token")
		}
		ds = ds.Where(goqu.L("(t.created_at, t.transaction_id) < (?, ?)", cursor.CreatedAt, cursor.ID))
	}

	txns, err := queryTransactions(ctx, r.Pool, ds, "")
	if err != nil {
		return nil, nil, err
	}

	var next *string
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.TransactionID)
		next = &token
	}
	return txns, next, nil
}

func (r *PgxTransactionRepository) FindOverdueTransactions(ctx context.Context, cutoff time.Time) ([]domain.Transaction, error) {
	ds := transactionSelect().
		Where(
			goqu.I("t.returned_at").IsNull(),
			goqu.I("t.created_at").Lt(cutoff),
		).
		Order(goqu.I("t.created_at").Asc(), goqu.I("t.transaction_id").Asc())
	return queryTransactions(ctx, r.Pool, ds, "")
}
