package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/library_management_app/internal/apperrors"
	"github.com/SscSPs/library_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/library_management_app/internal/core/ports/repositories"
	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

func countWhere(condition string, args ...any) exp.LiteralExpression {
	return goqu.L("COUNT(*) FILTER (WHERE "+condition+")", args...)
}

func scanOne[T any](ctx context.Context, q querier, ds *goqu.SelectDataset) (T, error) {
	var zero T
	query, args, err := selectSQL(ds)
	if err != nil {
		return zero, err
	}
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return zero, apperrors.NewAppError(500, "failed to run report query", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		return zero, apperrors.NewAppError(500, "failed to collect report row", err)
	}
	return row, nil
}

// GetOverview reads the three sections from one snapshot so the numbers agree.
func (r *reportingRepository) GetOverview(ctx context.Context, overdueCutoff time.Time) (*domain.LibraryOverview, error) {
	tx, err := r.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin report snapshot", err)
	}
	defer func() { _ = r.Rollback(context.WithoutCancel(ctx), tx) }()

	copiesDS := dialect.From("book_copies").Select(
		goqu.COUNT(goqu.Star()).As("total"),
		countWhere("status = ?", string(domain.CopyAvailable)).As("available"),
		countWhere("status = ?", string(domain.CopyBorrowed)).As("borrowed"),
		countWhere("status = ?", string(domain.CopyMaintenance)).As("maintenance"),
		countWhere("status = ?", string(domain.CopyLost)).As("lost"),
	)
	copies, err := scanOne[domain.CopyCounts](ctx, tx, copiesDS)
	if err != nil {
		return nil, err
	}

	txnDS := dialect.From("transactions").Select(
		countWhere("returned_at IS NULL").As("active"),
		countWhere("returned_at IS NULL AND created_at < ?", overdueCutoff).As("overdue"),
	)
	txns, err := scanOne[domain.TransactionCounts](ctx, tx, txnDS)
	if err != nil {
		return nil, err
	}

	membersDS := dialect.From("users").
		Where(goqu.C("role").Eq(string(domain.RoleMember))).
		Select(
			goqu.COUNT(goqu.Star()).As("total"),
			goqu.L("(SELECT COUNT(DISTINCT borrowed_by) FROM book_copies WHERE status = ?)", string(domain.CopyBorrowed)).As("active_borrowers"),
		)
	members, err := scanOne[domain.MemberCounts](ctx, tx, membersDS)
	if err != nil {
		return nil, err
	}

	return &domain.LibraryOverview{
		Copies:       copies,
		Transactions: txns,
		Members:      members,
	}, nil
}

// GetPopularBooks ranks titles by transaction count; ties go to the title order.
func (r *reportingRepository) GetPopularBooks(ctx context.Context, limit int) ([]domain.PopularBook, error) {
	ds := dialect.From(goqu.T("transactions").As("t")).
		Join(goqu.T("book_copies").As("c"), goqu.On(goqu.I("c.copy_id").Eq(goqu.I("t.book_copy_id")))).
		Join(goqu.T("books").As("b"), goqu.On(goqu.I("b.book_id").Eq(goqu.I("c.book_id")))).
		Join(goqu.T("authors").As("a"), goqu.On(goqu.I("a.author_id").Eq(goqu.I("b.author_id")))).
		Select(
			goqu.I("b.book_id"),
			goqu.I("b.title"),
			goqu.I("a.name").As("author"),
			goqu.COUNT(goqu.I("t.transaction_id")).As("borrow_count"),
		).
		GroupBy(goqu.I("b.book_id"), goqu.I("b.title"), goqu.I("a.name")).
		Order(goqu.I("borrow_count").Desc(), goqu.I("b.title").Asc()).
		Limit(uint(limit))

	query, args, err := selectSQL(ds)
	if err != nil {
		return nil, err
	}
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query popular books", err)
	}
	books, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.PopularBook])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect popular book rows", err)
	}
	return books, nil
}
