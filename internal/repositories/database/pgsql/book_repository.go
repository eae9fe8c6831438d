package pgsql

import (
	"context"

	"github.com/SscSPs/library_management_app/internal/apperrors"
	"github.com/SscSPs/library_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/library_management_app/internal/core/ports/repositories"
	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBookRepository struct {
	BaseRepository
}

func newPgxBookRepository(pool *pgxpool.Pool) *PgxBookRepository {
	return &PgxBookRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BookRepositoryFacade = (*PgxBookRepository)(nil)

// bookSelect joins the author so every book carries its author's name.
func bookSelect() *goqu.SelectDataset {
	return dialect.From(goqu.T("books").As("b")).
		Join(goqu.T("authors").As("a"), goqu.On(goqu.I("a.author_id").Eq(goqu.I("b.author_id")))).
		Select(
			goqu.I("b.book_id"),
			goqu.I("b.title"),
			goqu.I("b.author_id"),
			goqu.I("a.name").As("author_name"),
			goqu.I("b.isbn"),
			goqu.I("b.is_archived"),
			goqu.I("b.created_at"),
			goqu.I("b.created_by"),
			goqu.I("b.last_updated_at"),
			goqu.I("b.last_updated_by"),
		)
}

func queryBooks(ctx context.Context, q querier, ds *goqu.SelectDataset) ([]domain.Book, error) {
	query, args, err := selectSQL(ds)
	if err != nil {
		return nil, err
	}
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query books", err)
	}
	books, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Book])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect book rows", err)
	}
	return books, nil
}

func findBookByID(ctx context.Context, q querier, bookID string) (*domain.Book, error) {
	books, err := queryBooks(ctx, q, bookSelect().Where(goqu.I("b.book_id").Eq(bookID)))
	if err != nil {
		return nil, err
	}
	return collectOne(books, "book")
}

func (r *PgxBookRepository) FindBookByID(ctx context.Context, bookID string) (*domain.Book, error) {
	return findBookByID(ctx, r.Pool, bookID)
}

func (r *PgxBookRepository) FindBooks(ctx context.Context, filter portsrepo.BookFilter) ([]domain.Book, error) {
	ds := bookSelect().Order(goqu.I("b.title").Asc(), goqu.I("b.book_id").Asc())
	if !filter.IncludeArchived {
		ds = ds.Where(goqu.I("b.is_archived").IsFalse())
	}
	if filter.AuthorID != nil {
		ds = ds.Where(goqu.I("b.author_id").Eq(*filter.AuthorID))
	}
	return queryBooks(ctx, r.Pool, paginate(ds, filter.Limit, filter.Offset))
}

func (r *PgxBookRepository) SaveBook(ctx context.Context, book domain.Book) error {
	query := `
		INSERT INTO books (
			book_id, title, author_id, isbn, is_archived,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		book.BookID,
		book.Title,
		book.AuthorID,
		book.ISBN,
		book.IsArchived,
		book.CreatedAt,
		book.CreatedBy,
		book.LastUpdatedAt,
		book.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to save book "+book.BookID)
	}
	return nil
}

func (r *PgxBookRepository) UpdateBook(ctx context.Context, book domain.Book) error {
	query := `
		UPDATE books
		SET title = $2, author_id = $3, isbn = $4, last_updated_at = $5, last_updated_by = $6
		WHERE book_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		book.BookID,
		book.Title,
		book.AuthorID,
		book.ISBN,
		book.LastUpdatedAt,
		book.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to update book "+book.BookID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("book")
	}
	return nil
}

func (r *PgxBookRepository) SetBookArchived(ctx context.Context, bookID string, archived bool, updatedBy string) error {
	query := `
		UPDATE books
		SET is_archived = $2, last_updated_at = NOW(), last_updated_by = $3
		WHERE book_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, bookID, archived, updatedBy)
	if err != nil {
		return mapPgError(err, "failed to archive book "+bookID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("book")
	}
	return nil
}
