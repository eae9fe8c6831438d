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

type PgxAuthorRepository struct {
	BaseRepository
}

func newPgxAuthorRepository(pool *pgxpool.Pool) *PgxAuthorRepository {
	return &PgxAuthorRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AuthorRepositoryFacade = (*PgxAuthorRepository)(nil)

var authorColumns = []any{
	"author_id", "name", "nationality",
	"created_at", "created_by", "last_updated_at", "last_updated_by",
}

func (r *PgxAuthorRepository) queryAuthors(ctx context.Context, ds *goqu.SelectDataset) ([]domain.Author, error) {
	query, args, err := selectSQL(ds)
	if err != nil {
		return nil, err
	}
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query authors", err)
	}
	authors, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Author])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect author rows", err)
	}
	return authors, nil
}

func (r *PgxAuthorRepository) FindAuthorByID(ctx context.Context, authorID string) (*domain.Author, error) {
	ds := dialect.From("authors").Select(authorColumns...).Where(goqu.C("author_id").Eq(authorID))
	authors, err := r.queryAuthors(ctx, ds)
	if err != nil {
		return nil, err
	}
	return collectOne(authors, "author")
}

func (r *PgxAuthorRepository) FindAuthors(ctx context.Context, filter portsrepo.AuthorFilter) ([]domain.Author, error) {
	ds := dialect.From("authors").Select(authorColumns...).Order(goqu.C("name").Asc(), goqu.C("author_id").Asc())
	if filter.Nationality != nil {
		ds = ds.Where(goqu.C("nationality").Eq(*filter.Nationality))
	}
	ds = paginate(ds, filter.Limit, filter.Offset)
	return r.queryAuthors(ctx, ds)
}

func (r *PgxAuthorRepository) SaveAuthor(ctx context.Context, author domain.Author) error {
	query := `
		INSERT INTO authors (author_id, name, nationality, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		author.AuthorID,
		author.Name,
		author.Nationality,
		author.CreatedAt,
		author.CreatedBy,
		author.LastUpdatedAt,
		author.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to save author "+author.AuthorID)
	}
	return nil
}

func (r *PgxAuthorRepository) UpdateAuthor(ctx context.Context, author domain.Author) error {
	query := `
		UPDATE authors
		SET name = $2, nationality = $3, last_updated_at = $4, last_updated_by = $5
		WHERE author_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		author.AuthorID,
		author.Name,
		author.Nationality,
		author.LastUpdatedAt,
		author.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to update author "+author.AuthorID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("author")
	}
	return nil
}

// DeleteAuthor relies on ON DELETE RESTRICT; a referencing book surfaces as a conflict.
func (r *PgxAuthorRepository) DeleteAuthor(ctx context.Context, authorID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM authors WHERE author_id = $1;`, authorID)
	if err != nil {
		return mapPgError(err, "failed to delete author "+authorID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("author")
	}
	return nil
}

// paginate applies limit and offset, defaulting to 20 rows.
func paginate(ds *goqu.SelectDataset, limit, offset int) *goqu.SelectDataset {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return ds.Limit(uint(limit)).Offset(uint(offset))
}
