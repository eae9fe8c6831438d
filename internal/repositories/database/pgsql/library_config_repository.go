package pgsql

import (
	"context"

	"github.com/SscSPs/library_management_app/internal/apperrors"
	"github.com/SscSPs/library_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/library_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLibraryConfigRepository struct {
	BaseRepository
}

func newPgxLibraryConfigRepository(pool *pgxpool.Pool) *PgxLibraryConfigRepository {
	return &PgxLibraryConfigRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LibraryConfigRepository = (*PgxLibraryConfigRepository)(nil)

const configSelectQuery = `
SELECT max_borrow_days_without_fine, fine_per_day, max_books_per_member, last_updated_at, last_updated_by
FROM library_config
WHERE id = 1
`

func readConfig(ctx context.Context, q querier, suffix string) (*domain.LibraryPolicy, error) {
	rows, err := q.Query(ctx, configSelectQuery+suffix)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query library config", err)
	}
	policies, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.LibraryPolicy])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect library config", err)
	}
	return collectOne(policies, "library config")
}

// GetOrCreateConfig inserts defaults only when row 1 is missing, so concurrent
// first starts agree on one row.
func (r *PgxLibraryConfigRepository) GetOrCreateConfig(ctx context.Context, defaults domain.LibraryPolicy) (*domain.LibraryPolicy, error) {
	query := `
		INSERT INTO library_config (id, max_borrow_days_without_fine, fine_per_day, max_books_per_member, last_updated_at)
		VALUES (1, $1, $2, $3, NOW())
		ON CONFLICT (id) DO NOTHING;
	`
	_, err := r.Pool.Exec(ctx, query,
		defaults.MaxBorrowDaysWithoutFine,
		defaults.FinePerDay,
		defaults.MaxBooksPerMember,
	)
	if err != nil {
		return nil, mapPgError(err, "failed to seed library config")
	}
	return readConfig(ctx, r.Pool, "")
}

func (r *PgxLibraryConfigRepository) UpdateConfig(ctx context.Context, mutate func(current domain.LibraryPolicy) (domain.LibraryPolicy, error)) (*domain.LibraryPolicy, error) {
	var updated domain.LibraryPolicy
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		current, err := readConfig(ctx, tx, " FOR UPDATE")
		if err != nil {
			return err
		}
		next, err := mutate(*current)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			UPDATE library_config
			SET max_borrow_days_without_fine = $1, fine_per_day = $2, max_books_per_member = $3,
				last_updated_at = $4, last_updated_by = $5
			WHERE id = 1;
		`,
			next.MaxBorrowDaysWithoutFine,
			next.FinePerDay,
			next.MaxBooksPerMember,
			next.LastUpdatedAt,
			next.LastUpdatedBy,
		)
		if err != nil {
			return mapPgError(err, "failed to update library config")
		}
		updated = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
