package pgsql

import (
	"context"

	"github.com/SscSPs/library_management_app/internal/apperrors"
	"github.com/SscSPs/library_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/library_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userSelectQuery = `
SELECT
	u.user_id, u.username, u.password_hash, u.name, u.email, u.role, u.is_active,
	u.created_at, u.created_by, u.last_updated_at, u.last_updated_by
FROM users u
`

// getUsers runs the user select with the given filter on q.
func getUsers(ctx context.Context, q querier, filterQuery string, args ...any) ([]domain.User, error) {
	rows, err := q.Query(ctx, userSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query users", err)
	}
	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.User])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect user rows", err)
	}
	return users, nil
}

func findUserByID(ctx context.Context, q querier, userID string, lock bool) (*domain.User, error) {
	filter := `WHERE u.user_id = $1`
	if lock {
		filter += ` FOR UPDATE`
	}
	users, err := getUsers(ctx, q, filter, userID)
	if err != nil {
		return nil, err
	}
	return collectOne(users, "user")
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return findUserByID(ctx, r.Pool, userID, false)
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	users, err := getUsers(ctx, r.Pool, `WHERE u.username = $1`, username)
	if err != nil {
		return nil, err
	}
	return collectOne(users, "user")
}

func (r *PgxUserRepository) FindMembers(ctx context.Context, limit int, offset int) ([]domain.MemberSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT
			u.user_id, u.username, u.password_hash, u.name, u.email, u.role, u.is_active,
			u.created_at, u.created_by, u.last_updated_at, u.last_updated_by,
			(SELECT COUNT(*) FROM book_copies c
				WHERE c.borrowed_by = u.user_id AND c.status = 'borrowed') AS active_borrows_count,
			(SELECT COUNT(*) FROM transactions t
				WHERE t.borrowed_by = u.user_id) AS total_borrows_count
		FROM users u
		WHERE u.role = 'member'
		ORDER BY u.username
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query members", err)
	}
	members, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.MemberSummary])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect member rows", err)
	}
	return members, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (
			user_id, username, password_hash, name, email, role, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		user.UserID,
		user.Username,
		user.PasswordHash,
		user.Name,
		user.Email,
		user.Role,
		user.IsActive,
		user.CreatedAt,
		user.CreatedBy,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to save user "+user.UserID)
	}
	return nil
}

func (r *PgxUserRepository) ActivateMember(ctx context.Context, memberID string, updatedBy string) error {
	query := `
		UPDATE users
		SET is_active = TRUE, last_updated_at = NOW(), last_updated_by = $2
		WHERE user_id = $1 AND role = 'member';
	`
	cmdTag, err := r.Pool.Exec(ctx, query, memberID, updatedBy)
	if err != nil {
		return mapPgError(err, "failed to activate member")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("member")
	}
	return nil
}

// DeactivateMember locks the member row so a concurrent issue, which locks
// the same row first, cannot slip a borrow in between the count and the update.
func (r *PgxUserRepository) DeactivateMember(ctx context.Context, memberID string, updatedBy string) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		member, err := findUserByID(ctx, tx, memberID, true)
		if err != nil {
			return err
		}
		if member.Role != domain.RoleMember {
			return apperrors.NewNotFoundError("member")
		}

		borrowed, err := countBorrowedCopies(ctx, tx, memberID)
		if err != nil {
			return err
		}
		if borrowed > 0 {
			return apperrors.NewValidationFailedError("Cannot deactivate member with active borrows")
		}

		_, err = tx.Exec(ctx, `
			UPDATE users
			SET is_active = FALSE, last_updated_at = NOW(), last_updated_by = $2
			WHERE user_id = $1;
		`, memberID, updatedBy)
		if err != nil {
			return mapPgError(err, "failed to deactivate member")
		}
		return nil
	})
}
