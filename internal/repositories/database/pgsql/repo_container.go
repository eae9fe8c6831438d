package pgsql

import (
	portsrepo "github.com/SscSPs/library_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:          newPgxUserRepository(dbPool),
		AuthorRepo:        newPgxAuthorRepository(dbPool),
		BookRepo:          newPgxBookRepository(dbPool),
		BookCopyRepo:      newPgxBookCopyRepository(dbPool),
		TransactionRepo:   newPgxTransactionRepository(dbPool),
		BorrowingRepo:     newPgxBorrowingRepository(dbPool),
		LibraryConfigRepo: newPgxLibraryConfigRepository(dbPool),
		ReportingRepo:     newReportingRepository(dbPool),
	}
}
