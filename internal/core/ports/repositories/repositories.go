package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo          UserRepositoryFacade
	AuthorRepo        AuthorRepositoryFacade
	BookRepo          BookRepositoryFacade
	BookCopyRepo      BookCopyRepositoryFacade
	TransactionRepo   TransactionRepositoryFacade
	BorrowingRepo     BorrowingRepository
	LibraryConfigRepo LibraryConfigRepository
	ReportingRepo     ReportingRepository
}
