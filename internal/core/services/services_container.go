package services

import (
	portsrepo "github.com/SscSPs/library_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/library_management_app/internal/core/ports/services"
	"github.com/SscSPs/library_management_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Everything else checks callers through the access policy and reads the
	// borrowing rules from the config service, so these two come first.
	container.Access = NewAccessPolicy(repos.UserRepo)
	container.LibraryConfig = NewLibraryConfigService(
		repos.LibraryConfigRepo,
		container.Access,
		WithPolicyDefaults(cfg.PolicyDefaults),
	)
	policy := container.LibraryConfig

	container.User = NewUserService(repos.UserRepo, repos.TransactionRepo, policy, container.Access)
	container.Token = NewTokenService(cfg)
	container.Author = NewAuthorService(repos.AuthorRepo, container.Access)
	container.Book = NewBookService(repos.BookRepo, repos.AuthorRepo, repos.BookCopyRepo, policy, container.Access)
	container.BookCopy = NewBookCopyService(repos.BookCopyRepo, repos.BookRepo, repos.BorrowingRepo, container.Access)
	container.Borrowing = NewBorrowingService(repos.BorrowingRepo, repos.TransactionRepo, policy, container.Access)
	container.Reporting = NewReportingService(repos.ReportingRepo, policy, container.Access)

	return container
}
