package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/library_management_app/internal/apperrors"
	"github.com/SscSPs/library_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/library_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/library_management_app/internal/core/ports/services"
	"github.com/SscSPs/library_management_app/internal/dto"
	"github.com/google/uuid"
)

// --- Authors ---

type authorService struct {
	BaseService
	authorRepo portsrepo.AuthorRepositoryFacade
}

func NewAuthorService(repo portsrepo.AuthorRepositoryFacade, access portssvc.AccessPolicySvc) portssvc.AuthorSvcFacade {
	return &authorService{BaseService: BaseService{Access: access}, authorRepo: repo}
}

var _ portssvc.AuthorSvcFacade = (*authorService)(nil)

func (s *authorService) CreateAuthor(ctx context.Context, req dto.CreateAuthorRequest, callerID string) (*domain.Author, error) {
	if _, err := s.RequireLibrarian(ctx, callerID); err != nil {
		return nil, err
	}

	author := domain.Author{
		AuthorID:    uuid.NewString(),
		Name:        req.Name,
		Nationality: req.Nationality,
		AuditFields: domain.NewAuditFields(s.Now(), callerID),
	}
	if err := s.authorRepo.SaveAuthor(ctx, author); err != nil {
		s.LogError(ctx, err, "Failed to save author", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	s.LogInfo(ctx, "Author created", slog.String("author_id", author.AuthorID))
	return &author, nil
}

func (s *authorService) GetAuthor(ctx context.Context, authorID string, callerID string) (*domain.Author, error) {
	if _, err := s.RequireLibrarian(ctx, callerID); err != nil {
		return nil, err
	}
	author, err := s.authorRepo.FindAuthorByID(ctx, authorID)
	if err != nil {
		return nil, asNotFound(err, "author")
	}
	return author, nil
}

func (s *authorService) ListAuthors(ctx context.Context, params dto.ListAuthorsParams, callerID string) ([]domain.Author, error) {
	if _, err := s.RequireLibrarian(ctx, callerID); err != nil {
		return nil, err
	}
	authors, err := s.authorRepo.FindAuthors(ctx, portsrepo.AuthorFilter{
		Nationality: params.Nationality,
		Limit:       params.Limit,
		Offset:      params.Offset,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list authors")
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	return authors, nil
}

func (s *authorService) UpdateAuthor(ctx context.Context, authorID string, req dto.UpdateAuthorRequest, callerID string) (*domain.Author, error) {
	if _, err := s.RequireLibrarian(ctx, callerID); err != nil {
		return nil, err
	}

	author, err := s.authorRepo.FindAuthorByID(ctx, authorID)
	if err != nil {
		return nil, asNotFound(err, "author")
	}
	if req.Name != nil {
		author.Name = *req.Name
	}
	if req.Nationality != nil {
		author.Nationality = req.Nationality
	}
	author.Touch(s.Now(), callerID)

	if err := s.authorRepo.UpdateAuthor(ctx, *author); err != nil {
		s.LogError(ctx, err, "Failed to update author", slog.String("author_id", authorID))
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	return author, nil
}

func (s *authorService) DeleteAuthor(ctx context.Context, authorID string, callerID string) error {
	if _, err := s.RequireLibrarian(ctx, callerID); err != nil {
		return err
	}
	if err := s.authorRepo.DeleteAuthor(ctx, authorID); err != nil {
		if apperrors.HTTPStatus(err) >= 500 {
			s.LogError(ctx, err, "Failed to delete author", slog.String("author_id", authorID))
		}
		return asNotFound(err, "author")
	}
	s.LogInfo(ctx, "Author deleted", slog.String("author_id", authorID))
	return nil
}

// --- Books ---

type bookService struct {
	BaseService
	bookRepo   portsrepo.BookRepositoryFacade
	authorRepo portsrepo.AuthorReader
	copyRepo   portsrepo.BookCopyReader
	policy     portssvc.PolicyProvider
}

// BookServiceOption is a functional option for configuring the book service
type BookServiceOption func(*bookService)

// WithBookClock replaces the clock used to evaluate loan summaries.
func WithBookClock(clock Clock) BookServiceOption {
	return func(s *bookService) {
		s.Clock = clock
	}
}

func NewBookService(
	bookRepo portsrepo.BookRepositoryFacade,
	authorRepo portsrepo.AuthorReader,
	copyRepo portsrepo.BookCopyReader,
	policy portssvc.PolicyProvider,
	access portssvc.AccessPolicySvc,
	options ...BookServiceOption,
) portssvc.BookSvcFacade {
	svc := &bookService{
		BaseService: BaseService{Access: access},
		bookRepo:    bookRepo,
		authorRepo:  authorRepo,
		copyRepo:    copyRepo,
		policy:      policy,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BookSvcFacade = (*bookService)(nil)

func (s *bookService) GetBook(ctx context.Context, bookID string, callerID string) (*domain.Book, error) {
	principal, err := s.RequireActiveUser(ctx, callerID)
	if err != nil {
		return nil, err
	}
	book, err := s.bookRepo.FindBookByID(ctx, bookID)
	if err != nil {
		return nil, asNotFound(err, "book")
	}
	if book.IsArchived && !principal.CanManageLibrary() {
		return nil, apperrors.NewNotFoundError("book")
	}
	return book, nil
}

func (s *bookService) ListBooks(ctx context.Context, params dto.ListBooksParams, callerID string) ([]domain.Book, error) {
	principal, err := s.RequireActiveUser(ctx, callerID)
	if err != nil {
		return nil, err
	}
	books, err := s.bookRepo.FindBooks(ctx, portsrepo.BookFilter{
		AuthorID:        params.AuthorID,
		IncludeArchived: params.IncludeArchived && principal.CanManageLibrary(),
		Limit:           params.Limit,
		Offset:          params.Offset,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list books")
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

func (s *bookService) ListBookCopies(ctx context.Context, bookID string, callerID string) ([]dto.CopyWithLoanResponse, error) {
	if _, err := s.GetBook(ctx, bookID, callerID); err != nil {
		return nil, err
	}
	copies, err := s.copyRepo.FindCopiesWithLoansByBook(ctx, bookID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list book copies", slog.String("book_id", bookID))
		return nil, fmt.Errorf("failed to list book copies: %w", err)
	}

	now := s.Now()
	policy := s.policy.Current()
	resp := make([]dto.CopyWithLoanResponse, len(copies))
	for i := range copies {
		resp[i] = dto.ToCopyWithLoanResponse(&copies[i], now, policy)
	}
	return resp, nil
}

func (s *bookService) requireAuthor(ctx context.Context, authorID string) (*domain.Author, error) {
	author, err := s.authorRepo.FindAuthorByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationFailedError("author_id does not reference an existing author")
		}
		return nil, err
	}
	return author, nil
}

func (s *bookService) CreateBook(ctx context.Context, req dto.CreateBookRequest, callerID string) (*domain.Book, error) {
	if _, err := s.RequireLibrarian(ctx, callerID); err != nil {
		return nil, err
	}
	author, err := s.requireAuthor(ctx, req.AuthorID)
	if err != nil {
		return nil, err
	}

	book := domain.Book{
		BookID:      uuid.NewString(),
		Title:       req.Title,
		AuthorID:    author.AuthorID,
		AuthorName:  author.Name,
		ISBN:        req.ISBN,
		AuditFields: domain.NewAuditFields(s.Now(), callerID),
	}
	if err := s.bookRepo.SaveBook(ctx, book); err != nil {
		s.LogError(ctx, err, "Failed to save book", slog.String("title", req.Title))
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	s.LogInfo(ctx, "Book created", slog.String("book_id", book.BookID))
	return &book, nil
}

func (s *bookService) UpdateBook(ctx context.Context, bookID string, req dto.UpdateBookRequest, callerID string) (*domain.Book, error) {
	if _, err := s.RequireLibrarian(ctx, callerID); err != nil {
		return nil, err
	}

	book, err := s.bookRepo.FindBookByID(ctx, bookID)
	if err != nil {
		return nil, asNotFound(err, "book")
	}
	if req.Title != nil {
		book.Title = *req.Title
	}
	if req.AuthorID != nil && *req.AuthorID != book.AuthorID {
		author, err := s.requireAuthor(ctx, *req.AuthorID)
		if err != nil {
			return nil, err
		}
		book.AuthorID = author.AuthorID
		book.AuthorName = author.Name
	}
	if req.ISBN != nil {
		book.ISBN = req.ISBN
	}
	book.Touch(s.Now(), callerID)

	if err := s.bookRepo.UpdateBook(ctx, *book); err != nil {
		s.LogError(ctx, err, "Failed to update book", slog.String("book_id", bookID))
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	return book, nil
}

func (s *bookService) setArchived(ctx context.Context, bookID string, archived bool, callerID string) error {
	if _, err := s.RequireLibrarian(ctx, callerID); err != nil {
		return err
	}
	if err := s.bookRepo.SetBookArchived(ctx, bookID, archived, callerID); err != nil {
		if apperrors.HTTPStatus(err) >= 500 {
			s.LogError(ctx, err, "Failed to change archive flag", slog.String("book_id", bookID))
		}
		return asNotFound(err, "book")
	}
	s.LogInfo(ctx, "Book archive flag changed", slog.String("book_id", bookID), slog.Bool("archived", archived))
	return nil
}

// ArchiveBook hides a title from borrowing. Copies on loan can still be returned.
func (s *bookService) ArchiveBook(ctx context.Context, bookID string, callerID string) error {
	return s.setArchived(ctx, bookID, true, callerID)
}

func (s *bookService) UnarchiveBook(ctx context.Context, bookID string, callerID string) error {
	return s.setArchived(ctx, bookID, false, callerID)
}
