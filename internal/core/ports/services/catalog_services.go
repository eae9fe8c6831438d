package services

import (
	"context"

	"github.com/SscSPs/library_management_app/internal/core/domain"
	"github.com/SscSPs/library_management_app/internal/dto"
)

// AuthorSvcFacade manages authors. All operations are librarian only.
type AuthorSvcFacade interface {
	CreateAuthor(ctx context.Context, req dto.CreateAuthorRequest, callerID string) (*domain.Author, error)
	GetAuthor(ctx context.Context, authorID string, callerID string) (*domain.Author, error)
	ListAuthors(ctx context.Context, params dto.ListAuthorsParams, callerID string) ([]domain.Author, error)
	UpdateAuthor(ctx context.Context, authorID string, req dto.UpdateAuthorRequest, callerID string) (*domain.Author, error)
	DeleteAuthor(ctx context.Context, authorID string, callerID string) error
}

// BookReaderSvc is open to every active user.
type BookReaderSvc interface {
	GetBook(ctx context.Context, bookID string, callerID string) (*domain.Book, error)
	ListBooks(ctx context.Context, params dto.ListBooksParams, callerID string) ([]domain.Book, error)
	ListBookCopies(ctx context.Context, bookID string, callerID string) ([]dto.CopyWithLoanResponse, error)
}

// BookWriterSvc is librarian only.
type BookWriterSvc interface {
	CreateBook(ctx context.Context, req dto.CreateBookRequest, callerID string) (*domain.Book, error)
	UpdateBook(ctx context.Context, bookID string, req dto.UpdateBookRequest, callerID string) (*domain.Book, error)
	ArchiveBook(ctx context.Context, bookID string, callerID string) error
	UnarchiveBook(ctx context.Context, bookID string, callerID string) error
}

// BookSvcFacade combines all book-related service interfaces
type BookSvcFacade interface {
	BookReaderSvc
	BookWriterSvc
}

// BookCopySvcFacade manages physical copies. All operations are librarian only.
type BookCopySvcFacade interface {
	CreateCopy(ctx context.Context, req dto.CreateBookCopyRequest, callerID string) (*domain.BookCopy, error)
	GetCopy(ctx context.Context, copyID string, callerID string) (*domain.BookCopy, error)
	GetCopyByBarcode(ctx context.Context, barcode string, callerID string) (*domain.BookCopy, error)
	ListCopies(ctx context.Context, params dto.ListBookCopiesParams, callerID string) ([]domain.BookCopy, error)
	CopyStatusSvc
}
