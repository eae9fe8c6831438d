package repositories

import (
	"context"

	"github.com/SscSPs/library_management_app/internal/core/domain"
)

// AuthorFilter narrows author listings.
type AuthorFilter struct {
	Nationality *string
	Limit       int
	Offset      int
}

type AuthorReader interface {
	FindAuthorByID(ctx context.Context, authorID string) (*domain.Author, error)
	FindAuthors(ctx context.Context, filter AuthorFilter) ([]domain.Author, error)
}

type AuthorWriter interface {
	SaveAuthor(ctx context.Context, author domain.Author) error
	UpdateAuthor(ctx context.Context, author domain.Author) error
	// DeleteAuthor fails with a conflict while books still reference the author.
	DeleteAuthor(ctx context.Context, authorID string) error
}

// AuthorRepositoryFacade combines all author-related repository interfaces
type AuthorRepositoryFacade interface {
	AuthorReader
	AuthorWriter
}
