package services

import (
	"context"

	"github.com/SscSPs/library_management_app/internal/core/domain"
	"github.com/SscSPs/library_management_app/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListMembers retrieves a page of members with borrow counters (librarian only).
	ListMembers(ctx context.Context, params dto.ListMembersParams, callerID string) ([]domain.MemberSummary, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser registers a member or librarian (librarian only).
	CreateUser(ctx context.Context, req dto.CreateUserRequest, callerID string) (*domain.User, error)

	// BootstrapLibrarian creates a librarian without a calling principal. Used by the CLI.
	BootstrapLibrarian(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
}

// MemberLifecycleSvc defines activation of member accounts
type MemberLifecycleSvc interface {
	ActivateMember(ctx context.Context, memberID string, callerID string) error
	// DeactivateMember fails while the member holds a borrowed copy.
	DeactivateMember(ctx context.Context, memberID string, callerID string) error
}

// MemberRecordsSvc returns a member's transactions. Members read their own;
// librarians pass the member explicitly.
type MemberRecordsSvc interface {
	BorrowingHistory(ctx context.Context, memberID string, callerID string) ([]dto.TransactionResponse, error)
	ActiveBorrows(ctx context.Context, memberID string, callerID string) ([]dto.TransactionResponse, error)
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser checks a username and password; inactive users are refused.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	MemberLifecycleSvc
	MemberRecordsSvc
	UserAuthSvc
}
