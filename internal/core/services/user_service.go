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
	"github.com/SscSPs/library_management_app/internal/utils"
	"github.com/google/uuid"
)

const historyPageSize = 100

type userService struct {
	BaseService
	userRepo        portsrepo.UserRepositoryFacade
	transactionRepo portsrepo.TransactionReader
	policy          portssvc.PolicyProvider
}

// UserServiceOption is a functional option for configuring the user service
type UserServiceOption func(*userService)

// WithUserClock replaces the clock used for audit fields and loan summaries.
func WithUserClock(clock Clock) UserServiceOption {
	return func(s *userService) {
		s.Clock = clock
	}
}

func NewUserService(
	userRepo portsrepo.UserRepositoryFacade,
	transactionRepo portsrepo.TransactionReader,
	policy portssvc.PolicyProvider,
	access portssvc.AccessPolicySvc,
	options ...UserServiceOption,
) portssvc.UserSvcFacade {
	svc := &userService{
		BaseService:     BaseService{Access: access},
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		policy:          policy,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get user by ID", slog.String("user_id", userID))
		}
		return nil, asNotFound(err, "user")
	}
	return user, nil
}

func (s *userService) ListMembers(ctx context.Context, params dto.ListMembersParams, callerID string) ([]domain.MemberSummary, error) {
	if _, err := s.RequireLibrarian(ctx, callerID); err != nil {
		return nil, err
	}
	members, err := s.userRepo.FindMembers(ctx, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list members")
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

func (s *userService) newUser(req dto.CreateUserRequest, creatorID string) (domain.User, error) {
	if !req.Role.IsValid() {
		return domain.User{}, apperrors.NewValidationFailedError("role must be member or librarian")
	}
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}
	userID := uuid.NewString()
	if creatorID == "" {
		creatorID = userID
	}
	return domain.User{
		UserID:       userID,
		Username:     req.Username,
		PasswordHash: hash,
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		IsActive:     true,
		AuditFields:  domain.NewAuditFields(s.Now(), creatorID),
	}, nil
}

func (s *userService) save(ctx context.Context, user domain.User) (*domain.User, error) {
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if apperrors.HTTPStatus(err) >= 500 {
			s.LogError(ctx, err, "Failed to save user", slog.String("username", user.Username))
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		return nil, err
	}
	s.LogInfo(ctx, "User created",
		slog.String("user_id", user.UserID),
		slog.String("role", string(user.Role)))
	return &user, nil
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, callerID string) (*domain.User, error) {
	if _, err := s.RequireLibrarian(ctx, callerID); err != nil {
		return nil, err
	}
	user, err := s.newUser(req, callerID)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, user)
}

// BootstrapLibrarian creates the first librarian, who is recorded as their own creator.
func (s *userService) BootstrapLibrarian(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	req.Role = domain.RoleLibrarian
	user, err := s.newUser(req, "")
	if err != nil {
		return nil, err
	}
	return s.save(ctx, user)
}

func (s *userService) ActivateMember(ctx context.Context, memberID string, callerID string) error {
	if _, err := s.RequireLibrarian(ctx, callerID); err != nil {
		return err
	}
	if err := s.userRepo.ActivateMember(ctx, memberID, callerID); err != nil {
		if apperrors.HTTPStatus(err) >= 500 {
			s.LogError(ctx, err, "Failed to activate member", slog.String("member_id", memberID))
		}
		return asNotFound(err, "member")
	}
	s.LogInfo(ctx, "Member activated", slog.String("member_id", memberID))
	return nil
}

func (s *userService) DeactivateMember(ctx context.Context, memberID string, callerID string) error {
	if _, err := s.RequireLibrarian(ctx, callerID); err != nil {
		return err
	}
	if err := s.userRepo.DeactivateMember(ctx, memberID, callerID); err != nil {
		if apperrors.HTTPStatus(err) >= 500 {
			s.LogError(ctx, err, "Failed to deactivate member", slog.String("member_id", memberID))
		}
		return asNotFound(err, "member")
	}
	s.LogInfo(ctx, "Member deactivated", slog.String("member_id", memberID))
	return nil
}

// resolveMember decides whose records the caller reads.
func (s *userService) resolveMember(ctx context.Context, memberID string, callerID string) (string, error) {
	principal, err := s.RequireActiveUser(ctx, callerID)
	if err != nil {
		return "", err
	}
	if memberID == "" {
		if principal.Role == domain.RoleLibrarian {
			return "", apperrors.NewValidationFailedError("member_id is required")
		}
		return principal.UserID, nil
	}
	if !principal.CanViewMemberRecords(memberID) {
		return "", apperrors.NewForbiddenError("Members can only view their own records")
	}
	if principal.Role == domain.RoleLibrarian {
		member, err := s.userRepo.FindUserByID(ctx, memberID)
		if err != nil {
			return "", asNotFound(err, "member")
		}
		if member.Role != domain.RoleMember {
			return "", apperrors.NewNotFoundError("member")
		}
	}
	return memberID, nil
}

func (s *userService) memberTransactions(ctx context.Context, memberID string, activeOnly bool) ([]dto.TransactionResponse, error) {
	filter := portsrepo.TransactionFilter{
		MemberID:   &memberID,
		ActiveOnly: activeOnly,
		Limit:      historyPageSize,
	}

	var all []domain.Transaction
	for {
		page, next, err := s.transactionRepo.ListTransactions(ctx, filter)
		if err != nil {
			s.LogError(ctx, err, "Failed to list member transactions", slog.String("member_id", memberID))
			return nil, fmt.Errorf("failed to list member transactions: %w", err)
		}
		all = append(all, page...)
		if next == nil {
			break
		}
		filter.NextToken = next
	}
	return dto.ToTransactionResponses(all, s.Now(), s.policy.Current()), nil
}

func (s *userService) BorrowingHistory(ctx context.Context, memberID string, callerID string) ([]dto.TransactionResponse, error) {
	memberID, err := s.resolveMember(ctx, memberID, callerID)
	if err != nil {
		return nil, err
	}
	return s.memberTransactions(ctx, memberID, false)
}

func (s *userService) ActiveBorrows(ctx context.Context, memberID string, callerID string) ([]dto.TransactionResponse, error) {
	memberID, err := s.resolveMember(ctx, memberID, callerID)
	if err != nil {
		return nil, err
	}
	return s.memberTransactions(ctx, memberID, true)
}

func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("Invalid username or password")
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogInfo(ctx, "Login failed: password mismatch", slog.String("user_id", user.UserID))
		return nil, apperrors.NewUnauthorizedError("Invalid username or password")
	}
	if !user.IsActive {
		return nil, apperrors.NewForbiddenError("User account is not active")
	}
	return user, nil
}
