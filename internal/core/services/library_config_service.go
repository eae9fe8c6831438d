package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/SscSPs/library_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/library_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/library_management_app/internal/core/ports/services"
	"github.com/SscSPs/library_management_app/internal/dto"
)

// libraryConfigService keeps the stored policy in memory. Readers never touch
// the database; Update writes through and then swaps the pointer.
type libraryConfigService struct {
	BaseService
	repo     portsrepo.LibraryConfigRepository
	defaults domain.LibraryPolicy
	current  atomic.Pointer[domain.LibraryPolicy]

	// mu orders write-then-swap so the cached policy matches the last commit.
	mu sync.Mutex
}

// LibraryConfigServiceOption is a functional option for configuring the config service
type LibraryConfigServiceOption func(*libraryConfigService)

// WithPolicyDefaults sets the values used when the config row does not exist yet.
func WithPolicyDefaults(p domain.LibraryPolicy) LibraryConfigServiceOption {
	return func(s *libraryConfigService) {
		s.defaults = p
	}
}

func NewLibraryConfigService(repo portsrepo.LibraryConfigRepository, access portssvc.AccessPolicySvc, options ...LibraryConfigServiceOption) portssvc.LibraryConfigSvcFacade {
	svc := &libraryConfigService{
		BaseService: BaseService{Access: access},
		repo:        repo,
		defaults:    domain.DefaultLibraryPolicy(),
	}
	for _, option := range options {
		option(svc)
	}
	// Serve defaults until Load succeeds.
	initial := svc.defaults
	svc.current.Store(&initial)
	return svc
}

var _ portssvc.LibraryConfigSvcFacade = (*libraryConfigService)(nil)

func (s *libraryConfigService) Current() domain.LibraryPolicy {
	return *s.current.Load()
}

func (s *libraryConfigService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	policy, err := s.repo.GetOrCreateConfig(ctx, s.defaults)
	if err != nil {
		s.LogError(ctx, err, "Failed to load library config")
		return fmt.Errorf("failed to load library config: %w", err)
	}
	s.current.Store(policy)
	s.LogInfo(ctx, "Library config loaded",
		slog.Int("max_borrow_days_without_fine", policy.MaxBorrowDaysWithoutFine),
		slog.String("fine_per_day", policy.FinePerDay.StringFixed(2)),
		slog.Int("max_books_per_member", policy.MaxBooksPerMember))
	return nil
}

func (s *libraryConfigService) GetConfig(ctx context.Context, callerID string) (domain.LibraryPolicy, error) {
	if _, err := s.RequireLibrarian(ctx, callerID); err != nil {
		return domain.LibraryPolicy{}, err
	}
	return s.Current(), nil
}

func (s *libraryConfigService) UpdateConfig(ctx context.Context, req dto.UpdateLibraryConfigRequest, callerID string) (domain.LibraryPolicy, error) {
	if _, err := s.RequireLibrarian(ctx, callerID); err != nil {
		return domain.LibraryPolicy{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.Now()
	updated, err := s.repo.UpdateConfig(ctx, func(current domain.LibraryPolicy) (domain.LibraryPolicy, error) {
		next := req.Apply(current)
		if err := next.Validate(); err != nil {
			return domain.LibraryPolicy{}, err
		}
		next.LastUpdatedAt = now
		next.LastUpdatedBy = &callerID
		return next, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update library config", slog.String("user_id", callerID))
		return domain.LibraryPolicy{}, fmt.Errorf("failed to update library config: %w", err)
	}

	s.current.Store(updated)
	s.LogInfo(ctx, "Library config updated",
		slog.String("user_id", callerID),
		slog.Int("max_borrow_days_without_fine", updated.MaxBorrowDaysWithoutFine),
		slog.String("fine_per_day", updated.FinePerDay.StringFixed(2)),
		slog.Int("max_books_per_member", updated.MaxBooksPerMember))
	return *updated, nil
}
