package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/library_management_app/internal/apperrors"
	"github.com/SscSPs/library_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/library_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/library_management_app/internal/core/ports/services"
)

const (
	defaultPopularBooks = 10
	maxPopularBooks     = 100
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	policy        portssvc.PolicyProvider
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingClock replaces the clock used for the overdue cutoff.
func WithReportingClock(clock Clock) ReportingServiceOption {
	return func(s *reportingService) {
		s.Clock = clock
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.ReportingRepository, policy portssvc.PolicyProvider, access portssvc.AccessPolicySvc, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		BaseService:   BaseService{Access: access},
		reportingRepo: repo,
		policy:        policy,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) Overview(ctx context.Context, callerID string) (*domain.LibraryOverview, error) {
	if _, err := s.RequireLibrarian(ctx, callerID); err != nil {
		return nil, err
	}

	cutoff := s.policy.Current().OverdueCutoff(s.Now())
	overview, err := s.reportingRepo.GetOverview(ctx, cutoff)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve borrowing overview")
		return nil, fmt.Errorf("failed to retrieve borrowing overview: %w", err)
	}

	s.LogDebug(ctx, "Borrowing overview generated",
		slog.Int("copies", overview.Copies.Total),
		slog.Int("active_transactions", overview.Transactions.Active))
	return overview, nil
}

func (s *reportingService) PopularBooks(ctx context.Context, limit int, callerID string) ([]domain.PopularBook, error) {
	if _, err := s.RequireLibrarian(ctx, callerID); err != nil {
		return nil, err
	}
	if limit == 0 {
		limit = defaultPopularBooks
	}
	if limit < 1 || limit > maxPopularBooks {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("limit must be between 1 and %d", maxPopularBooks))
	}

	books, err := s.reportingRepo.GetPopularBooks(ctx, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve popular books", slog.Int("limit", limit))
		return nil, fmt.Errorf("failed to retrieve popular books: %w", err)
	}
	return books, nil
}
