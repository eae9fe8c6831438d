package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/library_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/library_management_app/internal/core/ports/services"
	"github.com/SscSPs/library_management_app/internal/middleware"
)

// Clock returns the current time. Tests substitute a fixed clock.
type Clock func() time.Time

func systemClock() time.Time {
	return time.Now().UTC()
}

// BaseService provides common functionality for all services
type BaseService struct {
	Access portssvc.AccessPolicySvc
	Clock  Clock
}

// Now reads the service clock.
func (s *BaseService) Now() time.Time {
	if s.Clock == nil {
		return systemClock()
	}
	return s.Clock()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RequireLibrarian resolves callerID as an active librarian.
func (s *BaseService) RequireLibrarian(ctx context.Context, callerID string) (*domain.Principal, error) {
	principal, err := s.Access.RequireLibrarian(ctx, callerID)
	if err != nil {
		s.GetLogger(ctx).Warn("Librarian access denied",
			slog.String("caller_id", callerID),
			slog.String("error", err.Error()))
		return nil, err
	}
	return principal, nil
}

// RequireActiveUser resolves callerID as any active user.
func (s *BaseService) RequireActiveUser(ctx context.Context, callerID string) (*domain.Principal, error) {
	principal, err := s.Access.RequireActiveUser(ctx, callerID)
	if err != nil {
		s.GetLogger(ctx).Warn("Access denied",
			slog.String("caller_id", callerID),
			slog.String("error", err.Error()))
		return nil, err
	}
	return principal, nil
}
