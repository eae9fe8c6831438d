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

type bookCopyService struct {
	BaseService
	copyRepo      portsrepo.BookCopyRepositoryFacade
	bookRepo      portsrepo.BookReader
	borrowingRepo portsrepo.BorrowingRepository
}

func NewBookCopyService(
	copyRepo portsrepo.BookCopyRepositoryFacade,
	bookRepo portsrepo.BookReader,
	borrowingRepo portsrepo.BorrowingRepository,
	access portssvc.AccessPolicySvc,
) portssvc.BookCopySvcFacade {
	return &bookCopyService{
		BaseService:   BaseService{Access: access},
		copyRepo:      copyRepo,
		bookRepo:      bookRepo,
		borrowingRepo: borrowingRepo,
	}
}

var _ portssvc.BookCopySvcFacade = (*bookCopyService)(nil)

func (s *bookCopyService) CreateCopy(ctx context.Context, req dto.CreateBookCopyRequest, callerID string) (*domain.BookCopy, error) {
	if _, err := s.RequireLibrarian(ctx, callerID); err != nil {
		return nil, err
	}
	if _, err := s.bookRepo.FindBookByID(ctx, req.BookID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationFailedError("book_id does not reference an existing book")
		}
		return nil, err
	}

	bookCopy := domain.BookCopy{
		CopyID:      uuid.NewString(),
		BookID:      req.BookID,
		Barcode:     req.Barcode,
		Status:      domain.CopyAvailable,
		AuditFields: domain.NewAuditFields(s.Now(), callerID),
	}
	if err := s.copyRepo.SaveCopy(ctx, bookCopy); err != nil {
		if apperrors.HTTPStatus(err) >= 500 {
			s.LogError(ctx, err, "Failed to save book copy", slog.String("barcode", req.Barcode))
			return nil, fmt.Errorf("failed to create book copy: %w", err)
		}
		return nil, err
	}

	s.LogInfo(ctx, "Book copy created", slog.String("copy_id", bookCopy.CopyID), slog.String("barcode", bookCopy.Barcode))
	return &bookCopy, nil
}

func (s *bookCopyService) GetCopy(ctx context.Context, copyID string, callerID string) (*domain.BookCopy, error) {
	if _, err := s.RequireLibrarian(ctx, callerID); err != nil {
		return nil, err
	}
	bookCopy, err := s.copyRepo.FindCopyByID(ctx, copyID)
	if err != nil {
		return nil, asNotFound(err, "book copy")
	}
	return bookCopy, nil
}

func (s *bookCopyService) GetCopyByBarcode(ctx context.Context, barcode string, callerID string) (*domain.BookCopy, error) {
	if _, err := s.RequireLibrarian(ctx, callerID); err != nil {
		return nil, err
	}
	if barcode == "" {
		return nil, apperrors.NewValidationFailedError("barcode query parameter is required")
	}
	bookCopy, err := s.copyRepo.FindCopyByBarcode(ctx, barcode)
	if err != nil {
		return nil, asNotFound(err, "book copy")
	}
	return bookCopy, nil
}

func (s *bookCopyService) ListCopies(ctx context.Context, params dto.ListBookCopiesParams, callerID string) ([]domain.BookCopy, error) {
	if _, err := s.RequireLibrarian(ctx, callerID); err != nil {
		return nil, err
	}
	filter := portsrepo.CopyFilter{
		BookID: params.BookID,
		Limit:  params.Limit,
		Offset: params.Offset,
	}
	if params.Status != nil {
		status := domain.CopyStatus(*params.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationFailedError("unknown copy status " + *params.Status)
		}
		filter.Status = &status
	}
	copies, err := s.copyRepo.FindCopies(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list book copies")
		return nil, fmt.Errorf("failed to list book copies: %w", err)
	}
	return copies, nil
}

// transition locks the copy, applies change and stores the new status in one unit.
func (s *bookCopyService) transition(
	ctx context.Context,
	copyID string,
	callerID string,
	action string,
	change func(bookCopy *domain.BookCopy, hasActiveTransaction bool) error,
) (*domain.BookCopy, error) {
	if _, err := s.RequireLibrarian(ctx, callerID); err != nil {
		return nil, err
	}

	var updated *domain.BookCopy
	err := s.borrowingRepo.WithinTx(ctx, func(ctx context.Context, store portsrepo.BorrowingTxStore) error {
		bookCopy, err := store.FindCopyByIDForUpdate(ctx, copyID)
		if err != nil {
			return asNotFound(err, "book copy")
		}
		hasActive, err := store.HasActiveTransactionForCopy(ctx, copyID)
		if err != nil {
			return err
		}
		if err := change(bookCopy, hasActive); err != nil {
			return err
		}
		if err := store.UpdateCopyStatus(ctx, *bookCopy, callerID); err != nil {
			return err
		}
		updated = bookCopy
		return nil
	})
	if err != nil {
		if apperrors.HTTPStatus(err) >= 500 {
			s.LogError(ctx, err, "Failed to change copy status", slog.String("copy_id", copyID), slog.String("action", action))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Copy status changed",
		slog.String("copy_id", copyID),
		slog.String("action", action),
		slog.String("status", string(updated.Status)))
	return updated, nil
}

func (s *bookCopyService) MarkMaintenance(ctx context.Context, copyID string, callerID string) (*domain.BookCopy, error) {
	return s.transition(ctx, copyID, callerID, "mark-maintenance", func(c *domain.BookCopy, hasActive bool) error {
		return c.MarkMaintenance(hasActive)
	})
}

func (s *bookCopyService) MarkAvailable(ctx context.Context, copyID string, callerID string) (*domain.BookCopy, error) {
	return s.transition(ctx, copyID, callerID, "mark-available", func(c *domain.BookCopy, hasActive bool) error {
		return c.MarkAvailable(hasActive)
	})
}

// MarkLost keeps any open transaction on the copy; the return is processed separately.
func (s *bookCopyService) MarkLost(ctx context.Context, copyID string, callerID string) (*domain.BookCopy, error) {
	return s.transition(ctx, copyID, callerID, "mark-lost", func(c *domain.BookCopy, _ bool) error {
		return c.MarkLost()
	})
}
