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
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const borrowingTracerName = "library/borrowing"

// borrowingService implements the lending workflow and the ledger reads.
type borrowingService struct {
	BaseService
	borrowingRepo   portsrepo.BorrowingRepository
	transactionRepo portsrepo.TransactionReader
	policy          portssvc.PolicyProvider
	tracer          trace.Tracer
}

// BorrowingServiceOption is a functional option for configuring the borrowing service
type BorrowingServiceOption func(*borrowingService)

// WithBorrowingClock replaces the wall clock, mostly for tests.
func WithBorrowingClock(clock Clock) BorrowingServiceOption {
	return func(s *borrowingService) {
		s.Clock = clock
	}
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(tracer trace.Tracer) BorrowingServiceOption {
	return func(s *borrowingService) {
		s.tracer = tracer
	}
}

func NewBorrowingService(
	borrowingRepo portsrepo.BorrowingRepository,
	transactionRepo portsrepo.TransactionReader,
	policy portssvc.PolicyProvider,
	access portssvc.AccessPolicySvc,
	options ...BorrowingServiceOption,
) portssvc.BorrowingSvcFacade {
	svc := &borrowingService{
		BaseService:     BaseService{Access: access},
		borrowingRepo:   borrowingRepo,
		transactionRepo: transactionRepo,
		policy:          policy,
		tracer:          otel.Tracer(borrowingTracerName),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BorrowingSvcFacade = (*borrowingService)(nil)

func finishSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, apperrors.PublicMessage(err))
	}
	span.End()
}

// asNotFound replaces a store-level not-found with one naming entity.
func asNotFound(err error, entity string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewNotFoundError(entity)
	}
	return err
}

func (s *borrowingService) IssueBook(ctx context.Context, barcode string, memberID string, callerID string) (txn *domain.Transaction, err error) {
	ctx, span := s.tracer.Start(ctx, "borrowing.IssueBook", trace.WithAttributes(
		attribute.String("library.barcode", barcode),
		attribute.String("library.member_id", memberID),
	))
	defer func() { finishSpan(span, err) }()

	if _, err = s.RequireLibrarian(ctx, callerID); err != nil {
		return nil, err
	}
	if barcode == "" || memberID == "" {
		return nil, apperrors.NewValidationFailedError("barcode and member_id are required")
	}

	policy := s.policy.Current()
	now := s.Now()

	err = s.borrowingRepo.WithinTx(ctx, func(ctx context.Context, store portsrepo.BorrowingTxStore) error {
		member, err := store.FindUserByIDForUpdate(ctx, memberID)
		if err != nil {
			return asNotFound(err, "member")
		}
		if member.Role != domain.RoleMember {
			return apperrors.NewNotFoundError("member")
		}
		if !member.IsActive {
			return apperrors.NewRuleViolation(apperrors.ErrMemberInactive, "Member account is not active")
		}

		bookCopy, err := store.FindCopyByBarcodeForUpdate(ctx, barcode)
		if err != nil {
			return asNotFound(err, "book copy")
		}
		if err := bookCopy.CheckIssuable(); err != nil {
			return err
		}

		book, err := store.FindBookByID(ctx, bookCopy.BookID)
		if err != nil {
			return asNotFound(err, "book")
		}
		if book.IsArchived {
			return apperrors.NewRuleViolation(apperrors.ErrBookNotAvailable, "This book is archived and cannot be borrowed")
		}

		borrowed, err := store.CountBorrowedCopies(ctx, memberID)
		if err != nil {
			return err
		}
		if borrowed >= policy.MaxBooksPerMember {
			return apperrors.NewRuleViolation(apperrors.ErrBorrowLimitExceeded,
				fmt.Sprintf("Member has reached the maximum borrow limit of %d books", policy.MaxBooksPerMember))
		}

		holding, err := store.HasActiveTransactionForBook(ctx, memberID, book.BookID)
		if err != nil {
			return err
		}
		if holding {
			return apperrors.NewRuleViolation(apperrors.ErrDuplicateBorrow, "Member already has a copy of this book borrowed")
		}

		librarian, err := store.FindUserByID(ctx, callerID)
		if err != nil {
			return asNotFound(err, "librarian")
		}
		if librarian.Role != domain.RoleLibrarian {
			return apperrors.NewNotFoundError("librarian")
		}

		newTxn := domain.Transaction{
			TransactionID: uuid.NewString(),
			BookCopyID:    bookCopy.CopyID,
			BorrowedBy:    memberID,
			IssuedBy:      &librarian.UserID,
			CreatedAt:     now,
			Barcode:       bookCopy.Barcode,
			BookID:        book.BookID,
			BookTitle:     book.Title,
		}
		if err := store.SaveTransaction(ctx, newTxn); err != nil {
			return err
		}

		bookCopy.Issue(memberID)
		if err := store.UpdateCopyStatus(ctx, *bookCopy, callerID); err != nil {
			return err
		}

		txn = &newTxn
		return nil
	})
	if err != nil {
		if apperrors.HTTPStatus(err) >= 500 {
			s.LogError(ctx, err, "Failed to issue book", slog.String("barcode", barcode), slog.String("member_id", memberID))
		} else {
			s.LogInfo(ctx, "Book issue refused", slog.String("barcode", barcode), slog.String("member_id", memberID), slog.String("reason", err.Error()))
		}
		return nil, err
	}

	span.SetAttributes(attribute.String("library.transaction_id", txn.TransactionID))
	s.LogInfo(ctx, "Book issued",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("barcode", barcode),
		slog.String("member_id", memberID))
	return txn, nil
}

func (s *borrowingService) ProcessReturn(ctx context.Context, transactionID string, callerID string) (result *domain.ReturnResult, err error) {
	ctx, span := s.tracer.Start(ctx, "borrowing.ProcessReturn", trace.WithAttributes(
		attribute.String("library.transaction_id", transactionID),
	))
	defer func() { finishSpan(span, err) }()

	if _, err = s.RequireLibrarian(ctx, callerID); err != nil {
		return nil, err
	}

	policy := s.policy.Current()
	now := s.Now()

	err = s.borrowingRepo.WithinTx(ctx, func(ctx context.Context, store portsrepo.BorrowingTxStore) error {
		// Copy before transaction, same order as IssueBook.
		peek, err := store.FindTransactionByID(ctx, transactionID)
		if err != nil {
			return asNotFound(err, "transaction")
		}
		bookCopy, err := store.FindCopyByIDForUpdate(ctx, peek.BookCopyID)
		if err != nil {
			return asNotFound(err, "book copy")
		}
		txn, err := store.FindTransactionByIDForUpdate(ctx, transactionID)
		if err != nil {
			return asNotFound(err, "transaction")
		}

		res, err := txn.Return(now, policy)
		if err != nil {
			return err
		}
		if err := store.UpdateTransaction(ctx, *txn); err != nil {
			return err
		}

		if bookCopy.Status != domain.CopyLost {
			bookCopy.Release()
			if err := store.UpdateCopyStatus(ctx, *bookCopy, callerID); err != nil {
				return err
			}
		}

		result = res
		return nil
	})
	if err != nil {
		if apperrors.HTTPStatus(err) >= 500 {
			s.LogError(ctx, err, "Failed to process return", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	span.SetAttributes(
		attribute.String("library.fine", result.Fine.StringFixed(2)),
		attribute.Int("library.days_borrowed", result.DaysBorrowed),
	)
	s.LogInfo(ctx, "Return processed",
		slog.String("transaction_id", transactionID),
		slog.Int("days_borrowed", result.DaysBorrowed),
		slog.String("fine", result.Fine.StringFixed(2)))
	return result, nil
}

func (s *borrowingService) CollectFine(ctx context.Context, transactionID string, callerID string) (txn *domain.Transaction, err error) {
	ctx, span := s.tracer.Start(ctx, "borrowing.CollectFine", trace.WithAttributes(
		attribute.String("library.transaction_id", transactionID),
	))
	defer func() { finishSpan(span, err) }()

	if _, err = s.RequireLibrarian(ctx, callerID); err != nil {
		return nil, err
	}

	err = s.borrowingRepo.WithinTx(ctx, func(ctx context.Context, store portsrepo.BorrowingTxStore) error {
		current, err := store.FindTransactionByIDForUpdate(ctx, transactionID)
		if err != nil {
			return asNotFound(err, "transaction")
		}
		alreadyCollected := current.FineCollected
		if err := current.CollectFine(); err != nil {
			return err
		}
		if !alreadyCollected {
			if err := store.UpdateTransaction(ctx, *current); err != nil {
				return err
			}
		}
		txn = current
		return nil
	})
	if err != nil {
		if apperrors.HTTPStatus(err) >= 500 {
			s.LogError(ctx, err, "Failed to collect fine", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Fine collected",
		slog.String("transaction_id", transactionID),
		slog.String("fine", txn.Fine.StringFixed(2)))
	return txn, nil
}

func (s *borrowingService) GetTransaction(ctx context.Context, transactionID string, callerID string) (*dto.TransactionResponse, error) {
	principal, err := s.RequireActiveUser(ctx, callerID)
	if err != nil {
		return nil, err
	}

	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		}
		return nil, asNotFound(err, "transaction")
	}
	// Members cannot tell someone else's transaction from a missing one.
	if !principal.CanViewMemberRecords(txn.BorrowedBy) {
		return nil, apperrors.NewNotFoundError("transaction")
	}

	resp := dto.ToTransactionResponse(txn, s.Now(), s.policy.Current())
	return &resp, nil
}

func (s *borrowingService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams, callerID string) (*dto.ListTransactionsResponse, error) {
	principal, err := s.RequireActiveUser(ctx, callerID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	policy := s.policy.Current()

	filter := portsrepo.TransactionFilter{
		MemberID:      params.MemberID,
		ActiveOnly:    params.ActiveOnly,
		FineCollected: params.FineCollected,
		Limit:         params.Limit,
		NextToken:     params.NextToken,
	}
	if principal.Role != domain.RoleLibrarian {
		own := principal.UserID
		filter.MemberID = &own
	}
	if params.OverdueOnly {
		cutoff := policy.OverdueCutoff(now)
		filter.OverdueBefore = &cutoff
		filter.ActiveOnly = true
	}

	txns, nextToken, err := s.transactionRepo.ListTransactions(ctx, filter)
	if err != nil {
		if apperrors.HTTPStatus(err) >= 500 {
			s.LogError(ctx, err, "Failed to list transactions", slog.String("user_id", callerID))
		}
		return nil, err
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns, now, policy),
		NextToken:    nextToken,
	}, nil
}

func (s *borrowingService) ListOverdue(ctx context.Context, callerID string) ([]dto.TransactionResponse, error) {
	if _, err := s.RequireLibrarian(ctx, callerID); err != nil {
		return nil, err
	}

	now := s.Now()
	policy := s.policy.Current()
	txns, err := s.transactionRepo.FindOverdueTransactions(ctx, policy.OverdueCutoff(now))
	if err != nil {
		s.LogError(ctx, err, "Failed to list overdue transactions")
		return nil, fmt.Errorf("failed to list overdue transactions: %w", err)
	}
	return dto.ToTransactionResponses(txns, now, policy), nil
}
