package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/library_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/library_management_app/internal/core/ports/services"
	"github.com/SscSPs/library_management_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ListMembers(ctx context.Context, params dto.ListMembersParams, callerID string) ([]domain.MemberSummary, error) {
	args := m.Called(ctx, params, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MemberSummary), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest, callerID string) (*domain.User, error) {
	args := m.Called(ctx, req, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) BootstrapLibrarian(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ActivateMember(ctx context.Context, memberID string, callerID string) error {
	return m.Called(ctx, memberID, callerID).Error(0)
}
func (m *MockUserService) DeactivateMember(ctx context.Context, memberID string, callerID string) error {
	return m.Called(ctx, memberID, callerID).Error(0)
}
func (m *MockUserService) BorrowingHistory(ctx context.Context, memberID string, callerID string) ([]dto.TransactionResponse, error) {
	args := m.Called(ctx, memberID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.TransactionResponse), args.Error(1)
}
func (m *MockUserService) ActiveBorrows(ctx context.Context, memberID string, callerID string) ([]dto.TransactionResponse, error) {
	args := m.Called(ctx, memberID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.TransactionResponse), args.Error(1)
}
func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.TokenSvc = (*MockTokenService)(nil)

// --- Mock BorrowingService ---
type MockBorrowingService struct {
	mock.Mock
}

func (m *MockBorrowingService) IssueBook(ctx context.Context, barcode string, memberID string, callerID string) (*domain.Transaction, error) {
	args := m.Called(ctx, barcode, memberID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockBorrowingService) ProcessReturn(ctx context.Context, transactionID string, callerID string) (*domain.ReturnResult, error) {
	args := m.Called(ctx, transactionID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReturnResult), args.Error(1)
}
func (m *MockBorrowingService) CollectFine(ctx context.Context, transactionID string, callerID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockBorrowingService) GetTransaction(ctx context.Context, transactionID string, callerID string) (*dto.TransactionResponse, error) {
	args := m.Called(ctx, transactionID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TransactionResponse), args.Error(1)
}
func (m *MockBorrowingService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams, callerID string) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, params, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}
func (m *MockBorrowingService) ListOverdue(ctx context.Context, callerID string) ([]dto.TransactionResponse, error) {
	args := m.Called(ctx, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.TransactionResponse), args.Error(1)
}

var _ portssvc.BorrowingSvcFacade = (*MockBorrowingService)(nil)

// --- Mock BookCopyService ---
type MockBookCopyService struct {
	mock.Mock
}

func (m *MockBookCopyService) copyResult(args mock.Arguments) (*domain.BookCopy, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookCopy), args.Error(1)
}
func (m *MockBookCopyService) CreateCopy(ctx context.Context, req dto.CreateBookCopyRequest, callerID string) (*domain.BookCopy, error) {
	return m.copyResult(m.Called(ctx, req, callerID))
}
func (m *MockBookCopyService) GetCopy(ctx context.Context, copyID string, callerID string) (*domain.BookCopy, error) {
	return m.copyResult(m.Called(ctx, copyID, callerID))
}
func (m *MockBookCopyService) GetCopyByBarcode(ctx context.Context, barcode string, callerID string) (*domain.BookCopy, error) {
	return m.copyResult(m.Called(ctx, barcode, callerID))
}
func (m *MockBookCopyService) ListCopies(ctx context.Context, params dto.ListBookCopiesParams, callerID string) ([]domain.BookCopy, error) {
	args := m.Called(ctx, params, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookCopy), args.Error(1)
}
func (m *MockBookCopyService) MarkMaintenance(ctx context.Context, copyID string, callerID string) (*domain.BookCopy, error) {
	return m.copyResult(m.Called(ctx, copyID, callerID))
}
func (m *MockBookCopyService) MarkAvailable(ctx context.Context, copyID string, callerID string) (*domain.BookCopy, error) {
	return m.copyResult(m.Called(ctx, copyID, callerID))
}
func (m *MockBookCopyService) MarkLost(ctx context.Context, copyID string, callerID string) (*domain.BookCopy, error) {
	return m.copyResult(m.Called(ctx, copyID, callerID))
}

var _ portssvc.BookCopySvcFacade = (*MockBookCopyService)(nil)

// --- Mock BookService ---
type MockBookService struct {
	mock.Mock
}

func (m *MockBookService) bookResult(args mock.Arguments) (*domain.Book, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookService) GetBook(ctx context.Context, bookID string, callerID string) (*domain.Book, error) {
	return m.bookResult(m.Called(ctx, bookID, callerID))
}
func (m *MockBookService) ListBooks(ctx context.Context, params dto.ListBooksParams, callerID string) ([]domain.Book, error) {
	args := m.Called(ctx, params, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Book), args.Error(1)
}
func (m *MockBookService) ListBookCopies(ctx context.Context, bookID string, callerID string) ([]dto.CopyWithLoanResponse, error) {
	args := m.Called(ctx, bookID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CopyWithLoanResponse), args.Error(1)
}
func (m *MockBookService) CreateBook(ctx context.Context, req dto.CreateBookRequest, callerID string) (*domain.Book, error) {
	return m.bookResult(m.Called(ctx, req, callerID))
}
func (m *MockBookService) UpdateBook(ctx context.Context, bookID string, req dto.UpdateBookRequest, callerID string) (*domain.Book, error) {
	return m.bookResult(m.Called(ctx, bookID, req, callerID))
}
func (m *MockBookService) ArchiveBook(ctx context.Context, bookID string, callerID string) error {
	return m.Called(ctx, bookID, callerID).Error(0)
}
func (m *MockBookService) UnarchiveBook(ctx context.Context, bookID string, callerID string) error {
	return m.Called(ctx, bookID, callerID).Error(0)
}

var _ portssvc.BookSvcFacade = (*MockBookService)(nil)

// --- Mock LibraryConfigService ---
type MockLibraryConfigService struct {
	mock.Mock
}

func (m *MockLibraryConfigService) Current() domain.LibraryPolicy {
	return m.Called().Get(0).(domain.LibraryPolicy)
}
func (m *MockLibraryConfigService) Load(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockLibraryConfigService) GetConfig(ctx context.Context, callerID string) (domain.LibraryPolicy, error) {
	args := m.Called(ctx, callerID)
	return args.Get(0).(domain.LibraryPolicy), args.Error(1)
}
func (m *MockLibraryConfigService) UpdateConfig(ctx context.Context, req dto.UpdateLibraryConfigRequest, callerID string) (domain.LibraryPolicy, error) {
	args := m.Called(ctx, req, callerID)
	return args.Get(0).(domain.LibraryPolicy), args.Error(1)
}

var _ portssvc.LibraryConfigSvcFacade = (*MockLibraryConfigService)(nil)
