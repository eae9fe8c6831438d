package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/library_management_app/internal/apperrors"
	"github.com/SscSPs/library_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/library_management_app/internal/core/ports/services"
	"github.com/SscSPs/library_management_app/internal/dto"
	"github.com/SscSPs/library_management_app/internal/handlers"
	"github.com/SscSPs/library_management_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	cfg         *config.Config
	userSvc     *MockUserService
	tokenSvc    *MockTokenService
	borrowSvc   *MockBorrowingService
	copySvc     *MockBookCopyService
	bookSvc     *MockBookService
	configSvc   *MockLibraryConfigService
	librarianID string
}

func (suite *HandlerTestSuite) newRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	err := handlers.RegisterRoutes(r, cfg, &portssvc.ServiceContainer{
		User:          suite.userSvc,
		Token:         suite.tokenSvc,
		Borrowing:     suite.borrowSvc,
		BookCopy:      suite.copySvc,
		Book:          suite.bookSvc,
		LibraryConfig: suite.configSvc,
	})
	suite.Require().NoError(err)
	return r
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.cfg = &config.Config{
		JWTSecret:      "test-secret-key-that-is-long-enough",
		LoginRateLimit: "100-M",
	}
	suite.userSvc = new(MockUserService)
	suite.tokenSvc = new(MockTokenService)
	suite.borrowSvc = new(MockBorrowingService)
	suite.copySvc = new(MockBookCopyService)
	suite.bookSvc = new(MockBookService)
	suite.configSvc = new(MockLibraryConfigService)
	suite.librarianID = uuid.NewString()
	suite.router = suite.newRouter(suite.cfg)
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.userSvc.AssertExpectations(suite.T())
	suite.tokenSvc.AssertExpectations(suite.T())
	suite.borrowSvc.AssertExpectations(suite.T())
	suite.copySvc.AssertExpectations(suite.T())
	suite.bookSvc.AssertExpectations(suite.T())
	suite.configSvc.AssertExpectations(suite.T())
}

// generateTestToken creates a signed JWT for userID.
func (suite *HandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "library-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.cfg.JWTSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlerTestSuite) do(method, url string, body any, userID string) *httptest.ResponseRecorder {
	return suite.doOn(suite.router, method, url, body, userID)
}

func (suite *HandlerTestSuite) doOn(r *gin.Engine, method, url string, body any, userID string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) errorBody(w *httptest.ResponseRecorder) string {
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

// --- Health & auth ---

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestProtectedRouteRequiresToken() {
	w := suite.do(http.MethodGet, "/api/v1/transactions/overdue", nil, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestLogin_Success() {
	user := &domain.User{UserID: suite.librarianID, Username: "librarian", Role: domain.RoleLibrarian, IsActive: true}
	expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	suite.userSvc.On("AuthenticateUser", mock.Anything, "librarian", "s3cret-pass").Return(user, nil).Once()
	suite.tokenSvc.On("GenerateAccessToken", mock.Anything, user).Return("signed-token", expiresAt, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Username: "librarian", Password: "s3cret-pass"}, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed-token", resp.Token)
	suite.True(expiresAt.Equal(resp.ExpiresAt))
	suite.Equal(domain.RoleLibrarian, resp.User.Role)
}

func (suite *HandlerTestSuite) TestLogin_BadCredentials() {
	suite.userSvc.On("AuthenticateUser", mock.Anything, "librarian", "wrong-pass").
		Return(nil, apperrors.NewUnauthorizedError("Invalid username or password")).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Username: "librarian", Password: "wrong-pass"}, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Invalid username or password", suite.errorBody(w))
	suite.tokenSvc.AssertNotCalled(suite.T(), "GenerateAccessToken", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestLogin_RateLimited() {
	cfg := *suite.cfg
	cfg.LoginRateLimit = "1-M"
	r := suite.newRouter(&cfg)
	suite.userSvc.On("AuthenticateUser", mock.Anything, "bob", "whatever-pass").
		Return(nil, apperrors.NewUnauthorizedError("Invalid username or password")).Once()

	body := dto.LoginRequest{Username: "bob", Password: "whatever-pass"}
	first := suite.doOn(r, http.MethodPost, "/api/v1/auth/login", body, "")
	second := suite.doOn(r, http.MethodPost, "/api/v1/auth/login", body, "")

	suite.Equal(http.StatusUnauthorized, first.Code)
	suite.Equal(http.StatusTooManyRequests, second.Code)
}

// --- Borrowing workflow ---

func (suite *HandlerTestSuite) TestIssueBook_Created() {
	memberID := uuid.NewString()
	txn := &domain.Transaction{TransactionID: uuid.NewString(), BorrowedBy: memberID, Barcode: "B001"}
	resp := &dto.TransactionResponse{
		TransactionID: txn.TransactionID,
		Barcode:       "B001",
		BorrowedBy:    memberID,
		BookTitle:     "Dune",
		DueDate:       time.Now().Add(14 * 24 * time.Hour),
	}
	suite.borrowSvc.On("IssueBook", mock.Anything, "B001", memberID, suite.librarianID).Return(txn, nil).Once()
	suite.borrowSvc.On("GetTransaction", mock.Anything, txn.TransactionID, suite.librarianID).Return(resp, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions/issue-book",
		dto.IssueBookRequest{Barcode: "B001", MemberID: memberID}, suite.librarianID)

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(txn.TransactionID, body.TransactionID)
	suite.Equal("Dune", body.BookTitle)
	suite.Nil(body.ReturnedAt)
}

func (suite *HandlerTestSuite) TestIssueBook_CommittedLoanSurvivesFailedReread() {
	memberID := uuid.NewString()
	issuedAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	txn := &domain.Transaction{
		TransactionID: uuid.NewString(),
		BorrowedBy:    memberID,
		Barcode:       "B001",
		BookTitle:     "Dune",
		IssuedBy:      &suite.librarianID,
		CreatedAt:     issuedAt,
	}
	suite.borrowSvc.On("IssueBook", mock.Anything, "B001", memberID, suite.librarianID).Return(txn, nil).Once()
	suite.borrowSvc.On("GetTransaction", mock.Anything, txn.TransactionID, suite.librarianID).
		Return(nil, errors.New("connection reset by peer")).Once()
	suite.configSvc.On("Current").Return(domain.DefaultLibraryPolicy()).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions/issue-book",
		dto.IssueBookRequest{Barcode: "B001", MemberID: memberID}, suite.librarianID)

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(txn.TransactionID, body.TransactionID)
	suite.Equal("Dune", body.BookTitle)
	suite.True(issuedAt.Add(14 * 24 * time.Hour).Equal(body.DueDate))
	suite.False(body.IsOverdue)
	suite.Nil(body.ReturnedAt)
}

func (suite *HandlerTestSuite) TestIssueBook_InvalidBarcodeRejectedBeforeService() {
	w := suite.do(http.MethodPost, "/api/v1/transactions/issue-book",
		dto.IssueBookRequest{Barcode: "not a barcode!", MemberID: uuid.NewString()}, suite.librarianID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorBody(w), "Invalid request format")
	suite.borrowSvc.AssertNotCalled(suite.T(), "IssueBook", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestIssueBook_ServiceErrors() {
	memberID := uuid.NewString()
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not available", apperrors.NewRuleViolation(apperrors.ErrBookNotAvailable, "Book copy is not available for borrowing"), http.StatusBadRequest, "Book copy is not available for borrowing"},
		{"limit", apperrors.NewRuleViolation(apperrors.ErrBorrowLimitExceeded, "Member has reached the borrowing limit"), http.StatusBadRequest, "Member has reached the borrowing limit"},
		{"member caller", apperrors.NewForbiddenError("Librarian role required"), http.StatusForbidden, "Librarian role required"},
		{"unknown copy", apperrors.NewNotFoundError("book copy"), http.StatusNotFound, "book copy not found"},
		{"serialization", apperrors.NewAppError(http.StatusConflict, "Concurrent update, please retry", apperrors.ErrDuplicate), http.StatusConflict, "Concurrent update, please retry"},
		{"internal", errors.New("connection reset by peer"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.borrowSvc.On("IssueBook", mock.Anything, "B002", memberID, suite.librarianID).Return(nil, tc.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/transactions/issue-book",
				dto.IssueBookRequest{Barcode: "B002", MemberID: memberID}, suite.librarianID)

			suite.Equal(tc.status, w.Code)
			suite.Equal(tc.message, suite.errorBody(w))
		})
	}
}

func (suite *HandlerTestSuite) TestProcessReturn() {
	txnID := uuid.NewString()
	returnedAt := time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC)
	suite.borrowSvc.On("ProcessReturn", mock.Anything, txnID, suite.librarianID).Return(&domain.ReturnResult{
		TransactionID: txnID,
		Fine:          decimal.NewFromInt(5),
		DaysBorrowed:  19,
		ReturnedAt:    returnedAt,
		IsOverdue:     true,
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions/"+txnID+"/process-return", nil, suite.librarianID)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ReturnResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("return processed", body.Status)
	suite.Equal("5.00", body.Fine)
	suite.Equal(19, body.DaysBorrowed)
	suite.True(body.IsOverdue)
}

func (suite *HandlerTestSuite) TestProcessReturn_AlreadyReturned() {
	txnID := uuid.NewString()
	suite.borrowSvc.On("ProcessReturn", mock.Anything, txnID, suite.librarianID).
		Return(nil, apperrors.NewRuleViolation(apperrors.ErrBookAlreadyReturned, "Book has already been returned")).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions/"+txnID+"/process-return", nil, suite.librarianID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Book has already been returned", suite.errorBody(w))
}

func (suite *HandlerTestSuite) TestCollectFine() {
	txnID := uuid.NewString()
	fine := decimal.RequireFromString("2.5")
	suite.borrowSvc.On("CollectFine", mock.Anything, txnID, suite.librarianID).
		Return(&domain.Transaction{TransactionID: txnID, Fine: &fine, FineCollected: true}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions/"+txnID+"/collect-fine", nil, suite.librarianID)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.CollectFineResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("fine collected", body.Status)
	suite.Equal("2.50", body.Fine)
}

func (suite *HandlerTestSuite) TestListOverdue() {
	overdue := []dto.TransactionResponse{{TransactionID: uuid.NewString(), IsOverdue: true}}
	suite.borrowSvc.On("ListOverdue", mock.Anything, suite.librarianID).Return(overdue, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions/overdue", nil, suite.librarianID)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body, 1)
	suite.True(body[0].IsOverdue)
}

// --- Copies ---

func (suite *HandlerTestSuite) TestMarkLost() {
	copyID := uuid.NewString()
	memberID := uuid.NewString()
	suite.copySvc.On("MarkLost", mock.Anything, copyID, suite.librarianID).Return(&domain.BookCopy{
		CopyID:     copyID,
		Barcode:    "B001",
		Status:     domain.CopyLost,
		BorrowedBy: &memberID,
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/book-copies/"+copyID+"/mark-lost", nil, suite.librarianID)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.BookCopyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(domain.CopyLost, body.Status)
}

func (suite *HandlerTestSuite) TestMarkMaintenance_WhileBorrowed() {
	copyID := uuid.NewString()
	suite.copySvc.On("MarkMaintenance", mock.Anything, copyID, suite.librarianID).
		Return(nil, apperrors.NewRuleViolation(apperrors.ErrInvalidCopyTransition, "Copy is currently borrowed")).Once()

	w := suite.do(http.MethodPost, "/api/v1/book-copies/"+copyID+"/mark-maintenance", nil, suite.librarianID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Copy is currently borrowed", suite.errorBody(w))
}

func (suite *HandlerTestSuite) TestMarkLost_InconsistentCopyIsInternal() {
	copyID := uuid.NewString()
	suite.copySvc.On("MarkLost", mock.Anything, copyID, suite.librarianID).
		Return(nil, apperrors.NewAppError(http.StatusInternalServerError, "refusing to write inconsistent copy",
			apperrors.NewValidationFailedError("copy B001 has inconsistent status and borrower"))).Once()

	w := suite.do(http.MethodPost, "/api/v1/book-copies/"+copyID+"/mark-lost", nil, suite.librarianID)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Internal server error", suite.errorBody(w))
}

func (suite *HandlerTestSuite) TestGetCopyByBarcode() {
	copyID := uuid.NewString()
	suite.copySvc.On("GetCopyByBarcode", mock.Anything, "B001", suite.librarianID).
		Return(&domain.BookCopy{CopyID: copyID, Barcode: "B001", Status: domain.CopyAvailable}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/book-copies/by-barcode?barcode=B001", nil, suite.librarianID)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.BookCopyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(copyID, body.CopyID)
	suite.Equal(domain.CopyAvailable, body.Status)
}

func (suite *HandlerTestSuite) TestGetCopyByBarcode_Errors() {
	cases := []struct {
		name    string
		query   string
		barcode string
		err     error
		status  int
		message string
	}{
		{"missing barcode", "", "", apperrors.NewValidationFailedError("barcode query parameter is required"), http.StatusBadRequest, "barcode query parameter is required"},
		{"unknown barcode", "?barcode=Z999", "Z999", apperrors.NewNotFoundError("book copy"), http.StatusNotFound, "book copy not found"},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.copySvc.On("GetCopyByBarcode", mock.Anything, tc.barcode, suite.librarianID).Return(nil, tc.err).Once()

			w := suite.do(http.MethodGet, "/api/v1/book-copies/by-barcode"+tc.query, nil, suite.librarianID)

			suite.Equal(tc.status, w.Code)
			suite.Equal(tc.message, suite.errorBody(w))
		})
	}
}

// --- Books ---

func (suite *HandlerTestSuite) TestListBookCopies() {
	bookID := uuid.NewString()
	memberID := uuid.NewString()
	copies := []dto.CopyWithLoanResponse{
		{BookCopyResponse: dto.BookCopyResponse{CopyID: uuid.NewString(), BookID: bookID, Barcode: "B001", Status: domain.CopyAvailable}},
		{BookCopyResponse: dto.BookCopyResponse{CopyID: uuid.NewString(), BookID: bookID, Barcode: "B002", Status: domain.CopyBorrowed, BorrowedBy: &memberID}},
	}
	suite.bookSvc.On("ListBookCopies", mock.Anything, bookID, suite.librarianID).Return(copies, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/books/"+bookID+"/copies", nil, suite.librarianID)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.CopyWithLoanResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 2)
	suite.Equal("B002", body[1].Barcode)
	suite.Require().NotNil(body[1].BorrowedBy)
	suite.Equal(memberID, *body[1].BorrowedBy)
}

func (suite *HandlerTestSuite) TestListBookCopies_UnknownBook() {
	bookID := uuid.NewString()
	suite.bookSvc.On("ListBookCopies", mock.Anything, bookID, suite.librarianID).
		Return(nil, apperrors.NewNotFoundError("book")).Once()

	w := suite.do(http.MethodGet, "/api/v1/books/"+bookID+"/copies", nil, suite.librarianID)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("book not found", suite.errorBody(w))
}

func (suite *HandlerTestSuite) TestArchiveAndUnarchiveBook() {
	bookID := uuid.NewString()
	suite.bookSvc.On("ArchiveBook", mock.Anything, bookID, suite.librarianID).Return(nil).Once()
	suite.bookSvc.On("UnarchiveBook", mock.Anything, bookID, suite.librarianID).Return(nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/books/"+bookID+"/archive", nil, suite.librarianID)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"status":"archived"}`, w.Body.String())

	w = suite.do(http.MethodPost, "/api/v1/books/"+bookID+"/unarchive", nil, suite.librarianID)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"status":"unarchived"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestArchiveBook_Errors() {
	bookID := uuid.NewString()
	memberID := uuid.NewString()
	suite.bookSvc.On("ArchiveBook", mock.Anything, bookID, memberID).
		Return(apperrors.NewForbiddenError("Librarian role required")).Once()
	suite.bookSvc.On("UnarchiveBook", mock.Anything, bookID, suite.librarianID).
		Return(apperrors.NewNotFoundError("book")).Once()

	w := suite.do(http.MethodPost, "/api/v1/books/"+bookID+"/archive", nil, memberID)
	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("Librarian role required", suite.errorBody(w))

	w = suite.do(http.MethodPost, "/api/v1/books/"+bookID+"/unarchive", nil, suite.librarianID)
	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Library config ---

func (suite *HandlerTestSuite) TestUpdateLibraryConfig() {
	updated := domain.DefaultLibraryPolicy()
	updated.MaxBooksPerMember = 5
	updated.LastUpdatedBy = &suite.librarianID
	onlyMaxBooks := mock.MatchedBy(func(req dto.UpdateLibraryConfigRequest) bool {
		return req.MaxBooksPerMember != nil && *req.MaxBooksPerMember == 5 &&
			req.MaxBorrowDaysWithoutFine == nil && req.FinePerDay == nil
	})
	suite.configSvc.On("UpdateConfig", mock.Anything, onlyMaxBooks, suite.librarianID).Return(updated, nil).Once()

	w := suite.do(http.MethodPatch, "/api/v1/library-config/current", map[string]any{"max_books_per_member": 5}, suite.librarianID)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.LibraryConfigResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(5, body.MaxBooksPerMember)
	suite.Equal(14, body.MaxBorrowDaysWithoutFine)
	suite.Equal("1.00", body.FinePerDay)
}

func (suite *HandlerTestSuite) TestUpdateLibraryConfig_OutOfRangeGraceRejectedBeforeService() {
	for _, days := range []int{-1, 36501, 1 << 40} {
		w := suite.do(http.MethodPatch, "/api/v1/library-config/current",
			map[string]any{"max_borrow_days_without_fine": days}, suite.librarianID)
		suite.Equal(http.StatusBadRequest, w.Code, "days=%d", days)
	}
	suite.configSvc.AssertNotCalled(suite.T(), "UpdateConfig", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestUpdateLibraryConfig_Rejected() {
	memberID := uuid.NewString()
	cases := []struct {
		name    string
		caller  string
		body    map[string]any
		err     error
		status  int
		message string
	}{
		{"fine above cap", suite.librarianID, map[string]any{"fine_per_day": "250.00"}, apperrors.NewValidationFailedError("fine_per_day must be at most 100.00"), http.StatusBadRequest, "fine_per_day must be at most 100.00"},
		{"member caller", memberID, map[string]any{"max_books_per_member": 10}, apperrors.NewForbiddenError("Librarian role required"), http.StatusForbidden, "Librarian role required"},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.configSvc.On("UpdateConfig", mock.Anything, mock.Anything, tc.caller).Return(domain.LibraryPolicy{}, tc.err).Once()

			w := suite.do(http.MethodPatch, "/api/v1/library-config/current", tc.body, tc.caller)

			suite.Equal(tc.status, w.Code)
			suite.Equal(tc.message, suite.errorBody(w))
		})
	}
}

func (suite *HandlerTestSuite) TestGetLibraryConfig() {
	suite.configSvc.On("GetConfig", mock.Anything, suite.librarianID).Return(domain.DefaultLibraryPolicy(), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/library-config/current", nil, suite.librarianID)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.LibraryConfigResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(3, body.MaxBooksPerMember)
}

// --- Members ---

func (suite *HandlerTestSuite) TestCreateUser_Created() {
	req := dto.CreateUserRequest{Username: "alice", Password: "correct-horse", Name: "Alice", Role: domain.RoleMember}
	created := &domain.User{UserID: uuid.NewString(), Username: "alice", Name: "Alice", Role: domain.RoleMember, IsActive: true}
	suite.userSvc.On("CreateUser", mock.Anything, req, suite.librarianID).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/members", req, suite.librarianID)

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(created.UserID, body.UserID)
	suite.NotContains(w.Body.String(), "password")
}

func (suite *HandlerTestSuite) TestCreateUser_UnknownRole() {
	req := map[string]string{"username": "mallory", "password": "correct-horse", "name": "M", "role": "admin"}

	w := suite.do(http.MethodPost, "/api/v1/members", req, suite.librarianID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.userSvc.AssertNotCalled(suite.T(), "CreateUser", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateUser_DuplicateUsername() {
	req := dto.CreateUserRequest{Username: "alice", Password: "correct-horse", Name: "Alice", Role: domain.RoleMember}
	suite.userSvc.On("CreateUser", mock.Anything, req, suite.librarianID).
		Return(nil, apperrors.NewConflictError("username already taken")).Once()

	w := suite.do(http.MethodPost, "/api/v1/members", req, suite.librarianID)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestActiveBorrows_PassesMemberID() {
	memberID := uuid.NewString()
	records := []dto.TransactionResponse{{TransactionID: uuid.NewString(), BorrowedBy: memberID}}
	suite.userSvc.On("ActiveBorrows", mock.Anything, memberID, suite.librarianID).Return(records, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/members/active-borrows?member_id="+memberID, nil, suite.librarianID)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body, 1)
}

func (suite *HandlerTestSuite) TestBorrowingHistory_OwnRecords() {
	memberID := uuid.NewString()
	suite.userSvc.On("BorrowingHistory", mock.Anything, "", memberID).Return([]dto.TransactionResponse{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/members/borrowing-history", nil, memberID)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *HandlerTestSuite) TestBorrowingHistory_OtherMemberForbidden() {
	memberID := uuid.NewString()
	otherID := uuid.NewString()
	suite.userSvc.On("BorrowingHistory", mock.Anything, otherID, memberID).
		Return(nil, apperrors.NewForbiddenError("Members can only view their own records")).Once()

	w := suite.do(http.MethodGet, "/api/v1/members/borrowing-history?member_id="+otherID, nil, memberID)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlerTestSuite) TestDeactivateMember_WithBorrowedCopies() {
	memberID := uuid.NewString()
	suite.userSvc.On("DeactivateMember", mock.Anything, memberID, suite.librarianID).
		Return(apperrors.NewValidationFailedError("Member still has borrowed books")).Once()

	w := suite.do(http.MethodPost, "/api/v1/members/"+memberID+"/deactivate", nil, suite.librarianID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Member still has borrowed books", suite.errorBody(w))
}

func (suite *HandlerTestSuite) TestActivateMember() {
	memberID := uuid.NewString()
	suite.userSvc.On("ActivateMember", mock.Anything, memberID, suite.librarianID).Return(nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/members/"+memberID+"/activate", nil, suite.librarianID)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"status":"activated"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestGetCurrentUser() {
	user := &domain.User{UserID: suite.librarianID, Username: "librarian", Role: domain.RoleLibrarian, IsActive: true}
	suite.userSvc.On("GetUserByID", mock.Anything, suite.librarianID).Return(user, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/me", nil, suite.librarianID)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("librarian", body.Username)
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
