package services

import (
	"context"

	"github.com/SscSPs/library_management_app/internal/core/domain"
	"github.com/SscSPs/library_management_app/internal/dto"
)

// BorrowingSvc runs the lending workflow. Every operation checks that callerID
// is an active librarian before looking at the request.
type BorrowingSvc interface {
	// IssueBook lends the copy with barcode to memberID, issued by callerID.
	IssueBook(ctx context.Context, barcode string, memberID string, callerID string) (*domain.Transaction, error)

	// ProcessReturn closes a transaction and computes its fine.
	ProcessReturn(ctx context.Context, transactionID string, callerID string) (*domain.ReturnResult, error)

	// CollectFine marks a positive fine as paid.
	CollectFine(ctx context.Context, transactionID string, callerID string) (*domain.Transaction, error)
}

// TransactionQuerySvc reads the ledger. Members only ever see their own transactions.
type TransactionQuerySvc interface {
	GetTransaction(ctx context.Context, transactionID string, callerID string) (*dto.TransactionResponse, error)
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams, callerID string) (*dto.ListTransactionsResponse, error)
	ListOverdue(ctx context.Context, callerID string) ([]dto.TransactionResponse, error)
}

// BorrowingSvcFacade combines the workflow and the ledger reads
type BorrowingSvcFacade interface {
	BorrowingSvc
	TransactionQuerySvc
}

// CopyStatusSvc moves copies through the administrative states.
type CopyStatusSvc interface {
	MarkMaintenance(ctx context.Context, copyID string, callerID string) (*domain.BookCopy, error)
	MarkAvailable(ctx context.Context, copyID string, callerID string) (*domain.BookCopy, error)
	MarkLost(ctx context.Context, copyID string, callerID string) (*domain.BookCopy, error)
}
