package dto

import (
	"time"

	"github.com/SscSPs/library_management_app/internal/core/domain"
)

// IssueBookRequest names the copy to lend and the member receiving it.
type IssueBookRequest struct {
	Barcode  string `json:"barcode" binding:"required,barcode"`
	MemberID string `json:"member_id" binding:"required"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	MemberID      *string `form:"member_id"`
	ActiveOnly    bool    `form:"active_only"`
	OverdueOnly   bool    `form:"overdue_only"`
	FineCollected *bool   `form:"fine_collected"`
	Limit         int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken     *string `form:"next_token"`
}

type TransactionResponse struct {
	TransactionID string     `json:"transaction_id"`
	BookCopyID    string     `json:"book_copy_id"`
	Barcode       string     `json:"barcode,omitempty"`
	BookID        string     `json:"book_id,omitempty"`
	BookTitle     string     `json:"book_title,omitempty"`
	BorrowedBy    string     `json:"borrowed_by"`
	IssuedBy      *string    `json:"issued_by"`
	CreatedAt     time.Time  `json:"created_at"`
	DueDate       time.Time  `json:"due_date"`
	ReturnedAt    *time.Time `json:"returned_at"`
	Fine          *string    `json:"fine"`
	FineCollected bool       `json:"fine_collected"`
	IsOverdue     bool       `json:"is_overdue"`
	DaysBorrowed  int        `json:"days_borrowed"`
}

// ToTransactionResponse evaluates the derived fields at now under policy.
// DaysBorrowed is measured up to the return for closed transactions.
func ToTransactionResponse(t *domain.Transaction, now time.Time, policy domain.LibraryPolicy) TransactionResponse {
	resp := TransactionResponse{
		TransactionID: t.TransactionID,
		BookCopyID:    t.BookCopyID,
		Barcode:       t.Barcode,
		BookID:        t.BookID,
		BookTitle:     t.BookTitle,
		BorrowedBy:    t.BorrowedBy,
		IssuedBy:      t.IssuedBy,
		CreatedAt:     t.CreatedAt,
		DueDate:       t.DueDate(policy),
		ReturnedAt:    t.ReturnedAt,
		FineCollected: t.FineCollected,
		IsOverdue:     t.IsOverdue(now, policy),
	}
	if t.ReturnedAt != nil {
		resp.DaysBorrowed = t.DaysBorrowed(*t.ReturnedAt)
	} else {
		resp.DaysBorrowed = t.DaysBorrowed(now)
	}
	if t.Fine != nil {
		fine := t.Fine.StringFixed(2)
		resp.Fine = &fine
	}
	return resp
}

// ToTransactionResponses maps a slice with a shared evaluation time.
func ToTransactionResponses(txns []domain.Transaction, now time.Time, policy domain.LibraryPolicy) []TransactionResponse {
	list := make([]TransactionResponse, len(txns))
	for i := range txns {
		list[i] = ToTransactionResponse(&txns[i], now, policy)
	}
	return list
}

type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"next_token,omitempty"`
}

// ReturnResponse reports a processed return.
type ReturnResponse struct {
	Status        string    `json:"status"`
	TransactionID string    `json:"transaction_id"`
	Fine          string    `json:"fine"`
	DaysBorrowed  int       `json:"days_borrowed"`
	ReturnedAt    time.Time `json:"returned_at"`
	IsOverdue     bool      `json:"is_overdue"`
}

func ToReturnResponse(r *domain.ReturnResult) ReturnResponse {
	return ReturnResponse{
		Status:        "return processed",
		TransactionID: r.TransactionID,
		Fine:          r.Fine.StringFixed(2),
		DaysBorrowed:  r.DaysBorrowed,
		ReturnedAt:    r.ReturnedAt,
		IsOverdue:     r.IsOverdue,
	}
}

// CollectFineResponse acknowledges a collected fine.
type CollectFineResponse struct {
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
	Fine          string `json:"fine"`
}

func ToCollectFineResponse(t *domain.Transaction) CollectFineResponse {
	resp := CollectFineResponse{Status: "fine collected", TransactionID: t.TransactionID}
	if t.Fine != nil {
		resp.Fine = t.Fine.StringFixed(2)
	}
	return resp
}
