package dto

import (
	"time"

	"github.com/SscSPs/library_management_app/internal/core/domain"
)

// --- Author DTOs ---

type CreateAuthorRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Nationality *string `json:"nationality" binding:"omitempty,max=100"`
}

// UpdateAuthorRequest uses pointers to tell omitted fields from cleared ones.
type UpdateAuthorRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	Nationality *string `json:"nationality" binding:"omitempty,max=100"`
}

type ListAuthorsParams struct {
	Nationality *string `form:"nationality"`
	Limit       int     `form:"limit,default=20" binding:"min=1,max=100"`
	Offset      int     `form:"offset,default=0" binding:"min=0"`
}

type AuthorResponse struct {
	AuthorID    string    `json:"author_id"`
	Name        string    `json:"name"`
	Nationality *string   `json:"nationality,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToAuthorResponse(a *domain.Author) AuthorResponse {
	return AuthorResponse{
		AuthorID:    a.AuthorID,
		Name:        a.Name,
		Nationality: a.Nationality,
		CreatedAt:   a.CreatedAt,
	}
}

type ListAuthorsResponse struct {
	Authors []AuthorResponse `json:"authors"`
}

func ToListAuthorsResponse(authors []domain.Author) ListAuthorsResponse {
	list := make([]AuthorResponse, len(authors))
	for i := range authors {
		list[i] = ToAuthorResponse(&authors[i])
	}
	return ListAuthorsResponse{Authors: list}
}

// --- Book DTOs ---

type CreateBookRequest struct {
	Title    string  `json:"title" binding:"required,max=300"`
	AuthorID string  `json:"author_id" binding:"required,uuid"`
	ISBN     *string `json:"isbn" binding:"omitempty,isbn"`
}

type UpdateBookRequest struct {
	Title    *string `json:"title" binding:"omitempty,min=1,max=300"`
	AuthorID *string `json:"author_id" binding:"omitempty,uuid"`
	ISBN     *string `json:"isbn" binding:"omitempty,isbn"`
}

type ListBooksParams struct {
	AuthorID        *string `form:"author_id" binding:"omitempty,uuid"`
	IncludeArchived bool    `form:"include_archived"`
	Limit           int     `form:"limit,default=20" binding:"min=1,max=100"`
	Offset          int     `form:"offset,default=0" binding:"min=0"`
}

type BookResponse struct {
	BookID     string    `json:"book_id"`
	Title      string    `json:"title"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
	ISBN       *string   `json:"isbn,omitempty"`
	IsArchived bool      `json:"is_archived"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToBookResponse(b *domain.Book) BookResponse {
	return BookResponse{
		BookID:     b.BookID,
		Title:      b.Title,
		AuthorID:   b.AuthorID,
		AuthorName: b.AuthorName,
		ISBN:       b.ISBN,
		IsArchived: b.IsArchived,
		CreatedAt:  b.CreatedAt,
	}
}

type ListBooksResponse struct {
	Books []BookResponse `json:"books"`
}

func ToListBooksResponse(books []domain.Book) ListBooksResponse {
	list := make([]BookResponse, len(books))
	for i := range books {
		list[i] = ToBookResponse(&books[i])
	}
	return ListBooksResponse{Books: list}
}

// --- Book copy DTOs ---

type CreateBookCopyRequest struct {
	BookID  string `json:"book_id" binding:"required,uuid"`
	Barcode string `json:"barcode" binding:"required,barcode"`
}

type ListBookCopiesParams struct {
	BookID *string `form:"book_id" binding:"omitempty,uuid"`
	Status *string `form:"status" binding:"omitempty,oneof=available borrowed lost maintenance"`
	Limit  int     `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int     `form:"offset,default=0" binding:"min=0"`
}

type BookCopyResponse struct {
	CopyID     string            `json:"copy_id"`
	BookID     string            `json:"book_id"`
	Barcode    string            `json:"barcode"`
	Status     domain.CopyStatus `json:"status"`
	BorrowedBy *string           `json:"borrowed_by"`
}

func ToBookCopyResponse(c *domain.BookCopy) BookCopyResponse {
	return BookCopyResponse{
		CopyID:     c.CopyID,
		BookID:     c.BookID,
		Barcode:    c.Barcode,
		Status:     c.Status,
		BorrowedBy: c.BorrowedBy,
	}
}

type ListBookCopiesResponse struct {
	Copies []BookCopyResponse `json:"copies"`
}

func ToListBookCopiesResponse(copies []domain.BookCopy) ListBookCopiesResponse {
	list := make([]BookCopyResponse, len(copies))
	for i := range copies {
		list[i] = ToBookCopyResponse(&copies[i])
	}
	return ListBookCopiesResponse{Copies: list}
}

// LoanSummaryResponse describes the open transaction on a copy.
type LoanSummaryResponse struct {
	TransactionID string    `json:"transaction_id"`
	BorrowedBy    string    `json:"borrowed_by"`
	BorrowedAt    time.Time `json:"borrowed_at"`
	DueDate       time.Time `json:"due_date"`
	IsOverdue     bool      `json:"is_overdue"`
	DaysBorrowed  int       `json:"days_borrowed"`
}

type CopyWithLoanResponse struct {
	BookCopyResponse
	ActiveTransaction *LoanSummaryResponse `json:"active_transaction"`
}

// ToCopyWithLoanResponse evaluates the loan summary at now under policy.
func ToCopyWithLoanResponse(c *domain.CopyWithLoan, now time.Time, policy domain.LibraryPolicy) CopyWithLoanResponse {
	resp := CopyWithLoanResponse{BookCopyResponse: ToBookCopyResponse(&c.BookCopy)}
	if t := c.ActiveTransaction; t != nil {
		resp.ActiveTransaction = &LoanSummaryResponse{
			TransactionID: t.TransactionID,
			BorrowedBy:    t.BorrowedBy,
			BorrowedAt:    t.CreatedAt,
			DueDate:       t.DueDate(policy),
			IsOverdue:     t.IsOverdue(now, policy),
			DaysBorrowed:  t.DaysBorrowed(now),
		}
	}
	return resp
}

// StatusResponse acknowledges a state-changing action.
type StatusResponse struct {
	Status string `json:"status"`
}
