package dto

import "github.com/SscSPs/library_management_app/internal/core/domain"

type CopyCountsResponse struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Borrowed    int `json:"borrowed"`
	Maintenance int `json:"maintenance"`
	Lost        int `json:"lost"`
}

type TransactionCountsResponse struct {
	Active  int `json:"active"`
	Overdue int `json:"overdue"`
}

type MemberCountsResponse struct {
	Total           int `json:"total"`
	ActiveBorrowers int `json:"active_borrowers"`
}

// OverviewResponse is the borrowing statistics dashboard.
type OverviewResponse struct {
	Copies       CopyCountsResponse        `json:"copies"`
	Transactions TransactionCountsResponse `json:"transactions"`
	Members      MemberCountsResponse      `json:"members"`
}

func ToOverviewResponse(o *domain.LibraryOverview) OverviewResponse {
	return OverviewResponse{
		Copies: CopyCountsResponse{
			Total:       o.Copies.Total,
			Available:   o.Copies.Available,
			Borrowed:    o.Copies.Borrowed,
			Maintenance: o.Copies.Maintenance,
			Lost:        o.Copies.Lost,
		},
		Transactions: TransactionCountsResponse{
			Active:  o.Transactions.Active,
			Overdue: o.Transactions.Overdue,
		},
		Members: MemberCountsResponse{
			Total:           o.Members.Total,
			ActiveBorrowers: o.Members.ActiveBorrowers,
		},
	}
}

type PopularBookResponse struct {
	BookID      string `json:"book_id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	BorrowCount int    `json:"borrow_count"`
}

func ToPopularBooksResponse(books []domain.PopularBook) []PopularBookResponse {
	list := make([]PopularBookResponse, len(books))
	for i, b := range books {
		list[i] = PopularBookResponse{
			BookID:      b.BookID,
			Title:       b.Title,
			Author:      b.Author,
			BorrowCount: b.BorrowCount,
		}
	}
	return list
}

// PopularBooksParams selects the size of the ranking. Zero means the default of 10.
type PopularBooksParams struct {
	Limit int `form:"limit"`
}
