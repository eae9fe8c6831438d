package domain

// CopyCounts breaks the copy inventory down by status.
type CopyCounts struct {
	Total       int `json:"total" db:"total"`
	Available   int `json:"available" db:"available"`
	Borrowed    int `json:"borrowed" db:"borrowed"`
	Maintenance int `json:"maintenance" db:"maintenance"`
	Lost        int `json:"lost" db:"lost"`
}

// TransactionCounts counts open loans.
type TransactionCounts struct {
	Active  int `json:"active" db:"active"`
	Overdue int `json:"overdue" db:"overdue"`
}

// MemberCounts counts members and those currently holding a copy.
type MemberCounts struct {
	Total           int `json:"total" db:"total"`
	ActiveBorrowers int `json:"activeBorrowers" db:"active_borrowers"`
}

// LibraryOverview is the borrowing statistics dashboard.
type LibraryOverview struct {
	Copies       CopyCounts        `json:"copies"`
	Transactions TransactionCounts `json:"transactions"`
	Members      MemberCounts      `json:"members"`
}

// PopularBook is one row of the most-borrowed ranking.
type PopularBook struct {
	BookID      string `json:"bookID" db:"book_id"`
	Title       string `json:"title" db:"title"`
	Author      string `json:"author" db:"author"`
	BorrowCount int    `json:"borrowCount" db:"borrow_count"`
}
