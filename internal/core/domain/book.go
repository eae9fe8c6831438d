package domain

// Book is a catalog title. Archived books stay in the catalog but cannot be borrowed.
type Book struct {
	BookID     string  `json:"bookID" db:"book_id"`
	Title      string  `json:"title" db:"title"`
	AuthorID   string  `json:"authorID" db:"author_id"`
	AuthorName string  `json:"authorName" db:"author_name"`
	ISBN       *string `json:"isbn,omitempty" db:"isbn"`
	IsArchived bool    `json:"isArchived" db:"is_archived"`
	AuditFields
}
