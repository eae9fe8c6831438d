package domain

// Author writes books. An author cannot be removed while books reference it.
type Author struct {
	AuthorID    string  `json:"authorID" db:"author_id"`
	Name        string  `json:"name" db:"name"`
	Nationality *string `json:"nationality,omitempty" db:"nationality"`
	AuditFields
}
