package domain

// UserRole is the capability tier of a user.
type UserRole string

const (
	RoleMember    UserRole = "member"
	RoleLibrarian UserRole = "librarian"
)

// IsValid reports whether r is one of the known roles.
func (r UserRole) IsValid() bool {
	return r == RoleMember || r == RoleLibrarian
}

// User represents a member or a librarian.
type User struct {
	UserID       string   `json:"userID" db:"user_id"` // Primary Key (UUID)
	Username     string   `json:"username" db:"username"`
	PasswordHash string   `json:"-" db:"password_hash"`
	Name         string   `json:"name" db:"name"`
	Email        string   `json:"email" db:"email"`
	Role         UserRole `json:"role" db:"role"`
	IsActive     bool     `json:"isActive" db:"is_active"`
	AuditFields
}

// Principal is the caller identity the access policy works with. It is always
// rebuilt from the user store; a token only ever carries the user id.
type Principal struct {
	UserID   string
	Role     UserRole
	IsActive bool
}

// Principal derives the access-control view of u.
func (u User) Principal() Principal {
	return Principal{UserID: u.UserID, Role: u.Role, IsActive: u.IsActive}
}

// CanManageLibrary is true for active librarians: catalog, transactions,
// members and configuration.
func (p Principal) CanManageLibrary() bool {
	return p.IsActive && p.Role == RoleLibrarian
}

// CanBorrow is true for active members.
func (p Principal) CanBorrow() bool {
	return p.IsActive && p.Role == RoleMember
}

// CanViewMemberRecords reports whether p may read memberID's transactions.
func (p Principal) CanViewMemberRecords(memberID string) bool {
	if !p.IsActive {
		return false
	}
	return p.Role == RoleLibrarian || p.UserID == memberID
}

// MemberSummary is a member together with borrowing counters.
type MemberSummary struct {
	User
	ActiveBorrowsCount int `json:"activeBorrowsCount" db:"active_borrows_count"`
	TotalBorrowsCount  int `json:"totalBorrowsCount" db:"total_borrows_count"`
}
