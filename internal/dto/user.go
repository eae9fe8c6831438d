package dto

import (
	"time"

	"github.com/SscSPs/library_management_app/internal/core/domain"
)

// CreateUserRequest defines the data for registering a member or librarian.
type CreateUserRequest struct {
	Username string          `json:"username" binding:"required,min=3,max=150"`
	Password string          `json:"password" binding:"required,min=8,max=72"`
	Name     string          `json:"name" binding:"required,max=200"`
	Email    string          `json:"email" binding:"omitempty,email"`
	Role     domain.UserRole `json:"role" binding:"required,oneof=member librarian"`
}

type UserResponse struct {
	UserID    string          `json:"user_id"`
	Username  string          `json:"username"`
	Name      string          `json:"name"`
	Email     string          `json:"email,omitempty"`
	Role      domain.UserRole `json:"role"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
}

func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		Username:  user.Username,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

// ListMembersParams defines query parameters for listing members.
type ListMembersParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// MemberResponse is a member with borrow counters.
type MemberResponse struct {
	UserResponse
	ActiveBorrowsCount int `json:"active_borrows_count"`
	TotalBorrowsCount  int `json:"total_borrows_count"`
}

// ListMembersResponse wraps the list of members.
type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

// ToListMembersResponse converts member summaries to the response DTO
func ToListMembersResponse(members []domain.MemberSummary) ListMembersResponse {
	list := make([]MemberResponse, len(members))
	for i := range members {
		list[i] = MemberResponse{
			UserResponse:       ToUserResponse(&members[i].User),
			ActiveBorrowsCount: members[i].ActiveBorrowsCount,
			TotalBorrowsCount:  members[i].TotalBorrowsCount,
		}
	}
	return ListMembersResponse{Members: list}
}

// MemberRecordsParams selects whose borrowing records to read. Members may
// omit it; librarians must name the member.
type MemberRecordsParams struct {
	MemberID string `form:"member_id"`
}
