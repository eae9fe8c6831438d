package handlers

import (
	"context"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/library_management_app/internal/core/ports/services"
	"github.com/SscSPs/library_management_app/internal/dto"
	"github.com/SscSPs/library_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// memberHandler handles HTTP requests related to users and their borrowing records.
type memberHandler struct {
	userService portssvc.UserSvcFacade
}

func newMemberHandler(us portssvc.UserSvcFacade) *memberHandler {
	return &memberHandler{userService: us}
}

// registerMemberRoutes registers account management and member record routes.
func registerMemberRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newMemberHandler(userService)

	rg.GET("/me", h.getCurrentUser)

	members := rg.Group("/members")
	{
		members.GET("", h.listMembers)                        // Librarian only
		members.POST("", h.createUser)                        // Librarian only
		members.GET("/borrowing-history", h.borrowingHistory) // Own or librarian
		members.GET("/active-borrows", h.activeBorrows)       // Own or librarian
		members.POST("/:id/deactivate", h.deactivateMember)   // Librarian only
		members.POST("/:id/activate", h.activateMember)       // Librarian only
	}
}

// getCurrentUser godoc
// @Summary Current user
// @Description Returns the profile of the authenticated user
// @Tags members
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func (h *memberHandler) getCurrentUser(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	user, err := h.userService.GetUserByID(c.Request.Context(), callerID)
	if err != nil {
		respondWithError(c, err, "Get current user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// createUser godoc
// @Summary Register a member or librarian
// @Tags members
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Username taken"
// @Security BearerAuth
// @Router /members [post]
func (h *memberHandler) createUser(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req, callerID)
	if err != nil {
		respondWithError(c, err, "Create user")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User registered",
		slog.String("new_user_id", user.UserID),
		slog.String("role", string(user.Role)))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// listMembers godoc
// @Summary List members
// @Tags members
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListMembersResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /members [get]
func (h *memberHandler) listMembers(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	var params dto.ListMembersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	members, err := h.userService.ListMembers(c.Request.Context(), params, callerID)
	if err != nil {
		respondWithError(c, err, "List members")
		return
	}
	c.JSON(http.StatusOK, dto.ToListMembersResponse(members))
}

// deactivateMember godoc
// @Summary Deactivate a member
// @Description Refused while the member still holds a borrowed copy.
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} ErrorResponse "Member has active borrows"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /members/{id}/deactivate [post]
func (h *memberHandler) deactivateMember(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	if err := h.userService.DeactivateMember(c.Request.Context(), c.Param("id"), callerID); err != nil {
		respondWithError(c, err, "Deactivate member")
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "deactivated"})
}

// activateMember godoc
// @Summary Activate a member
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} dto.StatusResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /members/{id}/activate [post]
func (h *memberHandler) activateMember(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	if err := h.userService.ActivateMember(c.Request.Context(), c.Param("id"), callerID); err != nil {
		respondWithError(c, err, "Activate member")
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "activated"})
}

// borrowingHistory godoc
// @Summary Borrowing history
// @Description Every transaction of a member, newest first. Librarians pass member_id.
// @Tags members
// @Produce json
// @Param member_id query string false "Member ID (librarians)"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /members/borrowing-history [get]
func (h *memberHandler) borrowingHistory(c *gin.Context) {
	h.memberRecords(c, h.userService.BorrowingHistory, "Borrowing history")
}

// activeBorrows godoc
// @Summary Active borrows
// @Description Open transactions of a member with due date and overdue flag. Librarians pass member_id.
// @Tags members
// @Produce json
// @Param member_id query string false "Member ID (librarians)"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /members/active-borrows [get]
func (h *memberHandler) activeBorrows(c *gin.Context) {
	h.memberRecords(c, h.userService.ActiveBorrows, "Active borrows")
}

type memberRecordsFunc func(ctx context.Context, memberID string, callerID string) ([]dto.TransactionResponse, error)

func (h *memberHandler) memberRecords(c *gin.Context, read memberRecordsFunc, action string) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	var params dto.MemberRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	records, err := read(c.Request.Context(), params.MemberID, callerID)
	if err != nil {
		respondWithError(c, err, action)
		return
	}
	c.JSON(http.StatusOK, records)
}
