package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/library_management_app/internal/core/ports/services"
	"github.com/SscSPs/library_management_app/internal/dto"
	"github.com/SscSPs/library_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles authentication related requests.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvc
}

func newAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvc) *authHandler {
	return &authHandler{userService: us, tokenService: ts}
}

// registerAuthRoutes sets up the public login route behind the rate limiter.
func registerAuthRoutes(rg *gin.RouterGroup, limit gin.HandlerFunc, us portssvc.UserSvcFacade, ts portssvc.TokenSvc) {
	h := newAuthHandler(us, ts)

	auth := rg.Group("/auth")
	{
		auth.POST("/login", limit, h.login)
	}
}

// login godoc
// @Summary User login
// @Description Authenticates a member or librarian and returns a JWT access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Account deactivated"
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondWithError(c, err, "Login")
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		respondWithError(c, err, "Token generation")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	})
}
