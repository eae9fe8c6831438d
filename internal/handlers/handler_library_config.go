package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/library_management_app/internal/core/ports/services"
	"github.com/SscSPs/library_management_app/internal/dto"
	"github.com/SscSPs/library_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type libraryConfigHandler struct {
	configService portssvc.LibraryConfigSvcFacade
}

func registerLibraryConfigRoutes(rg *gin.RouterGroup, configService portssvc.LibraryConfigSvcFacade) {
	h := &libraryConfigHandler{configService: configService}

	cfg := rg.Group("/library-config")
	{
		cfg.GET("/current", h.getConfig)
		cfg.PATCH("/current", h.updateConfig)
	}
}

// getConfig godoc
// @Summary Current borrowing policy
// @Tags library-config
// @Produce json
// @Success 200 {object} dto.LibraryConfigResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /library-config/current [get]
func (h *libraryConfigHandler) getConfig(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	policy, err := h.configService.GetConfig(c.Request.Context(), callerID)
	if err != nil {
		respondWithError(c, err, "Get library config")
		return
	}
	c.JSON(http.StatusOK, dto.ToLibraryConfigResponse(policy))
}

// updateConfig godoc
// @Summary Update the borrowing policy
// @Description Omitted fields keep their value. The new policy applies to the next request.
// @Tags library-config
// @Accept json
// @Produce json
// @Param config body dto.UpdateLibraryConfigRequest true "Fields to change"
// @Success 200 {object} dto.LibraryConfigResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /library-config/current [patch]
func (h *libraryConfigHandler) updateConfig(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	var req dto.UpdateLibraryConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	policy, err := h.configService.UpdateConfig(c.Request.Context(), req, callerID)
	if err != nil {
		respondWithError(c, err, "Update library config")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Library policy updated",
		slog.Int("max_borrow_days_without_fine", policy.MaxBorrowDaysWithoutFine),
		slog.String("fine_per_day", policy.FinePerDay.StringFixed(2)),
		slog.Int("max_books_per_member", policy.MaxBooksPerMember))
	c.JSON(http.StatusOK, dto.ToLibraryConfigResponse(policy))
}
