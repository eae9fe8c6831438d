package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/library_management_app/internal/core/ports/services"
	"github.com/SscSPs/library_management_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for borrowing statistics
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the borrowing statistics routes
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	stats := rg.Group("/borrowing-stats")
	{
		stats.GET("/overview", h.getOverview)
		stats.GET("/popular-books", h.getPopularBooks)
	}
}

// getOverview godoc
// @Summary Borrowing overview
// @Description Copies by status, open and overdue transactions, members and active borrowers
// @Tags borrowing-stats
// @Produce json
// @Success 200 {object} dto.OverviewResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /borrowing-stats/overview [get]
func (h *reportingHandler) getOverview(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	overview, err := h.reportingService.Overview(c.Request.Context(), callerID)
	if err != nil {
		respondWithError(c, err, "Borrowing overview")
		return
	}
	c.JSON(http.StatusOK, dto.ToOverviewResponse(overview))
}

// getPopularBooks godoc
// @Summary Most borrowed books
// @Tags borrowing-stats
// @Produce json
// @Param limit query int false "Number of books (1-100)" default(10)
// @Success 200 {array} dto.PopularBookResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /borrowing-stats/popular-books [get]
func (h *reportingHandler) getPopularBooks(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	var params dto.PopularBooksParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	books, err := h.reportingService.PopularBooks(c.Request.Context(), params.Limit, callerID)
	if err != nil {
		respondWithError(c, err, "Popular books")
		return
	}
	c.JSON(http.StatusOK, dto.ToPopularBooksResponse(books))
}
