package handlers

import (
	"context"
	"net/http"

	"github.com/SscSPs/library_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/library_management_app/internal/core/ports/services"
	"github.com/SscSPs/library_management_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// bookCopyHandler manages physical copies. Every route is librarian only.
type bookCopyHandler struct {
	copyService portssvc.BookCopySvcFacade
}

func newBookCopyHandler(cs portssvc.BookCopySvcFacade) *bookCopyHandler {
	return &bookCopyHandler{copyService: cs}
}

func registerBookCopyRoutes(rg *gin.RouterGroup, copyService portssvc.BookCopySvcFacade) {
	h := newBookCopyHandler(copyService)

	copies := rg.Group("/book-copies")
	{
		copies.GET("", h.listCopies)
		copies.POST("", h.createCopy)
		copies.GET("/by-barcode", h.getCopyByBarcode)
		copies.GET("/:id", h.getCopy)
		copies.POST("/:id/mark-maintenance", h.changeStatus(copyService.MarkMaintenance, "Mark copy maintenance"))
		copies.POST("/:id/mark-available", h.changeStatus(copyService.MarkAvailable, "Mark copy available"))
		copies.POST("/:id/mark-lost", h.changeStatus(copyService.MarkLost, "Mark copy lost"))
	}
}

// createCopy godoc
// @Summary Add a copy of a book
// @Tags book-copies
// @Accept json
// @Produce json
// @Param copy body dto.CreateBookCopyRequest true "Copy details"
// @Success 201 {object} dto.BookCopyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Barcode already in use"
// @Security BearerAuth
// @Router /book-copies [post]
func (h *bookCopyHandler) createCopy(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	var req dto.CreateBookCopyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	bookCopy, err := h.copyService.CreateCopy(c.Request.Context(), req, callerID)
	if err != nil {
		respondWithError(c, err, "Create book copy")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBookCopyResponse(bookCopy))
}

// getCopy godoc
// @Summary Get a copy
// @Tags book-copies
// @Produce json
// @Param id path string true "Copy ID"
// @Success 200 {object} dto.BookCopyResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /book-copies/{id} [get]
func (h *bookCopyHandler) getCopy(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	bookCopy, err := h.copyService.GetCopy(c.Request.Context(), c.Param("id"), callerID)
	if err != nil {
		respondWithError(c, err, "Get book copy")
		return
	}
	c.JSON(http.StatusOK, dto.ToBookCopyResponse(bookCopy))
}

// getCopyByBarcode godoc
// @Summary Look up a copy by barcode
// @Tags book-copies
// @Produce json
// @Param barcode query string true "Barcode"
// @Success 200 {object} dto.BookCopyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /book-copies/by-barcode [get]
func (h *bookCopyHandler) getCopyByBarcode(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	bookCopy, err := h.copyService.GetCopyByBarcode(c.Request.Context(), c.Query("barcode"), callerID)
	if err != nil {
		respondWithError(c, err, "Get book copy by barcode")
		return
	}
	c.JSON(http.StatusOK, dto.ToBookCopyResponse(bookCopy))
}

// listCopies godoc
// @Summary List copies
// @Tags book-copies
// @Produce json
// @Param book_id query string false "Filter by book"
// @Param status query string false "Filter by status" Enums(available, borrowed, lost, maintenance)
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListBookCopiesResponse
// @Security BearerAuth
// @Router /book-copies [get]
func (h *bookCopyHandler) listCopies(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	var params dto.ListBookCopiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	copies, err := h.copyService.ListCopies(c.Request.Context(), params, callerID)
	if err != nil {
		respondWithError(c, err, "List book copies")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBookCopiesResponse(copies))
}

// changeStatus godoc
// @Summary Change a copy's status
// @Description mark-maintenance, mark-available and mark-lost. Borrowed copies only become available through a return.
// @Tags book-copies
// @Produce json
// @Param id path string true "Copy ID"
// @Success 200 {object} dto.BookCopyResponse
// @Failure 400 {object} ErrorResponse "Transition not allowed"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /book-copies/{id}/mark-lost [post]
func (h *bookCopyHandler) changeStatus(
	transition func(ctx context.Context, copyID string, callerID string) (*domain.BookCopy, error),
	action string,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := requireCaller(c)
		if !ok {
			return
		}
		bookCopy, err := transition(c.Request.Context(), c.Param("id"), callerID)
		if err != nil {
			respondWithError(c, err, action)
			return
		}
		c.JSON(http.StatusOK, dto.ToBookCopyResponse(bookCopy))
	}
}
