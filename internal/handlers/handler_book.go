package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/library_management_app/internal/core/ports/services"
	"github.com/SscSPs/library_management_app/internal/dto"
	"github.com/SscSPs/library_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bookHandler serves the catalog. Reads are open to every active user.
type bookHandler struct {
	bookService portssvc.BookSvcFacade
}

func newBookHandler(bs portssvc.BookSvcFacade) *bookHandler {
	return &bookHandler{bookService: bs}
}

func registerBookRoutes(rg *gin.RouterGroup, bookService portssvc.BookSvcFacade) {
	h := newBookHandler(bookService)

	books := rg.Group("/books")
	{
		books.GET("", h.listBooks)
		books.POST("", h.createBook)
		books.GET("/:id", h.getBook)
		books.PUT("/:id", h.updateBook)
		books.GET("/:id/copies", h.listBookCopies)
		books.POST("/:id/archive", h.archiveBook)
		books.POST("/:id/unarchive", h.unarchiveBook)
	}
}

// createBook godoc
// @Summary Create a book
// @Tags books
// @Accept json
// @Produce json
// @Param book body dto.CreateBookRequest true "Book details"
// @Success 201 {object} dto.BookResponse
// @Failure 400 {object} ErrorResponse "Invalid input or unknown author"
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Duplicate ISBN"
// @Security BearerAuth
// @Router /books [post]
func (h *bookHandler) createBook(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	book, err := h.bookService.CreateBook(c.Request.Context(), req, callerID)
	if err != nil {
		respondWithError(c, err, "Create book")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Book created", slog.String("book_id", book.BookID))
	c.JSON(http.StatusCreated, dto.ToBookResponse(book))
}

// getBook godoc
// @Summary Get a book
// @Description Archived books are only visible to librarians.
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} dto.BookResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /books/{id} [get]
func (h *bookHandler) getBook(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	book, err := h.bookService.GetBook(c.Request.Context(), c.Param("id"), callerID)
	if err != nil {
		respondWithError(c, err, "Get book")
		return
	}
	c.JSON(http.StatusOK, dto.ToBookResponse(book))
}

// listBooks godoc
// @Summary List books
// @Tags books
// @Produce json
// @Param author_id query string false "Filter by author"
// @Param include_archived query bool false "Include archived books (librarians only)"
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListBooksResponse
// @Security BearerAuth
// @Router /books [get]
func (h *bookHandler) listBooks(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	var params dto.ListBooksParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	books, err := h.bookService.ListBooks(c.Request.Context(), params, callerID)
	if err != nil {
		respondWithError(c, err, "List books")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBooksResponse(books))
}

// updateBook godoc
// @Summary Update a book
// @Tags books
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Param book body dto.UpdateBookRequest true "Fields to change"
// @Success 200 {object} dto.BookResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /books/{id} [put]
func (h *bookHandler) updateBook(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	book, err := h.bookService.UpdateBook(c.Request.Context(), c.Param("id"), req, callerID)
	if err != nil {
		respondWithError(c, err, "Update book")
		return
	}
	c.JSON(http.StatusOK, dto.ToBookResponse(book))
}

// listBookCopies godoc
// @Summary List the copies of a book
// @Description Each copy carries its open transaction with due date and overdue flag.
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {array} dto.CopyWithLoanResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /books/{id}/copies [get]
func (h *bookHandler) listBookCopies(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	copies, err := h.bookService.ListBookCopies(c.Request.Context(), c.Param("id"), callerID)
	if err != nil {
		respondWithError(c, err, "List book copies")
		return
	}
	c.JSON(http.StatusOK, copies)
}

// archiveBook godoc
// @Summary Archive a book
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} dto.StatusResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /books/{id}/archive [post]
func (h *bookHandler) archiveBook(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	if err := h.bookService.ArchiveBook(c.Request.Context(), c.Param("id"), callerID); err != nil {
		respondWithError(c, err, "Archive book")
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "archived"})
}

// unarchiveBook godoc
// @Summary Unarchive a book
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} dto.StatusResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /books/{id}/unarchive [post]
func (h *bookHandler) unarchiveBook(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	if err := h.bookService.UnarchiveBook(c.Request.Context(), c.Param("id"), callerID); err != nil {
		respondWithError(c, err, "Unarchive book")
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "unarchived"})
}
