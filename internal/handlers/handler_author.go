package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/library_management_app/internal/core/ports/services"
	"github.com/SscSPs/library_management_app/internal/dto"
	"github.com/SscSPs/library_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authorHandler handles HTTP requests related to authors.
type authorHandler struct {
	authorService portssvc.AuthorSvcFacade
}

func newAuthorHandler(as portssvc.AuthorSvcFacade) *authorHandler {
	return &authorHandler{authorService: as}
}

// registerAuthorRoutes registers all author routes. Every route is librarian only.
func registerAuthorRoutes(rg *gin.RouterGroup, authorService portssvc.AuthorSvcFacade) {
	h := newAuthorHandler(authorService)

	authors := rg.Group("/authors")
	{
		authors.GET("", h.listAuthors)
		authors.POST("", h.createAuthor)
		authors.GET("/:id", h.getAuthor)
		authors.PUT("/:id", h.updateAuthor)
		authors.DELETE("/:id", h.deleteAuthor)
	}
}

// createAuthor godoc
// @Summary Create an author
// @Tags authors
// @Accept json
// @Produce json
// @Param author body dto.CreateAuthorRequest true "Author details"
// @Success 201 {object} dto.AuthorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /authors [post]
func (h *authorHandler) createAuthor(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	var req dto.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	author, err := h.authorService.CreateAuthor(c.Request.Context(), req, callerID)
	if err != nil {
		respondWithError(c, err, "Create author")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Author created", slog.String("author_id", author.AuthorID))
	c.JSON(http.StatusCreated, dto.ToAuthorResponse(author))
}

// getAuthor godoc
// @Summary Get an author
// @Tags authors
// @Produce json
// @Param id path string true "Author ID"
// @Success 200 {object} dto.AuthorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /authors/{id} [get]
func (h *authorHandler) getAuthor(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	author, err := h.authorService.GetAuthor(c.Request.Context(), c.Param("id"), callerID)
	if err != nil {
		respondWithError(c, err, "Get author")
		return
	}
	c.JSON(http.StatusOK, dto.ToAuthorResponse(author))
}

// listAuthors godoc
// @Summary List authors
// @Tags authors
// @Produce json
// @Param nationality query string false "Filter by nationality"
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListAuthorsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /authors [get]
func (h *authorHandler) listAuthors(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	var params dto.ListAuthorsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	authors, err := h.authorService.ListAuthors(c.Request.Context(), params, callerID)
	if err != nil {
		respondWithError(c, err, "List authors")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAuthorsResponse(authors))
}

// updateAuthor godoc
// @Summary Update an author
// @Tags authors
// @Accept json
// @Produce json
// @Param id path string true "Author ID"
// @Param author body dto.UpdateAuthorRequest true "Fields to change"
// @Success 200 {object} dto.AuthorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /authors/{id} [put]
func (h *authorHandler) updateAuthor(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	var req dto.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	author, err := h.authorService.UpdateAuthor(c.Request.Context(), c.Param("id"), req, callerID)
	if err != nil {
		respondWithError(c, err, "Update author")
		return
	}
	c.JSON(http.StatusOK, dto.ToAuthorResponse(author))
}

// deleteAuthor godoc
// @Summary Delete an author
// @Description Fails with 409 while books still reference the author.
// @Tags authors
// @Param id path string true "Author ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /authors/{id} [delete]
func (h *authorHandler) deleteAuthor(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	if err := h.authorService.DeleteAuthor(c.Request.Context(), c.Param("id"), callerID); err != nil {
		respondWithError(c, err, "Delete author")
		return
	}
	c.Status(http.StatusNoContent)
}
