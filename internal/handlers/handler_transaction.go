package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/library_management_app/internal/core/ports/services"
	"github.com/SscSPs/library_management_app/internal/dto"
	"github.com/SscSPs/library_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler exposes the borrowing workflow and the ledger.
type transactionHandler struct {
	borrowingService portssvc.BorrowingSvcFacade
	policy           portssvc.PolicyProvider
}

func newTransactionHandler(bs portssvc.BorrowingSvcFacade, policy portssvc.PolicyProvider) *transactionHandler {
	return &transactionHandler{borrowingService: bs, policy: policy}
}

func registerTransactionRoutes(rg *gin.RouterGroup, borrowingService portssvc.BorrowingSvcFacade, policy portssvc.PolicyProvider) {
	h := newTransactionHandler(borrowingService, policy)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.GET("/overdue", h.listOverdue)
		transactions.POST("/issue-book", h.issueBook)
		transactions.GET("/:id", h.getTransaction)
		transactions.POST("/:id/process-return", h.processReturn)
		transactions.POST("/:id/collect-fine", h.collectFine)
	}
}

// issueBook godoc
// @Summary Issue a book copy to a member
// @Description Checks member status, copy availability, the borrow limit and duplicate titles, then records the transaction.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.IssueBookRequest true "Copy barcode and member"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Borrowing rule violated"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Member or copy not found"
// @Failure 409 {object} ErrorResponse "Concurrent update"
// @Security BearerAuth
// @Router /transactions/issue-book [post]
func (h *transactionHandler) issueBook(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	var req dto.IssueBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ctx := c.Request.Context()
	txn, err := h.borrowingService.IssueBook(ctx, req.Barcode, req.MemberID, callerID)
	if err != nil {
		respondWithError(c, err, "Issue book")
		return
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	logger.Info("Book issued",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("member_id", req.MemberID))

	// The loan is committed at this point. A failed re-read must not turn it into an error.
	resp, err := h.borrowingService.GetTransaction(ctx, txn.TransactionID, callerID)
	if err != nil {
		logger.Warn("Re-read of issued transaction failed, answering from the committed row",
			slog.String("transaction_id", txn.TransactionID),
			slog.String("error", err.Error()))
		fallback := dto.ToTransactionResponse(txn, txn.CreatedAt, h.policy.Current())
		resp = &fallback
	}
	c.JSON(http.StatusCreated, resp)
}

// processReturn godoc
// @Summary Process the return of a borrowed copy
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.ReturnResponse
// @Failure 400 {object} ErrorResponse "Already returned"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id}/process-return [post]
func (h *transactionHandler) processReturn(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	result, err := h.borrowingService.ProcessReturn(c.Request.Context(), c.Param("id"), callerID)
	if err != nil {
		respondWithError(c, err, "Process return")
		return
	}
	c.JSON(http.StatusOK, dto.ToReturnResponse(result))
}

// collectFine godoc
// @Summary Mark a transaction's fine as collected
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.CollectFineResponse
// @Failure 400 {object} ErrorResponse "No fine to collect"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id}/collect-fine [post]
func (h *transactionHandler) collectFine(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	txn, err := h.borrowingService.CollectFine(c.Request.Context(), c.Param("id"), callerID)
	if err != nil {
		respondWithError(c, err, "Collect fine")
		return
	}
	c.JSON(http.StatusOK, dto.ToCollectFineResponse(txn))
}

// getTransaction godoc
// @Summary Get a transaction
// @Description Members can only read their own transactions.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	resp, err := h.borrowingService.GetTransaction(c.Request.Context(), c.Param("id"), callerID)
	if err != nil {
		respondWithError(c, err, "Get transaction")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// listTransactions godoc
// @Summary List transactions
// @Description Newest first. Members only see their own; pass next_token from the previous page to continue.
// @Tags transactions
// @Produce json
// @Param member_id query string false "Filter by member (librarians)"
// @Param active_only query bool false "Only open transactions"
// @Param overdue_only query bool false "Only overdue open transactions"
// @Param fine_collected query bool false "Filter by fine collection"
// @Param limit query int false "Page size" default(20)
// @Param next_token query string false "Opaque page token"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.borrowingService.ListTransactions(c.Request.Context(), params, callerID)
	if err != nil {
		respondWithError(c, err, "List transactions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// listOverdue godoc
// @Summary List overdue transactions
// @Description Open transactions past the fine-free period, oldest first.
// @Tags transactions
// @Produce json
// @Success 200 {array} dto.TransactionResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/overdue [get]
func (h *transactionHandler) listOverdue(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	overdue, err := h.borrowingService.ListOverdue(c.Request.Context(), callerID)
	if err != nil {
		respondWithError(c, err, "List overdue transactions")
		return
	}
	c.JSON(http.StatusOK, overdue)
}
