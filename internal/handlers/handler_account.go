package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/planwerk/planwerk_app/internal/core/ports/services"
	"github.com/planwerk/planwerk_app/internal/dto"
)

// accountHandler handles HTTP requests against the transfer ledger.
type accountHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newAccountHandler(ls portssvc.LedgerSvcFacade) *accountHandler {
	return &accountHandler{ledgerService: ls}
}

// registerAccountRoutes registers routes for account balances and
// statements.
func registerAccountRoutes(rg *gin.RouterGroup, ls portssvc.LedgerSvcFacade) {
	h := newAccountHandler(ls)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("/:id/balance", h.getBalance)
		accounts.GET("/:id/transfers", h.listTransfers)
	}

	rg.GET("/ledger/check", h.checkLedger)
}

func (h *accountHandler) getBalance(c *gin.Context) {
	accountID := c.Param("id")

	balance, err := h.ledgerService.AccountBalance(c.Request.Context(), accountID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AccountBalanceResponse{
		AccountID: accountID,
		Balance:   balance,
	})
}

func (h *accountHandler) listTransfers(c *gin.Context) {
	var params dto.ListTransfersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	transfers, err := h.ledgerService.AccountStatement(c.Request.Context(), c.Param("id"), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransferResponses(transfers))
}

func (h *accountHandler) checkLedger(c *gin.Context) {
	if err := h.ledgerService.CheckGlobalBalance(c.Request.Context()); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"balanced": true})
}
