package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/shiftbook/shift_cash_app/internal/apperrors"
	portssvc "github.com/shiftbook/shift_cash_app/internal/core/ports/services"
	"github.com/shiftbook/shift_cash_app/internal/dto"
	"github.com/shiftbook/shift_cash_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ownerLedgerHandler handles HTTP requests for the owner ledger.
type ownerLedgerHandler struct {
	ledgerService portssvc.OwnerLedgerSvcFacade
}

// newOwnerLedgerHandler creates a new ownerLedgerHandler.
func newOwnerLedgerHandler(ls portssvc.OwnerLedgerSvcFacade) *ownerLedgerHandler {
	return &ownerLedgerHandler{
		ledgerService: ls,
	}
}

// registerOwnerLedgerRoutes registers routes for the owner ledger.
func registerOwnerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.OwnerLedgerSvcFacade) {
	h := newOwnerLedgerHandler(ledgerService)

	ledger := rg.Group("/owner-ledger")
	{
		ledger.POST("", h.recordEntry)
		ledger.GET("", h.listEntries)
	}
}

// recordEntry godoc
// @Summary Record a manual owner ledger entry
// @Description Appends a signed entry: positive when the owner puts cash in, negative when the owner takes cash out
// @Tags owner-ledger
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateOwnerLedgerEntryRequest true "Entry details"
// @Success 201 {object} dto.OwnerLedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to record entry"
// @Router /owner-ledger [post]
func (h *ownerLedgerHandler) recordEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateOwnerLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.ledgerService.RecordEntry(c.Request.Context(), req.Amount, req.Description, req.ShiftID, time.Now())
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record owner ledger entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record entry"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToOwnerLedgerEntryResponse(entry))
}

// listEntries godoc
// @Summary Get the owner ledger
// @Description Retrieves every owner ledger entry in transaction-date order with running balances and the closing balance
// @Tags owner-ledger
// @Produce  json
// @Success 200 {object} dto.OwnerLedgerResponse
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Router /owner-ledger [get]
func (h *ownerLedgerHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	lines, err := h.ledgerService.ListEntries(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list owner ledger entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOwnerLedgerResponse(lines))
}
