package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/shiftbook/shift_cash_app/internal/apperrors"
	portssvc "github.com/shiftbook/shift_cash_app/internal/core/ports/services"
	"github.com/shiftbook/shift_cash_app/internal/dto"
	"github.com/shiftbook/shift_cash_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles HTTP requests related to expense heads and expenses.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

// newExpenseHandler creates a new expenseHandler.
func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{
		expenseService: es,
	}
}

// registerExpenseRoutes registers routes for expense heads and per-shift expenses.
func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)

	heads := rg.Group("/expense-heads")
	{
		heads.POST("", h.createExpenseHead)
		heads.GET("", h.listExpenseHeads)
	}

	shifts := rg.Group("/shifts/:shiftID")
	{
		shifts.POST("/expenses", h.addExpense)
		shifts.GET("/expenses", h.listExpenses)
	}
}

// createExpenseHead godoc
// @Summary Create an expense head
// @Description Adds a new named expense category
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   head body dto.CreateExpenseHeadRequest true "Expense head details"
// @Success 201 {object} dto.ExpenseHeadResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Head name already exists"
// @Failure 500 {object} map[string]string "Failed to create expense head"
// @Router /expense-heads [post]
func (h *expenseHandler) createExpenseHead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseHeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	head, err := h.expenseService.CreateExpenseHead(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Expense head '" + req.Name + "' already exists"})
		} else {
			logger.Error("Failed to create expense head", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create expense head"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToExpenseHeadResponse(head))
}

// listExpenseHeads godoc
// @Summary List expense heads
// @Tags expenses
// @Produce  json
// @Success 200 {array} dto.ExpenseHeadResponse
// @Failure 500 {object} map[string]string "Failed to list expense heads"
// @Router /expense-heads [get]
func (h *expenseHandler) listExpenseHeads(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	heads, err := h.expenseService.ListExpenseHeads(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list expense heads", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list expense heads"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListExpenseHeadResponse(heads))
}

// addExpense godoc
// @Summary Record an expense against a shift
// @Description Records an expense and recomputes the shift's expected cash; owner-pocket expenses also append an owner ledger entry
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   shiftID path string true "Shift ID"
// @Param   expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Shift or head not found"
// @Failure 409 {object} map[string]string "Shift already closed"
// @Failure 500 {object} map[string]string "Failed to record expense"
// @Router /shifts/{shiftID}/expenses [post]
func (h *expenseHandler) addExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("shiftID")
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	expense, err := h.expenseService.AddExpense(c.Request.Context(), shiftID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrShiftClosed):
			c.JSON(http.StatusConflict, gin.H{"error": "Shift is already closed"})
		default:
			logger.Error("Failed to record expense", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record expense"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// listExpenses godoc
// @Summary List a shift's expenses
// @Tags expenses
// @Produce  json
// @Param   shiftID path string true "Shift ID"
// @Success 200 {array} dto.ExpenseResponse
// @Failure 500 {object} map[string]string "Failed to list expenses"
// @Router /shifts/{shiftID}/expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("shiftID")

	expenses, err := h.expenseService.ListExpensesByShift(c.Request.Context(), shiftID)
	if err != nil {
		logger.Error("Failed to list expenses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list expenses"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListExpenseResponse(expenses))
}
