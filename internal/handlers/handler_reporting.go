package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/shiftbook/shift_cash_app/internal/core/ports/services"
	"github.com/shiftbook/shift_cash_app/internal/dto"
	"github.com/shiftbook/shift_cash_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/daily-summary", h.getDailySummary)
		reports.GET("/expense-heads", h.getExpenseHeadTotals)
		reports.GET("/expenses", h.getExpensesReport)
		reports.GET("/sales", h.getSalesSummary)
		reports.GET("/withdrawals", h.getWithdrawalsReport)
		reports.GET("/payments", h.getPaymentsReport)
	}
}

// parseRange pulls the required start and end query dates. The bool return
// is false when an error response has already been written.
func parseRange(c *gin.Context) (time.Time, time.Time, bool) {
	start, err := time.Parse(dto.DateOnly, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing start date, expected YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse(dto.DateOnly, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing end date, expected YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "End date precedes start date"})
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// getDailySummary godoc
// @Summary Get the daily summary
// @Description Aggregates sales, expenses, withdrawals and vendor payments for one date across its shifts
// @Tags reports
// @Produce  json
// @Param   date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.DailySummaryResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Failed to build daily summary"
// @Router /reports/daily-summary [get]
func (h *reportingHandler) getDailySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date, err := time.Parse(dto.DateOnly, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing date, expected YYYY-MM-DD"})
		return
	}

	summary, err := h.reportingService.DailySummary(c.Request.Context(), date)
	if err != nil {
		logger.Error("Failed to build daily summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build daily summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDailySummaryResponse(summary))
}

// getExpenseHeadTotals godoc
// @Summary Get expense totals per head
// @Tags reports
// @Produce  json
// @Param   start query string true "Start date (YYYY-MM-DD)"
// @Param   end query string true "End date (YYYY-MM-DD)"
// @Success 200 {array} dto.ExpenseHeadTotalResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /reports/expense-heads [get]
func (h *reportingHandler) getExpenseHeadTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	start, end, ok := parseRange(c)
	if !ok {
		return
	}

	totals, err := h.reportingService.ExpenseHeadTotals(c.Request.Context(), start, end)
	if err != nil {
		logger.Error("Failed to build expense head totals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListExpenseHeadTotalResponse(totals))
}

// getExpensesReport godoc
// @Summary Get the detailed expense report
// @Tags reports
// @Produce  json
// @Param   start query string true "Start date (YYYY-MM-DD)"
// @Param   end query string true "End date (YYYY-MM-DD)"
// @Success 200 {array} dto.ExpenseReportRowResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /reports/expenses [get]
func (h *reportingHandler) getExpensesReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	start, end, ok := parseRange(c)
	if !ok {
		return
	}

	rows, err := h.reportingService.ExpensesReport(c.Request.Context(), start, end)
	if err != nil {
		logger.Error("Failed to build expenses report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListExpenseReportRowResponse(rows))
}

// getSalesSummary godoc
// @Summary Get per-date sales totals
// @Tags reports
// @Produce  json
// @Param   start query string true "Start date (YYYY-MM-DD)"
// @Param   end query string true "End date (YYYY-MM-DD)"
// @Success 200 {array} dto.SalesSummaryRowResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /reports/sales [get]
func (h *reportingHandler) getSalesSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	start, end, ok := parseRange(c)
	if !ok {
		return
	}

	rows, err := h.reportingService.SalesSummary(c.Request.Context(), start, end)
	if err != nil {
		logger.Error("Failed to build sales summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListSalesSummaryRowResponse(rows))
}

// getWithdrawalsReport godoc
// @Summary Get the withdrawal report
// @Tags reports
// @Produce  json
// @Param   start query string true "Start date (YYYY-MM-DD)"
// @Param   end query string true "End date (YYYY-MM-DD)"
// @Success 200 {array} dto.WithdrawalReportRowResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /reports/withdrawals [get]
func (h *reportingHandler) getWithdrawalsReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	start, end, ok := parseRange(c)
	if !ok {
		return
	}

	rows, err := h.reportingService.WithdrawalsReport(c.Request.Context(), start, end)
	if err != nil {
		logger.Error("Failed to build withdrawals report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListWithdrawalReportRowResponse(rows))
}

// getPaymentsReport godoc
// @Summary Get the vendor payment report
// @Tags reports
// @Produce  json
// @Param   start query string true "Start date (YYYY-MM-DD)"
// @Param   end query string true "End date (YYYY-MM-DD)"
// @Success 200 {array} dto.PaymentReportRowResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /reports/payments [get]
func (h *reportingHandler) getPaymentsReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	start, end, ok := parseRange(c)
	if !ok {
		return
	}

	rows, err := h.reportingService.PaymentsReport(c.Request.Context(), start, end)
	if err != nil {
		logger.Error("Failed to build payments report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPaymentReportRowResponse(rows))
}
