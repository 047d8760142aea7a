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

// shiftHandler handles HTTP requests related to shifts and withdrawals.
type shiftHandler struct {
	shiftService portssvc.ShiftSvcFacade
}

// newShiftHandler creates a new shiftHandler.
func newShiftHandler(ss portssvc.ShiftSvcFacade) *shiftHandler {
	return &shiftHandler{
		shiftService: ss,
	}
}

// RegisterShiftRoutes registers routes related to shifts.
func RegisterShiftRoutes(rg *gin.RouterGroup, shiftService portssvc.ShiftSvcFacade) {
	h := newShiftHandler(shiftService)

	shifts := rg.Group("/shifts")
	{
		shifts.POST("", h.getOrCreateShift)
		shifts.GET("", h.listShiftsByDate)
		shifts.GET("/:shiftID", h.getShift)
		shifts.GET("/:shiftID/expected-cash", h.getExpectedCash)
		shifts.PUT("/:shiftID/sale", h.updateTotalSale)
		shifts.POST("/:shiftID/close", h.closeShift)
		shifts.POST("/:shiftID/withdrawals", h.addWithdrawal)
		shifts.GET("/:shiftID/withdrawals", h.listWithdrawals)
	}
}

// getOrCreateShift godoc
// @Summary Get or create a shift
// @Description Returns the shift for the given date and name, creating it with carried-forward opening cash when it does not exist yet
// @Tags shifts
// @Accept  json
// @Produce  json
// @Param   shift body dto.GetOrCreateShiftRequest true "Shift selector"
// @Success 200 {object} dto.ShiftResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to get or create shift"
// @Router /shifts [post]
func (h *shiftHandler) getOrCreateShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GetOrCreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for GetOrCreateShift", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	date, err := time.Parse(dto.DateOnly, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	shift, err := h.shiftService.GetOrCreateShift(c.Request.Context(), date, req.ShiftName)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to get or create shift", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get or create shift"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// listShiftsByDate godoc
// @Summary List shifts on a date
// @Description Retrieves every shift recorded on a date in within-day order
// @Tags shifts
// @Produce  json
// @Param   date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} dto.ShiftResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Failed to list shifts"
// @Router /shifts [get]
func (h *shiftHandler) listShiftsByDate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date, err := time.Parse(dto.DateOnly, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing date, expected YYYY-MM-DD"})
		return
	}

	shifts, err := h.shiftService.ListShiftsByDate(c.Request.Context(), date)
	if err != nil {
		logger.Error("Failed to list shifts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list shifts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListShiftResponse(shifts))
}

// getShift godoc
// @Summary Get a shift by ID
// @Tags shifts
// @Produce  json
// @Param   shiftID path string true "Shift ID"
// @Success 200 {object} dto.ShiftResponse
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 500 {object} map[string]string "Failed to retrieve shift"
// @Router /shifts/{shiftID} [get]
func (h *shiftHandler) getShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("shiftID")

	shift, err := h.shiftService.GetShiftByID(c.Request.Context(), shiftID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		} else {
			logger.Error("Failed to get shift", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve shift"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// getExpectedCash godoc
// @Summary Calculate expected cash for a shift
// @Description Computes the expected till amount from recorded movements without persisting it
// @Tags shifts
// @Produce  json
// @Param   shiftID path string true "Shift ID"
// @Success 200 {object} dto.ExpectedCashResponse
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 500 {object} map[string]string "Failed to calculate expected cash"
// @Router /shifts/{shiftID}/expected-cash [get]
func (h *shiftHandler) getExpectedCash(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("shiftID")

	expected, err := h.shiftService.CalculateExpectedCash(c.Request.Context(), shiftID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		} else {
			logger.Error("Failed to calculate expected cash", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate expected cash"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ExpectedCashResponse{ShiftID: shiftID, ExpectedCash: expected})
}

// updateTotalSale godoc
// @Summary Update a shift's total sale
// @Description Replaces the recorded total sale and recomputes expected cash
// @Tags shifts
// @Accept  json
// @Produce  json
// @Param   shiftID path string true "Shift ID"
// @Param   sale body dto.UpdateTotalSaleRequest true "New total sale"
// @Success 200 {object} dto.ShiftResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 409 {object} map[string]string "Shift already closed"
// @Failure 500 {object} map[string]string "Failed to update total sale"
// @Router /shifts/{shiftID}/sale [put]
func (h *shiftHandler) updateTotalSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("shiftID")
	var req dto.UpdateTotalSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	shift, err := h.shiftService.UpdateTotalSale(c.Request.Context(), shiftID, req.TotalSale)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		case errors.Is(err, apperrors.ErrShiftClosed):
			c.JSON(http.StatusConflict, gin.H{"error": "Shift is already closed"})
		default:
			logger.Error("Failed to update total sale", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update total sale"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// closeShift godoc
// @Summary Close a shift
// @Description Records the counted closing cash and transitions the shift to closed, auto-recording any shortage as a Cash Shortage expense
// @Tags shifts
// @Accept  json
// @Produce  json
// @Param   shiftID path string true "Shift ID"
// @Param   close body dto.CloseShiftRequest true "Counted closing cash"
// @Success 200 {object} dto.ShiftResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 409 {object} map[string]string "Shift already closed"
// @Failure 500 {object} map[string]string "Failed to close shift"
// @Router /shifts/{shiftID}/close [post]
func (h *shiftHandler) closeShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("shiftID")
	var req dto.CloseShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	shift, err := h.shiftService.CloseShift(c.Request.Context(), shiftID, req.ClosingCash)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		case errors.Is(err, apperrors.ErrShiftClosed):
			c.JSON(http.StatusConflict, gin.H{"error": "Shift is already closed"})
		case errors.Is(err, apperrors.ErrConfiguration):
			logger.Error("Shift close blocked by configuration", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to close shift", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close shift"})
		}
		return
	}

	logger.Info("Shift closed", slog.String("shift_id", shiftID))
	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// addWithdrawal godoc
// @Summary Record an owner withdrawal
// @Description Records the owner taking cash from the till; lowers expected cash and appends a negative owner ledger entry
// @Tags shifts
// @Accept  json
// @Produce  json
// @Param   shiftID path string true "Shift ID"
// @Param   withdrawal body dto.CreateWithdrawalRequest true "Withdrawal details"
// @Success 201 {object} dto.WithdrawalResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 409 {object} map[string]string "Shift already closed"
// @Failure 500 {object} map[string]string "Failed to record withdrawal"
// @Router /shifts/{shiftID}/withdrawals [post]
func (h *shiftHandler) addWithdrawal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("shiftID")
	var req dto.CreateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	withdrawal, err := h.shiftService.AddWithdrawal(c.Request.Context(), shiftID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		case errors.Is(err, apperrors.ErrShiftClosed):
			c.JSON(http.StatusConflict, gin.H{"error": "Shift is already closed"})
		default:
			logger.Error("Failed to record withdrawal", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record withdrawal"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToWithdrawalResponse(withdrawal))
}

// listWithdrawals godoc
// @Summary List a shift's withdrawals
// @Tags shifts
// @Produce  json
// @Param   shiftID path string true "Shift ID"
// @Success 200 {array} dto.WithdrawalResponse
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 500 {object} map[string]string "Failed to list withdrawals"
// @Router /shifts/{shiftID}/withdrawals [get]
func (h *shiftHandler) listWithdrawals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("shiftID")

	withdrawals, err := h.shiftService.ListWithdrawalsByShift(c.Request.Context(), shiftID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		} else {
			logger.Error("Failed to list withdrawals", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list withdrawals"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListWithdrawalResponse(withdrawals))
}
