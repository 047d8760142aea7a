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

// vendorHandler handles HTTP requests related to vendors and vendor-facing
// shift movements.
type vendorHandler struct {
	vendorService portssvc.VendorSvcFacade
}

// newVendorHandler creates a new vendorHandler.
func newVendorHandler(vs portssvc.VendorSvcFacade) *vendorHandler {
	return &vendorHandler{
		vendorService: vs,
	}
}

// registerVendorRoutes registers vendor management, ledger and per-shift
// transaction routes.
func registerVendorRoutes(rg *gin.RouterGroup, vendorService portssvc.VendorSvcFacade) {
	h := newVendorHandler(vendorService)

	vendors := rg.Group("/vendors")
	{
		vendors.POST("", h.createVendor)
		vendors.GET("", h.listVendors)
		vendors.GET("/:vendorID/ledger", h.getVendorLedger)
	}

	shifts := rg.Group("/shifts/:shiftID")
	{
		shifts.POST("/purchases", h.addPurchase)
		shifts.GET("/purchases", h.listPurchases)
		shifts.POST("/payments", h.addVendorPayment)
		shifts.GET("/payments", h.listVendorPayments)
		shifts.POST("/returns", h.addReturn)
		shifts.GET("/returns", h.listReturns)
	}
}

// createVendor godoc
// @Summary Create a vendor
// @Description Adds a new vendor with its signed opening balance
// @Tags vendors
// @Accept  json
// @Produce  json
// @Param   vendor body dto.CreateVendorRequest true "Vendor details"
// @Success 201 {object} dto.VendorResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create vendor"
// @Router /vendors [post]
func (h *vendorHandler) createVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create vendor", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vendor"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToVendorResponse(vendor))
}

// listVendors godoc
// @Summary List vendors
// @Tags vendors
// @Produce  json
// @Success 200 {array} dto.VendorResponse
// @Failure 500 {object} map[string]string "Failed to list vendors"
// @Router /vendors [get]
func (h *vendorHandler) listVendors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	vendors, err := h.vendorService.ListVendors(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list vendors", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list vendors"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListVendorResponse(vendors))
}

// getVendorLedger godoc
// @Summary Get a vendor's statement
// @Description Rebuilds the vendor's running-balance statement over [start, end] from raw transaction history
// @Tags vendors
// @Produce  json
// @Param   vendorID path string true "Vendor ID"
// @Param   start query string true "Start date (YYYY-MM-DD)"
// @Param   end query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.VendorLedgerResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Failure 404 {object} map[string]string "Vendor not found"
// @Failure 500 {object} map[string]string "Failed to build vendor ledger"
// @Router /vendors/{vendorID}/ledger [get]
func (h *vendorHandler) getVendorLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vendorID := c.Param("vendorID")

	start, err := time.Parse(dto.DateOnly, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing start date, expected YYYY-MM-DD"})
		return
	}
	end, err := time.Parse(dto.DateOnly, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing end date, expected YYYY-MM-DD"})
		return
	}
	// Make the end bound inclusive of the whole day.
	end = end.Add(24*time.Hour - time.Nanosecond)

	ledger, err := h.vendorService.BuildVendorLedger(c.Request.Context(), vendorID, start, end)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		default:
			logger.Error("Failed to build vendor ledger", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build vendor ledger"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToVendorLedgerResponse(ledger))
}

// addPurchase godoc
// @Summary Record a purchase against a shift
// @Description Records goods bought from a vendor; sales-cash purchases lower expected cash, owner-pocket ones append an owner ledger entry
// @Tags vendors
// @Accept  json
// @Produce  json
// @Param   shiftID path string true "Shift ID"
// @Param   purchase body dto.CreatePurchaseRequest true "Purchase details"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Shift or vendor not found"
// @Failure 409 {object} map[string]string "Shift already closed"
// @Failure 500 {object} map[string]string "Failed to record purchase"
// @Router /shifts/{shiftID}/purchases [post]
func (h *vendorHandler) addPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("shiftID")
	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	purchase, err := h.vendorService.AddPurchase(c.Request.Context(), shiftID, req)
	if err != nil {
		h.respondTransactionError(c, logger, err, "Failed to record purchase")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPurchaseResponse(purchase))
}

// listPurchases godoc
// @Summary List a shift's purchases
// @Tags vendors
// @Produce  json
// @Param   shiftID path string true "Shift ID"
// @Success 200 {array} dto.PurchaseResponse
// @Failure 500 {object} map[string]string "Failed to list purchases"
// @Router /shifts/{shiftID}/purchases [get]
func (h *vendorHandler) listPurchases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("shiftID")

	purchases, err := h.vendorService.ListPurchasesByShift(c.Request.Context(), shiftID)
	if err != nil {
		logger.Error("Failed to list purchases", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list purchases"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPurchaseResponse(purchases))
}

// addVendorPayment godoc
// @Summary Record a vendor payment against a shift
// @Description Records the store paying down vendor debt; sales-cash payments lower expected cash
// @Tags vendors
// @Accept  json
// @Produce  json
// @Param   shiftID path string true "Shift ID"
// @Param   payment body dto.CreateVendorPaymentRequest true "Payment details"
// @Success 201 {object} dto.VendorPaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Shift or vendor not found"
// @Failure 409 {object} map[string]string "Shift already closed"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Router /shifts/{shiftID}/payments [post]
func (h *vendorHandler) addVendorPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("shiftID")
	var req dto.CreateVendorPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.vendorService.AddVendorPayment(c.Request.Context(), shiftID, req)
	if err != nil {
		h.respondTransactionError(c, logger, err, "Failed to record payment")
		return
	}

	c.JSON(http.StatusCreated, dto.ToVendorPaymentResponse(payment))
}

// listVendorPayments godoc
// @Summary List a shift's vendor payments
// @Tags vendors
// @Produce  json
// @Param   shiftID path string true "Shift ID"
// @Success 200 {array} dto.VendorPaymentResponse
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Router /shifts/{shiftID}/payments [get]
func (h *vendorHandler) listVendorPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("shiftID")

	payments, err := h.vendorService.ListPaymentsByShift(c.Request.Context(), shiftID)
	if err != nil {
		logger.Error("Failed to list payments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListVendorPaymentResponse(payments))
}

// addReturn godoc
// @Summary Record a return against a shift
// @Description Records goods handed back to a vendor; returns lower the vendor balance and never move cash
// @Tags vendors
// @Accept  json
// @Produce  json
// @Param   shiftID path string true "Shift ID"
// @Param   return body dto.CreateReturnRequest true "Return details"
// @Success 201 {object} dto.ReturnResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Shift or vendor not found"
// @Failure 409 {object} map[string]string "Shift already closed"
// @Failure 500 {object} map[string]string "Failed to record return"
// @Router /shifts/{shiftID}/returns [post]
func (h *vendorHandler) addReturn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("shiftID")
	var req dto.CreateReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ret, err := h.vendorService.AddReturn(c.Request.Context(), shiftID, req)
	if err != nil {
		h.respondTransactionError(c, logger, err, "Failed to record return")
		return
	}

	c.JSON(http.StatusCreated, dto.ToReturnResponse(ret))
}

// listReturns godoc
// @Summary List a shift's returns
// @Tags vendors
// @Produce  json
// @Param   shiftID path string true "Shift ID"
// @Success 200 {array} dto.ReturnResponse
// @Failure 500 {object} map[string]string "Failed to list returns"
// @Router /shifts/{shiftID}/returns [get]
func (h *vendorHandler) listReturns(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("shiftID")

	returns, err := h.vendorService.ListReturnsByShift(c.Request.Context(), shiftID)
	if err != nil {
		logger.Error("Failed to list returns", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list returns"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListReturnResponse(returns))
}

// respondTransactionError maps service errors from shift-scoped vendor
// transactions onto HTTP statuses.
func (h *vendorHandler) respondTransactionError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrShiftClosed):
		c.JSON(http.StatusConflict, gin.H{"error": "Shift is already closed"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
