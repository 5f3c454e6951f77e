package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/middleware"
)

// reportingHandler handles HTTP requests related to financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
	forecastService  portssvc.ForecastService
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingService, fs portssvc.ForecastService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		forecastService:  fs,
	}
}

// registerReportingRoutes registers routes related to financial reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, forecastService portssvc.ForecastService) {
	h := newReportingHandler(reportingService, forecastService)

	reports := rg.Group("/reports")
	{
		reports.GET("/profit-loss", h.getProfitLoss)
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/profit-loss-ifrs", h.getProfitLossIFRS)
		reports.GET("/balance-sheet-ifrs", h.getBalanceSheetIFRS)
		reports.GET("/dashboard", h.getDashboard)
		reports.GET("/revenue-prediction", h.getRevenuePrediction)
	}
}

// getProfitLoss godoc
// @Summary Generate a profit and loss statement
// @Description Generates a profit and loss statement for a period with per-category breakdowns
// @Tags reports
// @Produce json
// @Param from query string true "Period start (YYYY-MM-DD)"
// @Param to query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.ProfitLossResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/profit-loss [get]
func (h *reportingHandler) getProfitLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.PeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid period parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period. Use from/to as YYYY-MM-DD"})
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), params.From, params.To)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to generate profit and loss report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		}
		return
	}

	logger.Info("Profit and loss report generated successfully")
	c.JSON(http.StatusOK, dto.ToProfitLossResponse(report))
}

// getBalanceSheet godoc
// @Summary Generate a balance sheet
// @Description Generates a balance sheet as of a specific date, with equity derived as assets minus liabilities
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	asOf, ok := bindAsOf(c, logger)
	if !ok {
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), asOf)
	if err != nil {
		logger.Error("Failed to generate balance sheet", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	logger.Info("Balance sheet generated successfully")
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report))
}

// getProfitLossIFRS godoc
// @Summary Generate a hierarchical profit and loss statement
// @Description Generates a profit and loss statement with revenue and expenses grouped by the chart-of-accounts hierarchy
// @Tags reports
// @Produce json
// @Param from query string true "Period start (YYYY-MM-DD)"
// @Param to query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.ProfitLossIFRSResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/profit-loss-ifrs [get]
func (h *reportingHandler) getProfitLossIFRS(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.PeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid period parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period. Use from/to as YYYY-MM-DD"})
		return
	}

	report, err := h.reportingService.ProfitAndLossIFRS(c.Request.Context(), params.From, params.To)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to generate hierarchical profit and loss report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		}
		return
	}

	logger.Info("Hierarchical profit and loss report generated successfully")
	c.JSON(http.StatusOK, dto.ToProfitLossIFRSResponse(report))
}

// getBalanceSheetIFRS godoc
// @Summary Generate a hierarchical balance sheet
// @Description Generates a balance sheet with assets, liabilities and equity grouped by the chart-of-accounts hierarchy
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.BalanceSheetIFRSResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/balance-sheet-ifrs [get]
func (h *reportingHandler) getBalanceSheetIFRS(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	asOf, ok := bindAsOf(c, logger)
	if !ok {
		return
	}

	report, err := h.reportingService.BalanceSheetIFRS(c.Request.Context(), asOf)
	if err != nil {
		logger.Error("Failed to generate hierarchical balance sheet", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	logger.Info("Hierarchical balance sheet generated successfully")
	c.JSON(http.StatusOK, dto.ToBalanceSheetIFRSResponse(report))
}

// getDashboard godoc
// @Summary Get the dashboard summary
// @Description Summarizes the ledger over a named window against the preceding window of equal length, with a monthly income/expense series
// @Tags reports
// @Produce json
// @Param period query string false "Dashboard window" Enums(30d, 90d, year) default(30d)
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate dashboard"
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.DashboardParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid dashboard parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period. Use one of 30d, 90d, year"})
		return
	}

	data, err := h.reportingService.Dashboard(c.Request.Context(), params.Period)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to generate dashboard", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate dashboard"})
		}
		return
	}

	logger.Info("Dashboard generated successfully", slog.String("period", string(params.Period)))
	c.JSON(http.StatusOK, dto.ToDashboardResponse(data))
}

// getRevenuePrediction godoc
// @Summary Forecast monthly revenue
// @Description Forecasts revenue for the requested number of months ahead from the monthly income history
// @Tags reports
// @Produce json
// @Param months query int false "Forecast horizon in months (1-12)" default(6)
// @Success 200 {array} dto.RevenuePredictionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate forecast"
// @Router /reports/revenue-prediction [get]
func (h *reportingHandler) getRevenuePrediction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.RevenuePredictionParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid forecast parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid months parameter"})
		return
	}

	predictions, err := h.forecastService.PredictRevenue(c.Request.Context(), params.Months)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to generate revenue forecast", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate forecast"})
		}
		return
	}

	logger.Info("Revenue forecast generated successfully", slog.Int("months", params.Months))
	c.JSON(http.StatusOK, dto.ToRevenuePredictionResponse(predictions))
}

// bindAsOf parses the optional asOf query parameter, defaulting to now.
func bindAsOf(c *gin.Context, logger *slog.Logger) (time.Time, bool) {
	var params dto.AsOfParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid asOf parameter", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return time.Time{}, false
	}
	if params.AsOf != nil {
		return *params.AsOf, true
	}
	return time.Now(), true
}
