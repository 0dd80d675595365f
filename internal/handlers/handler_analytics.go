package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/kantocollect/salesops/internal/core/ports/services"
	"github.com/kantocollect/salesops/internal/dto"
	"github.com/kantocollect/salesops/internal/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type analyticsHandler struct {
	analyticsService portssvc.AnalyticsSvc
}

// RegisterAnalyticsRoutes registers the reporting routes.
func RegisterAnalyticsRoutes(rg *gin.RouterGroup, analyticsService portssvc.AnalyticsSvc) {
	h := &analyticsHandler{analyticsService: analyticsService}

	analytics := rg.Group("/analytics")
	{
		analytics.GET("/cogs-coverage", h.cogsCoverage)
		analytics.GET("/rule-performance", h.rulePerformance)
		analytics.GET("/catalog", h.catalogRollup)
		analytics.GET("/unmapped", h.unmappedSales)
		analytics.GET("/unmapped-singles", h.unmappedSingles)
		analytics.GET("/products-needing-cogs", h.productsNeedingCOGS)
		analytics.GET("/export.xlsx", h.exportReport)
	}
}

// cogsCoverage godoc
// @Summary COGS coverage
// @Description Share of sales that carry a positive cost
// @Tags analytics
// @Produce json
// @Success 200 {object} domain.COGSCoverage
// @Failure 500 {object} map[string]string "Failed to compute coverage"
// @Security BearerAuth
// @Router /analytics/cogs-coverage [get]
func (h *analyticsHandler) cogsCoverage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cov, err := h.analyticsService.COGSCoverage(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "No sales found", "Failed to compute coverage")
		return
	}
	c.JSON(http.StatusOK, cov)
}

// rulePerformance godoc
// @Summary Rule performance
// @Description Per-rule match counts and assigned cost, most used first
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.RulePerformanceResponse
// @Failure 500 {object} map[string]string "Failed to compute rule performance"
// @Security BearerAuth
// @Router /analytics/rule-performance [get]
func (h *analyticsHandler) rulePerformance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	perf, err := h.analyticsService.RulePerformance(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "No rules found", "Failed to compute rule performance")
		return
	}
	c.JSON(http.StatusOK, dto.RulePerformanceResponse{Rules: perf})
}

// catalogRollup godoc
// @Summary Catalog rollup
// @Description Sales count and gross revenue per catalog entry
// @Tags analytics
// @Produce json
// @Success 200 {object} domain.CatalogRollupReport
// @Failure 500 {object} map[string]string "Failed to compute catalog rollup"
// @Security BearerAuth
// @Router /analytics/catalog [get]
func (h *analyticsHandler) catalogRollup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	report, err := h.analyticsService.CatalogRollup(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Catalog not found", "Failed to compute catalog rollup")
		return
	}
	c.JSON(http.StatusOK, report)
}

// unmappedSales godoc
// @Summary Unmapped sales
// @Description Sales no catalog entry claims, with the total count and a bounded sample
// @Tags analytics
// @Produce json
// @Param limit query int false "Sample size" default(50)
// @Success 200 {object} dto.UnmappedSalesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list unmapped sales"
// @Security BearerAuth
// @Router /analytics/unmapped [get]
func (h *analyticsHandler) unmappedSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.LimitParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for UnmappedSales", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	total, sales, err := h.analyticsService.UnmappedSales(c.Request.Context(), params.Limit)
	if err != nil {
		respondError(c, logger, err, "No sales found", "Failed to list unmapped sales")
		return
	}
	c.JSON(http.StatusOK, dto.UnmappedSalesResponse{Total: total, Sales: sales})
}

// unmappedSingles godoc
// @Summary Unmapped singles
// @Description Singles only the generic singles entry claims
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.UnmappedSinglesResponse
// @Failure 404 {object} map[string]string "Generic singles entry not found"
// @Failure 500 {object} map[string]string "Failed to list unmapped singles"
// @Security BearerAuth
// @Router /analytics/unmapped-singles [get]
func (h *analyticsHandler) unmappedSingles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	generic, singles, err := h.analyticsService.UnmappedSingles(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Generic singles entry not found", "Failed to list unmapped singles")
		return
	}
	c.JSON(http.StatusOK, dto.ToUnmappedSinglesResponse(*generic, singles))
}

// productsNeedingCOGS godoc
// @Summary Products needing COGS
// @Description Uncosted sales grouped by normalized item name, highest revenue first
// @Tags analytics
// @Produce json
// @Param limit query int false "Maximum groups" default(50)
// @Success 200 {object} dto.ProductsNeedingCOGSResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list products"
// @Security BearerAuth
// @Router /analytics/products-needing-cogs [get]
func (h *analyticsHandler) productsNeedingCOGS(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.LimitParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ProductsNeedingCOGS", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	products, err := h.analyticsService.ProductsNeedingCOGS(c.Request.Context(), params.Limit)
	if err != nil {
		respondError(c, logger, err, "No sales found", "Failed to list products")
		return
	}
	c.JSON(http.StatusOK, dto.ProductsNeedingCOGSResponse{Products: products})
}

// exportReport godoc
// @Summary Export the analytics workbook
// @Description Coverage, rule performance and catalog rollup as an xlsx workbook
// @Tags analytics
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} map[string]string "Failed to export report"
// @Security BearerAuth
// @Router /analytics/export.xlsx [get]
func (h *analyticsHandler) exportReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var buf bytes.Buffer
	if err := h.analyticsService.ExportReport(c.Request.Context(), &buf); err != nil {
		respondError(c, logger, err, "Nothing to export", "Failed to export report")
		return
	}

	filename := fmt.Sprintf("cogs-report-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
