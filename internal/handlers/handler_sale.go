package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/kantocollect/salesops/internal/core/ports/services"
	"github.com/kantocollect/salesops/internal/dto"
	"github.com/kantocollect/salesops/internal/middleware"
)

// saleHandler handles HTTP requests related to sales and their COGS.
type saleHandler struct {
	saleService    portssvc.SaleSvcFacade
	catalogService portssvc.CatalogMappingSvc
}

func newSaleHandler(ss portssvc.SaleSvcFacade, cs portssvc.CatalogMappingSvc) *saleHandler {
	return &saleHandler{saleService: ss, catalogService: cs}
}

// RegisterSaleRoutes registers sale routes and the bulk rule application route.
func RegisterSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade, catalogService portssvc.CatalogMappingSvc) {
	registerValidators()
	h := newSaleHandler(saleService, catalogService)

	sales := rg.Group("/sales")
	{
		sales.GET("", h.listSales)
		sales.GET("/:id", h.getSale)
		sales.PUT("/:id", h.updateSale)
		sales.POST("/:id/recalculate-cogs", h.recalculateCOGS)
		sales.PUT("/:id/catalog-mapping", h.remapSale)
		sales.DELETE("/:id/catalog-mapping", h.unmapSale)
	}

	rg.POST("/cogs/apply-rules", h.applyRules)
}

// listSales godoc
// @Summary List sales
// @Description Lists sales newest first with optional filters and cursor pagination
// @Tags sales
// @Produce json
// @Param showID query int false "Only sales of this show"
// @Param saleType query string false "stream or marketplace"
// @Param owner query string false "Owner"
// @Param missingCogs query bool false "Only sales without a positive cost"
// @Param unmapped query bool false "Only sales without a manual catalog mapping"
// @Param search query string false "Item name substring"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListSalesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list sales"
// @Security BearerAuth
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListSalesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListSales", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Sales not found", "Failed to list sales")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getSale godoc
// @Summary Get a sale
// @Tags sales
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {object} domain.Sale
// @Failure 400 {object} map[string]string "Invalid sale ID"
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 500 {object} map[string]string "Failed to retrieve sale"
// @Security BearerAuth
// @Router /sales/{id} [get]
func (h *saleHandler) getSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID, ok := parseIDParam(c, logger, "id")
	if !ok {
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), saleID)
	if err != nil {
		respondError(c, logger, err, "Sale not found", "Failed to retrieve sale")
		return
	}
	c.JSON(http.StatusOK, sale)
}

// updateSale godoc
// @Summary Update a sale
// @Description Sets or clears the cost by hand and edits notes or owner. A manual cost detaches the sale from its rule.
// @Tags sales
// @Accept json
// @Produce json
// @Param id path int true "Sale ID"
// @Param sale body dto.UpdateSaleRequest true "Fields to update"
// @Success 200 {object} domain.Sale
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 500 {object} map[string]string "Failed to update sale"
// @Security BearerAuth
// @Router /sales/{id} [put]
func (h *saleHandler) updateSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID, ok := parseIDParam(c, logger, "id")
	if !ok {
		return
	}
	var req dto.UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	sale, err := h.saleService.UpdateSale(c.Request.Context(), saleID, req)
	if err != nil {
		respondError(c, logger, err, "Sale not found", "Failed to update sale")
		return
	}
	c.JSON(http.StatusOK, sale)
}

// recalculateCOGS godoc
// @Summary Recalculate the cost of a sale
// @Description Re-runs the active rules against the sale. No match clears the cost.
// @Tags sales
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {object} domain.Sale
// @Failure 400 {object} map[string]string "Invalid sale ID"
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 500 {object} map[string]string "Failed to recalculate COGS"
// @Security BearerAuth
// @Router /sales/{id}/recalculate-cogs [post]
func (h *saleHandler) recalculateCOGS(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID, ok := parseIDParam(c, logger, "id")
	if !ok {
		return
	}

	sale, err := h.saleService.RecalculateCOGS(c.Request.Context(), saleID)
	if err != nil {
		respondError(c, logger, err, "Sale not found", "Failed to recalculate COGS")
		return
	}
	c.JSON(http.StatusOK, sale)
}

// remapSale godoc
// @Summary Map a sale to a catalog entry
// @Description Records a manual mapping that takes precedence over keyword matching
// @Tags sales
// @Accept json
// @Produce json
// @Param id path int true "Sale ID"
// @Param mapping body dto.RemapSaleRequest true "Target catalog entry"
// @Success 200 {object} domain.Sale
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Sale or catalog entry not found"
// @Failure 500 {object} map[string]string "Failed to remap sale"
// @Security BearerAuth
// @Router /sales/{id}/catalog-mapping [put]
func (h *saleHandler) remapSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID, ok := parseIDParam(c, logger, "id")
	if !ok {
		return
	}
	var req dto.RemapSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RemapSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	sale, err := h.catalogService.RemapSale(c.Request.Context(), saleID, req.CatalogItemID)
	if err != nil {
		respondError(c, logger, err, "Sale or catalog entry not found", "Failed to remap sale")
		return
	}
	c.JSON(http.StatusOK, sale)
}

// unmapSale godoc
// @Summary Remove the manual catalog mapping of a sale
// @Tags sales
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {object} domain.Sale
// @Failure 400 {object} map[string]string "Invalid sale ID"
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 500 {object} map[string]string "Failed to unmap sale"
// @Security BearerAuth
// @Router /sales/{id}/catalog-mapping [delete]
func (h *saleHandler) unmapSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID, ok := parseIDParam(c, logger, "id")
	if !ok {
		return
	}

	sale, err := h.catalogService.UnmapSale(c.Request.Context(), saleID)
	if err != nil {
		respondError(c, logger, err, "Sale not found", "Failed to unmap sale")
		return
	}
	c.JSON(http.StatusOK, sale)
}

// applyRules godoc
// @Summary Re-apply every active rule
// @Description Runs all active rules over every sale and recomputes the affected shows. Unmatched sales keep their cost.
// @Tags cogs
// @Accept json
// @Produce json
// @Param options body dto.ApplyRulesRequest false "Restrict to sales without a cost"
// @Success 200 {object} domain.BulkCOGSResult
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to apply rules"
// @Security BearerAuth
// @Router /cogs/apply-rules [post]
func (h *saleHandler) applyRules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ApplyRulesRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for ApplyRules", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}

	result, err := h.saleService.ApplyRulesToAll(c.Request.Context(), req.OnlyMissing)
	if err != nil {
		respondError(c, logger, err, "Nothing to apply", "Failed to apply rules")
		return
	}
	c.JSON(http.StatusOK, result)
}
