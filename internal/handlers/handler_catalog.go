package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/kantocollect/salesops/internal/core/ports/services"
	"github.com/kantocollect/salesops/internal/dto"
	"github.com/kantocollect/salesops/internal/middleware"
)

// catalogHandler handles HTTP requests related to the product catalog.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
	saleService    portssvc.SaleCOGSSvc
}

func newCatalogHandler(cs portssvc.CatalogSvcFacade, ss portssvc.SaleCOGSSvc) *catalogHandler {
	return &catalogHandler{catalogService: cs, saleService: ss}
}

// RegisterCatalogRoutes registers routes related to catalog entries.
func RegisterCatalogRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade, saleService portssvc.SaleCOGSSvc) {
	registerValidators()
	h := newCatalogHandler(catalogService, saleService)

	catalog := rg.Group("/catalog")
	{
		catalog.GET("", h.listEntries)
		catalog.POST("", h.createEntry)
		catalog.POST("/from-image", h.createEntryFromImage)
		catalog.POST("/save-cogs", h.saveProductCOGS)
		catalog.GET("/:id", h.getEntry)
		catalog.PUT("/:id", h.updateEntry)
		catalog.DELETE("/:id", h.deleteEntry)
		catalog.POST("/:id/mark-mapped", h.markMapped)
	}
}

// listEntries godoc
// @Summary List catalog entries
// @Description Lists entries in evaluation order and reports catch-all entries that can never win
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.ListCatalogResponse
// @Failure 500 {object} map[string]string "Failed to list catalog"
// @Security BearerAuth
// @Router /catalog [get]
func (h *catalogHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	resp, err := h.catalogService.ListEntries(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Catalog not found", "Failed to list catalog")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// createEntry godoc
// @Summary Create a catalog entry
// @Tags catalog
// @Accept json
// @Produce json
// @Param entry body dto.CreateCatalogEntryRequest true "Entry details"
// @Success 201 {object} domain.CatalogEntry
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Entry name already exists"
// @Failure 500 {object} map[string]string "Failed to create catalog entry"
// @Security BearerAuth
// @Router /catalog [post]
func (h *catalogHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCatalogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.catalogService.CreateEntry(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Catalog entry not found", "Failed to create catalog entry")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// createEntryFromImage godoc
// @Summary Create a catalog entry from an image URL
// @Description Derives name, category and keywords from the image file name. The same image cannot be used twice.
// @Tags catalog
// @Accept json
// @Produce json
// @Param image body dto.CreateCatalogFromImageRequest true "Product image URL"
// @Success 201 {object} domain.CatalogEntry
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Image or name already in the catalog"
// @Failure 500 {object} map[string]string "Failed to create catalog entry"
// @Security BearerAuth
// @Router /catalog/from-image [post]
func (h *catalogHandler) createEntryFromImage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCatalogFromImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEntryFromImage", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.catalogService.CreateEntryFromImage(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Catalog entry not found", "Failed to create catalog entry")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// getEntry godoc
// @Summary Get a catalog entry
// @Tags catalog
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} domain.CatalogEntry
// @Failure 400 {object} map[string]string "Invalid entry ID"
// @Failure 404 {object} map[string]string "Catalog entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve catalog entry"
// @Security BearerAuth
// @Router /catalog/{id} [get]
func (h *catalogHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID, ok := parseIDParam(c, logger, "id")
	if !ok {
		return
	}

	entry, err := h.catalogService.GetEntry(c.Request.Context(), entryID)
	if err != nil {
		respondError(c, logger, err, "Catalog entry not found", "Failed to retrieve catalog entry")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// updateEntry godoc
// @Summary Update a catalog entry
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Param entry body dto.UpdateCatalogEntryRequest true "Fields to update"
// @Success 200 {object} domain.CatalogEntry
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Catalog entry not found"
// @Failure 409 {object} map[string]string "Entry name already exists"
// @Failure 500 {object} map[string]string "Failed to update catalog entry"
// @Security BearerAuth
// @Router /catalog/{id} [put]
func (h *catalogHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID, ok := parseIDParam(c, logger, "id")
	if !ok {
		return
	}
	var req dto.UpdateCatalogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.catalogService.UpdateEntry(c.Request.Context(), entryID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Catalog entry not found", "Failed to update catalog entry")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// deleteEntry godoc
// @Summary Delete a catalog entry
// @Description Deletes the entry and clears the mapping of every sale mapped to it
// @Tags catalog
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} dto.DeleteCatalogEntryResponse
// @Failure 400 {object} map[string]string "Invalid entry ID"
// @Failure 404 {object} map[string]string "Catalog entry not found"
// @Failure 500 {object} map[string]string "Failed to delete catalog entry"
// @Security BearerAuth
// @Router /catalog/{id} [delete]
func (h *catalogHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID, ok := parseIDParam(c, logger, "id")
	if !ok {
		return
	}

	unmapped, err := h.catalogService.DeleteEntry(c.Request.Context(), entryID)
	if err != nil {
		respondError(c, logger, err, "Catalog entry not found", "Failed to delete catalog entry")
		return
	}
	c.JSON(http.StatusOK, dto.DeleteCatalogEntryResponse{EntryID: entryID, UnmappedSales: unmapped})
}

// markMapped godoc
// @Summary Confirm every sale an entry currently claims
// @Description Persists the automatic match as a mapping. Existing manual mappings are never overwritten.
// @Tags catalog
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} domain.MarkMappedResult
// @Failure 400 {object} map[string]string "Invalid entry ID"
// @Failure 404 {object} map[string]string "Catalog entry not found"
// @Failure 500 {object} map[string]string "Failed to map sales"
// @Security BearerAuth
// @Router /catalog/{id}/mark-mapped [post]
func (h *catalogHandler) markMapped(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID, ok := parseIDParam(c, logger, "id")
	if !ok {
		return
	}

	result, err := h.catalogService.MarkMapped(c.Request.Context(), entryID)
	if err != nil {
		respondError(c, logger, err, "Catalog entry not found", "Failed to map sales")
		return
	}
	c.JSON(http.StatusOK, result)
}

// saveProductCOGS godoc
// @Summary Save a product cost and propagate it
// @Description Creates or updates the product's auto-generated rule and prices every matching sale outside the test bucket
// @Tags catalog
// @Accept json
// @Produce json
// @Param product body dto.SaveProductCOGSRequest true "Product, unit cost and keywords"
// @Success 200 {object} domain.BulkCOGSResult
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to save product COGS"
// @Security BearerAuth
// @Router /catalog/save-cogs [post]
func (h *catalogHandler) saveProductCOGS(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveProductCOGSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveProductCOGS", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.saleService.SaveProductCOGS(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Product not found", "Failed to save product COGS")
		return
	}
	c.JSON(http.StatusOK, result)
}
