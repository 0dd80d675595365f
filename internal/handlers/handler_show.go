package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/kantocollect/salesops/internal/core/ports/services"
	"github.com/kantocollect/salesops/internal/middleware"
)

type showHandler struct {
	showService portssvc.ShowSvc
}

// RegisterShowRoutes registers routes related to shows.
func RegisterShowRoutes(rg *gin.RouterGroup, showService portssvc.ShowSvc) {
	h := &showHandler{showService: showService}

	shows := rg.Group("/shows")
	{
		shows.GET("/:id", h.getShow)
		shows.POST("/:id/recompute", h.recomputeShow)
	}
}

// getShow godoc
// @Summary Get a show with its stored totals
// @Tags shows
// @Produce json
// @Param id path int true "Show ID"
// @Success 200 {object} domain.Show
// @Failure 400 {object} map[string]string "Invalid show ID"
// @Failure 404 {object} map[string]string "Show not found"
// @Failure 500 {object} map[string]string "Failed to retrieve show"
// @Security BearerAuth
// @Router /shows/{id} [get]
func (h *showHandler) getShow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	showID, ok := parseIDParam(c, logger, "id")
	if !ok {
		return
	}

	show, err := h.showService.GetShow(c.Request.Context(), showID)
	if err != nil {
		respondError(c, logger, err, "Show not found", "Failed to retrieve show")
		return
	}
	c.JSON(http.StatusOK, show)
}

// recomputeShow godoc
// @Summary Recompute show totals
// @Description Re-sums every aggregate of the show from its sales
// @Tags shows
// @Produce json
// @Param id path int true "Show ID"
// @Success 200 {object} domain.Show
// @Failure 400 {object} map[string]string "Invalid show ID"
// @Failure 404 {object} map[string]string "Show not found"
// @Failure 500 {object} map[string]string "Failed to recompute show"
// @Security BearerAuth
// @Router /shows/{id}/recompute [post]
func (h *showHandler) recomputeShow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	showID, ok := parseIDParam(c, logger, "id")
	if !ok {
		return
	}

	show, err := h.showService.RecomputeShow(c.Request.Context(), showID)
	if err != nil {
		respondError(c, logger, err, "Show not found", "Failed to recompute show")
		return
	}
	c.JSON(http.StatusOK, show)
}
