package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/kantocollect/salesops/internal/core/ports/services"
	"github.com/kantocollect/salesops/internal/dto"
	"github.com/kantocollect/salesops/internal/middleware"
)

// cogsRuleHandler handles HTTP requests related to COGS rules.
type cogsRuleHandler struct {
	ruleService portssvc.COGSRuleSvcFacade
}

func newCOGSRuleHandler(rs portssvc.COGSRuleSvcFacade) *cogsRuleHandler {
	return &cogsRuleHandler{ruleService: rs}
}

// RegisterCOGSRuleRoutes registers routes related to COGS rules.
func RegisterCOGSRuleRoutes(rg *gin.RouterGroup, ruleService portssvc.COGSRuleSvcFacade) {
	registerValidators()
	h := newCOGSRuleHandler(ruleService)

	rules := rg.Group("/cogs-rules")
	{
		rules.GET("", h.listRules)
		rules.POST("", h.createRule)
		rules.POST("/test", h.testRule)
		rules.GET("/:id", h.getRule)
		rules.PUT("/:id", h.updateRule)
		rules.DELETE("/:id", h.deleteRule)
		rules.POST("/:id/toggle", h.toggleRule)
	}
}

// listRules godoc
// @Summary List COGS rules
// @Description Lists rules ordered by priority (highest first), each with the number of sales it currently prices
// @Tags cogs-rules
// @Produce json
// @Param activeOnly query bool false "Only return active rules"
// @Success 200 {object} dto.ListCOGSRulesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list rules"
// @Security BearerAuth
// @Router /cogs-rules [get]
func (h *cogsRuleHandler) listRules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListCOGSRulesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListRules", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	rules, err := h.ruleService.ListRules(c.Request.Context(), params.ActiveOnly)
	if err != nil {
		respondError(c, logger, err, "Rules not found", "Failed to list rules")
		return
	}

	logger.Info("COGS rules listed", slog.Int("count", len(rules)))
	c.JSON(http.StatusOK, dto.ListCOGSRulesResponse{Rules: rules})
}

// createRule godoc
// @Summary Create a COGS rule
// @Description Creates a keyword rule that assigns a unit cost to matching sales
// @Tags cogs-rules
// @Accept json
// @Produce json
// @Param rule body dto.CreateCOGSRuleRequest true "Rule details"
// @Success 201 {object} domain.COGSRule
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Rule name already exists"
// @Failure 500 {object} map[string]string "Failed to create rule"
// @Security BearerAuth
// @Router /cogs-rules [post]
func (h *cogsRuleHandler) createRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCOGSRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRule", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rule, err := h.ruleService.CreateRule(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Rule not found", "Failed to create rule")
		return
	}
	c.JSON(http.StatusCreated, rule)
}

// getRule godoc
// @Summary Get a COGS rule
// @Tags cogs-rules
// @Produce json
// @Param id path int true "Rule ID"
// @Success 200 {object} domain.COGSRule
// @Failure 400 {object} map[string]string "Invalid rule ID"
// @Failure 404 {object} map[string]string "Rule not found"
// @Failure 500 {object} map[string]string "Failed to retrieve rule"
// @Security BearerAuth
// @Router /cogs-rules/{id} [get]
func (h *cogsRuleHandler) getRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ruleID, ok := parseIDParam(c, logger, "id")
	if !ok {
		return
	}

	rule, err := h.ruleService.GetRule(c.Request.Context(), ruleID)
	if err != nil {
		respondError(c, logger, err, "Rule not found", "Failed to retrieve rule")
		return
	}
	c.JSON(http.StatusOK, rule)
}

// updateRule godoc
// @Summary Update a COGS rule
// @Description Updates the provided fields of a rule. Existing sale costs are not touched until rules are re-applied.
// @Tags cogs-rules
// @Accept json
// @Produce json
// @Param id path int true "Rule ID"
// @Param rule body dto.UpdateCOGSRuleRequest true "Fields to update"
// @Success 200 {object} domain.COGSRule
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Rule not found"
// @Failure 409 {object} map[string]string "Rule name already exists"
// @Failure 500 {object} map[string]string "Failed to update rule"
// @Security BearerAuth
// @Router /cogs-rules/{id} [put]
func (h *cogsRuleHandler) updateRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ruleID, ok := parseIDParam(c, logger, "id")
	if !ok {
		return
	}
	var req dto.UpdateCOGSRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateRule", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rule, err := h.ruleService.UpdateRule(c.Request.Context(), ruleID, req)
	if err != nil {
		respondError(c, logger, err, "Rule not found", "Failed to update rule")
		return
	}
	c.JSON(http.StatusOK, rule)
}

// deleteRule godoc
// @Summary Delete a COGS rule
// @Description Deletes a rule. Sales it priced keep their cost but lose the rule reference.
// @Tags cogs-rules
// @Param id path int true "Rule ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid rule ID"
// @Failure 404 {object} map[string]string "Rule not found"
// @Failure 500 {object} map[string]string "Failed to delete rule"
// @Security BearerAuth
// @Router /cogs-rules/{id} [delete]
func (h *cogsRuleHandler) deleteRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ruleID, ok := parseIDParam(c, logger, "id")
	if !ok {
		return
	}

	if err := h.ruleService.DeleteRule(c.Request.Context(), ruleID); err != nil {
		respondError(c, logger, err, "Rule not found", "Failed to delete rule")
		return
	}
	c.Status(http.StatusNoContent)
}

// toggleRule godoc
// @Summary Toggle a COGS rule
// @Description Flips the active flag of a rule
// @Tags cogs-rules
// @Produce json
// @Param id path int true "Rule ID"
// @Success 200 {object} domain.COGSRule
// @Failure 400 {object} map[string]string "Invalid rule ID"
// @Failure 404 {object} map[string]string "Rule not found"
// @Failure 500 {object} map[string]string "Failed to toggle rule"
// @Security BearerAuth
// @Router /cogs-rules/{id}/toggle [post]
func (h *cogsRuleHandler) toggleRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ruleID, ok := parseIDParam(c, logger, "id")
	if !ok {
		return
	}

	rule, err := h.ruleService.ToggleRule(c.Request.Context(), ruleID)
	if err != nil {
		respondError(c, logger, err, "Rule not found", "Failed to toggle rule")
		return
	}
	c.JSON(http.StatusOK, rule)
}

// testRule godoc
// @Summary Dry-run a candidate rule
// @Description Reports which distinct product names a rule with these keywords would match, without saving anything
// @Tags cogs-rules
// @Accept json
// @Produce json
// @Param rule body dto.TestCOGSRuleRequest true "Candidate keywords and mode"
// @Success 200 {object} domain.RuleTestResult
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to test rule"
// @Security BearerAuth
// @Router /cogs-rules/test [post]
func (h *cogsRuleHandler) testRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TestCOGSRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TestRule", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.ruleService.TestRule(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "No products found", "Failed to test rule")
		return
	}
	logger.Info("Rule dry run finished", slog.Int("matches", result.TotalMatches), slog.Int("scanned", result.ProductsScanned))
	c.JSON(http.StatusOK, result)
}
