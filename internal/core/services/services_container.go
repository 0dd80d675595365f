package services

import (
	portsrepo "github.com/kantocollect/salesops/internal/core/ports/repositories"
	portssvc "github.com/kantocollect/salesops/internal/core/ports/services"
	"github.com/kantocollect/salesops/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Sale mutations recompute show totals through this one.
	container.Show = NewShowService(repos.ShowRepo, repos.SaleRepo)

	container.COGSRule = NewCOGSRuleService(
		repos.COGSRuleRepo,
		repos.SaleRepo,
		WithDefaultRuleTestLimit(cfg.RuleTestLimit),
	)
	container.Sale = NewSaleService(
		repos.SaleRepo,
		repos.COGSRuleRepo,
		container.Show,
		WithAutoRulePriority(cfg.AutoRulePriority),
	)
	container.Catalog = NewCatalogService(repos.CatalogRepo, repos.SaleRepo)
	container.Analytics = NewAnalyticsService(
		repos.SaleRepo,
		repos.COGSRuleRepo,
		repos.CatalogRepo,
		WithSinglesEntryName(cfg.SinglesGenericEntry),
	)

	return container
}
