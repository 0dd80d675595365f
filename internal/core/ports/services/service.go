package services

// ServiceContainer holds instances of all the application services.
// Handlers receive it from main and pick what they need.
type ServiceContainer struct {
	COGSRule  COGSRuleSvcFacade
	Sale      SaleSvcFacade
	Catalog   CatalogSvcFacade
	Show      ShowSvc
	Analytics AnalyticsSvc
}
