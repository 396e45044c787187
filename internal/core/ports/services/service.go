package services

// ServiceContainer holds all service interfaces needed by the handlers.
type ServiceContainer struct {
	Register  RegisterSvcFacade
	Movement  MovementSvcFacade
	Sale      SaleSvcFacade
	Product   ProductSvcFacade
	Reporting ReportingSvcFacade
}
