package services

import (
	portsrepo "github.com/carrocomidas/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/carrocomidas/pos_backend/internal/core/ports/services"
)

// NewServiceContainer wires every service onto the repository provider and
// returns the container the handlers consume.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Register:  NewRegisterService(repos.RegisterRepo, repos.MovementRepo),
		Movement:  NewMovementService(repos.MovementRepo, repos.RegisterRepo),
		Sale:      NewSaleService(repos.SaleRepo, repos.RegisterRepo),
		Product:   NewProductService(repos.ProductRepo),
		Reporting: NewReportingService(repos.ReportingRepo),
	}
}
