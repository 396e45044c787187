package sqlite

import (
	"database/sql"

	portsrepo "github.com/carrocomidas/pos_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository onto the shared database
// handle. The handle is owned by the caller (opened at startup, closed at
// shutdown); nothing here holds global state.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		RegisterRepo:  newSQLiteRegisterRepository(db),
		MovementRepo:  newSQLiteMovementRepository(db),
		SaleRepo:      newSQLiteSaleRepository(db),
		ProductRepo:   newSQLiteProductRepository(db),
		ReportingRepo: newReportingRepository(db),
	}
}
