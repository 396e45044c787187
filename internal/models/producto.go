package models

import "github.com/shopspring/decimal"

// Producto mirrors one row of the productos table.
type Producto struct {
	ID          string
	Nombre      string
	Descripcion string
	Precio      decimal.Decimal
	Categoria   string
	Disponible  bool
	Imagen      string
}
