package mapping

import (
	"github.com/carrocomidas/pos_backend/internal/core/domain"
	"github.com/carrocomidas/pos_backend/internal/models"
)

// ToModelProducto converts a domain Product to its storage model.
func ToModelProducto(p domain.Product) models.Producto {
	return models.Producto{
		ID:          p.ProductID,
		Nombre:      p.Name,
		Descripcion: p.Description,
		Precio:      p.Price,
		Categoria:   p.Category,
		Disponible:  p.Available,
		Imagen:      p.ImageRef,
	}
}

// ToDomainProduct converts a storage model Producto to its domain form.
func ToDomainProduct(p models.Producto) domain.Product {
	return domain.Product{
		ProductID:   p.ID,
		Name:        p.Nombre,
		Description: p.Descripcion,
		Price:       p.Precio,
		Category:    p.Categoria,
		Available:   p.Disponible,
		ImageRef:    p.Imagen,
	}
}

// ToDomainProductSlice converts a slice of storage models.
func ToDomainProductSlice(ps []models.Producto) []domain.Product {
	out := make([]domain.Product, len(ps))
	for i, p := range ps {
		out[i] = ToDomainProduct(p)
	}
	return out
}
