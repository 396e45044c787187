package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carrocomidas/pos_backend/internal/apperrors"
	"github.com/carrocomidas/pos_backend/internal/core/domain"
	portsrepo "github.com/carrocomidas/pos_backend/internal/core/ports/repositories"
	"github.com/carrocomidas/pos_backend/internal/models"
	"github.com/carrocomidas/pos_backend/internal/utils/mapping"
)

type SQLiteProductRepository struct {
	BaseRepository
}

// newSQLiteProductRepository creates a new repository for catalog data.
func newSQLiteProductRepository(db *sql.DB) portsrepo.ProductRepositoryFacade {
	return &SQLiteProductRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure SQLiteProductRepository implements portsrepo.ProductRepositoryFacade
var _ portsrepo.ProductRepositoryFacade = (*SQLiteProductRepository)(nil)

// SaveProduct inserts a new catalog product.
func (r *SQLiteProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	p := mapping.ToModelProducto(product)
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO productos (id, nombre, descripcion, precio, categoria, disponible, imagen)
		VALUES (?, ?, ?, ?, ?, ?, ?);
	`, p.ID, p.Nombre, p.Descripcion, p.Precio.String(), p.Categoria, boolToInt(p.Disponible), p.Imagen)
	if err != nil {
		return fmt.Errorf("failed to insert product %s: %w", p.ID, err)
	}
	return nil
}

// FindProductByID retrieves a product by its ID.
func (r *SQLiteProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, nombre, descripcion, precio, categoria, disponible, imagen
		FROM productos
		WHERE id = ?;
	`, productID)

	producto, err := scanProducto(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID %s: %w", productID, err)
	}

	product := mapping.ToDomainProduct(*producto)
	return &product, nil
}

// ListProducts retrieves the whole catalog ordered by name.
func (r *SQLiteProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, nombre, descripcion, precio, categoria, disponible, imagen
		FROM productos
		ORDER BY nombre;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

// SearchProductsByName retrieves products whose name contains the term.
func (r *SQLiteProductRepository) SearchProductsByName(ctx context.Context, name string) ([]domain.Product, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, nombre, descripcion, precio, categoria, disponible, imagen
		FROM productos
		WHERE nombre LIKE '%' || ? || '%'
		ORDER BY nombre;
	`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to search products by name %q: %w", name, err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

// UpdateProduct overwrites a product's mutable fields.
func (r *SQLiteProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	p := mapping.ToModelProducto(product)
	res, err := r.DB.ExecContext(ctx, `
		UPDATE productos
		SET nombre = ?, descripcion = ?, precio = ?, categoria = ?, disponible = ?, imagen = ?
		WHERE id = ?;
	`, p.Nombre, p.Descripcion, p.Precio.String(), p.Categoria, boolToInt(p.Disponible), p.Imagen, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", p.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result for product %s: %w", p.ID, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, p.ID)
	}
	return nil
}

// DeleteProduct removes a product. Past sale lines keep their snapshot; the
// productoId foreign key nulls out via ON DELETE SET NULL.
func (r *SQLiteProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM productos WHERE id = ?;`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result for product %s: %w", productID, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
	}
	return nil
}

func collectProducts(rows *sql.Rows) ([]domain.Product, error) {
	productos := []models.Producto{}
	for rows.Next() {
		producto, err := scanProducto(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		productos = append(productos, *producto)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return mapping.ToDomainProductSlice(productos), nil
}

func scanProducto(scan func(dest ...interface{}) error) (*models.Producto, error) {
	var (
		p          models.Producto
		precio     string
		disponible int
	)
	if err := scan(&p.ID, &p.Nombre, &p.Descripcion, &precio, &p.Categoria, &disponible, &p.Imagen); err != nil {
		return nil, err
	}

	price, err := parseDecimal(precio)
	if err != nil {
		return nil, err
	}
	p.Precio = price
	p.Disponible = disponible == 1

	return &p, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
