package handlers

import (
	"net/http"

	"github.com/carrocomidas/pos_backend/internal/core/domain"
	portssvc "github.com/carrocomidas/pos_backend/internal/core/ports/services"
	"github.com/carrocomidas/pos_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// productoHandler handles HTTP requests for the product catalog.
type productoHandler struct {
	productService portssvc.ProductSvcFacade
}

// newProductoHandler creates a new productoHandler.
func newProductoHandler(ps portssvc.ProductSvcFacade) *productoHandler {
	return &productoHandler{
		productService: ps,
	}
}

// registerProductoRoutes registers routes related to the catalog.
func registerProductoRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade) {
	h := newProductoHandler(productService)

	productos := rg.Group("/productos")
	{
		productos.POST("", h.createProduct)
		productos.GET("", h.listProducts)
		productos.GET("/:productID", h.getProduct)
		productos.PUT("/:productID", h.updateProduct)
		productos.DELETE("/:productID", h.deleteProduct)
	}
}

// createProduct godoc
// @Summary Create a product
// @Tags productos
// @Accept  json
// @Produce  json
// @Param   product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /productos [post]
func (h *productoHandler) createProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{"product": dto.ToProductResponse(product)})
}

// listProducts godoc
// @Summary List the catalog
// @Description Lists all products; filter by name with the q query parameter.
// @Tags productos
// @Produce  json
// @Param   q query string false "Name search term"
// @Success 200 {array} dto.ProductResponse
// @Router /productos [get]
func (h *productoHandler) listProducts(c *gin.Context) {
	var (
		products []domain.Product
		err      error
	)
	if term := c.Query("q"); term != "" {
		products, err = h.productService.SearchProducts(c.Request.Context(), term)
	} else {
		products, err = h.productService.ListProducts(c.Request.Context())
	}
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"products": dto.ToProductResponses(products)})
}

// getProduct godoc
// @Summary Get a product by ID
// @Tags productos
// @Produce  json
// @Param   productID path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Router /productos/{productID} [get]
func (h *productoHandler) getProduct(c *gin.Context) {
	product, err := h.productService.GetProductByID(c.Request.Context(), c.Param("productID"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"product": dto.ToProductResponse(product)})
}

// updateProduct godoc
// @Summary Update a product
// @Description Overwrites a product's fields. Past sale lines keep their snapshots.
// @Tags productos
// @Accept  json
// @Produce  json
// @Param   productID path string true "Product ID"
// @Param   product body dto.UpdateProductRequest true "New product details"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Router /productos/{productID} [put]
func (h *productoHandler) updateProduct(c *gin.Context) {
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("productID"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"product": dto.ToProductResponse(product)})
}

// deleteProduct godoc
// @Summary Delete a product
// @Description Removes a product from the catalog; past sale lines keep their name snapshot.
// @Tags productos
// @Produce  json
// @Param   productID path string true "Product ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string "Product not found"
// @Router /productos/{productID} [delete]
func (h *productoHandler) deleteProduct(c *gin.Context) {
	if err := h.productService.DeleteProduct(c.Request.Context(), c.Param("productID")); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{})
}
