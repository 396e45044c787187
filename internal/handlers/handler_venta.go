package handlers

import (
	"net/http"
	"strconv"
	"time"

	portssvc "github.com/carrocomidas/pos_backend/internal/core/ports/services"
	"github.com/carrocomidas/pos_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// ventaHandler handles HTTP requests for sales.
type ventaHandler struct {
	saleService portssvc.SaleSvcFacade
}

// newVentaHandler creates a new ventaHandler.
func newVentaHandler(ss portssvc.SaleSvcFacade) *ventaHandler {
	return &ventaHandler{
		saleService: ss,
	}
}

// registerVentaRoutes registers routes related to sales.
func registerVentaRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade) {
	h := newVentaHandler(saleService)

	ventas := rg.Group("/ventas")
	{
		ventas.POST("", h.recordSale)
		ventas.GET("/fecha/:date", h.listForDate)
		ventas.GET("/historial", h.listHistory)
	}
}

// recordSale godoc
// @Summary Record a sale
// @Description Persists the sale with all line items atomically. Cash sales also write the matching drawer inflow in the same transaction.
// @Tags ventas
// @Accept  json
// @Produce  json
// @Param   sale body dto.RecordSaleRequest true "Sale details"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 412 {object} map[string]string "No open register"
// @Router /ventas [post]
func (h *ventaHandler) recordSale(c *gin.Context) {
	var req dto.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	sale, err := h.saleService.RecordSale(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{"sale": dto.ToSaleResponse(sale)})
}

// listForDate godoc
// @Summary List sales on a calendar date
// @Tags ventas
// @Produce  json
// @Param   date path string true "Date (YYYY-MM-DD)"
// @Success 200 {array} dto.SaleResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Router /ventas/fecha/{date} [get]
func (h *ventaHandler) listForDate(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		respondBindError(c, err)
		return
	}

	sales, err := h.saleService.ListSalesForDate(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"sales": dto.ToSaleResponses(sales)})
}

// listHistory godoc
// @Summary List recent sales
// @Description Returns the most recent sales, newest first, with token pagination.
// @Tags ventas
// @Produce  json
// @Param   limit query int false "Page size (default 100)"
// @Param   nextToken query string false "Pagination token from the previous page"
// @Success 200 {array} dto.SaleResponse
// @Router /ventas/historial [get]
func (h *ventaHandler) listHistory(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondBindError(c, err)
			return
		}
		limit = parsed
	}

	var nextToken *string
	if raw := c.Query("nextToken"); raw != "" {
		nextToken = &raw
	}

	sales, newToken, err := h.saleService.ListSalesHistory(c.Request.Context(), limit, nextToken)
	if err != nil {
		respondError(c, err)
		return
	}

	payload := gin.H{"sales": dto.ToSaleResponses(sales)}
	if newToken != nil {
		payload["nextToken"] = *newToken
	}
	respondSuccess(c, http.StatusOK, payload)
}
