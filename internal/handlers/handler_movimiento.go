package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/carrocomidas/pos_backend/internal/core/ports/services"
	"github.com/carrocomidas/pos_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// movimientoHandler handles HTTP requests for manual cash movements.
type movimientoHandler struct {
	movementService portssvc.MovementSvcFacade
}

// newMovimientoHandler creates a new movimientoHandler.
func newMovimientoHandler(ms portssvc.MovementSvcFacade) *movimientoHandler {
	return &movimientoHandler{
		movementService: ms,
	}
}

// registerMovimientoRoutes registers routes related to cash movements.
func registerMovimientoRoutes(rg *gin.RouterGroup, movementService portssvc.MovementSvcFacade) {
	h := newMovimientoHandler(movementService)

	movimientos := rg.Group("/movimientos")
	{
		movimientos.POST("", h.recordMovement)
		movimientos.GET("/caja/:registerID", h.listForRegister)
		movimientos.GET("/fecha/:date", h.listForDate)
	}
}

// recordMovement godoc
// @Summary Record a manual cash movement
// @Description Appends an inflow or outflow to the currently open register.
// @Tags movimientos
// @Accept  json
// @Produce  json
// @Param   movement body dto.RecordMovementRequest true "Movement details"
// @Success 201 {object} dto.MovementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 412 {object} map[string]string "No open register"
// @Router /movimientos [post]
func (h *movimientoHandler) recordMovement(c *gin.Context) {
	var req dto.RecordMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	movement, err := h.movementService.RecordMovement(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{"movement": dto.ToMovementResponse(movement)})
}

// listForRegister godoc
// @Summary List movements of a register
// @Tags movimientos
// @Produce  json
// @Param   registerID path string true "Register ID"
// @Success 200 {array} dto.MovementResponse
// @Failure 404 {object} map[string]string "Register not found"
// @Router /movimientos/caja/{registerID} [get]
func (h *movimientoHandler) listForRegister(c *gin.Context) {
	registerID := c.Param("registerID")

	movements, err := h.movementService.ListMovementsForRegister(c.Request.Context(), registerID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"movements": dto.ToMovementResponses(movements)})
}

// listForDate godoc
// @Summary List movements on a calendar date
// @Tags movimientos
// @Produce  json
// @Param   date path string true "Date (YYYY-MM-DD)"
// @Success 200 {array} dto.MovementResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Router /movimientos/fecha/{date} [get]
func (h *movimientoHandler) listForDate(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		respondBindError(c, err)
		return
	}

	movements, err := h.movementService.ListMovementsForDate(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"movements": dto.ToMovementResponses(movements)})
}
