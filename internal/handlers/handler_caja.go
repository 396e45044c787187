package handlers

import (
	"net/http"

	portssvc "github.com/carrocomidas/pos_backend/internal/core/ports/services"
	"github.com/carrocomidas/pos_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// cajaHandler handles HTTP requests for the register (caja) lifecycle.
type cajaHandler struct {
	registerService portssvc.RegisterSvcFacade
}

// newCajaHandler creates a new cajaHandler.
func newCajaHandler(rs portssvc.RegisterSvcFacade) *cajaHandler {
	return &cajaHandler{
		registerService: rs,
	}
}

// registerCajaRoutes registers routes related to the register lifecycle.
func registerCajaRoutes(rg *gin.RouterGroup, registerService portssvc.RegisterSvcFacade) {
	h := newCajaHandler(registerService)

	cajas := rg.Group("/cajas")
	{
		cajas.POST("/open", h.openRegister)
		cajas.POST("/close", h.closeRegister)
		cajas.GET("/current", h.getOpenRegister)
		cajas.GET("/status", h.getStatus)
		cajas.GET("/:registerID/balance", h.getBalance)
	}
}

// openRegister godoc
// @Summary Open the cash register
// @Description Opens a new register session with the counted opening float. Fails while another register is open.
// @Tags cajas
// @Accept  json
// @Produce  json
// @Param   register body dto.OpenRegisterRequest true "Opening details"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "A register is already open"
// @Router /cajas/open [post]
func (h *cajaHandler) openRegister(c *gin.Context) {
	var req dto.OpenRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	register, err := h.registerService.OpenRegister(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{"register": dto.ToRegisterResponse(register)})
}

// closeRegister godoc
// @Summary Close the open register
// @Description Closes the open register and reports expected cash, counted cash and the drawer difference.
// @Tags cajas
// @Accept  json
// @Produce  json
// @Param   close body dto.CloseRegisterRequest true "Counted closing amount"
// @Success 200 {object} dto.RegisterCloseSummaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "No open register"
// @Router /cajas/close [post]
func (h *cajaHandler) closeRegister(c *gin.Context) {
	var req dto.CloseRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	summary, err := h.registerService.CloseRegister(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"summary": dto.ToRegisterCloseSummaryResponse(summary)})
}

// getOpenRegister godoc
// @Summary Get the open register
// @Description Returns the currently open register, or a null register when none is open.
// @Tags cajas
// @Produce  json
// @Success 200 {object} dto.RegisterResponse
// @Router /cajas/current [get]
func (h *cajaHandler) getOpenRegister(c *gin.Context) {
	register, err := h.registerService.GetOpenRegister(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	if register == nil {
		respondSuccess(c, http.StatusOK, gin.H{"register": nil})
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"register": dto.ToRegisterResponse(register)})
}

// getStatus godoc
// @Summary Check whether a register is open
// @Tags cajas
// @Produce  json
// @Success 200 {object} map[string]bool
// @Router /cajas/status [get]
func (h *cajaHandler) getStatus(c *gin.Context) {
	isOpen, err := h.registerService.IsRegisterOpen(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"isOpen": isOpen})
}

// getBalance godoc
// @Summary Get the expected cash of a register
// @Description Computes opening amount + inflows - outflows for the given register.
// @Tags cajas
// @Produce  json
// @Param   registerID path string true "Register ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Register not found"
// @Router /cajas/{registerID}/balance [get]
func (h *cajaHandler) getBalance(c *gin.Context) {
	registerID := c.Param("registerID")

	balance, err := h.registerService.GetRegisterBalance(c.Request.Context(), registerID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"registerID": registerID, "balance": balance})
}
