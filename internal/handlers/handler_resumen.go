package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/carrocomidas/pos_backend/internal/core/ports/services"
	"github.com/carrocomidas/pos_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

const routeDateFormat = "2006-01-02"

// resumenHandler handles HTTP requests for daily summaries.
type resumenHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newResumenHandler creates a new resumenHandler.
func newResumenHandler(rs portssvc.ReportingSvcFacade) *resumenHandler {
	return &resumenHandler{
		reportingService: rs,
	}
}

// registerResumenRoutes registers routes related to daily summaries.
func registerResumenRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newResumenHandler(reportingService)

	resumen := rg.Group("/resumen")
	{
		resumen.GET("", h.listSummaries)
		resumen.GET("/:date", h.getSummary)
	}
}

// listSummaries godoc
// @Summary List daily summaries
// @Description Lists all daily summaries, newest first. Pass from and to (YYYY-MM-DD) to restrict the range.
// @Tags resumen
// @Produce  json
// @Param   from query string false "Range start (YYYY-MM-DD)"
// @Param   to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {array} dto.DailySummaryResponse
// @Failure 400 {object} map[string]string "Invalid range"
// @Router /resumen [get]
func (h *resumenHandler) listSummaries(c *gin.Context) {
	fromRaw, toRaw := c.Query("from"), c.Query("to")
	if fromRaw == "" && toRaw == "" {
		summaries, err := h.reportingService.GetDailySummaries(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		respondSuccess(c, http.StatusOK, gin.H{"summaries": dto.ToDailySummaryResponses(summaries)})
		return
	}

	from, err := time.Parse(routeDateFormat, fromRaw)
	if err != nil {
		respondBindError(c, err)
		return
	}
	to, err := time.Parse(routeDateFormat, toRaw)
	if err != nil {
		respondBindError(c, err)
		return
	}

	summaries, err := h.reportingService.GetSummariesInRange(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"summaries": dto.ToDailySummaryResponses(summaries)})
}

// getSummary godoc
// @Summary Get the summary for one date
// @Tags resumen
// @Produce  json
// @Param   date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.DailySummaryResponse
// @Failure 404 {object} map[string]string "No sales on that date"
// @Router /resumen/{date} [get]
func (h *resumenHandler) getSummary(c *gin.Context) {
	date, err := time.Parse(routeDateFormat, c.Param("date"))
	if err != nil {
		respondBindError(c, err)
		return
	}

	summary, err := h.reportingService.GetDailySummary(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"summary": dto.ToDailySummaryResponse(summary)})
}
