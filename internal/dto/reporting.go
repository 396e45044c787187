package dto

import (
	"github.com/carrocomidas/pos_backend/internal/core/domain"
	"github.com/carrocomidas/pos_backend/internal/utils"
)

const summaryDateFormat = "2006-01-02"

// DailySummaryResponse is one row of the daily summary. Money fields are
// formatted strings: summaries are presentation data, so this is the one
// place amounts get rounded.
type DailySummaryResponse struct {
	Date               string  `json:"date"`
	SaleCount          int64   `json:"saleCount"`
	GrossIncome        string  `json:"grossIncome"`
	ItemsSold          int64   `json:"itemsSold"`
	AverageTicket      string  `json:"averageTicket"`
	BestSellingProduct *string `json:"bestSellingProduct,omitempty"`
	CashIncome         string  `json:"cashIncome"`
	TransferIncome     string  `json:"transferIncome"`
	CardIncome         string  `json:"cardIncome"`
	MovementInflows    string  `json:"movementInflows"`
	MovementOutflows   string  `json:"movementOutflows"`
}

// ToDailySummaryResponse converts a domain.DailySummary to its DTO.
func ToDailySummaryResponse(s *domain.DailySummary) DailySummaryResponse {
	return DailySummaryResponse{
		Date:               s.Date.Format(summaryDateFormat),
		SaleCount:          s.SaleCount,
		GrossIncome:        utils.FormatAmount(s.GrossIncome),
		ItemsSold:          s.ItemsSold,
		AverageTicket:      utils.FormatAmount(s.AverageTicket),
		BestSellingProduct: s.BestSellingProduct,
		CashIncome:         utils.FormatAmount(s.CashIncome),
		TransferIncome:     utils.FormatAmount(s.TransferIncome),
		CardIncome:         utils.FormatAmount(s.CardIncome),
		MovementInflows:    utils.FormatAmount(s.MovementInflows),
		MovementOutflows:   utils.FormatAmount(s.MovementOutflows),
	}
}

// ToDailySummaryResponses converts a slice of domain.DailySummary to DTOs.
func ToDailySummaryResponses(ss []domain.DailySummary) []DailySummaryResponse {
	responses := make([]DailySummaryResponse, len(ss))
	for i, s := range ss {
		responses[i] = ToDailySummaryResponse(&s)
	}
	return responses
}
