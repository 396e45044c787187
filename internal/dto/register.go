package dto

import (
	"time"

	"github.com/carrocomidas/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpenRegisterRequest defines the input for opening a register.
// OpenedAt defaults to the current time when omitted.
type OpenRegisterRequest struct {
	OpeningAmount decimal.Decimal `json:"openingAmount" binding:"gte=0"`
	OpenedAt      time.Time       `json:"openedAt"`
}

// CloseRegisterRequest defines the input for closing the open register.
type CloseRegisterRequest struct {
	ClosingAmount decimal.Decimal `json:"closingAmount" binding:"gte=0"`
	ClosedAt      time.Time       `json:"closedAt"`
}

// RegisterResponse defines the data returned for a register.
type RegisterResponse struct {
	RegisterID    string           `json:"registerID"`
	OpeningAmount decimal.Decimal  `json:"openingAmount"`
	ClosingAmount *decimal.Decimal `json:"closingAmount,omitempty"`
	OpenedAt      time.Time        `json:"openedAt"`
	ClosedAt      *time.Time       `json:"closedAt,omitempty"`
	Status        string           `json:"status"`
}

// RegisterCloseSummaryResponse reports the audit figures of a close.
type RegisterCloseSummaryResponse struct {
	Register     RegisterResponse `json:"register"`
	ExpectedCash decimal.Decimal  `json:"expectedCash"`
	CountedCash  decimal.Decimal  `json:"countedCash"`
	Difference   decimal.Decimal  `json:"difference"`
}

// ToRegisterResponse converts a domain.Register to RegisterResponse DTO.
func ToRegisterResponse(r *domain.Register) RegisterResponse {
	return RegisterResponse{
		RegisterID:    r.RegisterID,
		OpeningAmount: r.OpeningAmount,
		ClosingAmount: r.ClosingAmount,
		OpenedAt:      r.OpenedAt,
		ClosedAt:      r.ClosedAt,
		Status:        string(r.Status),
	}
}

// ToRegisterCloseSummaryResponse converts a domain close summary to its DTO.
func ToRegisterCloseSummaryResponse(s *domain.RegisterCloseSummary) RegisterCloseSummaryResponse {
	return RegisterCloseSummaryResponse{
		Register:     ToRegisterResponse(&s.Register),
		ExpectedCash: s.ExpectedCash,
		CountedCash:  s.CountedCash,
		Difference:   s.Difference,
	}
}
