package dto

import (
	"time"

	"github.com/carrocomidas/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordMovementRequest defines the input for recording a manual cash
// movement. OccurredAt defaults to the current time when omitted.
type RecordMovementRequest struct {
	Type       string          `json:"type" binding:"required,oneof=INFLOW OUTFLOW"`
	Amount     decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Reason     string          `json:"reason"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// MovementResponse defines the data returned for a movement.
type MovementResponse struct {
	MovementID string          `json:"movementID"`
	RegisterID string          `json:"registerID"`
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// ToMovementResponse converts a domain.Movement to MovementResponse DTO.
func ToMovementResponse(m *domain.Movement) MovementResponse {
	return MovementResponse{
		MovementID: m.MovementID,
		RegisterID: m.RegisterID,
		Type:       string(m.Type),
		Amount:     m.Amount,
		Reason:     m.Reason,
		OccurredAt: m.OccurredAt,
	}
}

// ToMovementResponses converts a slice of domain.Movement to DTOs.
func ToMovementResponses(ms []domain.Movement) []MovementResponse {
	responses := make([]MovementResponse, len(ms))
	for i, m := range ms {
		responses[i] = ToMovementResponse(&m)
	}
	return responses
}
