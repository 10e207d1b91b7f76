package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordMovementRequest body para POST /api/movements.
// Quantity siempre positiva; el signo lo deriva el servidor a partir de Type.
type RecordMovementRequest struct {
	Material string          `json:"material"`
	Quantity decimal.Decimal `json:"quantity"`
	Type     string          `json:"type"` // incoming | outgoing
	Location string          `json:"location,omitempty"`
	Message  string          `json:"message,omitempty"`
	Unit     string          `json:"unit,omitempty"` // solo se usa si el material se crea
}

// RecordMovementResponse respuesta de un movimiento registrado.
type RecordMovementResponse struct {
	ID string `json:"id"`
}

// MovementDTO un movimiento enriquecido para listados.
type MovementDTO struct {
	ID        string          `json:"id"`
	Material  string          `json:"material"`
	Quantity  decimal.Decimal `json:"quantity"` // con signo
	Unit      string          `json:"unit"`
	Type      string          `json:"type"`
	Location  string          `json:"location,omitempty"`
	Message   string          `json:"message,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
	UserName  string          `json:"user_name"` // "Sistema" si el usuario es nulo
}

// StockSummaryDTO fila de GET /api/summary: stock actual derivado de un material.
type StockSummaryDTO struct {
	MaterialID string           `json:"material_id"`
	Material   string           `json:"material"`
	Total      decimal.Decimal  `json:"total"`
	Unit       string           `json:"unit"`
	MinStock   decimal.Decimal  `json:"min_stock"`
	MaxStock   *decimal.Decimal `json:"max_stock,omitempty"`
	LastUpdate *time.Time       `json:"last_update,omitempty"`
	Status     string           `json:"status"` // low | normal | high
}
