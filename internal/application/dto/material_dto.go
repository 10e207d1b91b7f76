package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialDTO material del catálogo para listados.
type MaterialDTO struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Unit        string           `json:"unit"`
	MinStock    decimal.Decimal  `json:"min_stock"`
	MaxStock    *decimal.Decimal `json:"max_stock,omitempty"`
	Description string           `json:"description,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// UpdateLimitsRequest body para PUT /api/materials/:id/limits.
type UpdateLimitsRequest struct {
	MinStock decimal.Decimal  `json:"min_stock"`
	MaxStock *decimal.Decimal `json:"max_stock"` // null = sin límite superior
}
